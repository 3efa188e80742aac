package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/louisbranch/farmhouse.admin/internal/platform/logging"
	"github.com/louisbranch/farmhouse.admin/internal/platform/timeouts"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/api"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/session"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
	adminredis "github.com/louisbranch/farmhouse.admin/internal/services/admin/storage/redis"
	adminsqlite "github.com/louisbranch/farmhouse.admin/internal/services/admin/storage/sqlite"
)

// Session store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config defines the inputs for the console process.
type Config struct {
	HTTPAddr string
	// APIBaseURL is the marketplace API root the console talks to.
	APIBaseURL string
	// SessionBackend selects where console sessions keep their API token.
	SessionBackend string
	DBPath         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	SessionTTL     time.Duration
	SecureCookies  bool
	PageSize       int
	Logger         zerolog.Logger
}

// Server hosts the console and owns its session store.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
	console    *Handler
	logger     zerolog.Logger
}

// NewServer opens the session store and builds the HTTP server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	client, err := api.New(api.Config{
		BaseURL:    config.APIBaseURL,
		HTTPClient: &http.Client{Timeout: timeouts.APIRequest},
		Logger:     config.Logger,
	})
	if err != nil {
		return nil, err
	}

	store, err := openSessionStore(ctx, config)
	if err != nil {
		return nil, err
	}

	sessions, err := session.NewManager(session.Config{
		Client: client,
		Store:  store,
		TTL:    config.SessionTTL,
		Logger: config.Logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	console, handler, err := buildHandler(HandlerConfig{
		Sessions:      sessions,
		Logger:        config.Logger,
		PageSize:      config.PageSize,
		SecureCookies: config.SecureCookies,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           otelhttp.NewHandler(logging.RequestLogger(config.Logger, handler), "admin"),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
		console:    console,
		logger:     config.Logger,
	}, nil
}

// ListenAndServe runs the HTTP server and the session sweeper until the
// context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("admin server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sweepSessions(sweepCtx, timeouts.SessionSweep)

	serveErr := make(chan error, 1)
	s.logger.Info().Str("addr", s.httpAddr).Msg("admin listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the session store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error().Err(err).Msg("close session store")
		}
	}
}

// sweepSessions purges expired sessions every interval until ctx ends, then
// forgets whatever the console still caches for them.
func (s *Server) sweepSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			purged, err := s.store.PurgeExpired(ctx, now)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn().Err(err).Msg("purge expired sessions")
				}
				continue
			}
			if purged > 0 {
				s.logger.Debug().Int("purged", purged).Msg("purged expired sessions")
			}
			if s.console != nil {
				if forgotten := s.console.pruneSessions(ctx); forgotten > 0 {
					s.logger.Debug().Int("forgotten", forgotten).Msg("forgot expired console sessions")
				}
			}
		}
	}
}

func openSessionStore(ctx context.Context, config Config) (storage.Store, error) {
	switch backend := strings.ToLower(strings.TrimSpace(config.SessionBackend)); backend {
	case "", BackendSQLite:
		path := strings.TrimSpace(config.DBPath)
		if path == "" {
			path = filepath.Join("data", "admin.db")
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := adminsqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		return store, nil
	case BackendRedis:
		store, err := adminredis.Open(ctx, adminredis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		return store, nil
	case BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", backend)
	}
}
