package admin

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	platformcmd "github.com/louisbranch/farmhouse.admin/internal/platform/cmd"
	"github.com/louisbranch/farmhouse.admin/internal/platform/logging"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr       string        `env:"FARMHOUSE_ADMIN_HTTP_ADDR"       envDefault:":8082"`
	APIBaseURL     string        `env:"FARMHOUSE_ADMIN_API_BASE_URL"   envDefault:"http://localhost:8080/api/v1"`
	SessionBackend string        `env:"FARMHOUSE_ADMIN_SESSION_STORE"  envDefault:"sqlite"`
	DBPath         string        `env:"FARMHOUSE_ADMIN_DB_PATH"        envDefault:"data/admin.db"`
	RedisAddr      string        `env:"FARMHOUSE_ADMIN_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword  string        `env:"FARMHOUSE_ADMIN_REDIS_PASSWORD"`
	RedisDB        int           `env:"FARMHOUSE_ADMIN_REDIS_DB"`
	SessionTTL     time.Duration `env:"FARMHOUSE_ADMIN_SESSION_TTL"    envDefault:"24h"`
	SecureCookies  bool          `env:"FARMHOUSE_ADMIN_SECURE_COOKIES"`
	PageSize       int           `env:"FARMHOUSE_ADMIN_PAGE_SIZE"      envDefault:"10"`
	LogLevel       string        `env:"FARMHOUSE_ADMIN_LOG_LEVEL"      envDefault:"info"`
	LogPretty      bool          `env:"FARMHOUSE_ADMIN_LOG_PRETTY"`
}

// ParseConfig loads env defaults and then applies flags. Flags left unset
// keep the env value.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "HTTP listen address (FARMHOUSE_ADMIN_HTTP_ADDR)")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", "", "marketplace API base URL (FARMHOUSE_ADMIN_API_BASE_URL)")
	fs.StringVar(&cfg.SessionBackend, "session-store", "", "session store: sqlite, redis or memory (FARMHOUSE_ADMIN_SESSION_STORE)")
	fs.StringVar(&cfg.DBPath, "db-path", "", "sqlite session database path (FARMHOUSE_ADMIN_DB_PATH)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "redis address (FARMHOUSE_ADMIN_REDIS_ADDR)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level (FARMHOUSE_ADMIN_LOG_LEVEL)")
	if err := platformcmd.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin console.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(platformcmd.ServiceAdmin, logging.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Out:    os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:       cfg.HTTPAddr,
		APIBaseURL:     cfg.APIBaseURL,
		SessionBackend: cfg.SessionBackend,
		DBPath:         cfg.DBPath,
		RedisAddr:      cfg.RedisAddr,
		RedisPassword:  cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		SessionTTL:     cfg.SessionTTL,
		SecureCookies:  cfg.SecureCookies,
		PageSize:       cfg.PageSize,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	return platformcmd.RunWithTelemetryAndOptions(ctx, platformcmd.ServiceAdmin, platformcmd.RunOptions{Logger: &logger}, func(ctx context.Context) error {
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve admin: %w", err)
		}
		return nil
	})
}
