package admin

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
	adminsqlite "github.com/louisbranch/farmhouse.admin/internal/services/admin/storage/sqlite"
)

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{APIBaseURL: "http://api.test", SessionBackend: BackendMemory})
	if err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestNewServerRequiresAPIBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0", SessionBackend: BackendMemory})
	if err == nil {
		t.Fatal("expected error for empty api base url")
	}
}

func TestNewServerRejectsUnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := NewServer(context.Background(), Config{
		HTTPAddr:       "127.0.0.1:0",
		APIBaseURL:     "http://api.test",
		SessionBackend: "etcd",
	})
	if err == nil {
		t.Fatal("expected error for unknown session backend")
	}
}

func TestNewServerOpensSQLiteStore(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{
		HTTPAddr:   "127.0.0.1:0",
		APIBaseURL: "http://api.test",
		DBPath:     filepath.Join(t.TempDir(), "nested", "admin.db"),
		Logger:     zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(server.Close)
	if _, ok := server.store.(*adminsqlite.Store); !ok {
		t.Fatalf("store = %T, want sqlite store", server.store)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{
		HTTPAddr:       "127.0.0.1:0",
		APIBaseURL:     "http://api.test",
		SessionBackend: BackendMemory,
		Logger:         zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var server *Server
	server.Close()
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}

func TestSweepSessionsPurgesExpired(t *testing.T) {
	t.Parallel()

	store := storage.NewMemoryStore()
	ctx := context.Background()
	expired := time.Now().Add(-time.Hour)
	if err := store.PutSession(ctx, storage.Session{ID: "old", Token: "t", CreatedAt: expired, UpdatedAt: expired, ExpiresAt: expired}); err != nil {
		t.Fatalf("put session: %v", err)
	}

	server := &Server{store: store, logger: zerolog.Nop()}
	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go server.sweepSessions(sweepCtx, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := store.GetSession(ctx, "old"); errors.Is(err, storage.ErrNotFound) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("expected expired session to be purged")
}
