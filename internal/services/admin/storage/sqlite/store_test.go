package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPutGetSessionRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	want := storage.Session{
		ID:        "sess-1",
		Token:     "token-1",
		CreatedAt: created,
		UpdatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}
	if err := store.PutSession(ctx, want); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Token != "token-1" {
		t.Fatalf("token = %q, want token-1", got.Token)
	}
	if !got.CreatedAt.Equal(created) || !got.ExpiresAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("timestamps = %+v", got)
	}
}

func TestPutSessionKeepsCreatedAtOnReplace(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	first := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(30 * time.Minute)
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a", CreatedAt: first, UpdatedAt: first, ExpiresAt: first.Add(time.Hour)}); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "b", CreatedAt: second, UpdatedAt: second, ExpiresAt: second.Add(time.Hour)}); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Token != "b" {
		t.Fatalf("token = %q, want b", got.Token)
	}
	if !got.CreatedAt.Equal(first) {
		t.Fatalf("created at = %v, want %v", got.CreatedAt, first)
	}
	if !got.UpdatedAt.Equal(second) {
		t.Fatalf("updated at = %v, want %v", got.UpdatedAt, second)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store := openTempStore(t)
	if _, err := store.GetSession(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a"}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(ctx, "sess-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete missing session: %v", err)
	}
}

func TestPurgeExpired(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	for _, session := range []storage.Session{
		{ID: "expired", Token: "a", ExpiresAt: now.Add(-time.Second)},
		{ID: "boundary", Token: "b", ExpiresAt: now},
		{ID: "live", Token: "c", ExpiresAt: now.Add(time.Second)},
	} {
		if err := store.PutSession(ctx, session); err != nil {
			t.Fatalf("put %s: %v", session.ID, err)
		}
	}

	purged, err := store.PurgeExpired(ctx, now)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 2 {
		t.Fatalf("purged = %d, want 2", purged)
	}
	if _, err := store.GetSession(ctx, "live"); err != nil {
		t.Fatalf("live session: %v", err)
	}
}

func TestPutSessionValidation(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, storage.Session{Token: "a"}); err == nil {
		t.Fatal("expected error for empty session id")
	}
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1"}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestMethodsRequireStore(t *testing.T) {
	var store *Store
	if err := store.PutSession(context.Background(), storage.Session{ID: "a", Token: "b"}); err == nil {
		t.Fatal("expected error for nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

func TestSlotOverSQLiteStore(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	slot := storage.NewSlot(store, "sess-9")
	if err := slot.Store(ctx, "persisted"); err != nil {
		t.Fatalf("slot store: %v", err)
	}
	if got, err := slot.Load(ctx); err != nil || got != "persisted" {
		t.Fatalf("slot load = %q, %v", got, err)
	}
	if err := slot.Clear(ctx); err != nil {
		t.Fatalf("slot clear: %v", err)
	}
	if got, _ := slot.Load(ctx); got != "" {
		t.Fatalf("slot load after clear = %q", got)
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admin.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
