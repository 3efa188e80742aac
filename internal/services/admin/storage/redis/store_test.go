package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
)

func TestOpenRequiresAddr(t *testing.T) {
	if _, err := Open(context.Background(), Options{}); err == nil {
		t.Fatal("expected error for empty addr")
	}
}

func TestOpenPingsServer(t *testing.T) {
	server := miniredis.RunT(t)
	store, err := Open(context.Background(), Options{Addr: server.Addr()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestSessionKey(t *testing.T) {
	t.Parallel()

	if got := sessionKey(" abc "); got != "farmhouse:admin:session:abc" {
		t.Fatalf("sessionKey = %q", got)
	}
}

func TestKeyTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      time.Duration
	}{
		{name: "expired", expiresAt: now.Add(-time.Second), want: 0},
		{name: "now", expiresAt: now, want: 0},
		{name: "whole", expiresAt: now.Add(time.Hour), want: time.Hour},
		{name: "sub millisecond", expiresAt: now.Add(300 * time.Microsecond), want: time.Millisecond},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := keyTTL(tc.expiresAt, now); got != tc.want {
				t.Fatalf("keyTTL = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPutGetSessionRoundTrip(t *testing.T) {
	store, server, now := openTestStore(t)
	ctx := context.Background()

	want := storage.Session{
		ID:        "sess-1",
		Token:     "token-1",
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	if err := store.PutSession(ctx, want); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.ID != "sess-1" || got.Token != "token-1" {
		t.Fatalf("session = %+v", got)
	}
	if !got.CreatedAt.Equal(now) || !got.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("timestamps = %+v", got)
	}
	if ttl := server.TTL(sessionKey("sess-1")); ttl != time.Hour {
		t.Fatalf("key ttl = %v, want %v", ttl, time.Hour)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store, _, _ := openTestStore(t)
	if _, err := store.GetSession(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetSessionRejectsCorruptRecord(t *testing.T) {
	store, server, _ := openTestStore(t)
	if err := server.Set(sessionKey("sess-1"), "not json"); err != nil {
		t.Fatalf("seed key: %v", err)
	}
	if _, err := store.GetSession(context.Background(), "sess-1"); err == nil || errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestPutSessionKeepsCreatedAtOnReplace(t *testing.T) {
	store, _, now := openTestStore(t)
	ctx := context.Background()

	later := now.Add(30 * time.Minute)
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a", CreatedAt: now, UpdatedAt: now, ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "b", CreatedAt: later, UpdatedAt: later, ExpiresAt: later.Add(time.Hour)}); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Token != "b" || !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(later) {
		t.Fatalf("session = %+v", got)
	}
}

func TestKeyExpiresWithSession(t *testing.T) {
	store, server, now := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a", ExpiresAt: now.Add(time.Minute)}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	server.FastForward(time.Minute + time.Second)
	if _, err := store.GetSession(ctx, "sess-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected expired key to be gone, got %v", err)
	}
}

func TestPutExpiredSessionDeletesKey(t *testing.T) {
	store, server, now := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a", ExpiresAt: now.Add(-time.Second)}); err != nil {
		t.Fatalf("put expired session: %v", err)
	}
	if server.Exists(sessionKey("sess-1")) {
		t.Fatal("expected expired session key to be removed")
	}
}

func TestDeleteSession(t *testing.T) {
	store, server, now := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, storage.Session{ID: "sess-1", Token: "a", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if server.Exists(sessionKey("sess-1")) {
		t.Fatal("expected key to be deleted")
	}
	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete missing session: %v", err)
	}
}

func TestPutSessionValidation(t *testing.T) {
	store, _, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, storage.Session{Token: "a"}); err == nil {
		t.Fatal("expected missing id error")
	}
	if err := store.PutSession(ctx, storage.Session{ID: "sess-1"}); err == nil {
		t.Fatal("expected missing token error")
	}
}

func TestSlotOverRedisStore(t *testing.T) {
	store, _, _ := openTestStore(t)
	store.now = time.Now
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

func TestNilStoreMethodsFail(t *testing.T) {
	var store *Store
	if _, err := store.GetSession(context.Background(), "a"); err == nil {
		t.Fatal("expected nil store error")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("nil close: %v", err)
	}
}

// openTestStore returns a store on an in-process server whose clock is pinned
// to the returned time.
func openTestStore(t *testing.T) (*Store, *miniredis.Miniredis, time.Time) {
	t.Helper()
	server := miniredis.RunT(t)
	store := New(goredis.NewClient(&goredis.Options{Addr: server.Addr()}))
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, server, now
}
