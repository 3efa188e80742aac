// Package redis provides a Redis-backed console session store for
// deployments that run more than one console process.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "farmhouse:admin:session:"

// record is the JSON value stored under each session key.
type record struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Store keeps sessions as JSON strings with a Redis TTL matching expiry.
type Store struct {
	rdb goredis.UniversalClient
	now func() time.Time
}

// Open creates a Redis client and pings it to validate the connection.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if strings.TrimSpace(opts.Addr) == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client), nil
}

// New wraps an existing client.
func New(client goredis.UniversalClient) *Store {
	return &Store{rdb: client, now: time.Now}
}

// Close closes the Redis client.
func (s *Store) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

// GetSession loads one session record.
func (s *Store) GetSession(ctx context.Context, sessionID string) (storage.Session, error) {
	if s == nil || s.rdb == nil {
		return storage.Session{}, fmt.Errorf("storage is not configured")
	}
	raw, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return storage.Session{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Session{}, fmt.Errorf("get session: %w", err)
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return storage.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return storage.Session{
		ID:        sessionID,
		Token:     rec.Token,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// PutSession writes the session with a key TTL equal to its remaining lifetime.
// An already-expired session is deleted instead.
func (s *Store) PutSession(ctx context.Context, session storage.Session) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.Token) == "" {
		return fmt.Errorf("session token is required")
	}

	now := s.now().UTC()
	if existing, err := s.GetSession(ctx, session.ID); err == nil && !existing.CreatedAt.IsZero() {
		session.CreatedAt = existing.CreatedAt
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	if session.UpdatedAt.IsZero() {
		session.UpdatedAt = now
	}
	if session.ExpiresAt.IsZero() {
		session.ExpiresAt = now.Add(storage.DefaultSessionTTL)
	}

	ttl := keyTTL(session.ExpiresAt, now)
	if ttl <= 0 {
		return s.DeleteSession(ctx, session.ID)
	}
	payload, err := json.Marshal(record{
		Token:     session.Token,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.rdb.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// DeleteSession removes a session key.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("storage is not configured")
	}
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpired is a no-op: Redis expires keys on its own.
func (s *Store) PurgeExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

func sessionKey(sessionID string) string {
	return keyPrefix + strings.TrimSpace(sessionID)
}

// keyTTL rounds up to whole milliseconds so a sub-millisecond remainder does
// not become a zero TTL, which Redis reads as "no expiry".
func keyTTL(expiresAt, now time.Time) time.Duration {
	remaining := expiresAt.Sub(now)
	if remaining <= 0 {
		return 0
	}
	if rounded := remaining.Round(time.Millisecond); rounded >= remaining {
		return rounded
	}
	return remaining.Truncate(time.Millisecond) + time.Millisecond
}

var _ storage.Store = (*Store)(nil)
