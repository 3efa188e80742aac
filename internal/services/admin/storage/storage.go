package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session record does not exist.
var ErrNotFound = errors.New("session not found")

// Session is the persisted credential for one console session.
type Session struct {
	ID        string
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionStore persists console session records.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (Session, error)
	PutSession(ctx context.Context, session Session) error
	DeleteSession(ctx context.Context, sessionID string) error
	// PurgeExpired deletes sessions that expired at or before now and returns
	// how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}

// Store is a composite interface for console storage concerns.
type Store interface {
	SessionStore
	Close() error
}
