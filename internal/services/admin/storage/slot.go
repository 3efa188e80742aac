package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL bounds a stored token whose own expiry is unknown.
const DefaultSessionTTL = 24 * time.Hour

// Slot is the single access point for a console session's bearer token.
type Slot interface {
	// Load returns the stored token, or "" when none is stored.
	Load(ctx context.Context) (string, error)
	// Store replaces the stored token.
	Store(ctx context.Context, token string) error
	// Clear removes the stored token.
	Clear(ctx context.Context) error
}

// SessionSlot binds a SessionStore to one console session id.
type SessionSlot struct {
	store     SessionStore
	sessionID string
	ttl       time.Duration
	now       func() time.Time
}

// SlotOption customizes a SessionSlot.
type SlotOption func(*SessionSlot)

// WithTTL caps how long a stored token is kept.
func WithTTL(ttl time.Duration) SlotOption {
	return func(s *SessionSlot) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the slot's time source.
func WithClock(now func() time.Time) SlotOption {
	return func(s *SessionSlot) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSlot returns the credential slot for sessionID.
func NewSlot(store SessionStore, sessionID string, opts ...SlotOption) *SessionSlot {
	slot := &SessionSlot{
		store:     store,
		sessionID: strings.TrimSpace(sessionID),
		ttl:       DefaultSessionTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(slot)
	}
	return slot
}

// SessionID returns the console session id this slot is bound to.
func (s *SessionSlot) SessionID() string {
	return s.sessionID
}

// Load returns the stored token. Expired records read as empty.
func (s *SessionSlot) Load(ctx context.Context) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	session, err := s.store.GetSession(ctx, s.sessionID)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session %s: %w", s.sessionID, err)
	}
	if session.Expired(s.now()) {
		return "", nil
	}
	return session.Token, nil
}

// Store writes token with an expiry of the token's own exp claim or the slot
// TTL, whichever comes first. An empty token clears the slot.
func (s *SessionSlot) Store(ctx context.Context, token string) error {
	if err := s.validate(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return s.Clear(ctx)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	if exp, ok := TokenExpiry(token); ok && exp.Before(expiresAt) {
		expiresAt = exp
	}
	if err := s.store.PutSession(ctx, Session{
		ID:        s.sessionID,
		Token:     token,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return fmt.Errorf("store session %s: %w", s.sessionID, err)
	}
	return nil
}

// Clear deletes the session record. Clearing an empty slot is not an error.
func (s *SessionSlot) Clear(ctx context.Context) error {
	if err := s.validate(); err != nil {
		return err
	}
	err := s.store.DeleteSession(ctx, s.sessionID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear session %s: %w", s.sessionID, err)
	}
	return nil
}

func (s *SessionSlot) validate() error {
	if s == nil || s.store == nil {
		return fmt.Errorf("session store is not configured")
	}
	if s.sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	return nil
}

// TokenExpiry reads the exp claim of a JWT bearer token without verifying its
// signature. The claim only bounds how long the token is stored.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

var _ Slot = (*SessionSlot)(nil)
