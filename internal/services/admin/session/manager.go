package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/louisbranch/farmhouse.admin/internal/platform/errors"
	"github.com/louisbranch/farmhouse.admin/internal/platform/timeouts"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/api"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
	"github.com/louisbranch/farmhouse.admin/internal/services/admin/storage"
	"github.com/rs/zerolog"
)

// State is the authentication view of one console session.
type State struct {
	Admin         marketplace.Admin
	Authenticated bool
	// Loading is set while the startup profile probe is in flight.
	Loading bool
	// Err is the last failure observed by Initialize or Login.
	Err error
}

// Config configures a Manager.
type Config struct {
	Client *api.Client
	Store  storage.SessionStore
	// TTL bounds how long a token is kept. Zero uses storage.DefaultSessionTTL.
	TTL    time.Duration
	Logger zerolog.Logger
}

// Manager tracks authentication for every console session of this process.
type Manager struct {
	client   *api.Client
	store    storage.SessionStore
	ttl      time.Duration
	validate *validator.Validate
	logger   zerolog.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	state        State
	resolved     bool
	initializing bool
	// generation changes on every login and logout so a slow probe cannot
	// overwrite a newer outcome.
	generation uint64
}

// NewManager builds a Manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Client == nil {
		return nil, errors.New("api client is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("session store is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = storage.DefaultSessionTTL
	}
	return &Manager{
		client:   cfg.Client,
		store:    cfg.Store,
		ttl:      ttl,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   cfg.Logger,
		entries:  make(map[string]*entry),
	}, nil
}

// Slot returns the credential slot of sessionID.
func (m *Manager) Slot(sessionID string) storage.Slot {
	return storage.NewSlot(m.store, sessionID, storage.WithTTL(m.ttl))
}

// API returns an API session authenticated with sessionID's slot.
func (m *Manager) API(sessionID string) *api.Session {
	return m.client.ForSlot(m.Slot(sessionID))
}

// State returns the cached state of sessionID without any I/O.
func (m *Manager) State(sessionID string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		return State{}
	}
	if e.initializing && !e.resolved {
		return State{Loading: true}
	}
	return e.state
}

// Initialize probes the stored token once per console session. Concurrent
// callers observe Loading until the probe resolves; later callers get the
// cached result. Only authenticated outcomes are cached, so sessions without
// a token hold no memory here.
func (m *Manager) Initialize(ctx context.Context, sessionID string) State {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return State{}
	}

	m.mu.Lock()
	e := m.entryLocked(sessionID)
	if e.resolved {
		state := e.state
		m.mu.Unlock()
		return state
	}
	if e.initializing {
		m.mu.Unlock()
		return State{Loading: true}
	}
	e.initializing = true
	generation := e.generation
	m.mu.Unlock()

	state := m.probe(ctx, sessionID)

	m.mu.Lock()
	defer m.mu.Unlock()
	e.initializing = false
	if current, ok := m.entries[sessionID]; !ok || current != e {
		// Logged out while probing.
		return State{}
	}
	if e.generation != generation || e.resolved {
		return e.state
	}
	if !state.Authenticated {
		delete(m.entries, sessionID)
		return state
	}
	e.state = state
	e.resolved = true
	return state
}

// Current is Initialize plus an eviction check: an authenticated session whose
// slot has been emptied (for example by a 401) reads as unauthenticated.
func (m *Manager) Current(ctx context.Context, sessionID string) State {
	state := m.Initialize(ctx, sessionID)
	if !state.Authenticated {
		return state
	}
	token, err := m.Slot(sessionID).Load(ctx)
	if err != nil {
		m.logger.Error().Err(err).Str("session_id", sessionID).Msg("read credential slot")
		return state
	}
	if token != "" {
		return state
	}

	m.Forget(sessionID)
	return State{}
}

// probe outlives the request that triggered it: a browser dropping that
// request must neither log out a valid token nor leave a rejected one behind.
func (m *Manager) probe(ctx context.Context, sessionID string) State {
	ctx, cancel := detached(ctx)
	defer cancel()
	slot := m.Slot(sessionID)
	token, err := slot.Load(ctx)
	if err != nil {
		m.logger.Error().Err(err).Str("session_id", sessionID).Msg("load stored token")
		return State{Err: err}
	}
	if token == "" {
		return State{}
	}
	admin, err := m.client.ForSlot(slot).Profile(ctx)
	if err != nil {
		m.logger.Info().Err(err).Str("session_id", sessionID).Msg("stored token rejected")
		if clearErr := slot.Clear(ctx); clearErr != nil {
			m.logger.Error().Err(clearErr).Str("session_id", sessionID).Msg("clear rejected token")
		}
		return State{Err: err}
	}
	return State{Admin: admin, Authenticated: true}
}

// Login exchanges credentials for a token, stores it and loads the identity.
func (m *Manager) Login(ctx context.Context, sessionID, email, password string) (State, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return State{}, apperrors.New(apperrors.CodeInvalidInput, "console session is required")
	}
	creds := api.Credentials{Email: strings.TrimSpace(email), Password: password}
	if err := m.validate.Struct(creds); err != nil {
		// Bad form input says nothing about the session already held.
		err = apperrors.Wrap(apperrors.CodeInvalidInput, credentialsMessage(err), err)
		return State{Err: err}, err
	}

	slot := m.Slot(sessionID)
	client := m.client.ForSlot(slot)
	token, err := client.Login(ctx, creds)
	if err != nil {
		return m.fail(ctx, sessionID, err)
	}
	if strings.TrimSpace(token) == "" {
		return m.fail(ctx, sessionID, apperrors.New(apperrors.CodeAuthFailed, "authentication failed"))
	}
	if err := slot.Store(ctx, token); err != nil {
		return m.fail(ctx, sessionID, err)
	}
	admin, err := client.Profile(ctx)
	if err != nil {
		return m.fail(ctx, sessionID, err)
	}

	state := State{Admin: admin, Authenticated: true}
	m.set(sessionID, state)
	m.logger.Info().Str("session_id", sessionID).Str("admin_id", admin.ID).Msg("admin signed in")
	return state, nil
}

// Logout clears the stored token and every cached bit of session state. No
// API call is made.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	m.Forget(sessionID)
	if err := m.Slot(sessionID).Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Forget drops the cached state of sessionID. The stored token is untouched.
func (m *Manager) Forget(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[sessionID]; ok {
		e.generation++
	}
	delete(m.entries, sessionID)
}

// Prune forgets every cached session whose token is gone, usually because the
// store expired it, and returns their ids.
func (m *Manager) Prune(ctx context.Context) []string {
	m.mu.Lock()
	ids := make([]string, 0, len(m.entries))
	for sessionID, e := range m.entries {
		if e.resolved {
			ids = append(ids, sessionID)
		}
	}
	m.mu.Unlock()

	var pruned []string
	for _, sessionID := range ids {
		token, err := m.Slot(sessionID).Load(ctx)
		if err != nil {
			m.logger.Warn().Err(err).Str("session_id", sessionID).Msg("check cached session")
			continue
		}
		if token == "" {
			m.Forget(sessionID)
			pruned = append(pruned, sessionID)
		}
	}
	return pruned
}

// Len reports how many console sessions have cached state.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// fail leaves the session signed out in memory and in its slot alike.
func (m *Manager) fail(ctx context.Context, sessionID string, err error) (State, error) {
	m.Forget(sessionID)
	ctx, cancel := detached(ctx)
	defer cancel()
	if clearErr := m.Slot(sessionID).Clear(ctx); clearErr != nil {
		m.logger.Error().Err(clearErr).Str("session_id", sessionID).Msg("clear token after failed login")
	}
	return State{Err: err}, err
}

func (m *Manager) set(sessionID string, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entryLocked(sessionID)
	e.generation++
	e.resolved = true
	e.state = state
}

func (m *Manager) entryLocked(sessionID string) *entry {
	e, ok := m.entries[sessionID]
	if !ok {
		e = &entry{}
		m.entries[sessionID] = e
	}
	return e
}

func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), timeouts.APIRequest)
}

func credentialsMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		if first.Field() == "Email" && first.Tag() == "email" {
			return "email is not a valid address"
		}
		return strings.ToLower(first.Field()) + " is required"
	}
	return "invalid credentials"
}
