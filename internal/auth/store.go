// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/api"
	"github.com/reloguito/legisbot-tui/internal/model"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// State is the tagged session state. There is no separate loading flag and no
// nullable identity: a screen either waits (Initializing), redirects
// (Anonymous), or renders (Authenticated).
type State int

const (
	// StateInitializing means bootstrap has not completed yet. Protected
	// screens must show a loading placeholder.
	StateInitializing State = iota
	// StateAnonymous means no identity is held.
	StateAnonymous
	// StateAuthenticated means an identity is held.
	StateAuthenticated
)

// String returns the display string for the state.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// =============================================================================
// SESSION STORE
// =============================================================================

// Store is the single source of truth for the current session. All reads and
// writes of the identity and the bearer token go through its operations;
// the token is written only by Bootstrap, Login, and Logout.
//
// Store implements api.TokenSource, so every outgoing request reads the
// current token from here at send time.
type Store struct {
	mu sync.Mutex

	client *api.Client
	creds  CredentialStore
	logger *zap.Logger

	state        State
	user         *model.User
	token        string
	bootstrapped bool
}

// NewStore creates a session store talking to the service at baseURL.
func NewStore(baseURL string, creds CredentialStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		creds:  creds,
		logger: logger,
		state:  StateInitializing,
	}
	s.client = api.NewClient(baseURL, s, logger)
	return s
}

// Client returns the API client bound to this session.
func (s *Store) Client() *api.Client {
	return s.client
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns the current session state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the cached identity, or nil outside StateAuthenticated.
func (s *Store) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// =============================================================================
// LIFECYCLE OPERATIONS
// =============================================================================

// Bootstrap resolves the persisted credential into a session. It runs the
// identity fetch at most once per process: repeat calls are no-ops.
//
// Any failure (missing token, rejected token, network error) ends in
// StateAnonymous with the persisted credential removed; bootstrap itself
// never fails the caller, it only decides the starting state.
func (s *Store) Bootstrap(ctx context.Context) State {
	s.mu.Lock()
	if s.bootstrapped {
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.bootstrapped = true
	s.mu.Unlock()

	token, err := s.creds.Load()
	if err != nil {
		s.logger.Warn("failed to load stored credential", zap.Error(err))
		token = ""
	}
	if token == "" {
		return s.become(StateAnonymous, nil, "")
	}

	// Attach the token before the identity fetch so the request carries it.
	s.setToken(token)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.logger.Info("stored credential rejected, clearing session", zap.Error(err))
		if derr := s.creds.Delete(); derr != nil {
			s.logger.Warn("failed to delete stored credential", zap.Error(derr))
		}
		return s.become(StateAnonymous, nil, "")
	}

	s.logger.Info("session restored", zap.Int("user_id", user.ID), zap.String("role", user.Role.String()))
	return s.become(StateAuthenticated, user, token)
}

// Login obtains a token for the credentials, persists it, fetches the
// identity behind it, and returns that identity.
//
// The token endpoint does not return the profile, so this is deliberately a
// two-call exchange: POST /auth/token, then GET /auth/users/me.
func (s *Store) Login(ctx context.Context, username, password string) (*model.User, error) {
	token, err := s.client.Token(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := s.creds.Save(token); err != nil {
		s.logger.Warn("failed to persist credential", zap.Error(err))
	}
	s.setToken(token)

	user, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}

	s.become(StateAuthenticated, user, token)
	s.logger.Info("login succeeded", zap.Int("user_id", user.ID))
	return user, nil
}

// Register creates an account and, on success, immediately logs it in with
// the same credentials so the caller never needs a second manual login.
// A registration failure propagates without attempting the login.
func (s *Store) Register(ctx context.Context, email, password string) (*model.User, error) {
	if err := s.client.Register(ctx, email, password); err != nil {
		return nil, err
	}
	return s.Login(ctx, email, password)
}

// Logout deletes the persisted credential, detaches the token, and clears
// the identity. It performs no network call and always succeeds.
func (s *Store) Logout() {
	if err := s.creds.Delete(); err != nil {
		s.logger.Warn("failed to delete stored credential", zap.Error(err))
	}
	s.become(StateAnonymous, nil, "")
	s.logger.Info("logged out")
}

// SetUser replaces the cached identity. Used when the server returns an
// updated user object, e.g. after completing onboarding.
func (s *Store) SetUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAuthenticated {
		s.user = user
	}
}

// Invalidate clears the session after another call saw the credential
// rejected mid-run. Equivalent to Logout.
func (s *Store) Invalidate() {
	s.Logout()
}

// =============================================================================
// INTERNAL STATE TRANSITIONS
// =============================================================================

func (s *Store) become(state State, user *model.User, token string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
	s.token = token
	return state
}

func (s *Store) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
