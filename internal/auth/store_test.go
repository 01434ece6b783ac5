// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCredentialStore is an in-memory CredentialStore for tests.
type memCredentialStore struct {
	token string
}

func (m *memCredentialStore) Load() (string, error)   { return m.token, nil }
func (m *memCredentialStore) Save(token string) error { m.token = token; return nil }
func (m *memCredentialStore) Delete() error           { m.token = ""; return nil }

// newAuthServer fakes the auth endpoints: POST /auth/token accepts
// secret/wrong passwords, GET /auth/users/me requires "Bearer T".
func newAuthServer(t *testing.T, meBody string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var meCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token":
			require.NoError(t, r.ParseForm())
			if r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"Credenciales inválidas"}`))
				return
			}
			w.Write([]byte(`{"access_token":"T"}`))
		case "/auth/users/me":
			meCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer T" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"Token inválido"}`))
				return
			}
			w.Write([]byte(meBody))
		case "/auth/register":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":1,"email":"a@b.com"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server, &meCalls
}

// =============================================================================
// BOOTSTRAP TESTS
// =============================================================================

func TestStore_Bootstrap_NoCredential(t *testing.T) {
	server, meCalls := newAuthServer(t, `{}`)
	store := NewStore(server.URL, &memCredentialStore{}, nil)

	state := store.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, store.User())
	assert.Equal(t, int32(0), meCalls.Load(), "no identity fetch without a token")
}

func TestStore_Bootstrap_ValidCredential(t *testing.T) {
	server, _ := newAuthServer(t, `{"id":1,"email":"a@b.com","role":"user","has_completed_onboarding":true}`)
	creds := &memCredentialStore{token: "T"}
	store := NewStore(server.URL, creds, nil)

	state := store.Bootstrap(context.Background())

	assert.Equal(t, StateAuthenticated, state)
	require.NotNil(t, store.User())
	assert.Equal(t, 1, store.User().ID)
	assert.Equal(t, "T", creds.token, "valid credential stays persisted")
}

func TestStore_Bootstrap_InvalidCredential(t *testing.T) {
	server, _ := newAuthServer(t, `{}`)
	creds := &memCredentialStore{token: "expired"}
	store := NewStore(server.URL, creds, nil)

	state := store.Bootstrap(context.Background())

	assert.Equal(t, StateAnonymous, state)
	assert.Nil(t, store.User())
	assert.Empty(t, creds.token, "rejected credential must be removed")
	assert.Empty(t, store.Token())
}

func TestStore_Bootstrap_RunsOnce(t *testing.T) {
	server, meCalls := newAuthServer(t, `{"id":1,"email":"a@b.com","role":"user"}`)
	store := NewStore(server.URL, &memCredentialStore{token: "T"}, nil)

	ctx := context.Background()
	store.Bootstrap(ctx)
	store.Bootstrap(ctx)
	store.Bootstrap(ctx)

	assert.Equal(t, int32(1), meCalls.Load(), "identity fetched exactly once per process")
}

// =============================================================================
// LOGIN / LOGOUT TESTS
// =============================================================================

func TestStore_Login_ThenLogout(t *testing.T) {
	server, _ := newAuthServer(t, `{"id":1,"email":"a@b.com","role":"user","has_completed_onboarding":false}`)
	creds := &memCredentialStore{}
	store := NewStore(server.URL, creds, nil)

	user, err := store.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.HasCompletedOnboarding, "this identity still needs onboarding")
	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, "T", creds.token)
	assert.Equal(t, "T", store.Token())

	store.Logout()

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.User())
	assert.Empty(t, creds.token)
	assert.Empty(t, store.Token())
}

func TestStore_Login_InvalidCredentials(t *testing.T) {
	server, _ := newAuthServer(t, `{}`)
	creds := &memCredentialStore{}
	store := NewStore(server.URL, creds, nil)

	_, err := store.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.Empty(t, creds.token, "no credential persisted on rejection")
	assert.NotEqual(t, StateAuthenticated, store.State())
}

// =============================================================================
// REGISTER TESTS
// =============================================================================

func TestStore_Register_AutoLogin(t *testing.T) {
	server, _ := newAuthServer(t, `{"id":1,"email":"a@b.com","role":"user","has_completed_onboarding":true}`)
	creds := &memCredentialStore{}
	store := NewStore(server.URL, creds, nil)

	user, err := store.Register(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.True(t, user.HasCompletedOnboarding)
	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, "T", creds.token, "registration chains into a persisted login")
}

func TestStore_Register_FailureSkipsLogin(t *testing.T) {
	var tokenCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/register":
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"detail":"El email ya está registrado"}`))
		case "/auth/token":
			tokenCalls.Add(1)
		}
	}))
	defer server.Close()

	store := NewStore(server.URL, &memCredentialStore{}, nil)
	_, err := store.Register(context.Background(), "a@b.com", "secret")

	require.Error(t, err)
	assert.Equal(t, int32(0), tokenCalls.Load(), "failed registration must not attempt login")
	assert.NotEqual(t, StateAuthenticated, store.State())
}
