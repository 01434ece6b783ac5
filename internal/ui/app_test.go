// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/reloguito/legisbot-tui/internal/auth"
)

func anonymousSession(t *testing.T) *auth.Store {
	t.Helper()
	creds := auth.NewFileCredentialStore(filepath.Join(t.TempDir(), "token"))
	session := auth.NewStore("http://127.0.0.1:1", creds, nil)
	session.Bootstrap(context.Background())
	return session
}

func memberSession(t *testing.T) *auth.Store {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/users/me" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":1,"email":"a@b.com","role":"user","has_completed_onboarding":true}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("T\n"), 0600); err != nil {
		t.Fatal(err)
	}
	session := auth.NewStore(server.URL, auth.NewFileCredentialStore(path), nil)
	if session.Bootstrap(context.Background()) != auth.StateAuthenticated {
		t.Fatal("expected authenticated session")
	}
	return session
}

func TestScreenMetadata(t *testing.T) {
	tests := []struct {
		screen    Screen
		protected bool
		adminOnly bool
	}{
		{ScreenLogin, false, false},
		{ScreenRegister, false, false},
		{ScreenOnboarding, true, false},
		{ScreenChat, true, false},
		{ScreenHistory, true, false},
		{ScreenStats, true, true},
	}
	for _, tt := range tests {
		if got := tt.screen.protected(); got != tt.protected {
			t.Errorf("%s: protected() = %v, want %v", tt.screen.Title(), got, tt.protected)
		}
		if got := tt.screen.adminOnly(); got != tt.adminOnly {
			t.Errorf("%s: adminOnly() = %v, want %v", tt.screen.Title(), got, tt.adminOnly)
		}
	}
}

func TestNavigate_AnonymousLandsOnLogin(t *testing.T) {
	app := NewApp(anonymousSession(t), nil)

	model, _ := app.navigate(ScreenChat)
	if got := model.(App).screen; got != ScreenLogin {
		t.Errorf("anonymous navigation to chat landed on %v, want login", got)
	}
}

func TestNavigate_MemberBlockedFromStats(t *testing.T) {
	app := NewApp(memberSession(t), nil)

	model, _ := app.navigate(ScreenStats)
	if got := model.(App).screen; got != ScreenChat {
		t.Errorf("member navigation to stats landed on %v, want chat", got)
	}
}

func TestNavigate_MemberReachesChat(t *testing.T) {
	app := NewApp(memberSession(t), nil)

	model, cmd := app.navigate(ScreenChat)
	if got := model.(App).screen; got != ScreenChat {
		t.Errorf("member navigation to chat landed on %v, want chat", got)
	}
	if cmd == nil {
		t.Error("opening chat should fetch the context list")
	}
}
