// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"testing"

	"github.com/reloguito/legisbot-tui/internal/model"
)

func TestDecide(t *testing.T) {
	member := &model.User{ID: 1, Role: model.RoleMember}
	admin := &model.User{ID: 2, Role: model.RoleAdmin}

	tests := []struct {
		name      string
		state     State
		user      *model.User
		adminOnly bool
		want      Decision
	}{
		{"initializing plain screen", StateInitializing, nil, false, DecisionLoading},
		{"initializing admin screen", StateInitializing, nil, true, DecisionLoading},
		{"anonymous plain screen", StateAnonymous, nil, false, DecisionRedirectLogin},
		{"anonymous admin screen", StateAnonymous, nil, true, DecisionRedirectLogin},
		{"member plain screen", StateAuthenticated, member, false, DecisionRender},
		{"member admin screen", StateAuthenticated, member, true, DecisionRedirectHome},
		{"admin plain screen", StateAuthenticated, admin, false, DecisionRender},
		{"admin admin screen", StateAuthenticated, admin, true, DecisionRender},
		{"authenticated without identity", StateAuthenticated, nil, true, DecisionRedirectHome},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decide(tc.state, tc.user, tc.adminOnly); got != tc.want {
				t.Errorf("Decide(%v, %v, %v) = %v, want %v",
					tc.state, tc.user, tc.adminOnly, got, tc.want)
			}
		})
	}
}
