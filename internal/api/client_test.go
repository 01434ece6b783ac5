// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// TOKEN ENDPOINT TESTS
// =============================================================================

func TestClient_Token_FormEncoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/token", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "a@b.com", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"T","token_type":"bearer"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""), nil)
	token, err := client.Token(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "T", token)
}

func TestClient_Token_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Credenciales inválidas"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""), nil)
	_, err := client.Token(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.Equal(t, "Credenciales inválidas", ServerMessage(err, "fallback"))
}

// =============================================================================
// BEARER TRANSPORT TESTS
// =============================================================================

func TestClient_Me_SendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":1,"email":"a@b.com","role":"user","has_completed_onboarding":false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("T"), nil)
	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.False(t, user.HasCompletedOnboarding)
	assert.False(t, user.IsAdmin())
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"contexts":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""), nil)
	_, err := client.Contexts(context.Background())
	require.NoError(t, err)
}

// tokenHolder simulates the session store swapping tokens between requests.
type tokenHolder struct{ tok string }

func (h *tokenHolder) Token() string { return h.tok }

func TestClient_TokenReadPerRequest(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Write([]byte(`{"contexts":[]}`))
	}))
	defer server.Close()

	holder := &tokenHolder{}
	client := NewClient(server.URL, holder, nil)

	_, err := client.Contexts(context.Background())
	require.NoError(t, err)

	holder.tok = "nuevo"
	_, err = client.Contexts(context.Background())
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, "", seen[0])
	assert.Equal(t, "Bearer nuevo", seen[1])
}

// =============================================================================
// CHAT QUERY TESTS
// =============================================================================

func TestClient_Query_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/query", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{
			"answer": "El artículo 5 establece...",
			"sources": [{"source": "acta_2024.pdf", "page": 12}],
			"history_id": 7
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("T"), nil)
	result, err := client.Query(context.Background(), "¿qué dice el artículo 5?", nil)
	require.NoError(t, err)
	assert.Equal(t, "El artículo 5 establece...", result.Answer)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "acta_2024.pdf", result.Sources[0].Source)
	assert.Equal(t, 12, result.Sources[0].Page)
	require.NotNil(t, result.HistoryID)
	assert.Equal(t, 7, *result.HistoryID)
}

func TestClient_Query_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Error al procesar la consulta"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("T"), nil)
	_, err := client.Query(context.Background(), "pregunta", nil)
	require.Error(t, err)
	assert.False(t, IsAuthError(err))
	assert.Equal(t, "Error al procesar la consulta", ServerMessage(err, "fallback"))
}

// =============================================================================
// STATS DECODING TESTS
// =============================================================================

func TestClient_AdminStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/stats/demographics":
			w.Write([]byte(`[{"group":"Buenos Aires","count":12},{"group":"CABA","count":8}]`))
		case "/admin/stats/usage":
			w.Write([]byte(`[{"date":"2025-03-09","count":4}]`))
		case "/admin/stats/top-queries":
			w.Write([]byte(`[{"group":"¿qué es una versión taquigráfica?","count":3}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken("T"), nil)
	ctx := context.Background()

	demo, err := client.Demographics(ctx)
	require.NoError(t, err)
	require.Len(t, demo, 2)
	assert.Equal(t, "Buenos Aires", demo[0].Group)

	usage, err := client.Usage(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, float64(4), usage[0].Count)

	top, err := client.TopQueries(ctx)
	require.NoError(t, err)
	require.Len(t, top, 1)
}

// =============================================================================
// ERROR FALLBACK TESTS
// =============================================================================

func TestServerMessage_Fallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewClient(server.URL, StaticToken(""), nil)
	err := client.Register(context.Background(), "a@b.com", "secret")
	require.Error(t, err)
	assert.Equal(t, "Error al registrar", ServerMessage(err, "Error al registrar"))
}
