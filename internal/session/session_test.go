// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/model"
)

// backendStub serves the three bootstrap endpoints with configurable
// failure per endpoint.
type backendStub struct {
	failPermissions bool
	failFeatures    bool
}

func (b *backendStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"resp": "welcome",
				"user": map[string]any{"username": "amber", "nick_name": "Amber"},
			},
		})
	})
	mux.HandleFunc("/permissions/", func(w http.ResponseWriter, r *http.Request) {
		if b.failPermissions {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"total": 2,
				"results": []map[string]any{
					{"permission_item": "create_doc"},
					{"permission_item": "upload_file", "expired_at": time.Now().Add(-time.Hour).Format(time.RFC3339)},
				},
			},
		})
	})
	mux.HandleFunc("/features/", func(w http.ResponseWriter, r *http.Request) {
		if b.failFeatures {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"doc_fuzzy_search": true}},
		})
	})
	return mux
}

func newTestManager(t *testing.T, stub *backendStub) *Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return New(client, "https://sso.example.com")
}

func TestBootstrap(t *testing.T) {
	m := newTestManager(t, &backendStub{})

	require.NoError(t, m.Bootstrap(context.Background()))
	require.NotNil(t, m.User())
	assert.Equal(t, "amber", m.User().Username)
	assert.True(t, m.Features().DocFuzzySearch)
}

func TestBootstrap_ToleratesSidecarFailure(t *testing.T) {
	m := newTestManager(t, &backendStub{failPermissions: true, failFeatures: true})

	// Only the user lookup is load-bearing.
	require.NoError(t, m.Bootstrap(context.Background()))
	assert.False(t, m.HasPermission(model.PermCreateDoc))
	assert.False(t, m.Features().DocFuzzySearch)
}

func TestHasPermission_Expiry(t *testing.T) {
	m := newTestManager(t, &backendStub{})
	require.NoError(t, m.Bootstrap(context.Background()))

	// create_doc carries no expiry and never lapses.
	assert.True(t, m.HasPermission(model.PermCreateDoc))
	// upload_file expired an hour ago.
	assert.False(t, m.HasPermission(model.PermUploadFile))
}

func TestLoginURL(t *testing.T) {
	m := New(nil, "https://sso.example.com/")

	assert.Equal(t,
		"https://sso.example.com/login/?next=%2Flogin_callback%2F",
		m.LoginURL(""))
	assert.Equal(t,
		"https://sso.example.com/login/?next=%2Flogin_callback%2F%3Fredirect%3D%252Fdocs%252Fabc%252F",
		m.LoginURL("/docs/abc/"))
	// Off-app return targets are dropped, not encoded.
	assert.Equal(t,
		"https://sso.example.com/login/?next=%2Flogin_callback%2F",
		m.LoginURL("https://evil.example.com/"))
}

func TestHandleCallback(t *testing.T) {
	var gotCode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotCode = body["code"]
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()
	t.Setenv("HOME", t.TempDir())

	client, err := api.New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	m := New(client, "https://sso.example.com")

	tests := []struct {
		name     string
		code     string
		redirect string
		want     string
		wantErr  bool
	}{
		{"restores redirect", "code-1", "/docs/abc/", "/docs/abc/", false},
		{"missing code", "", "/docs/abc/", "/", true},
		{"absolute redirect falls back", "code-2", "https://evil.example.com/", "/", false},
		{"scheme-relative redirect falls back", "code-3", "//evil.example.com/", "/", false},
		{"empty redirect falls back", "code-4", "", "/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.HandleCallback(context.Background(), tt.code, tt.redirect)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.code, gotCode)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignOut_ClearsLocalState(t *testing.T) {
	signedOut := false
	stub := &backendStub{}
	mux := stub.handler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/account/sign_out/" {
			signedOut = true
			json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	defer srv.Close()
	t.Setenv("HOME", t.TempDir())

	client, err := api.New(srv.URL, 5*time.Second)
	require.NoError(t, err)
	m := New(client, "https://sso.example.com")
	require.NoError(t, m.Bootstrap(context.Background()))
	require.NotNil(t, m.User())

	require.NoError(t, m.SignOut(context.Background()))
	assert.True(t, signedOut)
	assert.Nil(t, m.User())
	assert.False(t, m.HasPermission(model.PermCreateDoc))
}
