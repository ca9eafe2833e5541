// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"reflect"
	"testing"
	"time"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/config"
	"github.com/jeranaias/docdeck/internal/search"
	"github.com/jeranaias/docdeck/internal/session"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	client, err := api.New("http://127.0.0.1:0", time.Second)
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	return New(config.Default(), client, session.New(client, ""), nil, "")
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []search.Token
	}{
		{"cache golang", []search.Token{"cache", "golang"}},
		{"  cache   tag:notes ", []search.Token{"cache", "tag:notes"}},
		{"", []search.Token{}},
	}
	for _, tt := range tests {
		if got := tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoinTokens_RoundTrip(t *testing.T) {
	tokens := []search.Token{"cache", "tag:notes", "golang"}
	if got := tokenize(joinTokens(tokens)); !reflect.DeepEqual(got, tokens) {
		t.Errorf("round trip = %v, want %v", got, tokens)
	}
}

// The client's 401/403 hooks inject these messages from outside the
// event loop; whatever screen is up must yield.
func TestUpdate_SessionHookMessages(t *testing.T) {
	m := testModel(t)

	m.screen = ScreenDetail
	m.Update(AuthRequiredMsg{})
	if m.screen != ScreenLogin {
		t.Errorf("after AuthRequiredMsg: screen = %v, want ScreenLogin", m.screen)
	}

	// Already on login: no screen churn, and prevScreen stays put.
	prev := m.prevScreen
	m.Update(AuthRequiredMsg{})
	if m.screen != ScreenLogin || m.prevScreen != prev {
		t.Errorf("repeat AuthRequiredMsg moved screens: %v (prev %v)", m.screen, m.prevScreen)
	}

	m.screen = ScreenBrowse
	m.Update(ForbiddenMsg{})
	if m.screen != ScreenForbidden {
		t.Errorf("after ForbiddenMsg: screen = %v, want ScreenForbidden", m.screen)
	}
}
