// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jeranaias/docdeck/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestState_TokenChangeResetsPage(t *testing.T) {
	s := NewState(nil)
	s.SetTokens([]Token{"a"})
	s.SetPage(4)

	s.AddToken("b")
	if s.Page() != 1 {
		t.Errorf("page after AddToken = %d, want 1", s.Page())
	}

	s.SetPage(3)
	s.RemoveToken("b")
	if s.Page() != 1 {
		t.Errorf("page after RemoveToken = %d, want 1", s.Page())
	}

	s.SetPage(5)
	s.ToggleTag("notes")
	if s.Page() != 1 {
		t.Errorf("page after ToggleTag = %d, want 1", s.Page())
	}
}

func TestState_SetPagePreservesTokens(t *testing.T) {
	s := NewState(nil)
	s.SetTokens([]Token{"a", "tag:notes"})

	s.SetPage(6)
	if s.Page() != 6 {
		t.Errorf("page = %d, want 6", s.Page())
	}
	if !reflect.DeepEqual(s.Tokens(), []Token{"a", "tag:notes"}) {
		t.Errorf("tokens changed by SetPage: %v", s.Tokens())
	}
}

func TestState_ToggleTag(t *testing.T) {
	s := NewState(nil)

	s.ToggleTag("notes")
	if !reflect.DeepEqual(s.Tokens(), []Token{"tag:notes"}) {
		t.Fatalf("tokens after first toggle = %v", s.Tokens())
	}
	s.ToggleTag("notes")
	if len(s.Tokens()) != 0 {
		t.Errorf("tokens after second toggle = %v, want empty", s.Tokens())
	}
}

func TestState_AddToken_NoDuplicates(t *testing.T) {
	s := NewState(nil)
	s.AddToken("a")
	s.AddToken("a")
	if !reflect.DeepEqual(s.Tokens(), []Token{"a"}) {
		t.Errorf("tokens = %v, want single a", s.Tokens())
	}
}

func TestState_MirrorAndSeed(t *testing.T) {
	st := openTestStore(t)

	s := NewState(st)
	s.SetTokens([]Token{"cache", "tag:notes"})
	s.SetPage(3)

	// A fresh session with no explicit query picks up the saved state.
	s2 := NewState(st)
	s2.Seed("")
	if !reflect.DeepEqual(s2.Tokens(), []Token{"cache", "tag:notes"}) {
		t.Errorf("seeded tokens = %v", s2.Tokens())
	}
	if s2.Page() != 3 {
		t.Errorf("seeded page = %d, want 3", s2.Page())
	}
}

func TestState_Seed_ExplicitWinsOverSlot(t *testing.T) {
	st := openTestStore(t)

	s := NewState(st)
	s.SetTokens([]Token{"saved"})

	// A deep link always beats the saved slot.
	s2 := NewState(st)
	s2.Seed("q=explicit&page=2")
	if !reflect.DeepEqual(s2.Tokens(), []Token{"explicit"}) {
		t.Errorf("tokens = %v, want explicit", s2.Tokens())
	}
	if s2.Page() != 2 {
		t.Errorf("page = %d, want 2", s2.Page())
	}
}

func TestState_Seed_EmptyEverywhere(t *testing.T) {
	st := openTestStore(t)

	s := NewState(st)
	s.Seed("")
	if len(s.Tokens()) != 0 || s.Page() != 1 {
		t.Errorf("default seed = %v page %d", s.Tokens(), s.Page())
	}
}
