// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"slices"

	"github.com/jeranaias/docdeck/internal/store"
)

// =============================================================================
// SEARCH STATE
// =============================================================================

// State is the live search state behind the document list: the ordered
// token list and the current page. Every mutation that changes tokens
// resets the page to 1 (a new result set invalidates the old position)
// and mirrors the encoded form into the durable search slot so a later
// session can pick up where this one left off.
//
// State is confined to the UI event loop; it is not safe for concurrent
// mutation.
type State struct {
	store  *store.Store
	tokens []Token
	page   int
}

// NewState creates an empty search state backed by st. st may be nil in
// which case nothing is mirrored (used by tests and one-shot CLI calls).
func NewState(st *store.Store) *State {
	return &State{store: st, page: 1}
}

// Seed initializes the state for a fresh session. An explicit query
// string (a deep link) always wins; only when it is empty does the saved
// slot from the previous session apply.
func (s *State) Seed(explicit string) {
	if explicit == "" && s.store != nil {
		if saved, err := s.store.Get(store.SlotSearch); err == nil {
			explicit = saved
		}
	}
	q := Decode(explicit)
	s.tokens = q.Tokens
	s.page = q.Page
}

// Tokens returns the current token list in insertion order.
func (s *State) Tokens() []Token {
	return slices.Clone(s.tokens)
}

// Page returns the current 1-based page.
func (s *State) Page() int {
	return s.page
}

// Partition returns the current keywords and tag names.
func (s *State) Partition() (keywords, tags []string) {
	return Partition(s.tokens)
}

// Encoded returns the canonical query-string form of the current state.
func (s *State) Encoded() string {
	return Encode(s.tokens, s.page)
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// SetTokens replaces the token list wholesale and resets to page 1.
func (s *State) SetTokens(tokens []Token) {
	s.tokens = dedupe(slices.Clone(tokens))
	s.page = 1
	s.mirror()
}

// AddToken appends a token unless already present, and resets to page 1.
func (s *State) AddToken(t Token) {
	if t == "" || slices.Contains(s.tokens, t) {
		return
	}
	s.tokens = append(s.tokens, t)
	s.page = 1
	s.mirror()
}

// RemoveToken drops a token, and resets to page 1.
func (s *State) RemoveToken(t Token) {
	i := slices.Index(s.tokens, t)
	if i < 0 {
		return
	}
	s.tokens = slices.Delete(s.tokens, i, i+1)
	s.page = 1
	s.mirror()
}

// ToggleTag adds the tag filter if absent, removes it if present. Either
// way the page resets to 1.
func (s *State) ToggleTag(name string) {
	t := TagToken(name)
	if slices.Contains(s.tokens, t) {
		s.RemoveToken(t)
	} else {
		s.AddToken(t)
	}
}

// SetPage moves to page n without touching the token list. This is the
// one transition that does not reset to page 1.
func (s *State) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	s.page = n
	s.mirror()
}

// mirror writes the encoded state to the durable slot. The full snapshot
// is recomputed on every write, so concurrent-session writes degrade to
// last-write-wins rather than corrupting the slot.
func (s *State) mirror() {
	if s.store == nil {
		return
	}
	_ = s.store.Set(store.SlotSearch, s.Encoded())
}
