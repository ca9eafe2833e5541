// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package draft

import (
	"encoding/json"
	"time"

	"github.com/jeranaias/docdeck/internal/store"
)

// Default autosave tuning, overridable through configuration.
const (
	// DefaultDebounce is the quiet period between the last edit and the
	// autosave write.
	DefaultDebounce = time.Second

	// DefaultMaxAge is the freshness window: drafts older than this are
	// treated as expired on hydration, not as an error.
	DefaultMaxAge = 24 * time.Hour
)

// Draft is the client-local snapshot of an unsaved new document. It
// lives in a single fixed slot (one draft, not one per document) and is
// only ever used by the create flow; editing an existing document never
// touches it.
type Draft struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	HeaderImg string   `json:"header_img"`
	IsPublic  bool     `json:"is_public"`
	Tags      []string `json:"tags"`
	// UpdatedAt is epoch milliseconds of the snapshot.
	UpdatedAt int64 `json:"updated_at"`
}

// Empty reports whether the draft carries nothing worth restoring.
func (d Draft) Empty() bool {
	return d.Title == "" && d.Content == "" && d.HeaderImg == "" && len(d.Tags) == 0
}

// =============================================================================
// MANAGER
// =============================================================================

// Manager owns the draft lifecycle: hydrate on editor mount, debounced
// full-snapshot saves while typing, and deletion on successful publish.
type Manager struct {
	store    *store.Store
	debounce *Debouncer
	maxAge   time.Duration
	now      func() time.Time
}

// NewManager creates a draft manager over st. Non-positive tuning values
// fall back to the defaults.
func NewManager(st *store.Store, debounce, maxAge time.Duration) *Manager {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Manager{
		store:    st,
		debounce: NewDebouncer(debounce),
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Hydrate reads the draft slot and returns the stored draft when it is
// fresh enough to restore. A missing, corrupt, or expired draft returns
// ok=false; the editor starts from empty defaults in every such case.
func (m *Manager) Hydrate() (Draft, bool) {
	raw, err := m.store.Get(store.SlotDraft)
	if err != nil {
		return Draft{}, false
	}

	var d Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Draft{}, false
	}

	age := m.now().Sub(time.UnixMilli(d.UpdatedAt))
	if age < 0 || age >= m.maxAge {
		return Draft{}, false
	}
	return d, true
}

// Save schedules a write of the full snapshot after the quiet period. A
// newer snapshot arriving during the wait replaces the pending one, so
// only the latest state is ever persisted.
func (m *Manager) Save(d Draft) {
	m.debounce.Schedule(func() {
		m.write(d)
	})
}

// Flush persists any pending snapshot immediately. Called when the
// editor closes with an autosave still waiting.
func (m *Manager) Flush() {
	m.debounce.Flush()
}

// Clear deletes the draft slot and drops any pending autosave. Called
// right after a successful publish so the next new-document session
// starts clean; the cancel ordering matters, a pending write must not
// resurrect the draft.
func (m *Manager) Clear() error {
	m.debounce.Cancel()
	return m.store.Delete(store.SlotDraft)
}

// Close cancels any pending autosave without persisting it. Used on
// editor teardown paths that should not write (e.g. explicit discard).
func (m *Manager) Close() {
	m.debounce.Cancel()
}

func (m *Manager) write(d Draft) {
	d.UpdatedAt = m.now().UnixMilli()
	data, err := json.Marshal(d)
	if err != nil {
		return
	}
	_ = m.store.Set(store.SlotDraft, string(data))
}
