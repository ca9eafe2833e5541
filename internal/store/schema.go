// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the durable client-side key-value slots.
package store

const (
	// SchemaVersion tracks the database schema version for migrations
	SchemaVersion = 1
)

// SQLite schema for the slot store. One row per logical slot; writes always
// replace the whole value, so there is no read-modify-write on stored data.
const Schema = `
-- Metadata table for schema version
CREATE TABLE IF NOT EXISTS metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
) WITHOUT ROWID;

-- Slots table: one durable value per logical key
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL  -- Unix millis
) WITHOUT ROWID;
`

// InitMetadata initializes the metadata table with default values
const InitMetadata = `
INSERT OR IGNORE INTO metadata (key, value) VALUES ('schema_version', '1');
INSERT OR IGNORE INTO metadata (key, value) VALUES ('created_at', strftime('%s', 'now'));
`

// =============================================================================
// WELL-KNOWN SLOT KEYS
// =============================================================================

// Slot keys. Each key holds a plain string: the draft slot holds the JSON
// draft snapshot, the search slot holds the encoded query string, the
// language slot holds a language code.
const (
	SlotDraft    = "doc_draft"
	SlotSearch   = "doc_search"
	SlotLanguage = "language"
)
