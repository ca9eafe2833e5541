// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search implements the query codec and live state behind the
// document list. A query is an ordered list of tokens - bare keywords
// and "tag:"-prefixed tag references - that round-trips through a single
// comma-joined parameter and is mirrored to a durable slot between
// sessions. The legacy two-field format (separate keywords and tags
// parameters) decodes through a one-way upgrade path and is never
// written back.
package search
