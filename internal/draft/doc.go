// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package draft implements the editor autosave cycle for unsaved new
// documents: a single durable slot holding the latest full snapshot,
// written after a debounced quiet period, restored on editor mount while
// under the 24-hour freshness window, and deleted on successful publish.
// It is a restart-safety mechanism, not a versioning system.
package draft
