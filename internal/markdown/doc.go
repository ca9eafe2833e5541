// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown holds the editor's content-manipulation primitives
// (rune-offset caret splicing, upload reference builders) and the
// terminal renderer for document bodies, including the extraction of
// mermaid diagram blocks into placeholder descriptors.
package markdown
