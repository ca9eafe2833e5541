// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements docdeck's command-line surface: argument
// parsing, command dispatch, and the non-TUI commands (login, logout,
// docs, config, lang, version). The default command starts the TUI; the
// rest are plain stdout commands meant to compose with shell pipelines.
package cli
