// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides the durable client-side key-value slots backing
// draft autosave, remembered search state, and the selected language. It is
// the native equivalent of the web client's localStorage: plain string
// values, one per logical key, last write wins.
package store
