// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// docdeck: TOML/JSON file loading with defaults, environment overrides,
// validation, a thread-safe global instance, and an fsnotify-based reload
// watcher.
package config
