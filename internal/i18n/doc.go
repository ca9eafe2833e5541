// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n provides the two-locale translation bundles (zh-hans and
// en), BCP 47 matching of arbitrary locale input onto them, and the
// persistence of the chosen locale both locally and to the backend.
package i18n
