// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the domain types exchanged with the CMS backend:
// the response envelope, user/permission/feature types, documents and tags,
// and the single-use object-storage upload credential.
//
// Types mirror the backend's JSON field names exactly; all derived behavior
// (grant expiry, URL assembly) lives on methods so callers never reimplement
// the rules.
package model
