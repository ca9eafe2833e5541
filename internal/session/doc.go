// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session manages the signed-in user's lifecycle: the concurrent
// bootstrap of user, permissions, and feature flags; permission checks
// with expiry; and the SSO login/callback/sign-out round trip.
package session
