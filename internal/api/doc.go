// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api is the gateway to the CMS backend. It owns the HTTP
// client, the persistent cookie jar, the {message, trace, data} response
// envelope, and the error taxonomy.
//
// Cross-cutting auth handling lives here: a 401 fires the OnAuthRequired
// hook exactly once per response (except on the sign-in exchange itself),
// a 403 fires OnForbidden. Callers receive sentinel errors and never
// implement redirect logic themselves. The client never retries a failed
// request; failures surface once to the caller.
package api
