// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cross-cutting response classes. The UI layer
// matches on these; everything else is surfaced once and left to the
// caller (no automatic retries anywhere in the client).
var (
	// ErrUnauthorized maps HTTP 401: the session is missing or expired and
	// the login redirect has already been triggered.
	ErrUnauthorized = errors.New("api: unauthorized")

	// ErrForbidden maps HTTP 403: the user lacks access and the forbidden
	// view has already been triggered.
	ErrForbidden = errors.New("api: forbidden")

	// ErrNotFound maps HTTP 404.
	ErrNotFound = errors.New("api: not found")
)

// StatusError is returned for any non-2xx response that is not one of the
// sentinel classes above. Message and Trace come from the response
// envelope when the backend supplied one.
type StatusError struct {
	Code    int
	Message string
	Trace   string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Code)
}

// IsAuthError reports whether err is the 401 class.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsForbidden reports whether err is the 403 class.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsNotFound reports whether err is the 404 class.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
