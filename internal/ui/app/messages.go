// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app wires the docdeck screens into one Bubble Tea program.
//
// This file defines the message types flowing through the update loop.
// All network work happens in commands; every command resolves to
// exactly one of these messages carrying either the payload or the
// error (never both handled elsewhere).
package app

import "github.com/jeranaias/docdeck/internal/model"

// BootstrapDoneMsg reports the concurrent user/permission/feature load.
type BootstrapDoneMsg struct {
	Err error
}

// DocsLoadedMsg delivers one page of the document list.
type DocsLoadedMsg struct {
	Page *model.Paginated[model.DocSummary]
	Err  error
}

// BoundTagsMsg delivers the quick-filter tag set.
type BoundTagsMsg struct {
	Tags []model.TagInfo
	Err  error
}

// AllTagsMsg delivers the full tag list for editor suggestions.
type AllTagsMsg struct {
	Tags []model.TagInfo
	Err  error
}

// DocLoadedMsg delivers a full document for the detail or editor screen.
type DocLoadedMsg struct {
	Doc *model.DocInfo
	Err error
}

// DocSavedMsg reports a create or update call.
type DocSavedMsg struct {
	ID       string
	Creating bool
	Err      error
}

// DocDeletedMsg reports a delete call.
type DocDeletedMsg struct {
	ID  string
	Err error
}

// SignInDoneMsg reports the authorization-code exchange.
type SignInDoneMsg struct {
	Err error
}

// SignOutDoneMsg reports session teardown.
type SignOutDoneMsg struct {
	Err error
}

// UploadProgressMsg carries upload percentage updates. The display is
// single-slot: whichever upload reported last owns the indicator.
type UploadProgressMsg struct {
	Filename string
	Percent  int
}

// UploadDoneMsg reports a finished upload. URL is the public object URL
// to splice into the content as a markdown reference.
type UploadDoneMsg struct {
	Filename string
	URL      string
	IsImage  bool
	Err      error
}

// ClearStatusMsg removes the transient status line.
type ClearStatusMsg struct{}

// AuthRequiredMsg is injected from the gateway client's 401 hook: the
// session expired mid-flight, so the program falls back to the login
// surface regardless of which command tripped it.
type AuthRequiredMsg struct{}

// ForbiddenMsg is injected from the gateway client's 403 hook.
type ForbiddenMsg struct{}
