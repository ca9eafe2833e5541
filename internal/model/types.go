// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the domain types exchanged with the CMS backend.
package model

import (
	"encoding/json"
	"time"
)

// =============================================================================
// RESPONSE ENVELOPE
// =============================================================================

// Envelope is the wrapper every backend response arrives in.
// Callers unwrap Data into the concrete payload type.
type Envelope struct {
	Message string          `json:"message"`
	Trace   string          `json:"trace"`
	Data    json.RawMessage `json:"data"`
}

// Unwrap decodes the envelope payload into out.
func (e *Envelope) Unwrap(out any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

// Paginated is the shape of list endpoints: a total count plus one page
// of results.
type Paginated[T any] struct {
	Total   int `json:"total"`
	Current int `json:"current"`
	Results []T `json:"results"`
}

// =============================================================================
// USER AND SESSION TYPES
// =============================================================================

// UserType distinguishes personal accounts from platform (service) accounts.
type UserType string

const (
	UserTypePersonal UserType = "personal"
	UserTypePlatform UserType = "platform"
)

// UserInfo is the current user as reported by the bootstrap endpoint.
type UserInfo struct {
	Username  string   `json:"username"`
	NickName  string   `json:"nick_name"`
	UserType  UserType `json:"user_type"`
	LastLogin string   `json:"last_login"`
}

// DisplayName returns the nickname when set, otherwise the username.
func (u UserInfo) DisplayName() string {
	if u.NickName != "" {
		return u.NickName
	}
	return u.Username
}

// HomeInfo is the payload of the bootstrap endpoint (GET /).
type HomeInfo struct {
	Resp string   `json:"resp"`
	User UserInfo `json:"user"`
}

// PermissionItem identifies a grantable capability.
type PermissionItem string

const (
	PermCreateDoc  PermissionItem = "create_doc"
	PermUploadFile PermissionItem = "upload_file"
)

// IsValid reports whether the item is a known capability.
func (p PermissionItem) IsValid() bool {
	switch p {
	case PermCreateDoc, PermUploadFile:
		return true
	}
	return false
}

// PermissionGrant is one granted capability with an optional expiry.
// A grant is active iff ExpiredAt is nil or in the future.
type PermissionGrant struct {
	PermissionItem PermissionItem `json:"permission_item"`
	ExpiredAt      *time.Time     `json:"expired_at"`
}

// Active reports whether the grant is currently usable.
func (g PermissionGrant) Active(now time.Time) bool {
	return g.ExpiredAt == nil || g.ExpiredAt.After(now)
}

// FeatureFlags holds the server-controlled feature toggles.
type FeatureFlags struct {
	DocFuzzySearch bool `json:"doc_fuzzy_search"`
}

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// TagInfo is a document tag.
type TagInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DocSummary is one entry of the document list.
type DocSummary struct {
	ID            string    `json:"id"`
	Owner         string    `json:"owner"`
	OwnerNickName string    `json:"owner_nick_name"`
	Title         string    `json:"title"`
	HeaderImg     string    `json:"header_img"`
	IsPublic      bool      `json:"is_public"`
	PV            int       `json:"pv"`
	Comments      int       `json:"comments"`
	Tags          []TagInfo `json:"tags"`
	UpdatedAt     string    `json:"updated_at"`
	CreatedAt     string    `json:"created_at"`
}

// DocInfo is a full document: the summary plus its markdown content.
type DocInfo struct {
	DocSummary
	Content string `json:"content"`
}

// EditDocRequest is the body of create and update calls.
type EditDocRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	HeaderImg string   `json:"header_img"`
	IsPublic  bool     `json:"is_public"`
	Tags      []string `json:"tags"`
}

// DocRef is the minimal response of a successful create/update.
type DocRef struct {
	ID string `json:"id"`
}

// =============================================================================
// UPLOAD CREDENTIAL
// =============================================================================

// UploadCredential is a short-lived, single-file-scoped object-storage
// token. It is requested fresh per upload and never cached; treat it as a
// capability, not state.
type UploadCredential struct {
	CosURL       string `json:"cos_url"`
	CosBucket    string `json:"cos_bucket"`
	CosRegion    string `json:"cos_region"`
	Key          string `json:"key"`
	SecretID     string `json:"secret_id"`
	SecretKey    string `json:"secret_key"`
	Token        string `json:"token"`
	StartTime    int64  `json:"start_time"`
	ExpiredTime  int64  `json:"expired_time"`
	CDNSign      string `json:"cdn_sign"`
	CDNSignParam string `json:"cdn_sign_param"`
	ImageFormat  string `json:"image_format"`
}

// FileURL assembles the public URL for the uploaded object, attaching the
// CDN signature and image-format parameters when the credential carries
// them.
func (c UploadCredential) FileURL() string {
	url := c.CosURL + "/" + c.Key
	sep := "?"
	if c.CDNSign != "" && c.CDNSignParam != "" {
		url += sep + c.CDNSignParam + "=" + c.CDNSign
		sep = "&"
	}
	if c.ImageFormat != "" {
		url += sep + c.ImageFormat
	}
	return url
}
