// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/jeranaias/docdeck/internal/model"
)

// =============================================================================
// ACCOUNT
// =============================================================================

// Home issues the bootstrap call and returns the current user.
func (c *Client) Home(ctx context.Context) (*model.HomeInfo, error) {
	env, err := c.Send(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return nil, err
	}
	var info model.HomeInfo
	if err := env.Unwrap(&info); err != nil {
		return nil, fmt.Errorf("failed to decode home info: %w", err)
	}
	return &info, nil
}

// SignIn exchanges the SSO authorization code for a session cookie.
func (c *Client) SignIn(ctx context.Context, code string) error {
	_, err := c.Send(ctx, http.MethodPost, signInPath, map[string]string{"code": code}, nil)
	return err
}

// SignOut tears down the server-side session.
func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.Send(ctx, http.MethodGet, "/account/sign_out/", nil, nil)
	return err
}

// =============================================================================
// DOCUMENTS
// =============================================================================

// DocQuery is the document list filter.
type DocQuery struct {
	Page     int
	Size     int
	Tags     []string
	Keywords string
	// Mode is the fuzzy-search scope: "title" (default), "content", "all".
	// Only honored by the backend when the doc_fuzzy_search feature is on.
	Mode string
}

// ListDocs fetches one page of the document list.
func (c *Client) ListDocs(ctx context.Context, q DocQuery) (*model.Paginated[model.DocSummary], error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		params.Set("size", strconv.Itoa(q.Size))
	}
	if len(q.Tags) > 0 {
		params.Set("tags", strings.Join(q.Tags, ","))
	}
	if q.Keywords != "" {
		params.Set("keywords", q.Keywords)
	}
	if q.Mode != "" && q.Mode != "title" {
		params.Set("mode", q.Mode)
	}

	env, err := c.Send(ctx, http.MethodGet, "/docs/", nil, params)
	if err != nil {
		return nil, err
	}
	var page model.Paginated[model.DocSummary]
	if err := env.Unwrap(&page); err != nil {
		return nil, fmt.Errorf("failed to decode document list: %w", err)
	}
	return &page, nil
}

// GetDoc fetches a full document by id.
func (c *Client) GetDoc(ctx context.Context, id string) (*model.DocInfo, error) {
	env, err := c.Send(ctx, http.MethodGet, "/docs/"+id+"/", nil, nil)
	if err != nil {
		return nil, err
	}
	var doc model.DocInfo
	if err := env.Unwrap(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// CreateDoc publishes a new document and returns its id.
func (c *Client) CreateDoc(ctx context.Context, req model.EditDocRequest) (string, error) {
	env, err := c.Send(ctx, http.MethodPost, "/docs/", req, nil)
	if err != nil {
		return "", err
	}
	var ref model.DocRef
	if err := env.Unwrap(&ref); err != nil {
		return "", fmt.Errorf("failed to decode create response: %w", err)
	}
	return ref.ID, nil
}

// UpdateDoc saves an existing document.
func (c *Client) UpdateDoc(ctx context.Context, id string, req model.EditDocRequest) (string, error) {
	env, err := c.Send(ctx, http.MethodPut, "/docs/"+id+"/", req, nil)
	if err != nil {
		return "", err
	}
	var ref model.DocRef
	if err := env.Unwrap(&ref); err != nil {
		return "", fmt.Errorf("failed to decode update response: %w", err)
	}
	return ref.ID, nil
}

// DeleteDoc removes a document.
func (c *Client) DeleteDoc(ctx context.Context, id string) error {
	_, err := c.Send(ctx, http.MethodDelete, "/docs/"+id+"/", nil, nil)
	return err
}

// =============================================================================
// TAGS
// =============================================================================

// ListTags fetches the full tag list (for editor suggestions).
func (c *Client) ListTags(ctx context.Context) ([]model.TagInfo, error) {
	env, err := c.Send(ctx, http.MethodGet, "/tags/", nil, nil)
	if err != nil {
		return nil, err
	}
	tags, _, err := unwrapResults[model.TagInfo](env)
	return tags, err
}

// ListBoundTags fetches the bound tags shown as quick filters.
func (c *Client) ListBoundTags(ctx context.Context) ([]model.TagInfo, error) {
	params := url.Values{}
	params.Set("size", "100")

	env, err := c.Send(ctx, http.MethodGet, "/tags/bound/", nil, params)
	if err != nil {
		return nil, err
	}
	tags, _, err := unwrapResults[model.TagInfo](env)
	return tags, err
}

// =============================================================================
// PERMISSIONS AND FEATURES
// =============================================================================

// ListPermissions fetches the current user's permission grants.
func (c *Client) ListPermissions(ctx context.Context) ([]model.PermissionGrant, error) {
	env, err := c.Send(ctx, http.MethodGet, "/permissions/", nil, nil)
	if err != nil {
		return nil, err
	}
	grants, _, err := unwrapResults[model.PermissionGrant](env)
	return grants, err
}

// GetFeatures fetches the server-side feature flags.
func (c *Client) GetFeatures(ctx context.Context) (*model.FeatureFlags, error) {
	env, err := c.Send(ctx, http.MethodGet, "/features/", nil, nil)
	if err != nil {
		return nil, err
	}
	flags, _, err := unwrapResults[model.FeatureFlags](env)
	if err != nil {
		return nil, err
	}
	if len(flags) == 0 {
		return &model.FeatureFlags{}, nil
	}
	return &flags[0], nil
}

// =============================================================================
// UPLOADS AND LOCALE
// =============================================================================

// TempSecret requests a single-file upload credential scoped to filename.
func (c *Client) TempSecret(ctx context.Context, filename string) (*model.UploadCredential, error) {
	env, err := c.Send(ctx, http.MethodPost, "/cos/temp_secret/", map[string]string{"filename": filename}, nil)
	if err != nil {
		return nil, err
	}
	var cred model.UploadCredential
	if err := env.Unwrap(&cred); err != nil {
		return nil, fmt.Errorf("failed to decode upload credential: %w", err)
	}
	return &cred, nil
}

// ChangeLanguage persists the locale preference server-side.
func (c *Client) ChangeLanguage(ctx context.Context, language string) error {
	_, err := c.Send(ctx, http.MethodPost, "/i18n/", map[string]string{"language": language}, nil)
	return err
}
