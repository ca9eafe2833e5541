// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/model"
)

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager holds everything established at sign-in time: the current user,
// their permission grants, and the server-side feature flags. It is safe
// for concurrent use after Bootstrap.
type Manager struct {
	client *api.Client
	ssoURL string

	mu          sync.RWMutex
	user        *model.UserInfo
	grants      []model.PermissionGrant
	features    model.FeatureFlags
	homeMessage string
}

// New creates a session manager. ssoURL is the identity provider base
// used to build login URLs.
func New(client *api.Client, ssoURL string) *Manager {
	return &Manager{client: client, ssoURL: strings.TrimRight(ssoURL, "/")}
}

// Client exposes the underlying gateway client.
func (m *Manager) Client() *api.Client {
	return m.client
}

// =============================================================================
// BOOTSTRAP
// =============================================================================

// Bootstrap loads the user, their permission grants, and the feature
// flags concurrently. Only the user lookup is load-bearing: a failed
// permission or feature fetch degrades to "no grants" / "defaults off"
// rather than blocking startup. An auth failure on the user lookup is
// returned so the caller can route to login.
func (m *Manager) Bootstrap(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		home     *model.HomeInfo
		homeErr  error
		grants   []model.PermissionGrant
		features *model.FeatureFlags
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		home, homeErr = m.client.Home(ctx)
	}()
	go func() {
		defer wg.Done()
		// RELIABILITY: tolerated failure; the UI simply hides gated actions.
		grants, _ = m.client.ListPermissions(ctx)
	}()
	go func() {
		defer wg.Done()
		features, _ = m.client.GetFeatures(ctx)
	}()
	wg.Wait()

	if homeErr != nil {
		return homeErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &home.User
	m.homeMessage = home.Resp
	m.grants = grants
	if features != nil {
		m.features = *features
	} else {
		m.features = model.FeatureFlags{}
	}
	return nil
}

// User returns the signed-in user, or nil before Bootstrap succeeds.
func (m *Manager) User() *model.UserInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Greeting returns the welcome line from the bootstrap response.
func (m *Manager) Greeting() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.homeMessage
}

// Features returns the feature flags loaded at bootstrap.
func (m *Manager) Features() model.FeatureFlags {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.features
}

// HasPermission reports whether the user currently holds item. Grants
// with a past expiry do not count; grants without an expiry never lapse.
func (m *Manager) HasPermission(item model.PermissionItem) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	for _, g := range m.grants {
		if g.PermissionItem == item && g.Active(now) {
			return true
		}
	}
	return false
}

// =============================================================================
// SIGN-IN / SIGN-OUT
// =============================================================================

// LoginURL builds the SSO login URL. returnTo names the in-app surface
// to restore after the round trip; it rides along in the callback's
// redirect parameter.
func (m *Manager) LoginURL(returnTo string) string {
	callback := "/login_callback/"
	if returnTo != "" && isLocalPath(returnTo) {
		callback += "?redirect=" + url.QueryEscape(returnTo)
	}
	return m.ssoURL + "/login/?next=" + url.QueryEscape(callback)
}

// HandleCallback completes the SSO round trip: it exchanges the
// authorization code for a session and returns the in-app path to
// restore. A missing code or a redirect pointing off-app falls back to
// the root surface.
func (m *Manager) HandleCallback(ctx context.Context, code, redirect string) (string, error) {
	if code == "" {
		return "/", api.ErrUnauthorized
	}
	if err := m.client.SignIn(ctx, code); err != nil {
		return "/", err
	}
	if isLocalPath(redirect) {
		return redirect, nil
	}
	return "/", nil
}

// SignOut tears down the server session and the local cookie mirror.
// The local side is cleared even when the server call fails; a dangling
// server session expires on its own.
func (m *Manager) SignOut(ctx context.Context) error {
	err := m.client.SignOut(ctx)
	m.client.ClearSession()

	m.mu.Lock()
	m.user = nil
	m.grants = nil
	m.features = model.FeatureFlags{}
	m.mu.Unlock()
	return err
}

// isLocalPath accepts only same-app relative paths as redirect targets.
// SECURITY: rejects absolute URLs and scheme-relative ("//evil") forms
// so the callback cannot be used as an open redirector.
func isLocalPath(p string) bool {
	if p == "" || !strings.HasPrefix(p, "/") {
		return false
	}
	if strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return false
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return false
	}
	return true
}
