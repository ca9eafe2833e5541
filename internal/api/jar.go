// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeranaias/docdeck/internal/util"
)

// =============================================================================
// PERSISTENT COOKIE JAR
// =============================================================================

// persistentJar wraps the stdlib cookie jar and mirrors the backend's
// cookies to disk so the SSO session survives restarts. The browser does
// this for free; a terminal client has to carry its own jar.
//
// Only name/value pairs are persisted. That is sufficient for the session
// cookie: the backend re-issues attributes on the next response, and an
// expired session simply produces a 401 and a fresh login.
type persistentJar struct {
	mu    sync.Mutex
	inner *cookiejar.Jar
	base  *url.URL
	path  string
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func cookieJarPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".docdeck", "cookies.json"), nil
}

func newPersistentJar(base *url.URL) (*persistentJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	path, err := cookieJarPath()
	if err != nil {
		return nil, err
	}

	jar := &persistentJar{inner: inner, base: base, path: path}
	jar.load()
	return jar, nil
}

// SetCookies implements http.CookieJar.
func (j *persistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
}

// Cookies implements http.CookieJar.
func (j *persistentJar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// load seeds the jar from disk. A missing or corrupt file starts a clean
// session; that is recoverable by logging in again, so no error surfaces.
func (j *persistentJar) load() {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return
	}
	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	j.inner.SetCookies(j.base, cookies)
}

// save mirrors the backend's current cookies to disk.
// SECURITY: 0600 - the session cookie is a bearer credential.
func (j *persistentJar) save() {
	j.mu.Lock()
	defer j.mu.Unlock()

	current := j.inner.Cookies(j.base)
	stored := make([]storedCookie, 0, len(current))
	for _, c := range current {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return
	}
	_ = util.AtomicWriteFile(j.path, data, 0600)
}

// saveCookies flushes the session cookies after a successful request.
func (c *Client) saveCookies() {
	if jar, ok := c.http.Jar.(*persistentJar); ok {
		jar.save()
	}
}

// ClearSession drops all persisted cookies. Called on sign-out.
func (c *Client) ClearSession() {
	jar, ok := c.http.Jar.(*persistentJar)
	if !ok {
		return
	}
	jar.mu.Lock()
	defer jar.mu.Unlock()

	// A fresh inner jar forgets everything; the on-disk mirror is removed.
	if inner, err := cookiejar.New(nil); err == nil {
		jar.inner = inner
	}
	_ = os.Remove(jar.path)
}
