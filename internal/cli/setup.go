// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// setup.go - Shared wiring for docdeck CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/config"
	"github.com/jeranaias/docdeck/internal/session"
	"github.com/jeranaias/docdeck/internal/store"
)

// cmdRuntime bundles the pieces every networked command needs: the
// loaded config, the gateway client, the session manager, and the local
// store.
type cmdRuntime struct {
	cfg    *config.Config
	client *api.Client
	sess   *session.Manager
	store  *store.Store
}

// newRuntime loads config, applies the --backend override, and wires the
// client stack. The 401 hook prints the login URL to stderr (once per
// run) so a stale session always leaves the user a way back in. The
// local store is opened lazily by storeHandle so that read-only commands
// do not touch the database file.
func newRuntime(args *Args) (*cmdRuntime, error) {
	cfg := config.Global()
	if args.Backend != "" {
		cfg.Server.BackendURL = args.Backend
	}
	if cfg.Server.BackendURL == "" {
		return nil, errors.New("no backend configured; set server.backend_url or pass --backend")
	}

	client, err := api.New(cfg.Server.BackendURL, time.Duration(cfg.Server.TimeoutSecs)*time.Second)
	if err != nil {
		return nil, err
	}

	sess := session.New(client, cfg.Server.SSOURL)

	var loginHint sync.Once
	client.OnAuthRequired = func() {
		loginHint.Do(func() {
			fmt.Fprintf(os.Stderr, "Sign in at: %s\n", sess.LoginURL(""))
		})
	}

	return &cmdRuntime{
		cfg:    cfg,
		client: client,
		sess:   sess,
	}, nil
}

// storeHandle opens the local slot store on first use.
func (r *cmdRuntime) storeHandle() (*store.Store, error) {
	if r.store != nil {
		return r.store, nil
	}
	st, err := store.OpenDefault()
	if err != nil {
		return nil, err
	}
	r.store = st
	return st, nil
}

// close releases whatever the command opened.
func (r *cmdRuntime) close() {
	if r.store != nil {
		r.store.Close()
	}
}

// timeout returns the per-request timeout from config.
func (r *cmdRuntime) timeout() time.Duration {
	return time.Duration(r.cfg.Server.TimeoutSecs) * time.Second
}
