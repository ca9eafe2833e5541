// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// auth_cmd.go - login/logout commands for docdeck.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/docdeck/internal/api"
)

// HandleLogin runs the SSO hand-off from the terminal: print the login
// URL, let the user finish the browser round trip, then exchange the
// authorization code they paste back for a session cookie.
func HandleLogin(args *Args) {
	rt, err := newRuntime(args)
	if err != nil {
		fatal(err)
	}
	defer rt.close()

	// This command prints the login URL itself; the runtime's 401 hint
	// would only duplicate it.
	rt.client.OnAuthRequired = nil

	ctx, cancel := context.WithTimeout(context.Background(), rt.timeout())
	defer cancel()

	// A live cookie short-circuits the whole dance.
	if err := rt.sess.Bootstrap(ctx); err == nil {
		if user := rt.sess.User(); user != nil {
			fmt.Printf("Already signed in as %s.\n", user.DisplayName())
			return
		}
	}

	if rt.cfg.Server.SSOURL == "" {
		fatal(errors.New("no SSO provider configured; set server.sso_url"))
	}

	fmt.Println("Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println("  " + rt.sess.LoginURL(""))
	fmt.Println()

	code, err := promptCode()
	if err != nil {
		fatal(err)
	}

	exchCtx, exchCancel := context.WithTimeout(context.Background(), rt.timeout())
	defer exchCancel()
	if _, err := rt.sess.HandleCallback(exchCtx, code, ""); err != nil {
		if api.IsAuthError(err) {
			fatal(errors.New("the provider rejected the authorization code"))
		}
		fatal(err)
	}

	bootCtx, bootCancel := context.WithTimeout(context.Background(), rt.timeout())
	defer bootCancel()
	if err := rt.sess.Bootstrap(bootCtx); err != nil {
		fatal(err)
	}

	user := rt.sess.User()
	if !args.Quiet && rt.sess.Greeting() != "" {
		fmt.Println(rt.sess.Greeting())
	}
	fmt.Printf("Signed in as %s.\n", user.DisplayName())
}

// HandleLogout tears down the session on both sides.
func HandleLogout(args *Args) {
	rt, err := newRuntime(args)
	if err != nil {
		fatal(err)
	}
	defer rt.close()

	ctx, cancel := context.WithTimeout(context.Background(), rt.timeout())
	defer cancel()

	// SignOut clears the local cookie mirror even when the server call
	// fails, so a dead backend cannot trap the user in a stale session.
	if err := rt.sess.SignOut(ctx); err != nil && !api.IsAuthError(err) {
		fmt.Fprintf(os.Stderr, "Warning: server sign-out failed: %v\n", err)
	}
	fmt.Println("Signed out.")
}

// promptCode reads the pasted authorization code. Interactive terminals
// get line editing; piped stdin falls back to a plain read so the login
// flow stays scriptable.
func promptCode() (string, error) {
	if !IsTTY() {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", errors.New("no authorization code on stdin")
		}
		code := strings.TrimSpace(line)
		if code == "" {
			return "", errors.New("empty authorization code")
		}
		return code, nil
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	input, err := line.Prompt("Authorization code: ")
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", errors.New("login aborted")
		}
		return "", err
	}
	code := strings.TrimSpace(input)
	if code == "" {
		return "", errors.New("empty authorization code")
	}
	return code, nil
}
