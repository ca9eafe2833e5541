// docdeck - a terminal client for the team document service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/cli"
	"github.com/jeranaias/docdeck/internal/config"
	"github.com/jeranaias/docdeck/internal/session"
	"github.com/jeranaias/docdeck/internal/store"
	"github.com/jeranaias/docdeck/internal/ui/app"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdLogin:
		cli.HandleLogin(args)
	case cli.CmdLogout:
		cli.HandleLogout(args)
	case cli.CmdDocs:
		cli.HandleDocs(args)
	case cli.CmdConfig:
		cli.HandleConfig(args)
	case cli.CmdLang:
		cli.HandleLang(args)
	case cli.CmdVersion:
		cli.HandleVersion(args)
	case cli.CmdHelp:
		cli.HandleHelp(args)
	default:
		runTUI(args)
	}
}

// runTUI starts the full-screen terminal interface.
func runTUI(args *cli.Args) {
	cfg := config.Global()
	if args.Backend != "" {
		cfg.Server.BackendURL = args.Backend
	}
	if cfg.Server.BackendURL == "" {
		fmt.Fprintln(os.Stderr, "Error: no backend configured")
		fmt.Fprintln(os.Stderr, "Run 'docdeck config set server.backend_url https://...' first.")
		os.Exit(1)
	}

	client, err := api.New(cfg.Server.BackendURL, time.Duration(cfg.Server.TimeoutSecs)*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	st, err := store.OpenDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open local store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	sess := session.New(client, cfg.Server.SSOURL)
	m := app.New(cfg, client, sess, st, cli.NormalizeQuery(args.Query, args.Page))

	// Reload config edits made while the TUI runs; new values apply on the
	// next read of the global config.
	watcher, err := config.NewWatcher(500*time.Millisecond, nil)
	if err == nil {
		if err := watcher.Watch(); err == nil {
			defer watcher.Close()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	// A 401/403 on any in-flight request yanks the program to the matching
	// surface, no matter which command tripped it.
	client.OnAuthRequired = func() { p.Send(app.AuthRequiredMsg{}) }
	client.OnForbidden = func() { p.Send(app.ForbiddenMsg{}) }

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running docdeck: %v\n", err)
		os.Exit(1)
	}
}
