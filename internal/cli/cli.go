// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for docdeck.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdLogin
	CmdLogout
	CmdDocs
	CmdConfig
	CmdLang
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	JSON    bool
	Backend string // --backend overrides the configured backend URL

	// Command-specific
	Subcommand string
	Query      string // docs: search query (deep-link form or plain keywords)
	Page       int    // docs: page number
	DocID      string // docs get: document id
	ConfigKey  string
	ConfigVal  string
	Language   string // lang: locale code

	// Raw args remaining after parsing
	Raw []string
}

const usageText = `docdeck - terminal client for the team document service

Browse, search, read, and write documents without leaving the terminal.

Usage:
  docdeck                    Start the TUI (default)
  docdeck login              Sign in via the SSO provider
  docdeck logout             Sign out and clear the local session
  docdeck docs [list]        List documents (--q, --page, --tag)
  docdeck docs get <id>      Print one document as markdown
  docdeck config [show|set]  Show or change configuration
  docdeck lang [code]        Show or set the UI language (zh-hans, en)
  docdeck version, -v        Show version information
  docdeck help, -h           Show this help

Flags:
  --backend URL   Override the configured backend URL
  --json          Machine-readable output where supported
  --quiet         Suppress decorative output
  --q QUERY       docs: search tokens ("kubernetes tag:infra")
  --page N        docs: page number
  --tag NAME      docs: filter by tag (repeatable via tag:NAME tokens)

Examples:
  docdeck docs --q "deploy tag:infra" --page 2
  docdeck docs get 0f9c3b
  docdeck config set docs.page_size 20
  docdeck lang en
`

// Parse reads os.Args and returns the command plus its arguments.
func Parse() (Command, *Args) {
	return parseArgs(os.Args[1:])
}

func parseArgs(argv []string) (Command, *Args) {
	args := &Args{Page: 1}
	if len(argv) == 0 {
		return CmdTUI, args
	}

	parser := NewArgParser(argv)
	args.Quiet = parser.BoolFlag("quiet")
	args.JSON = parser.BoolFlag("json")
	args.Backend = parser.Flag("backend")
	args.Query = parser.Flag("q")
	args.Page = parser.IntFlag("page", 1)
	if tag := parser.Flag("tag"); tag != "" {
		if args.Query != "" {
			args.Query += " "
		}
		args.Query += "tag:" + tag
	}
	args.Raw = parser.Positional()

	cmdName := ""
	if len(args.Raw) > 0 {
		cmdName = args.Raw[0]
	}

	switch cmdName {
	case "", "tui":
		return CmdTUI, args
	case "login":
		return CmdLogin, args
	case "logout":
		return CmdLogout, args
	case "docs", "d":
		if len(args.Raw) > 1 {
			args.Subcommand = args.Raw[1]
		}
		if args.Subcommand == "get" && len(args.Raw) > 2 {
			args.DocID = args.Raw[2]
		}
		return CmdDocs, args
	case "config":
		if len(args.Raw) > 1 {
			args.Subcommand = args.Raw[1]
		}
		if args.Subcommand == "set" && len(args.Raw) > 3 {
			args.ConfigKey = args.Raw[2]
			args.ConfigVal = args.Raw[3]
		}
		return CmdConfig, args
	case "lang":
		if len(args.Raw) > 1 {
			args.Language = args.Raw[1]
		}
		return CmdLang, args
	case "version", "-v", "--version":
		return CmdVersion, args
	case "help", "-h", "--help":
		return CmdHelp, args
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmdName)
		return CmdHelp, args
	}
}

// HandleHelp prints usage.
func HandleHelp(*Args) {
	fmt.Print(usageText)
}

// HandleVersion prints build information.
func HandleVersion(args *Args) {
	if args.JSON {
		fmt.Printf(`{"version":%q,"commit":%q,"built":%q,"go":%q}`+"\n",
			Version, GitCommit, BuildDate, runtime.Version())
		return
	}
	fmt.Printf("docdeck %s\n", Version)
	if !args.Quiet {
		fmt.Printf("  commit: %s\n  built:  %s\n  go:     %s %s/%s\n",
			GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
}

// fatal prints an error and exits nonzero.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error: "+strings.TrimSpace(err.Error()))
	os.Exit(1)
}
