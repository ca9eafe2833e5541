// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"reflect"
	"testing"

	"github.com/jeranaias/docdeck/internal/config"
	"github.com/jeranaias/docdeck/internal/search"
)

func testConfig() *config.Config {
	return config.Default()
}

func TestParseArgs_Commands(t *testing.T) {
	tests := []struct {
		argv []string
		want Command
	}{
		{nil, CmdTUI},
		{[]string{"tui"}, CmdTUI},
		{[]string{"login"}, CmdLogin},
		{[]string{"logout"}, CmdLogout},
		{[]string{"docs"}, CmdDocs},
		{[]string{"d"}, CmdDocs},
		{[]string{"config"}, CmdConfig},
		{[]string{"lang"}, CmdLang},
		{[]string{"version"}, CmdVersion},
		{[]string{"-v"}, CmdVersion},
		{[]string{"help"}, CmdHelp},
		{[]string{"--help"}, CmdHelp},
		{[]string{"frobnicate"}, CmdHelp},
	}
	for _, tt := range tests {
		if cmd, _ := parseArgs(tt.argv); cmd != tt.want {
			t.Errorf("parseArgs(%v) = %v, want %v", tt.argv, cmd, tt.want)
		}
	}
}

func TestParseArgs_DocsFlags(t *testing.T) {
	cmd, args := parseArgs([]string{"docs", "--q", "deploy", "--page", "2", "--json"})
	if cmd != CmdDocs {
		t.Fatalf("cmd = %v", cmd)
	}
	if args.Query != "deploy" || args.Page != 2 || !args.JSON {
		t.Errorf("args = %+v", args)
	}
}

func TestParseArgs_TagFlagBecomesToken(t *testing.T) {
	_, args := parseArgs([]string{"docs", "--q", "deploy", "--tag", "infra"})
	if args.Query != "deploy tag:infra" {
		t.Errorf("Query = %q", args.Query)
	}

	_, args = parseArgs([]string{"docs", "--tag", "infra"})
	if args.Query != "tag:infra" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgs_DocsGet(t *testing.T) {
	_, args := parseArgs([]string{"docs", "get", "0f9c3b"})
	if args.Subcommand != "get" || args.DocID != "0f9c3b" {
		t.Errorf("args = %+v", args)
	}
}

func TestParseArgs_ConfigSet(t *testing.T) {
	_, args := parseArgs([]string{"config", "set", "docs.page_size", "20"})
	if args.Subcommand != "set" || args.ConfigKey != "docs.page_size" || args.ConfigVal != "20" {
		t.Errorf("args = %+v", args)
	}
}

func TestParseArgs_Lang(t *testing.T) {
	_, args := parseArgs([]string{"lang", "en"})
	if args.Language != "en" {
		t.Errorf("Language = %q", args.Language)
	}
}

func TestArgParser(t *testing.T) {
	p := NewArgParser([]string{"docs", "--q=deploy notes", "--json", "--page", "3", "get", "abc"})

	if got := p.Flag("q"); got != "deploy notes" {
		t.Errorf("q = %q", got)
	}
	if !p.BoolFlag("json") {
		t.Error("json flag not set")
	}
	if got := p.IntFlag("page", 1); got != 3 {
		t.Errorf("page = %d", got)
	}
	if got := p.Positional(); !reflect.DeepEqual(got, []string{"docs", "get", "abc"}) {
		t.Errorf("positional = %v", got)
	}
}

func TestArgParser_BooleanDoesNotSwallowPositional(t *testing.T) {
	p := NewArgParser([]string{"--quiet", "docs"})
	if !p.BoolFlag("quiet") {
		t.Error("quiet flag not set")
	}
	if got := p.Positional(); !reflect.DeepEqual(got, []string{"docs"}) {
		t.Errorf("positional = %v", got)
	}
}

func TestArgParser_IntFlagMalformed(t *testing.T) {
	p := NewArgParser([]string{"--page", "many"})
	if got := p.IntFlag("page", 1); got != 1 {
		t.Errorf("page = %d, want default", got)
	}
}

func TestQueryTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"deploy notes", []string{"deploy", "notes"}},
		{"deploy tag:infra", []string{"deploy", "tag:infra"}},
		{"q=deploy%2Ctag%3Ainfra&page=2", []string{"deploy", "tag:infra"}},
	}
	for _, tt := range tests {
		tokens := queryTokens(tt.in)
		got := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			got = append(got, string(tok))
		}
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("queryTokens(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		raw      string
		page     int
		want     []search.Token
		wantPage int
	}{
		{"", 1, nil, 1},
		{"deploy tag:infra", 1, []search.Token{"deploy", "tag:infra"}, 1},
		{"deploy", 3, []search.Token{"deploy"}, 3},
		{"q=deploy&page=2", 1, []search.Token{"deploy"}, 2},
		{"q=deploy&page=2", 5, []search.Token{"deploy"}, 5},
	}
	for _, tt := range tests {
		got := search.Decode(NormalizeQuery(tt.raw, tt.page))
		if got.Page != tt.wantPage {
			t.Errorf("NormalizeQuery(%q, %d): page = %d, want %d", tt.raw, tt.page, got.Page, tt.wantPage)
		}
		if len(got.Tokens) != len(tt.want) {
			t.Errorf("NormalizeQuery(%q, %d): tokens = %v, want %v", tt.raw, tt.page, got.Tokens, tt.want)
			continue
		}
		for i := range tt.want {
			if got.Tokens[i] != tt.want[i] {
				t.Errorf("NormalizeQuery(%q, %d): tokens = %v, want %v", tt.raw, tt.page, got.Tokens, tt.want)
				break
			}
		}
	}

	// The canonical form of an empty search is the empty string, so the
	// TUI's "restore the saved slot" path still triggers.
	if got := NormalizeQuery("", 1); got != "" {
		t.Errorf("NormalizeQuery(empty) = %q, want \"\"", got)
	}
}

func TestNewRuntime(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	config.ResetGlobalForTesting()

	rt, err := newRuntime(&Args{Backend: "http://127.0.0.1:9"})
	if err != nil {
		t.Fatalf("newRuntime: %v", err)
	}
	defer rt.close()

	if rt.client == nil || rt.sess == nil {
		t.Fatal("runtime missing client or session")
	}
	// Commands rely on the 401 hook to point the user back at login.
	if rt.client.OnAuthRequired == nil {
		t.Error("OnAuthRequired hook not wired")
	}
}

func TestNewRuntime_NoBackend(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	config.ResetGlobalForTesting()

	if _, err := newRuntime(&Args{}); err == nil {
		t.Error("expected error with no backend configured")
	}
}

func TestApplyConfigKey(t *testing.T) {
	cfg := testConfig()
	if err := applyConfigKey(cfg, "docs.page_size", "20"); err != nil {
		t.Fatal(err)
	}
	if cfg.Docs.PageSize != 20 {
		t.Errorf("PageSize = %d", cfg.Docs.PageSize)
	}

	if err := applyConfigKey(cfg, "ui.show_owner", "false"); err != nil {
		t.Fatal(err)
	}
	if cfg.UI.ShowOwner {
		t.Error("ShowOwner still true")
	}

	if err := applyConfigKey(cfg, "docs.page_size", "many"); err == nil {
		t.Error("malformed integer accepted")
	}
	if err := applyConfigKey(cfg, "no.such.key", "x"); err == nil {
		t.Error("unknown key accepted")
	}
}
