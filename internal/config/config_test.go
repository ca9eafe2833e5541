// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Docs.PageSize != 12 {
		t.Errorf("default page size = %d, want 12", cfg.Docs.PageSize)
	}
	if cfg.Draft.MaxAgeHours != 24 {
		t.Errorf("default draft window = %dh, want 24h", cfg.Draft.MaxAgeHours)
	}
	if cfg.Draft.DebounceMillis != 1000 {
		t.Errorf("default debounce = %dms, want 1000ms", cfg.Draft.DebounceMillis)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"relative backend url", func(c *Config) { c.Server.BackendURL = "not-a-url" }, "server.backend_url"},
		{"zero page size", func(c *Config) { c.Docs.PageSize = -1 }, "docs.page_size"},
		{"huge page size", func(c *Config) { c.Docs.PageSize = 500 }, "docs.page_size"},
		{"tiny debounce", func(c *Config) { c.Draft.DebounceMillis = 10 }, "draft.debounce_millis"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, "ui.theme"},
		{"timeout too large", func(c *Config) { c.Server.TimeoutSecs = 9999 }, "server.timeout_secs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention field %q", err, tt.field)
			}
		})
	}
}

func TestSetDefaults_DerivesFrontendOrigin(t *testing.T) {
	cfg := Default()
	cfg.Server.BackendURL = "https://wiki.example.com/api"
	cfg.SetDefaults()
	if cfg.Server.FrontendURL != "https://wiki.example.com" {
		t.Errorf("frontend url = %q, want backend origin", cfg.Server.FrontendURL)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DOCDECK_BACKEND_URL", "https://env.example.com")
	t.Setenv("DOCDECK_PAGE_SIZE", "25")
	t.Setenv("DOCDECK_LANG", "zh-cn")
	t.Setenv("DOCDECK_PAGE_SIZE_BAD", "ignored")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.BackendURL != "https://env.example.com" {
		t.Errorf("backend url = %q", cfg.Server.BackendURL)
	}
	if cfg.Docs.PageSize != 25 {
		t.Errorf("page size = %d, want 25", cfg.Docs.PageSize)
	}
	if cfg.Language != "zh-cn" {
		t.Errorf("language = %q, want zh-cn", cfg.Language)
	}
}

func TestSaveAndLoadTOML_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	want := Default()
	want.Server.BackendURL = "https://wiki.example.com"
	want.Docs.PageSize = 20
	want.Language = "zh-cn"

	if err := SaveTOML(want, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	got := Default()
	if err := LoadTOML(got, path); err != nil {
		t.Fatalf("LoadTOML: %v", err)
	}
	if got.Server.BackendURL != want.Server.BackendURL {
		t.Errorf("backend url = %q, want %q", got.Server.BackendURL, want.Server.BackendURL)
	}
	if got.Docs.PageSize != 20 || got.Language != "zh-cn" {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

// TestConfig_ConcurrentAccess verifies Global/SetGlobal are race-free.
// Run with: go test -race ./internal/config/
func TestConfig_ConcurrentAccess(t *testing.T) {
	ResetGlobalForTesting()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			if Global() == nil {
				t.Error("Global() returned nil")
			}
		}()
	}
	wg.Wait()
}
