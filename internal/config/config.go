// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// docdeck.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.docdeck/config.toml
//   - ~/.docdeck/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/docdeck/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete docdeck configuration.
type Config struct {
	// Version of the config schema.
	Version string `toml:"version" json:"version"`

	// Language is the UI language code ("en", "zh-cn").
	Language string `toml:"language" json:"language"`

	// Server holds backend and SSO endpoints.
	Server ServerConfig `toml:"server" json:"server"`

	// Docs holds document list behavior.
	Docs DocsConfig `toml:"docs" json:"docs"`

	// Draft holds editor autosave behavior.
	Draft DraftConfig `toml:"draft" json:"draft"`

	// UI holds terminal UI settings.
	UI UIConfig `toml:"ui" json:"ui"`
}

// ServerConfig contains the remote endpoints docdeck talks to.
type ServerConfig struct {
	// BackendURL is the base URL of the CMS REST API.
	BackendURL string `toml:"backend_url" json:"backend_url"`
	// SSOURL is the base URL of the single-sign-on provider.
	SSOURL string `toml:"sso_url" json:"sso_url"`
	// FrontendURL is the origin registered with the SSO provider; the
	// login callback must land on this origin. Defaults to BackendURL's
	// origin when empty.
	FrontendURL string `toml:"frontend_url" json:"frontend_url"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// DocsConfig contains document list behavior.
type DocsConfig struct {
	// PageSize is the number of documents fetched per page.
	PageSize int `toml:"page_size" json:"page_size"`
	// RememberSearch mirrors the current search into the local store and
	// restores it on the next session that starts without an explicit query.
	RememberSearch bool `toml:"remember_search" json:"remember_search"`
}

// DraftConfig contains editor autosave behavior.
type DraftConfig struct {
	// DebounceMillis is the quiet period before an autosave write.
	DebounceMillis int `toml:"debounce_millis" json:"debounce_millis"`
	// MaxAgeHours is the draft freshness window; older drafts are treated
	// as expired and not restored.
	MaxAgeHours int `toml:"max_age_hours" json:"max_age_hours"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto".
	Theme string `toml:"theme" json:"theme"`
	// ShowOwner displays the document owner column in the list view.
	ShowOwner bool `toml:"show_owner" json:"show_owner"`
	// CompactMode uses a denser list layout.
	CompactMode bool `toml:"compact_mode" json:"compact_mode"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version:  "1.0.0",
		Language: "en",

		Server: ServerConfig{
			BackendURL:  "",
			SSOURL:      "",
			FrontendURL: "",
			TimeoutSecs: 30,
		},

		Docs: DocsConfig{
			PageSize:       12,
			RememberSearch: true,
		},

		Draft: DraftConfig{
			DebounceMillis: 1000,
			MaxAgeHours:    24,
		},

		UI: UIConfig{
			Theme:       "dark",
			ShowOwner:   true,
			CompactMode: false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the docdeck configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".docdeck"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	tomlPath, err := ConfigPathTOML()
	if err == nil {
		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	jsonPath, err := ConfigPathJSON()
	if err == nil {
		if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				loadErr = fmt.Errorf("failed to load JSON config: %w", err)
			} else {
				return finishLoad(cfg)
			}
		}
	}

	cfg, err = finishLoad(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, loadErr
}

// LoadFromPath loads configuration from a specific file path with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	return finishLoad(cfg)
}

// finishLoad applies env overrides, defaults, and validation.
func finishLoad(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
// SECURITY: Config files are written 0600; the session cookie jar lives in
// the same directory and the whole tree stays owner-only.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# docdeck configuration file")
	fmt.Fprintln(file, "# Generated by docdeck - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// SaveJSON saves the configuration to a JSON file.
// RELIABILITY: Atomic write with fsync prevents data loss on crash
func SaveJSON(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	for _, field := range []struct {
		name, value string
	}{
		{"server.backend_url", c.Server.BackendURL},
		{"server.sso_url", c.Server.SSOURL},
		{"server.frontend_url", c.Server.FrontendURL},
	} {
		if field.value == "" {
			continue
		}
		u, err := url.Parse(field.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   field.name,
				Message: fmt.Sprintf("must be an absolute URL, got %q", field.value),
			})
		}
	}

	if c.Server.TimeoutSecs < 1 || c.Server.TimeoutSecs > 300 {
		errs = append(errs, ValidationError{
			Field:   "server.timeout_secs",
			Message: fmt.Sprintf("must be 1-300, got %d", c.Server.TimeoutSecs),
		})
	}

	if c.Docs.PageSize < 1 || c.Docs.PageSize > 100 {
		errs = append(errs, ValidationError{
			Field:   "docs.page_size",
			Message: fmt.Sprintf("must be 1-100, got %d", c.Docs.PageSize),
		})
	}

	if c.Draft.DebounceMillis < 100 || c.Draft.DebounceMillis > 60000 {
		errs = append(errs, ValidationError{
			Field:   "draft.debounce_millis",
			Message: fmt.Sprintf("must be 100-60000, got %d", c.Draft.DebounceMillis),
		})
	}

	if c.Draft.MaxAgeHours < 1 {
		errs = append(errs, ValidationError{
			Field:   "draft.max_age_hours",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Draft.MaxAgeHours),
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Language == "" {
		c.Language = defaults.Language
	}
	if c.Server.TimeoutSecs == 0 {
		c.Server.TimeoutSecs = defaults.Server.TimeoutSecs
	}
	// FrontendURL defaults to the backend origin; the two are the same host
	// in single-box deployments.
	if c.Server.FrontendURL == "" && c.Server.BackendURL != "" {
		if u, err := url.Parse(c.Server.BackendURL); err == nil && u.Scheme != "" {
			c.Server.FrontendURL = u.Scheme + "://" + u.Host
		}
	}
	if c.Docs.PageSize == 0 {
		c.Docs.PageSize = defaults.Docs.PageSize
	}
	if c.Draft.DebounceMillis == 0 {
		c.Draft.DebounceMillis = defaults.Draft.DebounceMillis
	}
	if c.Draft.MaxAgeHours == 0 {
		c.Draft.MaxAgeHours = defaults.Draft.MaxAgeHours
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - DOCDECK_BACKEND_URL: overrides server.backend_url
//   - DOCDECK_SSO_URL: overrides server.sso_url
//   - DOCDECK_FRONTEND_URL: overrides server.frontend_url
//   - DOCDECK_PAGE_SIZE: overrides docs.page_size
//   - DOCDECK_LANG: overrides language
//   - DOCDECK_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("DOCDECK_BACKEND_URL"); v != "" {
		c.Server.BackendURL = v
	}
	if v := os.Getenv("DOCDECK_SSO_URL"); v != "" {
		c.Server.SSOURL = v
	}
	if v := os.Getenv("DOCDECK_FRONTEND_URL"); v != "" {
		c.Server.FrontendURL = v
	}
	if v := os.Getenv("DOCDECK_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Docs.PageSize = n
		}
	}
	if v := os.Getenv("DOCDECK_LANG"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("DOCDECK_THEME"); v != "" {
		c.UI.Theme = v
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// ReloadGlobal reloads the global configuration from disk. Thread-safe.
func ReloadGlobal() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
	return nil
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
