// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - configuration show/set commands for docdeck.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/docdeck/internal/config"
)

// HandleConfig dispatches the config subcommands.
func HandleConfig(args *Args) {
	switch args.Subcommand {
	case "", "show":
		handleConfigShow(args)
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			fatal(err)
		}
		fmt.Println(path)
	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			fatal(errors.New("usage: docdeck config set <key> <value>"))
		}
		handleConfigSet(args)
	default:
		fatal(fmt.Errorf("unknown config subcommand: %s", args.Subcommand))
	}
}

func handleConfigShow(args *Args) {
	cfg := config.Global()
	if args.JSON {
		printJSON(cfg)
		return
	}
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		fatal(err)
	}
}

func handleConfigSet(args *Args) {
	cfg := config.Global()
	if err := applyConfigKey(cfg, args.ConfigKey, args.ConfigVal); err != nil {
		fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if err := config.Save(cfg); err != nil {
		fatal(err)
	}
	if !args.Quiet {
		fmt.Printf("%s = %s\n", args.ConfigKey, args.ConfigVal)
	}
}

// applyConfigKey maps a dotted key to its config field. Unknown keys are
// an error rather than silently ignored.
func applyConfigKey(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "language":
		cfg.Language = value
	case "server.backend_url":
		cfg.Server.BackendURL = value
	case "server.sso_url":
		cfg.Server.SSOURL = value
	case "server.frontend_url":
		cfg.Server.FrontendURL = value
	case "server.timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: expected an integer, got %q", key, value)
		}
		cfg.Server.TimeoutSecs = n
	case "docs.page_size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: expected an integer, got %q", key, value)
		}
		cfg.Docs.PageSize = n
	case "docs.remember_search":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected true/false, got %q", key, value)
		}
		cfg.Docs.RememberSearch = b
	case "draft.debounce_millis":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: expected an integer, got %q", key, value)
		}
		cfg.Draft.DebounceMillis = n
	case "draft.max_age_hours":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: expected an integer, got %q", key, value)
		}
		cfg.Draft.MaxAgeHours = n
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_owner":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected true/false, got %q", key, value)
		}
		cfg.UI.ShowOwner = b
	case "ui.compact_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: expected true/false, got %q", key, value)
		}
		cfg.UI.CompactMode = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
