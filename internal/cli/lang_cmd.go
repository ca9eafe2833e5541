// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// lang_cmd.go - UI language command for docdeck.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/docdeck/internal/config"
	"github.com/jeranaias/docdeck/internal/i18n"
)

// HandleLang shows or changes the UI language. Setting a language
// records it locally and mirrors the choice to the backend so web
// sessions stay in the same locale.
func HandleLang(args *Args) {
	if args.Language == "" {
		showLang(args)
		return
	}

	rt, err := newRuntime(args)
	if err != nil {
		fatal(err)
	}
	defer rt.close()

	st, err := rt.storeHandle()
	if err != nil {
		fatal(err)
	}

	code := i18n.Normalize(args.Language)
	ctx, cancel := context.WithTimeout(context.Background(), rt.timeout())
	defer cancel()

	// The local store is authoritative; a failed backend mirror only
	// means the web UI lags until the next sign-in.
	if err := i18n.Persist(ctx, st, rt.client, code); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not mirror language to the server: %v\n", err)
	}

	if !args.Quiet {
		bundle := i18n.Load(code)
		fmt.Println(bundle.T("lang.changed"))
	}
}

func showLang(args *Args) {
	cfg := config.Global()

	var code string
	// lang show works without a backend; fall back to config/env when
	// the store cannot be opened.
	rt, err := newRuntime(args)
	if err == nil {
		defer rt.close()
		if st, serr := rt.storeHandle(); serr == nil {
			code = i18n.Detect(st, cfg.Language)
		}
	}
	if code == "" {
		code = i18n.Detect(nil, cfg.Language)
	}

	if args.JSON {
		fmt.Printf("{\"language\":%q}\n", code)
		return
	}
	fmt.Println(code)
}
