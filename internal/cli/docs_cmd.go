// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// docs_cmd.go - document list and read commands for docdeck.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/markdown"
	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/search"
	"github.com/jeranaias/docdeck/internal/ui/components"
	"github.com/jeranaias/docdeck/internal/util"
)

// HandleDocs dispatches the docs subcommands.
func HandleDocs(args *Args) {
	switch args.Subcommand {
	case "", "list", "ls":
		handleDocsList(args)
	case "get", "show":
		if args.DocID == "" {
			fatal(errors.New("usage: docdeck docs get <id>"))
		}
		handleDocsGet(args)
	default:
		fatal(fmt.Errorf("unknown docs subcommand: %s", args.Subcommand))
	}
}

func handleDocsList(args *Args) {
	rt, err := newRuntime(args)
	if err != nil {
		fatal(err)
	}
	defer rt.close()

	keywords, tags := search.Partition(queryTokens(args.Query))

	ctx, cancel := context.WithTimeout(context.Background(), rt.timeout())
	defer cancel()

	page, err := rt.client.ListDocs(ctx, api.DocQuery{
		Page:     args.Page,
		Size:     rt.cfg.Docs.PageSize,
		Tags:     tags,
		Keywords: strings.Join(keywords, " "),
	})
	if err != nil {
		fatalRequest(err)
	}

	if args.JSON {
		printJSON(page)
		return
	}

	if len(page.Results) == 0 {
		fmt.Println("No documents found.")
		return
	}

	width := TerminalWidth(100)
	titleWidth := width - 46
	if titleWidth < 20 {
		titleWidth = 20
	}
	for _, doc := range page.Results {
		tagNames := make([]string, 0, len(doc.Tags))
		for _, t := range doc.Tags {
			tagNames = append(tagNames, "#"+t.Name)
		}
		fmt.Printf("%s  %s  %s  %s\n",
			util.PadRight(doc.ID, 10),
			util.PadRight(doc.Title, titleWidth),
			util.PadRight(components.FormatDate(doc.UpdatedAt), 12),
			strings.Join(tagNames, " "))
	}

	if !args.Quiet {
		totalPages := (page.Total + rt.cfg.Docs.PageSize - 1) / rt.cfg.Docs.PageSize
		if totalPages < 1 {
			totalPages = 1
		}
		fmt.Printf("\nPage %d of %d (%d documents)\n", args.Page, totalPages, page.Total)
	}
}

func handleDocsGet(args *Args) {
	rt, err := newRuntime(args)
	if err != nil {
		fatal(err)
	}
	defer rt.close()

	ctx, cancel := context.WithTimeout(context.Background(), rt.timeout())
	defer cancel()

	doc, err := rt.client.GetDoc(ctx, args.DocID)
	if err != nil {
		if api.IsNotFound(err) {
			fatal(fmt.Errorf("document %s not found", args.DocID))
		}
		fatalRequest(err)
	}

	if args.JSON {
		printJSON(doc)
		return
	}

	// Piped output gets the raw markdown so the command composes with
	// pagers and converters; a terminal gets the rendered form.
	if !IsStdoutTTY() {
		fmt.Print(doc.Content)
		if !strings.HasSuffix(doc.Content, "\n") {
			fmt.Println()
		}
		return
	}

	printDocHeader(doc)
	renderer := markdown.NewRenderer(TerminalWidth(100))
	fmt.Print(renderer.Render(doc.Content))
}

func printDocHeader(doc *model.DocInfo) {
	fmt.Printf("# %s\n", doc.Title)
	visibility := "private"
	if doc.IsPublic {
		visibility = "public"
	}
	fmt.Printf("  %s · %s · %d views · updated %s\n\n",
		doc.OwnerNickName, visibility, doc.PV, components.FormatDate(doc.UpdatedAt))
}

// queryTokens accepts both CLI forms of a search: a deep-link query
// string ("q=deploy,tag:infra&page=2") and plain space-separated tokens.
func queryTokens(raw string) []search.Token {
	if raw == "" {
		return nil
	}
	if strings.ContainsAny(raw, "=&") {
		return search.Decode(raw).Tokens
	}
	fields := strings.Fields(raw)
	tokens := make([]search.Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, search.Token(f))
	}
	return tokens
}

// NormalizeQuery canonicalizes a command-line search into the encoded
// deep-link form the TUI restores from, accepting the same two shapes
// queryTokens does. An explicit --page wins over a page embedded in an
// encoded query.
func NormalizeQuery(raw string, page int) string {
	if page <= 1 && strings.ContainsAny(raw, "=&") {
		if p := search.Decode(raw).Page; p > 1 {
			page = p
		}
	}
	return search.Encode(queryTokens(raw), page)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(err)
	}
}

// fatalRequest maps gateway failures to actionable messages.
func fatalRequest(err error) {
	switch {
	case api.IsAuthError(err):
		fatal(errors.New("not signed in; run 'docdeck login' first"))
	case api.IsForbidden(err):
		fatal(errors.New("you do not have access to this resource"))
	default:
		fatal(err)
	}
}
