// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/jeranaias/docdeck/internal/pagination"
	"github.com/jeranaias/docdeck/internal/ui/styles"
)

// PageBar renders the pagination strip for a window. An empty window
// (single page) renders nothing; callers skip the row entirely.
func PageBar(theme *styles.Theme, w pagination.Window) string {
	if len(w.Pages) == 0 {
		return ""
	}

	var parts []string
	if w.HasPrev {
		parts = append(parts, theme.PageIdle.Render("<"))
	}
	if w.ShowFirst {
		parts = append(parts, theme.PageIdle.Render("1"))
		if w.GapAfterFirst {
			parts = append(parts, theme.Muted.Render("..."))
		}
	}
	for _, p := range w.Pages {
		label := strconv.Itoa(p)
		if p == w.Current {
			parts = append(parts, theme.PageActive.Render(label))
		} else {
			parts = append(parts, theme.PageIdle.Render(label))
		}
	}
	if w.ShowLast {
		if w.GapBeforeLast {
			parts = append(parts, theme.Muted.Render("..."))
		}
		parts = append(parts, theme.PageIdle.Render(strconv.Itoa(w.TotalPages)))
	}
	if w.HasNext {
		parts = append(parts, theme.PageIdle.Render(">"))
	}
	return strings.Join(parts, "")
}
