// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/docdeck/internal/ui/styles"
	"github.com/jeranaias/docdeck/internal/util"
)

// StatusBar renders the bottom bar: user identity on the left, context
// hints on the right, padded to the full width.
func StatusBar(theme *styles.Theme, left, right string, width int) string {
	if width <= 0 {
		return ""
	}

	// The bar's Padding(0,1) consumes two columns.
	avail := width - 2
	lw := runewidth.StringWidth(left)
	rw := runewidth.StringWidth(right)

	if lw+rw+1 > avail {
		// Hints win over identity when space runs out.
		left = util.TruncateWidth(left, max(avail-rw-1, 0))
		lw = runewidth.StringWidth(left)
	}
	gap := avail - lw - rw
	if gap < 1 {
		gap = 1
	}
	return theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
