// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/ui/styles"
	"github.com/jeranaias/docdeck/internal/util"
)

// TagBar renders the bound-tag quick filters. active names the tags
// currently part of the query; cursor is the index highlighted for
// keyboard toggling (-1 for none).
func TagBar(theme *styles.Theme, tags []model.TagInfo, active []string, cursor, width int) string {
	if len(tags) == 0 {
		return ""
	}

	activeSet := make(map[string]bool, len(active))
	for _, a := range active {
		activeSet[a] = true
	}

	parts := make([]string, 0, len(tags))
	for i, tag := range tags {
		label := "#" + tag.Name
		var rendered string
		switch {
		case activeSet[tag.Name]:
			rendered = theme.TagActive.Render(label)
		default:
			rendered = theme.Tag.Render(label)
		}
		if i == cursor {
			rendered = theme.Selected.Render(label)
		}
		parts = append(parts, rendered)
	}
	return util.TruncateWidth(strings.Join(parts, " "), width)
}
