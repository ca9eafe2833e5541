// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable view fragments shared by the
// docdeck screens: document cards, the tag filter bar, the pagination
// strip, the status bar, and the upload progress line.
package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/ui/styles"
	"github.com/jeranaias/docdeck/internal/util"
)

// DocCard renders one document summary row for the browse list.
func DocCard(theme *styles.Theme, doc model.DocSummary, width int, selected, showOwner bool) string {
	if width < 20 {
		width = 20
	}
	inner := width - 4 // card border and padding

	title := theme.CardTitle.Render(util.TruncateWidth(util.FirstLine(doc.Title), inner))

	var meta []string
	if showOwner && doc.OwnerNickName != "" {
		meta = append(meta, doc.OwnerNickName)
	}
	if d := FormatDate(doc.UpdatedAt); d != "" {
		meta = append(meta, d)
	}
	if doc.PV > 0 {
		meta = append(meta, fmt.Sprintf("%d views", doc.PV))
	}
	if doc.Comments > 0 {
		meta = append(meta, fmt.Sprintf("%d comments", doc.Comments))
	}
	visibility := theme.Private.Render("private")
	if doc.IsPublic {
		visibility = theme.Public.Render("public")
	}
	metaLine := theme.Muted.Render(util.TruncateWidth(strings.Join(meta, " · "), inner-12)) + " " + visibility

	lines := []string{title, metaLine}
	if len(doc.Tags) > 0 {
		tags := make([]string, 0, len(doc.Tags))
		for _, t := range doc.Tags {
			tags = append(tags, theme.Tag.Render("#"+t.Name))
		}
		lines = append(lines, util.TruncateWidth(strings.Join(tags, " "), inner))
	}

	card := theme.Card.Width(width - 2)
	if selected {
		card = card.BorderForeground(styles.Cyan)
	}
	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// dateLayouts are the timestamp formats different backend versions emit.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a backend timestamp the way the document list shows
// it: time of day for entries from the last day, date otherwise. An
// unparseable value passes through unchanged rather than disappearing.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if time.Since(t) < 24*time.Hour && time.Since(t) >= 0 {
			return t.Local().Format("15:04")
		}
		return t.Local().Format("2006-01-02")
	}
	return raw
}
