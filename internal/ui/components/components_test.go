// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/pagination"
	"github.com/jeranaias/docdeck/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme("dark")
}

func TestFormatDate(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	if got := FormatDate(recent); !strings.Contains(got, ":") {
		t.Errorf("recent timestamp = %q, want time of day", got)
	}

	if got := FormatDate("2024-03-01 10:30:00"); got != "2024-03-01" {
		t.Errorf("old timestamp = %q, want date", got)
	}

	// Unparseable values pass through instead of vanishing.
	if got := FormatDate("soon"); got != "soon" {
		t.Errorf("garbage = %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Errorf("empty = %q", got)
	}
}

func TestDocCard(t *testing.T) {
	doc := model.DocSummary{
		ID:            "d1",
		Title:         "Deployment notes",
		OwnerNickName: "Amber",
		IsPublic:      true,
		PV:            12,
		Tags:          []model.TagInfo{{ID: "t1", Name: "infra"}},
		UpdatedAt:     "2024-03-01 10:30:00",
	}

	out := DocCard(testTheme(), doc, 60, false, true)
	for _, want := range []string{"Deployment notes", "Amber", "#infra", "public", "12 views"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}

	out = DocCard(testTheme(), model.DocSummary{Title: "Hidden", IsPublic: false}, 60, false, false)
	if !strings.Contains(out, "private") {
		t.Errorf("private doc not marked:\n%s", out)
	}
}

func TestPageBar(t *testing.T) {
	out := PageBar(testTheme(), pagination.Compute(100, 12, 5))
	for _, want := range []string{"1", "3", "5", "7", "9", "..."} {
		if !strings.Contains(out, want) {
			t.Errorf("page bar missing %q: %s", want, out)
		}
	}

	if out := PageBar(testTheme(), pagination.Compute(5, 12, 1)); out != "" {
		t.Errorf("single page rendered a bar: %q", out)
	}
}

func TestTagBar(t *testing.T) {
	tags := []model.TagInfo{{Name: "infra"}, {Name: "notes"}}
	out := TagBar(testTheme(), tags, []string{"notes"}, -1, 80)
	if !strings.Contains(out, "#infra") || !strings.Contains(out, "#notes") {
		t.Errorf("tag bar missing tags: %q", out)
	}
	if TagBar(testTheme(), nil, nil, -1, 80) != "" {
		t.Error("empty tag set rendered a bar")
	}
}

func TestStatusBar(t *testing.T) {
	out := StatusBar(testTheme(), "docdeck · amber", "q quit", 60)
	if !strings.Contains(out, "docdeck") || !strings.Contains(out, "q quit") {
		t.Errorf("status bar = %q", out)
	}
	if StatusBar(testTheme(), "x", "y", 0) != "" {
		t.Error("zero width rendered a bar")
	}
}

func TestUploadProgress(t *testing.T) {
	p := NewUploadProgress()
	if p.View(testTheme()) != "" {
		t.Error("idle indicator rendered")
	}
	p.Start("shot.png")
	p.Set(42)
	out := p.View(testTheme())
	if !strings.Contains(out, "shot.png") || !strings.Contains(out, "42%") {
		t.Errorf("progress = %q", out)
	}
	p.Set(150)
	if !strings.Contains(p.View(testTheme()), "100%") {
		t.Error("percent not clamped")
	}
	p.Done()
	if p.Active() {
		t.Error("Active after Done")
	}
}
