// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/jeranaias/docdeck/internal/ui/styles"
)

// UploadProgress is the single-slot upload indicator shown in the editor
// footer. Only one upload's progress is displayed at a time; a newer
// upload simply supersedes the shown value.
type UploadProgress struct {
	bar      progress.Model
	filename string
	percent  int
	active   bool
}

// NewUploadProgress creates an idle indicator.
func NewUploadProgress() UploadProgress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return UploadProgress{bar: bar}
}

// Start switches the indicator to filename at zero percent.
func (u *UploadProgress) Start(filename string) {
	u.filename = filename
	u.percent = 0
	u.active = true
}

// Set updates the displayed percentage.
func (u *UploadProgress) Set(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	u.percent = percent
}

// Done clears the indicator.
func (u *UploadProgress) Done() {
	u.active = false
}

// Active reports whether an upload is being shown.
func (u *UploadProgress) Active() bool {
	return u.active
}

// View renders the progress line, or "" when idle.
func (u *UploadProgress) View(theme *styles.Theme) string {
	if !u.active {
		return ""
	}
	return fmt.Sprintf("%s %s %d%%",
		theme.Muted.Render(u.filename),
		u.bar.ViewAs(float64(u.percent)/100),
		u.percent)
}
