// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the pre-built styles every screen shares. Build one at
// startup and pass it down; styles are cheap to copy per render.
type Theme struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Tag        lipgloss.Style
	TagActive  lipgloss.Style
	Public     lipgloss.Style
	Private    lipgloss.Style
	StatusBar  lipgloss.Style
	PageActive lipgloss.Style
	PageIdle   lipgloss.Style
	ErrorBox   lipgloss.Style
	Card       lipgloss.Style
	CardTitle  lipgloss.Style
}

// NewTheme builds the shared theme. mode is the configured preference:
// "dark", "light", or "auto" (follow the terminal background).
func NewTheme(mode string) *Theme {
	switch mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}

	return &Theme{
		Title:      lipgloss.NewStyle().Foreground(Cyan).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(TextSecondary),
		Label:      lipgloss.NewStyle().Foreground(TextSecondary).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(TextMuted),
		Selected:   lipgloss.NewStyle().Background(SelectionBg).Foreground(TextPrimary),
		Tag:        lipgloss.NewStyle().Foreground(Purple),
		TagActive:  lipgloss.NewStyle().Background(Purple).Foreground(TextInverse).Padding(0, 1),
		Public:     lipgloss.NewStyle().Foreground(Emerald),
		Private:    lipgloss.NewStyle().Foreground(Amber),
		StatusBar:  lipgloss.NewStyle().Background(SurfaceDim).Foreground(TextSecondary).Padding(0, 1),
		PageActive: lipgloss.NewStyle().Background(Cyan).Foreground(TextInverse).Padding(0, 1).Bold(true),
		PageIdle:   lipgloss.NewStyle().Foreground(TextSecondary).Padding(0, 1),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Rose).
			Foreground(Rose).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Overlay).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Foreground(TextPrimary).Bold(true),
	}
}
