// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m *Model) View() string {
	switch m.screen {
	case ScreenLoading:
		return m.spinner.View() + " " + m.tr.T("common.loading")
	case ScreenLogin:
		return m.viewLogin()
	case ScreenBrowse:
		return m.viewBrowse()
	case ScreenDetail:
		return m.viewDetail()
	case ScreenEditor:
		return m.viewEditor()
	case ScreenForbidden:
		return m.viewForbidden()
	}
	return ""
}

func (m *Model) viewForbidden() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.ErrorBox.Render(m.tr.T("auth.denied")),
		m.theme.Muted.Render("esc "+m.tr.T("common.back")),
	)
}
