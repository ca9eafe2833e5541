// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the single entry point of the event loop: global concerns
// first (resize, quit, spinner, bootstrap), then per-screen dispatch.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sizeDetailViewport()
		m.sizeEditor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ClearStatusMsg:
		m.status = ""
		return m, nil

	case BootstrapDoneMsg:
		if cmd, fatal := m.routeError(msg.Err); fatal {
			return m, cmd
		}
		m.switchTo(ScreenBrowse)
		m.browse.loading = true
		return m, tea.Batch(m.loadDocsCmd(), m.loadBoundTagsCmd())

	case SignOutDoneMsg:
		// Local state is already cleared; the session is gone either way.
		m.switchTo(ScreenLogin)
		return m, nil

	case AuthRequiredMsg:
		// The client's 401 hook fired: whatever screen was up, the
		// session is gone and only the login surface makes sense.
		if m.screen != ScreenLogin {
			m.switchTo(ScreenLogin)
		}
		return m, nil

	case ForbiddenMsg:
		if m.screen != ScreenForbidden {
			m.switchTo(ScreenForbidden)
		}
		return m, nil

	case tea.KeyMsg:
		// Quit works everywhere except inside text entry.
		if msg.Type == tea.KeyCtrlC {
			m.drafts.Close()
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Quit) && !m.textEntryActive() {
			m.drafts.Close()
			return m, tea.Quit
		}
	}

	switch m.screen {
	case ScreenLogin:
		return m.updateLogin(msg)
	case ScreenBrowse:
		return m.updateBrowse(msg)
	case ScreenDetail:
		return m.updateDetail(msg)
	case ScreenEditor:
		return m.updateEditor(msg)
	case ScreenForbidden:
		return m.updateForbidden(msg)
	}
	return m, nil
}

// textEntryActive reports whether a focused input should swallow plain
// letter keys (so "q" types a q instead of quitting).
func (m *Model) textEntryActive() bool {
	switch m.screen {
	case ScreenEditor, ScreenLogin:
		return true
	case ScreenBrowse:
		return m.browse.focus == focusSearch
	}
	return false
}

func (m *Model) updateForbidden(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
			m.switchTo(ScreenBrowse)
			m.browse.loading = true
			return m, m.loadDocsCmd()
		}
	}
	return m, nil
}
