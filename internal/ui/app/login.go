// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loginState is the sign-in surface: the SSO URL to visit in a browser
// plus the input for the authorization code it hands back. A terminal
// cannot receive the browser redirect, so the code rides back by paste.
type loginState struct {
	code      textinput.Model
	verifying bool
}

func newLoginState(m *Model) loginState {
	in := textinput.New()
	in.Placeholder = "authorization code"
	in.CharLimit = 200
	in.Width = 50
	return loginState{code: in}
}

func (m *Model) signInCmd(code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := m.session.HandleCallback(ctx, code, "")
		return SignInDoneMsg{Err: err}
	}
}

func (m *Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	l := &m.login

	switch msg := msg.(type) {
	case SignInDoneMsg:
		l.verifying = false
		if msg.Err != nil {
			return m, m.flashStatus(m.tr.T("auth.denied"), true)
		}
		// Fresh session: rerun the bootstrap and land on the list.
		m.screen = ScreenLoading
		return m, m.bootstrapCmd()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			code := strings.TrimSpace(l.code.Value())
			if code == "" {
				return m, nil
			}
			l.verifying = true
			l.code.Blur()
			return m, m.signInCmd(code)
		case tea.KeyCtrlC:
			return m, tea.Quit
		default:
			if !l.code.Focused() {
				return m, l.code.Focus()
			}
			var cmd tea.Cmd
			l.code, cmd = l.code.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) viewLogin() string {
	l := &m.login

	rows := []string{
		m.theme.Title.Render(m.tr.T("auth.login")),
		"",
		m.theme.Subtitle.Render(m.tr.T("auth.loginHint")),
		m.theme.Muted.Render(m.session.LoginURL("")),
		"",
		l.code.View(),
	}
	if l.verifying {
		rows = append(rows, m.spinner.View()+" "+m.tr.T("auth.verifying"))
	}
	if s := m.statusLine(); s != "" {
		rows = append(rows, s)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
