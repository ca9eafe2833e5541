// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/ui/components"
)

// detailState is the read view of one document.
type detailState struct {
	doc      *model.DocInfo
	loading  bool
	notFound bool
	view     viewport.Model
	ready    bool
}

// openDetail switches to the detail screen and starts the fetch.
func (m *Model) openDetail(id string) tea.Cmd {
	m.detail = detailState{loading: true}
	m.switchTo(ScreenDetail)
	return m.loadDocCmd(id)
}

func (m *Model) loadDocCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		doc, err := m.client.GetDoc(ctx, id)
		return DocLoadedMsg{Doc: doc, Err: err}
	}
}

func (m *Model) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &m.detail

	switch msg := msg.(type) {
	case DocLoadedMsg:
		d.loading = false
		if api.IsNotFound(msg.Err) {
			// A bad id renders the dedicated not-found view, not an
			// error toast.
			d.notFound = true
			return m, nil
		}
		if cmd, fatal := m.routeError(msg.Err); fatal {
			return m, cmd
		}
		d.doc = msg.Doc
		m.sizeDetailViewport()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.switchTo(ScreenBrowse)
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			if d.doc != nil {
				if u := m.session.User(); u != nil && u.Username == d.doc.Owner {
					return m, m.openEditor(d.doc.ID)
				}
				return m, m.flashStatus(m.tr.T("auth.denied"), true)
			}
			return m, nil
		}
	}

	if d.ready {
		var cmd tea.Cmd
		d.view, cmd = d.view.Update(msg)
		return m, cmd
	}
	return m, nil
}

// sizeDetailViewport (re)builds the scrollable body once the document
// and terminal size are both known.
func (m *Model) sizeDetailViewport() {
	d := &m.detail
	if d.doc == nil || m.width == 0 {
		return
	}
	headerLines := 3
	h := m.height - headerLines - 2
	if h < 3 {
		h = 3
	}
	if !d.ready {
		d.view = viewport.New(m.width, h)
		d.ready = true
	} else {
		d.view.Width = m.width
		d.view.Height = h
	}
	d.view.SetContent(m.render.Render(d.doc.Content))
}

func (m *Model) viewDetail() string {
	d := &m.detail

	if d.loading {
		return m.spinner.View() + " " + m.tr.T("common.loading")
	}
	if d.notFound || d.doc == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Title.Render(m.tr.T("docs.notExist")),
			m.theme.Muted.Render("esc "+m.tr.T("common.back")),
		)
	}

	var meta []string
	if d.doc.OwnerNickName != "" {
		meta = append(meta, m.tr.T("docs.author")+": "+d.doc.OwnerNickName)
	}
	if ts := components.FormatDate(d.doc.UpdatedAt); ts != "" {
		meta = append(meta, ts)
	}
	if d.doc.IsPublic {
		meta = append(meta, m.tr.T("docs.public"))
	} else {
		meta = append(meta, m.tr.T("docs.private"))
	}
	for _, t := range d.doc.Tags {
		meta = append(meta, m.theme.Tag.Render("#"+t.Name))
	}

	rows := []string{
		m.theme.Title.Render(d.doc.Title),
		m.theme.Muted.Render(strings.Join(meta, " · ")),
		d.view.View(),
	}
	if s := m.statusLine(); s != "" {
		rows = append(rows, s)
	}
	rows = append(rows, m.statusBar("e edit · esc back · q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
