// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/pagination"
	"github.com/jeranaias/docdeck/internal/search"
	"github.com/jeranaias/docdeck/internal/ui/components"
)

// browseFocus identifies which control on the browse screen owns input.
type browseFocus int

const (
	focusList browseFocus = iota
	focusSearch
	focusTags
)

// browseState is the document-list screen: the query state, the loaded
// page, and the bound-tag quick filters.
type browseState struct {
	query     *search.State
	input     textinput.Model
	focus     browseFocus
	loading   bool
	docs      []model.DocSummary
	total     int
	cursor    int
	boundTags []model.TagInfo
	tagCursor int
	mode      string // fuzzy-search scope, feature-gated
}

func newBrowseState(m *Model, query *search.State) browseState {
	in := textinput.New()
	in.Placeholder = m.tr.T("docs.search")
	in.CharLimit = 120
	in.Width = 40
	return browseState{query: query, input: in, mode: "title"}
}

// =============================================================================
// COMMANDS
// =============================================================================

// loadDocsCmd fetches the page described by the current query state.
func (m *Model) loadDocsCmd() tea.Cmd {
	keywords, tags := m.browse.query.Partition()
	q := api.DocQuery{
		Page:     m.browse.query.Page(),
		Size:     m.cfg.Docs.PageSize,
		Tags:     tags,
		Keywords: strings.Join(keywords, " "),
	}
	if m.session.Features().DocFuzzySearch {
		q.Mode = m.browse.mode
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		page, err := m.client.ListDocs(ctx, q)
		return DocsLoadedMsg{Page: page, Err: err}
	}
}

func (m *Model) loadBoundTagsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tags, err := m.client.ListBoundTags(ctx)
		return BoundTagsMsg{Tags: tags, Err: err}
	}
}

func (m *Model) deleteDocCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return DocDeletedMsg{ID: id, Err: m.client.DeleteDoc(ctx, id)}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	b := &m.browse

	switch msg := msg.(type) {
	case DocsLoadedMsg:
		b.loading = false
		if cmd, fatal := m.routeError(msg.Err); fatal {
			return m, cmd
		}
		b.docs = msg.Page.Results
		b.total = msg.Page.Total
		if b.cursor >= len(b.docs) {
			b.cursor = 0
		}
		return m, nil

	case BoundTagsMsg:
		// Quick filters are decoration; a failed fetch just hides them.
		if msg.Err == nil {
			b.boundTags = msg.Tags
		}
		return m, nil

	case DocDeletedMsg:
		if cmd, fatal := m.routeError(msg.Err); fatal {
			return m, cmd
		}
		b.loading = true
		return m, tea.Batch(m.flashStatus(m.tr.T("common.delete")+" "+m.tr.T("common.confirm"), false), m.loadDocsCmd())

	case tea.KeyMsg:
		return m.browseKeys(msg)
	}
	return m, nil
}

func (m *Model) browseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b := &m.browse

	// Search input owns the keyboard while focused.
	if b.focus == focusSearch {
		switch msg.Type {
		case tea.KeyEnter:
			b.focus = focusList
			b.input.Blur()
			b.query.SetTokens(tokenize(b.input.Value()))
			b.loading = true
			return m, m.loadDocsCmd()
		case tea.KeyEsc:
			b.focus = focusList
			b.input.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return m, cmd
		}
	}

	if b.focus == focusTags {
		switch {
		case key.Matches(msg, m.keys.Left):
			if b.tagCursor > 0 {
				b.tagCursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if b.tagCursor < len(b.boundTags)-1 {
				b.tagCursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Open):
			if b.tagCursor < len(b.boundTags) {
				b.query.ToggleTag(b.boundTags[b.tagCursor].Name)
				b.loading = true
				return m, m.loadDocsCmd()
			}
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Tags):
			b.focus = focusList
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if b.cursor < len(b.docs)-1 {
			b.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if b.cursor < len(b.docs) {
			return m, m.openDetail(b.docs[b.cursor].ID)
		}
	case key.Matches(msg, m.keys.Search):
		b.focus = focusSearch
		b.input.SetValue(joinTokens(b.query.Tokens()))
		return m, b.input.Focus()
	case key.Matches(msg, m.keys.Tags):
		if len(b.boundTags) > 0 {
			b.focus = focusTags
			b.tagCursor = 0
		}
	case key.Matches(msg, m.keys.NewDoc):
		if m.session.HasPermission(model.PermCreateDoc) {
			return m, m.openEditor("")
		}
		return m, m.flashStatus(m.tr.T("auth.denied"), true)
	case key.Matches(msg, m.keys.Delete):
		if b.cursor < len(b.docs) {
			doc := b.docs[b.cursor]
			if u := m.session.User(); u != nil && u.Username == doc.Owner {
				return m, m.deleteDocCmd(doc.ID)
			}
			return m, m.flashStatus(m.tr.T("auth.denied"), true)
		}
	case key.Matches(msg, m.keys.NextPage):
		w := pagination.Compute(b.total, m.cfg.Docs.PageSize, b.query.Page())
		if w.HasNext {
			b.query.SetPage(b.query.Page() + 1)
			b.loading = true
			return m, m.loadDocsCmd()
		}
	case key.Matches(msg, m.keys.PrevPage):
		if b.query.Page() > 1 {
			b.query.SetPage(b.query.Page() - 1)
			b.loading = true
			return m, m.loadDocsCmd()
		}
	case key.Matches(msg, m.keys.Refresh):
		b.loading = true
		return m, tea.Batch(m.loadDocsCmd(), m.loadBoundTagsCmd())
	}
	return m, nil
}

// tokenize splits the raw search input into tokens: whitespace separates
// them, and "tag:" prefixes pass through as tag references.
func tokenize(raw string) []search.Token {
	fields := strings.Fields(raw)
	tokens := make([]search.Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, search.Token(f))
	}
	return tokens
}

func joinTokens(tokens []search.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, " ")
}

// =============================================================================
// VIEW
// =============================================================================

func (m *Model) viewBrowse() string {
	b := &m.browse
	var rows []string

	title := m.theme.Title.Render(m.tr.T("docs.listTitle"))
	if b.loading {
		title += " " + m.spinner.View()
	}
	rows = append(rows, title)

	if b.focus == focusSearch {
		rows = append(rows, b.input.View())
	} else if toks := b.query.Tokens(); len(toks) > 0 {
		rows = append(rows, m.theme.Subtitle.Render("? "+joinTokens(toks)))
	}

	if bar := components.TagBar(m.theme, b.boundTags, activeTags(b.query), tagBarCursor(b), m.width); bar != "" {
		rows = append(rows, bar)
	}

	if len(b.docs) == 0 && !b.loading {
		rows = append(rows, m.theme.Muted.Render(m.tr.T("docs.noDocs")))
	}
	for i, doc := range b.docs {
		rows = append(rows, components.DocCard(m.theme, doc, m.width, i == b.cursor && b.focus == focusList, m.cfg.UI.ShowOwner))
	}

	if bar := components.PageBar(m.theme, pagination.Compute(b.total, m.cfg.Docs.PageSize, b.query.Page())); bar != "" {
		rows = append(rows, bar)
	}
	if s := m.statusLine(); s != "" {
		rows = append(rows, s)
	}
	rows = append(rows, m.statusBar("/ search · t tags · n new · enter open · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func activeTags(q *search.State) []string {
	_, tags := q.Partition()
	return tags
}

func tagBarCursor(b *browseState) int {
	if b.focus == focusTags {
		return b.tagCursor
	}
	return -1
}
