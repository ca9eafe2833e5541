// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/docdeck/internal/draft"
	"github.com/jeranaias/docdeck/internal/markdown"
	"github.com/jeranaias/docdeck/internal/model"
	"github.com/jeranaias/docdeck/internal/ui/components"
	"github.com/jeranaias/docdeck/internal/upload"
)

// editorField identifies which editor control owns the keyboard.
type editorField int

const (
	fieldTitle editorField = iota
	fieldContent
	fieldTags
	fieldUploadPath
)

// editorState is the create/edit surface. Create mode (empty id) is the
// only mode that touches the draft slot; edit mode loads from the server
// and never autosaves locally.
type editorState struct {
	id      string // empty in create mode
	loading bool
	saving  bool

	title    textinput.Model
	content  textarea.Model
	tagInput textinput.Model
	pathIn   textinput.Model
	focus    editorField

	tags      []string
	isPublic  bool
	headerImg string

	allTags  []model.TagInfo
	progress components.UploadProgress
	progCh   chan UploadProgressMsg
}

// openEditor switches to the editor. An empty id starts a new document,
// hydrating the draft slot when a fresh draft exists; a non-empty id
// loads that document for editing.
func (m *Model) openEditor(id string) tea.Cmd {
	e := editorState{id: id, progress: components.NewUploadProgress()}

	e.title = textinput.New()
	e.title.Placeholder = m.tr.T("editor.title")
	e.title.CharLimit = 200
	e.title.Width = 60

	e.content = textarea.New()
	e.content.CharLimit = 0
	e.content.ShowLineNumbers = false

	e.tagInput = textinput.New()
	e.tagInput.Placeholder = m.tr.T("editor.tagHint")
	e.tagInput.CharLimit = 40
	e.tagInput.Width = 30

	e.pathIn = textinput.New()
	e.pathIn.Placeholder = "path/to/file.png"
	e.pathIn.Width = 60

	m.editor = e
	m.switchTo(ScreenEditor)

	cmds := []tea.Cmd{m.loadAllTagsCmd()}
	if id == "" {
		if d, ok := m.drafts.Hydrate(); ok {
			m.applyDraft(d)
			cmds = append(cmds, m.flashStatus(m.tr.T("editor.draftRestored"), false))
		}
		cmds = append(cmds, m.editor.title.Focus())
	} else {
		m.editor.loading = true
		cmds = append(cmds, m.loadDocForEditCmd(id))
	}
	m.sizeEditor()
	return tea.Batch(cmds...)
}

func (m *Model) applyDraft(d draft.Draft) {
	e := &m.editor
	e.title.SetValue(d.Title)
	e.content.SetValue(d.Content)
	e.headerImg = d.HeaderImg
	e.isPublic = d.IsPublic
	e.tags = slices.Clone(d.Tags)
}

// snapshot captures the current editable fields for autosave.
func (m *Model) snapshot() draft.Draft {
	e := &m.editor
	return draft.Draft{
		Title:     e.title.Value(),
		Content:   e.content.Value(),
		HeaderImg: e.headerImg,
		IsPublic:  e.isPublic,
		Tags:      slices.Clone(e.tags),
	}
}

// autosave schedules a debounced draft write. Create mode only; edit
// mode never touches the slot.
func (m *Model) autosave() {
	if m.editor.id == "" {
		m.drafts.Save(m.snapshot())
	}
}

// =============================================================================
// COMMANDS
// =============================================================================

func (m *Model) loadDocForEditCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		doc, err := m.client.GetDoc(ctx, id)
		return DocLoadedMsg{Doc: doc, Err: err}
	}
}

func (m *Model) loadAllTagsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		tags, err := m.client.ListTags(ctx)
		return AllTagsMsg{Tags: tags, Err: err}
	}
}

func (m *Model) saveDocCmd() tea.Cmd {
	e := &m.editor
	req := model.EditDocRequest{
		Title:     strings.TrimSpace(e.title.Value()),
		Content:   e.content.Value(),
		HeaderImg: e.headerImg,
		IsPublic:  e.isPublic,
		Tags:      slices.Clone(e.tags),
	}
	id := e.id
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if id == "" {
			newID, err := m.client.CreateDoc(ctx, req)
			return DocSavedMsg{ID: newID, Creating: true, Err: err}
		}
		savedID, err := m.client.UpdateDoc(ctx, id, req)
		return DocSavedMsg{ID: savedID, Err: err}
	}
}

// uploadCmd streams the file at path and forwards progress into the
// update loop. The progress channel is drained by listenProgress, which
// re-arms itself until the channel closes.
func (m *Model) uploadCmd(path string) tea.Cmd {
	ch := make(chan UploadProgressMsg, 16)
	m.editor.progCh = ch
	filename := filepath.Base(path)

	do := func() tea.Msg {
		defer close(ch)

		f, err := os.Open(path)
		if err != nil {
			return UploadDoneMsg{Filename: filename, Err: err}
		}
		defer f.Close()
		fi, err := f.Stat()
		if err != nil {
			return UploadDoneMsg{Filename: filename, Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*requestTimeout)
		defer cancel()
		url, err := m.uploads.Upload(ctx, filename, f, fi.Size(), func(p int) {
			// Drop updates rather than block the transfer.
			select {
			case ch <- UploadProgressMsg{Filename: filename, Percent: p}:
			default:
			}
		})
		return UploadDoneMsg{Filename: filename, URL: url, IsImage: upload.IsImage(filename), Err: err}
	}
	return tea.Batch(do, listenProgress(ch))
}

func listenProgress(ch chan UploadProgressMsg) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return p
	}
}

// =============================================================================
// UPDATE
// =============================================================================

func (m *Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	e := &m.editor

	switch msg := msg.(type) {
	case DocLoadedMsg:
		e.loading = false
		if cmd, fatal := m.routeError(msg.Err); fatal {
			return m, cmd
		}
		e.title.SetValue(msg.Doc.Title)
		e.content.SetValue(msg.Doc.Content)
		e.headerImg = msg.Doc.HeaderImg
		e.isPublic = msg.Doc.IsPublic
		e.tags = e.tags[:0]
		for _, t := range msg.Doc.Tags {
			e.tags = append(e.tags, t.Name)
		}
		return m, m.editor.title.Focus()

	case AllTagsMsg:
		// Suggestions only; failure degrades to free-form tag entry.
		if msg.Err == nil {
			e.allTags = msg.Tags
		}
		return m, nil

	case DocSavedMsg:
		e.saving = false
		if cmd, fatal := m.routeError(msg.Err); fatal {
			return m, cmd
		}
		if msg.Creating {
			// Publish succeeded: the slot must be empty before leaving
			// so the next new-document session starts clean.
			if err := m.drafts.Clear(); err != nil {
				return m, m.flashStatus(err.Error(), true)
			}
		}
		cmd := m.flashStatus(m.tr.T("editor.saveSuccess"), false)
		return m, tea.Batch(cmd, m.openDetail(msg.ID))

	case UploadProgressMsg:
		e.progress.Start(msg.Filename)
		e.progress.Set(msg.Percent)
		return m, listenProgress(e.progCh)

	case UploadDoneMsg:
		e.progress.Done()
		if msg.Err != nil {
			// Content stays untouched on a failed upload.
			return m, m.flashStatus(m.tr.T("editor.uploadFailed")+": "+msg.Err.Error(), true)
		}
		ref := markdown.FileRef(msg.Filename, msg.URL)
		if msg.IsImage {
			ref = markdown.ImageRef(msg.Filename, msg.URL)
		}
		e.content.InsertString(ref)
		m.autosave()
		return m, m.flashStatus(fmt.Sprintf("%s %s", msg.Filename, m.tr.T("editor.saveSuccess")), false)

	case tea.KeyMsg:
		return m.editorKeys(msg)
	}
	return m, nil
}

func (m *Model) editorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.editor

	switch msg.Type {
	case tea.KeyCtrlS:
		return m, m.submitDoc()
	case tea.KeyEsc:
		if e.id == "" {
			// Keep the work: flush any pending autosave before leaving.
			m.autosave()
			m.drafts.Flush()
		}
		m.switchTo(ScreenBrowse)
		return m, m.loadDocsCmd()
	case tea.KeyTab:
		m.cycleEditorFocus(1)
		return m, nil
	case tea.KeyShiftTab:
		m.cycleEditorFocus(-1)
		return m, nil
	case tea.KeyCtrlP:
		e.isPublic = !e.isPublic
		m.autosave()
		return m, nil
	case tea.KeyCtrlO:
		if !m.session.HasPermission(model.PermUploadFile) {
			return m, m.flashStatus(m.tr.T("editor.noUploadPerm"), true)
		}
		m.setEditorFocus(fieldUploadPath)
		return m, m.editor.pathIn.Focus()
	}

	switch e.focus {
	case fieldTitle:
		var cmd tea.Cmd
		e.title, cmd = e.title.Update(msg)
		m.autosave()
		return m, cmd

	case fieldContent:
		var cmd tea.Cmd
		e.content, cmd = e.content.Update(msg)
		m.autosave()
		return m, cmd

	case fieldTags:
		if msg.Type == tea.KeyEnter {
			name := strings.TrimSpace(e.tagInput.Value())
			if name != "" && !slices.Contains(e.tags, name) {
				e.tags = append(e.tags, name)
				m.autosave()
			}
			e.tagInput.SetValue("")
			return m, nil
		}
		if msg.Type == tea.KeyBackspace && e.tagInput.Value() == "" && len(e.tags) > 0 {
			e.tags = e.tags[:len(e.tags)-1]
			m.autosave()
			return m, nil
		}
		var cmd tea.Cmd
		e.tagInput, cmd = e.tagInput.Update(msg)
		return m, cmd

	case fieldUploadPath:
		if msg.Type == tea.KeyEnter {
			path := strings.TrimSpace(e.pathIn.Value())
			e.pathIn.SetValue("")
			m.setEditorFocus(fieldContent)
			if path == "" {
				return m, nil
			}
			return m, m.uploadCmd(path)
		}
		var cmd tea.Cmd
		e.pathIn, cmd = e.pathIn.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitDoc validates locally before any request goes out: an empty
// title or content never reaches the backend.
func (m *Model) submitDoc() tea.Cmd {
	e := &m.editor
	if strings.TrimSpace(e.title.Value()) == "" {
		return m.flashStatus(m.tr.T("editor.titleRequired"), true)
	}
	if strings.TrimSpace(e.content.Value()) == "" {
		return m.flashStatus(m.tr.T("editor.contentRequired"), true)
	}
	e.saving = true
	return m.saveDocCmd()
}

func (m *Model) cycleEditorFocus(dir int) {
	order := []editorField{fieldTitle, fieldContent, fieldTags}
	cur := slices.Index(order, m.editor.focus)
	if cur < 0 {
		cur = 0
	}
	next := (cur + dir + len(order)) % len(order)
	m.setEditorFocus(order[next])
}

func (m *Model) setEditorFocus(f editorField) {
	e := &m.editor
	e.title.Blur()
	e.content.Blur()
	e.tagInput.Blur()
	e.pathIn.Blur()
	e.focus = f
	switch f {
	case fieldTitle:
		e.title.Focus()
	case fieldContent:
		e.content.Focus()
	case fieldTags:
		e.tagInput.Focus()
	case fieldUploadPath:
		e.pathIn.Focus()
	}
}

// sizeEditor fits the textarea to the terminal.
func (m *Model) sizeEditor() {
	if m.width == 0 {
		return
	}
	e := &m.editor
	e.content.SetWidth(m.width - 2)
	h := m.height - 9
	if h < 5 {
		h = 5
	}
	e.content.SetHeight(h)
}

// =============================================================================
// VIEW
// =============================================================================

func (m *Model) viewEditor() string {
	e := &m.editor

	if e.loading {
		return m.spinner.View() + " " + m.tr.T("common.loading")
	}

	header := m.tr.T("docs.newDoc")
	if e.id != "" {
		header = m.tr.T("editor.saveDoc")
	}
	title := m.theme.Title.Render(header)
	if e.saving {
		title += " " + m.spinner.View()
	}

	visibility := m.theme.Private.Render(m.tr.T("docs.private"))
	if e.isPublic {
		visibility = m.theme.Public.Render(m.tr.T("docs.public"))
	}

	tagLine := m.theme.Label.Render(m.tr.T("editor.tags")+": ") + renderTagChips(m, e.tags)
	if e.focus == fieldTags {
		tagLine += " " + e.tagInput.View()
		if sugg := m.tagSuggestions(); sugg != "" {
			tagLine += "\n" + m.theme.Muted.Render(sugg)
		}
	}

	rows := []string{
		title,
		m.theme.Label.Render(m.tr.T("editor.title")+": ") + e.title.View(),
		e.content.View(),
		tagLine,
		m.theme.Label.Render(m.tr.T("editor.isPublic")+": ") + visibility,
	}
	if e.focus == fieldUploadPath {
		rows = append(rows, m.theme.Label.Render(m.tr.T("editor.upload")+": ")+e.pathIn.View())
	}
	if p := e.progress.View(m.theme); p != "" {
		rows = append(rows, p)
	}
	if s := m.statusLine(); s != "" {
		rows = append(rows, s)
	}
	rows = append(rows, m.statusBar("ctrl+s save · ctrl+o upload · ctrl+p public · tab fields · esc back"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTagChips(m *Model, tags []string) string {
	if len(tags) == 0 {
		return m.theme.Muted.Render("-")
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, m.theme.Tag.Render("#"+t))
	}
	return strings.Join(parts, " ")
}

// tagSuggestions lists known tags matching the current tag input.
func (m *Model) tagSuggestions() string {
	e := &m.editor
	prefix := strings.ToLower(strings.TrimSpace(e.tagInput.Value()))
	if prefix == "" {
		return ""
	}
	var hits []string
	for _, t := range e.allTags {
		if strings.Contains(strings.ToLower(t.Name), prefix) && !slices.Contains(e.tags, t.Name) {
			hits = append(hits, t.Name)
			if len(hits) == 5 {
				break
			}
		}
	}
	return strings.Join(hits, " ")
}
