// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/docdeck/internal/api"
	"github.com/jeranaias/docdeck/internal/config"
	"github.com/jeranaias/docdeck/internal/draft"
	"github.com/jeranaias/docdeck/internal/i18n"
	"github.com/jeranaias/docdeck/internal/markdown"
	"github.com/jeranaias/docdeck/internal/search"
	"github.com/jeranaias/docdeck/internal/session"
	"github.com/jeranaias/docdeck/internal/store"
	"github.com/jeranaias/docdeck/internal/ui/components"
	"github.com/jeranaias/docdeck/internal/ui/styles"
	"github.com/jeranaias/docdeck/internal/upload"
)

// Screen identifies which surface is active.
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenLogin
	ScreenBrowse
	ScreenDetail
	ScreenEditor
	ScreenForbidden
)

// requestTimeout bounds every network command issued by the UI.
const requestTimeout = 30 * time.Second

// statusFlash is how long a transient status line stays visible.
const statusFlash = 3 * time.Second

// Model is the root Bubble Tea model: shared services plus one
// sub-struct of view state per screen.
type Model struct {
	cfg     *config.Config
	theme   *styles.Theme
	keys    KeyMap
	tr      *i18n.Bundle
	client  *api.Client
	session *session.Manager
	store   *store.Store
	uploads *upload.Uploader
	render  *markdown.Renderer

	screen     Screen
	prevScreen Screen
	width      int
	height     int
	spinner    spinner.Model
	status     string
	statusErr  bool

	browse browseState
	detail detailState
	editor editorState
	login  loginState

	drafts *draft.Manager
}

// New assembles the TUI model. initialQuery is an optional deep-link
// query string for the browse screen (empty means restore the saved
// search state).
func New(cfg *config.Config, client *api.Client, sess *session.Manager, st *store.Store, initialQuery string) *Model {
	theme := styles.NewTheme(cfg.UI.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	searchState := search.NewState(st)
	// An explicit deep link always seeds; the saved slot applies only
	// when the remember-search preference is on.
	if initialQuery != "" || cfg.Docs.RememberSearch {
		searchState.Seed(initialQuery)
	}

	m := &Model{
		cfg:     cfg,
		theme:   theme,
		keys:    DefaultKeyMap(),
		tr:      i18n.Load(i18n.Detect(st, cfg.Language)),
		client:  client,
		session: sess,
		store:   st,
		uploads: upload.New(client),
		render:  markdown.NewRenderer(80),
		screen:  ScreenLoading,
		spinner: sp,
		drafts: draft.NewManager(st,
			time.Duration(cfg.Draft.DebounceMillis)*time.Millisecond,
			time.Duration(cfg.Draft.MaxAgeHours)*time.Hour),
	}
	m.browse = newBrowseState(m, searchState)
	m.login = newLoginState(m)
	return m
}

// Init starts the concurrent bootstrap and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bootstrapCmd())
}

// =============================================================================
// SHARED COMMANDS
// =============================================================================

func (m *Model) bootstrapCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return BootstrapDoneMsg{Err: m.session.Bootstrap(ctx)}
	}
}

func (m *Model) signOutCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return SignOutDoneMsg{Err: m.session.SignOut(ctx)}
	}
}

// flashStatus shows text in the status bar and schedules its removal.
func (m *Model) flashStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusErr = isErr
	return tea.Tick(statusFlash, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// routeError converts a failed request into the right screen change:
// 401 goes to login, 403 to the forbidden surface, anything else to a
// transient error line. Returns true when the error was terminal for
// the current view.
func (m *Model) routeError(err error) (tea.Cmd, bool) {
	switch {
	case err == nil:
		return nil, false
	case api.IsAuthError(err):
		m.switchTo(ScreenLogin)
		return nil, true
	case api.IsForbidden(err):
		m.switchTo(ScreenForbidden)
		return nil, true
	default:
		return m.flashStatus(err.Error(), true), true
	}
}

// switchTo changes the active screen, remembering where we came from so
// Back can restore it.
func (m *Model) switchTo(s Screen) {
	if s != m.screen {
		m.prevScreen = m.screen
		m.screen = s
	}
}

// statusLine renders the transient status, if any.
func (m *Model) statusLine() string {
	switch {
	case m.status == "":
		return ""
	case m.statusErr:
		return styles.RenderError(m.status)
	default:
		return styles.RenderSuccess(m.status)
	}
}

// statusBar renders the persistent bottom bar.
func (m *Model) statusBar(hints string) string {
	left := m.tr.T("app.title")
	if u := m.session.User(); u != nil {
		left += " · " + u.DisplayName()
	}
	return components.StatusBar(m.theme, left, hints, m.width)
}
