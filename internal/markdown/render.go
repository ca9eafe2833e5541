// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
)

// Renderer turns document markdown into styled terminal output. Mermaid
// fences are lifted out before rendering and shown as one-line summaries
// in place; a terminal cannot draw the diagram, but the reader should
// still see that one is there.
type Renderer struct {
	mu    sync.Mutex
	tr    *glamour.TermRenderer
	width int
}

// NewRenderer creates a renderer wrapping at width columns. A zero or
// negative width falls back to 80.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = 80
	}
	r := &Renderer{width: width}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		r.tr = tr
	}
	return r
}

// Render produces terminal output for content. Rendering failures fall
// back to the raw markdown rather than losing the document.
func (r *Renderer) Render(content string) string {
	stripped, diagrams := ExtractDiagrams(content)
	for _, d := range diagrams {
		stripped = strings.Replace(stripped, Placeholder(d.Index),
			"> "+Placeholder(d.Index)+": "+d.Summary(), 1)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tr == nil {
		return highlightFallback(stripped)
	}
	out, err := r.tr.Render(stripped)
	if err != nil {
		return highlightFallback(stripped)
	}
	return out
}

// highlightFallback produces plain syntax-highlighted markdown when the
// full renderer is unavailable. The raw text is the last resort.
func highlightFallback(content string) string {
	var buf strings.Builder
	if err := quick.Highlight(&buf, content, "markdown", "terminal256", "monokai"); err != nil {
		return content
	}
	return buf.String()
}
