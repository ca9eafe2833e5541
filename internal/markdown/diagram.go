// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"fmt"
	"strings"
)

// diagramFence opens a mermaid code fence. The closing fence is three
// backticks on their own line.
const diagramFence = "```mermaid"

// Diagram is one extracted diagram: its order of appearance and its
// source text. Extraction is a pure function of the content; rendering
// (or, in a terminal, summarizing) happens against the descriptor and
// replaces the matching placeholder, never by re-scanning rendered
// output.
type Diagram struct {
	Index  int
	Source string
}

// Placeholder returns the marker substituted for diagram i during
// extraction.
func Placeholder(i int) string {
	return fmt.Sprintf("[diagram %d]", i+1)
}

// ExtractDiagrams pulls mermaid fenced blocks out of content, replacing
// each with its placeholder, and returns the rewritten content plus the
// descriptors in document order. An unterminated fence is left in place
// untouched.
func ExtractDiagrams(content string) (string, []Diagram) {
	if !strings.Contains(content, diagramFence) {
		return content, nil
	}

	lines := strings.Split(content, "\n")
	var (
		out      []string
		diagrams []Diagram
		body     []string
		bodyAt   = -1
		inFence  bool
	)

	for _, line := range lines {
		switch {
		case !inFence && strings.TrimRight(line, " \t") == diagramFence:
			inFence = true
			bodyAt = len(out)
			body = body[:0]
		case inFence && strings.TrimRight(line, " \t") == "```":
			inFence = false
			diagrams = append(diagrams, Diagram{
				Index:  len(diagrams),
				Source: strings.Join(body, "\n"),
			})
			out = append(out, Placeholder(len(diagrams)-1))
		case inFence:
			body = append(body, line)
		default:
			out = append(out, line)
		}
	}

	if inFence {
		// Unterminated fence: restore it verbatim.
		out = append(out[:bodyAt], append([]string{diagramFence}, body...)...)
	}
	return strings.Join(out, "\n"), diagrams
}

// Summary returns the one-line description shown in place of a diagram
// in terminal output: the diagram kind (its first non-empty source line)
// plus a line count.
func (d Diagram) Summary() string {
	kind := "diagram"
	for _, line := range strings.Split(d.Source, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			kind = t
			break
		}
	}
	lines := strings.Count(d.Source, "\n") + 1
	return fmt.Sprintf("%s (%d lines)", kind, lines)
}
