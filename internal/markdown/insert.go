// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import "fmt"

// Insertion edits operate on rune offsets, not bytes: the editor caret
// counts characters, and CJK content makes the two diverge.

// Splice replaces the selection [start, end) of content with text and
// returns the new content plus the caret position immediately after the
// inserted text. Offsets are clamped to the content bounds; a collapsed
// selection (start == end) is a plain insertion.
func Splice(content string, start, end int, text string) (string, int) {
	runes := []rune(content)
	n := len(runes)

	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if end < start {
		start, end = end, start
	}

	inserted := []rune(text)
	out := make([]rune, 0, n-(end-start)+len(inserted))
	out = append(out, runes[:start]...)
	out = append(out, inserted...)
	out = append(out, runes[end:]...)
	return string(out), start + len(inserted)
}

// Wrap surrounds the selection [start, end) with prefix and suffix
// (the bold/italic/code toolbar actions) and returns the new content
// plus the caret position after the suffix.
func Wrap(content string, start, end int, prefix, suffix string) (string, int) {
	runes := []rune(content)
	n := len(runes)

	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if end < start {
		start, end = end, start
	}

	selected := string(runes[start:end])
	return Splice(content, start, end, prefix+selected+suffix)
}

// ImageRef builds the markdown image reference inserted after an image
// upload completes.
func ImageRef(name, url string) string {
	return fmt.Sprintf("![%s](%s)", name, url)
}

// FileRef builds the markdown link reference for non-image uploads.
func FileRef(name, url string) string {
	return fmt.Sprintf("[%s](%s)", name, url)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
