// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import "testing"

func TestSplice(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		start, end  int
		text        string
		want        string
		wantCaret   int
	}{
		{"insert at collapsed caret", "ab123cd", 5, 5, "![x](u)", "ab123![x](u)cd", 12},
		{"insert at start", "abc", 0, 0, "x", "xabc", 1},
		{"insert at end", "abc", 3, 3, "x", "abcx", 4},
		{"replace selection", "hello world", 6, 11, "there", "hello there", 11},
		{"reversed selection normalized", "hello world", 11, 6, "there", "hello there", 11},
		{"offsets clamped", "ab", 10, 20, "c", "abc", 3},
		{"empty content", "", 0, 0, "x", "x", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, caret := Splice(tt.content, tt.start, tt.end, tt.text)
			if got != tt.want || caret != tt.wantCaret {
				t.Errorf("Splice = (%q, %d), want (%q, %d)", got, caret, tt.want, tt.wantCaret)
			}
		})
	}
}

func TestSplice_RuneOffsets(t *testing.T) {
	// Offsets count runes: position 2 in CJK text is after two
	// characters, not two bytes.
	got, caret := Splice("文档系统", 2, 2, "管理")
	if got != "文档管理系统" {
		t.Errorf("content = %q", got)
	}
	if caret != 4 {
		t.Errorf("caret = %d, want 4", caret)
	}
}

func TestWrap(t *testing.T) {
	got, caret := Wrap("make this bold now", 5, 9, "**", "**")
	if got != "make **this** bold now" {
		t.Errorf("content = %q", got)
	}
	if caret != 13 {
		t.Errorf("caret = %d, want 13", caret)
	}

	// Collapsed selection: the caret lands after the suffix, matching a
	// plain insertion of prefix+suffix.
	got, caret = Wrap("ab", 1, 1, "`", "`")
	if got != "a``b" || caret != 3 {
		t.Errorf("Wrap collapsed = (%q, %d)", got, caret)
	}
}

func TestRefs(t *testing.T) {
	if got := ImageRef("x", "u"); got != "![x](u)" {
		t.Errorf("ImageRef = %q", got)
	}
	if got := FileRef("report.pdf", "https://cos/k"); got != "[report.pdf](https://cos/k)" {
		t.Errorf("FileRef = %q", got)
	}
}
