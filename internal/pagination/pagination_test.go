// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pagination

import (
	"reflect"
	"testing"
)

func TestCompute_CenteredWindow(t *testing.T) {
	// 100 docs at 12 per page is 9 pages; page 5 sits mid-list, so the
	// window is {3..7} with jumps to both ends.
	w := Compute(100, 12, 5)

	if w.TotalPages != 9 {
		t.Fatalf("TotalPages = %d, want 9", w.TotalPages)
	}
	if !reflect.DeepEqual(w.Pages, []int{3, 4, 5, 6, 7}) {
		t.Errorf("Pages = %v, want [3 4 5 6 7]", w.Pages)
	}
	if !w.ShowFirst || !w.ShowLast {
		t.Errorf("ShowFirst/ShowLast = %v/%v, want both true", w.ShowFirst, w.ShowLast)
	}
	if !w.GapAfterFirst || !w.GapBeforeLast {
		t.Errorf("gaps = %v/%v, want both true", w.GapAfterFirst, w.GapBeforeLast)
	}
}

func TestCompute_ClampedAtStart(t *testing.T) {
	w := Compute(100, 12, 1)

	if !reflect.DeepEqual(w.Pages, []int{1, 2, 3, 4, 5}) {
		t.Errorf("Pages = %v, want [1 2 3 4 5]", w.Pages)
	}
	if w.ShowFirst {
		t.Error("ShowFirst = true for window already containing page 1")
	}
	if !w.ShowLast {
		t.Error("ShowLast = false, want true")
	}
	if w.HasPrev {
		t.Error("HasPrev = true on page 1")
	}
}

func TestCompute_ClampedAtEnd(t *testing.T) {
	w := Compute(100, 12, 9)

	if !reflect.DeepEqual(w.Pages, []int{5, 6, 7, 8, 9}) {
		t.Errorf("Pages = %v, want [5 6 7 8 9]", w.Pages)
	}
	if w.ShowLast {
		t.Error("ShowLast = true for window already containing the last page")
	}
	if w.HasNext {
		t.Error("HasNext = true on the last page")
	}
}

func TestCompute_AdjacentEndNoGap(t *testing.T) {
	// Window {2..6} of 7: page 1 gets a jump but no ellipsis, page 7
	// likewise.
	w := Compute(80, 12, 4)

	if w.TotalPages != 7 {
		t.Fatalf("TotalPages = %d, want 7", w.TotalPages)
	}
	if !reflect.DeepEqual(w.Pages, []int{2, 3, 4, 5, 6}) {
		t.Errorf("Pages = %v", w.Pages)
	}
	if !w.ShowFirst || w.GapAfterFirst {
		t.Errorf("first shortcut = %v gap %v, want shortcut without gap", w.ShowFirst, w.GapAfterFirst)
	}
	if !w.ShowLast || w.GapBeforeLast {
		t.Errorf("last shortcut = %v gap %v, want shortcut without gap", w.ShowLast, w.GapBeforeLast)
	}
}

func TestCompute_FewerPagesThanWindow(t *testing.T) {
	w := Compute(30, 12, 2)

	if w.TotalPages != 3 {
		t.Fatalf("TotalPages = %d, want 3", w.TotalPages)
	}
	if !reflect.DeepEqual(w.Pages, []int{1, 2, 3}) {
		t.Errorf("Pages = %v, want [1 2 3]", w.Pages)
	}
	if w.ShowFirst || w.ShowLast {
		t.Error("shortcuts shown for a fully visible page set")
	}
}

func TestCompute_SinglePageHidesStrip(t *testing.T) {
	for _, total := range []int{0, 5, 12} {
		w := Compute(total, 12, 1)
		if len(w.Pages) != 0 {
			t.Errorf("total=%d: Pages = %v, want empty", total, w.Pages)
		}
	}
}

func TestCompute_CurrentClamped(t *testing.T) {
	w := Compute(100, 12, 40)
	if w.Current != 9 {
		t.Errorf("Current = %d, want clamp to 9", w.Current)
	}
	w = Compute(100, 12, -3)
	if w.Current != 1 {
		t.Errorf("Current = %d, want clamp to 1", w.Current)
	}
}
