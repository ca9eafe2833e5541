// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pagination computes the windowed page-number strip under the
// document list: a fixed-width run of pages centered on the current one,
// with jump-to-first / jump-to-last shortcuts when the window leaves
// either end uncovered.
package pagination

// windowWidth is the number of page buttons shown at once.
const windowWidth = 5

// Window describes the pagination strip for one list view. It is a pure
// function of (total, pageSize, current); there is no hidden state.
type Window struct {
	// TotalPages is ceil(total/pageSize); 0 when the list is empty.
	TotalPages int
	// Current is the clamped current page.
	Current int
	// Pages is the contiguous run of page numbers to show.
	Pages []int
	// ShowFirst indicates a jump-to-page-1 shortcut before the run.
	ShowFirst bool
	// GapAfterFirst indicates an ellipsis between page 1 and the run.
	GapAfterFirst bool
	// ShowLast indicates a jump-to-last shortcut after the run.
	ShowLast bool
	// GapBeforeLast indicates an ellipsis between the run and the last page.
	GapBeforeLast bool
	// HasPrev and HasNext gate the arrow controls.
	HasPrev bool
	HasNext bool
}

// Compute builds the window for the given list shape. A single page (or
// an empty list) yields a window with no page run at all; callers hide
// the strip entirely in that case.
func Compute(total, pageSize, current int) Window {
	if total <= 0 || pageSize <= 0 {
		return Window{Current: 1}
	}

	totalPages := (total + pageSize - 1) / pageSize
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	if totalPages <= 1 {
		return Window{TotalPages: totalPages, Current: current}
	}

	start := current - windowWidth/2
	if start < 1 {
		start = 1
	}
	end := start + windowWidth - 1
	if end > totalPages {
		end = totalPages
		if start = end - windowWidth + 1; start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}

	return Window{
		TotalPages:    totalPages,
		Current:       current,
		Pages:         pages,
		ShowFirst:     start > 1,
		GapAfterFirst: start > 2,
		ShowLast:      end < totalPages,
		GapBeforeLast: end < totalPages-1,
		HasPrev:       current > 1,
		HasNext:       current < totalPages,
	}
}
