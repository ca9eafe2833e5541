// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package draft

import (
	"sync"
	"time"
)

// Debouncer is a single-slot delayed task: scheduling always cancels any
// pending task first, so at most one task is ever outstanding and only
// the latest snapshot runs (last-write-wins, no queue). It backs both
// the autosave quiet period and the preview re-render delay.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule runs fn after the quiet period, replacing any pending task.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.fn = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		run := d.fn
		d.fn = nil
		d.mu.Unlock()
		if run != nil {
			run()
		}
	})
}

// Cancel drops any pending task without running it. Mandatory on
// teardown so a stale task cannot fire after its owner is gone.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fn = nil
}

// Flush runs any pending task immediately instead of waiting out the
// quiet period.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	run := d.fn
	d.fn = nil
	d.mu.Unlock()

	if run != nil {
		run()
	}
}

// Pending reports whether a task is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
