// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

/*
Package debounce provides a single coalescing-timer primitive.

A [Debouncer] guarantees that after a burst of triggers the wrapped function
runs once with the final state, within the configured delay window — not once
per intermediate trigger. At most one pending timer exists per Debouncer;
each new trigger cancels and reschedules it.

Call sites choose [Debouncer.Trigger] for continuous inputs (bursty file
events) and [Debouncer.TriggerNow] for discrete actions that must propagate
immediately. Owners must call [Debouncer.Stop] on teardown so a pending timer
cannot fire against a discarded receiver.
*/
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single deferred invocation.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer

	stopped bool
}

// New creates a Debouncer that invokes fn after delay once triggered.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn to run after the delay window, cancelling any pending
// invocation first. Triggers after Stop are ignored.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.run)
}

// TriggerNow cancels any pending invocation and runs fn synchronously.
// It is the immediate path for discrete actions.
func (d *Debouncer) TriggerNow() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.fn()
}

// Stop cancels any pending invocation and makes all future triggers no-ops.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// run is the timer callback; it re-checks stopped in case Stop raced the timer.
func (d *Debouncer) run() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}
