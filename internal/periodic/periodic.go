// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package periodic implements a cooperative timer: the owner calls Update
// from its own loop and the callback fires whenever the period has elapsed.
// There is no internal goroutine and no catch-up of missed ticks.
package periodic

import (
	"time"

	"github.com/apex/log"
)

// Callback holds a function, a period, and the next time to fire.
type Callback struct {
	name   string
	period time.Duration
	fn     func()
	active bool
	next   time.Time
}

// New returns an active Callback whose first fire is due immediately. The
// name is only used in log output.
func New(name string, period time.Duration, fn func()) *Callback {
	return &Callback{
		name:   name,
		period: period,
		fn:     fn,
		active: true,
		next:   time.Now(),
	}
}

// Update fires the callback once and advances the schedule by exactly one
// period when now has reached the next call time and the callback is active.
// If the owner's loop falls behind, missed ticks are coalesced into the
// single fire; they are never replayed.
func (c *Callback) Update(now time.Time) {
	if c.active && !now.Before(c.next) {
		c.fn()
		c.next = c.next.Add(c.period)
	}
}

// CallAt reschedules the next fire to t.
func (c *Callback) CallAt(t time.Time) {
	c.next = t
}

// CallIn reschedules the next fire to d from now.
func (c *Callback) CallIn(d time.Duration) {
	c.next = time.Now().Add(d)
}

// CallNow makes the next Update fire regardless of the period.
func (c *Callback) CallNow() {
	c.CallIn(0)
}

// IsActive reports whether Update will fire.
func (c *Callback) IsActive() bool {
	return c.active
}

// Activate enables the callback and schedules an immediate fire.
func (c *Callback) Activate() {
	log.Debugf("%s: activating", c.name)
	c.active = true
	c.CallNow()
}

// Deactivate disables the callback until Activate is called again.
func (c *Callback) Deactivate() {
	log.Debugf("%s: deactivating", c.name)
	c.active = false
}
