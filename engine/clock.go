// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import "time"

// Clock supplies the "monotonic wall-clock source" spec.md puts out of
// scope (section 1), as an interface so tests can control time without
// sleeping.
type Clock interface {
	// Now returns the current Unix time, the unit every timestamp field in
	// this protocol is expressed in.
	Now() int64
}

// SystemClock is the production Clock, backed by the OS.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}

// FixedClock is a test Clock that returns a settable, never-advancing time
// unless explicitly moved forward, used to exercise boundary conditions
// like "unlock exactly at unlock_timestamp" deterministically.
type FixedClock struct {
	unix int64
}

// NewFixedClock returns a FixedClock starting at unix.
func NewFixedClock(unix int64) *FixedClock {
	return &FixedClock{unix: unix}
}

// Now implements Clock.
func (c *FixedClock) Now() int64 {
	return c.unix
}

// Advance moves the clock forward by seconds (negative values move it back,
// useful for constructing "deadline already in the past" fixtures).
func (c *FixedClock) Advance(seconds int64) {
	c.unix += seconds
}

// Set pins the clock to an exact Unix timestamp.
func (c *FixedClock) Set(unix int64) {
	c.unix = unix
}
