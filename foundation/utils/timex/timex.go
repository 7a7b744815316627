// File: timex.go
// Title: Log Timestamp Formatting and Clocks
// Description: Implements the variable-width log timestamp and a set of clocks
//              (local, UTC, fixed) used by the emitter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-16 v0.2.0: Variable-width millisecond layout, Clock type

package timex

import (
	"time"
)

// LogTimestamp prints up to three fractional digits, truncated, with
// trailing zeros dropped and the dot omitted for whole seconds.
const LogTimestamp = "2006-01-02 15:04:05.999"

// Clock returns the current time
type Clock func() time.Time

// SystemClock reads the local wall clock
func SystemClock() time.Time {
	return time.Now()
}

// UTCClock reads the wall clock in UTC
func UTCClock() time.Time {
	return time.Now().UTC()
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}

// ClockFor returns UTCClock when utc is set and SystemClock otherwise
func ClockFor(utc bool) Clock {
	if utc {
		return UTCClock
	}
	return SystemClock
}

// FormatLogTimestamp formats t with the LogTimestamp layout
func FormatLogTimestamp(t time.Time) string {
	return t.Format(LogTimestamp)
}
