// Package timex holds the time helpers used by the hlog emitter.
//
// Package: timex
// Title: Log Timestamp Utilities
// Description: Provides the log timestamp layout and the Clock abstraction the
//              emitter reads the current time from. Tests substitute a fixed
//              clock to get deterministic lines.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-16 v0.2.0: Reduced to log timestamp formatting and clocks
//
// Usage:
//
//	ts := timex.FormatLogTimestamp(time.Now())   // "2026-10-16 09:05:03.25"
//	clock := timex.FixedClock(someTime)
//	ts = timex.FormatLogTimestamp(clock())
package timex
