// File: entry.go
// Title: Log Entry Structure
// Description: Defines the entry handed to a formatter: a timestamp, the
//              logger name, the level and the rendered message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-16 v0.2.0: Dropped structured fields, entries carry a rendered message

package log

import (
	"time"
)

// Entry represents a single log line before formatting
type Entry struct {
	Timestamp time.Time
	Level     Level
	Logger    string
	Message   string
}

// NewEntry creates a new log entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	}
}

// WithLogger sets the logger name for the entry
func (e *Entry) WithLogger(logger string) *Entry {
	e.Logger = logger
	return e
}

// WithTimestamp overrides the entry timestamp
func (e *Entry) WithTimestamp(ts time.Time) *Entry {
	e.Timestamp = ts
	return e
}
