// File: format.go
// Title: Log Line Formatter
// Description: Formats an entry into the fixed hlog line layout.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with multiple output formats
// - 2026-10-16 v0.2.0: Replaced JSON/text/logfmt formatters with the line format

package log

import (
	"strings"

	"github.com/msto63/hlog/foundation/utils/timex"
)

// Separator sits between the bracketed prefix and the message
const Separator = "  ---  "

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// LineFormatter writes "[<timestamp>  <logger> <LEVEL>]  ---  <message>\n"
// with the variable-width timex.LogTimestamp layout
type LineFormatter struct{}

// NewLineFormatter creates a line formatter
func NewLineFormatter() *LineFormatter {
	return &LineFormatter{}
}

// Format formats a log entry as a single line
func (f *LineFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder
	sb.Grow(len(entry.Message) + 48)

	sb.WriteByte('[')
	sb.WriteString(timex.FormatLogTimestamp(entry.Timestamp))
	sb.WriteString("  ")
	sb.WriteString(entry.Logger)
	sb.WriteByte(' ')
	sb.WriteString(entry.Level.String())
	sb.WriteByte(']')
	sb.WriteString(Separator)
	sb.WriteString(entry.Message)
	sb.WriteByte('\n')

	return []byte(sb.String()), nil
}
