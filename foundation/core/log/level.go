// File: level.go
// Title: Log Level Definitions
// Description: The emitter writes at a single fixed level. Level stays a type
//              so the label printed in the line prefix has one source.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-16 v0.2.0: Reduced to the fixed INFO level

package log

// Level represents the severity label of a log line
type Level int

const (
	// LevelInfo is the only level the emitter writes
	LevelInfo Level = iota
)

// String returns the label printed in the line prefix
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// DefaultLevel returns the level used by every emitted line
func DefaultLevel() Level {
	return LevelInfo
}
