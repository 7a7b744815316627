// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes reported by hlog. Template codes map to
//              the three fatal formatting failures; the remaining codes cover
//              configuration and command line input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced platform codes with template and config codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Template formatting
	CodeMalformedPlaceholder    Code = "MALFORMED_PLACEHOLDER"
	CodeUnsupportedArgumentType Code = "UNSUPPORTED_ARGUMENT_TYPE"
	CodeArgumentCountMismatch   Code = "ARGUMENT_COUNT_MISMATCH"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeMalformedPlaceholder, CodeUnsupportedArgumentType, CodeArgumentCountMismatch,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeMalformedPlaceholder, CodeUnsupportedArgumentType, CodeArgumentCountMismatch:
		return "template"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
