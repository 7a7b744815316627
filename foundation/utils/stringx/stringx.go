// File: stringx.go
// Title: Core String Utility Functions
// Description: Unicode-aware blank checks, fallbacks and single-rune parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Added SingleRune for marker settings

package stringx

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first argument that is not blank, or "".
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// SingleRune returns the only rune of s. It fails when s is empty, holds more
// than one rune, or is not valid UTF-8.
func SingleRune(s string) (rune, error) {
	if !utf8.ValidString(s) {
		return 0, fmt.Errorf("invalid UTF-8 in %q", s)
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		return 0, fmt.Errorf("expected exactly one character, got %d in %q", n, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
