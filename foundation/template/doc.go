// Package template parses and renders typed-placeholder log templates.
//
// Package: template
// Title: Typed Placeholder Templates
// Description: A template is literal text with two-character placeholders made
//              of a marker ('-' by default) and a type code. Parse locates the
//              placeholders; Render fills each one with the next argument of the
//              matching kind. Every call works on its own descriptors, buckets
//              and builder, so the package holds no mutable state.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Type codes:
//
//	-i  integer  (int, int8..int64, uint..uint64)
//	-d  decimal  (float32, float64)
//	-s  text     (string)
//	-b  boolean  (bool)
//
// Placeholders are consumed left to right, and each kind keeps its own cursor
// into the arguments of that kind:
//
//	out, err := template.Format("-i/-i and -s", 1, 2, "x")
//	// out == "1/2 and x"
//
// Failures are *error.Error values with one of the codes
// CodeMalformedPlaceholder, CodeUnsupportedArgumentType or
// CodeArgumentCountMismatch. No output is produced when any of them occurs.
package template
