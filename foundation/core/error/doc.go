// Package error provides the coded error type used across hlog.
//
// Package: error
// Title: hlog Error Handling
// Description: This package implements a structured error type carrying a code,
//              a severity, the failing operation and key/value details. Template
//              parsing, argument classification and configuration loading all
//              report failures through it so callers can branch on the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Re-cut codes for template formatting, dropped stack capture
//
// Usage:
//   import hlogerror "github.com/msto63/hlog/foundation/core/error"
//
//   err := hlogerror.New("unknown type code 'x'").
//     WithCode(hlogerror.CodeMalformedPlaceholder).
//     WithOperation("template.Parse").
//     WithDetail("offset", 4)
//
//   if hlogerror.HasCode(err, hlogerror.CodeMalformedPlaceholder) {
//     // reject the template
//   }
package error
