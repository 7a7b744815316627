// Package stringx provides the small string helpers shared by config and the CLI.
//
// Package: stringx
// Title: String Helpers
// Description: Blank checks, fallbacks and single-rune extraction used when
//              reading configuration values and command line arguments.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Reduced to helpers used by config and the CLI
package stringx
