// File: doc.go
// Title: File Utilities Package Documentation
// Description: Small file system predicates used by configuration discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-16 v0.2.0: Reduced to existence checks and candidate search

// Package filex provides file system checks:
//
//	if filex.IsFile("hlog.toml") { ... }
//
//	path, ok := filex.FirstFile([]string{"./hlog.toml", "./hlog.yaml"})
package filex
