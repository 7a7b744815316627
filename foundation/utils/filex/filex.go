// File: filex.go
// Title: Core File Utilities
// Description: Implements existence checks and first-match search over
//              candidate paths.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-16 v0.2.0: Kept existence checks, added FirstFile

package filex

import "os"

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FirstFile returns the first candidate that is a regular file
func FirstFile(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if IsFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}
