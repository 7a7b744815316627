// File: benchmark_test.go
// Title: Template Benchmarks
// Description: Benchmarks for parsing and rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial benchmarks

package template

import "testing"

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("user -s logged in from -s after -i attempts (-d s), admin=-b")
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Format("user -s logged in from -s after -i attempts (-d s), admin=-b",
			"alice", "10.0.0.1", 3, 0.42, false)
	}
}

func BenchmarkFormat_Literal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Format("nothing to substitute in this line")
	}
}
