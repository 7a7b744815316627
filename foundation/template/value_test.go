// File: value_test.go
// Title: Template Value Tests
// Description: Tests argument classification and canonical text forms.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test suite

package template

import (
	"math"
	"testing"
	"time"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
)

type (
	port       uint16
	celsius    float32
	label      string
	enabled    bool
	namedBytes []byte
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name     string
		arg      interface{}
		wantKind Kind
		wantText string
	}{
		{"int", 3, KindInteger, "3"},
		{"int8", int8(-8), KindInteger, "-8"},
		{"int16", int16(16), KindInteger, "16"},
		{"int32", int32(-32), KindInteger, "-32"},
		{"int64 min", int64(math.MinInt64), KindInteger, "-9223372036854775808"},
		{"uint", uint(7), KindInteger, "7"},
		{"uint64 max", uint64(math.MaxUint64), KindInteger, "18446744073709551615"},
		{"byte", byte('A'), KindInteger, "65"},
		{"rune", 'A', KindInteger, "65"},
		{"float64", 2.5, KindDecimal, "2.5"},
		{"float64 whole", 3.0, KindDecimal, "3"},
		{"float64 tenth", 0.1, KindDecimal, "0.1"},
		{"float64 large", 1e21, KindDecimal, "1e+21"},
		{"float64 negative", -0.5, KindDecimal, "-0.5"},
		{"float32", float32(0.1), KindDecimal, "0.1"},
		{"NaN", math.NaN(), KindDecimal, "NaN"},
		{"string", "cats", KindText, "cats"},
		{"empty string", "", KindText, ""},
		{"bool true", true, KindBoolean, "true"},
		{"bool false", false, KindBoolean, "false"},
		{"Value passthrough", Char('z'), KindText, "z"},
		{"time.Duration", time.Second, KindInteger, "1000000000"},
		{"named uint", port(8080), KindInteger, "8080"},
		{"named float32", celsius(21.5), KindDecimal, "21.5"},
		{"named string", label("eu-west"), KindText, "eu-west"},
		{"named bool", enabled(true), KindBoolean, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ValueOf(tt.arg)
			if err != nil {
				t.Fatalf("ValueOf(%v) unexpected error: %v", tt.arg, err)
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("ValueOf(%v).Kind() = %v, want %v", tt.arg, v.Kind(), tt.wantKind)
			}
			if v.String() != tt.wantText {
				t.Errorf("ValueOf(%v).String() = %q, want %q", tt.arg, v.String(), tt.wantText)
			}
		})
	}
}

func TestValueOf_Unsupported(t *testing.T) {
	tests := []struct {
		name     string
		arg      interface{}
		wantType string
	}{
		{"nil", nil, "<nil>"},
		{"slice", []int{1}, "[]int"},
		{"bytes", []byte("x"), "[]uint8"},
		{"struct", struct{}{}, "struct {}"},
		{"pointer", new(int), "*int"},
		{"uintptr", uintptr(1), "uintptr"},
		{"complex", complex(1, 2), "complex128"},
		{"invalid Value", Value{kind: kindCount}, "invalid Value"},
		{"zero Value", Value{}, "invalid Value"},
		{"named slice", namedBytes("x"), "template.namedBytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValueOf(tt.arg)
			if !hlogerror.HasCode(err, hlogerror.CodeUnsupportedArgumentType) {
				t.Fatalf("ValueOf(%v) error = %v, want %v", tt.arg, err, hlogerror.CodeUnsupportedArgumentType)
			}
			if got, _ := err.(*hlogerror.Error).Detail("type"); got != tt.wantType {
				t.Errorf("ValueOf(%v) type detail = %v, want %q", tt.arg, got, tt.wantType)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	b, err := Classify(1, "a", 2.5, true, int64(2), "b", false)
	if err != nil {
		t.Fatalf("Classify() unexpected error: %v", err)
	}

	want := map[Kind][]string{
		KindInteger: {"1", "2"},
		KindDecimal: {"2.5"},
		KindText:    {"a", "b"},
		KindBoolean: {"true", "false"},
	}

	for kind, texts := range want {
		if b.Len(kind) != len(texts) {
			t.Errorf("Len(%v) = %d, want %d", kind, b.Len(kind), len(texts))
			continue
		}
		for i, text := range texts {
			if got := b.Bucket(kind)[i].String(); got != text {
				t.Errorf("Bucket(%v)[%d] = %q, want %q", kind, i, got, text)
			}
		}
	}
}

func TestClassify_Unsupported(t *testing.T) {
	_, err := Classify(1, "ok", map[string]int{})
	if !hlogerror.HasCode(err, hlogerror.CodeUnsupportedArgumentType) {
		t.Fatalf("Classify() error = %v, want %v", err, hlogerror.CodeUnsupportedArgumentType)
	}
	if idx, _ := err.(*hlogerror.Error).Detail("index"); idx != 2 {
		t.Errorf("Classify() index detail = %v, want 2", idx)
	}
}

func TestClassify_Independent(t *testing.T) {
	first, _ := Classify(1, 2, 3)
	second, _ := Classify("x")

	if first.Len(KindInteger) != 3 {
		t.Errorf("first.Len(integer) = %d, want 3", first.Len(KindInteger))
	}
	if second.Len(KindInteger) != 0 {
		t.Errorf("second call saw %d integers from the first", second.Len(KindInteger))
	}
}
