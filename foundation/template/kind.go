// File: kind.go
// Title: Placeholder Kinds
// Description: The closed set of value kinds a placeholder can declare and the
//              fixed table mapping type codes to kinds.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Zero Kind is invalid

package template

// Kind is the declared value type of a placeholder
type Kind int

// The zero Kind is invalid, so a zero Value is rejected rather than read as 0.
const (
	KindInteger Kind = iota + 1
	KindDecimal
	KindText
	KindBoolean

	kindCount
)

// Type codes following the marker
const (
	CodeInteger = 'i'
	CodeDecimal = 'd'
	CodeText    = 's'
	CodeBoolean = 'b'
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindText:
		return "text"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Code returns the type code for k, or 0 for an unknown kind
func (k Kind) Code() rune {
	switch k {
	case KindInteger:
		return CodeInteger
	case KindDecimal:
		return CodeDecimal
	case KindText:
		return CodeText
	case KindBoolean:
		return CodeBoolean
	default:
		return 0
	}
}

// IsValid reports whether k is one of the four kinds
func (k Kind) IsValid() bool {
	return k >= KindInteger && k < kindCount
}

// MarshalText implements encoding.TextMarshaler so descriptors print by name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// KindForCode maps a type code to its kind
func KindForCode(code rune) (Kind, bool) {
	switch code {
	case CodeInteger:
		return KindInteger, true
	case CodeDecimal:
		return KindDecimal, true
	case CodeText:
		return KindText, true
	case CodeBoolean:
		return KindBoolean, true
	default:
		return 0, false
	}
}

// AllKinds returns the kinds in type-code table order
func AllKinds() []Kind {
	return []Kind{KindInteger, KindDecimal, KindText, KindBoolean}
}
