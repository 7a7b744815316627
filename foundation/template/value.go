// File: value.go
// Title: Template Values
// Description: Value is the closed set of argument kinds a template accepts.
//              Dynamic arguments are classified once, at the call boundary, and
//              the render step only switches over Kind.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Classify named types by underlying kind

package template

import (
	"fmt"
	"reflect"
	"strconv"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
)

// Value is a single template argument of one of the four kinds
type Value struct {
	kind Kind

	integer  int64
	unsigned uint64
	isUint   bool

	decimal float64
	bitSize int

	text    string
	boolean bool
}

// Int creates an integer value
func Int(v int64) Value {
	return Value{kind: KindInteger, integer: v}
}

// Uint creates an integer value from an unsigned integer
func Uint(v uint64) Value {
	return Value{kind: KindInteger, unsigned: v, isUint: true}
}

// Decimal creates a decimal value
func Decimal(v float64) Value {
	return Value{kind: KindDecimal, decimal: v, bitSize: 64}
}

// Decimal32 creates a decimal value that renders with float32 precision
func Decimal32(v float32) Value {
	return Value{kind: KindDecimal, decimal: float64(v), bitSize: 32}
}

// Text creates a text value
func Text(v string) Value {
	return Value{kind: KindText, text: v}
}

// Char creates a single-character text value. A bare rune argument is an
// int32 and would otherwise classify as an integer.
func Char(r rune) Value {
	return Text(string(r))
}

// Bool creates a boolean value
func Bool(v bool) Value {
	return Value{kind: KindBoolean, boolean: v}
}

// Kind returns the value's kind
func (v Value) Kind() Kind {
	return v.kind
}

// String returns the canonical text form: base-10 integers, the shortest
// decimal that round-trips at the value's precision, text as-is and
// true/false for booleans.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		if v.isUint {
			return strconv.FormatUint(v.unsigned, 10)
		}
		return strconv.FormatInt(v.integer, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.decimal, 'g', -1, v.bitSize)
	case KindText:
		return v.text
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	default:
		return ""
	}
}

// ValueOf classifies a dynamic argument. rune and byte are integer types in
// Go and classify as integers.
func ValueOf(arg interface{}) (Value, error) {
	switch v := arg.(type) {
	case Value:
		if !v.kind.IsValid() {
			return Value{}, unsupportedArgument("invalid Value")
		}
		return v, nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint8:
		return Uint(uint64(v)), nil
	case uint16:
		return Uint(uint64(v)), nil
	case uint32:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return Decimal32(v), nil
	case float64:
		return Decimal(v), nil
	case string:
		return Text(v), nil
	case bool:
		return Bool(v), nil
	default:
		return valueOfKind(arg)
	}
}

// valueOfKind classifies named types such as time.Duration by their
// underlying kind.
func valueOfKind(arg interface{}) (Value, error) {
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		return Decimal32(float32(rv.Float())), nil
	case reflect.Float64:
		return Decimal(rv.Float()), nil
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	default:
		return Value{}, unsupportedArgument(fmt.Sprintf("%T", arg))
	}
}

func unsupportedArgument(typeName string) *hlogerror.Error {
	return hlogerror.Newf("unsupported argument type %s", typeName).
		WithCode(hlogerror.CodeUnsupportedArgumentType).
		WithOperation("template.Classify").
		WithDetail("type", typeName)
}
