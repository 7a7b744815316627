// File: render.go
// Title: Substitution Engine
// Description: Classifies arguments into per-kind buckets, assigns each
//              placeholder the next value of its kind and builds the output in
//              one copy-with-skip pass over the template.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Copy literal runs as original bytes

package template

import (
	"strings"
	"unicode/utf8"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
)

// Buckets holds the arguments of one call grouped by kind, each in call order
type Buckets struct {
	Integers []Value
	Decimals []Value
	Texts    []Value
	Booleans []Value
}

// Classify sorts args into buckets. Any argument of an unsupported type fails
// the whole call.
func Classify(args ...interface{}) (Buckets, error) {
	var b Buckets
	for i, arg := range args {
		v, err := ValueOf(arg)
		if err != nil {
			return Buckets{}, hlogerror.Wrap(err, "classify arguments").
				WithOperation("template.Classify").
				WithDetail("index", i)
		}
		b.Add(v)
	}
	return b, nil
}

// Add appends v to the bucket of its kind
func (b *Buckets) Add(v Value) {
	switch v.kind {
	case KindInteger:
		b.Integers = append(b.Integers, v)
	case KindDecimal:
		b.Decimals = append(b.Decimals, v)
	case KindText:
		b.Texts = append(b.Texts, v)
	case KindBoolean:
		b.Booleans = append(b.Booleans, v)
	}
}

// Bucket returns the values of kind k
func (b Buckets) Bucket(k Kind) []Value {
	switch k {
	case KindInteger:
		return b.Integers
	case KindDecimal:
		return b.Decimals
	case KindText:
		return b.Texts
	case KindBoolean:
		return b.Booleans
	default:
		return nil
	}
}

// Len returns the number of values of kind k
func (b Buckets) Len(k Kind) int {
	return len(b.Bucket(k))
}

// Render classifies args and renders tmpl with the given placeholders
func Render(tmpl string, placeholders []Placeholder, args ...interface{}) (string, error) {
	buckets, err := Classify(args...)
	if err != nil {
		return "", err
	}
	return RenderBuckets(tmpl, placeholders, buckets)
}

// RenderBuckets renders tmpl with values taken from already classified
// buckets. Surplus values are ignored.
func RenderBuckets(tmpl string, placeholders []Placeholder, buckets Buckets) (string, error) {
	if err := checkPlaceholders(placeholders, utf8.RuneCountInString(tmpl)); err != nil {
		return "", err
	}

	rendered, err := fill(placeholders, buckets)
	if err != nil {
		return "", err
	}

	if len(placeholders) == 0 {
		return tmpl, nil
	}

	var sb strings.Builder
	sb.Grow(len(tmpl))

	// Literal runs are copied as bytes so text that is not valid UTF-8
	// survives unchanged.
	pos, next, offset := 0, 0, 0
	for i := 0; i < len(tmpl) && next < len(placeholders); offset++ {
		_, size := utf8.DecodeRuneInString(tmpl[i:])
		ph := placeholders[next]
		if offset == ph.Start {
			sb.WriteString(tmpl[pos:i])
			sb.WriteString(rendered[next])
		}
		if offset == ph.End {
			pos = i + size
			next++
		}
		i += size
	}
	sb.WriteString(tmpl[pos:])

	return sb.String(), nil
}

// fill assigns every placeholder the next unused value of its kind
func fill(placeholders []Placeholder, buckets Buckets) ([]string, error) {
	var cursors [kindCount]int
	rendered := make([]string, len(placeholders))

	for i, ph := range placeholders {
		values := buckets.Bucket(ph.Kind)
		cursor := cursors[ph.Kind]
		if cursor >= len(values) {
			return nil, argumentCountMismatch(ph.Kind, countKind(placeholders, ph.Kind), len(values))
		}
		rendered[i] = values[cursor].String()
		cursors[ph.Kind]++
	}

	return rendered, nil
}

// checkPlaceholders rejects descriptors that could not have come from Parse
// for a template of n runes.
func checkPlaceholders(placeholders []Placeholder, n int) error {
	prevEnd := -1
	for i, ph := range placeholders {
		if !ph.Kind.IsValid() || ph.End != ph.Start+1 || ph.Start <= prevEnd || ph.End >= n {
			return hlogerror.Newf("placeholder %d (%s at %d..%d) does not fit the template", i, ph.Kind, ph.Start, ph.End).
				WithCode(hlogerror.CodeInvalidInput).
				WithOperation("template.Render").
				WithDetail("index", i)
		}
		prevEnd = ph.End
	}
	return nil
}

func countKind(placeholders []Placeholder, k Kind) int {
	n := 0
	for _, ph := range placeholders {
		if ph.Kind == k {
			n++
		}
	}
	return n
}

func argumentCountMismatch(k Kind, wanted, supplied int) *hlogerror.Error {
	return hlogerror.Newf("template needs %d %s argument(s), got %d", wanted, k, supplied).
		WithCode(hlogerror.CodeArgumentCountMismatch).
		WithOperation("template.Render").
		WithDetail("kind", k.String()).
		WithDetail("wanted", wanted).
		WithDetail("supplied", supplied)
}

// Format parses tmpl with the default marker and renders it with args
func Format(tmpl string, args ...interface{}) (string, error) {
	return defaultParser.Format(tmpl, args...)
}

// Format parses tmpl with this parser's marker and renders it with args
func (p *Parser) Format(tmpl string, args ...interface{}) (string, error) {
	placeholders, err := p.Parse(tmpl)
	if err != nil {
		return "", err
	}
	return Render(tmpl, placeholders, args...)
}
