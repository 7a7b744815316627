// File: parser.go
// Title: Template Parser
// Description: Scans a template left to right and produces one placeholder
//              descriptor per marker, in increasing offset order. Offsets are
//              counted in runes so literal text may hold any UTF-8.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Single range pass, invalid bytes count as one rune

package template

import (
	"fmt"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
)

// DefaultMarker opens a placeholder unless a parser is built with WithMarker
const DefaultMarker = '-'

// Placeholder describes one placeholder found in a template
type Placeholder struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Start int  `json:"start" yaml:"start"` // rune offset of the marker
	End   int  `json:"end" yaml:"end"`     // rune offset of the type code, Start+1
}

// Parser locates placeholders opened by a single marker rune
type Parser struct {
	marker rune
}

// Option configures a Parser
type Option func(*Parser)

// WithMarker sets the rune that opens a placeholder
func WithMarker(marker rune) Option {
	return func(p *Parser) {
		p.marker = marker
	}
}

var defaultParser = &Parser{marker: DefaultMarker}

// NewParser creates a parser. The marker may not be a type code, since the
// rune after a marker is always read as one.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{marker: DefaultMarker}
	for _, opt := range opts {
		opt(p)
	}

	if _, isCode := KindForCode(p.marker); isCode {
		return nil, hlogerror.Newf("marker %q collides with a type code", p.marker).
			WithCode(hlogerror.CodeInvalidInput).
			WithOperation("template.NewParser").
			WithDetail("marker", string(p.marker))
	}

	return p, nil
}

// Marker returns the rune that opens a placeholder
func (p *Parser) Marker() rune {
	return p.marker
}

// Parse parses tmpl with the default '-' marker
func Parse(tmpl string) ([]Placeholder, error) {
	return defaultParser.Parse(tmpl)
}

// Parse returns the placeholders of tmpl in increasing Start order. A template
// without markers yields no placeholders and no error. Offsets count runes, an
// invalid UTF-8 byte counting as one.
func (p *Parser) Parse(tmpl string) ([]Placeholder, error) {
	var placeholders []Placeholder

	marker := -1 // rune offset of a marker still waiting for its type code
	offset := 0
	for _, r := range tmpl {
		switch {
		case marker >= 0:
			kind, ok := KindForCode(r)
			if !ok {
				return nil, malformedPlaceholder(marker, fmt.Sprintf("unknown type code %q", r)).
					WithDetail("marker", string(p.marker)).
					WithDetail("type_code", string(r))
			}
			placeholders = append(placeholders, Placeholder{Kind: kind, Start: marker, End: offset})
			marker = -1
		case r == p.marker:
			marker = offset
		}
		offset++
	}

	if marker >= 0 {
		return nil, malformedPlaceholder(marker, "marker at end of template has no type code").
			WithDetail("marker", string(p.marker))
	}

	return placeholders, nil
}

func malformedPlaceholder(offset int, reason string) *hlogerror.Error {
	return hlogerror.Newf("malformed placeholder at offset %d: %s", offset, reason).
		WithCode(hlogerror.CodeMalformedPlaceholder).
		WithOperation("template.Parse").
		WithDetail("offset", offset)
}
