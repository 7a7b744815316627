// ============================================================================
// hlog - Typed placeholder log formatter
// ============================================================================
//
// Package:     cli
// Description: Decoding of typed command line arguments (kind:value)
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cli

import (
	"strconv"
	"strings"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
	"github.com/msto63/hlog/foundation/template"
)

// kindPrefixes maps the accepted argument prefixes to value kinds
var kindPrefixes = map[string]template.Kind{
	"i":    template.KindInteger,
	"int":  template.KindInteger,
	"d":    template.KindDecimal,
	"dec":  template.KindDecimal,
	"s":    template.KindText,
	"str":  template.KindText,
	"b":    template.KindBoolean,
	"bool": template.KindBoolean,
}

// ParseArg decodes one "kind:value" argument. Only the first colon separates
// kind and value, so text values may contain colons.
func ParseArg(arg string) (template.Value, error) {
	prefix, raw, ok := strings.Cut(arg, ":")
	if !ok {
		return template.Value{}, invalidArg(arg, "missing kind prefix, expected kind:value")
	}

	kind, ok := kindPrefixes[strings.ToLower(prefix)]
	if !ok {
		return template.Value{}, invalidArg(arg, "unknown kind "+strconv.Quote(prefix))
	}

	switch kind {
	case template.KindInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return template.Value{}, wrapArg(err, arg, kind)
		}
		return template.Int(n), nil
	case template.KindDecimal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return template.Value{}, wrapArg(err, arg, kind)
		}
		return template.Decimal(f), nil
	case template.KindBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return template.Value{}, wrapArg(err, arg, kind)
		}
		return template.Bool(b), nil
	default:
		return template.Text(raw), nil
	}
}

// ParseArgs decodes every argument in order. The result can be passed
// directly to Logger.Info.
func ParseArgs(args []string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(args))
	for i, arg := range args {
		v, err := ParseArg(arg)
		if err != nil {
			return nil, hlogerror.Wrap(err, "decode arguments").
				WithOperation("cli.ParseArgs").
				WithDetail("index", i)
		}
		values = append(values, v)
	}
	return values, nil
}

func invalidArg(arg, reason string) *hlogerror.Error {
	return hlogerror.Newf("invalid argument %q: %s", arg, reason).
		WithCode(hlogerror.CodeInvalidInput).
		WithOperation("cli.ParseArg").
		WithDetail("argument", arg)
}

func wrapArg(err error, arg string, kind template.Kind) *hlogerror.Error {
	return hlogerror.Wrap(err, "invalid "+kind.String()+" argument "+strconv.Quote(arg)).
		WithCode(hlogerror.CodeInvalidInput).
		WithOperation("cli.ParseArg").
		WithDetail("argument", arg).
		WithDetail("kind", kind.String())
}
