// ============================================================================
// hlog - Typed placeholder log formatter
// ============================================================================
//
// Package:     cli
// Description: Logger settings resolved from config file and environment
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cli

import (
	"io"

	"github.com/msto63/hlog/foundation/core/config"
	hlogerror "github.com/msto63/hlog/foundation/core/error"
	"github.com/msto63/hlog/foundation/core/log"
	"github.com/msto63/hlog/foundation/template"
	"github.com/msto63/hlog/foundation/utils/stringx"
)

// EnvPrefix is the prefix of environment overrides (HLOG_LOGGER_NAME, ...)
const EnvPrefix = "HLOG"

// Config keys
const (
	KeyLoggerName     = "logger.name"
	KeyLoggerUTC      = "logger.utc"
	KeyTemplateMarker = "template.marker"
)

// Settings holds the resolved logger settings of one CLI invocation
type Settings struct {
	Name   string
	UTC    bool
	Marker rune
	Source string // config file path, empty when only defaults applied
}

// Defaults returns the built-in configuration values
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"logger": map[string]interface{}{
			"name": log.DefaultName,
			"utc":  false,
		},
		"template": map[string]interface{}{
			"marker": string(template.DefaultMarker),
		},
	}
}

// LoadSettings reads settings from configPath. An empty path searches the
// default locations and falls back to built-in defaults when nothing exists.
func LoadSettings(configPath string) (Settings, error) {
	var (
		cfg *config.Config
		err error
	)

	if stringx.IsBlank(configPath) {
		options := config.DefaultDiscoveryOptions()
		options.EnvPrefix = EnvPrefix
		options.Defaults = Defaults()
		cfg, err = config.Discover(options)
	} else {
		cfg, err = config.LoadWithOptions(configPath, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  Defaults(),
		})
	}
	if err != nil {
		return Settings{}, err
	}

	return SettingsFromConfig(cfg)
}

// SettingsFromConfig extracts and validates settings from cfg
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	marker, err := stringx.SingleRune(cfg.GetString(KeyTemplateMarker, string(template.DefaultMarker)))
	if err != nil {
		return Settings{}, hlogerror.Wrap(err, "invalid "+KeyTemplateMarker).
			WithCode(hlogerror.CodeInvalidConfig).
			WithOperation("cli.SettingsFromConfig").
			WithDetail("key", KeyTemplateMarker)
	}

	return Settings{
		Name:   stringx.FirstNonBlank(cfg.GetString(KeyLoggerName), log.DefaultName),
		UTC:    cfg.GetBool(KeyLoggerUTC),
		Marker: marker,
		Source: cfg.FilePath(),
	}, nil
}

// NewLogger builds a logger writing to out with these settings
func (s Settings) NewLogger(out io.Writer) (*log.Logger, error) {
	logger, err := log.NewWithConfig(log.Config{
		Name:   s.Name,
		Output: out,
		UTC:    s.UTC,
		Marker: s.Marker,
	})
	if err != nil {
		return nil, hlogerror.Wrap(err, "configure logger").
			WithCode(hlogerror.CodeInvalidConfig).
			WithOperation("cli.NewLogger").
			WithDetail("key", KeyTemplateMarker)
	}
	return logger, nil
}
