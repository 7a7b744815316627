// Package config loads hlog settings from TOML or YAML files.
//
// Package: config
// Title: Configuration Management
// Description: Loads configuration files (TOML or YAML, detected by extension),
//              exposes typed getters with dot-notation keys and lets
//              environment variables override file values. Discovery searches
//              a list of directories for the first matching file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Removed watching, validation rules and caches
//
// File format:
//
//	[logger]
//	name = "H-LOG"
//	utc  = false
//
//	[template]
//	marker = "-"
//
// With LoadOptions.EnvPrefix "HLOG", the key "logger.name" is overridden by
// the environment variable HLOG_LOGGER_NAME.
//
// Usage:
//
//	cfg, err := config.Load("hlog.toml")
//	name := cfg.GetString("logger.name", "H-LOG")
package config
