// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories and base names for the first
//              existing configuration file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-16 v0.2.0: Optional discovery returns an empty config

package config

import (
	"os"
	"path/filepath"
	"strings"

	hlogerror "github.com/msto63/hlog/foundation/core/error"
	"github.com/msto63/hlog/foundation/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Whether finding a config file is required
}

// DefaultDiscoveryOptions searches the working directory and the user config
// directory for hlog.toml, hlog.yaml or hlog.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "hlog"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"hlog"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "HLOG",
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an empty config with defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	}

	path, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(path, loadOptions)
	}

	if options.Required {
		return nil, err
	}

	return Empty(loadOptions), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)

	if path, ok := filex.FirstFile(candidates); ok {
		return path, nil
	}

	return "", hlogerror.Newf("no configuration file found in: %s", strings.Join(candidates, ", ")).
		WithCode(hlogerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var candidates []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidates = append(candidates, filepath.Join(dir, name+ext))
			}
		}
	}
	return candidates
}
