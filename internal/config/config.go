// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for zotnotify with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Collection-specific configuration
//  4. Configuration file
//  5. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. Collection-specific
// overrides allow a busy collection to use a different page limit without
// touching the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .zotnotify.yaml (current directory)
//   - .zotnotify.yml (current directory)
//   - ~/.zotnotify/config.yaml
//   - ~/.zotnotify/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Path expansion (~ and environment variables) is
// performed on directory paths.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Try to load config file if path is provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".zotnotify.yaml",
			".zotnotify.yml",
			filepath.Join(os.Getenv("HOME"), ".zotnotify", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".zotnotify", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Defaults.StateDir = expandPath(cfg.Defaults.StateDir)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("ZOTERO_API_ENDPOINT"); endpoint != "" {
		cfg.Zotero.APIEndpoint = endpoint
	}

	if pageLimit := os.Getenv("ZOTNOTIFY_PAGE_LIMIT"); pageLimit != "" {
		if limit, err := parsePositiveInt(pageLimit); err == nil {
			cfg.Defaults.PageLimit = limit
		}
	}
	if stateDir := os.Getenv("ZOTNOTIFY_STATE_DIR"); stateDir != "" {
		cfg.Defaults.StateDir = stateDir
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// GetPageLimit returns the effective page limit for a collection, taking
// into account collection-specific overrides. The collection parameter is
// in "group/collection" format.
func (c *Config) GetPageLimit(collection string) int {
	if colConfig, ok := c.Collections[collection]; ok && colConfig.PageLimit > 0 {
		return colConfig.PageLimit
	}
	return c.Defaults.PageLimit
}

// Validate checks if the configuration contains valid values. It ensures
// the page limit is within the Zotero API's bounds and the endpoint is not
// empty. This should be called after loading configuration to catch invalid
// settings early.
func (c *Config) Validate() error {
	if c.Defaults.PageLimit <= 0 {
		return fmt.Errorf("default page limit must be positive, got: %d", c.Defaults.PageLimit)
	}
	if c.Defaults.PageLimit > 100 {
		return fmt.Errorf("default page limit %d exceeds Zotero API limit of 100", c.Defaults.PageLimit)
	}
	if c.Zotero.APIEndpoint == "" {
		return fmt.Errorf("zotero API endpoint cannot be empty")
	}
	return nil
}
