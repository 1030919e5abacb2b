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

package config

// Config holds all configuration for zotnotify.
type Config struct {
	// Zotero contains API endpoint settings.
	Zotero ZoteroConfig `yaml:"zotero"`

	// Slack contains default webhook routing overrides.
	Slack SlackConfig `yaml:"slack"`

	// Defaults contains fallback values for run settings.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Collections contains per-collection overrides, keyed by
	// "group/collection".
	Collections map[string]CollectionConfig `yaml:"collections"`
}

// ZoteroConfig contains Zotero API settings.
type ZoteroConfig struct {
	// APIEndpoint is the base URL of the Zotero web API.
	APIEndpoint string `yaml:"api_endpoint"`
}

// SlackConfig contains webhook routing overrides applied to every message
// unless a command-line flag overrides them.
type SlackConfig struct {
	Channel   string `yaml:"channel"`
	Username  string `yaml:"username"`
	IconEmoji string `yaml:"icon_emoji"`
}

// DefaultsConfig contains default run settings.
type DefaultsConfig struct {
	// PageLimit is how many items a warm run fetches at most.
	PageLimit int `yaml:"page_limit"`

	// StateDir is where run records are stored when no explicit state file
	// path is given.
	StateDir string `yaml:"state_dir"`
}

// CollectionConfig contains per-collection setting overrides. Useful when
// one busy collection needs a larger fetch window than the rest.
type CollectionConfig struct {
	PageLimit int `yaml:"page_limit"`
}

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() *Config {
	return &Config{
		Zotero: ZoteroConfig{
			APIEndpoint: "https://api.zotero.org",
		},
		Defaults: DefaultsConfig{
			PageLimit: 25,
			StateDir:  "~/.zotnotify/state",
		},
		Collections: make(map[string]CollectionConfig),
	}
}
