// Package config loads bridgemon's TOML configuration and the optional
// YAML extension-channel definitions.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"bridgemon/internal/util"
)

// DefaultRefreshInterval is the snapshot poll cadence when none is set.
const DefaultRefreshInterval = 5 * time.Second

// Config is bridgemon's configuration.
type Config struct {
	Gateway  GatewayConfig  `toml:"gateway"`
	Refresh  RefreshConfig  `toml:"refresh"`
	UI       UIConfig       `toml:"ui"`
	Channels ChannelsConfig `toml:"channels"`
}

// GatewayConfig points at the messaging gateway's admin API.
type GatewayConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout string `toml:"timeout"`
}

// RefreshConfig controls the snapshot poll cadence.
type RefreshConfig struct {
	// Interval is a human-friendly duration string (e.g. "5s", "1m").
	Interval string `toml:"interval"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// Theme is a theme name ("auto", "mocha", "latte", "nord", "plain").
	Theme string `toml:"theme"`
	// Icons selects the icon set ("auto", "nerd", "unicode", "ascii").
	Icons string `toml:"icons"`
}

// ChannelsConfig holds host-side channel settings. Enablement and label
// overrides live here, not in the snapshot.
type ChannelsConfig struct {
	// Disabled channels sort after enabled ones in the list.
	Disabled []string `toml:"disabled"`
	// Labels overrides display names per channel key.
	Labels map[string]string `toml:"labels"`
	// ExtensionsFile points at the YAML extension-channel definitions.
	ExtensionsFile string `toml:"extensions_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{Timeout: "10s"},
		Refresh: RefreshConfig{Interval: "5s"},
		UI:      UIConfig{Theme: "auto", Icons: "auto"},
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bridgemon", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bridgemon", "config.toml")
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file yields the defaults, not an error; a present-but-broken file is an
// error the caller should surface.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Refresh.Interval == "" {
		cfg.Refresh.Interval = "5s"
	}
	if cfg.Gateway.Timeout == "" {
		cfg.Gateway.Timeout = "10s"
	}
	return cfg, nil
}

// RefreshInterval parses the configured poll cadence, falling back to the
// default on junk.
func (c *Config) RefreshInterval() time.Duration {
	d, err := util.ParseDuration(c.Refresh.Interval)
	if err != nil || d <= 0 {
		return DefaultRefreshInterval
	}
	return d
}

// GatewayTimeout parses the configured request timeout.
func (c *Config) GatewayTimeout() time.Duration {
	d, err := util.ParseDuration(c.Gateway.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Label returns the host label override for a channel key, "" when none.
func (c *Config) Label(key string) string {
	return c.Channels.Labels[key]
}

// Enabled reports whether a channel is enabled, combining the disabled
// list with extension declarations. Unknown channels default to enabled.
func (c *Config) Enabled(key string, exts []Extension) bool {
	for _, d := range c.Channels.Disabled {
		if d == key {
			return false
		}
	}
	for _, ext := range exts {
		if ext.Key == key {
			return ext.IsEnabled()
		}
	}
	return true
}

// ExtensionsPath resolves the extensions file path: explicit setting first,
// then the file next to the config.
func (c *Config) ExtensionsPath(configPath string) string {
	if c.Channels.ExtensionsFile != "" {
		return c.Channels.ExtensionsFile
	}
	if configPath == "" {
		configPath = DefaultPath()
	}
	return filepath.Join(filepath.Dir(configPath), "extensions.yaml")
}
