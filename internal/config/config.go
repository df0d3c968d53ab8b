package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName   = "stegano"
	envPrefix = "STEGANO_"

	defaultJPEGQuality  = 90
	defaultResizeFilter = "lanczos3"
)

type Config struct {
	JPEGQuality  int    `koanf:"jpeg_quality"`  // 1-100, quality of the Jpeg method's compression (default: 90)
	Noise        *bool  `koanf:"noise"`         // fill unused low nibbles with noise on hide (default: true)
	Engrave      *bool  `koanf:"engrave"`       // write the method tag on hide (default: true)
	ResizeFilter string `koanf:"resize_filter"` // nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3
	OutputDir    string `koanf:"output_dir"`    // where generated output names are placed (default: cwd)

	// Operation journal
	History HistoryConfig `koanf:"history"`
}

// HistoryConfig controls the sqlite operation journal.
type HistoryConfig struct {
	Enabled *bool  `koanf:"enabled"` // default: true
	Path    string `koanf:"path"`    // default: $XDG_DATA_HOME/stegano/history.db
}

// Load reads the config files and environment overrides.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given TOML files in order (last wins), skipping missing
// ones, then applies STEGANO_* environment variables. A double underscore in
// a variable name separates nested keys (STEGANO_HISTORY__ENABLED).
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in paths
	cfg.OutputDir = expandPath(cfg.OutputDir)
	cfg.History.Path = expandPath(cfg.History.Path)

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/stegano/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./stegano.toml (pwd, highest priority)
		appName + ".toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Quality returns the JPEG quality with out-of-range values replaced by the default.
func (c *Config) Quality() int {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return defaultJPEGQuality
	}
	return c.JPEGQuality
}

// NoiseEnabled reports whether hide fills unused slots with noise by default.
func (c *Config) NoiseEnabled() bool {
	return boolOr(c.Noise, true)
}

// EngraveEnabled reports whether hide writes the method tag by default.
func (c *Config) EngraveEnabled() bool {
	return boolOr(c.Engrave, true)
}

// Filter returns the resize filter name, defaulting to lanczos3.
func (c *Config) Filter() string {
	if c.ResizeFilter == "" {
		return defaultResizeFilter
	}
	return c.ResizeFilter
}

// HistoryEnabled reports whether operations are journaled.
func (c *Config) HistoryEnabled() bool {
	return boolOr(c.History.Enabled, true)
}

// HistoryPath returns the journal database path, creating its directory
// under the XDG data home when no path is configured.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	return xdg.DataFile(filepath.Join(appName, "history.db"))
}
