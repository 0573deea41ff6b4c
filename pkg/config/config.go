// Package config loads mvnsearch settings from a TOML file.
//
// The default location follows the XDG convention:
// $XDG_CONFIG_HOME/mvnsearch/config.toml, falling back to
// ~/.config/mvnsearch/config.toml. Every key is optional:
//
//	base_url        = "https://search.maven.org/solrsearch"
//	format          = "gradle"
//	show_versions   = true
//	connect_timeout = "10s"
//	read_timeout    = "30s"
//	listen_addr     = ":8080"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mvnsearch/pkg/integrations"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
)

const appName = "mvnsearch"

// Config holds user settings. Zero fields are filled from [Default].
type Config struct {
	BaseURL        string   `toml:"base_url"`
	Format         string   `toml:"format"`
	ShowVersions   bool     `toml:"show_versions"`
	ConnectTimeout Duration `toml:"connect_timeout"`
	ReadTimeout    Duration `toml:"read_timeout"`
	ListenAddr     string   `toml:"listen_addr"`
}

// Duration is a time.Duration written as a Go duration string ("10s", "1m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BaseURL:        maven.DefaultBaseURL,
		Format:         "maven",
		ConnectTimeout: Duration{integrations.DefaultConnectTimeout},
		ReadTimeout:    Duration{integrations.DefaultReadTimeout},
		ListenAddr:     ":8080",
	}
}

// DefaultPath returns the XDG config file location.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path. The file must exist.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.fillDefaults()
	return cfg, nil
}

// LoadDefault reads the config file at [DefaultPath].
// A missing file is not an error; the defaults are returned instead.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// fillDefaults restores defaults for keys explicitly set to empty values.
func (c *Config) fillDefaults() {
	def := Default()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.ConnectTimeout.Duration <= 0 {
		c.ConnectTimeout = def.ConnectTimeout
	}
	if c.ReadTimeout.Duration <= 0 {
		c.ReadTimeout = def.ReadTimeout
	}
	if c.ListenAddr == "" {
		c.ListenAddr = def.ListenAddr
	}
}
