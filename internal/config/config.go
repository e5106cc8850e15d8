package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/yctrl/internal/navigate"
)

const (
	DefaultConfigDir  = "yctrl"
	DefaultConfigFile = "config.yaml"
)

// configFiles are searched in order under $XDG_CONFIG_HOME and $XDG_CONFIG_DIRS
var configFiles = []string{"config.yaml", "config.yml", "config.json", "config.toml"}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Resize: ResizeConfig{Step: navigate.DefaultResizeStep},
		Navigation: NavigationConfig{
			HelperSubroles: append([]string(nil), navigate.DefaultHelperSubroles...),
		},
	}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, the first of yctrl/config.{yaml,yml,json,toml} found in
// the XDG config dirs is used, and Default() is returned when there is none.
// An explicit path must exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		found, ok := findConfig()
		if !ok {
			return Default(), nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	cfg, err := LoadConfigFromBytes(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromBytes loads configuration from raw bytes.
// format should be "yaml", "yml", "json" or "toml". Keys missing from data
// keep their defaults.
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func findConfig() (string, bool) {
	for _, name := range configFiles {
		if path, err := xdg.SearchConfigFile(filepath.Join(DefaultConfigDir, name)); err == nil {
			return path, true
		}
	}
	return "", false
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	if path, ok := findConfig(); ok {
		return path
	}
	return filepath.Join(xdg.ConfigHome, DefaultConfigDir, DefaultConfigFile)
}

// ErrNoUser is returned when the socket path has to be derived from $USER
// and it is not set
var ErrNoUser = errors.New("USER environment variable not set")

// SocketPath resolves the yabai socket: the explicit override first, then
// the config file, then /tmp/yabai_$USER.socket.
func (c *Config) SocketPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.Socket != "" {
		return c.Socket, nil
	}
	user := os.Getenv("USER")
	if user == "" {
		return "", ErrNoUser
	}
	return fmt.Sprintf("/tmp/yabai_%s.socket", user), nil
}

// BackoffDuration returns the parsed query backoff. Validate guarantees it
// parses; an empty value is zero.
func (c *Config) BackoffDuration() time.Duration {
	if c.Query.Backoff == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Query.Backoff)
	if err != nil {
		return 0
	}
	return d
}
