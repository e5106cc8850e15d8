package config

// Config is the root configuration structure
type Config struct {
	Socket     string           `yaml:"socket" json:"socket" toml:"socket"` // Overrides /tmp/yabai_$USER.socket
	Query      QueryConfig      `yaml:"query" json:"query" toml:"query"`
	Resize     ResizeConfig     `yaml:"resize" json:"resize" toml:"resize"`
	Navigation NavigationConfig `yaml:"navigation" json:"navigation" toml:"navigation"`
}

// QueryConfig controls how empty yabai query replies are retried
type QueryConfig struct {
	MaxAttempts int    `yaml:"maxAttempts" json:"maxAttempts" toml:"maxAttempts"` // 0 retries forever
	Backoff     string `yaml:"backoff" json:"backoff" toml:"backoff"`             // Go duration, e.g. "50ms"
}

// ResizeConfig controls `window inc`
type ResizeConfig struct {
	Step int `yaml:"step" json:"step" toml:"step"` // Pixels per step
}

// NavigationConfig tunes window focus fallbacks
type NavigationConfig struct {
	HelperSubroles []string `yaml:"helperSubroles" json:"helperSubroles" toml:"helperSubroles"` // Never focused
}
