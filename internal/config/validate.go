package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if strings.ContainsRune(c.Socket, 0) {
		return fmt.Errorf("socket: path contains NUL")
	}

	if err := validateQuery(&c.Query); err != nil {
		return fmt.Errorf("query: %w", err)
	}

	if c.Resize.Step <= 0 {
		return fmt.Errorf("resize: step must be positive, got %d", c.Resize.Step)
	}

	for i, subrole := range c.Navigation.HelperSubroles {
		if strings.TrimSpace(subrole) == "" {
			return fmt.Errorf("navigation: helperSubroles[%d] is empty", i)
		}
	}

	return nil
}

func validateQuery(q *QueryConfig) error {
	if q.MaxAttempts < 0 {
		return fmt.Errorf("maxAttempts must be >= 0, got %d", q.MaxAttempts)
	}
	if q.Backoff == "" {
		return nil
	}
	d, err := time.ParseDuration(q.Backoff)
	if err != nil {
		return fmt.Errorf("invalid backoff %q: %w", q.Backoff, err)
	}
	if d < 0 {
		return fmt.Errorf("backoff must not be negative, got %s", q.Backoff)
	}
	return nil
}
