package room

import "strconv"

// Config holds the room size ranges. Maximums are exclusive.
type Config struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int

	Seed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{MinWidth: 1, MaxWidth: 20, MinHeight: 1, MaxHeight: 20, Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["min_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinWidth = parsed
		}
	}
	if v, ok := cfg["max_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxWidth = parsed
		}
	}
	if v, ok := cfg["min_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinHeight = parsed
		}
	}
	if v, ok := cfg["max_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxHeight = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.normalize()
	return c
}

func (c *Config) normalize() {
	if c.MaxWidth <= c.MinWidth {
		c.MaxWidth = c.MinWidth + 1
	}
	if c.MaxHeight <= c.MinHeight {
		c.MaxHeight = c.MinHeight + 1
	}
}
