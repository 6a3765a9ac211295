package app

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Gen      string
	Tile     int
	TPS      int
	Seed     int64
	Width    int
	Height   int
	HUDWidth int
	Regen    time.Duration
	Params   KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Gen:      "room",
		Tile:     10,
		TPS:      60,
		Seed:     42,
		Width:    1280,
		Height:   800,
		HUDWidth: 240,
		Params:   KeyValues{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Gen, "gen", c.Gen, "generator to run")
	fs.IntVar(&c.Tile, "tile", c.Tile, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generator reset")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.DurationVar(&c.Regen, "regen", c.Regen, "regenerate automatically at this interval (0 disables)")
	if c.Params == nil {
		c.Params = KeyValues{}
	}
	fs.Var(c.Params, "set", "generator parameter override in key=value form (repeatable)")
}

// KeyValues collects repeated key=value flags into a map.
type KeyValues map[string]string

func (kv KeyValues) String() string {
	parts := make([]string, 0, len(kv))
	for k, v := range kv {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (kv KeyValues) Set(value string) error {
	k, v, ok := strings.Cut(value, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	kv[k] = v
	return nil
}
