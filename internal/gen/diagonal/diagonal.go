package diagonal

import (
	"strconv"

	"dungeon/internal/core"
)

// Config holds parameters for the diagonal test pattern.
type Config struct {
	Span int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Span: 16}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["span"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Span = parsed
		}
	}
	return c
}

// Diagonal draws a fixed pattern crossing both axes in all four quadrants: a
// diagonal wall band with floor edges plus floor lines along x=0, y=0, x=-1
// and y=-1. It exercises chunk addressing around the origin.
type Diagonal struct {
	cfg Config
}

// New creates a pattern generator.
func New(cfg Config) *Diagonal {
	if cfg.Span <= 0 {
		cfg.Span = DefaultConfig().Span
	}
	return &Diagonal{cfg: cfg}
}

// Name returns the generator identifier.
func (d *Diagonal) Name() string { return "diagonal" }

// Reset is a no-op; the pattern does not depend on a seed.
func (d *Diagonal) Reset(int64) {}

// Generate clears dst and draws the pattern.
func (d *Diagonal) Generate(dst core.Canvas) {
	dst.Clear()
	for i := -d.cfg.Span; i < d.cfg.Span; i++ {
		dst.SetPoint(core.Pt(i, i-1), core.Floor)
		for k := 0; k <= 5; k++ {
			dst.SetPoint(core.Pt(i, i+k), core.Wall)
		}
		dst.SetPoint(core.Pt(i, i+6), core.Floor)
		dst.SetPoint(core.Pt(i, 0), core.Floor)
		dst.SetPoint(core.Pt(0, i), core.Floor)
		dst.SetPoint(core.Pt(i, -1), core.Floor)
		dst.SetPoint(core.Pt(-1, i), core.Floor)
	}
}

// Parameters reports the pattern span.
func (d *Diagonal) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Pattern",
		Params: []core.Parameter{
			{Key: "span", Label: "Span", Type: core.ParamTypeInt, Value: strconv.Itoa(d.cfg.Span)},
		},
	}}}
}

// ParameterControls exposes the span on the HUD.
func (d *Diagonal) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key: "span", Label: "Span", Type: core.ParamTypeInt,
		Step: 4, Min: 1, Max: 1024, HasMin: true, HasMax: true,
	}}
}

// SetIntParameter updates the span.
func (d *Diagonal) SetIntParameter(key string, value int) bool {
	if key != "span" || value <= 0 {
		return false
	}
	d.cfg.Span = value
	return true
}

func init() {
	core.Register("diagonal", func(cfg map[string]string) core.Generator {
		return New(FromMap(cfg))
	})
}
