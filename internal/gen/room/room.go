package room

import (
	"strconv"

	"dungeon/internal/core"
	pcore "dungeon/pkg/core"
)

// Room generates a single rectangular room of random size centered on the
// origin, surrounded by a one-cell wall ring.
type Room struct {
	cfg Config
	rng *pcore.RNG

	// Size of the most recently generated room interior.
	last core.Point
}

// New creates a room generator with the given configuration.
func New(cfg Config) *Room {
	cfg.normalize()
	r := &Room{cfg: cfg}
	r.Reset(cfg.Seed)
	return r
}

// Name returns the generator identifier.
func (r *Room) Name() string { return "room" }

// Reset reseeds the generator.
func (r *Room) Reset(seed int64) {
	r.cfg.Seed = seed
	r.rng = pcore.NewRNG(seed)
}

// Last returns the interior size of the most recently generated room.
func (r *Room) Last() core.Point { return r.last }

// Generate clears dst and draws a new room into it.
func (r *Room) Generate(dst core.Canvas) {
	dst.Clear()
	w := r.rng.IntRange(r.cfg.MinWidth, r.cfg.MaxWidth)
	h := r.rng.IntRange(r.cfg.MinHeight, r.cfg.MaxHeight)
	r.last = core.Pt(w, h)
	Draw(dst, w, h)
}

// Draw writes a w x h floor centered on the origin and its wall ring.
func Draw(dst core.Canvas, w, h int) {
	start := core.Pt(w, h).Vec().Scale(-0.5).Point()
	for xi := 0; xi < w; xi++ {
		for yi := 0; yi < h; yi++ {
			dst.SetPoint(start.Add(core.Pt(xi, yi)), core.Floor)
		}
	}
	for xi := -1; xi <= w; xi++ {
		dst.SetPoint(start.Add(core.Pt(xi, -1)), core.Wall)
		dst.SetPoint(start.Add(core.Pt(xi, h)), core.Wall)
	}
	for yi := 0; yi < h; yi++ {
		dst.SetPoint(start.Add(core.Pt(-1, yi)), core.Wall)
		dst.SetPoint(start.Add(core.Pt(w, yi)), core.Wall)
	}
}

// Parameters reports the current size ranges.
func (r *Room) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Room",
			Params: []core.Parameter{
				intParam("min_w", "Min width", r.cfg.MinWidth),
				intParam("max_w", "Max width", r.cfg.MaxWidth),
				intParam("min_h", "Min height", r.cfg.MinHeight),
				intParam("max_h", "Max height", r.cfg.MaxHeight),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable size bounds.
func (r *Room) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("min_w", "Min width"),
		intControl("max_w", "Max width"),
		intControl("min_h", "Min height"),
		intControl("max_h", "Max height"),
	}
}

// SetIntParameter updates a size bound. Ranges stay non-empty: raising a
// minimum past its maximum drags the maximum along.
func (r *Room) SetIntParameter(key string, value int) bool {
	if value < 1 || value > maxRoomSide {
		return false
	}
	switch key {
	case "min_w":
		r.cfg.MinWidth = value
	case "max_w":
		if value <= r.cfg.MinWidth {
			return false
		}
		r.cfg.MaxWidth = value
	case "min_h":
		r.cfg.MinHeight = value
	case "max_h":
		if value <= r.cfg.MinHeight {
			return false
		}
		r.cfg.MaxHeight = value
	default:
		return false
	}
	r.cfg.normalize()
	return true
}

const maxRoomSide = 400

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func intControl(key, label string) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeInt,
		Step: 1, Min: 1, Max: maxRoomSide, HasMin: true, HasMax: true,
	}
}

func init() {
	core.Register("room", func(cfg map[string]string) core.Generator {
		return New(FromMap(cfg))
	})
}
