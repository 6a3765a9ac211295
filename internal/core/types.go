package core

// Canvas is the write surface generators draw into.
type Canvas interface {
	SetPoint(p Point, v Cell)
	Clear()
}

// Generator populates a Canvas with dungeon cells.
type Generator interface {
	Name() string
	Reset(seed int64)
	Generate(dst Canvas)
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}
