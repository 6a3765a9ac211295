package core

// Cell is the scalar value stored at every grid coordinate.
type Cell uint8

const (
	// Empty is the value of every coordinate that was never written.
	Empty Cell = 0
	// Floor marks walkable room interior.
	Floor Cell = 1
	// Wall marks the ring around a room.
	Wall Cell = 2
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Rune returns the glyph used by text dumps.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return ' '
	case Floor:
		return '.'
	case Wall:
		return '#'
	default:
		return '?'
	}
}
