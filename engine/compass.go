package engine

// Compass holds the four facing directions in clockwise order.
var Compass = []string{"north", "east", "south", "west"}

// DefaultFacing is the direction a player faces entering a room unless
// the room declares an intro direction.
const DefaultFacing = "north"

// Turn rotates a compass facing. Supported turns are left, right, and
// backwards (also accepted as around). Unknown turns return the current
// facing unchanged.
func Turn(facing, turn string) string {
	idx := compassIndex(facing)
	if idx < 0 {
		idx = compassIndex(DefaultFacing)
	}
	switch turn {
	case "left":
		idx += len(Compass) - 1
	case "right":
		idx++
	case "backwards", "around", "back":
		idx += 2
	default:
		return facing
	}
	return Compass[idx%len(Compass)]
}

// IsCompass reports whether name is one of the four compass directions.
func IsCompass(name string) bool {
	return compassIndex(name) >= 0
}

func compassIndex(name string) int {
	for i, d := range Compass {
		if d == name {
			return i
		}
	}
	return -1
}
