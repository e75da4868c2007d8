package core

// Direction is a coarse compass direction. The zero value DirNone means
// "no direction" (no gesture this poll, nothing pending).
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse of d. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsOpposite reports whether d and other point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d != DirNone && d.Opposite() == other
}

// Delta returns the grid step for d. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the upper-case name used in logs and the HUD.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	default:
		return "None"
	}
}

// ParseDirection maps a name back to a Direction. Unknown names give DirNone.
func ParseDirection(s string) Direction {
	switch s {
	case "UP", "up":
		return DirUp
	case "DOWN", "down":
		return DirDown
	case "LEFT", "left":
		return DirLeft
	case "RIGHT", "right":
		return DirRight
	default:
		return DirNone
	}
}
