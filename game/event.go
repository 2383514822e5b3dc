package game

// Event is a discrete input delivered once per key press.
type Event int

const (
	NoEvent Event = iota
	Up
	Down
	Left
	Right
	SpeedUp        // fewer frames per tick
	SpeedDown      // more frames per tick
	ResolutionDown // smaller cells, applied on reset
	ResolutionUp   // bigger cells, applied on reset
	Reset
)

func (e Event) String() string {
	switch e {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case SpeedUp:
		return "speed-up"
	case SpeedDown:
		return "speed-down"
	case ResolutionDown:
		return "resolution-down"
	case ResolutionUp:
		return "resolution-up"
	case Reset:
		return "reset"
	default:
		return "none"
	}
}

// Direction represents a cardinal direction
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction into a velocity of the given magnitude.
func (d Direction) ToPoint(magnitude int) Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -magnitude}
	case RIGHT:
		return Point{X: magnitude, Y: 0}
	case DOWN:
		return Point{X: 0, Y: magnitude}
	case LEFT:
		return Point{X: -magnitude, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Event returns the input event that requests d.
func (d Direction) Event() Event {
	switch d {
	case UP:
		return Up
	case RIGHT:
		return Right
	case DOWN:
		return Down
	case LEFT:
		return Left
	default:
		return NoEvent
	}
}

// Direction returns the direction requested by a directional event.
func (e Event) Direction() (Direction, bool) {
	switch e {
	case Up:
		return UP, true
	case Right:
		return RIGHT, true
	case Down:
		return DOWN, true
	case Left:
		return LEFT, true
	default:
		return NONE, false
	}
}

// DirectionOf returns the direction of a single axis delta.
func DirectionOf(delta Point) Direction {
	switch {
	case delta.X > 0 && delta.Y == 0:
		return RIGHT
	case delta.X < 0 && delta.Y == 0:
		return LEFT
	case delta.Y > 0 && delta.X == 0:
		return DOWN
	case delta.Y < 0 && delta.X == 0:
		return UP
	default:
		return NONE
	}
}
