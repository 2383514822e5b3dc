package game

type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// State is the snake lifecycle. GameOver is terminal.
type State int

const (
	Alive State = iota
	GameOver
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall-collision"
	case SelfCollision:
		return "self-collision"
	default:
		return "none"
	}
}

// Snake holds the body segments (tail first, head last) and the velocity in
// pixels per tick. Width and Height are the canvas bounds the head must stay in.
type Snake struct {
	Body       []Point
	Velocity   Point
	Resolution int
	Width      int
	Height     int
	State      State
	Cause      CollisionType

	food  *Food
	onEat func()
}

// NewSnake creates a single segment snake at start moving right by one cell.
func NewSnake(start Point, width, height, resolution int, food *Food, onEat func()) *Snake {
	return &Snake{
		Body:       []Point{start},
		Velocity:   Point{X: resolution, Y: 0},
		Resolution: resolution,
		Width:      width,
		Height:     height,
		State:      Alive,
		Cause:      NoCollision,
		food:       food,
		onEat:      onEat,
	}
}

func (s *Snake) GetHead() Point {
	return s.Body[len(s.Body)-1]
}

// Folded reports whether the last two segments sit on the same cell, which
// only happens while the velocity is zero.
func (s *Snake) Folded() bool {
	n := len(s.Body)
	return n >= 2 && s.Body[n-2] == s.Body[n-1]
}

func (s *Snake) IsGameOver() bool {
	return s.State == GameOver
}

// SetDirection replaces the velocity. It is ignored once the game is over or
// when both axes are nonzero. Reversal checks are the caller's job.
func (s *Snake) SetDirection(dx, dy int) bool {
	if s.IsGameOver() {
		return false
	}
	if dx != 0 && dy != 0 {
		return false
	}
	s.Velocity = Point{X: dx, Y: dy}
	return true
}

// Tick advances the snake by one step. Eating food grows the body by one
// segment by skipping the tail removal.
func (s *Snake) Tick() {
	if s.IsGameOver() {
		return
	}

	head := s.GetHead()
	newHead := head.Add(s.Velocity)

	if s.food != nil && (s.food.Position() == head || s.food.Position() == newHead) {
		s.food.Relocate()
		s.Move(newHead)
		if s.onEat != nil {
			s.onEat()
		}
	} else {
		s.Move(newHead)
		s.RemoveTail()
	}

	if collision := s.checkCollision(); collision != NoCollision {
		s.State = GameOver
		s.Cause = collision
	}
}

func (s *Snake) Move(newHead Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) checkCollision() CollisionType {
	head := s.GetHead()
	if head.X+s.Resolution > s.Width || head.X < 0 ||
		head.Y+s.Resolution > s.Height || head.Y < 0 {
		return WallCollision
	}

	seen := make(map[Point]struct{}, len(s.Body))
	for _, part := range s.Body {
		if _, ok := seen[part]; ok {
			return SelfCollision
		}
		seen[part] = struct{}{}
	}
	return NoCollision
}
