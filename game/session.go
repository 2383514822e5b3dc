package game

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Pilot steers the snake on behalf of the player. It is consulted right
// before every tick.
type Pilot interface {
	Steer(s *Session) (Event, bool)
}

// Session owns everything a running game needs: the snake, the food, the
// score and the pacing. The frontend calls Apply for every input event and
// Frame once per rendered frame, both from the same goroutine.
type Session struct {
	UUID   string
	Width  int
	Height int
	// Resolution takes effect on the next reset. The live snake and food keep
	// the resolution they were created with.
	Resolution int
	Speed      int
	FPS        int
	Score      int
	Snake      *Snake
	Food       *Food
	Stats      *GameStats
	Pilot      Pilot

	frame     int
	gameID    string
	startTime time.Time
	recorded  bool
	rng       *rand.Rand
	now       func() time.Time
}

type Option func(*Session)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithPilot(p Pilot) Option {
	return func(s *Session) {
		s.Pilot = p
	}
}

// WithStats shares a stats history between sessions.
func WithStats(stats *GameStats) Option {
	return func(s *Session) {
		s.Stats = stats
	}
}

func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		UUID:       uuid.New().String(),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Resolution: cfg.Resolution,
		Speed:      cfg.Speed,
		FPS:        cfg.FPS,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(s.now().UnixNano())
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
	if s.Stats == nil {
		s.Stats = NewGameStats()
	}

	s.newGame()
	return s, nil
}

func (s *Session) newGame() {
	s.Score = 0
	s.Food = NewFood(s.Width, s.Height, s.Resolution, s.rng)
	s.Snake = NewSnake(Point{X: 0, Y: 0}, s.Width, s.Height, s.Resolution, s.Food, s.increaseScore)
	s.gameID = uuid.New().String()
	s.startTime = s.now()
	s.recorded = false

	log.Printf("session %s: game %s started, resolution %d, speed %d, food at %v",
		s.UUID, s.gameID, s.Resolution, s.Speed, s.Food.Position())
}

func (s *Session) increaseScore() {
	s.Score++
	log.Printf("session %s: food eaten at %v, score %d, food moved to %v",
		s.UUID, s.Snake.GetHead(), s.Score, s.Food.Position())
}

// TickDue reports whether the next Frame call advances the snake.
func (s *Session) TickDue() bool {
	return s.frame%s.Speed == 0
}

// Frame accounts one rendered frame and ticks the snake on every Speed-th
// frame. It returns whether a tick happened.
func (s *Session) Frame() bool {
	due := s.TickDue()
	if due {
		if s.Pilot != nil && !s.Snake.IsGameOver() {
			if ev, ok := s.Pilot.Steer(s); ok {
				s.Apply(ev)
			}
		}
		s.Snake.Tick()
		s.recordGameOver()
	}
	s.frame++
	return due
}

func (s *Session) Frames() int {
	return s.frame
}

// Apply handles one input event. Events that make no sense in the current
// state are dropped silently.
func (s *Session) Apply(ev Event) {
	switch ev {
	case Up, Down, Left, Right:
		s.turn(ev)
	case SpeedUp:
		s.Speed = max(1, s.Speed-speedStep)
	case SpeedDown:
		s.Speed += speedStep
	case ResolutionDown:
		if s.Resolution > 1 {
			s.Resolution--
		}
	case ResolutionUp:
		if s.Resolution < min(s.Width, s.Height) {
			s.Resolution++
		}
	case Reset:
		s.Reset()
	}
}

// turn only allows moving onto the axis the snake is not travelling along,
// which rules out reversing into the neck.
func (s *Session) turn(ev Event) {
	dir, ok := ev.Direction()
	if !ok {
		return
	}

	v := s.Snake.Velocity
	switch dir {
	case UP, DOWN:
		if v.Y != 0 {
			return
		}
	case LEFT, RIGHT:
		if v.X != 0 {
			return
		}
	}
	if s.Snake.Folded() {
		return
	}

	next := dir.ToPoint(s.Snake.Resolution)
	s.Snake.SetDirection(next.X, next.Y)
}

// Reset starts a new game with the current resolution. The finished game, if
// any, is already in Stats.
func (s *Session) Reset() {
	log.Printf("session %s: reset after game %s with score %d", s.UUID, s.gameID, s.Score)
	s.newGame()
}

func (s *Session) recordGameOver() {
	if !s.Snake.IsGameOver() || s.recorded {
		return
	}
	s.recorded = true

	s.Stats.AddGame(GameRecord{
		ID:        s.gameID,
		StartTime: s.startTime,
		EndTime:   s.now(),
		Score:     s.Score,
		Cause:     s.Snake.Cause,
	})
	log.Printf("session %s: game %s over (%s) at %v, score %d",
		s.UUID, s.gameID, s.Snake.Cause, s.Snake.GetHead(), s.Score)
}
