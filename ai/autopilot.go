// Package ai contains computer players that drive a game.Session through the
// same events a human would send.
package ai

import (
	"math"

	"canvas-snake/game"

	"github.com/joonazan/vec2"
	"github.com/nickdavies/go-astar/astar"
)

// blockedWeight marks a tile as impassable for astar.
const blockedWeight = -1

var directions = []game.Direction{game.UP, game.RIGHT, game.DOWN, game.LEFT}

// Autopilot steers toward the food along the shortest free path. When the
// food cannot be reached it takes the safe neighbouring cell closest to it.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// board is the snake's view of the canvas in whole cells. A partial cell at
// the right or bottom edge counts as wall.
type board struct {
	res      int
	rows     int
	cols     int
	occupied map[game.Point]struct{}
}

func newBoard(s *game.Snake, food game.Point) *board {
	b := &board{
		res:      s.Resolution,
		rows:     s.Height / s.Resolution,
		cols:     s.Width / s.Resolution,
		occupied: make(map[game.Point]struct{}, len(s.Body)),
	}

	// The tail moves away on the next tick and the head is where we start.
	if n := len(s.Body); n > 2 {
		for _, part := range s.Body[1 : n-1] {
			b.occupied[part] = struct{}{}
		}
	}
	// Eating keeps the tail in place for this tick.
	if len(s.Body) > 1 && (food == s.GetHead() || food == s.Body[0]) {
		b.occupied[s.Body[0]] = struct{}{}
	}
	// Block the cell behind the head so a route never starts with a reversal.
	if s.Velocity != (game.Point{}) {
		head := s.GetHead()
		b.occupied[game.Point{X: head.X - s.Velocity.X, Y: head.Y - s.Velocity.Y}] = struct{}{}
	}
	return b
}

func (b *board) cell(p game.Point) (astar.Point, bool) {
	if p.X < 0 || p.Y < 0 || p.X%b.res != 0 || p.Y%b.res != 0 {
		return astar.Point{}, false
	}
	row, col := p.Y/b.res, p.X/b.res
	if row >= b.rows || col >= b.cols {
		return astar.Point{}, false
	}
	return astar.Point{Row: row, Col: col}, true
}

func (b *board) free(p game.Point) bool {
	if _, ok := b.cell(p); !ok {
		return false
	}
	_, taken := b.occupied[p]
	return !taken
}

// Steer implements game.Pilot.
func (a *Autopilot) Steer(s *game.Session) (game.Event, bool) {
	snake := s.Snake
	if snake.IsGameOver() || snake.Resolution < 1 {
		return game.NoEvent, false
	}

	food := s.Food.Position()
	b := newBoard(snake, food)
	if dir, ok := a.route(b, snake, food); ok {
		return dir.Event(), true
	}
	if dir, ok := a.nearestSafe(b, snake, food); ok {
		return dir.Event(), true
	}
	return game.NoEvent, false
}

func (a *Autopilot) route(b *board, snake *game.Snake, food game.Point) (game.Direction, bool) {
	source, ok := b.cell(snake.GetHead())
	if !ok {
		return game.NONE, false
	}
	target, ok := b.cell(food)
	if !ok || !b.free(food) {
		return game.NONE, false
	}

	grid := astar.NewAStar(b.rows, b.cols)
	for p := range b.occupied {
		if c, ok := b.cell(p); ok {
			grid.FillTile(c, blockedWeight)
		}
	}

	path := grid.FindPath(astar.NewPointToPoint(), []astar.Point{source}, []astar.Point{target})
	var steps []astar.Point
	for ; path != nil; path = path.Parent {
		steps = append(steps, path.Point)
	}
	if len(steps) < 2 {
		return game.NONE, false
	}

	next := steps[1]
	if steps[0] != source {
		next = steps[len(steps)-2]
	}
	dir := game.DirectionOf(game.Point{X: next.Col - source.Col, Y: next.Row - source.Row})
	if !a.legal(b, snake, dir) {
		return game.NONE, false
	}
	return dir, true
}

// nearestSafe ranks the legal moves by straight line distance to the food,
// keeping the current heading on ties.
func (a *Autopilot) nearestSafe(b *board, snake *game.Snake, food game.Point) (game.Direction, bool) {
	target := vec2.Vector{X: float64(food.X), Y: float64(food.Y)}

	candidates := directions
	if current := game.DirectionOf(snake.Velocity); current != game.NONE {
		candidates = append([]game.Direction{current}, directions...)
	}

	best := game.NONE
	bestDist := math.Inf(1)
	for _, dir := range candidates {
		if !a.legal(b, snake, dir) {
			continue
		}
		next := snake.GetHead().Add(dir.ToPoint(b.res))
		dist := vec2.Vector{X: float64(next.X), Y: float64(next.Y)}.Minus(target).Length()
		if dist < bestDist {
			best, bestDist = dir, dist
		}
	}
	return best, best != game.NONE
}

// legal reports whether turning to dir is accepted by the session and leads
// to a free cell.
func (a *Autopilot) legal(b *board, snake *game.Snake, dir game.Direction) bool {
	if dir == game.NONE {
		return false
	}
	v := snake.Velocity
	step := dir.ToPoint(b.res)
	if v != (game.Point{}) && step.X == -v.X && step.Y == -v.Y {
		return false
	}
	return b.free(snake.GetHead().Add(step))
}
