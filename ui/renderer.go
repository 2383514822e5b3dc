package ui

import (
	"fmt"

	"canvas-snake/game"
)

type Color struct {
	R, G, B uint8
}

var (
	Black  = Color{R: 0, G: 0, B: 0}
	White  = Color{R: 255, G: 255, B: 255}
	Red    = Color{R: 255, G: 0, B: 0}
	Head   = Color{R: 209, G: 213, B: 219}
	Orange = Color{R: 249, G: 115, B: 22}
)

const foodRadius = 4

// Renderer is the drawing surface a frontend provides. Coordinates are canvas
// pixels with the origin at the top left.
type Renderer interface {
	Background(c Color)
	Fill(c Color)
	Rect(x, y, w, h int)
	Square(x, y, w, radius int)
	Text(x, y int, s string)
	Size() (w, h int)
}

// Draw paints one frame of the session.
func Draw(r Renderer, s *game.Session) {
	width, height := r.Size()
	r.Background(Black)

	snake := s.Snake
	res := snake.Resolution
	r.Fill(White)
	for i, part := range snake.Body {
		if i == len(snake.Body)-1 {
			r.Fill(Head)
		}
		r.Rect(part.X, part.Y, res, res)
	}

	food := s.Food.Position()
	r.Fill(Orange)
	r.Square(food.X, food.Y, s.Food.Resolution(), foodRadius)

	r.Fill(White)
	r.Text(width-20, 20, fmt.Sprint(s.Score))
	if s.Stats.GetGamesPlayed() > 0 {
		r.Text(10, 20, fmt.Sprintf("Best: %d", s.Stats.GetMaxScore()))
	}

	if snake.IsGameOver() {
		r.Fill(Red)
		r.Text(width/2, height/2, "Game over")
	}
}
