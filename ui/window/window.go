// Package window runs a session in a raylib window.
package window

import (
	"log"

	"canvas-snake/game"
	"canvas-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 16

// keyEvents maps raylib keys to session events.
var keyEvents = []struct {
	key   int32
	event game.Event
}{
	{rl.KeyUp, game.Up},
	{rl.KeyDown, game.Down},
	{rl.KeyLeft, game.Left},
	{rl.KeyRight, game.Right},
	{rl.KeyComma, game.SpeedDown},
	{rl.KeyPeriod, game.SpeedUp},
	{rl.KeyMinus, game.ResolutionDown},
	{rl.KeyEqual, game.ResolutionUp},
	{rl.KeyR, game.Reset},
}

// Window implements ui.Renderer on top of raylib. Only one can exist per
// process.
type Window struct {
	width  int32
	height int32
	fill   rl.Color
}

func Open(width, height, fps int, title string) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))

	return &Window{
		width:  int32(width),
		height: int32(height),
		fill:   rl.White,
	}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func toRL(c ui.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (w *Window) Background(c ui.Color) {
	rl.ClearBackground(toRL(c))
}

func (w *Window) Fill(c ui.Color) {
	w.fill = toRL(c)
}

func (w *Window) Rect(x, y, width, height int) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), w.fill)
}

func (w *Window) Square(x, y, size, radius int) {
	roundness := float32(0)
	if size > 0 {
		roundness = float32(2*radius) / float32(size)
	}
	rec := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(size), Height: float32(size)}
	rl.DrawRectangleRounded(rec, roundness, 4, w.fill)
}

// Text draws s with its baseline at y.
func (w *Window) Text(x, y int, s string) {
	rl.DrawText(s, int32(x), int32(y)-fontSize, fontSize, w.fill)
}

func (w *Window) Size() (int, int) {
	return int(w.width), int(w.height)
}

// Events returns the keys pressed since the previous frame, once each.
func (w *Window) Events() []game.Event {
	var events []game.Event
	for _, k := range keyEvents {
		if rl.IsKeyPressed(k.key) {
			events = append(events, k.event)
		}
	}
	return events
}

// Run drives the session until the window is closed.
func (w *Window) Run(s *game.Session) {
	log.Printf("session %s: window %dx%d at %d fps", s.UUID, w.width, w.height, s.FPS)

	for !rl.WindowShouldClose() {
		for _, ev := range w.Events() {
			s.Apply(ev)
		}
		s.Frame()

		rl.BeginDrawing()
		ui.Draw(w, s)
		rl.EndDrawing()
	}
}
