package term

import (
	"context"
	"testing"
	"time"

	"canvas-snake/game"
	"canvas-snake/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(44, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.NewSession(game.DefaultConfig(), game.WithRand(rand.New(rand.NewSource(4))))
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		out = append(out, runeAt(screen, x, y))
	}
	return string(out)
}

func TestDrawMapsGridCells(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	s := newTestSession(t)
	s.Snake.Body = []game.Point{{X: 0, Y: 0}, {X: 20, Y: 0}}
	s.Food.Place(game.Point{X: 100, Y: 60})

	ui.Draw(screen, s)

	cells := []struct {
		x, y int
		want rune
	}{
		{0, 0, tcell.RuneULCorner},
		{41, 21, tcell.RuneLRCorner},
		{1, 1, block},
		{2, 1, block},
		{3, 1, block},
		{4, 1, block},
		{5, 1, ' '},
		{11, 4, dot},
		{12, 4, dot},
		{13, 4, ' '},
	}
	for _, c := range cells {
		if got := runeAt(sim, c.x, c.y); got != c.want {
			t.Errorf("cell (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}
}

func TestDrawGameOverText(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	s := newTestSession(t)
	s.Food.Place(game.Point{X: 200, Y: 200})
	s.Snake.Velocity = game.Point{Y: -20}
	s.Frame()

	ui.Draw(screen, s)

	if got := rowText(sim, 10, 21, 30); got != "Game over" {
		t.Errorf("Expected \"Game over\" on row 10, got %q", got)
	}
}

func TestRectClipsToCanvas(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	screen.Background(ui.Black)
	screen.Fill(ui.White)

	screen.Rect(400, 0, 20, 20)
	screen.Rect(-20, 0, 20, 20)

	if got := runeAt(sim, 41, 1); got != tcell.RuneVLine {
		t.Errorf("Expected border to survive an off canvas rect, got %q", got)
	}
	if got := runeAt(sim, 0, 1); got != tcell.RuneVLine {
		t.Errorf("Expected left border to survive, got %q", got)
	}
}

func TestTextClipsAtRightBorder(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	s := newTestSession(t)
	s.Food.Place(game.Point{X: 200, Y: 200})
	s.Score = 100

	screen.Frame(s)

	if got := rowText(sim, 1, 39, 41); got != "10" {
		t.Errorf("Expected score digits before the border, got %q", got)
	}
	if got := runeAt(sim, 41, 1); got != tcell.RuneVLine {
		t.Errorf("Expected right border to survive a long score, got %q", got)
	}
}

func TestFrameFollowsResolutionAfterReset(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	s := newTestSession(t)

	s.Resolution = 40
	s.Reset()
	s.Food.Place(game.Point{X: 200, Y: 200})

	screen.Frame(s)

	cells := []struct {
		x, y int
		want rune
	}{
		{21, 11, tcell.RuneLRCorner},
		{1, 1, block},
		{2, 1, block},
		{3, 1, ' '},
		{11, 6, dot},
		{12, 6, dot},
		{13, 6, ' '},
	}
	for _, c := range cells {
		if got := runeAt(sim, c.x, c.y); got != c.want {
			t.Errorf("cell (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}
}

func TestEventForKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want game.Event
		ok   bool
	}{
		{tcell.KeyUp, 0, game.Up, true},
		{tcell.KeyDown, 0, game.Down, true},
		{tcell.KeyLeft, 0, game.Left, true},
		{tcell.KeyRight, 0, game.Right, true},
		{tcell.KeyRune, 'k', game.Up, true},
		{tcell.KeyRune, 'h', game.Left, true},
		{tcell.KeyRune, ',', game.SpeedDown, true},
		{tcell.KeyRune, '.', game.SpeedUp, true},
		{tcell.KeyRune, '-', game.ResolutionDown, true},
		{tcell.KeyRune, '=', game.ResolutionUp, true},
		{tcell.KeyRune, 'r', game.Reset, true},
		{tcell.KeyRune, 'x', game.NoEvent, false},
		{tcell.KeyEnter, 0, game.NoEvent, false},
	}

	for _, tt := range tests {
		got, ok := eventForKey(tt.key, tt.r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("key %v rune %q: expected (%s, %v), got (%s, %v)", tt.key, tt.r, tt.want, tt.ok, got, ok)
		}
	}
}

func TestRunAppliesKeysAndQuits(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	s := newTestSession(t)
	s.Food.Place(game.Point{X: 380, Y: 380})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- screen.Run(ctx, s)
	}()

	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := <-errc; err != nil {
		t.Fatalf("Expected clean quit, got %v", err)
	}
	if s.Snake.Velocity != (game.Point{X: 0, Y: 20}) {
		t.Errorf("Expected velocity (0,20) after down key, got %v", s.Snake.Velocity)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim := newSimScreen(t)
	screen := New(sim, 400, 400, 20)
	s := newTestSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := screen.Run(ctx, s); err != context.DeadlineExceeded {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
	if s.Frames() == 0 {
		t.Error("Expected at least one frame before the deadline")
	}
}
