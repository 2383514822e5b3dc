// Package term runs a session in a terminal through tcell. One grid cell of
// the canvas is drawn as one row and two columns.
package term

import (
	"context"
	"log"
	"time"

	"canvas-snake/game"
	"canvas-snake/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	block  = '█'
	dot    = '●'
	margin = 1 // border around the canvas
)

// Screen implements ui.Renderer on a tcell screen.
type Screen struct {
	screen tcell.Screen
	width  int
	height int
	scale  int
	style  tcell.Style
}

// New wraps an initialised tcell screen. scale is the number of canvas pixels
// that make one terminal row.
func New(screen tcell.Screen, width, height, scale int) *Screen {
	t := &Screen{
		screen: screen,
		width:  width,
		height: height,
		style:  tcell.StyleDefault,
	}
	t.SetScale(scale)
	return t
}

func (t *Screen) col(x int) int {
	return margin + x*2/t.scale
}

func (t *Screen) row(y int) int {
	return margin + y/t.scale
}

func (t *Screen) Background(c ui.Color) {
	t.screen.Clear()

	bg := tcell.StyleDefault.Background(toTcell(c))
	right, bottom := t.col(t.width), t.row(t.height)
	for y := margin; y < bottom; y++ {
		for x := margin; x < right; x++ {
			t.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := margin; x < right; x++ {
		t.screen.SetContent(x, 0, tcell.RuneHLine, nil, border)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := margin; y < bottom; y++ {
		t.screen.SetContent(0, y, tcell.RuneVLine, nil, border)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, border)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, border)
	t.screen.SetContent(right, 0, tcell.RuneURCorner, nil, border)
	t.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, border)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)
}

func (t *Screen) Fill(c ui.Color) {
	t.style = tcell.StyleDefault.Foreground(toTcell(c)).Background(tcell.ColorBlack)
}

func (t *Screen) Rect(x, y, w, h int) {
	t.cells(x, y, w, h, block)
}

// Square ignores the radius, a terminal cell cannot be rounded.
func (t *Screen) Square(x, y, w, radius int) {
	t.cells(x, y, w, w, dot)
}

// cells paints every terminal cell the pixel rectangle overlaps, clipped to
// the canvas.
func (t *Screen) cells(x, y, w, h int, r rune) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, t.width), min(y+h, t.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for row := t.row(y0); row <= t.row(y1-1); row++ {
		for col := t.col(x0); col <= margin+(2*x1-1)/t.scale; col++ {
			t.screen.SetContent(col, row, r, nil, t.style)
		}
	}
}

// Text writes s on the row holding pixel y-1, so y acts as a baseline. Runes
// past the right edge of the canvas are dropped.
func (t *Screen) Text(x, y int, s string) {
	row := t.row(max(y-1, 0))
	col := t.col(x)
	right := t.col(t.width)
	for _, r := range s {
		if col >= right {
			return
		}
		t.screen.SetContent(col, row, r, nil, t.style)
		col++
	}
}

// SetScale changes how many canvas pixels make one terminal row.
func (t *Screen) SetScale(scale int) {
	t.scale = max(scale, 1)
}

// Frame draws the session at the resolution of its current snake, which
// changes when a reset picks up a new resolution.
func (t *Screen) Frame(s *game.Session) {
	t.SetScale(s.Snake.Resolution)
	ui.Draw(t, s)
	t.screen.Show()
}

func (t *Screen) Size() (int, int) {
	return t.width, t.height
}

func toTcell(c ui.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// KeyEvent maps a key press to a session event.
func KeyEvent(ev *tcell.EventKey) (game.Event, bool) {
	return eventForKey(ev.Key(), ev.Rune())
}

func eventForKey(key tcell.Key, r rune) (game.Event, bool) {
	switch key {
	case tcell.KeyUp:
		return game.Up, true
	case tcell.KeyDown:
		return game.Down, true
	case tcell.KeyLeft:
		return game.Left, true
	case tcell.KeyRight:
		return game.Right, true
	case tcell.KeyRune:
		switch r {
		case 'k':
			return game.Up, true
		case 'j':
			return game.Down, true
		case 'h':
			return game.Left, true
		case 'l':
			return game.Right, true
		case ',':
			return game.SpeedDown, true
		case '.':
			return game.SpeedUp, true
		case '-':
			return game.ResolutionDown, true
		case '=':
			return game.ResolutionUp, true
		case 'r':
			return game.Reset, true
		}
	}
	return game.NoEvent, false
}

func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q')
}

// Run drives the session at the session frame rate until the user quits or
// ctx is cancelled. Input is applied between frames on this goroutine only.
func (t *Screen) Run(ctx context.Context, s *game.Session) error {
	log.Printf("session %s: terminal canvas %dx%d, scale %d", s.UUID, t.width, t.height, t.scale)

	ticker := time.NewTicker(time.Second / time.Duration(s.FPS))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev.Key(), ev.Rune()) {
					return nil
				}
				if e, ok := KeyEvent(ev); ok {
					s.Apply(e)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}

		case <-ticker.C:
			s.Frame()
			t.Frame(s)
		}
	}
}
