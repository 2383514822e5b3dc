package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"

	"canvas-snake/ai"
	"canvas-snake/game"
	"canvas-snake/ui/term"
	"canvas-snake/ui/window"

	"github.com/gdamore/tcell/v2"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
)

func main() {
	width := flag.Int("width", game.DefaultWidth, "Canvas width in pixels")
	height := flag.Int("height", game.DefaultHeight, "Canvas height in pixels")
	resolution := flag.Int("resolution", game.DefaultResolution, "Grid cell size in pixels")
	speed := flag.Int("speed", game.DefaultSpeed, "Frames per snake step (lower = faster)")
	fps := flag.Int("fps", game.DefaultFPS, "Rendered frames per second")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	frontend := flag.String("ui", "window", "Frontend: window, term")
	autopilot := flag.Bool("autopilot", false, "Let the computer steer")
	debugLog := flag.Bool("debug", false, "Write a debug log to "+filepath.Join(logDir, logFileName))
	flag.Parse()

	if logFile := setupLogging(*debugLog); logFile != nil {
		defer logFile.Close()
	}

	cfg := game.Config{
		Width:      *width,
		Height:     *height,
		Resolution: *resolution,
		Speed:      *speed,
		FPS:        *fps,
		Seed:       *seed,
	}

	var opts []game.Option
	if *autopilot {
		opts = append(opts, game.WithPilot(ai.NewAutopilot()))
	}
	session, err := game.NewSession(cfg, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	switch *frontend {
	case "window":
		runWindow(session)
	case "term":
		if err := runTerminal(session); err != nil {
			fmt.Fprintf(os.Stderr, "Terminal frontend failed: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown frontend %q (want window or term)\n", *frontend)
		os.Exit(2)
	}

	log.Printf("session %s: exit after %d games, best %d, average %.1f",
		session.UUID, session.Stats.GetGamesPlayed(), session.Stats.GetMaxScore(), session.Stats.GetAverageScore())
}

// setupLogging sends the standard logger to a file when debug is set and
// discards it otherwise. The terminal frontend owns stdout.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func runWindow(session *game.Session) {
	w := window.Open(session.Width, session.Height, session.FPS, "Snake")
	defer w.Close()

	w.Run(session)
}

func runTerminal(session *game.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before a crash report reaches stderr.
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nSNAKE CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := term.New(screen, session.Width, session.Height, session.Resolution)
	if err := t.Run(ctx, session); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
