package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui"
	"snake-classic/ui/term"
	"snake-classic/ui/window"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	frontend := flag.String("frontend", "window", "Frontend to play on: window (raylib) or term (terminal)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	debug := flag.Bool("debug", false, "Log every movement step")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	var (
		f      ui.Frontend
		logger *log.Logger
	)
	switch *frontend {
	case "window":
		if *debug {
			rl.SetTraceLogLevel(rl.LogDebug)
		}
		f = window.Open(types.DefaultGrid.Width(), types.DefaultGrid.Height(), types.WindowTitle, types.FrameRate)
		logger = log.New(window.TraceWriter{Level: rl.LogInfo}, "", 0)
	case "term":
		logFile := setupLogging(*debug)
		if logFile != nil {
			defer logFile.Close()
		}
		t, err := term.Open(types.CellSize, types.FrameRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
			os.Exit(1)
		}
		f = t
		logger = log.Default()
	default:
		fmt.Fprintf(os.Stderr, "Unknown frontend %q\n", *frontend)
		os.Exit(2)
	}
	defer f.Close()

	g := game.NewGame(game.Config{
		Grid:   types.DefaultGrid,
		Seed:   *seed,
		Logger: logger,
		Debug:  *debug,
	})

	ui.Run(f, g)
}
