package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-racer/constants"
	"github.com/lixenwraith/pixel-racer/parameter"
	"github.com/lixenwraith/pixel-racer/render"
)

var (
	configFlag = flag.String("config", "", "Path to a JSON tuning file (defaults when empty)")
	seedFlag   = flag.Int64("seed", 0, "Spawn RNG seed, 0 selects a time-based seed")
	fpsFlag    = flag.Int("fps", 0, "Simulation frames per second (0 uses the ~60 FPS default)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/pixel-racer.log")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := parameter.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: the deferred Fini below has already restored the terminal when this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPIXEL-RACER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(render.ToTcell(render.ColorBackground)))
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a := newApp(cfg, screen, *seedFlag, frameInterval(*fpsFlag))
	if err := a.run(ctx); err != nil {
		log.Printf("exit: %v", err)
	}
}

// frameInterval converts a frame rate flag to a tick interval
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(fps)
}
