package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-aim/audio"
	"github.com/lixenwraith/dead-aim/config"
	"github.com/lixenwraith/dead-aim/game"
	"github.com/lixenwraith/dead-aim/score"
)

var (
	configFlag    = flag.String("config", config.DefaultPath, "Settings file path")
	highScoreFlag = flag.String("highscore", "", "High score file path (overrides settings)")
	muteFlag      = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	settings := config.Load(*configFlag)
	if *highScoreFlag != "" {
		settings.HighScoreFile = *highScoreFlag
	}
	if *muteFlag {
		settings.SoundEnabled = false
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before the stack trace lands on a crash.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\x1b[31mDEAD-AIM CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	// Speaker failure is non-fatal; the engine stays silent.
	sounds, _ := audio.NewEngine(!settings.SoundEnabled)
	defer sounds.Close()

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	g := game.New(screen, sounds, score.NewStore(settings.HighScoreFile), rng)

	if err := g.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "dead-aim: %v\n", err)
		os.Exit(1)
	}
}
