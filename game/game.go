// Package game runs the program's state machine: menu, one game
// session at a time, and the game-over report. Control flow is
// strictly sequential: block on one key, run one tick, redraw, sleep.
package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-aim/audio"
	"github.com/lixenwraith/dead-aim/constants"
	"github.com/lixenwraith/dead-aim/engine"
	"github.com/lixenwraith/dead-aim/render"
	"github.com/lixenwraith/dead-aim/score"
)

// Game wires the screen, renderer, audio, high-score store, and rng.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	audio    *audio.Engine
	scores   *score.Store
	rng      *rand.Rand

	// pacing hooks, swappable in tests
	tickSleep  func()
	retrySleep func()
}

// New creates a game over an initialized screen.
func New(screen tcell.Screen, sounds *audio.Engine, scores *score.Store, rng *rand.Rand) *Game {
	return &Game{
		screen:     screen,
		renderer:   render.NewRenderer(screen),
		audio:      sounds,
		scores:     scores,
		rng:        rng,
		tickSleep:  func() { time.Sleep(constants.TickDelay) },
		retrySleep: func() { time.Sleep(constants.MenuRetryDelay) },
	}
}

// Run drives the menu until the player quits. Returning nil is the
// normal exit.
func (g *Game) Run() error {
	errMsg := ""
	for {
		g.renderer.DrawMenu(errMsg)
		ev := g.waitKey(func() { g.renderer.DrawMenu(errMsg) })
		if ev == nil {
			return nil
		}

		errMsg = ""
		switch ev.Rune() {
		case '1':
			g.playSession()
		case '2':
			g.showHighScore()
		case '3':
			return nil
		default:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			errMsg = "Invalid choice! Try again."
			g.retrySleep()
		}
	}
}

// playSession runs one Running→GameOver pass.
func (g *Game) playSession() {
	sess := engine.NewSession(g.rng)
	high := g.scores.Load()
	msg := ""

	for {
		g.renderer.DrawSession(sess, high, msg)
		ev := g.waitKey(func() { g.renderer.DrawSession(sess, high, msg) })
		if ev == nil {
			return
		}

		res := sess.Advance(commandFor(ev))
		if res.Quit {
			break
		}

		msg = g.react(res, sess.Level)
		g.renderer.DrawSession(sess, high, msg)
		if res.GameOver {
			break
		}
		g.tickSleep()
	}

	g.gameOver(sess.Score)
}

// react plays event sounds and builds the tick's message line.
func (g *Game) react(res engine.TickResult, level int) string {
	var parts []string
	if res.Shot {
		g.audio.Shot()
		parts = append(parts, fmt.Sprintf("Shot enemy id: %d!", res.ShotID))
	}
	if res.Hit {
		g.audio.Hit()
		parts = append(parts, fmt.Sprintf("Enemy %d hit you! Health -1", res.HitID))
	}
	if res.LevelUp {
		g.audio.LevelUp()
		parts = append(parts, fmt.Sprintf("Level %d starts with %d enemies!", level, res.WaveSize))
	}
	return strings.Join(parts, "  ")
}

// gameOver reports the final score, persists a new high score when the
// run beat the stored one, and waits for a key.
func (g *Game) gameOver(final int) {
	g.audio.GameOver()
	best, improved, err := g.scores.Record(final)
	g.renderer.DrawGameOver(final, best, improved, err)
	g.waitKey(func() { g.renderer.DrawGameOver(final, best, improved, err) })
}

// showHighScore displays the stored value until a key is pressed.
func (g *Game) showHighScore() {
	v := g.scores.Load()
	g.renderer.DrawHighScore(v)
	g.waitKey(func() { g.renderer.DrawHighScore(v) })
}

// waitKey blocks for the next key event. Resize events trigger the
// redraw callback without consuming a key. A nil return means the
// screen is gone and the caller should unwind.
func (g *Game) waitKey(redraw func()) *tcell.EventKey {
	for {
		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return ev
		case *tcell.EventResize:
			g.screen.Sync()
			redraw()
		case nil:
			return nil
		}
	}
}
