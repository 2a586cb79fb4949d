// Package render draws the menu, the playfield, and the end screens on
// a tcell screen. It consumes final positions only; game rules live in
// the engine package.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-aim/constants"
	"github.com/lixenwraith/dead-aim/engine"
)

// Screen row layout for the session view.
const (
	hudRow    = 0
	gridTop   = 2
	playerCh  = 'P'
	enemyCh   = 'E'
	floorCh   = '.'
	titleText = "================ DeadAim ================"
)

// Renderer owns drawing on one tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, theme: DefaultTheme()}
}

// DrawMenu shows the three-choice menu, with an error line after an
// invalid selection.
func (r *Renderer) DrawMenu(errMsg string) {
	s := r.screen
	s.Clear()
	drawText(s, 0, 0, titleText, style(r.theme.Title).Bold(true))
	drawText(s, 0, 2, "1. Start Game", style(r.theme.Menu))
	drawText(s, 0, 3, "2. View High Score", style(r.theme.Menu))
	drawText(s, 0, 4, "3. Quit", style(r.theme.Menu))
	drawText(s, 0, 6, "Enter your choice: ", style(r.theme.Message))
	if errMsg != "" {
		drawText(s, 0, 8, errMsg, style(r.theme.Bad))
	}
	s.Show()
}

// DrawHighScore shows the stored high score until a key is pressed.
func (r *Renderer) DrawHighScore(v int) {
	s := r.screen
	s.Clear()
	drawText(s, 0, 0, titleText, style(r.theme.Title).Bold(true))
	drawText(s, 0, 2, fmt.Sprintf("Current High Score: %d", v), style(r.theme.Good))
	drawText(s, 0, 4, "Press any key to return to menu...", style(r.theme.Message))
	s.Show()
}

// DrawSession redraws the full in-game view: HUD, grid, event message,
// and key help. Enemies that have wandered off the grid are simply not
// drawn; they remain live targets.
func (r *Renderer) DrawSession(sess *engine.Session, highScore int, msg string) {
	s := r.screen
	s.Clear()

	hud := fmt.Sprintf("Level: %d  Health: %d  Score: %d  Multiplier: x%d  High Score: %d",
		sess.Level, sess.Health, sess.Score, sess.Multiplier, highScore)
	drawText(s, 0, hudRow, hud, style(r.theme.HUD))

	floor := style(r.theme.Floor)
	for y := 0; y < constants.GridSize; y++ {
		for x := 0; x < constants.GridSize; x++ {
			s.SetContent(x, gridTop+y, floorCh, nil, floor)
		}
	}

	enemy := style(r.theme.Enemy)
	for _, e := range sess.Enemies {
		if !e.Alive {
			continue
		}
		x, y := int(e.X), int(e.Y)
		if x < 0 || x >= constants.GridSize || y < 0 || y >= constants.GridSize {
			continue
		}
		s.SetContent(x, gridTop+y, enemyCh, nil, enemy)
	}

	s.SetContent(int(sess.PlayerX), gridTop+int(sess.PlayerY), playerCh, nil,
		style(r.theme.Player).Bold(true))

	msgRow := gridTop + constants.GridSize + 1
	if msg != "" {
		drawText(s, 0, msgRow, msg, style(r.theme.Message))
	}
	drawText(s, 0, msgRow+1, "Move: W/A/S/D  Shoot: s  Quit: q", style(r.theme.HUD))

	s.Show()
}

// DrawGameOver shows the final score and the high-score outcome.
func (r *Renderer) DrawGameOver(final, best int, improved bool, saveErr error) {
	s := r.screen
	s.Clear()
	drawText(s, 0, 0, fmt.Sprintf("Game Over! Final Score: %d", final), style(r.theme.Bad).Bold(true))
	if improved {
		drawText(s, 0, 2, fmt.Sprintf("New High Score: %d!", best), style(r.theme.Good).Bold(true))
	} else {
		drawText(s, 0, 2, fmt.Sprintf("High Score remains: %d", best), style(r.theme.HUD))
	}
	if saveErr != nil {
		drawText(s, 0, 3, fmt.Sprintf("Could not save high score: %v", saveErr), style(r.theme.Bad))
	}
	drawText(s, 0, 5, "Press any key to return to menu...", style(r.theme.Message))
	s.Show()
}

func style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
	}
}
