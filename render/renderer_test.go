package render

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-aim/constants"
	"github.com/lixenwraith/dead-aim/engine"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func cellRune(s tcell.SimulationScreen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

// TestDrawSession verifies player, enemy, and floor glyph placement,
// and that off-grid and dead enemies are not drawn.
func TestDrawSession(t *testing.T) {
	s := simScreen(t)
	r := NewRenderer(s)

	sess := engine.NewSession(rand.New(rand.NewPCG(1, 0)))
	sess.PlayerX, sess.PlayerY = 4, 7
	sess.Enemies = engine.Wave{
		{ID: 0, X: 2.8, Y: 3.1, Alive: true},
		{ID: 1, X: 10, Y: 10, Alive: false},
		{ID: 2, X: -5, Y: 40, Alive: true},
	}

	r.DrawSession(sess, 500, "Shot enemy id: 0!")

	if got := cellRune(s, 4, gridTop+7); got != playerCh {
		t.Errorf("Expected player %q at (4,7), got %q", playerCh, got)
	}
	// Positions truncate to the containing cell.
	if got := cellRune(s, 2, gridTop+3); got != enemyCh {
		t.Errorf("Expected enemy %q at (2,3), got %q", enemyCh, got)
	}
	if got := cellRune(s, 10, gridTop+10); got != floorCh {
		t.Errorf("Dead enemy drawn at (10,10): %q", got)
	}
	if got := cellRune(s, 0, gridTop); got != floorCh {
		t.Errorf("Expected floor at (0,0), got %q", got)
	}
	// Grid is exactly GridSize wide.
	if got := cellRune(s, constants.GridSize, gridTop); got == floorCh {
		t.Error("Floor drawn past the grid edge")
	}
}

// TestDrawSessionHUD verifies the HUD line content.
func TestDrawSessionHUD(t *testing.T) {
	s := simScreen(t)
	r := NewRenderer(s)

	sess := engine.NewSession(rand.New(rand.NewPCG(2, 0)))
	sess.Level = 3
	sess.Score = 240
	r.DrawSession(sess, 999, "")

	want := "Level: 3"
	for i, ch := range want {
		if got := cellRune(s, i, hudRow); got != ch {
			t.Fatalf("HUD mismatch at col %d: expected %q, got %q", i, ch, got)
		}
	}
}

// TestDrawMenu verifies the menu choices render.
func TestDrawMenu(t *testing.T) {
	s := simScreen(t)
	r := NewRenderer(s)
	r.DrawMenu("Invalid choice! Try again.")

	if got := cellRune(s, 0, 2); got != '1' {
		t.Errorf("Expected menu choice '1' at row 2, got %q", got)
	}
	if got := cellRune(s, 0, 8); got != 'I' {
		t.Errorf("Expected error message at row 8, got %q", got)
	}
}
