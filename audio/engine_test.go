package audio

import "testing"

// TestDisabledEngineIsSilentAndSafe verifies every effect is a no-op on
// a silent engine, so callers never need to guard audio calls.
func TestDisabledEngineIsSilentAndSafe(t *testing.T) {
	e, err := NewEngine(true)
	if err != nil {
		t.Fatalf("Disabled engine returned error: %v", err)
	}
	if e.Enabled() {
		t.Fatal("Disabled engine reports enabled")
	}

	e.Shot()
	e.Hit()
	e.LevelUp()
	e.GameOver()
	e.Close()
}
