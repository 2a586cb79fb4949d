package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dead-aim/engine"
)

// commandFor maps one key event to a tick command. Unmapped keys still
// consume a tick as CmdNone, matching the one-tick-per-consumed-input
// contract. The 's' key doubles as move-down and shoot; Advance keeps
// that coupling.
func commandFor(ev *tcell.EventKey) engine.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.CmdQuit
	case tcell.KeyUp:
		return engine.CmdUp
	case tcell.KeyDown:
		return engine.CmdDown
	case tcell.KeyLeft:
		return engine.CmdLeft
	case tcell.KeyRight:
		return engine.CmdRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return engine.CmdUp
		case 'a', 'A':
			return engine.CmdLeft
		case 's', 'S':
			return engine.CmdShoot
		case 'd', 'D':
			return engine.CmdRight
		case 'q', 'Q':
			return engine.CmdQuit
		}
	}
	return engine.CmdNone
}
