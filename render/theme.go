package render

import "github.com/gdamore/tcell/v2"

// Theme is the color palette for all screens.
type Theme struct {
	Title   tcell.Color
	Menu    tcell.Color
	HUD     tcell.Color
	Player  tcell.Color
	Enemy   tcell.Color
	Floor   tcell.Color
	Message tcell.Color
	Good    tcell.Color
	Bad     tcell.Color
}

// DefaultTheme mirrors the classic terminal palette: green player, red
// enemies, yellow floor, cyan HUD, magenta title.
func DefaultTheme() Theme {
	return Theme{
		Title:   tcell.ColorPurple,
		Menu:    tcell.ColorTeal,
		HUD:     tcell.ColorTeal,
		Player:  tcell.ColorGreen,
		Enemy:   tcell.ColorRed,
		Floor:   tcell.ColorYellow,
		Message: tcell.ColorWhite,
		Good:    tcell.ColorGreen,
		Bad:     tcell.ColorRed,
	}
}
