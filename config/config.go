// Package config loads ambient program settings from an ini file.
// Gameplay rules are not configurable; the file only covers where the
// high score lives and whether sound plays.
package config

import (
	"gopkg.in/ini.v1"
)

const (
	// DefaultPath is the settings file looked up next to the binary
	DefaultPath = "dead-aim.ini"

	// DefaultHighScoreFile is the plain-text high score location
	DefaultHighScoreFile = "highscore.txt"
)

// Settings are the resolved program settings.
type Settings struct {
	SoundEnabled  bool
	HighScoreFile string
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		SoundEnabled:  true,
		HighScoreFile: DefaultHighScoreFile,
	}
}

// Load reads settings from path. A missing or unreadable file, or any
// missing key, falls back to defaults; loading never fails.
func Load(path string) Settings {
	s := Defaults()
	cfg, err := ini.Load(path)
	if err != nil {
		return s
	}

	sec := cfg.Section("Settings")
	if k, err := sec.GetKey("Sound"); err == nil {
		if v, err := k.Bool(); err == nil {
			s.SoundEnabled = v
		}
	}
	if k, err := sec.GetKey("HighScoreFile"); err == nil {
		if v := k.String(); v != "" {
			s.HighScoreFile = v
		}
	}
	return s
}
