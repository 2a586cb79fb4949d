package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadMissingFile verifies defaults when no settings file exists.
func TestLoadMissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if !s.SoundEnabled {
		t.Error("Expected sound enabled by default")
	}
	if s.HighScoreFile != DefaultHighScoreFile {
		t.Errorf("Expected %q, got %q", DefaultHighScoreFile, s.HighScoreFile)
	}
}

// TestLoadSettings verifies present keys override defaults.
func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dead-aim.ini")
	content := "[Settings]\nSound = false\nHighScoreFile = /tmp/scores.txt\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if s.SoundEnabled {
		t.Error("Expected sound disabled")
	}
	if s.HighScoreFile != "/tmp/scores.txt" {
		t.Errorf("Expected /tmp/scores.txt, got %q", s.HighScoreFile)
	}
}

// TestLoadPartialSettings verifies unknown or absent keys keep defaults.
func TestLoadPartialSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dead-aim.ini")
	content := "[Settings]\nSound = no\n[Other]\nIgnored = 1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if s.SoundEnabled {
		t.Error("Expected sound disabled")
	}
	if s.HighScoreFile != DefaultHighScoreFile {
		t.Errorf("Expected default high score file, got %q", s.HighScoreFile)
	}
}

// TestLoadMalformed verifies a junk file degrades to defaults.
func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dead-aim.ini")
	if err := os.WriteFile(path, []byte("Sound ==== what\n[unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	s := Load(path)
	if s.HighScoreFile != DefaultHighScoreFile {
		t.Errorf("Expected defaults on malformed file, got %q", s.HighScoreFile)
	}
}
