// Package score persists the all-time high score as a single
// non-negative integer in a plain-text file.
package score

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store reads and writes the high-score file. The file is touched at
// exactly two points in a program run: a load when a session starts and
// a conditional save when it ends.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored high score. A missing, unreadable, or
// malformed file counts as 0; loading never fails.
func (s *Store) Load() int {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Save overwrites the stored high score.
func (s *Store) Save(v int) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(v)), 0644); err != nil {
		return fmt.Errorf("failed to write high score file: %w", err)
	}
	return nil
}

// Record compares a finished run's score against the stored value and
// persists it only on strict improvement. It returns the resulting
// best score and whether it improved.
func (s *Store) Record(final int) (best int, improved bool, err error) {
	best = s.Load()
	if final <= best {
		return best, false, nil
	}
	if err := s.Save(final); err != nil {
		return final, true, err
	}
	return final, true, nil
}
