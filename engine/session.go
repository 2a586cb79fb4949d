package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/dead-aim/constants"
)

// Session is the complete state of one run: player, scoring, and the
// current wave. All mutation happens through Advance, one tick per
// consumed command.
type Session struct {
	PlayerX, PlayerY float64

	Health     int
	Score      int
	Level      int
	Multiplier int

	Enemies Wave

	rng *rand.Rand
}

// NewSession starts a run: player centered, full health, level 1,
// multiplier 1, and the first wave spawned.
func NewSession(rng *rand.Rand) *Session {
	return &Session{
		PlayerX:    constants.GridSize / 2,
		PlayerY:    constants.GridSize / 2,
		Health:     constants.StartingHealth,
		Level:      1,
		Multiplier: 1,
		Enemies:    SpawnWave(rng, constants.BaseEnemyCount),
		rng:        rng,
	}
}

// Over reports whether the run has ended.
func (s *Session) Over() bool {
	return s.Health <= 0
}

// EnemySpeed is the wander speed for the current level.
func (s *Session) EnemySpeed() float64 {
	return constants.SpeedBase + constants.SpeedPerLevel*float64(s.Level)
}

// NextWaveSize is the enemy count the next level spawns.
func (s *Session) NextWaveSize() int {
	return constants.BaseEnemyCount + (s.Level+1)*constants.WaveGrowth
}
