package engine

import (
	"math"

	"github.com/lixenwraith/dead-aim/constants"
)

// Command is one consumed player input.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	// CmdShoot shares the move-down key; a shoot tick also moves the
	// player down before firing.
	CmdShoot
	CmdQuit
)

// TickResult records what happened during one Advance call, for the
// render and audio layers to react to.
type TickResult struct {
	Quit     bool
	GameOver bool

	Shot   bool
	ShotID int

	Hit   bool
	HitID int

	LevelUp  bool
	WaveSize int
}

// Advance runs one tick: player movement, enemy wander, targeting,
// combat resolution, and wave progression, in that fixed order.
func (s *Session) Advance(cmd Command) TickResult {
	var res TickResult
	if s.Over() {
		res.GameOver = true
		return res
	}
	if cmd == CmdQuit {
		res.Quit = true
		return res
	}

	s.movePlayer(cmd)
	s.Enemies.Scatter(s.rng, s.EnemySpeed())

	if nearest, ok := s.Enemies.Nearest(s.PlayerX, s.PlayerY); ok {
		dx := s.PlayerX - s.Enemies[nearest].X
		dy := s.PlayerY - s.Enemies[nearest].Y
		dist := math.Sqrt(dx*dx + dy*dy)

		switch {
		case cmd == CmdShoot && dist <= constants.ShootRange:
			s.Enemies.Kill(nearest)
			s.Score += constants.KillScore * s.Multiplier
			s.Multiplier++
			res.Shot = true
			res.ShotID = s.Enemies[nearest].ID
		case dist <= constants.TouchRange:
			s.Enemies.Kill(nearest)
			s.Health--
			s.Multiplier = 1
			res.Hit = true
			res.HitID = s.Enemies[nearest].ID
		}
	}

	if s.Enemies.AllDead() {
		s.Level++
		s.Enemies = SpawnWave(s.rng, constants.BaseEnemyCount+s.Level*constants.WaveGrowth)
		res.LevelUp = true
		res.WaveSize = len(s.Enemies)
	}

	if s.Health <= 0 {
		res.GameOver = true
	}
	return res
}

// movePlayer applies a movement command, silently dropping any step
// that would leave the grid on that axis. CmdShoot moves down, same as
// CmdDown; the two share a key.
func (s *Session) movePlayer(cmd Command) {
	const limit = constants.GridSize - 1
	switch cmd {
	case CmdUp:
		if s.PlayerY-constants.PlayerSpeed >= 0 {
			s.PlayerY -= constants.PlayerSpeed
		}
	case CmdLeft:
		if s.PlayerX-constants.PlayerSpeed >= 0 {
			s.PlayerX -= constants.PlayerSpeed
		}
	case CmdDown, CmdShoot:
		if s.PlayerY+constants.PlayerSpeed <= limit {
			s.PlayerY += constants.PlayerSpeed
		}
	case CmdRight:
		if s.PlayerX+constants.PlayerSpeed <= limit {
			s.PlayerX += constants.PlayerSpeed
		}
	}
}
