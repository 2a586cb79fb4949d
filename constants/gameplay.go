package constants

// Grid Geometry
const (
	// GridSize is the side length of the square playfield in cells
	GridSize = 20
)

// Player Mechanics
const (
	// PlayerSpeed is the distance the player covers per movement command
	PlayerSpeed = 2.0

	// StartingHealth is the number of enemy touches a run survives
	StartingHealth = 10
)

// Combat Mechanics
const (
	// ShootRange is the maximum kill distance for the shoot command.
	// Carried over verbatim; it exceeds the grid diagonal (~26.9), so the
	// out-of-range branch never triggers on the stock grid.
	ShootRange = 50.0

	// TouchRange is the distance at which an enemy damages the player
	TouchRange = 1.0

	// KillScore is the base score per kill, before the multiplier
	KillScore = 10
)

// Wave Mechanics
const (
	// BaseEnemyCount is the enemy count of the first wave
	BaseEnemyCount = 10

	// WaveGrowth is the extra enemies added per level
	WaveGrowth = 5

	// SpeedBase and SpeedPerLevel define enemy wander speed: base + perLevel*level
	SpeedBase     = 0.5
	SpeedPerLevel = 0.2
)
