package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/dead-aim/constants"
)

// Enemy is one wandering hostile on the grid. Dead enemies stay in the
// wave as tombstones until the next spawn replaces the whole collection.
type Enemy struct {
	ID    int
	X, Y  float64
	Alive bool
}

// Wave is the enemy collection for one level.
type Wave []Enemy

// SpawnWave creates a fresh wave of count enemies at uniformly random
// integer grid cells, ids contiguous from 0. Enemies may share a cell
// with each other or with the player.
func SpawnWave(rng *rand.Rand, count int) Wave {
	w := make(Wave, count)
	for i := range w {
		w[i] = Enemy{
			ID:    i,
			X:     float64(rng.IntN(constants.GridSize)),
			Y:     float64(rng.IntN(constants.GridSize)),
			Alive: true,
		}
	}
	return w
}

// Nearest returns the index of the living enemy closest to (px, py),
// comparing squared distances. The lowest index wins exact ties.
// ok is false when no enemy is alive.
func (w Wave) Nearest(px, py float64) (index int, ok bool) {
	index = -1
	minDist2 := 0.0
	for i := range w {
		if !w[i].Alive {
			continue
		}
		dx := px - w[i].X
		dy := py - w[i].Y
		dist2 := dx*dx + dy*dy
		if index == -1 || dist2 < minDist2 {
			minDist2 = dist2
			index = i
		}
	}
	return index, index != -1
}

// Scatter random-walks every living enemy, each axis independently
// perturbed by a uniform value in [-speed, speed). Positions are not
// clamped to the grid; wanderers may drift off the visible area.
func (w Wave) Scatter(rng *rand.Rand, speed float64) {
	if speed <= 0 {
		return
	}
	for i := range w {
		if !w[i].Alive {
			continue
		}
		w[i].X += rng.Float64()*2*speed - speed
		w[i].Y += rng.Float64()*2*speed - speed
	}
}

// Kill tombstones the enemy at index. Killing a dead enemy is a no-op.
func (w Wave) Kill(index int) {
	w[index].Alive = false
}

// AllDead reports whether the wave has been cleared.
func (w Wave) AllDead() bool {
	for i := range w {
		if w[i].Alive {
			return false
		}
	}
	return true
}

// AliveCount returns the number of living enemies.
func (w Wave) AliveCount() int {
	n := 0
	for i := range w {
		if w[i].Alive {
			n++
		}
	}
	return n
}
