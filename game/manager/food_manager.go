package manager

import (
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places food uniformly over the grid from its own seeded source.
// Cells under the snake are not excluded.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	seed uint64
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// GenerateFood samples a column and a row in [0, CellCount) and scales them
// to pixel coordinates.
func (fm *FoodManager) GenerateFood() types.Point {
	x := fm.rng.Intn(fm.grid.CellCount)
	y := fm.rng.Intn(fm.grid.CellCount)
	return types.Point{X: x, Y: y}.Scale(fm.grid.CellSize)
}

// Seed returns the seed the source was created with.
func (fm *FoodManager) Seed() uint64 {
	return fm.seed
}
