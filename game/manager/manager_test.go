package manager

import (
	"testing"

	"snake-classic/game/entity"
	"snake-classic/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = types.DefaultGrid

func TestGenerateFood_InBoundsAndAligned(t *testing.T) {
	fm := NewFoodManager(grid, 42)

	for i := 0; i < 2000; i++ {
		food := fm.GenerateFood()
		require.True(t, grid.Contains(food), "food %v out of bounds", food)
		require.Zero(t, food.X%types.CellSize, "food %v not aligned", food)
		require.Zero(t, food.Y%types.CellSize, "food %v not aligned", food)
	}
}

func TestGenerateFood_CoversEveryColumnAndRow(t *testing.T) {
	fm := NewFoodManager(grid, 7)
	cols := map[int]bool{}
	rows := map[int]bool{}

	for i := 0; i < 5000; i++ {
		food := fm.GenerateFood()
		cols[food.X] = true
		rows[food.Y] = true
	}

	assert.Len(t, cols, types.CellCount)
	assert.Len(t, rows, types.CellCount)
}

func TestGenerateFood_SameSeedSameSequence(t *testing.T) {
	a := NewFoodManager(grid, 1234)
	b := NewFoodManager(grid, 1234)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.GenerateFood(), b.GenerateFood())
	}
	assert.Equal(t, uint64(1234), a.Seed())
}

// Food is not kept off the snake. This documents the gap rather than
// asserting a fix: on a tiny grid almost fully covered by the snake, food
// eventually lands on a segment.
func TestGenerateFood_MayLandOnSnake(t *testing.T) {
	tiny := types.Grid{CellSize: 10, CellCount: 2}
	fm := NewFoodManager(tiny, 99)
	snake := entity.NewSnakeFrom(tiny, types.Point{X: -1},
		types.Point{X: 10, Y: 0},
		types.Point{X: 0, Y: 0},
		types.Point{X: 0, Y: 10},
	)

	landed := false
	for i := 0; i < 100 && !landed; i++ {
		landed = snake.Occupies(fm.GenerateFood())
	}
	assert.True(t, landed)
}

func TestSelfCollisions(t *testing.T) {
	cm := NewCollisionManager(grid)

	clean := entity.NewSnake(grid)
	assert.Empty(t, cm.SelfCollisions(clean))

	head := types.Point{X: 300, Y: 300}
	bitten := entity.NewSnakeFrom(grid, types.Point{X: -1},
		head,
		types.Point{X: 250, Y: 300},
		types.Point{X: 250, Y: 350},
		head,
		types.Point{X: 300, Y: 400},
	)
	assert.Equal(t, []int{3}, cm.SelfCollisions(bitten))
}

func TestIsWallCollision(t *testing.T) {
	cm := NewCollisionManager(grid)
	w, h := grid.Width(), grid.Height()

	tests := []struct {
		pos  types.Point
		want bool
	}{
		{types.Point{X: -1, Y: 500}, true},
		{types.Point{X: w, Y: 500}, true},
		{types.Point{X: 500, Y: h}, true},
		{types.Point{X: 500, Y: -50}, true},
		{types.Point{X: 0, Y: 500}, true},
		{types.Point{X: 500, Y: 0}, true},
		{types.Point{X: 50, Y: 50}, false},
		{types.Point{X: w - 50, Y: h - 50}, false},
		{types.Point{X: 500, Y: 500}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cm.IsWallCollision(tt.pos), "pos %v", tt.pos)
	}
}

func TestCollisionTypeString(t *testing.T) {
	assert.Equal(t, "none", NoCollision.String())
	assert.Equal(t, "wall", WallCollision.String())
	assert.Equal(t, "self", SelfCollision.String())
}
