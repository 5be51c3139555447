package manager

import (
	"snake-classic/game/entity"
	"snake-classic/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SelfCollisions returns the indices of every segment past the head that
// shares the head's cell.
func (cm *CollisionManager) SelfCollisions(snake *entity.Snake) []int {
	head := snake.GetHead()
	var hits []int
	for i := 1; i < snake.Len(); i++ {
		if snake.Segment(i) == head {
			hits = append(hits, i)
		}
	}
	return hits
}

// IsWallCollision reports whether pos touches or leaves the playfield edge.
// Row and column zero count as outside.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return pos.X <= 0 || pos.Y <= 0 || pos.X >= cm.grid.Width() || pos.Y >= cm.grid.Height()
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
