package entity

import (
	"testing"

	"snake-classic/game/types"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = types.DefaultGrid

func TestNewSnake_StartsCenteredWithFourSegments(t *testing.T) {
	s := NewSnake(grid)

	require.Equal(t, types.StartLength, s.Len())
	assert.Equal(t, types.Point{X: -1, Y: 0}, s.Direction)
	assert.Equal(t, grid.Center(), s.GetHead())

	// Collinear along X, one cell apart, trailing towards smaller X.
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Segment(i-1), s.Segment(i)
		assert.Equal(t, prev.Y, cur.Y, "segment %d off the row", i)
		assert.Equal(t, types.CellSize, prev.X-cur.X, "segment %d spacing", i)
	}
}

func TestGrow_FromEmptyIsMonotonicAndCollinear(t *testing.T) {
	s := NewSnakeFrom(grid, types.Point{X: 0, Y: 1})

	for n := 1; n <= 30; n++ {
		s.Grow()
		require.Equal(t, n, s.Len())
	}

	// The first cell is synthesized from the zero vector.
	assert.Equal(t, types.Point{X: 0, Y: -types.CellSize * 30}, s.GetHead())
	for i := 1; i < s.Len(); i++ {
		prev, cur := s.Segment(i-1), s.Segment(i)
		assert.Equal(t, prev.X, cur.X)
		assert.Equal(t, types.CellSize, cur.Y-prev.Y)
	}
}

func TestGrow_ShiftsPreviousHeadToSecondSlot(t *testing.T) {
	s := NewSnake(grid)
	oldHead := s.GetHead()

	s.Grow()

	assert.Equal(t, oldHead, s.Segment(1))
	assert.Equal(t, oldHead.Add(types.Point{X: types.CellSize}), s.GetHead())
}

func TestTryGrow_CapacityExceeded(t *testing.T) {
	s := NewSnakeFrom(grid, types.Point{X: -1, Y: 0})
	for i := 0; i < types.MaxLength; i++ {
		require.NoError(t, s.TryGrow())
	}

	err := s.TryGrow()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, types.MaxLength, s.Len())

	assert.Panics(t, func() { s.Grow() })
}

func TestMove_PreservesLength(t *testing.T) {
	s := NewSnake(grid)
	for i := 0; i < 5; i++ {
		s.Move()
		assert.Equal(t, types.StartLength, s.Len())
	}
}

func TestMove_SubtractsDirectionFromHead(t *testing.T) {
	s := NewSnake(grid)
	before := s.Body()

	s.Move()

	after := s.Body()
	assert.Equal(t, types.Point{X: before[0].X + types.CellSize, Y: before[0].Y}, after[0])
	// Every other segment takes its predecessor's old place.
	for i := 1; i < len(after); i++ {
		assert.Equal(t, before[i-1], after[i])
	}
}

func TestMove_Vertical(t *testing.T) {
	s := NewSnakeFrom(grid, types.Point{X: 0, Y: 1},
		types.Point{X: 100, Y: 100},
		types.Point{X: 100, Y: 150},
	)

	s.Move()

	assert.Equal(t, []types.Point{{X: 100, Y: 50}, {X: 100, Y: 100}}, s.Body())
}

func TestSteer_Lockout(t *testing.T) {
	tests := []struct {
		name     string
		current  types.Point
		turn     types.Point
		accepted bool
		want     types.Point
	}{
		{"reverse horizontal", types.Point{X: 1}, types.Point{X: -1}, false, types.Point{X: 1}},
		{"same horizontal", types.Point{X: 1}, types.Point{X: 1}, false, types.Point{X: 1}},
		{"turn off horizontal", types.Point{X: 1}, types.Point{Y: 1}, true, types.Point{Y: 1}},
		{"reverse vertical", types.Point{Y: -1}, types.Point{Y: 1}, false, types.Point{Y: -1}},
		{"turn off vertical", types.Point{Y: -1}, types.Point{X: -1}, true, types.Point{X: -1}},
		{"zero input", types.Point{Y: -1}, types.Point{}, false, types.Point{Y: -1}},
		{"diagonal input", types.Point{Y: -1}, types.Point{X: 1, Y: 1}, false, types.Point{Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnakeFrom(grid, tt.current, grid.Center())
			assert.Equal(t, tt.accepted, s.Steer(tt.turn))
			assert.Equal(t, tt.want, s.Direction)
		})
	}
}

func TestBody_ReturnsCopy(t *testing.T) {
	s := NewSnake(grid)
	body := s.Body()
	body[0] = types.Point{}

	assert.Equal(t, grid.Center(), s.GetHead())
	assert.True(t, s.Occupies(grid.Center()))
	assert.False(t, s.Occupies(types.Point{}))
}
