package entity

import (
	"snake-classic/game/types"

	"github.com/pkg/errors"
)

// ErrCapacityExceeded is returned by TryGrow when the body is already full.
var ErrCapacityExceeded = errors.New("snake capacity exceeded")

// Snake is a head-first run of segments stored in a fixed-size array.
//
// Direction is the vector subtracted (scaled by the cell size) from the head
// on every step, so a snake with Direction (-1, 0) travels towards larger X.
type Snake struct {
	body      [types.MaxLength]types.Point
	length    int
	cellSize  int
	Direction types.Point
}

// NewSnake builds the starting snake: direction (-1, 0), grown from a single
// seed cell to StartLength segments with the head on the grid center.
func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		cellSize:  grid.CellSize,
		Direction: types.Point{X: -1, Y: 0},
	}

	// Growth places each new head one step against Direction, so the seed
	// sits StartLength-1 steps back along Direction from the center.
	seed := grid.Center().Add(s.Direction.Scale(grid.CellSize * (types.StartLength - 1)))
	s.body[0] = seed
	s.length = 1
	for s.length < types.StartLength {
		s.Grow()
	}
	return s
}

// NewSnakeFrom builds a snake with the given body (head first) and direction.
// Segments beyond MaxLength are dropped.
func NewSnakeFrom(grid types.Grid, direction types.Point, body ...types.Point) *Snake {
	s := &Snake{
		cellSize:  grid.CellSize,
		Direction: direction,
	}
	s.length = copy(s.body[:], body)
	return s
}

// Grow adds one segment, panicking when the snake is already at capacity.
func (s *Snake) Grow() {
	if err := s.TryGrow(); err != nil {
		panic(err)
	}
}

// TryGrow synthesizes a new head one step against Direction from the current
// head and shifts every segment one slot towards the tail.
func (s *Snake) TryGrow() error {
	if s.length >= types.MaxLength {
		return errors.Wrapf(ErrCapacityExceeded, "grow at length %d", s.length)
	}

	var first types.Point
	if s.length > 0 {
		first = s.body[0]
	}
	newCell := first.Sub(s.Direction.Scale(s.cellSize))

	for i := s.length; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = newCell
	s.length++
	return nil
}

// Move advances the snake by one cell. The whole body is shifted one slot
// towards the tail (the last segment falls off), then the head slot is
// overwritten with the previous head minus Direction.
func (s *Snake) Move() {
	if s.length == 0 {
		return
	}
	prev := s.body[0]
	for i := s.length - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = prev.Sub(s.Direction.Scale(s.cellSize))
}

// Steer applies a turn. Only turns onto the other axis are accepted, which
// rules out reversing into the neck. Reports whether Direction changed.
func (s *Snake) Steer(dir types.Point) bool {
	if dir.IsZero() || (dir.X != 0 && dir.Y != 0) {
		return false
	}
	if s.Direction.Y != 0 && dir.X != 0 {
		s.Direction = types.Point{X: dir.X, Y: 0}
		return true
	}
	if s.Direction.X != 0 && dir.Y != 0 {
		s.Direction = types.Point{X: 0, Y: dir.Y}
		return true
	}
	return false
}

// GetHead returns body[0].
func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

// Len returns the number of live segments.
func (s *Snake) Len() int {
	return s.length
}

// Segment returns body[i]; i must be below Len.
func (s *Snake) Segment(i int) types.Point {
	return s.body[i]
}

// Body returns a copy of the live segments, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, s.length)
	copy(body, s.body[:s.length])
	return body
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for i := 0; i < s.length; i++ {
		if s.body[i] == p {
			return true
		}
	}
	return false
}
