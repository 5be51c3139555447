package types

// Point is a pixel coordinate on the playfield. Gameplay positions are always
// multiples of the grid's cell size.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k on both axes.
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// IsZero reports whether p is the zero vector.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Grid represents the playfield: a square of CellCount cells per side, each
// CellSize pixels wide.
type Grid struct {
	CellSize  int
	CellCount int
}

// Width of the playfield in pixels.
func (g Grid) Width() int {
	return g.CellSize * g.CellCount
}

// Height of the playfield in pixels.
func (g Grid) Height() int {
	return g.CellSize * g.CellCount
}

// Center returns the pixel center of the playfield.
func (g Grid) Center() Point {
	return Point{X: g.Width() / 2, Y: g.Height() / 2}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Width() && p.Y < g.Height()
}

// Game constants
const (
	CellSize      = 50
	CellCount     = 20
	MaxLength     = 256 // Snake body capacity
	StartLength   = 4   // Segments of a freshly spawned snake
	MovementDelay = 0.5 // Seconds accumulated before the snake advances one cell
	FrameRate     = 60  // Target frames per second
	PartPadding   = 10  // Gap drawn between snake segments
	WindowTitle   = "Snake"
)

// DefaultGrid is the 20x20 playfield of 50px cells.
var DefaultGrid = Grid{CellSize: CellSize, CellCount: CellCount}
