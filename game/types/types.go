package types

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Add returns p shifted by the delta d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Square returns a size x size grid.
func Square(size int) Grid {
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// RandomSource returns a float in [0,1). It is carried inside the game state so
// that a run can be replayed with a deterministic substitute.
type RandomSource func() float64

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

// Game constants
const (
	DefaultGridSize = 20
	MinGridSize     = 3 // room for the starting snake
	InitialLength   = 3
)
