package types

// Direction is a cardinal direction. The zero value is None and never moves.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

var directionLabels = map[Direction]string{
	Up:    "up",
	Right: "right",
	Down:  "down",
	Left:  "left",
}

// ParseDirection maps one of the labels "up", "down", "left", "right" to its
// Direction. Any other label returns None and false.
func ParseDirection(label string) (Direction, bool) {
	for d, l := range directionLabels {
		if l == label {
			return d, true
		}
	}
	return None, false
}

// Valid reports whether d is one of the four moving directions.
func (d Direction) Valid() bool {
	_, ok := directionLabels[d]
	return ok
}

func (d Direction) String() string {
	if l, ok := directionLabels[d]; ok {
		return l
	}
	return "none"
}

// ToPoint converte una Direction in un vettore di spostamento
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// IsOpposite reports whether the deltas of d and other cancel out.
// None is never opposite to anything.
func (d Direction) IsOpposite(other Direction) bool {
	if !d.Valid() || !other.Valid() {
		return false
	}
	a, b := d.ToPoint(), other.ToPoint()
	return a.X+b.X == 0 && a.Y+b.Y == 0
}
