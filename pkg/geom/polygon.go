package geom

import "math"

// Winding is the orientation of a closed vertex sequence.
type Winding int

const (
	WindingNone Winding = iota
	Clockwise
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return "none"
	}
}

// Polygon is a closed polygon given by its vertices; the closing edge from
// the last vertex back to the first is implicit.
type Polygon []Point

// Winding classifies the polygon by the sign of its shoelace area. A
// positive area is counter-clockwise.
func (p Polygon) Winding() Winding {
	a := p.signedDoubleArea()
	switch {
	case a < 0:
		return Clockwise
	case a > 0:
		return CounterClockwise
	default:
		return WindingNone
	}
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedDoubleArea() * 0.5)
}

// Reverse reverses the vertex order in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

func (p Polygon) signedDoubleArea() float64 {
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		cur, next := p[i], p[(i+1)%n]
		sum += cur.X*next.Y - next.X*cur.Y
	}
	return sum
}
