package voronoi

import "github.com/0x0FACED/go-voronoi/pkg/geom"

// compareByYThenX orders points by y, then x. It is the sweep order for
// sites and circle events.
func compareByYThenX(p, q geom.Point) int {
	switch {
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	}
	return 0
}
