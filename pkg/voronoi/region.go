package voronoi

import "github.com/0x0FACED/go-voronoi/pkg/geom"

// closeEpsilon is the distance under which two stitched points coincide.
const closeEpsilon = 0.005

func closeEnough(p, q geom.Point) bool {
	return geom.Distance(p, q) < closeEpsilon
}

// Bound sides a point can lie on. Top is the minimum y.
const (
	boundTop = 1 << iota
	boundBottom
	boundLeft
	boundRight
)

func boundsCheck(p geom.Point, bounds geom.Rect) int {
	var value int
	if p.X == bounds.MinX() {
		value |= boundLeft
	}
	if p.X == bounds.MaxX() {
		value |= boundRight
	}
	if p.Y == bounds.MinY() {
		value |= boundTop
	}
	if p.Y == bounds.MaxY() {
		value |= boundBottom
	}
	return value
}

// clipToBounds walks the site's ordered edges and builds its cell polygon
// inside bounds. Gaps between visible edges run along the bounds and get
// corner points where needed.
func (s *Site) clipToBounds(edgeOf func(EdgeID) *Edge, bounds geom.Rect) geom.Polygon {
	n := len(s.edges)
	i := 0
	for i < n && !edgeOf(s.edges[i]).IsVisible() {
		i++
	}
	if i == n {
		return nil
	}

	edge := edgeOf(s.edges[i])
	orientation := s.orientations[i]
	points := []geom.Point{edge.clipped[orientation], edge.clipped[orientation.Other()]}

	prev, prevOrientation := edge, orientation
	for j := i + 1; j < n; j++ {
		next := edgeOf(s.edges[j])
		if !next.IsVisible() {
			continue
		}
		if prev.unbounded() && next.unbounded() {
			// strip between parallel bisectors, the reorder cannot tell
			// their ends apart
			s.orientations[j] = walkAgainst(prev, prevOrientation, next)
		}
		points = s.connect(edgeOf, points, j, bounds, false)
		prev, prevOrientation = next, s.orientations[j]
	}
	// close up the polygon, adding corners if needed
	points = s.connect(edgeOf, points, i, bounds, true)

	return dropCoincident(points)
}

// walkAgainst returns the orientation that walks e opposite to prev walked
// from prevOrientation. Both edges are parallel.
func walkAgainst(prev *Edge, prevOrientation Orientation, e *Edge) Orientation {
	along := prev.clipped[prevOrientation.Other()].Sub(prev.clipped[prevOrientation])
	if e.clipped[Right].Sub(e.clipped[Left]).Dot(along) > 0 {
		return Right
	}
	return Left
}

// connect appends edge j to the running boundary. When its start does not
// meet the last point both lie on the bounds; points on different sides are
// bridged with one or two corners.
//
// The two corner bridge between opposite sides picks the side closer to
// the two points, which is only right when the cell covers less than half
// of the bounds.
func (s *Site) connect(edgeOf func(EdgeID) *Edge, points []geom.Point, j int, bounds geom.Rect, closingUp bool) []geom.Point {
	rightPoint := points[len(points)-1]
	newEdge := edgeOf(s.edges[j])
	newOrientation := s.orientations[j]
	newPoint := newEdge.clipped[newOrientation]

	if !closeEnough(rightPoint, newPoint) {
		if boundsCheck(rightPoint, bounds)&boundsCheck(newPoint, bounds) == 0 {
			// not on a common side of the bounds
			points = append(points, bridgeCorners(rightPoint, newPoint, bounds)...)
		}
		if closingUp {
			return points
		}
		points = append(points, newPoint)
	}
	if closingUp {
		// the first edge's far end is points[1] already
		return points
	}

	newRightPoint := newEdge.clipped[newOrientation.Other()]
	if !closeEnough(points[0], newRightPoint) {
		points = append(points, newRightPoint)
	}
	return points
}

func bridgeCorners(rightPoint, newPoint geom.Point, bounds geom.Rect) []geom.Point {
	left, right := bounds.MinX(), bounds.MaxX()
	top, bottom := bounds.MinY(), bounds.MaxY()

	rightCheck := boundsCheck(rightPoint, bounds)
	newCheck := boundsCheck(newPoint, bounds)

	switch {
	case rightCheck&boundRight != 0:
		switch {
		case newCheck&boundBottom != 0:
			return []geom.Point{geom.Pt(right, bottom)}
		case newCheck&boundTop != 0:
			return []geom.Point{geom.Pt(right, top)}
		case newCheck&boundLeft != 0:
			py := bottom
			if rightPoint.Y-top+newPoint.Y-top < bounds.Height() {
				py = top
			}
			return []geom.Point{geom.Pt(right, py), geom.Pt(left, py)}
		}
	case rightCheck&boundLeft != 0:
		switch {
		case newCheck&boundBottom != 0:
			return []geom.Point{geom.Pt(left, bottom)}
		case newCheck&boundTop != 0:
			return []geom.Point{geom.Pt(left, top)}
		case newCheck&boundRight != 0:
			py := bottom
			if rightPoint.Y-top+newPoint.Y-top < bounds.Height() {
				py = top
			}
			return []geom.Point{geom.Pt(left, py), geom.Pt(right, py)}
		}
	case rightCheck&boundTop != 0:
		switch {
		case newCheck&boundRight != 0:
			return []geom.Point{geom.Pt(right, top)}
		case newCheck&boundLeft != 0:
			return []geom.Point{geom.Pt(left, top)}
		case newCheck&boundBottom != 0:
			px := right
			if rightPoint.X-left+newPoint.X-left < bounds.Width() {
				px = left
			}
			return []geom.Point{geom.Pt(px, top), geom.Pt(px, bottom)}
		}
	case rightCheck&boundBottom != 0:
		switch {
		case newCheck&boundRight != 0:
			return []geom.Point{geom.Pt(right, bottom)}
		case newCheck&boundLeft != 0:
			return []geom.Point{geom.Pt(left, bottom)}
		case newCheck&boundTop != 0:
			px := right
			if rightPoint.X-left+newPoint.X-left < bounds.Width() {
				px = left
			}
			return []geom.Point{geom.Pt(px, bottom), geom.Pt(px, top)}
		}
	}
	return nil
}

// dropCoincident collapses runs of points closer than closeEpsilon,
// including across the closing edge. Zero length edges between cocircular
// sites leave such runs behind.
func dropCoincident(points []geom.Point) geom.Polygon {
	out := make(geom.Polygon, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && closeEnough(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && closeEnough(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
