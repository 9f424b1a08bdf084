package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
)

// EdgeID addresses an edge in the diagram's edge arena.
type EdgeID int

const noEdge EdgeID = -1

// Edge is the bisector of two sites, kept as the line ax + by = c with
// either a or b normalized to 1. The segment between the sites belongs to
// the Delaunay triangulation, the part of the line between the vertices to
// the Voronoi diagram.
type Edge struct {
	id      EdgeID
	a, b, c float64

	sites      [2]SiteID
	siteCoords [2]geom.Point

	// nil on a side means the edge runs to infinity there.
	vertices [2]*Vertex

	clipped [2]geom.Point
	visible bool
}

// newBisector builds the perpendicular bisector of s0 and s1 and registers
// it with both sites.
func newBisector(id EdgeID, s0, s1 *Site) *Edge {
	dx := s1.coord.X - s0.coord.X
	dy := s1.coord.Y - s0.coord.Y
	absdx, absdy := dx, dy
	if absdx < 0 {
		absdx = -absdx
	}
	if absdy < 0 {
		absdy = -absdy
	}

	e := &Edge{id: id}
	e.c = s0.coord.X*dx + s0.coord.Y*dy + (dx*dx+dy*dy)*0.5
	if absdx > absdy {
		e.a = 1.0
		e.b = dy / dx
		e.c /= dx
	} else {
		e.b = 1.0
		e.a = dx / dy
		e.c /= dy
	}

	e.sites = [2]SiteID{s0.id, s1.id}
	e.siteCoords = [2]geom.Point{s0.coord, s1.coord}
	s0.addEdge(id)
	s1.addEdge(id)

	return e
}

func (e *Edge) ID() EdgeID { return e.id }

// Line returns the coefficients of ax + by = c.
func (e *Edge) Line() (a, b, c float64) { return e.a, e.b, e.c }

func (e *Edge) Site(o Orientation) SiteID          { return e.sites[o] }
func (e *Edge) SiteCoord(o Orientation) geom.Point { return e.siteCoords[o] }
func (e *Edge) LeftSite() SiteID                   { return e.sites[Left] }
func (e *Edge) RightSite() SiteID                  { return e.sites[Right] }

// Vertex returns the vertex on the given side, nil if the edge is unbounded
// there.
func (e *Edge) Vertex(o Orientation) *Vertex { return e.vertices[o] }
func (e *Edge) LeftVertex() *Vertex          { return e.vertices[Left] }
func (e *Edge) RightVertex() *Vertex         { return e.vertices[Right] }

// setVertex records v as the end on side o. Each side is written once; a
// second write is refused and reported false.
func (e *Edge) setVertex(o Orientation, v *Vertex) bool {
	if e.vertices[o] != nil {
		return false
	}
	e.vertices[o] = v
	return true
}

// unbounded reports whether the edge has no vertex on either side, which
// only happens when every site is collinear.
func (e *Edge) unbounded() bool {
	return e.vertices[Left] == nil && e.vertices[Right] == nil
}

// IsPartOfConvexHull reports whether the edge is unbounded on a side, which
// makes its two sites neighbours on the convex hull.
func (e *Edge) IsPartOfConvexHull() bool {
	return e.vertices[Left] == nil || e.vertices[Right] == nil
}

// IsVisible reports whether any part of the edge lies inside the plot
// bounds.
func (e *Edge) IsVisible() bool { return e.visible }

// ClippedEnd returns the end of the visible part on the given side. It is
// only meaningful when IsVisible is true.
func (e *Edge) ClippedEnd(o Orientation) geom.Point { return e.clipped[o] }

// SitesDistance is the length of the dual Delaunay edge.
func (e *Edge) SitesDistance() float64 {
	return e.DelaunayLine().Length()
}

// DelaunayLine connects the two sites the edge bisects.
func (e *Edge) DelaunayLine() geom.Segment {
	return geom.Segment{P0: e.siteCoords[Left], P1: e.siteCoords[Right]}
}

// VoronoiEdge returns the visible part of the edge.
func (e *Edge) VoronoiEdge() (geom.Segment, bool) {
	if !e.visible {
		return geom.Segment{}, false
	}
	return geom.Segment{P0: e.clipped[Left], P1: e.clipped[Right]}, true
}

func (e *Edge) touches(id SiteID) bool {
	return e.sites[Left] == id || e.sites[Right] == id
}

func (e *Edge) String() string {
	return fmt.Sprintf("Edge %d [sites %d, %d; a=%g b=%g c=%g]", e.id, e.sites[Left], e.sites[Right], e.a, e.b, e.c)
}

// clipVertices computes the visible part of the edge inside bounds. Steep
// edges (a == 1) are walked along y, the others along x; an existing vertex
// replaces the bound on its side. An edge outside the bounds stays
// invisible.
func (e *Edge) clipVertices(bounds geom.Rect) {
	xmin, ymin := bounds.MinX(), bounds.MinY()
	xmax, ymax := bounds.MaxX(), bounds.MaxY()

	var vertex0, vertex1 *Vertex
	if e.a == 1.0 && e.b >= 0.0 {
		vertex0, vertex1 = e.vertices[Right], e.vertices[Left]
	} else {
		vertex0, vertex1 = e.vertices[Left], e.vertices[Right]
	}

	var x0, x1, y0, y1 float64
	if e.a == 1.0 {
		y0 = ymin
		if vertex0 != nil && vertex0.Y() > ymin {
			y0 = vertex0.Y()
		}
		if y0 > ymax {
			return
		}
		x0 = e.c - e.b*y0

		y1 = ymax
		if vertex1 != nil && vertex1.Y() < ymax {
			y1 = vertex1.Y()
		}
		if y1 < ymin {
			return
		}
		x1 = e.c - e.b*y1

		if (x0 > xmax && x1 > xmax) || (x0 < xmin && x1 < xmin) {
			return
		}

		// b == 0 keeps x constant, so only sloped edges get here.
		if x0 > xmax {
			x0 = xmax
			y0 = (e.c - x0) / e.b
		} else if x0 < xmin {
			x0 = xmin
			y0 = (e.c - x0) / e.b
		}

		if x1 > xmax {
			x1 = xmax
			y1 = (e.c - x1) / e.b
		} else if x1 < xmin {
			x1 = xmin
			y1 = (e.c - x1) / e.b
		}
	} else {
		x0 = xmin
		if vertex0 != nil && vertex0.X() > xmin {
			x0 = vertex0.X()
		}
		if x0 > xmax {
			return
		}
		y0 = e.c - e.a*x0

		x1 = xmax
		if vertex1 != nil && vertex1.X() < xmax {
			x1 = vertex1.X()
		}
		if x1 < xmin {
			return
		}
		y1 = e.c - e.a*x1

		if (y0 > ymax && y1 > ymax) || (y0 < ymin && y1 < ymin) {
			return
		}

		if y0 > ymax {
			y0 = ymax
			x0 = (e.c - y0) / e.a
		} else if y0 < ymin {
			y0 = ymin
			x0 = (e.c - y0) / e.a
		}

		if y1 > ymax {
			y1 = ymax
			x1 = (e.c - y1) / e.a
		} else if y1 < ymin {
			y1 = ymin
			x1 = (e.c - y1) / e.a
		}
	}

	e.visible = true
	if vertex0 == e.vertices[Left] {
		e.clipped[Left] = geom.Pt(x0, y0)
		e.clipped[Right] = geom.Pt(x1, y1)
	} else {
		e.clipped[Right] = geom.Pt(x0, y0)
		e.clipped[Left] = geom.Pt(x1, y1)
	}
}
