package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
)

// parallelEpsilon is the determinant magnitude below which two bisectors
// are treated as parallel.
const parallelEpsilon = 1e-10

// Vertex is a Voronoi vertex: the meeting point of bisectors and the
// circumcenter of a Delaunay triangle. Edges ending at the same vertex share
// the pointer.
type Vertex struct {
	Coord geom.Point
}

// VertexAtInfinity marks a vertex with NaN coordinates. It is never stored
// on an edge.
var VertexAtInfinity = &Vertex{Coord: geom.Pt(math.NaN(), math.NaN())}

func newVertex(x, y float64) *Vertex {
	p := geom.Pt(x, y)
	if geom.IsNaN(p) {
		return VertexAtInfinity
	}
	return &Vertex{Coord: p}
}

func (v *Vertex) X() float64 { return v.Coord.X }
func (v *Vertex) Y() float64 { return v.Coord.Y }

// intersect returns the point where the bisectors of two adjacent halfedges
// cross, or nil when they have no valid crossing: a sentinel is involved,
// both edges separate the same right site, the bisectors are parallel, or
// the point lies on the side of the lower edge its halfedge does not cover.
func intersect(edgeOf func(EdgeID) *Edge, h0, h1 *halfedge) *Vertex {
	if h0.edge == noEdge || h1.edge == noEdge {
		return nil
	}
	e0, e1 := edgeOf(h0.edge), edgeOf(h1.edge)
	if e0.sites[Right] == e1.sites[Right] {
		return nil
	}

	determinant := e0.a*e1.b - e0.b*e1.a
	if -parallelEpsilon < determinant && determinant < parallelEpsilon {
		return nil
	}

	x := (e0.c*e1.b - e1.c*e0.b) / determinant
	y := (e1.c*e0.a - e0.c*e1.a) / determinant

	h, e := h1, e1
	if compareByYThenX(e0.siteCoords[Right], e1.siteCoords[Right]) < 0 {
		h, e = h0, e0
	}
	rightOfSite := x >= e.siteCoords[Right].X
	if (rightOfSite && h.side == Left) || (!rightOfSite && h.side == Right) {
		return nil
	}

	return newVertex(x, y)
}
