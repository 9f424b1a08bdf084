package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
)

// halfedge is one oriented side of a bisector on the beach line. It lives
// only during the sweep. Sentinels carry noEdge.
type halfedge struct {
	edge EdgeID
	side Orientation

	left, right *halfedge

	nextInQueue *halfedge
	queued      bool

	// set when the edge list unlinks the halfedge, so stale hash buckets
	// can be dropped
	deleted bool

	vertex *Vertex
	// vertex y plus the distance to the site that produced it: the sweep
	// position at which the circle event fires
	ystar float64
}

type halfedgeState int

const (
	activeInSweep halfedgeState = iota
	queuedOnly
	disposed
)

func newHalfedge(edge EdgeID, side Orientation) *halfedge {
	return &halfedge{edge: edge, side: side}
}

func newSentinel() *halfedge {
	return &halfedge{edge: noEdge}
}

func (h *halfedge) linked() bool {
	return h.left != nil || h.right != nil
}

func (h *halfedge) state() halfedgeState {
	switch {
	case h.linked():
		return activeInSweep
	case h.queued:
		return queuedOnly
	}
	return disposed
}

// dispose drops the halfedge's references once it is neither on the beach
// line nor queued. It reports whether anything was released.
func (h *halfedge) dispose() bool {
	if h.linked() || h.queued {
		return false
	}
	h.edge = noEdge
	h.vertex = nil
	return true
}

// release clears every reference regardless of state. Used after the sweep.
func (h *halfedge) release() {
	h.left, h.right = nil, nil
	h.nextInQueue = nil
	h.queued = false
	h.edge = noEdge
	h.vertex = nil
}

// isLeftOf reports whether the halfedge's part of the beach line lies left
// of p. e is the halfedge's edge.
func (h *halfedge) isLeftOf(e *Edge, p geom.Point) bool {
	topSite := e.siteCoords[Right]
	rightOfSite := p.X > topSite.X
	if rightOfSite && h.side == Left {
		return true
	}
	if !rightOfSite && h.side == Right {
		return false
	}

	var above bool
	if e.a == 1.0 {
		dyp := p.Y - topSite.Y
		dxp := p.X - topSite.X
		fast := false
		if (!rightOfSite && e.b < 0.0) || (rightOfSite && e.b >= 0.0) {
			above = dyp >= e.b*dxp
			fast = above
		} else {
			above = p.X+p.Y*e.b > e.c
			if e.b < 0.0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}
		if !fast {
			dxs := topSite.X - e.siteCoords[Left].X
			above = e.b*(dxp*dxp-dyp*dyp) < dxs*dyp*(1.0+2.0*dxp/dxs+e.b*e.b)
			if e.b < 0.0 {
				above = !above
			}
		}
	} else {
		// b == 1
		yl := e.c - e.a*p.X
		t1 := p.Y - yl
		t2 := p.X - topSite.X
		t3 := yl - topSite.Y
		above = t1*t1 > t2*t2+t3*t3
	}

	if h.side == Left {
		return above
	}
	return !above
}

func (h *halfedge) String() string {
	return fmt.Sprintf("Halfedge (edge: %d; side: %s; vertex: %v)", h.edge, h.side, h.vertex)
}
