package voronoi

import "github.com/0x0FACED/go-voronoi/pkg/geom"

// edgeList is the beach line: halfedges ordered left to right between two
// sentinels, with a bucket hash over x to start neighbour searches close to
// the answer.
type edgeList struct {
	edgeOf func(EdgeID) *Edge

	xmin, deltax float64
	hash         []*halfedge

	leftEnd, rightEnd *halfedge
}

func newEdgeList(edgeOf func(EdgeID) *Edge, xmin, deltax float64, sqrtNSites int) *edgeList {
	l := &edgeList{
		edgeOf: edgeOf,
		xmin:   xmin,
		deltax: deltax,
		hash:   make([]*halfedge, 2*sqrtNSites),
	}

	l.leftEnd = newSentinel()
	l.rightEnd = newSentinel()
	l.leftEnd.right = l.rightEnd
	l.rightEnd.left = l.leftEnd
	l.hash[0] = l.leftEnd
	l.hash[len(l.hash)-1] = l.rightEnd

	return l
}

// insert links h right after lb.
func (l *edgeList) insert(lb, h *halfedge) {
	h.left = lb
	h.right = lb.right
	lb.right.left = h
	lb.right = h
}

// remove unlinks h and marks it deleted so hash buckets pointing at it are
// patched lazily.
func (l *edgeList) remove(h *halfedge) {
	h.left.right = h.right
	h.right.left = h.left
	h.deleted = true
	h.left, h.right = nil, nil
}

// leftNeighbor returns the halfedge immediately left of p.
func (l *edgeList) leftNeighbor(p geom.Point) *halfedge {
	bucket := l.bucket(p.X)

	h := l.getHash(bucket)
	if h == nil {
		for i := 1; ; i++ {
			if h = l.getHash(bucket - i); h != nil {
				break
			}
			if h = l.getHash(bucket + i); h != nil {
				break
			}
		}
	}

	if h == l.leftEnd || (h != l.rightEnd && h.isLeftOf(l.edgeOf(h.edge), p)) {
		for {
			h = h.right
			if h == l.rightEnd || !h.isLeftOf(l.edgeOf(h.edge), p) {
				break
			}
		}
		h = h.left
	} else {
		for {
			h = h.left
			if h == l.leftEnd || h.isLeftOf(l.edgeOf(h.edge), p) {
				break
			}
		}
	}

	if bucket > 0 && bucket < len(l.hash)-1 {
		l.hash[bucket] = h
	}
	return h
}

func (l *edgeList) bucket(x float64) int {
	if l.deltax <= 0 {
		return 0
	}
	b := (x - l.xmin) / l.deltax * float64(len(l.hash))
	switch {
	case b < 0:
		return 0
	case b >= float64(len(l.hash)):
		return len(l.hash) - 1
	}
	return int(b)
}

func (l *edgeList) getHash(b int) *halfedge {
	if b < 0 || b >= len(l.hash) {
		return nil
	}
	h := l.hash[b]
	if h != nil && h.deleted {
		l.hash[b] = nil
		return nil
	}
	return h
}
