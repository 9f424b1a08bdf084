package voronoi

import (
	"math"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"go.uber.org/zap"
)

// Stats counts what one sweep did.
type Stats struct {
	SiteEvents   int
	CircleEvents int
	// candidate vertices predicted during the sweep, including the ones
	// later superseded
	Candidates int
}

// sweep holds the working state of one run of Fortune's algorithm.
type sweep struct {
	sites  *siteList
	edges  []*Edge
	log    *logger.ZapLogger
	stats  Stats
	debug  bool
	bottom *Site

	edgeList  *edgeList
	queue     *halfedgeQueue
	halfedges []*halfedge
}

func (s *sweep) edgeOf(id EdgeID) *Edge {
	return s.edges[id]
}

func (s *sweep) newEdge(s0, s1 *Site) *Edge {
	e := newBisector(EdgeID(len(s.edges)), s0, s1)
	s.edges = append(s.edges, e)
	return e
}

func (s *sweep) newHalfedge(e *Edge, side Orientation) *halfedge {
	h := newHalfedge(e.id, side)
	s.halfedges = append(s.halfedges, h)
	return h
}

// leftRegion and rightRegion return the site on either side of a halfedge;
// sentinels border the bottom-most site.
func (s *sweep) leftRegion(h *halfedge) *Site {
	if h.edge == noEdge {
		return s.bottom
	}
	return s.sites.sites[s.edgeOf(h.edge).sites[h.side]]
}

func (s *sweep) rightRegion(h *halfedge) *Site {
	if h.edge == noEdge {
		return s.bottom
	}
	return s.sites.sites[s.edgeOf(h.edge).sites[h.side.Other()]]
}

// predict queues h for the circle event at v, replacing any older
// prediction. origin is the site whose distance gives the circle radius.
func (s *sweep) predict(h *halfedge, v *Vertex, origin *Site) {
	s.stats.Candidates++
	s.queue.remove(h)
	h.vertex = v
	h.ystar = v.Y() + geom.Distance(origin.coord, v.Coord)
	s.queue.insert(h)
	if s.debug {
		s.log.Debug("[sweep] Circle event queued", zap.Float64("x", v.X()), zap.Float64("y", v.Y()), zap.Float64("ystar", h.ystar))
	}
}

// run executes the sweep and returns the finished edges. The sites must
// have been sorted by a bounds query.
func (s *sweep) run(dataBounds geom.Rect) ([]*Edge, error) {
	s.debug = s.log.DebugEnabled()

	sqrtNSites := int(math.Sqrt(float64(s.sites.len() + 4)))
	s.queue = newHalfedgeQueue(dataBounds.MinY(), dataBounds.Height(), sqrtNSites)
	s.edgeList = newEdgeList(s.edgeOf, dataBounds.MinX(), dataBounds.Width(), sqrtNSites)
	s.halfedges = append(s.halfedges, s.edgeList.leftEnd, s.edgeList.rightEnd)

	s.log.Info("[sweep] Fortune sweep started", zap.Int("sites", s.sites.len()), zap.Int("buckets", sqrtNSites))

	var err error
	if s.bottom, err = s.sites.next(); err != nil {
		return nil, err
	}
	newSite, err := s.sites.next()
	if err != nil {
		return nil, err
	}

	var newIntStar geom.Point
	for {
		if !s.queue.empty() {
			newIntStar = s.queue.min()
		}

		if newSite != nil && (s.queue.empty() || compareByYThenX(newSite.coord, newIntStar) < 0) {
			s.siteEvent(newSite)
			if newSite, err = s.sites.next(); err != nil {
				return nil, err
			}
		} else if !s.queue.empty() {
			s.circleEvent()
		} else {
			break
		}
	}

	s.queue.release()
	for _, h := range s.halfedges {
		h.release()
	}
	s.halfedges = nil

	s.log.Info("[sweep] Fortune sweep finished",
		zap.Int("edges", len(s.edges)),
		zap.Int("siteEvents", s.stats.SiteEvents),
		zap.Int("circleEvents", s.stats.CircleEvents))

	return s.edges, nil
}

// siteEvent splits the arc above newSite: a new bisector with its two
// halfedges goes in right of the arc's left boundary.
func (s *sweep) siteEvent(newSite *Site) {
	s.stats.SiteEvents++

	lbnd := s.edgeList.leftNeighbor(newSite.coord)
	rbnd := lbnd.right
	// same as leftRegion(rbnd)
	bottomSite := s.rightRegion(lbnd)

	if s.debug {
		s.log.Debug("[sweep-site] Site event", zap.Stringer("site", newSite), zap.Stringer("region", bottomSite))
	}

	edge := s.newEdge(bottomSite, newSite)

	bisector := s.newHalfedge(edge, Left)
	s.edgeList.insert(lbnd, bisector)
	if v := intersect(s.edgeOf, lbnd, bisector); v != nil {
		s.predict(lbnd, v, newSite)
	}

	lbnd = bisector
	bisector = s.newHalfedge(edge, Right)
	s.edgeList.insert(lbnd, bisector)
	if v := intersect(s.edgeOf, bisector, rbnd); v != nil {
		s.predict(bisector, v, newSite)
	}
}

func (s *sweep) setVertex(e *Edge, o Orientation, v *Vertex) {
	if !e.setVertex(o, v) {
		s.log.Warn("[sweep-circle] Edge vertex already set", zap.Int("edge", int(e.id)),
			zap.Stringer("side", o), zap.Float64("x", v.X()), zap.Float64("y", v.Y()))
	}
}

// circleEvent finalizes the vertex of the earliest queued halfedge. The arc
// between it and its right neighbour disappears and a bisector of the two
// outer sites takes their place.
func (s *sweep) circleEvent() {
	s.stats.CircleEvents++

	lbnd := s.queue.extractMin()
	llbnd := lbnd.left
	rbnd := lbnd.right
	rrbnd := rbnd.right
	bottomSite := s.leftRegion(lbnd)
	topSite := s.rightRegion(rbnd)

	v := lbnd.vertex
	if s.debug {
		s.log.Debug("[sweep-circle] Circle event", zap.Float64("x", v.X()), zap.Float64("y", v.Y()),
			zap.Stringer("bottom", bottomSite), zap.Stringer("top", topSite))
	}

	s.setVertex(s.edgeOf(lbnd.edge), lbnd.side, v)
	s.setVertex(s.edgeOf(rbnd.edge), rbnd.side, v)
	s.edgeList.remove(lbnd)
	s.queue.remove(rbnd)
	s.edgeList.remove(rbnd)

	leftRight := Left
	if bottomSite.coord.Y > topSite.coord.Y {
		bottomSite, topSite = topSite, bottomSite
		leftRight = Right
	}

	edge := s.newEdge(bottomSite, topSite)
	bisector := s.newHalfedge(edge, leftRight)
	s.edgeList.insert(llbnd, bisector)
	s.setVertex(edge, leftRight.Other(), v)

	if nv := intersect(s.edgeOf, llbnd, bisector); nv != nil {
		s.predict(llbnd, nv, bottomSite)
	}
	if nv := intersect(s.edgeOf, bisector, rrbnd); nv != nil {
		s.predict(bisector, nv, bottomSite)
	}
}
