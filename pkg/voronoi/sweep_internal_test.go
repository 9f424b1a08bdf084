package voronoi

import (
	"math"
	"testing"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteListNextBeforeSort(t *testing.T) {
	var l siteList
	l.push(newSite(geom.Pt(1, 1), 0, 1))

	s, err := l.next()
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSiteListBounds(t *testing.T) {
	var l siteList
	assert.Equal(t, geom.RectFromMinSize(0, 0, 0, 0), l.bounds())

	l.push(newSite(geom.Pt(4, 9), 0, 1))
	l.push(newSite(geom.Pt(7, 2), 1, 1))
	l.push(newSite(geom.Pt(-1, 5), 2, 1))

	b := l.bounds()
	assert.Equal(t, -1.0, b.MinX())
	assert.Equal(t, 7.0, b.MaxX())
	assert.Equal(t, 2.0, b.MinY())
	assert.Equal(t, 9.0, b.MaxY())

	var order []geom.Point
	for {
		s, err := l.next()
		require.NoError(t, err)
		if s == nil {
			break
		}
		assert.Equal(t, SiteID(len(order)), s.ID())
		order = append(order, s.Coord())
	}
	assert.Equal(t, []geom.Point{geom.Pt(7, 2), geom.Pt(-1, 5), geom.Pt(4, 9)}, order)
}

func TestBisectorNormalization(t *testing.T) {
	s0 := newSite(geom.Pt(0, 0), 0, 1)
	s1 := newSite(geom.Pt(4, 2), 1, 1)
	s2 := newSite(geom.Pt(1, 4), 2, 1)

	flat := newBisector(0, s0, s1)
	a, b, c := flat.Line()
	assert.Equal(t, 1.0, a)
	assert.InDelta(t, 0.5, b, 1e-12)
	assert.InDelta(t, 2.5, c, 1e-12)

	steep := newBisector(1, s0, s2)
	a, b, c = steep.Line()
	assert.Equal(t, 1.0, b)
	assert.InDelta(t, 0.25, a, 1e-12)
	assert.InDelta(t, 2.125, c, 1e-12)

	assert.Equal(t, []EdgeID{0, 1}, s0.EdgeIDs())
	assert.Equal(t, []EdgeID{0}, s1.EdgeIDs())
	assert.True(t, flat.IsPartOfConvexHull())
	assert.InDelta(t, geom.Distance(s0.Coord(), s1.Coord()), flat.SitesDistance(), 1e-12)
}

func TestClipVertices(t *testing.T) {
	bounds := geom.RectFromMinSize(0, 0, 10, 10)
	s0 := newSite(geom.Pt(0, 5), 0, 1)
	s1 := newSite(geom.Pt(10, 5), 1, 1)

	t.Run("unbounded", func(t *testing.T) {
		e := newBisector(0, s0, s1)
		e.clipVertices(bounds)
		require.True(t, e.IsVisible())
		seg, ok := e.VoronoiEdge()
		require.True(t, ok)
		assert.ElementsMatch(t, []geom.Point{geom.Pt(5, 0), geom.Pt(5, 10)}, []geom.Point{seg.P0, seg.P1})
	})

	t.Run("vertex inside", func(t *testing.T) {
		e := newBisector(1, s0, s1)
		e.setVertex(Left, newVertex(5, 4))
		e.clipVertices(bounds)
		require.True(t, e.IsVisible())
		assert.Equal(t, geom.Pt(5, 4), e.ClippedEnd(Left))
		assert.Equal(t, geom.Pt(5, 0), e.ClippedEnd(Right))
	})

	t.Run("outside", func(t *testing.T) {
		e := newBisector(2, s0, s1)
		e.setVertex(Right, newVertex(5, 20))
		e.clipVertices(bounds)
		assert.False(t, e.IsVisible())
		_, ok := e.VoronoiEdge()
		assert.False(t, ok)
	})
}

func TestSetVertexOnce(t *testing.T) {
	e := newBisector(0, newSite(geom.Pt(0, 5), 0, 1), newSite(geom.Pt(10, 5), 1, 1))
	first, second := newVertex(5, 2), newVertex(5, 8)

	assert.True(t, e.setVertex(Left, first))
	assert.False(t, e.setVertex(Left, second))
	assert.Same(t, first, e.LeftVertex())
	assert.Nil(t, e.RightVertex())

	log := logger.New()
	s := &sweep{log: log}
	s.setVertex(e, Right, second)
	assert.Same(t, second, e.RightVertex())
	assert.NotContains(t, log.String(), "already set")

	s.setVertex(e, Right, first)
	assert.Same(t, second, e.RightVertex())
	assert.Contains(t, log.String(), "[sweep-circle] Edge vertex already set")
}

func TestWalkAgainst(t *testing.T) {
	bounds := geom.RectFromMinSize(0, 0, 10, 10)
	e0 := newBisector(0, newSite(geom.Pt(0, 5), 0, 1), newSite(geom.Pt(3, 5), 1, 1))
	e1 := newBisector(1, newSite(geom.Pt(3, 5), 1, 1), newSite(geom.Pt(6, 5), 2, 1))
	e0.clipVertices(bounds)
	e1.clipVertices(bounds)
	require.True(t, e0.unbounded())
	require.True(t, e1.unbounded())

	for _, o := range []Orientation{Left, Right} {
		got := walkAgainst(e0, o, e1)
		along := e0.ClippedEnd(o.Other()).Sub(e0.ClippedEnd(o))
		back := e1.ClippedEnd(got.Other()).Sub(e1.ClippedEnd(got))
		assert.Less(t, along.Dot(back), 0.0, "from %s", o)
	}
}

func TestNewVertexAtInfinity(t *testing.T) {
	assert.Same(t, VertexAtInfinity, newVertex(math.NaN(), 3))
	assert.Same(t, VertexAtInfinity, newVertex(3, math.NaN()))
	v := newVertex(3, 4)
	assert.NotSame(t, VertexAtInfinity, v)
	assert.Equal(t, geom.Pt(3, 4), v.Coord)
}

func TestIntersect(t *testing.T) {
	sites := []*Site{
		newSite(geom.Pt(0, 0), 0, 1),
		newSite(geom.Pt(10, 0), 1, 1),
		newSite(geom.Pt(0, 10), 2, 1),
		newSite(geom.Pt(20, 0), 3, 1),
	}
	edges := []*Edge{
		newBisector(0, sites[0], sites[1]), // x = 5
		newBisector(1, sites[0], sites[2]), // y = 5
		newBisector(2, sites[1], sites[3]), // x = 15
	}
	edgeOf := func(id EdgeID) *Edge { return edges[id] }

	v := intersect(edgeOf, newHalfedge(0, Left), newHalfedge(1, Left))
	require.NotNil(t, v)
	assert.InDelta(t, 5, v.X(), 1e-9)
	assert.InDelta(t, 5, v.Y(), 1e-9)

	assert.Nil(t, intersect(edgeOf, newHalfedge(0, Right), newHalfedge(1, Left)), "wrong side of the lower edge")
	assert.Nil(t, intersect(edgeOf, newHalfedge(0, Left), newHalfedge(2, Left)), "parallel")
	assert.Nil(t, intersect(edgeOf, newSentinel(), newHalfedge(1, Left)), "sentinel")
}

func TestHalfedgeQueueOrder(t *testing.T) {
	q := newHalfedgeQueue(0, 10, 2)
	require.Len(t, q.hash, 8)
	assert.True(t, q.empty())

	event := func(x, ystar float64) *halfedge {
		h := newHalfedge(0, Left)
		h.vertex = newVertex(x, ystar-1)
		h.ystar = ystar
		return h
	}
	late := event(3, 5)
	early := event(1, 5)
	first := event(9, 2)
	last := event(0, 9.9)
	for _, h := range []*halfedge{late, early, first, last} {
		q.insert(h)
		assert.Equal(t, queuedOnly, h.state())
	}
	assert.Equal(t, geom.Pt(9, 2), q.min())

	got := q.extractMin()
	assert.Same(t, first, got)
	assert.Equal(t, disposed, got.state())
	assert.Same(t, early, q.extractMin())
	assert.Same(t, late, q.extractMin())
	assert.Same(t, last, q.extractMin())
	assert.True(t, q.empty())
}

func TestHalfedgeQueueRemove(t *testing.T) {
	q := newHalfedgeQueue(0, 10, 2)
	a := newHalfedge(0, Left)
	a.vertex, a.ystar = newVertex(1, 1), 3
	b := newHalfedge(0, Right)
	b.vertex, b.ystar = newVertex(2, 1), 3
	q.insert(a)
	q.insert(b)

	q.remove(a)
	assert.Nil(t, a.vertex)
	assert.Equal(t, disposed, a.state())
	assert.Equal(t, noEdge, a.edge)
	assert.Equal(t, 1, q.count)
	assert.Same(t, b, q.extractMin())

	// not queued: nothing happens
	c := newHalfedge(0, Left)
	q.remove(c)
	assert.Equal(t, EdgeID(0), c.edge)
}

func TestHalfedgeQueueZeroHeight(t *testing.T) {
	q := newHalfedgeQueue(5, 0, 2)
	h := newHalfedge(0, Left)
	h.vertex, h.ystar = newVertex(0, 5), 5
	q.insert(h)
	assert.Equal(t, 0, q.bucket(h))
	assert.Same(t, h, q.extractMin())
}

func TestHalfedgeDispose(t *testing.T) {
	l := newEdgeList(nil, 0, 10, 2)
	h := newHalfedge(3, Left)
	l.insert(l.leftEnd, h)
	assert.Equal(t, activeInSweep, h.state())
	assert.False(t, h.dispose())

	l.remove(h)
	h.queued = true
	assert.False(t, h.dispose())
	assert.Equal(t, EdgeID(3), h.edge)

	h.queued = false
	assert.True(t, h.dispose())
	assert.Equal(t, noEdge, h.edge)
}

func TestEdgeListLinks(t *testing.T) {
	l := newEdgeList(nil, 0, 10, 2)
	require.Len(t, l.hash, 4)
	assert.Same(t, l.leftEnd, l.hash[0])
	assert.Same(t, l.rightEnd, l.hash[3])

	// an empty beach line always answers the left sentinel
	assert.Same(t, l.leftEnd, l.leftNeighbor(geom.Pt(1, 0)))
	assert.Same(t, l.leftEnd, l.leftNeighbor(geom.Pt(9, 0)))

	a := newHalfedge(0, Left)
	b := newHalfedge(0, Right)
	l.insert(l.leftEnd, a)
	l.insert(a, b)
	assert.Same(t, b, a.right)
	assert.Same(t, l.rightEnd, b.right)

	l.hash[1] = a
	l.remove(a)
	assert.True(t, a.deleted)
	assert.False(t, a.linked())
	assert.Same(t, b, l.leftEnd.right)
	assert.Nil(t, l.getHash(1))
	assert.Nil(t, l.hash[1])
	assert.Nil(t, l.getHash(-1))
	assert.Nil(t, l.getHash(4))
}

func TestEdgeListZeroWidth(t *testing.T) {
	l := newEdgeList(nil, 3, 0, 2)
	assert.Equal(t, 0, l.bucket(3))
	assert.Equal(t, 0, l.bucket(100))
}

func edgeWithVertices(id EdgeID, left, right *Vertex) *Edge {
	e := &Edge{id: id}
	e.vertices = [2]*Vertex{left, right}
	return e
}

func TestReorderEdgesByVertex(t *testing.T) {
	v0, v1, v2 := newVertex(0, 0), newVertex(1, 0), newVertex(0, 1)
	edges := []*Edge{
		edgeWithVertices(0, v0, v1),
		edgeWithVertices(1, v2, v1),
		edgeWithVertices(2, v2, v0),
	}

	ordered, orientations, err := reorderEdges(edges, byVertex)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, []*Edge{edges[0], edges[1], edges[2]}, ordered)
	assert.Equal(t, []Orientation{Left, Right, Left}, orientations)
}

func TestReorderEdgesGrowsFront(t *testing.T) {
	v0, v1, v2 := newVertex(0, 0), newVertex(1, 0), newVertex(0, 1)
	edges := []*Edge{
		edgeWithVertices(0, v0, v1),
		edgeWithVertices(1, v2, v0),
	}

	ordered, orientations, err := reorderEdges(edges, byVertex)
	require.NoError(t, err)
	assert.Equal(t, []*Edge{edges[1], edges[0]}, ordered)
	assert.Equal(t, []Orientation{Left, Left}, orientations)
}

func TestReorderEdgesOpenBoundary(t *testing.T) {
	v := newVertex(2, 2)
	edges := []*Edge{
		edgeWithVertices(0, nil, v),
		edgeWithVertices(1, v, nil),
	}

	ordered, _, err := reorderEdges(edges, byVertex)
	require.NoError(t, err)
	assert.Len(t, ordered, 2)
}

func TestReorderEdgesDisconnected(t *testing.T) {
	edges := []*Edge{
		edgeWithVertices(0, newVertex(0, 0), newVertex(1, 0)),
		edgeWithVertices(1, newVertex(5, 5), newVertex(6, 5)),
	}

	ordered, orientations, err := reorderEdges(edges, byVertex)
	assert.ErrorIs(t, err, ErrDisconnectedBoundary)
	assert.Equal(t, []*Edge{edges[0]}, ordered)
	assert.Len(t, orientations, 1)
}

func TestReorderEdgesAtInfinity(t *testing.T) {
	edges := []*Edge{
		edgeWithVertices(0, VertexAtInfinity, newVertex(1, 0)),
	}
	ordered, orientations, err := reorderEdges(edges, byVertex)
	assert.NoError(t, err)
	assert.Nil(t, ordered)
	assert.Nil(t, orientations)
}

func TestReorderEdgesBySite(t *testing.T) {
	hull := func(id EdgeID, l, r SiteID) *Edge {
		e := &Edge{id: id}
		e.sites = [2]SiteID{l, r}
		return e
	}
	edges := []*Edge{hull(0, 0, 1), hull(1, 2, 0), hull(2, 1, 2)}

	ordered, orientations, err := reorderEdges(edges, bySite)
	require.NoError(t, err)
	require.Len(t, ordered, 3)
	assert.Equal(t, []*Edge{edges[1], edges[0], edges[2]}, ordered)
	assert.Equal(t, []Orientation{Left, Left, Left}, orientations)
}

func TestDropCoincident(t *testing.T) {
	points := []geom.Point{
		geom.Pt(0, 0), geom.Pt(0.001, 0), geom.Pt(5, 0), geom.Pt(5, 5), geom.Pt(0, 0.002),
	}
	assert.Equal(t, geom.Polygon{geom.Pt(0, 0), geom.Pt(5, 0), geom.Pt(5, 5)}, dropCoincident(points))
}

func TestBoundsCheck(t *testing.T) {
	bounds := geom.RectFromMinSize(0, 0, 10, 10)
	assert.Equal(t, boundTop|boundLeft, boundsCheck(geom.Pt(0, 0), bounds))
	assert.Equal(t, boundBottom|boundRight, boundsCheck(geom.Pt(10, 10), bounds))
	assert.Equal(t, boundRight, boundsCheck(geom.Pt(10, 4), bounds))
	assert.Equal(t, 0, boundsCheck(geom.Pt(3, 4), bounds))
}
