package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
)

// SiteID addresses a site in the diagram. It equals the site's position in
// (y, x) order once the sites are sorted.
type SiteID int

// Site is an input point together with the edges bounding its cell.
type Site struct {
	id     SiteID
	coord  geom.Point
	weight float64

	// insertion order until reorder, boundary walk order afterwards
	edges        []EdgeID
	orientations []Orientation
	reordered    bool
	reorderErr   error

	region    geom.Polygon
	hasRegion bool
}

func newSite(p geom.Point, index int, weight float64) *Site {
	return &Site{id: SiteID(index), coord: p, weight: weight}
}

func (s *Site) ID() SiteID        { return s.id }
func (s *Site) Coord() geom.Point { return s.coord }
func (s *Site) X() float64        { return s.coord.X }
func (s *Site) Y() float64        { return s.coord.Y }
func (s *Site) Weight() float64   { return s.weight }
func (s *Site) EdgeIDs() []EdgeID { return s.edges }

func (s *Site) addEdge(id EdgeID) {
	s.edges = append(s.edges, id)
}

func (s *Site) String() string {
	return fmt.Sprintf("Site %d: (%g, %g)", s.id, s.coord.X, s.coord.Y)
}

// neighbor returns the site on the other side of e.
func (s *Site) neighbor(e *Edge) (SiteID, bool) {
	switch s.id {
	case e.sites[Left]:
		return e.sites[Right], true
	case e.sites[Right]:
		return e.sites[Left], true
	}
	return 0, false
}

// nearestEdge returns the edge whose dual Delaunay edge is shortest.
func (s *Site) nearestEdge(edgeOf func(EdgeID) *Edge) *Edge {
	var nearest *Edge
	for _, id := range s.edges {
		e := edgeOf(id)
		if nearest == nil || e.SitesDistance() < nearest.SitesDistance() {
			nearest = e
		}
	}
	return nearest
}

// reorderEdges puts the site's edges in boundary walk order once.
func (s *Site) reorderEdges(edgeOf func(EdgeID) *Edge) error {
	if s.reordered {
		return s.reorderErr
	}
	edges := make([]*Edge, len(s.edges))
	for i, id := range s.edges {
		edges[i] = edgeOf(id)
	}

	ordered, orientations, err := reorderEdges(edges, byVertex)
	s.edges = s.edges[:0]
	for _, e := range ordered {
		s.edges = append(s.edges, e.id)
	}
	s.orientations = orientations
	s.reordered = true
	s.reorderErr = err
	return err
}
