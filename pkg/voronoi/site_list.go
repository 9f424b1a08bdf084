package voronoi

import (
	"sort"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/pkg/errors"
)

// siteList holds the sites of one diagram. The first bounds query sorts it
// by (y, x); after that it is consumed in order as the site event source.
type siteList struct {
	sites   []*Site
	current int
	sorted  bool
}

func (l *siteList) push(s *Site) int {
	l.sorted = false
	l.sites = append(l.sites, s)
	return len(l.sites)
}

func (l *siteList) len() int {
	return len(l.sites)
}

// next returns the next site in sweep order, nil when exhausted.
func (l *siteList) next() (*Site, error) {
	if !l.sorted {
		return nil, errors.Wrap(ErrInvalidState, "sites have not been sorted")
	}
	if l.current >= len(l.sites) {
		return nil, nil
	}
	s := l.sites[l.current]
	l.current++
	return s, nil
}

func (l *siteList) sort() {
	sort.SliceStable(l.sites, func(i, j int) bool {
		return compareByYThenX(l.sites[i].coord, l.sites[j].coord) < 0
	})
	for i, s := range l.sites {
		s.id = SiteID(i)
	}
	l.current = 0
	l.sorted = true
}

// bounds returns the bounding rectangle of the sites, sorting them first if
// needed.
func (l *siteList) bounds() geom.Rect {
	if !l.sorted {
		l.sort()
	}
	return geom.BoundingRect(l.coords())
}

func (l *siteList) coords() []geom.Point {
	coords := make([]geom.Point, 0, len(l.sites))
	for _, s := range l.sites {
		coords = append(coords, s.coord)
	}
	return coords
}
