package voronoi

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Voronoi is a finished diagram. It owns its sites and edges; query results
// must be treated as read only. Region queries cache per site, so a diagram
// must not be queried from several goroutines at once.
type Voronoi struct {
	sites      *siteList
	byLocation map[geom.Point]*Site
	edges      []*Edge
	plotBounds geom.Rect
	stats      Stats

	log *logger.ZapLogger
}

type config struct {
	bounds  *geom.Rect
	log     *logger.ZapLogger
	weights []float64
}

// Option configures New.
type Option func(*config)

// WithBounds sets the plot rectangle edges and regions are clipped to.
// Without it the rectangle spans from the origin to the largest site x and
// y.
func WithBounds(bounds geom.Rect) Option {
	return func(c *config) { c.bounds = &bounds }
}

func WithLogger(log *logger.ZapLogger) Option {
	return func(c *config) { c.log = log }
}

// WithWeights attaches a weight to each site by input position. Weights are
// carried along but do not change the diagram.
func WithWeights(weights []float64) Option {
	return func(c *config) { c.weights = weights }
}

// New builds the diagram of points. Duplicate points collapse into one site
// carrying the weight of the last duplicate.
func New(points []geom.Point, opts ...Option) (*Voronoi, error) {
	cfg := config{log: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Voronoi{
		sites:      &siteList{},
		byLocation: make(map[geom.Point]*Site, len(points)),
		log:        cfg.log,
	}

	if cfg.bounds != nil {
		v.plotBounds = *cfg.bounds
	} else {
		var maxWidth, maxHeight float64
		for _, p := range points {
			maxWidth = math.Max(maxWidth, p.X)
			maxHeight = math.Max(maxHeight, p.Y)
		}
		v.plotBounds = geom.RectFromMinSize(0, 0, maxWidth, maxHeight)
	}

	for i, p := range points {
		var weight float64
		if i < len(cfg.weights) {
			weight = cfg.weights[i]
		}
		if s, ok := v.byLocation[p]; ok {
			// last write wins, the sweep sees the coordinate once
			s.weight = weight
			v.log.Warn("[voronoi] Duplicate site dropped", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Int("index", i))
			continue
		}
		if !v.plotBounds.Contains(p) {
			v.log.Warn("[voronoi] Site outside plot bounds", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Int("index", i))
		}
		s := newSite(p, v.sites.len(), weight)
		v.sites.push(s)
		v.byLocation[p] = s
	}

	if err := v.fortunesAlgorithm(); err != nil {
		return nil, errors.Wrap(err, "fortune sweep")
	}
	return v, nil
}

// NewRandom builds the diagram of n sites drawn uniformly from
// [0, width) x [0, height), clipped to that rectangle.
func NewRandom(n int, width, height float64, rng *rand.Rand, opts ...Option) (*Voronoi, error) {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Pt(rng.Float64()*width, rng.Float64()*height)
	}
	opts = append([]Option{WithBounds(geom.RectFromMinSize(0, 0, width, height))}, opts...)
	return New(points, opts...)
}

func (v *Voronoi) fortunesAlgorithm() error {
	// the bounds query sorts the sites
	dataBounds := v.sites.bounds()

	s := &sweep{sites: v.sites, log: v.log}
	edges, err := s.run(dataBounds)
	if err != nil {
		return err
	}
	v.edges = edges
	v.stats = s.stats

	for _, e := range v.edges {
		e.clipVertices(v.plotBounds)
	}
	v.log.Debug("[clip] Edges clipped", zap.Int("edges", len(v.edges)), zap.Int("visible", len(v.VoronoiDiagram())))
	return nil
}

func (v *Voronoi) edgeOf(id EdgeID) *Edge {
	return v.edges[id]
}

// PlotBounds returns the rectangle the diagram is clipped to.
func (v *Voronoi) PlotBounds() geom.Rect {
	return v.plotBounds
}

// Stats returns the event counts of the sweep.
func (v *Voronoi) Stats() Stats {
	return v.stats
}

// Edges returns every bisector, including invisible and hull edges.
func (v *Voronoi) Edges() []*Edge {
	return v.edges
}

// Sites returns the sites in (y, x) order.
func (v *Voronoi) Sites() []*Site {
	return v.sites.sites
}

// Site looks up the site at p.
func (v *Voronoi) Site(p geom.Point) (*Site, error) {
	s, ok := v.byLocation[p]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSite, "(%g, %g)", p.X, p.Y)
	}
	return s, nil
}

// SiteCoords returns the site coordinates in (y, x) order.
func (v *Voronoi) SiteCoords() []geom.Point {
	return v.sites.coords()
}

// Region returns the counter-clockwise cell polygon of the site at p,
// clipped to the plot bounds. It is empty when p is not a site. A non-nil
// error wraps ErrDisconnectedBoundary; the polygon is then built from the
// reachable edges only.
func (v *Voronoi) Region(p geom.Point) (geom.Polygon, error) {
	s, ok := v.byLocation[p]
	if !ok {
		return nil, nil
	}
	return v.region(s)
}

func (v *Voronoi) region(s *Site) (geom.Polygon, error) {
	if s.hasRegion {
		return s.region, s.reorderErr
	}

	if len(s.edges) == 0 && v.sites.len() == 1 {
		// a lone site owns the whole plot
		s.region = geom.Polygon(v.plotBounds.Corners())
		s.hasRegion = true
		return s.region, nil
	}

	err := s.reorderEdges(v.edgeOf)
	if err != nil {
		v.log.Warn("[region] Cell boundary is disconnected", zap.Stringer("site", s), zap.Error(err))
	}

	s.region = s.clipToBounds(v.edgeOf, v.plotBounds)
	if s.region.Winding() == geom.Clockwise {
		s.region.Reverse()
	}
	s.hasRegion = true
	return s.region, err
}

// Regions returns the cell polygon of every site in (y, x) order along
// with the combined diagnostics of all sites.
func (v *Voronoi) Regions() ([]geom.Polygon, error) {
	regions := make([]geom.Polygon, 0, v.sites.len())
	var errs error
	for _, s := range v.sites.sites {
		region, err := v.region(s)
		errs = multierr.Append(errs, err)
		regions = append(regions, region)
	}
	return regions, errs
}

// NeighborSites returns the coordinates of the sites sharing an edge with
// the site at p, in boundary order.
func (v *Voronoi) NeighborSites(p geom.Point) []geom.Point {
	s, ok := v.byLocation[p]
	if !ok || len(s.edges) == 0 {
		return nil
	}
	if err := s.reorderEdges(v.edgeOf); err != nil {
		v.log.Warn("[region] Cell boundary is disconnected", zap.Stringer("site", s), zap.Error(err))
	}

	points := make([]geom.Point, 0, len(s.edges))
	for _, id := range s.edges {
		if n, ok := s.neighbor(v.edgeOf(id)); ok {
			points = append(points, v.sites.sites[n].coord)
		}
	}
	return points
}

// Circles returns, per site in (y, x) order, the largest circle centered at
// the site that fits its cell. Unbounded cells get radius 0.
func (v *Voronoi) Circles() []geom.Circle {
	circles := make([]geom.Circle, 0, v.sites.len())
	for _, s := range v.sites.sites {
		var radius float64
		if nearest := s.nearestEdge(v.edgeOf); nearest != nil && !nearest.IsPartOfConvexHull() {
			radius = nearest.SitesDistance() * 0.5
		}
		circles = append(circles, geom.Circle{Center: s.coord, Radius: radius})
	}
	return circles
}

func (v *Voronoi) edgesForSite(p geom.Point) []*Edge {
	s, ok := v.byLocation[p]
	if !ok {
		return nil
	}
	var filtered []*Edge
	for _, e := range v.edges {
		if e.touches(s.id) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func visibleLineSegments(edges []*Edge) []geom.Segment {
	segments := make([]geom.Segment, 0, len(edges))
	for _, e := range edges {
		if seg, ok := e.VoronoiEdge(); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

func delaunayLinesForEdges(edges []*Edge) []geom.Segment {
	segments := make([]geom.Segment, 0, len(edges))
	for _, e := range edges {
		segments = append(segments, e.DelaunayLine())
	}
	return segments
}

// VoronoiBoundaryForSite returns the visible edges of the site's cell.
func (v *Voronoi) VoronoiBoundaryForSite(p geom.Point) []geom.Segment {
	return visibleLineSegments(v.edgesForSite(p))
}

// DelaunayLinesForSite returns the Delaunay edges from the site at p.
func (v *Voronoi) DelaunayLinesForSite(p geom.Point) []geom.Segment {
	return delaunayLinesForEdges(v.edgesForSite(p))
}

// VoronoiDiagram returns every visible clipped edge.
func (v *Voronoi) VoronoiDiagram() []geom.Segment {
	return visibleLineSegments(v.edges)
}

// DelaunayTriangulation returns the Delaunay edges of the whole diagram.
func (v *Voronoi) DelaunayTriangulation() []geom.Segment {
	return delaunayLinesForEdges(v.edges)
}

func (v *Voronoi) hullEdges() []*Edge {
	var filtered []*Edge
	for _, e := range v.edges {
		if e.IsPartOfConvexHull() {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Hull returns the convex hull as Delaunay segments in walk order.
func (v *Voronoi) Hull() []geom.Segment {
	ordered, _, _ := v.orderedHull()
	return delaunayLinesForEdges(ordered)
}

// HullPointsInOrder walks the hull edges through their shared sites and
// returns the hull vertices in order.
func (v *Voronoi) HullPointsInOrder() ([]geom.Point, error) {
	ordered, orientations, err := v.orderedHull()
	if len(ordered) == 0 {
		return nil, err
	}

	points := make([]geom.Point, 0, len(ordered))
	for i, e := range ordered {
		points = append(points, e.siteCoords[orientations[i]])
	}
	// an open chain of collinear sites does not lead back to its start
	last := len(ordered) - 1
	if end := ordered[last].siteCoords[orientations[last].Other()]; end != points[0] {
		points = append(points, end)
	}
	return points, err
}

func (v *Voronoi) orderedHull() ([]*Edge, []Orientation, error) {
	ordered, orientations, err := reorderEdges(v.hullEdges(), bySite)
	if err != nil {
		v.log.Warn("[hull] Hull walk is disconnected", zap.Error(err))
	}
	return ordered, orientations, err
}
