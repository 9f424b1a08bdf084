package render

import (
	"io"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const drawPadding = 10

// regionColors cycles over the cells in site order.
var regionColors = [][3]float64{
	{0.20, 0.40, 0.25},
	{0.15, 0.30, 0.45},
	{0.45, 0.30, 0.15},
	{0.35, 0.20, 0.40},
	{0.40, 0.40, 0.20},
	{0.15, 0.40, 0.40},
}

// Image draws v at scale pixels per plot unit. Plot y grows downward like
// image y, so no flip is needed. Cells whose boundary walk was disconnected
// are still drawn; the returned error lists them.
func Image(v *voronoi.Voronoi, scale float64, o Options) (*gg.Context, error) {
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", scale)
	}
	bounds := v.PlotBounds()

	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	origin := bounds.Min()
	c.Translate(-origin.X, -origin.Y)

	regions, err := v.Regions()
	for i, region := range regions {
		if len(region) < 3 {
			continue
		}
		tracePolygon(c, region)
		rgb := regionColors[i%len(regionColors)]
		c.SetRGB(rgb[0], rgb[1], rgb[2])
		c.Fill()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	strokeSegments(c, v.VoronoiDiagram())

	if o.Delaunay {
		c.SetLineWidth(1)
		c.SetRGB(1, 0.65, 0)
		strokeSegments(c, v.DelaunayTriangulation())
	}
	if o.Hull {
		hull, hullErr := v.HullPointsInOrder()
		err = multierr.Append(err, hullErr)
		if len(hull) > 1 {
			c.SetLineWidth(2)
			c.SetRGB(1, 0, 0)
			tracePolygon(c, hull)
			c.Stroke()
		}
	}

	c.SetRGB(0.56, 0.93, 0.56)
	for _, p := range v.SiteCoords() {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	return c, err
}

// PNG encodes the image of v to w.
func PNG(w io.Writer, v *voronoi.Voronoi, scale float64, o Options) error {
	c, err := Image(v, scale, o)
	if c == nil {
		return err
	}
	if encErr := c.EncodePNG(w); encErr != nil {
		return multierr.Append(err, errors.Wrap(encErr, "encode png"))
	}
	return err
}

func tracePolygon(c *gg.Context, points []geom.Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func strokeSegments(c *gg.Context, segments []geom.Segment) {
	for _, seg := range segments {
		c.DrawLine(seg.P0.X, seg.P0.Y, seg.P1.X, seg.P1.Y)
	}
	c.Stroke()
}
