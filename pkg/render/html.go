// Package render draws a finished diagram: as an interactive echarts page
// or as a PNG image.
package render

import (
	"io"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Series names used in the chart legend.
const (
	SeriesSites    = "Sites"
	SeriesVoronoi  = "Voronoi edges"
	SeriesDelaunay = "Delaunay edges"
	SeriesHull     = "Hull"
)

// Options selects what is drawn on top of the sites and Voronoi edges.
type Options struct {
	Title    string
	Delaunay bool
	Hull     bool
}

func prepareScatter(scatter *charts.Scatter, title string, bounds geom.Rect) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                title,
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			Min:  bounds.MinX(),
			Max:  bounds.MaxX(),
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			Min:  bounds.MinY(),
			Max:  bounds.MaxY(),
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func overlapSegments(scatter *charts.Scatter, name string, segments []geom.Segment, style opts.LineStyle) {
	for _, seg := range segments {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries(name, []opts.LineData{
			{Value: []float64{seg.P0.X, seg.P0.Y}},
			{Value: []float64{seg.P1.X, seg.P1.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(style),
		)

		scatter.Overlap(line)
	}
}

// Chart builds the echarts scatter of the sites with the diagram edges
// overlaid as line series.
func Chart(v *voronoi.Voronoi, o Options) *charts.Scatter {
	scatter := charts.NewScatter()

	title := o.Title
	if title == "" {
		title = "Voronoi diagram (Fortune)"
	}
	prepareScatter(scatter, title, v.PlotBounds())

	points := make([]opts.ScatterData, 0, len(v.Sites()))
	for _, p := range v.SiteCoords() {
		points = append(points, opts.ScatterData{
			Value: []float64{p.X, p.Y},
		})
	}
	scatter.AddSeries(SeriesSites, points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	overlapSegments(scatter, SeriesVoronoi, v.VoronoiDiagram(), opts.LineStyle{Width: 2})
	if o.Delaunay {
		overlapSegments(scatter, SeriesDelaunay, v.DelaunayTriangulation(),
			opts.LineStyle{Width: 1, Color: "orange", Type: "dashed"})
	}
	if o.Hull {
		overlapSegments(scatter, SeriesHull, v.Hull(), opts.LineStyle{Width: 2, Color: "red"})
	}

	return scatter
}

// HTML writes the chart of v to w as a standalone page fragment.
func HTML(w io.Writer, v *voronoi.Voronoi, o Options) error {
	if err := Chart(v, o).Render(w); err != nil {
		return errors.Wrap(err, "render chart")
	}
	return nil
}
