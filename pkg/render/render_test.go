package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/0x0FACED/go-voronoi/pkg/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagram(t *testing.T) *voronoi.Voronoi {
	t.Helper()
	v, err := voronoi.New([]geom.Point{
		geom.Pt(20, 20), geom.Pt(80, 25), geom.Pt(50, 80), geom.Pt(50, 45),
	}, voronoi.WithBounds(geom.RectFromMinSize(0, 0, 100, 100)))
	require.NoError(t, err)
	return v
}

func TestHTML(t *testing.T) {
	v := diagram(t)

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, v, Options{Title: "four sites", Delaunay: true, Hull: true}))
	out := buf.String()
	assert.Contains(t, out, "four sites")
	assert.Contains(t, out, SeriesSites)
	assert.Contains(t, out, SeriesVoronoi)
	assert.Contains(t, out, SeriesDelaunay)
	assert.Contains(t, out, SeriesHull)

	buf.Reset()
	require.NoError(t, HTML(&buf, v, Options{}))
	assert.NotContains(t, buf.String(), SeriesDelaunay)
	assert.Contains(t, buf.String(), "Voronoi diagram (Fortune)")
}

func TestPNG(t *testing.T) {
	v := diagram(t)

	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, v, 2, Options{Delaunay: true, Hull: true}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2*100+drawPadding*2, img.Bounds().Dx())
	assert.Equal(t, 2*100+drawPadding*2, img.Bounds().Dy())

	// the corner pixel is padding
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r+g+b)
}

func TestImageRejectsScale(t *testing.T) {
	_, err := Image(diagram(t), 0, Options{})
	assert.Error(t, err)
}
