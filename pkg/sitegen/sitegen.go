// Package sitegen produces site sets for the demo commands and benchmarks.
package sitegen

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-voronoi/pkg/geom"
	"github.com/pkg/errors"
)

// Random returns n sites with integer coordinates drawn from
// [0, width) x [0, height). Duplicates are possible on small plots.
func Random(n int, width, height float64, rng *rand.Rand) []geom.Point {
	sites := make([]geom.Point, n)
	w, h := int(width), int(height)
	for i := range sites {
		sites[i] = geom.Pt(float64(rng.Intn(w)), float64(rng.Intn(h)))
	}
	return sites
}

// Grid lays n sites row by row at the centers of a near-square grid of
// cells. The last row may be partial.
func Grid(n int, width, height float64) []geom.Point {
	if n <= 0 {
		return nil
	}
	sites := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := width / float64(cols)
	yStep := height / float64(rows)

	for i := 0; i < rows && len(sites) < n; i++ {
		for j := 0; j < cols && len(sites) < n; j++ {
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			sites = append(sites, geom.Pt(x, y))
		}
	}
	return sites
}

// Generate dispatches on the generator name used in configuration files.
func Generate(generator string, n int, width, height float64, rng *rand.Rand) ([]geom.Point, error) {
	switch generator {
	case "grid":
		return Grid(n, width, height), nil
	case "random":
		if width < 1 || height < 1 {
			return nil, errors.Errorf("random sites need a plot of at least 1x1, got %gx%g", width, height)
		}
		return Random(n, width, height, rng), nil
	}
	return nil, errors.Errorf("unknown generator %q", generator)
}
