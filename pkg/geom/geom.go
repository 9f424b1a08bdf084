// Package geom holds the small value types the diagram is built from and
// returned as: points, rectangles, segments, circles and polygons.
package geom

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Point is a 2D point or vector.
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return p.Sub(q).Norm()
}

// IsNaN reports whether either coordinate of p is NaN.
func IsNaN(p Point) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Rect is an axis-aligned rectangle. Y grows downward in plot space, so
// MinY is the top side and MaxY the bottom side.
type Rect struct {
	r r2.Rect
}

// RectFromMinSize creates a rectangle from its min corner and size.
func RectFromMinSize(x, y, width, height float64) Rect {
	return Rect{r2.Rect{
		X: r1.Interval{Lo: x, Hi: x + width},
		Y: r1.Interval{Lo: y, Hi: y + height},
	}}
}

// RectFromMinMax creates a rectangle from two opposite corners.
func RectFromMinMax(min, max Point) Rect {
	return Rect{r2.RectFromPoints(min, max)}
}

// BoundingRect returns the smallest rectangle containing all points.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	return Rect{r2.RectFromPoints(points...)}
}

func (r Rect) MinX() float64   { return r.r.X.Lo }
func (r Rect) MaxX() float64   { return r.r.X.Hi }
func (r Rect) MinY() float64   { return r.r.Y.Lo }
func (r Rect) MaxY() float64   { return r.r.Y.Hi }
func (r Rect) Width() float64  { return r.r.X.Length() }
func (r Rect) Height() float64 { return r.r.Y.Length() }
func (r Rect) Min() Point      { return r.r.Lo() }
func (r Rect) Max() Point      { return r.r.Hi() }

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return r.r.ContainsPoint(p)
}

// Corners returns the four corners counter-clockwise starting at the min
// corner.
func (r Rect) Corners() []Point {
	return []Point{
		Pt(r.MinX(), r.MinY()),
		Pt(r.MaxX(), r.MinY()),
		Pt(r.MaxX(), r.MaxY()),
		Pt(r.MinX(), r.MaxY()),
	}
}

// Segment is an ordered pair of points.
type Segment struct {
	P0, P1 Point
}

// Length returns the distance between the segment ends.
func (s Segment) Length() float64 {
	return Distance(s.P0, s.P1)
}

// Circle is a circle given by center and radius.
type Circle struct {
	Center Point
	Radius float64
}
