// Package voronoi computes the Voronoi diagram and the dual Delaunay
// triangulation of a set of sites inside a rectangular plot area using
// Fortune's sweep.
//
// The sweep keeps the beach line as a bucket-hashed doubly linked list of
// halfedges and the pending circle events in a bucketed priority queue, both
// with roughly sqrt(n) buckets. Finished edges are clipped to the plot bounds
// and stitched into per-site polygons on demand.
//
// Y grows downward: the sweep runs from the smallest y to the largest, the
// top side of the plot area is its minimum y.
package voronoi
