package voronoi

import "github.com/pkg/errors"

var (
	// ErrInvalidState is returned when the site source is consumed before
	// it has been sorted.
	ErrInvalidState = errors.New("voronoi: invalid state")

	// ErrDisconnectedBoundary is returned when an edge ordering walk could
	// not reach every edge it was given. The partial ordering is still
	// used; it usually means coincident or collinear input.
	ErrDisconnectedBoundary = errors.New("voronoi: disconnected boundary")

	// ErrUnknownSite is returned for coordinates that are not a site of the
	// diagram.
	ErrUnknownSite = errors.New("voronoi: unknown site")
)
