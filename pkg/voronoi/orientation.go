package voronoi

// Orientation picks one side of an edge, a halfedge or a site pair.
type Orientation int

const (
	Left Orientation = iota
	Right
)

func (o Orientation) Other() Orientation {
	if o == Left {
		return Right
	}
	return Left
}

func (o Orientation) String() string {
	if o == Left {
		return "left"
	}
	return "right"
}
