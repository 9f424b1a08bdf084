package voronoi

import "github.com/pkg/errors"

// reorderCriterion selects which end entities chain edges together: the
// Voronoi vertices for a cell boundary, the sites for the hull.
type reorderCriterion int

const (
	byVertex reorderCriterion = iota
	bySite
)

// endKey identifies one end of an edge under a criterion. Unbounded vertex
// ends compare equal to each other, so a cell boundary closes through
// infinity.
type endKey struct {
	vertex *Vertex
	site   SiteID
}

func edgeEnd(e *Edge, o Orientation, criterion reorderCriterion) endKey {
	if criterion == bySite {
		return endKey{site: e.sites[o]}
	}
	return endKey{vertex: e.vertices[o], site: -1}
}

// reorderEdges chains edges that share end entities into one continuous
// walk. orientations[i] tells which end of ordered[i] hooks up with the
// previous edge. When some edges cannot be reached the partial walk is
// returned with ErrDisconnectedBoundary.
func reorderEdges(edges []*Edge, criterion reorderCriterion) (ordered []*Edge, orientations []Orientation, err error) {
	n := len(edges)
	if n == 0 {
		return nil, nil, nil
	}

	done := make([]bool, n)
	nDone := 0

	// The walk grows at both ends; the front is kept reversed.
	var front, back []*Edge
	var frontOr, backOr []Orientation

	edge := edges[0]
	back = append(back, edge)
	backOr = append(backOr, Left)
	firstPoint := edgeEnd(edge, Left, criterion)
	lastPoint := edgeEnd(edge, Right, criterion)
	if firstPoint.vertex == VertexAtInfinity || lastPoint.vertex == VertexAtInfinity {
		return nil, nil, nil
	}
	done[0] = true
	nDone++

	for nDone < n {
		progressed := false
		for i := 1; i < n; i++ {
			if done[i] {
				continue
			}
			edge = edges[i]
			leftPoint := edgeEnd(edge, Left, criterion)
			rightPoint := edgeEnd(edge, Right, criterion)
			if leftPoint.vertex == VertexAtInfinity || rightPoint.vertex == VertexAtInfinity {
				return nil, nil, nil
			}

			switch {
			case leftPoint == lastPoint:
				lastPoint = rightPoint
				back = append(back, edge)
				backOr = append(backOr, Left)
			case rightPoint == firstPoint:
				firstPoint = leftPoint
				front = append(front, edge)
				frontOr = append(frontOr, Left)
			case leftPoint == firstPoint:
				firstPoint = rightPoint
				front = append(front, edge)
				frontOr = append(frontOr, Right)
			case rightPoint == lastPoint:
				lastPoint = leftPoint
				back = append(back, edge)
				backOr = append(backOr, Right)
			default:
				continue
			}
			done[i] = true
			nDone++
			progressed = true
		}
		if !progressed {
			err = errors.Wrapf(ErrDisconnectedBoundary, "walk reached %d of %d edges", nDone, n)
			break
		}
	}

	ordered = make([]*Edge, 0, nDone)
	orientations = make([]Orientation, 0, nDone)
	for i := len(front) - 1; i >= 0; i-- {
		ordered = append(ordered, front[i])
		orientations = append(orientations, frontOr[i])
	}
	ordered = append(ordered, back...)
	orientations = append(orientations, backOr...)

	return ordered, orientations, err
}
