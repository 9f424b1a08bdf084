package voronoi

import "github.com/0x0FACED/go-voronoi/pkg/geom"

// halfedgeQueue holds pending circle events. Events are spread over buckets
// by ystar; each bucket is a chain hanging off a dummy head, kept sorted by
// (ystar, vertex x).
type halfedgeQueue struct {
	ymin, deltay float64
	hash         []*halfedge
	count        int
	minBucket    int
}

func newHalfedgeQueue(ymin, deltay float64, sqrtNSites int) *halfedgeQueue {
	q := &halfedgeQueue{
		ymin:   ymin,
		deltay: deltay,
		hash:   make([]*halfedge, 4*sqrtNSites),
	}
	for i := range q.hash {
		q.hash[i] = newSentinel()
	}
	return q
}

func (q *halfedgeQueue) insert(h *halfedge) {
	b := q.bucket(h)
	if b < q.minBucket {
		q.minBucket = b
	}

	previous := q.hash[b]
	for next := previous.nextInQueue; next != nil &&
		(h.ystar > next.ystar || (h.ystar == next.ystar && h.vertex.X() > next.vertex.X())); next = previous.nextInQueue {
		previous = next
	}
	h.nextInQueue = previous.nextInQueue
	previous.nextInQueue = h
	h.queued = true
	q.count++
}

// remove takes h out of the queue if it holds a prediction and disposes it
// when nothing else references it.
func (q *halfedgeQueue) remove(h *halfedge) {
	if h.vertex == nil || !h.queued {
		return
	}
	previous := q.hash[q.bucket(h)]
	for previous.nextInQueue != h {
		previous = previous.nextInQueue
	}
	previous.nextInQueue = h.nextInQueue
	q.count--
	h.vertex = nil
	h.nextInQueue = nil
	h.queued = false
	h.dispose()
}

func (q *halfedgeQueue) bucket(h *halfedge) int {
	if q.deltay <= 0 {
		return 0
	}
	b := (h.ystar - q.ymin) / q.deltay * float64(len(q.hash))
	switch {
	case b < 0:
		return 0
	case b >= float64(len(q.hash)):
		return len(q.hash) - 1
	}
	return int(b)
}

func (q *halfedgeQueue) isEmptyBucket(b int) bool {
	return q.hash[b].nextInQueue == nil
}

func (q *halfedgeQueue) adjustMinBucket() {
	for q.minBucket < len(q.hash)-1 && q.isEmptyBucket(q.minBucket) {
		q.minBucket++
	}
}

func (q *halfedgeQueue) empty() bool {
	return q.count == 0
}

// min returns the position of the earliest event: the vertex x and ystar.
// The queue must not be empty.
func (q *halfedgeQueue) min() geom.Point {
	q.adjustMinBucket()
	answer := q.hash[q.minBucket].nextInQueue
	return geom.Pt(answer.vertex.X(), answer.ystar)
}

// extractMin removes and returns the earliest event. The queue must not be
// empty.
func (q *halfedgeQueue) extractMin() *halfedge {
	q.adjustMinBucket()
	answer := q.hash[q.minBucket].nextInQueue
	q.hash[q.minBucket].nextInQueue = answer.nextInQueue
	q.count--
	answer.nextInQueue = nil
	answer.queued = false
	return answer
}

// release drops the dummy heads.
func (q *halfedgeQueue) release() {
	for i := range q.hash {
		q.hash[i] = nil
	}
	q.hash = nil
	q.count = 0
}
