package solver

// stateItem is one entry of the open set: a State together with its
// precomputed priority f = g + weight*h. f is carried on the item rather
// than recomputed from State so that a fixed weight is applied
// consistently across a single Solve call.
type stateItem struct {
	state *State
	f     float64
}

// statePQ is a min-heap of *stateItem ordered by ascending f, with ties
// broken toward the larger h (the deeper-looking node is explored first).
// Like the reference Dijkstra implementation, improved paths to a board
// are handled by lazy-decrease-key: a new item is pushed rather than the
// stale one updated in place. The stale entry stays in the heap; Solve
// does not check popped entries against the closed set, so a stale entry
// is expanded when popped and only its children are filtered by it.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by ascending f; among equal f, larger h sorts first.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].state.H > pq[j].state.H
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push; x must be
// of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap. Called by
// heap.Pop; returns interface{} that must be cast to *stateItem.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
