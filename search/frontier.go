package search

import (
	"container/heap"

	"github.com/katalvlaran/gridroute/grid"
)

// entry is a frontier element. cost is the accumulated step count for A*
// and always 0 for GBFS.
type entry struct {
	priority int
	cost     int
	at       grid.Coord
}

// less orders entries by (priority, cost, row, col) lexicographically.
func (e entry) less(o entry) bool {
	if e.priority != o.priority {
		return e.priority < o.priority
	}
	if e.cost != o.cost {
		return e.cost < o.cost
	}
	if e.at.Row != o.at.Row {
		return e.at.Row < o.at.Row
	}
	return e.at.Col < o.at.Col
}

// entryPQ is a min-heap of entries. Duplicate coordinates are allowed; callers
// decide what a repeated pop means.
type entryPQ []entry

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq) }

// Less reports whether item i must be popped before item j.
func (pq entryPQ) Less(i, j int) bool { return pq[i].less(pq[j]) }

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier wraps entryPQ with typed push/pop and the OnPush hook.
type frontier struct {
	pq     entryPQ
	onPush func(grid.Coord, int)
}

func newFrontier(capacity int, onPush func(grid.Coord, int)) *frontier {
	f := &frontier{pq: make(entryPQ, 0, capacity), onPush: onPush}
	heap.Init(&f.pq)
	return f
}

func (f *frontier) push(e entry) {
	heap.Push(&f.pq, e)
	f.onPush(e.at, e.priority)
}

func (f *frontier) pop() entry { return heap.Pop(&f.pq).(entry) }

func (f *frontier) empty() bool { return f.pq.Len() == 0 }
