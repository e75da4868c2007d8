package snake

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// body keeps the snake's cells in order (head at the front) together with a
// set of occupied cells. Both are updated together on every push and pop.
type body struct {
	cells    deque.Deque[core.Point]
	occupied map[core.Point]struct{}
}

// reset replaces the body with a single segment at p.
func (b *body) reset(p core.Point) {
	b.cells.Clear()
	b.occupied = make(map[core.Point]struct{})
	b.pushFront(p)
}

func (b *body) pushFront(p core.Point) {
	b.cells.PushFront(p)
	b.occupied[p] = struct{}{}
}

func (b *body) popBack() core.Point {
	p := b.cells.PopBack()
	delete(b.occupied, p)
	return p
}

func (b *body) head() core.Point {
	return b.cells.Front()
}

func (b *body) contains(p core.Point) bool {
	_, ok := b.occupied[p]
	return ok
}

func (b *body) len() int {
	return b.cells.Len()
}

// points returns a copy of the cells, head first.
func (b *body) points() []core.Point {
	out := make([]core.Point, b.cells.Len())
	for i := range out {
		out[i] = b.cells.At(i)
	}
	return out
}
