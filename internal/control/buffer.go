// Package control connects the capture loop to the game loop.
package control

import (
	"sync"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// Buffer holds at most one pending direction plus the latest boost flag.
// The capture loop writes it; the game loop reads it once per tick. A newer
// direction overwrites an unconsumed one.
type Buffer struct {
	mu      sync.Mutex
	pending core.Direction
	boost   bool
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Put stores d as the pending direction. DirNone is ignored so an idle poll
// cannot erase a swipe the game has not seen yet.
func (b *Buffer) Put(d core.Direction) {
	if d == core.DirNone {
		return
	}
	b.mu.Lock()
	b.pending = d
	b.mu.Unlock()
}

// Take returns the pending direction and clears it.
func (b *Buffer) Take() core.Direction {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := b.pending
	b.pending = core.DirNone
	return d
}

// SetBoost records the pinch state of the latest poll.
func (b *Buffer) SetBoost(on bool) {
	b.mu.Lock()
	b.boost = on
	b.mu.Unlock()
}

// Boost returns the pinch state of the latest poll.
func (b *Buffer) Boost() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.boost
}

// Input assembles the game input for one tick, consuming the pending
// direction.
func (b *Buffer) Input(quit bool) core.InputFrame {
	b.mu.Lock()
	defer b.mu.Unlock()
	in := core.InputFrame{Direction: b.pending, Boost: b.boost, Quit: quit}
	b.pending = core.DirNone
	return in
}
