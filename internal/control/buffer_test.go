package control

import (
	"sync"
	"testing"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

func TestBufferTakeClears(t *testing.T) {
	b := NewBuffer()

	if d := b.Take(); d != core.DirNone {
		t.Errorf("empty buffer: got %v, expected None", d)
	}

	b.Put(core.DirUp)
	if d := b.Take(); d != core.DirUp {
		t.Errorf("got %v, expected UP", d)
	}
	if d := b.Take(); d != core.DirNone {
		t.Errorf("second Take: got %v, expected None", d)
	}
}

func TestBufferLatestWins(t *testing.T) {
	b := NewBuffer()
	b.Put(core.DirUp)
	b.Put(core.DirLeft)
	b.Put(core.DirNone)

	if d := b.Take(); d != core.DirLeft {
		t.Errorf("got %v, expected LEFT", d)
	}
}

func TestBufferInput(t *testing.T) {
	b := NewBuffer()
	b.Put(core.DirDown)
	b.SetBoost(true)

	in := b.Input(true)
	if in.Direction != core.DirDown || !in.Boost || !in.Quit {
		t.Errorf("got %+v", in)
	}

	in = b.Input(false)
	if in.HasDirection() {
		t.Errorf("direction should be consumed, got %v", in.Direction)
	}
	if !in.Boost {
		t.Error("boost should persist until the next poll")
	}
}

func TestBufferConcurrent(t *testing.T) {
	b := NewBuffer()
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			b.Put(dirs[i%len(dirs)])
			b.SetBoost(i%2 == 0)
		}
	}()

	taken := 0
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if b.Take() != core.DirNone {
				taken++
			}
			_ = b.Boost()
		}
	}()
	wg.Wait()

	if taken > 1000 {
		t.Errorf("took %d directions from 1000 puts", taken)
	}
}
