package gesture

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// openHand returns a pose with the wrist at (x, y) and the fingertips 0.10 apart.
func openHand(x, y float64) *HandPose {
	p := NewPose(core.Vec2{X: x, Y: y}, core.Vec2{X: x + 0.05, Y: y - 0.2}, core.Vec2{X: x + 0.15, Y: y - 0.2})
	return &p
}

func TestClassifyNoHand(t *testing.T) {
	c := NewClassifier(0.05, 0.05)
	c.Classify(openHand(0.5, 0.5))

	dir, boost := c.Classify(nil)
	if dir != core.DirNone || boost {
		t.Errorf("Classify(nil) = (%v, %v), expected (None, false)", dir, boost)
	}

	prev, ok := c.Previous()
	if !ok || prev != (core.Vec2{X: 0.5, Y: 0.5}) {
		t.Errorf("previous wrist should survive a dropout, got %v (%v)", prev, ok)
	}
}

func TestClassifyFirstObservation(t *testing.T) {
	c := NewClassifier(0.05, 0.05)

	dir, _ := c.Classify(openHand(0.2, 0.8))
	if dir != core.DirNone {
		t.Errorf("first observation should not fire, got %v", dir)
	}
	if prev, ok := c.Previous(); !ok || prev != (core.Vec2{X: 0.2, Y: 0.8}) {
		t.Errorf("first observation should be stored, got %v (%v)", prev, ok)
	}
}

func TestClassifySwipeDirections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   core.Direction
	}{
		{"right", 0.10, 0.0, core.DirRight},
		{"left", -0.10, 0.0, core.DirLeft},
		{"down", 0.0, 0.10, core.DirDown},
		{"up", 0.0, -0.10, core.DirUp},
		{"mostly right", 0.12, 0.08, core.DirRight},
		{"mostly up", -0.02, -0.3, core.DirUp},
		{"exact diagonal picks vertical", 0.10, 0.10, core.DirDown},
		{"one axis above threshold", 0.01, -0.06, core.DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClassifier(0.05, 0.05)
			c.Classify(openHand(0.5, 0.5))

			got, _ := c.Classify(openHand(0.5+tc.dx, 0.5+tc.dy))
			if got != tc.want {
				t.Errorf("delta (%v, %v) = %v, expected %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestClassifySubThresholdMotion(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		c := NewClassifier(0.05, 0.05)
		x, y := 0.5, 0.5
		c.Classify(openHand(x, y))

		for i := 0; i < 40; i++ {
			x += (rng.Float64()*2 - 1) * 0.049
			y += (rng.Float64()*2 - 1) * 0.049
			dir, _ := c.Classify(openHand(x, y))
			if dir != core.DirNone {
				t.Fatalf("run %d step %d: sub-threshold motion fired %v", run, i, dir)
			}
		}

		if prev, _ := c.Previous(); prev != (core.Vec2{X: x, Y: y}) {
			t.Fatalf("run %d: previous = %v, expected last observation (%v, %v)", run, prev, x, y)
		}
	}
}

func TestClassifySlowDriftNeverFires(t *testing.T) {
	c := NewClassifier(0.05, 0.05)
	c.Classify(openHand(0.1, 0.5))

	// 0.8 of total travel, but only 0.04 per poll
	for x := 0.14; x <= 0.9; x += 0.04 {
		if dir, _ := c.Classify(openHand(x, 0.5)); dir != core.DirNone {
			t.Fatalf("drift fired %v at x=%v", dir, x)
		}
	}
}

func TestClassifyRepeatsOnlyOnMotion(t *testing.T) {
	c := NewClassifier(0.05, 0.05)
	c.Classify(openHand(0.5, 0.5))

	if dir, _ := c.Classify(openHand(0.6, 0.5)); dir != core.DirRight {
		t.Fatalf("expected RIGHT, got %v", dir)
	}
	// Holding still afterwards does not repeat the gesture
	if dir, _ := c.Classify(openHand(0.6, 0.5)); dir != core.DirNone {
		t.Errorf("held position should not fire, got %v", dir)
	}
}

func TestClassifyPinch(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     bool
	}{
		{"pinched", 0.03, true},
		{"open", 0.10, false},
		{"touching", 0.0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClassifier(0.05, 0.05)
			wrist := core.Vec2{X: 0.5, Y: 0.5}
			pose := NewPose(wrist, core.Vec2{X: 0.4, Y: 0.3}, core.Vec2{X: 0.4 + tc.distance, Y: 0.3})

			_, boost := c.Classify(&pose)
			if boost != tc.want {
				t.Errorf("distance %v: boost = %v, expected %v", tc.distance, boost, tc.want)
			}

			// Independent of motion
			moved := NewPose(core.Vec2{X: 0.8, Y: 0.5}, core.Vec2{X: 0.7, Y: 0.3}, core.Vec2{X: 0.7 + tc.distance, Y: 0.3})
			dir, boost := c.Classify(&moved)
			if dir != core.DirRight || boost != tc.want {
				t.Errorf("distance %v while swiping: (%v, %v), expected (RIGHT, %v)", tc.distance, dir, boost, tc.want)
			}
		})
	}
}

func TestClassifierDefaultsAndReset(t *testing.T) {
	c := NewClassifier(0, -1)
	if c.movementThreshold != DefaultMovementThreshold || c.pinchThreshold != DefaultPinchThreshold {
		t.Errorf("thresholds = (%v, %v), expected defaults", c.movementThreshold, c.pinchThreshold)
	}

	c.Classify(openHand(0.5, 0.5))
	c.Reset()
	if _, ok := c.Previous(); ok {
		t.Error("Reset should forget the previous wrist")
	}
	if dir, _ := c.Classify(openHand(0.9, 0.5)); dir != core.DirNone {
		t.Errorf("first poll after Reset should not fire, got %v", dir)
	}
}

func TestFrameFirstHandAndMirror(t *testing.T) {
	var empty Frame
	if empty.FirstHand() != nil {
		t.Error("empty frame should have no first hand")
	}

	f := Frame{
		Hands: []HandPose{*openHand(0.2, 0.5), *openHand(0.9, 0.1)},
		Face:  &FaceBox{X: 0.1, Y: 0.1, W: 0.3, H: 0.3},
	}
	if got := f.FirstHand().Point(Wrist); got != (core.Vec2{X: 0.2, Y: 0.5}) {
		t.Errorf("FirstHand wrist = %v", got)
	}

	f.Mirror()
	if got := f.FirstHand().Point(Wrist).X; got < 0.79 || got > 0.81 {
		t.Errorf("mirrored wrist x = %v, expected 0.8", got)
	}
	if f.Face.X < 0.59 || f.Face.X > 0.61 {
		t.Errorf("mirrored face x = %v, expected 0.6", f.Face.X)
	}
}
