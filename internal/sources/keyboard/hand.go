// Package keyboard provides a virtual hand for playing without a tracker.
// Key presses jerk the wrist like a real swipe; between polls the wrist
// creeps back to the center slower than the gesture threshold, so the
// return trip is never classified.
package keyboard

import (
	"context"
	"io"
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/registry"
)

// Name is the registered source name.
const Name = "keyboard"

// Fingertip gaps in normalized units, one on each side of the pinch threshold.
const (
	pinchedGap = 0.03
	openGap    = 0.10
)

var center = core.Vec2{X: 0.5, Y: 0.5}

func init() {
	registry.Register(Name, "virtual hand steered with arrow keys, space to pinch", func(opts registry.Options) (registry.Source, error) {
		return New(opts.Config), nil
	})
}

// Hand is a keyboard-driven landmark source. Swipe and TogglePinch may be
// called from the UI goroutine while the capture loop polls.
type Hand struct {
	mu         sync.Mutex
	wrist      core.Vec2
	pinched    bool
	closed     bool
	swipe      float64
	returnStep float64

	interval time.Duration
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a virtual hand at the center of the frame.
func New(cfg config.Config) *Hand {
	rate := max(cfg.Capture.PollRate, 1)
	return &Hand{
		wrist:      center,
		swipe:      cfg.VirtualHand.Swipe,
		returnStep: cfg.VirtualHand.ReturnStep,
		interval:   time.Second / time.Duration(rate),
		done:       make(chan struct{}),
	}
}

// Name returns the registered source name.
func (h *Hand) Name() string {
	return Name
}

// Swipe jerks the wrist one swipe length in d, clamped to the frame.
func (h *Hand) Swipe(d core.Direction) {
	dx, dy := d.Delta()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.wrist.X = core.ClampF(h.wrist.X+float64(dx)*h.swipe, 0, 1)
	h.wrist.Y = core.ClampF(h.wrist.Y+float64(dy)*h.swipe, 0, 1)
}

// TogglePinch closes or opens the thumb and index finger.
func (h *Hand) TogglePinch() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pinched = !h.pinched
}

// Pinched reports the current pinch state.
func (h *Hand) Pinched() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pinched
}

// Poll waits one poll interval and returns the current pose.
func (h *Hand) Poll(ctx context.Context) (gesture.Frame, error) {
	timer := time.NewTimer(h.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return gesture.Frame{}, ctx.Err()
	case <-h.done:
		return gesture.Frame{}, io.EOF
	case <-timer.C:
	}

	return h.sample()
}

// sample returns the pose and then lets the wrist drift toward the center.
func (h *Hand) sample() (gesture.Frame, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return gesture.Frame{}, io.EOF
	}

	pose := h.pose()
	h.wrist.X = approach(h.wrist.X, center.X, h.returnStep)
	h.wrist.Y = approach(h.wrist.Y, center.Y, h.returnStep)

	return gesture.Frame{Hands: []gesture.HandPose{pose}}, nil
}

// pose builds the landmarks for the current wrist. Caller holds mu.
func (h *Hand) pose() gesture.HandPose {
	gap := openGap
	if h.pinched {
		gap = pinchedGap
	}
	thumb := core.Vec2{X: h.wrist.X - 0.05, Y: h.wrist.Y - 0.15}
	index := core.Vec2{X: thumb.X + gap, Y: thumb.Y}
	return gesture.NewPose(h.wrist, thumb, index)
}

// Close stops polling. Pending and later polls return io.EOF.
func (h *Hand) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.doneOnce.Do(func() { close(h.done) })
	return nil
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	d := target - v
	if math.Abs(d) <= step {
		return target
	}
	if d > 0 {
		return v + step
	}
	return v - step
}
