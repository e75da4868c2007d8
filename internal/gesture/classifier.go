package gesture

import (
	"math"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// Default thresholds in normalized image units.
const (
	DefaultMovementThreshold = 0.05
	DefaultPinchThreshold    = 0.05
)

// Classifier detects swipes from inter-frame wrist motion and pinches from
// the thumb/index tip distance. It is not safe for concurrent use; the
// capture loop owns it.
type Classifier struct {
	movementThreshold float64
	pinchThreshold    float64

	prev    core.Vec2
	hasPrev bool
}

// NewClassifier creates a classifier. Non-positive thresholds fall back to
// the defaults.
func NewClassifier(movementThreshold, pinchThreshold float64) *Classifier {
	if movementThreshold <= 0 {
		movementThreshold = DefaultMovementThreshold
	}
	if pinchThreshold <= 0 {
		pinchThreshold = DefaultPinchThreshold
	}
	return &Classifier{
		movementThreshold: movementThreshold,
		pinchThreshold:    pinchThreshold,
	}
}

// Classify consumes one poll. A nil hand yields (DirNone, false) and leaves
// the stored wrist alone so a dropout does not corrupt the next delta.
func (c *Classifier) Classify(hand *HandPose) (core.Direction, bool) {
	if hand == nil {
		return core.DirNone, false
	}
	boost := c.Pinched(hand)
	return c.swipe(hand.Point(Wrist)), boost
}

// Pinched reports whether the thumb and index tips are closer than the pinch
// threshold. It depends on the current pose only.
func (c *Classifier) Pinched(hand *HandPose) bool {
	return core.Dist(hand.Point(ThumbTip), hand.Point(IndexTip)) < c.pinchThreshold
}

// swipe compares the wrist against the previous poll. The previous position
// is always replaced, so only per-poll velocity counts, never slow drift.
func (c *Classifier) swipe(current core.Vec2) core.Direction {
	if !c.hasPrev {
		c.prev, c.hasPrev = current, true
		return core.DirNone
	}

	delta := current.Sub(c.prev)
	c.prev = current

	ax, ay := math.Abs(delta.X), math.Abs(delta.Y)
	if ax <= c.movementThreshold && ay <= c.movementThreshold {
		return core.DirNone
	}

	if ax > ay {
		if delta.X > 0 {
			return core.DirRight
		}
		return core.DirLeft
	}
	if delta.Y > 0 {
		return core.DirDown
	}
	return core.DirUp
}

// Previous returns the last observed wrist position, if any.
func (c *Classifier) Previous() (core.Vec2, bool) {
	return c.prev, c.hasPrev
}

// Reset forgets the previous wrist position.
func (c *Classifier) Reset() {
	c.prev, c.hasPrev = core.Vec2{}, false
}
