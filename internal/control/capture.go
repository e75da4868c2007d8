package control

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/registry"
)

// Stats counts what the capture loop has seen.
type Stats struct {
	Polls      uint64
	Misses     uint64 // Polls that failed or saw no hand
	Directions uint64 // Swipes put into the buffer
}

// Capture polls a landmark source, classifies each frame and publishes the
// result into a Buffer.
type Capture struct {
	src        registry.Source
	classifier *gesture.Classifier
	buf        *Buffer
	logger     *log.Logger

	polls      atomic.Uint64
	misses     atomic.Uint64
	directions atomic.Uint64
}

// NewCapture wires a source to a buffer. A nil logger discards output.
func NewCapture(src registry.Source, classifier *gesture.Classifier, buf *Buffer, logger *log.Logger) *Capture {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Capture{
		src:        src,
		classifier: classifier,
		buf:        buf,
		logger:     logger.WithPrefix("capture"),
	}
}

// Run polls until ctx is done or the source ends, then closes the source.
// Transient capture errors are logged and skipped. Run returns nil on a
// normal stop.
func (c *Capture) Run(ctx context.Context) error {
	defer c.src.Close()

	c.logger.Info("capture started", "source", c.src.Name())
	for {
		frame, err := c.src.Poll(ctx)
		if ctx.Err() != nil {
			c.logger.Debug("capture stopped", "polls", c.polls.Load())
			return nil
		}
		c.polls.Add(1)

		switch {
		case errors.Is(err, io.EOF):
			c.logger.Info("landmark stream ended", "polls", c.polls.Load())
			c.buf.SetBoost(false)
			return nil
		case err != nil:
			c.misses.Add(1)
			c.logger.Debug("capture miss", "err", err)
			continue
		}

		c.observe(frame)
	}
}

// observe classifies one frame. Only the first hand steers.
func (c *Capture) observe(frame gesture.Frame) {
	if frame.Face != nil {
		c.logger.Debug("face", "x", frame.Face.X, "y", frame.Face.Y, "w", frame.Face.W, "h", frame.Face.H)
	}

	hand := frame.FirstHand()
	if hand == nil {
		c.misses.Add(1)
	}

	dir, boost := c.classifier.Classify(hand)
	c.buf.SetBoost(boost)
	if dir != core.DirNone {
		c.directions.Add(1)
		c.logger.Debug("swipe", "dir", dir, "boost", boost)
		c.buf.Put(dir)
	}
}

// Stats returns a snapshot of the counters. Safe to call while Run is active.
func (c *Capture) Stats() Stats {
	return Stats{
		Polls:      c.polls.Load(),
		Misses:     c.misses.Load(),
		Directions: c.directions.Load(),
	}
}
