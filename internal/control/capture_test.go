package control

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// scriptedSource replays a fixed list of polls, then io.EOF.
type scriptedSource struct {
	polls  []poll
	closed bool
}

type poll struct {
	frame gesture.Frame
	err   error
}

func (s *scriptedSource) Name() string { return "scripted" }

func (s *scriptedSource) Poll(ctx context.Context) (gesture.Frame, error) {
	if err := ctx.Err(); err != nil {
		return gesture.Frame{}, err
	}
	if len(s.polls) == 0 {
		return gesture.Frame{}, io.EOF
	}
	p := s.polls[0]
	s.polls = s.polls[1:]
	return p.frame, p.err
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

func hand(x, y float64, pinched bool) gesture.Frame {
	gap := 0.10
	if pinched {
		gap = 0.02
	}
	wrist := core.Vec2{X: x, Y: y}
	thumb := core.Vec2{X: x, Y: y - 0.2}
	index := core.Vec2{X: x + gap, Y: y - 0.2}
	return gesture.Frame{Hands: []gesture.HandPose{gesture.NewPose(wrist, thumb, index)}}
}

func TestCaptureClassifiesIntoBuffer(t *testing.T) {
	src := &scriptedSource{polls: []poll{
		{frame: hand(0.5, 0.5, false)},
		{err: errors.New("camera hiccup")},
		{frame: hand(0.5, 0.3, true)}, // Up, pinched
	}}
	buf := NewBuffer()
	c := NewCapture(src, gesture.NewClassifier(0.05, 0.05), buf, nil)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !src.closed {
		t.Error("source should be closed when Run returns")
	}

	if d := buf.Take(); d != core.DirUp {
		t.Errorf("got %v, expected UP", d)
	}
	// End of stream releases the boost
	if buf.Boost() {
		t.Error("boost should be cleared at end of stream")
	}

	st := c.Stats()
	if st.Polls != 4 || st.Misses != 1 || st.Directions != 1 {
		t.Errorf("stats = %+v", st)
	}
}

func TestCaptureBoostFollowsLatestPoll(t *testing.T) {
	src := &scriptedSource{polls: []poll{
		{frame: hand(0.5, 0.5, true)},
	}}
	buf := NewBuffer()
	c := NewCapture(src, gesture.NewClassifier(0.05, 0.05), buf, nil)

	c.observe(hand(0.5, 0.5, true))
	if !buf.Boost() {
		t.Error("pinch should set boost")
	}
	c.observe(gesture.Frame{})
	if buf.Boost() {
		t.Error("a frame without a hand should clear boost")
	}
	if d := buf.Take(); d != core.DirNone {
		t.Errorf("no swipe expected, got %v", d)
	}
}

func TestCaptureHandDropoutKeepsReference(t *testing.T) {
	buf := NewBuffer()
	c := NewCapture(&scriptedSource{}, gesture.NewClassifier(0.05, 0.05), buf, nil)

	c.observe(hand(0.5, 0.5, false))
	c.observe(gesture.Frame{})
	c.observe(hand(0.7, 0.5, false))

	if d := buf.Take(); d != core.DirRight {
		t.Errorf("got %v, expected RIGHT across the dropout", d)
	}
}

// blockingSource never produces a frame.
type blockingSource struct{ closed chan struct{} }

func (s *blockingSource) Name() string { return "blocking" }

func (s *blockingSource) Poll(ctx context.Context) (gesture.Frame, error) {
	<-ctx.Done()
	return gesture.Frame{}, ctx.Err()
}

func (s *blockingSource) Close() error {
	close(s.closed)
	return nil
}

func TestCaptureStopsOnCancel(t *testing.T) {
	src := &blockingSource{closed: make(chan struct{})}
	c := NewCapture(src, gesture.NewClassifier(0, 0), NewBuffer(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()

	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() = %v, expected nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	select {
	case <-src.closed:
	default:
		t.Error("source not closed")
	}
}
