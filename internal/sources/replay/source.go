package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/registry"
)

// Registered source names.
const (
	NameReplay = "replay"
	NameStdin  = "stdin"
)

func init() {
	registry.Register(NameReplay, "recorded landmarks from a .jsonl or .jsonl.zst file (--landmarks)", func(opts registry.Options) (registry.Source, error) {
		if opts.Path == "" {
			return nil, errors.New("no recording given, use --landmarks <file>")
		}
		return Open(opts.Path, opts.Loop, opts.Config)
	})
	registry.Register(NameStdin, "landmarks piped from an external tracker on standard input", func(opts registry.Options) (registry.Source, error) {
		if opts.Loop {
			return nil, errors.New("standard input cannot be rewound")
		}
		in := opts.Stdin
		if in == nil {
			in = os.Stdin
		}
		return NewStream(NameStdin, in, opts.Config), nil
	})
}

type result struct {
	rec     Record
	err     error
	rewound bool
}

// Source plays back a landmark stream at its recorded pace. Reading happens
// on a background goroutine so Poll can always observe cancellation.
type Source struct {
	name     string
	mirror   bool
	loop     bool
	interval time.Duration

	file *os.File      // Nil for streams
	zdec *zstd.Decoder // Nil for uncompressed input

	records  chan result
	done     chan struct{}
	doneOnce sync.Once

	// Pacing state, touched only by Poll
	origin time.Time
	last   time.Time
}

// Open opens a recording. Files ending in .zst are decompressed on the fly.
// With loop set, the recording restarts when it ends.
func Open(path string, loop bool, cfg config.Config) (*Source, error) {
	f, zd, err := openRecording(path)
	if err != nil {
		return nil, err
	}

	s := newSource(NameReplay, cfg)
	s.loop = loop
	s.file = f
	s.zdec = zd

	var r io.Reader = f
	if zd != nil {
		r = zd
	}

	go s.read(r)
	return s, nil
}

// NewStream plays frames from r as they arrive. It never loops.
func NewStream(name string, r io.Reader, cfg config.Config) *Source {
	s := newSource(name, cfg)
	go s.read(r)
	return s
}

func newSource(name string, cfg config.Config) *Source {
	rate := max(cfg.Capture.PollRate, 1)
	return &Source{
		name:     name,
		mirror:   cfg.Capture.Mirror,
		interval: time.Second / time.Duration(rate),
		records:  make(chan result),
		done:     make(chan struct{}),
	}
}

// Name returns the registered source name.
func (s *Source) Name() string {
	return s.name
}

// read decodes the stream until it ends or the source is closed.
func (s *Source) read(r io.Reader) {
	defer close(s.records)
	if s.zdec != nil {
		defer s.zdec.Close()
	}

	rewound := false
	for {
		dec := NewDecoder(r, s.mirror)
		frames := 0
		for {
			rec, err := dec.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if !s.send(result{rec: rec, err: err, rewound: rewound}) {
				return
			}
			if errors.Is(err, ErrRead) {
				return
			}
			rewound = false
			frames++
		}

		// An empty recording would spin forever
		if !s.loop || s.file == nil || frames == 0 {
			return
		}
		if err := s.rewind(); err != nil {
			s.send(result{err: err})
			return
		}
		if s.zdec != nil {
			r = s.zdec
		} else {
			r = s.file
		}
		rewound = true
	}
}

func (s *Source) rewind() error {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind: %w", ErrRead, err)
	}
	if s.zdec != nil {
		if err := s.zdec.Reset(s.file); err != nil {
			return fmt.Errorf("%w: rewind: %w", ErrRead, err)
		}
	}
	return nil
}

func (s *Source) send(r result) bool {
	select {
	case s.records <- r:
		return true
	case <-s.done:
		return false
	}
}

// Poll returns the next frame once it is due. A malformed line yields an
// empty frame with an error; the end of the stream yields io.EOF.
func (s *Source) Poll(ctx context.Context) (gesture.Frame, error) {
	var (
		res result
		ok  bool
	)
	select {
	case <-ctx.Done():
		return gesture.Frame{}, ctx.Err()
	case <-s.done:
		return gesture.Frame{}, io.EOF
	case res, ok = <-s.records:
	}
	if !ok {
		return gesture.Frame{}, io.EOF
	}

	if err := s.wait(ctx, s.due(res)); err != nil {
		return gesture.Frame{}, err
	}
	return res.rec.Frame, res.err
}

// due computes when a frame should be delivered. Timed frames keep their
// recorded spacing; untimed ones follow the poll rate.
func (s *Source) due(res result) time.Time {
	now := time.Now()
	if s.last.IsZero() || res.rewound {
		s.origin = now.Add(-res.rec.At)
		s.last = now
		return now
	}

	due := s.last.Add(s.interval)
	if res.rec.Timed {
		due = s.origin.Add(res.rec.At)
	}
	s.last = due
	return due
}

func (s *Source) wait(ctx context.Context, until time.Time) error {
	d := time.Until(until)
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return io.EOF
	case <-timer.C:
		return nil
	}
}

// Close stops playback and releases the file. A blocked read on a stream
// that is not a file returns only when its writer closes.
func (s *Source) Close() error {
	var err error
	s.doneOnce.Do(func() {
		close(s.done)
		if s.file != nil {
			err = s.file.Close()
		}
	})
	return err
}
