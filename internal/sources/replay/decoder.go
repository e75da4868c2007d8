// Package replay reads recorded or piped hand landmarks as newline-delimited
// JSON, optionally zstd-compressed.
//
// Each line is one frame:
//
//	{"t_ms": 33, "hands": [{"landmarks": [[0.5, 0.5], ...]}], "face": {"x": 0.3, "y": 0.2, "w": 0.2, "h": 0.3}}
//
// Landmarks may carry a third (depth) component, which is ignored. Blank
// lines and lines starting with '#' are skipped.
package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/gesture-snake/internal/core"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// minLandmarks is the shortest pose the classifier can read.
const minLandmarks = gesture.IndexTip + 1

type frameLine struct {
	TMillis *int64     `json:"t_ms"`
	Hands   []handLine `json:"hands"`
	Face    *faceLine  `json:"face"`
}

type handLine struct {
	Landmarks [][]float64 `json:"landmarks"`
}

type faceLine struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// ErrRead marks a failure of the underlying reader. Unlike a malformed
// line it ends the stream.
var ErrRead = errors.New("replay: read failed")

// Record is one decoded frame.
type Record struct {
	Frame gesture.Frame
	At    time.Duration // Offset from the start of the stream, valid if Timed
	Timed bool
	Line  int
}

// Decoder reads frames line by line.
type Decoder struct {
	sc     *bufio.Scanner
	mirror bool
	line   int
}

// NewDecoder creates a decoder over r. With mirror set, x coordinates are
// flipped so a front camera reads like a mirror.
func NewDecoder(r io.Reader, mirror bool) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Decoder{sc: sc, mirror: mirror}
}

// Next returns the next frame. io.EOF marks the end of the stream. A
// malformed line returns a Record with only Line set and a non-EOF error;
// decoding can continue afterwards.
func (d *Decoder) Next() (Record, error) {
	for d.sc.Scan() {
		d.line++
		raw := bytes.TrimSpace(d.sc.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}

		rec, err := d.decode(raw)
		if err != nil {
			return Record{Line: d.line}, fmt.Errorf("replay: line %d: %w", d.line, err)
		}
		return rec, nil
	}
	if err := d.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Record{}, io.EOF
}

func (d *Decoder) decode(raw []byte) (Record, error) {
	var fl frameLine
	if err := json.Unmarshal(raw, &fl); err != nil {
		return Record{}, err
	}

	rec := Record{Line: d.line}
	if fl.TMillis != nil {
		rec.At = time.Duration(*fl.TMillis) * time.Millisecond
		rec.Timed = true
	}

	for i, hl := range fl.Hands {
		if len(hl.Landmarks) < minLandmarks {
			return Record{}, fmt.Errorf("hand %d has %d landmarks, need at least %d", i, len(hl.Landmarks), minLandmarks)
		}
		pts := make([]core.Vec2, len(hl.Landmarks))
		for j, lm := range hl.Landmarks {
			if len(lm) < 2 {
				return Record{}, fmt.Errorf("hand %d landmark %d has %d components", i, j, len(lm))
			}
			pts[j] = core.Vec2{X: lm[0], Y: lm[1]}
		}
		rec.Frame.Hands = append(rec.Frame.Hands, gesture.HandPose{Landmarks: pts})
	}

	if fl.Face != nil {
		rec.Frame.Face = &gesture.FaceBox{X: fl.Face.X, Y: fl.Face.Y, W: fl.Face.W, H: fl.Face.H}
	}

	if d.mirror {
		rec.Frame.Mirror()
	}
	return rec, nil
}

// EncodeFrame writes f as one line in the format read by Decoder. Used to
// build recordings and test fixtures.
func EncodeFrame(w io.Writer, f gesture.Frame, at time.Duration) error {
	ms := at.Milliseconds()
	fl := frameLine{TMillis: &ms}
	for _, h := range f.Hands {
		hl := handLine{Landmarks: make([][]float64, len(h.Landmarks))}
		for i, p := range h.Landmarks {
			hl.Landmarks[i] = []float64{p.X, p.Y}
		}
		fl.Hands = append(fl.Hands, hl)
	}
	if f.Face != nil {
		fl.Face = &faceLine{X: f.Face.X, Y: f.Face.Y, W: f.Face.W, H: f.Face.H}
	}

	data, err := json.Marshal(fl)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// openRecording opens path and, for names ending in .zst, a decoder over
// it. zd is nil for uncompressed files.
func openRecording(path string) (f *os.File, zd *zstd.Decoder, err error) {
	f, err = os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("replay: %w", err)
	}
	if !strings.HasSuffix(path, ".zst") {
		return f, nil, nil
	}
	zd, err = zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("replay: zstd: %w", err)
	}
	return f, zd, nil
}

// OpenFile opens a recording for sequential reading, decompressing files
// whose name ends in .zst.
func OpenFile(path string) (io.ReadCloser, error) {
	f, zd, err := openRecording(path)
	if err != nil {
		return nil, err
	}
	if zd == nil {
		return f, nil
	}
	return &zstdFile{Decoder: zd, file: f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	file *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.file.Close()
}
