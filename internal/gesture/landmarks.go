// Package gesture turns per-frame hand landmarks into coarse directional and
// boost signals.
package gesture

import "github.com/vovakirdan/gesture-snake/internal/core"

// Hand landmark indices following the MediaPipe hand model.
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// HandPose is one tracked hand: normalized landmarks with x and y in [0, 1],
// y growing downward. Sources must supply at least IndexTip+1 points.
type HandPose struct {
	Landmarks []core.Vec2
}

// Point returns landmark i.
func (h *HandPose) Point(i int) core.Vec2 {
	return h.Landmarks[i]
}

// FaceBox is a detected face bounding box in normalized coordinates.
// It is decorative only.
type FaceBox struct {
	X, Y, W, H float64
}

// Frame is the result of one poll of a landmark source.
type Frame struct {
	Hands []HandPose
	Face  *FaceBox
}

// FirstHand returns the hand that gets classified, or nil when none was seen.
func (f Frame) FirstHand() *HandPose {
	if len(f.Hands) == 0 {
		return nil
	}
	return &f.Hands[0]
}

// Mirror flips every x coordinate (x -> 1-x) in place so that motion to the
// user's right reads as RIGHT on a front-facing camera.
func (f *Frame) Mirror() {
	for h := range f.Hands {
		pts := f.Hands[h].Landmarks
		for i := range pts {
			pts[i].X = 1 - pts[i].X
		}
	}
	if f.Face != nil {
		f.Face.X = 1 - f.Face.X - f.Face.W
	}
}

// NewPose builds a full 21-point pose with every landmark at the wrist
// position except the thumb and index tips. Useful for synthetic sources.
func NewPose(wrist, thumbTip, indexTip core.Vec2) HandPose {
	pts := make([]core.Vec2, NumLandmarks)
	for i := range pts {
		pts[i] = wrist
	}
	pts[ThumbTip] = thumbTip
	pts[IndexTip] = indexTip
	return HandPose{Landmarks: pts}
}
