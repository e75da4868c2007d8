package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Point{5, 5}, true},
		{"origin", Point{0, 0}, true},
		{"last cell", Point{19, 14}, true},
		{"right edge (exclusive)", Point{20, 5}, false},
		{"bottom edge (exclusive)", Point{5, 15}, false},
		{"negative x", Point{-1, 5}, false},
		{"negative y", Point{5, -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.p); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestVec2Dist(t *testing.T) {
	a := Vec2{X: 0.5, Y: 0.5}
	b := Vec2{X: 0.53, Y: 0.54}

	if got := Dist(a, b); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("Dist() = %v, expected 0.05", got)
	}
	if got := Dist(a, a); got != 0 {
		t.Errorf("Dist(a, a) = %v, expected 0", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := []struct{ a, b Direction }{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if !p.a.IsOpposite(p.b) || !p.b.IsOpposite(p.a) {
			t.Errorf("%v and %v should be opposite", p.a, p.b)
		}
	}
	if DirUp.IsOpposite(DirLeft) {
		t.Error("UP and LEFT are not opposite")
	}
	if DirNone.IsOpposite(DirNone) {
		t.Error("None has no opposite")
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Point{5, 5}
	tests := map[Direction]Point{
		DirUp:    {5, 4},
		DirDown:  {5, 6},
		DirLeft:  {4, 5},
		DirRight: {6, 5},
		DirNone:  {5, 5},
	}
	for d, want := range tests {
		dx, dy := d.Delta()
		if got := start.Add(dx, dy); got != want {
			t.Errorf("%v: stepped to %v, expected %v", d, got, want)
		}
	}
}

func TestParseDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if got := ParseDirection(d.String()); got != d {
			t.Errorf("ParseDirection(%q) = %v", d.String(), got)
		}
	}
	if got := ParseDirection("diagonal"); got != DirNone {
		t.Errorf("unknown name should parse to None, got %v", got)
	}
}
