// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func TestOrient(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 2, Y: 0}

	tests := []struct {
		name string
		c    r2.Point
		sign int
	}{
		{"left of a->b", r2.Point{X: 1, Y: 1}, 1},
		{"right of a->b", r2.Point{X: 1, Y: -1}, -1},
		{"collinear between", r2.Point{X: 1, Y: 0}, 0},
		{"collinear beyond", r2.Point{X: 5, Y: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Orient(a, b, tt.c)
			gotSign := 0
			if got > 0 {
				gotSign = 1
			} else if got < 0 {
				gotSign = -1
			}
			if gotSign != tt.sign {
				t.Errorf("Orient(%v, %v, %v) = %v, want sign %v", a, b, tt.c, got, tt.sign)
			}
		})
	}
}

func TestIsCCW(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	c := r2.Point{X: 0, Y: 1}
	if !IsCCW(a, b, c) {
		t.Errorf("IsCCW(%v, %v, %v) = false, want true", a, b, c)
	}
	if IsCCW(a, c, b) {
		t.Errorf("IsCCW(%v, %v, %v) = true, want false", a, c, b)
	}
}

func TestPointInTriangle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 4, Y: 0}
	c := r2.Point{X: 0, Y: 4}

	tests := []struct {
		name string
		p    r2.Point
		want bool
	}{
		{"inside", r2.Point{X: 1, Y: 1}, true},
		{"outside", r2.Point{X: 3, Y: 3}, false},
		{"on edge", r2.Point{X: 2, Y: 0}, true},
		{"on vertex", r2.Point{X: 0, Y: 0}, true},
		{"far away", r2.Point{X: -1, Y: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInTriangle(tt.p, a, b, c); got != tt.want {
				t.Errorf("PointInTriangle(%v, ...) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 10, Y: 0}

	tests := []struct {
		name string
		p    r2.Point
		want float64
	}{
		{"above middle", r2.Point{X: 5, Y: 3}, 3},
		{"beyond end", r2.Point{X: 13, Y: 4}, 5},
		{"before start", r2.Point{X: -3, Y: 4}, 5},
		{"on segment", r2.Point{X: 7, Y: 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SegmentDistance(tt.p, a, b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("SegmentDistance(%v, %v, %v) = %v, want %v", tt.p, a, b, got, tt.want)
			}
		})
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 r2.Point
		wantPt         r2.Point
		wantOK         bool
	}{
		{
			"crossing",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 2},
			r2.Point{X: 0, Y: 2}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 1, Y: 1}, true,
		},
		{
			"parallel",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 0, Y: 1}, r2.Point{X: 2, Y: 1},
			r2.Point{}, false,
		},
		{
			"collinear overlap",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 1, Y: 0}, r2.Point{X: 3, Y: 0},
			r2.Point{}, false,
		},
		{
			"segments too short",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1},
			r2.Point{X: 3, Y: 0}, r2.Point{X: 3, Y: 5},
			r2.Point{}, false,
		},
		{
			"endpoint touch",
			r2.Point{X: 0, Y: 0}, r2.Point{X: 2, Y: 0},
			r2.Point{X: 2, Y: 0}, r2.Point{X: 2, Y: 2},
			r2.Point{X: 2, Y: 0}, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt, s, tpar, ok := SegmentIntersection(tt.p1, tt.p2, tt.q1, tt.q2)
			if ok != tt.wantOK {
				t.Fatalf("SegmentIntersection(...) ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if pt != tt.wantPt {
				t.Errorf("SegmentIntersection(...) pt = %v, want %v", pt, tt.wantPt)
			}
			if s < 0 || s > 1 || tpar < 0 || tpar > 1 {
				t.Errorf("SegmentIntersection(...) params = %v, %v, want both in [0,1]", s, tpar)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	// Circumcircle of this CCW triangle is the unit circle about the origin.
	a := r2.Point{X: 1, Y: 0}
	b := r2.Point{X: 0, Y: 1}
	c := r2.Point{X: -1, Y: 0}

	tests := []struct {
		name string
		d    r2.Point
		want bool
	}{
		{"center", r2.Point{X: 0, Y: 0}, true},
		{"inside off-center", r2.Point{X: 0.3, Y: -0.4}, true},
		{"outside", r2.Point{X: 2, Y: 0}, false},
		{"on circle", r2.Point{X: 0, Y: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InCircle(a, b, c, tt.d); got != tt.want {
				t.Errorf("InCircle(a, b, c, %v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestSignedArea(t *testing.T) {
	square := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if got := SignedArea(square); got != 2 {
		t.Errorf("SignedArea(ccw square) = %v, want 2", got)
	}
	reversed := []r2.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if got := SignedArea(reversed); got != -2 {
		t.Errorf("SignedArea(cw square) = %v, want -2", got)
	}
}

func TestPointInPolygon(t *testing.T) {
	// Concave "L" shape.
	poly := []r2.Point{
		{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 0, Y: 3},
	}

	tests := []struct {
		name string
		p    r2.Point
		want bool
	}{
		{"in lower arm", r2.Point{X: 2, Y: 0.5}, true},
		{"in upper arm", r2.Point{X: 0.5, Y: 2}, true},
		{"in notch", r2.Point{X: 2, Y: 2}, false},
		{"outside", r2.Point{X: 4, Y: 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointInPolygon(poly, tt.p); got != tt.want {
				t.Errorf("PointInPolygon(poly, %v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
