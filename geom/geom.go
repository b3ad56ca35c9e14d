// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the planar geometric predicates shared by the
// triangulation, hull, and clipping packages. All predicates operate on
// r2.Point coordinates.
package geom

import (
	"github.com/golang/geo/r2"
)

// Cross returns the 2D cross product a.X*b.Y - a.Y*b.X, i.e. twice the
// signed area of the triangle (0, a, b).
func Cross(a, b r2.Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Orient returns a positive value when c lies to the left of the directed
// line a->b, negative when to the right, and zero when the three points are
// collinear.
func Orient(a, b, c r2.Point) float64 {
	return Cross(b.Sub(a), c.Sub(a))
}

// IsCCW reports whether the triangle (a, b, c) winds counter-clockwise.
func IsCCW(a, b, c r2.Point) bool {
	return Orient(a, b, c) > 0
}

// PointInTriangle reports whether p lies inside or on the boundary of the
// CCW triangle (a, b, c).
func PointInTriangle(p, a, b, c r2.Point) bool {
	return Orient(a, b, p) >= 0 && Orient(b, c, p) >= 0 && Orient(c, a, p) >= 0
}

// SegmentParam returns the parameter t of the projection of p onto the
// segment a->b, clamped to [0, 1]. A zero-length segment projects to t=0.
func SegmentParam(p, a, b r2.Point) float64 {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return 0
	}
	t := p.Sub(a).Dot(d) / lenSq
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SegmentDistance returns the distance from p to the segment a->b.
func SegmentDistance(p, a, b r2.Point) float64 {
	t := SegmentParam(p, a, b)
	closest := a.Add(b.Sub(a).Mul(t))
	return p.Sub(closest).Norm()
}

// SegmentIntersection intersects the segments p1->p2 and q1->q2. It returns
// the intersection point together with its parametric position s along
// p1->p2 and t along q1->q2, both in [0, 1]. ok is false for parallel or
// non-crossing segments.
func SegmentIntersection(p1, p2, q1, q2 r2.Point) (pt r2.Point, s, t float64, ok bool) {
	r := p2.Sub(p1)
	d := q2.Sub(q1)
	den := Cross(r, d)
	if den == 0 {
		// Parallel or collinear. Collinear overlap is a degenerate
		// tangential contact and reported as no intersection.
		return r2.Point{}, 0, 0, false
	}
	qp := q1.Sub(p1)
	s = Cross(qp, d) / den
	t = Cross(qp, r) / den
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return r2.Point{}, 0, 0, false
	}
	return p1.Add(r.Mul(s)), s, t, true
}

// InCircle reports whether d lies strictly inside the circumcircle of the
// CCW triangle (a, b, c), via the standard 3x3 determinant over the vectors
// a-d, b-d, c-d and their squared norms.
func InCircle(a, b, c, d r2.Point) bool {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-by*cx) -
		(bx*bx+by*by)*(ax*cy-ay*cx) +
		(cx*cx+cy*cy)*(ax*by-ay*bx)
	return det > 0
}

// SignedArea returns twice the signed area of the polygon. Positive for CCW
// winding.
func SignedArea(poly []r2.Point) float64 {
	var area float64
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += Cross(poly[i], poly[j])
	}
	return area
}

// PointInPolygon reports whether p lies inside the simple polygon, by ray
// casting. Points exactly on the boundary may be classified either way.
func PointInPolygon(poly []r2.Point, p r2.Point) bool {
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}
