// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package clip intersects simple polygons with the Weiler-Atherton
// algorithm: the boundaries of the two polygons are cut at their pairwise
// segment crossings, and the intersection region is assembled by walking
// one boundary and switching to the other at every crossing.
//
// Polygons must be simple, single-contour, and free of self-intersections;
// winding is normalized internally. Tangential or otherwise degenerate
// contact yields an empty result rather than an error.
package clip

import (
	"github.com/golang/geo/r2"

	"github.com/randomLevelup/planar/geom"
)

// crossing is one intersection of an edge of A with an edge of B, with its
// parametric position along both edges.
type crossing struct {
	pt      r2.Point
	aEdge   int
	aT      float64
	bEdge   int
	bT      float64
	visited bool
}

// EnsureCCW returns poly with counter-clockwise winding, reversing a copy
// if necessary. The input is never mutated.
func EnsureCCW(poly []r2.Point) []r2.Point {
	out := make([]r2.Point, len(poly))
	if geom.SignedArea(poly) < 0 {
		for i, p := range poly {
			out[len(poly)-1-i] = p
		}
	} else {
		copy(out, poly)
	}
	return out
}

// Intersect returns the intersection polygon of the simple polygons a and
// b, or nil when they do not overlap in a region. Coordinates are returned
// rather than indices, since crossings introduce vertices not present in
// either input.
func Intersect(a, b []r2.Point) []r2.Point {
	if len(a) < 3 || len(b) < 3 {
		return nil
	}
	a = EnsureCCW(a)
	b = EnsureCCW(b)

	crossings := findCrossings(a, b)
	if len(crossings) == 0 {
		// Disjoint, or one polygon contains the other.
		if geom.PointInPolygon(b, a[0]) {
			return a
		}
		if geom.PointInPolygon(a, b[0]) {
			return b
		}
		return nil
	}

	return walk(a, b, crossings)
}

func findCrossings(a, b []r2.Point) []*crossing {
	var out []*crossing
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			b1, b2 := b[j], b[(j+1)%len(b)]
			pt, s, t, ok := geom.SegmentIntersection(a1, a2, b1, b2)
			if !ok || s <= 0 || s >= 1 || t <= 0 || t >= 1 {
				// Endpoint contact is tangential, not a boundary crossing.
				continue
			}
			out = append(out, &crossing{pt: pt, aEdge: i, aT: s, bEdge: j, bT: t})
		}
	}
	return out
}

// walk assembles the intersection boundary. Starting at the first crossing,
// it follows one polygon forward to the next crossing on the way, then
// switches to the other polygon, alternating until it returns to the start.
func walk(a, b []r2.Point, crossings []*crossing) []r2.Point {
	start := crossings[0]
	start.visited = true
	pts := []r2.Point{start.pt}

	// Follow whichever polygon's boundary heads into the other polygon.
	onA := aHeadsInside(a, b, crossings, start)
	edge, t := start.aEdge, start.aT
	if !onA {
		edge, t = start.bEdge, start.bT
	}

	// Each step either consumes a crossing or advances one edge, so a
	// closed boundary is found well within this bound; exceeding it means
	// degenerate (e.g. tangential) contact.
	limit := 2 * (len(a) + len(b) + len(crossings))
	for n := 0; n < limit; n++ {
		c := nextCrossing(crossings, onA, edge, t)
		if c == nil {
			// No further crossing on this edge: take its end vertex and
			// move to the next edge.
			poly := a
			if !onA {
				poly = b
			}
			edge = (edge + 1) % len(poly)
			pts = appendVertex(pts, poly[edge])
			t = -1
			continue
		}
		if c == start {
			return finish(pts)
		}
		c.visited = true
		pts = appendVertex(pts, c.pt)
		// Switch boundaries.
		onA = !onA
		if onA {
			edge, t = c.aEdge, c.aT
		} else {
			edge, t = c.bEdge, c.bT
		}
	}
	// Degenerate contact: no closed region.
	return nil
}

// aHeadsInside reports whether a's boundary, leaving start, runs inside b.
func aHeadsInside(a, b []r2.Point, crossings []*crossing, start *crossing) bool {
	from := a[start.aEdge]
	to := a[(start.aEdge+1)%len(a)]
	endT := 1.0
	if c := nextCrossing(crossings, true, start.aEdge, start.aT); c != nil {
		endT = c.aT
	}
	mid := from.Add(to.Sub(from).Mul((start.aT + endT) / 2))
	return geom.PointInPolygon(b, mid)
}

// nextCrossing returns the first crossing on the given edge of A (onA) or B
// strictly past parameter t, skipping visited crossings other than the
// start of the walk.
func nextCrossing(crossings []*crossing, onA bool, edge int, t float64) *crossing {
	var best *crossing
	for _, c := range crossings {
		ce, ct := c.bEdge, c.bT
		if onA {
			ce, ct = c.aEdge, c.aT
		}
		if ce != edge || ct <= t {
			continue
		}
		if c.visited && c != crossings[0] {
			continue
		}
		if best == nil {
			best = c
			continue
		}
		bt := best.bT
		if onA {
			bt = best.aT
		}
		if ct < bt {
			best = c
		}
	}
	return best
}

func appendVertex(pts []r2.Point, p r2.Point) []r2.Point {
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return pts
	}
	return append(pts, p)
}

func finish(pts []r2.Point) []r2.Point {
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	return pts
}
