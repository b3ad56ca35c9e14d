// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull provides two independent convex hull constructions over the
// same contract: given a point slice, return the hull as CCW-ordered
// indices into it, without repeating the first index at the end. Fewer than
// three points yield nil; fully collinear input collapses to the two
// extreme points under both builders.
package hull

import (
	"sort"

	"github.com/golang/geo/r2"

	"github.com/randomLevelup/planar/geom"
)

// ConvexHull computes the convex hull of points. It is an alias for
// MonotoneChain.
func ConvexHull(points []r2.Point) []int {
	return MonotoneChain(points)
}

// MonotoneChain computes the hull with Andrew's sort-and-sweep in
// O(n log n): indices are sorted by (x, y), a lower and an upper chain are
// built by popping non-left turns, and the chains are concatenated with the
// seam points dropped once.
func MonotoneChain(points []r2.Point) []int {
	n := len(points)
	if n < 3 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		a, b := points[idx[i]], points[idx[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	chain := func(ordered []int) []int {
		var out []int
		for _, i := range ordered {
			for len(out) >= 2 &&
				geom.Orient(points[out[len(out)-2]], points[out[len(out)-1]], points[i]) <= 0 {
				out = out[:len(out)-1]
			}
			out = append(out, i)
		}
		return out
	}

	lower := chain(idx)
	reversed := make([]int, n)
	for i, v := range idx {
		reversed[n-1-i] = v
	}
	upper := chain(reversed)

	// Each chain ends where the other begins.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 2 {
		// All points coincide.
		return nil
	}
	return hull
}

// QuickHull computes the hull by divide and conquer: the extreme-x points
// split the set into an upper and a lower side, and each side is refined
// recursively around its farthest point. Expected O(n log n); adversarial
// inputs can degrade to O(n²), which is accepted.
func QuickHull(points []r2.Point) []int {
	n := len(points)
	if n < 3 {
		return nil
	}

	lo, hi := 0, 0
	for i, p := range points {
		q := points[lo]
		if p.X < q.X || (p.X == q.X && p.Y < q.Y) {
			lo = i
		}
		q = points[hi]
		if p.X > q.X || (p.X == q.X && p.Y > q.Y) {
			hi = i
		}
	}
	if lo == hi {
		return nil
	}

	var upper, lower []int
	for i := range points {
		if i == lo || i == hi {
			continue
		}
		if geom.Orient(points[lo], points[hi], points[i]) > 0 {
			upper = append(upper, i)
		} else if geom.Orient(points[lo], points[hi], points[i]) < 0 {
			lower = append(lower, i)
		}
	}

	// CCW boundary walks each arc with the interior on its left, so the
	// points between a and b in walking order are those to the right of
	// the directed chord a->b: the lower arc for lo->hi, the upper arc
	// for hi->lo.
	hull := []int{lo}
	hull = quickSide(points, lo, hi, lower, hull)
	hull = append(hull, hi)
	hull = quickSide(points, hi, lo, upper, hull)
	return hull
}

// quickSide appends, in walking order from a to b, the hull points among
// candidates lying right of the chord a->b, exclusive of a and b.
func quickSide(points []r2.Point, a, b int, candidates []int, hull []int) []int {
	if len(candidates) == 0 {
		return hull
	}

	far := candidates[0]
	farDist := geom.SegmentDistance(points[far], points[a], points[b])
	for _, i := range candidates[1:] {
		if d := geom.SegmentDistance(points[i], points[a], points[b]); d > farDist {
			far, farDist = i, d
		}
	}

	var nearA, nearB []int
	for _, i := range candidates {
		if i == far {
			continue
		}
		if geom.Orient(points[a], points[far], points[i]) < 0 {
			nearA = append(nearA, i)
		} else if geom.Orient(points[far], points[b], points[i]) < 0 {
			nearB = append(nearB, i)
		}
	}

	hull = quickSide(points, a, far, nearA, hull)
	hull = append(hull, far)
	return quickSide(points, far, b, nearB, hull)
}
