// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"github.com/randomLevelup/planar/geom"
)

// The two sentinel points bound the seed triangle so that every real point
// has a containing triangle, including points on the eventual hull. They
// have no coordinates: predicates involving them reduce to comparisons
// under a symbolic total order (y-major, ties broken by descending x) in
// which sentinelHigh exceeds every real point and sentinelLow is below
// every real point. This is equivalent to placing sentinelLow at (-R², -R)
// and sentinelHigh at (+R⁴, +R²) for arbitrarily large R, so every
// predicate below is the exact limit of an ordinary orientation or
// in-circle test on that concrete placement.
const (
	sentinelHigh = -1
	sentinelLow  = -2
)

// above reports whether real point i precedes real point j in the symbolic
// order: strictly greater y, or equal y and strictly smaller x. For the
// distinct points the engine works with, !above(i, j) means strictly below.
func (e *engine) above(i, j int) bool {
	pi, pj := e.pts[i], e.pts[j]
	if pi.Y != pj.Y {
		return pi.Y > pj.Y
	}
	return pi.X < pj.X
}

// leftOf reports whether real point p lies strictly to the left of the
// directed edge a->b, where a and b may be sentinels.
func (e *engine) leftOf(p, a, b int) bool {
	switch {
	case a >= 0 && b >= 0:
		return geom.Orient(e.pts[a], e.pts[b], e.pts[p]) > 0
	case a == sentinelLow && b == sentinelHigh:
		return true
	case a == sentinelHigh && b == sentinelLow:
		return false
	case b == sentinelHigh:
		return e.above(p, a)
	case a == sentinelHigh:
		return !e.above(p, b)
	case b == sentinelLow:
		return !e.above(p, a)
	default: // a == sentinelLow
		return e.above(p, b)
	}
}

// Containment classification for point location.
const (
	outside = -1 - iota
	inside
)

// classify locates real point p against triangle t. It returns inside,
// outside, or the index (0..2) of the edge of t that p lies exactly on.
// On-edge contact only occurs on an edge between two real vertices; the
// symbolic comparisons against sentinels are strict.
func (e *engine) classify(t triKey, p int) int {
	onEdge := inside
	for i := 0; i < 3; i++ {
		a, b := t[i], t[(i+1)%3]
		if e.leftOf(p, a, b) {
			continue
		}
		if a >= 0 && b >= 0 && geom.Orient(e.pts[a], e.pts[b], e.pts[p]) == 0 {
			// On the supporting line; the other two half-plane tests
			// restrict this to the edge segment itself.
			onEdge = i
			continue
		}
		return outside
	}
	return onEdge
}

// legal applies the Delaunay legality test to the edge (i, j) with far
// vertex k on the j->i face and near vertex l on the i->j face, where l is
// always the real point whose insertion queued the edge. With all four
// points real the edge is illegal iff k lies strictly inside the
// circumcircle of CCW (i, j, l). Sentinels sit at symbolic infinity, which
// settles the remaining cases exactly:
//
//   - A sentinel far vertex lies outside every finite circumcircle, so an
//     edge between real points is never flipped toward a sentinel.
//   - A circumcircle through a sentinel edge endpoint degenerates to the
//     line through the edge's real endpoint and l, with its interior on
//     the sentinel's side of that line. The two sentinel directions are
//     opposite, so a sentinel far vertex is always outside it, and a real
//     far vertex is inside iff it falls on the sentinel's side.
//
// Which side of x->l a sentinel falls on reduces to the symbolic order:
// sentinelHigh dominates toward +x, so it sits right of x->l exactly when
// l is above x, and sentinelLow mirrors it.
func (e *engine) legal(i, j, k, l int) bool {
	if i >= 0 && j >= 0 {
		if k < 0 {
			return true
		}
		return !geom.InCircle(e.pts[i], e.pts[j], e.pts[l], e.pts[k])
	}
	if k < 0 {
		return true
	}
	x, s := i, j
	if i < 0 {
		x, s = j, i
	}
	side := geom.Orient(e.pts[x], e.pts[l], e.pts[k])
	if side == 0 {
		return true
	}
	right := e.above(l, x)
	if s == sentinelLow {
		right = !right
	}
	if right {
		return side > 0
	}
	return side < 0
}

// seedBoundary reports whether (i, j) is an edge of the seed triangle:
// both sentinels, or a sentinel paired with the highest point. These edges
// are never flipped.
func (e *engine) seedBoundary(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	return j < 0 || (i < 0 && j == e.high)
}
