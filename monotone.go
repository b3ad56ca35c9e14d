// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package planar

import (
	"sort"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/randomLevelup/planar/geom"
)

// TriangulateMonotone triangulates a point set by building one simple
// y-monotone polygon through every point and sweeping it with the classic
// two-chain stack algorithm. The set is split along the line through its
// two vertical extremes: points left of the line form the descending
// chain, points right of it the ascending one. Each chain keeps to its own
// half-plane, so no two chain edges can cross and the cycle is simple for
// any distinct, non-collinear input. The output is a deduplicated
// undirected edge list over input indices.
//
// This is cheaper and more uniform than the Delaunay engine but makes no
// empty-circumcircle guarantee; it exists for consumers that only need some
// triangulation of the set.
func TriangulateMonotone(points []r2.Point) ([][2]int, error) {
	pts, orig := dedupPoints(points)
	if len(pts) < 3 {
		return nil, nil
	}
	if allCollinear(pts) {
		return nil, nil
	}

	top, bottom := 0, 0
	for i := 1; i < len(pts); i++ {
		if yOrderAbove(pts[i], pts[top]) {
			top = i
		}
		if yOrderAbove(pts[bottom], pts[i]) {
			bottom = i
		}
	}

	// Points exactly on the split line join the left chain, so the right
	// chain stays strictly inside its half-plane and the chains only meet
	// at the shared extremes.
	var left, right []int
	for i := range pts {
		if i == top || i == bottom {
			continue
		}
		if geom.Orient(pts[bottom], pts[top], pts[i]) < 0 {
			right = append(right, i)
		} else {
			left = append(left, i)
		}
	}
	sort.Slice(right, func(i, j int) bool { return yOrderAbove(pts[right[j]], pts[right[i]]) })
	sort.Slice(left, func(i, j int) bool { return yOrderAbove(pts[left[i]], pts[left[j]]) })

	// Up the right side, across the top, down the left side: CCW.
	poly := make([]int, 0, len(pts))
	poly = append(poly, bottom)
	poly = append(poly, right...)
	poly = append(poly, top)
	poly = append(poly, left...)

	tris, err := sweepMonotone(pts, poly)
	if err != nil {
		return nil, err
	}

	edgeSet := make(map[[2]int]struct{})
	for _, tri := range tris {
		for i := 0; i < 3; i++ {
			a, b := orig[tri[i]], orig[tri[(i+1)%3]]
			if a > b {
				a, b = b, a
			}
			edgeSet[[2]int{a, b}] = struct{}{}
		}
	}
	edges := make([][2]int, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges, nil
}

func dedupPoints(points []r2.Point) ([]r2.Point, []int) {
	seen := make(map[r2.Point]struct{}, len(points))
	var pts []r2.Point
	var orig []int
	for i, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
		orig = append(orig, i)
	}
	return pts, orig
}

func allCollinear(pts []r2.Point) bool {
	for i := 2; i < len(pts); i++ {
		if geom.Orient(pts[0], pts[1], pts[i]) != 0 {
			return false
		}
	}
	return true
}

// yOrderAbove is the y-major order used along the chains: greater y, ties
// broken by smaller x. It is a strict total order over distinct points.
func yOrderAbove(a, b r2.Point) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}
	return a.X < b.X
}

// sweepMonotone triangulates the y-monotone polygon given as a cycle of
// indices into pts, using the classic two-chain stack sweep. Triangles come
// back CCW (degenerate slivers from collinear runs may have zero area).
func sweepMonotone(pts []r2.Point, poly []int) ([][3]int, error) {
	n := len(poly)
	if n < 3 {
		return nil, nil
	}
	if n == 3 {
		return [][3]int{{poly[0], poly[1], poly[2]}}, nil
	}

	// Locate the top vertex of the cycle.
	top := 0
	for i := 1; i < n; i++ {
		if yOrderAbove(pts[poly[i]], pts[poly[top]]) {
			top = i
		}
	}

	// Merge the two chains from the top, recording left-chain membership.
	// The bottom vertex is handled separately at the end.
	sorted := make([]int, 0, n)
	sorted = append(sorted, poly[top])
	onLeft := make(map[int]bool, n)
	leftOff, rightOff := 1, 1
	var bottom int
	for {
		l := poly[((top+leftOff)%n+n)%n]
		r := poly[((top-rightOff)%n+n)%n]
		if l == r {
			bottom = l
			break
		}
		if yOrderAbove(pts[l], pts[r]) {
			onLeft[l] = true
			sorted = append(sorted, l)
			leftOff++
		} else {
			sorted = append(sorted, r)
			rightOff++
		}
	}

	var tris [][3]int
	emit := func(a, b, c int) error {
		if geom.Orient(pts[a], pts[b], pts[c]) < 0 {
			return errors.Errorf("planar: clockwise triangle (%d, %d, %d) in monotone sweep", a, b, c)
		}
		tris = append(tris, [3]int{a, b, c})
		return nil
	}

	stack := []int{sorted[0], sorted[1]}
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := onLeft[p]
		if left != onLeft[stack[len(stack)-1]] {
			// Opposite chain: every stacked point is visible from p.
			for len(stack) > 0 {
				a := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					break
				}
				b := stack[len(stack)-1]
				var err error
				if left {
					err = emit(p, a, b)
				} else {
					err = emit(a, p, b)
				}
				if err != nil {
					return nil, err
				}
			}
			stack = append(stack, sorted[i-1], p)
		} else {
			// Same chain: pop while the diagonal stays inside.
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for len(stack) > 0 {
				q := stack[len(stack)-1]
				var a, b, c int
				if left {
					a, b, c = p, q, v
				} else {
					a, b, c = p, v, q
				}
				if geom.Orient(pts[a], pts[b], pts[c]) <= 0 {
					break
				}
				tris = append(tris, [3]int{a, b, c})
				v = q
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, v, p)
		}
	}

	// Fan the remaining stack from the bottom vertex.
	if len(stack) > 0 {
		l := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var err error
			if onLeft[l] {
				err = emit(bottom, p, l)
			} else {
				err = emit(bottom, l, p)
			}
			if err != nil {
				return nil, err
			}
			l = p
		}
	}
	return tris, nil
}
