// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package planar is a 2D computational-geometry kernel: Delaunay
// triangulation, convex hulls, and simple-polygon intersection over shared
// point/index vocabulary. Callers hand in r2.Point slices and receive index
// or edge lists suitable for feeding straight into a renderer.
package planar

import (
	"github.com/golang/geo/r2"

	"github.com/randomLevelup/planar/clip"
	"github.com/randomLevelup/planar/delaunay"
	"github.com/randomLevelup/planar/hull"
)

// TriangulateDelaunay returns the undirected edge list of the Delaunay
// triangulation of points, with indices into the input slice. Fewer than
// three distinct points yield an empty list. A non-nil error reports an
// internal topology violation; no partial result accompanies it.
func TriangulateDelaunay(points []r2.Point) ([][2]int, error) {
	t, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, err
	}
	return t.Edges, nil
}

// ConvexHull returns the convex hull of points as CCW-ordered indices into
// the input slice, first index not repeated at the end.
func ConvexHull(points []r2.Point) []int {
	return hull.ConvexHull(points)
}

// IntersectPolygons returns the intersection region of two simple polygons
// as a new coordinate list, since clipping introduces vertices present in
// neither input. The result is nil when the polygons do not overlap.
func IntersectPolygons(polyA, polyB []r2.Point) []r2.Point {
	return clip.Intersect(polyA, polyB)
}
