// Copyright (c) 2026 randomLevelup
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets
// and polygons for tests, benchmarks, and examples.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates a slice of random points in the unit
// square. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := 0; i < cnt; i++ {
		points[i] = r2.Point{
			X: random.Float64(),
			Y: random.Float64(),
		}
	}

	return points
}

// GenerateRandomPolygon generates a simple polygon with cnt vertices by
// sweeping CCW around the origin with random angular steps and radii.
func GenerateRandomPolygon(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))

	steps := make([]float64, cnt)
	total := 0.0
	for i := 0; i < cnt; i++ {
		steps[i] = 0.1 + random.Float64()
		total += steps[i]
	}

	points := make([]r2.Point, cnt)
	angle := 0.0
	for i := 0; i < cnt; i++ {
		angle += steps[i] / total * 2 * math.Pi
		r := 0.2 + 0.8*random.Float64()
		points[i] = r2.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
	}

	return points
}
