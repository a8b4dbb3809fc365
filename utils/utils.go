// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seeded random directions and orientations for
// viewing and testing polyhedra.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// RandomAxes generates cnt random unit vectors.
// The seed parameter ensures reproducibility.
func RandomAxes(cnt int, seed int64) []r3.Vector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	axes := make([]r3.Vector, cnt)

	for i := range cnt {
		axes[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(math.Asin(random.Float64()*2 - 1)),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		}).Vector
	}

	return axes
}

// RandomOrientation returns rotation angles about the X, Y and Z axes,
// each uniform in [0, 360) degrees.
// The seed parameter ensures reproducibility.
func RandomOrientation(seed int64) [3]float64 {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	var res [3]float64
	for i := range res {
		res[i] = random.Float64() * 360
	}
	return res
}
