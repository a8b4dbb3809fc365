// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import "math"

var (
	// Phi is the golden ratio (1 + √5) / 2.
	Phi = (1 + math.Sqrt(5)) / 2

	// Tribonacci is the real root of t³ = t² + t + 1. It appears in the
	// coordinates and circumradius of the snub cube.
	Tribonacci = (1 + math.Cbrt(19+3*math.Sqrt(33)) + math.Cbrt(19-3*math.Sqrt(33))) / 3

	// SnubDodecahedronXi is the real root of ξ³ - 2ξ = φ used by the snub
	// dodecahedron coordinates.
	SnubDodecahedronXi = snubDodecahedronXi()
)

func snubDodecahedronXi() float64 {
	x := 1.7
	for range 64 {
		x -= (x*x*x - 2*x - Phi) / (3*x*x - 2)
	}
	return x
}
