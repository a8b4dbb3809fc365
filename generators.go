// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Parametric families. n is the number of polygon sides, m the star skip.
//
// Vertex layout: rings are listed one after another, each starting at
// azimuth 0 (plus the ring offset) and turning counter-clockwise seen from
// +Z; apexes follow the rings, top first.
const (
	Prism         = "prism"
	Antiprism     = "antiprism"
	TwistedPrism  = "twisted_prism"
	Trapezohedron = "trapezohedron"
	StarPrism     = "star_prism"
	StarDipyramid = "star_dipyramid"
)

const (
	minSides     = 3
	minStarSides = 5
)

type shape struct {
	vertices     []r3.Vector
	faces        [][]int
	circumradius float64
	uniformEdges bool
}

type generator func(n, m int) (shape, error)

func parametricEntries() map[string]entry {
	type spec struct {
		gen       generator
		spherical bool
	}
	specs := map[string]spec{
		Prism:         {prism, true},
		Antiprism:     {antiprism, true},
		TwistedPrism:  {twistedPrism, true},
		Trapezohedron: {trapezohedron, false},
		StarPrism:     {starPrism, true},
		StarDipyramid: {starDipyramid, true},
	}

	res := make(map[string]entry, len(specs))
	for name, s := range specs {
		gen := s.gen
		res[name] = entry{
			family:    FamilyParametric,
			spherical: s.spherical,
			vertices: func(n, m int) ([]r3.Vector, error) {
				sh, err := gen(n, m)
				return sh.vertices, err
			},
			faces: func(n, m int) ([][]int, error) {
				sh, err := gen(n, m)
				return sh.faces, err
			},
			circumradius: func(n, m int) (float64, error) {
				sh, err := gen(n, m)
				return sh.circumradius, err
			},
			uniformEdges: func(n, m int) bool {
				sh, err := gen(n, m)
				return err == nil && sh.uniformEdges
			},
		}
	}
	return res
}

// polygonCircumradius returns the circumradius of the regular star polygon
// {n/m} with unit edges; m = 1 gives the convex n-gon.
func polygonCircumradius(n, m int) float64 {
	return 1 / (2 * math.Sin(float64(m)*math.Pi/float64(n)))
}

func ring(n int, r, z, offset float64) []r3.Vector {
	res := make([]r3.Vector, n)
	for k := range n {
		a := 2*math.Pi*float64(k)/float64(n) + offset
		res[k] = r3.Vector{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
	}
	return res
}

// capFaces returns the bottom cap wound clockwise and the top cap wound
// counter-clockwise seen from +Z, for two rings of n vertices.
func capFaces(n int) ([]int, []int) {
	bottom := make([]int, n)
	top := make([]int, n)
	for k := range n {
		bottom[k] = (n - k) % n
		top[k] = n + k
	}
	return bottom, top
}

func validateSides(fn string, n int) error {
	if n < minSides {
		return fmt.Errorf("%s: n = %d, want >= %d: %w", fn, n, minSides, ErrInvalidParameter)
	}
	return nil
}

// validateStar accepts {n/m} with 1 < m < n/2 and gcd(n, m) = 1, the
// connected non-degenerate star polygons.
func validateStar(fn string, n, m int) error {
	if n < minStarSides {
		return fmt.Errorf("%s: n = %d, want >= %d: %w", fn, n, minStarSides, ErrInvalidParameter)
	}
	if m <= 1 || 2*m >= n {
		return fmt.Errorf("%s: m = %d, want 1 < m < %d/2: %w", fn, m, n, ErrInvalidParameter)
	}
	if gcd(n, m) != 1 {
		return fmt.Errorf("%s: {%d/%d} is a compound, want gcd(n, m) = 1: %w", fn, n, m, ErrInvalidParameter)
	}
	return nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func prism(n, _ int) (shape, error) {
	if err := validateSides(Prism, n); err != nil {
		return shape{}, err
	}
	r := polygonCircumradius(n, 1)

	vertices := append(ring(n, r, -0.5, 0), ring(n, r, 0.5, 0)...)
	bottom, top := capFaces(n)
	faces := [][]int{bottom, top}
	for k := range n {
		k1 := (k + 1) % n
		faces = append(faces, []int{k, k1, n + k1, n + k})
	}

	return shape{
		vertices:     vertices,
		faces:        faces,
		circumradius: math.Hypot(r, 0.5),
		uniformEdges: true,
	}, nil
}

func antiprism(n, _ int) (shape, error) {
	if err := validateSides(Antiprism, n); err != nil {
		return shape{}, err
	}
	r := polygonCircumradius(n, 1)
	h := math.Sqrt(1 - 2*r*r*(1-math.Cos(math.Pi/float64(n))))

	vertices := append(ring(n, r, -h/2, 0), ring(n, r, h/2, math.Pi/float64(n))...)
	bottom, top := capFaces(n)
	faces := [][]int{bottom, top}
	for k := range n {
		k1 := (k + 1) % n
		faces = append(faces,
			[]int{k, k1, n + k},
			[]int{n + k, k1, n + k1},
		)
	}

	return shape{
		vertices:     vertices,
		faces:        faces,
		circumradius: math.Hypot(r, h/2),
		uniformEdges: true,
	}, nil
}

// twistedPrism builds a prism whose top ring is turned by half the
// antiprism twist. Each side is split along the diagonal running against
// the twist, which makes the side edges reflex (the Schönhardt polyhedron
// for n = 3).
func twistedPrism(n, _ int) (shape, error) {
	if err := validateSides(TwistedPrism, n); err != nil {
		return shape{}, err
	}
	r := polygonCircumradius(n, 1)
	twist := math.Pi / float64(2*n)

	vertices := append(ring(n, r, -0.5, 0), ring(n, r, 0.5, twist)...)
	bottom, top := capFaces(n)
	faces := [][]int{bottom, top}
	for k := range n {
		k1 := (k + 1) % n
		faces = append(faces,
			[]int{k, k1, n + k1},
			[]int{k, n + k1, n + k},
		)
	}

	return shape{
		vertices:     vertices,
		faces:        faces,
		circumradius: math.Hypot(r, 0.5),
	}, nil
}

// trapezohedron builds the dual of the uniform n-gonal antiprism, scaled so
// that the edges meeting at the apexes have unit length. The zigzag edges
// around the middle are shorter for n > 3; n = 3 is the unit cube.
func trapezohedron(n, _ int) (shape, error) {
	if err := validateSides(Trapezohedron, n); err != nil {
		return shape{}, err
	}
	ra := polygonCircumradius(n, 1)
	c := math.Cos(math.Pi / float64(n))
	ha := math.Sqrt(1 - 2*ra*ra*(1-c))

	rho := 2 / (ra * (1 + c))
	z := 2 * (1 - c) / (ha * (1 + c))
	h := 2 / ha
	scale := math.Hypot(rho, h-z)
	rho, z, h = rho/scale, z/scale, h/scale

	vertices := append(ring(n, rho, z, 0), ring(n, rho, -z, math.Pi/float64(n))...)
	vertices = append(vertices, r3.Vector{X: 0, Y: 0, Z: h}, r3.Vector{X: 0, Y: 0, Z: -h})

	top, bottom := 2*n, 2*n+1
	faces := make([][]int, 0, 2*n)
	for k := range n {
		faces = append(faces, []int{top, k, n + k, (k + 1) % n})
	}
	for k := range n {
		k1 := (k + 1) % n
		faces = append(faces, []int{bottom, n + k1, k1, n + k})
	}

	return shape{
		vertices:     vertices,
		faces:        faces,
		circumradius: max(h, math.Hypot(rho, z)),
		uniformEdges: n == 3,
	}, nil
}

// starOrder returns the ring indices in the order the star polygon {n/m}
// visits them.
func starOrder(n, m int) []int {
	res := make([]int, n)
	for k := range n {
		res[k] = (k * m) % n
	}
	return res
}

func starPrism(n, m int) (shape, error) {
	if err := validateStar(StarPrism, n, m); err != nil {
		return shape{}, err
	}
	r := polygonCircumradius(n, m)
	order := starOrder(n, m)

	vertices := append(ring(n, r, -0.5, 0), ring(n, r, 0.5, 0)...)
	top := make([]int, n)
	bottom := make([]int, n)
	for k, idx := range order {
		top[k] = n + idx
		bottom[(n-k)%n] = idx
	}
	faces := [][]int{top, bottom}
	for _, a := range order {
		b := (a + m) % n
		faces = append(faces, []int{a, b, n + b, n + a})
	}

	return shape{
		vertices:     vertices,
		faces:        faces,
		circumradius: math.Hypot(r, 0.5),
		uniformEdges: true,
	}, nil
}

// starDipyramid places the apexes at the star circumradius, so every vertex
// lies on one sphere; {4/1} would be the unit octahedron.
func starDipyramid(n, m int) (shape, error) {
	if err := validateStar(StarDipyramid, n, m); err != nil {
		return shape{}, err
	}
	r := polygonCircumradius(n, m)
	order := starOrder(n, m)

	vertices := append(ring(n, r, 0, 0), r3.Vector{X: 0, Y: 0, Z: r}, r3.Vector{X: 0, Y: 0, Z: -r})
	top, bottom := n, n+1
	faces := make([][]int, 0, 2*n)
	for _, a := range order {
		faces = append(faces, []int{top, a, (a + m) % n})
	}
	for _, a := range order {
		faces = append(faces, []int{bottom, (a + m) % n, a})
	}

	return shape{
		vertices:     vertices,
		faces:        faces,
		circumradius: r,
	}, nil
}
