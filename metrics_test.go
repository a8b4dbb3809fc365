// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"errors"
	"math"
	"testing"

	"github.com/2dChan/polyhedra/topology"
	"github.com/golang/geo/r3"
)

func TestPolyhedron_Volume(t *testing.T) {
	tests := []struct {
		id      string
		setters []Option
		want    float64
	}{
		{"tetrahedron", nil, math.Sqrt2 / 12},
		{"hexahedron", nil, 1},
		{"octahedron", nil, math.Sqrt2 / 3},
		{"dodecahedron", nil, (15 + 7*math.Sqrt(5)) / 4},
		{"icosahedron", nil, 5 * (3 + math.Sqrt(5)) / 12},
		{"hexahedron", []Option{WithEdgeLength(2)}, 8},
		{Prism, []Option{WithN(6)}, 3 * math.Sqrt(3) / 2},
		{Trapezohedron, []Option{WithN(3)}, 1},
		{StarPrism, []Option{WithN(5), WithM(2)}, starArea(5, 2)},
		{StarPrism, []Option{WithN(9), WithM(2)}, starArea(9, 2)},
		{StarPrism, []Option{WithN(9), WithM(4)}, starArea(9, 4)},
		{StarDipyramid, []Option{WithN(7), WithM(3)}, starArea(7, 3) * 2 * starRadius(7, 3) / 3},
		{StarDipyramid, []Option{WithN(9), WithM(2)}, starArea(9, 2) * 2 * starRadius(9, 2) / 3},
	}
	for _, tt := range tests {
		p := mustNew(t, tt.id, tt.setters...)
		if got := p.Volume(); math.Abs(got-tt.want) > epsilon {
			t.Errorf("New(%q).Volume() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestPolyhedron_Volume_StarExceedsHull(t *testing.T) {
	p := mustNew(t, StarPrism, WithN(9), WithM(2))
	if volume, hull := p.Volume(), p.ConvexHullVolume(); volume <= hull {
		t.Errorf("Volume() = %v, want > ConvexHullVolume() = %v for a doubly wound cap", volume, hull)
	}
}

func TestPolyhedron_SurfaceArea(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{"tetrahedron", math.Sqrt(3)},
		{"hexahedron", 6},
		{"octahedron", 2 * math.Sqrt(3)},
		{"dodecahedron", 3 * math.Sqrt(25+10*math.Sqrt(5))},
		{"icosahedron", 5 * math.Sqrt(3)},
		{"cuboctahedron", 6 + 2*math.Sqrt(3)},
	}
	for _, tt := range tests {
		p := mustNew(t, tt.id)
		got, err := p.SurfaceArea()
		if err != nil {
			t.Fatalf("New(%q).SurfaceArea() error = %v, want nil", tt.id, err)
		}
		if math.Abs(got-tt.want) > epsilon {
			t.Errorf("New(%q).SurfaceArea() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestPolyhedron_ConvexHull(t *testing.T) {
	for _, tc := range invariantCases() {
		t.Run(tc.name, func(t *testing.T) {
			p := mustNew(t, tc.id, tc.setters...)
			if c := p.Centroid(); c.Norm() > epsilon {
				t.Errorf("Centroid() = %v, want origin", c)
			}
			if got := len(p.ConvexHullIndices()); got != p.NumVertices() {
				t.Errorf("len(ConvexHullIndices()) = %v, want %v", got, p.NumVertices())
			}

			volume, hull := p.Volume(), p.ConvexHullVolume()
			if volume <= 0 {
				t.Errorf("Volume() = %v, want positive", volume)
			}
			if p.IsConvex() {
				if math.Abs(volume-hull) > epsilon*hull {
					t.Errorf("Volume() = %v, ConvexHullVolume() = %v, want equal", volume, hull)
				}
				return
			}
			// Star caps wind around their core more than once, so the
			// weighted volume may exceed the hull.
			if tc.id == StarPrism || tc.id == StarDipyramid {
				return
			}
			if hull <= volume {
				t.Errorf("ConvexHullVolume() = %v, want > Volume() = %v", hull, volume)
			}
		})
	}
}

func TestPolyhedron_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		corrupt func(*Polyhedron)
	}{
		{"missing face", "hexahedron", func(p *Polyhedron) {
			p.Faces = p.Faces[1:]
		}},
		{"flipped face", "hexahedron", func(p *Polyhedron) {
			f := p.Faces[0]
			for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
				f[i], f[j] = f[j], f[i]
			}
		}},
		{"off center", "icosahedron", func(p *Polyhedron) {
			for i := range p.Vertices {
				p.Vertices[i] = p.Vertices[i].Add(r3.Vector{X: 0.1, Y: 0, Z: 0})
			}
		}},
		{"circumradius too small", "octahedron", func(p *Polyhedron) {
			p.CircumradiusFactor /= 2
		}},
		{"not spherical", "triakis_tetrahedron", func(p *Polyhedron) {
			p.Spherical = true
		}},
		{"uneven edges", "triakis_tetrahedron", func(p *Polyhedron) {
			p.UniformEdges = true
		}},
		{"inward faces", "tetrahedron", func(p *Polyhedron) {
			for _, f := range p.Faces {
				f[1], f[2] = f[2], f[1]
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, tt.id)
			tt.corrupt(p)
			p.Edges = topology.AllEdges(p.Faces)
			if err := p.Validate(); !errors.Is(err, ErrInvalidSolid) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidSolid)
			}
		})
	}
}

func starRadius(n, m int) float64 {
	return 1 / (2 * math.Sin(float64(m)*math.Pi/float64(n)))
}

// starArea returns the winding-weighted area of the unit-edge star polygon
// {n/m}: n triangles from the center, each of angle 2πm/n.
func starArea(n, m int) float64 {
	r := starRadius(n, m)
	return float64(n) / 2 * r * r * math.Sin(2*math.Pi*float64(m)/float64(n))
}
