// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/2dChan/polyhedra/geometry"
	"github.com/2dChan/polyhedra/topology"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-9
)

// ErrInvalidSolid is returned by Validate.
var ErrInvalidSolid = errors.New("invalid solid")

// Centroid returns the mean of the vertices.
func (p *Polyhedron) Centroid() r3.Vector {
	var c r3.Vector
	for _, v := range p.Vertices {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(p.Vertices)))
}

// SurfaceArea returns the sum of the face areas.
func (p *Polyhedron) SurfaceArea() (float64, error) {
	total := 0.0
	for i, f := range p.Faces {
		a, err := geometry.FaceArea(p.Vertices, f)
		if err != nil {
			return 0, fmt.Errorf("polyhedra: SurfaceArea: %q face %d: %w", p.Name, i, err)
		}
		total += a
	}
	return total, nil
}

// Volume returns the enclosed volume, summing the signed tetrahedra spanned
// by the origin and a fan triangulation of every face.
//
// Space is weighted by its winding number. Solids with self-intersecting
// faces, such as the star prisms and star dipyramids, count the region
// inside their star core once per turn of the star polygon, so the result
// may exceed ConvexHullVolume.
func (p *Polyhedron) Volume() float64 {
	total := 0.0
	for _, f := range p.Faces {
		v0 := p.Vertices[f[0]]
		for i := 1; i+1 < len(f); i++ {
			total += v0.Dot(p.Vertices[f[i]].Cross(p.Vertices[f[i+1]]))
		}
	}
	return total / 6
}

// IsConvex reports whether every vertex lies on or behind every face plane.
func (p *Polyhedron) IsConvex() bool {
	eps := defaultEps * p.Scale
	for _, f := range p.Faces {
		n, err := geometry.Normal(p.Vertices, f)
		if err != nil {
			return false
		}
		origin := p.Vertices[f[0]]
		for _, v := range p.Vertices {
			if n.Dot(v.Sub(origin)) > eps {
				return false
			}
		}
	}
	return true
}

// ConvexHullIndices returns the sorted indices of the vertices lying on the
// convex hull of the solid.
func (p *Polyhedron) ConvexHullIndices() []int {
	ch := p.convexHull()
	seen := make(map[int]struct{}, len(p.Vertices))
	res := make([]int, 0, len(p.Vertices))
	for _, idx := range ch.Indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		res = append(res, idx)
	}
	slices.Sort(res)
	return res
}

// ConvexHullVolume returns the volume of the convex hull of the vertices.
func (p *Polyhedron) ConvexHullVolume() float64 {
	ch := p.convexHull()
	total := 0.0
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		a := p.Vertices[ch.Indices[i]]
		b := p.Vertices[ch.Indices[i+1]]
		c := p.Vertices[ch.Indices[i+2]]
		total += a.Dot(b.Cross(c))
	}
	return math.Abs(total) / 6
}

// NOTE: Indices refer to p.Vertices.
func (p *Polyhedron) convexHull() quickhull.ConvexHull {
	qh := new(quickhull.QuickHull)
	return qh.ConvexHull(p.Vertices, true, true, defaultEps*p.Scale)
}

// Validate checks the invariants every registered solid satisfies:
// Euler characteristic 2, two faces per edge, consistent outward winding,
// centroid at the origin and no vertex beyond the circumradius. Spherical solids
// must have every vertex on the circumsphere, solids with uniform edges
// every edge of length Scale, and convex solids outward normals with all
// vertices on the convex hull.
func (p *Polyhedron) Validate() error {
	eps := defaultEps * p.Scale

	if chi := topology.EulerCharacteristic(p.NumVertices(), p.NumEdges(), p.NumFaces()); chi != 2 {
		return p.invalid("Euler characteristic %d, want 2", chi)
	}
	if !topology.IsManifold(p.Edges, p.Faces) {
		return p.invalid("edges not bounded by exactly two faces")
	}
	if !topology.IsConsistentlyOriented(p.Faces) {
		return p.invalid("faces not consistently oriented")
	}
	if v := p.Volume(); v <= 0 {
		return p.invalid("signed volume %v, want faces wound outwards", v)
	}
	if c := p.Centroid(); c.Norm() > eps {
		return p.invalid("centroid %v, want origin", c)
	}

	r := p.Circumradius()
	for i, v := range p.Vertices {
		d := v.Norm()
		if d > r+eps {
			return p.invalid("vertex %d at distance %v beyond circumradius %v", i, d, r)
		}
		if p.Spherical && math.Abs(d-r) > eps {
			return p.invalid("vertex %d at distance %v, want %v", i, d, r)
		}
	}

	if p.UniformEdges {
		for _, e := range p.Edges {
			if l := geometry.EdgeLength(p.Vertices, e); math.Abs(l-p.Scale) > eps {
				return p.invalid("edge %v length %v, want %v", e, l, p.Scale)
			}
		}
	}

	if p.IsConvex() {
		for i, f := range p.Faces {
			n, err := geometry.Normal(p.Vertices, f)
			if err != nil {
				return p.invalid("face %d: %v", i, err)
			}
			if n.Dot(geometry.Centroid(p.Vertices, f)) <= 0 {
				return p.invalid("face %d normal points inwards", i)
			}
		}
		if hull := p.ConvexHullIndices(); len(hull) != p.NumVertices() {
			return p.invalid("%d of %d vertices on the convex hull", len(hull), p.NumVertices())
		}
	}
	return nil
}

func (p *Polyhedron) invalid(format string, args ...any) error {
	return fmt.Errorf("polyhedra: Validate: %q: %s: %w", p.Name, fmt.Sprintf(format, args...), ErrInvalidSolid)
}
