// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geometry derives numeric properties of polyhedron faces from
// vertex coordinates. Faces are index lists into a vertex slice, assumed
// planar and wound counter-clockwise when seen from outside, so that the
// normal of the first three vertices points out of the solid.
//
// All angles are in degrees.
package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/polyhedra/topology"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	spatial "gonum.org/v1/gonum/spatial/r3"
)

const (
	degenerateEps = 1e-12
)

var (
	// ErrDegenerate is returned when a normal or direction cannot be
	// computed because the points involved are collinear or coincide.
	ErrDegenerate = errors.New("geometry: degenerate geometry")
	// ErrNotAdjacent is returned when two faces do not share an edge.
	ErrNotAdjacent = errors.New("geometry: faces do not share an edge")
)

// canonicalNormal is the normal of a face lying flat on the XY plane and
// facing down, the orientation every face is rotated from.
var canonicalNormal = r3.Vector{X: 0, Y: 0, Z: -1}

// Rotation is a rotation by Angle degrees about Axis, right-handed.
type Rotation struct {
	Angle float64
	Axis  r3.Vector
}

// Apply rotates v.
func (r Rotation) Apply(v r3.Vector) r3.Vector {
	return Rotate(v, r.Angle, r.Axis)
}

// Centroid returns the arithmetic mean of the vertices of face.
func Centroid(vertices []r3.Vector, face []int) r3.Vector {
	var c r3.Vector
	for _, idx := range face {
		c = c.Add(vertices[idx])
	}
	return c.Mul(1 / float64(len(face)))
}

// Normal returns the unit normal of face computed from its first three
// vertices.
func Normal(vertices []r3.Vector, face []int) (r3.Vector, error) {
	if len(face) < 3 {
		return r3.Vector{}, fmt.Errorf("Normal: face %v has fewer than 3 vertices: %w", face, ErrDegenerate)
	}
	p0, p1, p2 := vertices[face[0]], vertices[face[1]], vertices[face[2]]
	e0, e1 := p1.Sub(p0), p2.Sub(p1)
	n := e0.Cross(e1)
	if n.Norm() <= degenerateEps*e0.Norm()*e1.Norm() {
		return r3.Vector{}, fmt.Errorf("Normal: face %v: collinear leading vertices: %w", face, ErrDegenerate)
	}
	return n.Normalize(), nil
}

// Orientation returns the rotation taking the downward normal (0, 0, -1)
// onto normal. A normal parallel to the Z axis yields a rotation about X
// by 0 or 180 degrees.
func Orientation(normal r3.Vector) (Rotation, error) {
	if normal.Norm() < degenerateEps {
		return Rotation{}, fmt.Errorf("Orientation: zero normal: %w", ErrDegenerate)
	}
	n := normal.Normalize()
	angle := acosDegrees(n.Dot(canonicalNormal))
	axis := canonicalNormal.Cross(n)
	if axis.Norm() < degenerateEps {
		axis = r3.Vector{X: 1, Y: 0, Z: 0}
		if n.Z < 0 {
			angle = 0
		} else {
			angle = 180
		}
		return Rotation{Angle: angle, Axis: axis}, nil
	}
	return Rotation{Angle: angle, Axis: axis.Normalize()}, nil
}

// FaceOrientation returns the orientation of the normal of face.
func FaceOrientation(vertices []r3.Vector, face []int) (Rotation, error) {
	n, err := Normal(vertices, face)
	if err != nil {
		return Rotation{}, err
	}
	return Orientation(n)
}

// RegularInradius returns the inradius of a regular k-gon with unit edges.
func RegularInradius(k int) float64 {
	return 1 / (2 * math.Tan(math.Pi/float64(k)))
}

// RegularCircumradius returns the circumradius of a regular k-gon with unit
// edges.
func RegularCircumradius(k int) float64 {
	return 1 / (2 * math.Sin(math.Pi/float64(k)))
}

// DihedralAngle returns the interior angle between two faces sharing an
// edge, 180 degrees for a flat pair.
func DihedralAngle(vertices []r3.Vector, f1, f2 []int) (float64, error) {
	if _, ok := SharedEdge(f1, f2); !ok {
		return 0, fmt.Errorf("DihedralAngle: %v and %v: %w", f1, f2, ErrNotAdjacent)
	}
	n1, err := Normal(vertices, f1)
	if err != nil {
		return 0, err
	}
	n2, err := Normal(vertices, f2)
	if err != nil {
		return 0, err
	}
	return acosDegrees(-n1.Dot(n2)), nil
}

// PartialDihedralAngle returns the angle, measured inside the solid,
// between f1 and the plane through the edge it shares with f2 and the
// origin.
func PartialDihedralAngle(vertices []r3.Vector, f1, f2 []int) (float64, error) {
	e, ok := SharedEdge(f1, f2)
	if !ok {
		return 0, fmt.Errorf("PartialDihedralAngle: %v and %v: %w", f1, f2, ErrNotAdjacent)
	}
	a, b := vertices[e[0]], vertices[e[1]]
	dir := b.Sub(a)
	if dir.Norm() < degenerateEps {
		return 0, fmt.Errorf("PartialDihedralAngle: zero length edge %v: %w", e, ErrDegenerate)
	}
	dir = dir.Normalize()

	toFace := perpendicular(Centroid(vertices, f1).Sub(a), dir)
	toCenter := perpendicular(a.Mul(-1), dir)
	if toFace.Norm() < degenerateEps || toCenter.Norm() < degenerateEps {
		return 0, fmt.Errorf("PartialDihedralAngle: edge %v passes through the center: %w", e, ErrDegenerate)
	}
	return acosDegrees(toFace.Normalize().Dot(toCenter.Normalize())), nil
}

// SharedEdge returns the first edge of f1 that also bounds f2.
func SharedEdge(f1, f2 []int) (topology.Edge, bool) {
	n := len(f1)
	for i := range n {
		e := topology.Edge{f1[i], f1[(i+1)%n]}
		if topology.IsFaceEdge(f2, e) {
			return e, true
		}
	}
	return topology.Edge{}, false
}

// EdgeLength returns the euclidean length of e.
func EdgeLength(vertices []r3.Vector, e topology.Edge) float64 {
	return vertices[e[0]].Distance(vertices[e[1]])
}

// FaceEdgeLengths returns the lengths of the edges of face; the i-th value
// is the edge from face[i] to face[i+1].
func FaceEdgeLengths(vertices []r3.Vector, face []int) []float64 {
	n := len(face)
	res := make([]float64, n)
	for i := range n {
		res[i] = EdgeLength(vertices, topology.Edge{face[i], face[(i+1)%n]})
	}
	return res
}

// FaceVertexAngles returns the angle of face at each of its vertices.
func FaceVertexAngles(vertices []r3.Vector, face []int) []float64 {
	n := len(face)
	res := make([]float64, n)
	for i := range n {
		p := vertices[face[i]]
		prv := vertices[face[(i+n-1)%n]].Sub(p)
		nxt := vertices[face[(i+1)%n]].Sub(p)
		res[i] = prv.Angle(nxt).Degrees()
	}
	return res
}

// FaceArea returns the area of face. The face is projected onto the plane
// spanned by its first edge and normal × first edge, then measured with
// the shoelace formula.
func FaceArea(vertices []r3.Vector, face []int) (float64, error) {
	n, err := Normal(vertices, face)
	if err != nil {
		return 0, err
	}
	origin := vertices[face[0]]
	u := vertices[face[1]].Sub(origin).Normalize()
	w := n.Cross(u)

	sum := 0.0
	k := len(face)
	for i := range k {
		p := vertices[face[i]].Sub(origin)
		q := vertices[face[(i+1)%k]].Sub(origin)
		sum += p.Dot(u)*q.Dot(w) - q.Dot(u)*p.Dot(w)
	}
	return math.Abs(sum) / 2, nil
}

// Rotate rotates v by angle degrees about axis.
func Rotate(v r3.Vector, angle float64, axis r3.Vector) r3.Vector {
	if angle == 0 || axis.Norm() < degenerateEps {
		return v
	}
	rad := (s1.Angle(angle) * s1.Degree).Radians()
	rot := spatial.NewRotation(rad, toSpatial(axis.Normalize()))
	return fromSpatial(rot.Rotate(toSpatial(v)))
}

// AlignToPole returns the vertices rotated about the origin so that
// vertices[v] lies on the positive Z axis.
func AlignToPole(vertices []r3.Vector, v int) ([]r3.Vector, error) {
	if v < 0 || v >= len(vertices) {
		return nil, fmt.Errorf("AlignToPole: vertex %d out of range [0 %d)", v, len(vertices))
	}
	p := vertices[v]
	if p.Norm() < degenerateEps {
		return nil, fmt.Errorf("AlignToPole: vertex %d at the origin: %w", v, ErrDegenerate)
	}
	pole := r3.Vector{X: 0, Y: 0, Z: 1}
	p = p.Normalize()

	angle := acosDegrees(p.Dot(pole))
	axis := p.Cross(pole)
	if axis.Norm() < degenerateEps {
		axis = r3.Vector{X: 1, Y: 0, Z: 0}
	}

	res := make([]r3.Vector, len(vertices))
	for i, q := range vertices {
		res[i] = Rotate(q, angle, axis)
	}
	return res, nil
}

func perpendicular(v, dir r3.Vector) r3.Vector {
	return v.Sub(dir.Mul(v.Dot(dir)))
}

func acosDegrees(x float64) float64 {
	return s1.Angle(math.Acos(max(-1, min(1, x)))).Degrees()
}

func toSpatial(v r3.Vector) spatial.Vec {
	return spatial.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

func fromSpatial(v spatial.Vec) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
