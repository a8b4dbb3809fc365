// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"fmt"

	"github.com/2dChan/polyhedra/geometry"
	"github.com/2dChan/polyhedra/topology"
	"github.com/golang/geo/r3"
)

// Face is a view structure for accessing a face of a Polyhedron.
type Face struct {
	idx int
	p   *Polyhedron
}

// Index returns the index of the face in the Polyhedron's Faces.
func (f Face) Index() int {
	return f.idx
}

// NumVertices returns the number of vertices of the face.
// This equals the number of edges.
func (f Face) NumVertices() int {
	return len(f.p.Faces[f.idx])
}

// VertexIndices returns the indices of the face's vertices in the
// Polyhedron's Vertices, counter-clockwise seen from outside.
func (f Face) VertexIndices() []int {
	return f.p.Faces[f.idx]
}

// Vertex returns the vertex at the specified position of the face.
// It returns an error if the index is out of range.
func (f Face) Vertex(i int) (r3.Vector, error) {
	face := f.p.Faces[f.idx]
	if i < 0 || i >= len(face) {
		return r3.Vector{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, len(face))
	}
	return f.p.Vertices[face[i]], nil
}

// Edges returns the edges bounding the face.
func (f Face) Edges() []topology.Edge {
	return topology.EdgesConnectedToFace(f.p.Edges, f.p.Faces[f.idx])
}

// Center returns the centroid of the face.
func (f Face) Center() r3.Vector {
	return geometry.Centroid(f.p.Vertices, f.p.Faces[f.idx])
}

// Normal returns the outward unit normal.
func (f Face) Normal() (r3.Vector, error) {
	return geometry.Normal(f.p.Vertices, f.p.Faces[f.idx])
}

func (f Face) Orientation() (geometry.Rotation, error) {
	return geometry.FaceOrientation(f.p.Vertices, f.p.Faces[f.idx])
}

// Inradius returns the inradius of the face assuming it is regular.
func (f Face) Inradius() float64 {
	return f.p.Scale * geometry.RegularInradius(f.NumVertices())
}

// Circumradius returns the circumradius of the face assuming it is regular.
func (f Face) Circumradius() float64 {
	return f.p.Scale * geometry.RegularCircumradius(f.NumVertices())
}

func (f Face) Area() (float64, error) {
	return geometry.FaceArea(f.p.Vertices, f.p.Faces[f.idx])
}

func (f Face) EdgeLengths() []float64 {
	return geometry.FaceEdgeLengths(f.p.Vertices, f.p.Faces[f.idx])
}

func (f Face) VertexAngles() []float64 {
	return geometry.FaceVertexAngles(f.p.Vertices, f.p.Faces[f.idx])
}

// NumNeighbors returns the number of faces sharing an edge with the face.
func (f Face) NumNeighbors() int {
	return len(f.NeighborIndices())
}

// NeighborIndices returns the indices of the faces across each edge of the
// face, in face order: the i-th neighbor shares the edge from vertex i to
// vertex i+1.
func (f Face) NeighborIndices() []int {
	return topology.FacesConnectedToFace(f.p.Edges, f.p.Faces, f.idx)
}

// Neighbor returns the neighboring face at the specified index.
// It returns an error if the index is out of range.
func (f Face) Neighbor(i int) (Face, error) {
	ns := f.NeighborIndices()
	if i < 0 || i >= len(ns) {
		return Face{}, fmt.Errorf("Neighbor: index %d out of range [0 %d)", i, len(ns))
	}
	return f.p.Face(ns[i])
}

// DihedralAngle returns the dihedral angle between the face and o.
func (f Face) DihedralAngle(o Face) (float64, error) {
	return geometry.DihedralAngle(f.p.Vertices, f.p.Faces[f.idx], o.p.Faces[o.idx])
}

// PartialDihedralAngle returns the angle between the face and the plane
// through its edge shared with o and the center of the solid.
func (f Face) PartialDihedralAngle(o Face) (float64, error) {
	return geometry.PartialDihedralAngle(f.p.Vertices, f.p.Faces[f.idx], o.p.Faces[o.idx])
}
