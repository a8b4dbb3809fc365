// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package topology implements combinatorial queries on polyhedra given only
// by their face lists. Faces are cyclic sequences of vertex indices, wound
// counter-clockwise when looking at the solid from outside.
//
// No function keeps state between calls; callers pass the edges and faces
// they are working on explicitly.
package topology

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNotManifold is returned when the faces around a vertex do not form a
// single closed fan.
var ErrNotManifold = errors.New("topology: not a manifold")

// Edge is an undirected pair of vertex indices. The stored order is the
// order in which the edge was first emitted and carries no meaning.
type Edge [2]int

// Canonical returns the edge with the smaller index first.
func (e Edge) Canonical() Edge {
	if e[0] > e[1] {
		return Edge{e[1], e[0]}
	}
	return e
}

// Equal reports whether e and o connect the same two vertices.
func (e Edge) Equal(o Edge) bool {
	return e.Canonical() == o.Canonical()
}

// Contains reports whether v is an endpoint of e.
func (e Edge) Contains(v int) bool {
	return e[0] == v || e[1] == v
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v int) int {
	switch v {
	case e[0]:
		return e[1]
	case e[1]:
		return e[0]
	}
	panic("Other: v not in edge")
}

// AllEdges extracts the edges of a polyhedron from its faces. Consecutive
// index pairs of every face are emitted and reversed duplicates, which
// neighbouring faces produce for each shared edge, are dropped.
func AllEdges(faces [][]int) []Edge {
	seen := make(map[Edge]struct{})
	edges := make([]Edge, 0)
	for _, f := range faces {
		n := len(f)
		for i := range n {
			e := Edge{f[i], f[(i+1)%n]}
			key := e.Canonical()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// EulerCharacteristic returns V - E + F.
func EulerCharacteristic(numVertices, numEdges, numFaces int) int {
	return numVertices - numEdges + numFaces
}

// EdgesConnectedToVertex returns all edges having v as an endpoint.
func EdgesConnectedToVertex(edges []Edge, v int) []Edge {
	res := make([]Edge, 0)
	for _, e := range edges {
		if e.Contains(v) {
			res = append(res, e)
		}
	}
	return res
}

// EdgesConnectedToEdge returns the edges sharing exactly one endpoint with e.
func EdgesConnectedToEdge(edges []Edge, e Edge) []Edge {
	res := make([]Edge, 0)
	for _, o := range edges {
		if o.Equal(e) {
			continue
		}
		if o.Contains(e[0]) || o.Contains(e[1]) {
			res = append(res, o)
		}
	}
	return res
}

// EdgesConnectedToFace returns the edges bounding face, in the order in
// which they appear in edges.
func EdgesConnectedToFace(edges []Edge, face []int) []Edge {
	res := make([]Edge, 0, len(face))
	for _, e := range edges {
		if IsFaceEdge(face, e) {
			res = append(res, e)
		}
	}
	return res
}

// FacesConnectedToVertex returns the indices of the faces containing v.
func FacesConnectedToVertex(faces [][]int, v int) []int {
	res := make([]int, 0)
	for i, f := range faces {
		if slices.Contains(f, v) {
			res = append(res, i)
		}
	}
	return res
}

// FacesConnectedToEdge returns the indices of the faces bounded by e.
func FacesConnectedToEdge(faces [][]int, e Edge) []int {
	res := make([]int, 0, 2)
	for i, f := range faces {
		if IsFaceEdge(f, e) {
			res = append(res, i)
		}
	}
	return res
}

// FacesConnectedToFace returns, for every edge of faces[fIdx] in face
// order, the index of the other face sharing that edge. Edges bounded by
// a single face contribute nothing.
func FacesConnectedToFace(edges []Edge, faces [][]int, fIdx int) []int {
	if fIdx < 0 || fIdx >= len(faces) {
		panic("FacesConnectedToFace: fIdx out of range")
	}
	f := faces[fIdx]
	n := len(f)
	res := make([]int, 0, n)
	for i := range n {
		e := Edge{f[i], f[(i+1)%n]}
		if !slices.ContainsFunc(edges, e.Equal) {
			continue
		}
		for _, g := range FacesConnectedToEdge(faces, e) {
			if g != fIdx {
				res = append(res, g)
			}
		}
	}
	return res
}

// VerticesConnectedToVertex returns the neighbours of v in
// counter-clockwise order seen from outside. Each face around v links the
// vertex after v to the vertex before it; the links are stitched into one
// cycle. It returns ErrNotManifold if the links do not close into a single
// cycle covering every edge incident to v.
func VerticesConnectedToVertex(edges []Edge, faces [][]int, v int) ([]int, error) {
	incident := EdgesConnectedToVertex(edges, v)
	fIdxs := FacesConnectedToVertex(faces, v)
	if len(fIdxs) == 0 {
		return nil, fmt.Errorf("VerticesConnectedToVertex: vertex %d: no faces: %w", v, ErrNotManifold)
	}

	links := make([]Edge, len(fIdxs))
	for i, fIdx := range fIdxs {
		links[i] = Edge{NextVertex(faces[fIdx], v), PrevVertex(faces[fIdx], v)}
	}

	cycle, err := stitch(links)
	if err != nil {
		return nil, fmt.Errorf("VerticesConnectedToVertex: vertex %d: %w", v, err)
	}
	if len(cycle) != len(incident) {
		return nil, fmt.Errorf("VerticesConnectedToVertex: vertex %d: %d neighbours for %d edges: %w",
			v, len(cycle), len(incident), ErrNotManifold)
	}
	return cycle, nil
}

// FacesAroundVertex returns the indices of the faces containing v sorted
// counter-clockwise seen from outside, so that consecutive faces share an
// edge.
func FacesAroundVertex(faces [][]int, v int) ([]int, error) {
	incident := FacesConnectedToVertex(faces, v)
	if len(incident) == 0 {
		return nil, fmt.Errorf("FacesAroundVertex: vertex %d: no faces: %w", v, ErrNotManifold)
	}
	sortIncidentFacesCCW(v, incident, faces)

	n := len(incident)
	for i := range n {
		cur := faces[incident[i]]
		nxt := faces[incident[(i+1)%n]]
		if PrevVertex(cur, v) != NextVertex(nxt, v) {
			return nil, fmt.Errorf("FacesAroundVertex: vertex %d: open fan: %w", v, ErrNotManifold)
		}
	}
	return incident, nil
}

// IsManifold reports whether every edge bounds exactly two faces.
func IsManifold(edges []Edge, faces [][]int) bool {
	for _, e := range edges {
		if len(FacesConnectedToEdge(faces, e)) != 2 {
			return false
		}
	}
	return true
}

// IsConsistentlyOriented reports whether every directed edge occurs once
// and is traversed in the opposite direction by another face.
func IsConsistentlyOriented(faces [][]int) bool {
	directed := make(map[Edge]int)
	for _, f := range faces {
		n := len(f)
		for i := range n {
			directed[Edge{f[i], f[(i+1)%n]}]++
		}
	}
	for e, cnt := range directed {
		if cnt != 1 || directed[Edge{e[1], e[0]}] != 1 {
			return false
		}
	}
	return true
}

// IsFaceEdge reports whether the endpoints of e are consecutive in face.
func IsFaceEdge(face []int, e Edge) bool {
	n := len(face)
	for i := range n {
		if (Edge{face[i], face[(i+1)%n]}).Equal(e) {
			return true
		}
	}
	return false
}

// PrevVertex returns the vertex preceding v in face.
func PrevVertex(face []int, v int) int {
	i := slices.Index(face, v)
	if i < 0 {
		panic("PrevVertex: v not in face")
	}
	return face[(i+len(face)-1)%len(face)]
}

// NextVertex returns the vertex following v in face.
func NextVertex(face []int, v int) int {
	i := slices.Index(face, v)
	if i < 0 {
		panic("NextVertex: v not in face")
	}
	return face[(i+1)%len(face)]
}

func stitch(links []Edge) ([]int, error) {
	visited := make([]bool, len(links))
	visited[0] = true
	cycle := []int{links[0][0], links[0][1]}

	for range len(links) - 1 {
		last := cycle[len(cycle)-1]
		next := -1
		for i, l := range links {
			if visited[i] {
				continue
			}
			if l[0] == last {
				next = l[1]
			} else if l[1] == last {
				next = l[0]
			} else {
				continue
			}
			visited[i] = true
			break
		}
		if next < 0 {
			return nil, fmt.Errorf("no link continues at vertex %d: %w", last, ErrNotManifold)
		}
		cycle = append(cycle, next)
	}

	if cycle[len(cycle)-1] != cycle[0] {
		return nil, fmt.Errorf("fan does not close: %w", ErrNotManifold)
	}
	return cycle[:len(cycle)-1], nil
}

// NOTE: incidentFaces must hold every face containing vIdx.
func sortIncidentFacesCCW(vIdx int, incidentFaces []int, faces [][]int) {
	n := len(incidentFaces)
	for i := 1; i < n; i++ {
		prv := PrevVertex(faces[incidentFaces[i-1]], vIdx)
		for j := i; j < n; j++ {
			nxt := NextVertex(faces[incidentFaces[j]], vIdx)
			if nxt == prv {
				incidentFaces[i], incidentFaces[j] = incidentFaces[j], incidentFaces[i]
				break
			}
		}
	}
}
