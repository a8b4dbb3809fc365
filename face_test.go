// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"math"
	"testing"

	"github.com/2dChan/polyhedra/geometry"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Face

func TestPolyhedron_Face(t *testing.T) {
	p := mustNew(t, "hexahedron")
	for i := range p.NumFaces() {
		f, err := p.Face(i)
		if err != nil {
			t.Fatalf("p.Face(%d) error = %v, want nil", i, err)
		}
		if got := f.Index(); got != i {
			t.Errorf("f.Index() = %v, want %v", got, i)
		}
	}
	if _, err := p.Face(-1); err == nil {
		t.Errorf("p.Face(-1) error = nil, want non-nil")
	}
	if _, err := p.Face(p.NumFaces()); err == nil {
		t.Errorf("p.Face(%d) error = nil, want non-nil", p.NumFaces())
	}
}

func TestFace_Vertex(t *testing.T) {
	p := mustNew(t, "truncated_cube")
	for i := range p.NumFaces() {
		f := mustFace(t, p, i)
		if got := f.NumVertices(); got != len(p.Faces[i]) {
			t.Errorf("f.NumVertices() = %v, want %v", got, len(p.Faces[i]))
		}
		if diff := cmp.Diff(p.Faces[i], f.VertexIndices()); diff != "" {
			t.Errorf("f.VertexIndices() mismatch (-want +got):\n%s", diff)
		}
		for j, idx := range f.VertexIndices() {
			got, err := f.Vertex(j)
			if err != nil {
				t.Fatalf("f.Vertex(%d) error = %v, want nil", j, err)
			}
			if want := p.Vertices[idx]; got != want {
				t.Errorf("f.Vertex(%d) = %v, want %v", j, got, want)
			}
		}

		if _, err := f.Vertex(-1); err == nil {
			t.Errorf("f.Vertex(-1) error = nil, want non-nil")
		}
		if _, err := f.Vertex(f.NumVertices()); err == nil {
			t.Errorf("f.Vertex(%d) error = nil, want non-nil", f.NumVertices())
		}
	}
}

func TestFace_Edges(t *testing.T) {
	p := mustNew(t, "pentagonal_gyrobicupola")
	for i := range p.NumFaces() {
		f := mustFace(t, p, i)
		if got := len(f.Edges()); got != f.NumVertices() {
			t.Errorf("len(Face(%d).Edges()) = %v, want %v", i, got, f.NumVertices())
		}
	}
}

func TestFace_Neighbor(t *testing.T) {
	p := mustNew(t, "rhombicosidodecahedron")
	for i := range p.NumFaces() {
		f := mustFace(t, p, i)
		if got := f.NumNeighbors(); got != f.NumVertices() {
			t.Errorf("Face(%d).NumNeighbors() = %v, want %v", i, got, f.NumVertices())
		}
		for j, nIdx := range f.NeighborIndices() {
			got, err := f.Neighbor(j)
			if err != nil {
				t.Fatalf("f.Neighbor(%d) error = %v, want nil", j, err)
			}
			if got.Index() != nIdx {
				t.Errorf("f.Neighbor(%d).Index() = %v, want %v", j, got.Index(), nIdx)
			}
			if _, err := f.DihedralAngle(got); err != nil {
				t.Errorf("Face(%d).DihedralAngle(Face(%d)) error = %v, want nil", i, nIdx, err)
			}
		}
		if _, err := f.Neighbor(-1); err == nil {
			t.Errorf("f.Neighbor(-1) error = nil, want non-nil")
		}
		if _, err := f.Neighbor(f.NumNeighbors()); err == nil {
			t.Errorf("f.Neighbor(%d) error = nil, want non-nil", f.NumNeighbors())
		}
	}
}

func TestFace_NeighborOrder(t *testing.T) {
	p := mustNew(t, "icosidodecahedron")
	for i := range p.NumFaces() {
		f := mustFace(t, p, i)
		idx := f.VertexIndices()
		for j, nIdx := range f.NeighborIndices() {
			a, b := idx[j], idx[(j+1)%len(idx)]
			n := p.Faces[nIdx]
			if !containsEdge(n, a, b) {
				t.Errorf("Face(%d).NeighborIndices()[%d] = %d does not share edge {%d %d}", i, j, nIdx, a, b)
			}
		}
	}
}

// Geometry

func TestFace_Measures(t *testing.T) {
	const a = 2.0
	p := mustNew(t, "truncated_icosahedron", WithEdgeLength(a))
	for i := range p.NumFaces() {
		f := mustFace(t, p, i)
		k := f.NumVertices()

		area, err := f.Area()
		if err != nil {
			t.Fatalf("Face(%d).Area() error = %v, want nil", i, err)
		}
		wantArea := a * a * float64(k) * geometry.RegularInradius(k) / 2
		if math.Abs(area-wantArea) > epsilon {
			t.Errorf("Face(%d).Area() = %v, want %v", i, area, wantArea)
		}

		wantLengths := make([]float64, k)
		wantAngles := make([]float64, k)
		for j := range k {
			wantLengths[j] = a
			wantAngles[j] = 180 * float64(k-2) / float64(k)
		}
		if diff := cmp.Diff(wantLengths, f.EdgeLengths(), cmpopts.EquateApprox(0, epsilon)); diff != "" {
			t.Errorf("Face(%d).EdgeLengths() mismatch (-want +got):\n%s", i, diff)
		}
		if diff := cmp.Diff(wantAngles, f.VertexAngles(), cmpopts.EquateApprox(0, 1e-7)); diff != "" {
			t.Errorf("Face(%d).VertexAngles() mismatch (-want +got):\n%s", i, diff)
		}

		for j := range k {
			v, err := f.Vertex(j)
			if err != nil {
				t.Fatalf("f.Vertex(%d) error = %v, want nil", j, err)
			}
			if d := v.Distance(f.Center()); math.Abs(d-f.Circumradius()) > epsilon {
				t.Errorf("Face(%d) vertex %d at %v from center, want %v", i, j, d, f.Circumradius())
			}
		}
		if want := a * geometry.RegularInradius(k); math.Abs(f.Inradius()-want) > epsilon {
			t.Errorf("Face(%d).Inradius() = %v, want %v", i, f.Inradius(), want)
		}
	}
}

func TestFace_Orientation(t *testing.T) {
	p := mustNew(t, "octahedron")
	down := r3.Vector{X: 0, Y: 0, Z: -1}
	for i := range p.NumFaces() {
		f := mustFace(t, p, i)
		n, err := f.Normal()
		if err != nil {
			t.Fatalf("Face(%d).Normal() error = %v, want nil", i, err)
		}
		if n.Dot(f.Center()) <= 0 {
			t.Errorf("Face(%d).Normal() = %v points inwards", i, n)
		}
		rot, err := f.Orientation()
		if err != nil {
			t.Fatalf("Face(%d).Orientation() error = %v, want nil", i, err)
		}
		if got := rot.Apply(down); got.Distance(n) > epsilon {
			t.Errorf("Face(%d).Orientation().Apply(down) = %v, want %v", i, got, n)
		}
	}
}

func TestFace_PartialDihedralAngle(t *testing.T) {
	tests := []struct {
		id   string
		want float64
	}{
		{"hexahedron", 45},
		{"tetrahedron", 180 / math.Pi * math.Acos(1.0/3) / 2},
		{"icosahedron", 180 / math.Pi * math.Acos(-math.Sqrt(5)/3) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p := mustNew(t, tt.id)
			f := mustFace(t, p, 0)
			for j := range f.NumNeighbors() {
				n, err := f.Neighbor(j)
				if err != nil {
					t.Fatalf("f.Neighbor(%d) error = %v, want nil", j, err)
				}
				got, err := f.PartialDihedralAngle(n)
				if err != nil {
					t.Fatalf("f.PartialDihedralAngle(Face(%d)) error = %v, want nil", n.Index(), err)
				}
				if math.Abs(got-tt.want) > 1e-7 {
					t.Errorf("f.PartialDihedralAngle(Face(%d)) = %v, want %v", n.Index(), got, tt.want)
				}
			}
		})
	}
}

// Helpers

func mustFace(t *testing.T, p *Polyhedron, i int) Face {
	t.Helper()
	f, err := p.Face(i)
	if err != nil {
		t.Fatalf("p.Face(%d) error = %v, want nil", i, err)
	}
	return f
}

func containsEdge(face []int, a, b int) bool {
	n := len(face)
	for i := range n {
		u, v := face[i], face[(i+1)%n]
		if (u == a && v == b) || (u == b && v == a) {
			return true
		}
	}
	return false
}
