// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package polyhedra provides vertex and face tables of named polyhedra and
// the properties derived from them.
//
// Coordinates are centered at the origin. Fixed solids are authored with
// unit edges (Catalan solids with a unit shortest edge); parametric
// families follow the conventions documented on their identifiers. Faces
// are wound counter-clockwise seen from outside.
package polyhedra

import (
	"errors"
	"fmt"
	"math"

	"github.com/2dChan/polyhedra/geometry"
	"github.com/2dChan/polyhedra/topology"
	"github.com/golang/geo/r3"
)

const (
	defaultN          = 5
	defaultM          = 2
	defaultEdgeLength = 1.0
)

var (
	// ErrUnknownPolyhedron is returned for identifiers missing from List.
	ErrUnknownPolyhedron = errors.New("unknown polyhedron")
	// ErrInvalidParameter is returned for out of range options or family
	// parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
)

type Options struct {
	N int
	M int
	// EdgeLength is the length every unit edge is scaled to. It is ignored
	// when Circumradius is set.
	EdgeLength   float64
	Circumradius float64
}

type Option func(*Options) error

// WithN sets the number of polygon sides of a parametric family.
func WithN(n int) Option {
	return func(o *Options) error {
		if n < minSides {
			return fmt.Errorf("WithN: n = %d, want >= %d: %w", n, minSides, ErrInvalidParameter)
		}
		o.N = n
		return nil
	}
}

// WithM sets the star skip of the star families.
func WithM(m int) Option {
	return func(o *Options) error {
		if m < 1 {
			return fmt.Errorf("WithM: m = %d, want >= 1: %w", m, ErrInvalidParameter)
		}
		o.M = m
		return nil
	}
}

// WithEdgeLength scales the solid so that unit edges have length a.
func WithEdgeLength(a float64) Option {
	return func(o *Options) error {
		if !isPositiveFinite(a) {
			return fmt.Errorf("WithEdgeLength: a = %v, want positive finite: %w", a, ErrInvalidParameter)
		}
		o.EdgeLength = a
		o.Circumradius = 0
		return nil
	}
}

// WithCircumradius scales the solid so that its farthest vertex lies at
// distance r from the origin.
func WithCircumradius(r float64) Option {
	return func(o *Options) error {
		if !isPositiveFinite(r) {
			return fmt.Errorf("WithCircumradius: r = %v, want positive finite: %w", r, ErrInvalidParameter)
		}
		o.Circumradius = r
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		N:          defaultN,
		M:          defaultM,
		EdgeLength: defaultEdgeLength,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func isPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Polyhedron is a solid resolved from the registry and scaled.
type Polyhedron struct {
	Name   string
	Family Family
	// N and M are the parameters the solid was built with; fixed solids
	// ignore them.
	N, M int

	// Scale is the length of the unit edges after scaling.
	Scale float64
	// CircumradiusFactor is the circumradius at unit scale.
	CircumradiusFactor float64
	Spherical          bool
	UniformEdges       bool

	Vertices []r3.Vector
	Faces    [][]int
	Edges    []topology.Edge
}

// New resolves name in the registry and returns the scaled solid.
func New(name string, setters ...Option) (*Polyhedron, error) {
	return build("New", name, setters)
}

// build resolves and scales a solid, attributing errors to the public
// function fn.
func build(fn, name string, setters []Option) (*Polyhedron, error) {
	e, err := lookup(fn, name)
	if err != nil {
		return nil, err
	}
	opts, err := newOptions(setters)
	if err != nil {
		return nil, fmt.Errorf("polyhedra: %s: %q: %w", fn, name, err)
	}

	vertices, err := e.vertices(opts.N, opts.M)
	if err != nil {
		return nil, fmt.Errorf("polyhedra: %s: %q: %w", fn, name, err)
	}
	faces, err := e.faces(opts.N, opts.M)
	if err != nil {
		return nil, fmt.Errorf("polyhedra: %s: %q: %w", fn, name, err)
	}
	xi, err := e.circumradius(opts.N, opts.M)
	if err != nil {
		return nil, fmt.Errorf("polyhedra: %s: %q: %w", fn, name, err)
	}

	scale := opts.EdgeLength
	if opts.Circumradius > 0 {
		scale = opts.Circumradius / xi
	}
	for i := range vertices {
		vertices[i] = vertices[i].Mul(scale)
	}

	return &Polyhedron{
		Name:               name,
		Family:             e.family,
		N:                  opts.N,
		M:                  opts.M,
		Scale:              scale,
		CircumradiusFactor: xi,
		Spherical:          e.spherical,
		UniformEdges:       e.uniformEdges(opts.N, opts.M),
		Vertices:           vertices,
		Faces:              faces,
		Edges:              topology.AllEdges(faces),
	}, nil
}

func (p *Polyhedron) NumVertices() int {
	return len(p.Vertices)
}

func (p *Polyhedron) NumEdges() int {
	return len(p.Edges)
}

func (p *Polyhedron) NumFaces() int {
	return len(p.Faces)
}

// Face returns a view of the i-th face.
// It returns an error if the index is out of range.
func (p *Polyhedron) Face(i int) (Face, error) {
	if i < 0 || i >= len(p.Faces) {
		return Face{}, fmt.Errorf("Face: index %d out of range [0 %d)", i, len(p.Faces))
	}
	return Face{idx: i, p: p}, nil
}

// Circumradius returns the distance of the farthest vertex from the origin.
func (p *Polyhedron) Circumradius() float64 {
	return p.CircumradiusFactor * p.Scale
}

// FaceCenters returns the centroid of every face.
func (p *Polyhedron) FaceCenters() []r3.Vector {
	res := make([]r3.Vector, len(p.Faces))
	for i, f := range p.Faces {
		res[i] = geometry.Centroid(p.Vertices, f)
	}
	return res
}

// FaceOrientations returns, for every face, the rotation taking a face
// lying on the XY plane with normal (0, 0, -1) to the face's orientation.
func (p *Polyhedron) FaceOrientations() ([]geometry.Rotation, error) {
	res := make([]geometry.Rotation, len(p.Faces))
	for i, f := range p.Faces {
		rot, err := geometry.FaceOrientation(p.Vertices, f)
		if err != nil {
			return nil, fmt.Errorf("polyhedra: FaceOrientations: %q face %d: %w", p.Name, i, err)
		}
		res[i] = rot
	}
	return res, nil
}

// FaceInradii returns the inradius of every face, assuming regular faces.
// The values are wrong for solids with irregular faces such as the Catalan
// solids.
func (p *Polyhedron) FaceInradii() []float64 {
	res := make([]float64, len(p.Faces))
	for i, f := range p.Faces {
		res[i] = p.Scale * geometry.RegularInradius(len(f))
	}
	return res
}

// DihedralAngles returns the dihedral angle at every edge, in the order of
// Edges.
func (p *Polyhedron) DihedralAngles() ([]float64, error) {
	res := make([]float64, len(p.Edges))
	for i, e := range p.Edges {
		fs := topology.FacesConnectedToEdge(p.Faces, e)
		if len(fs) != 2 {
			return nil, fmt.Errorf("polyhedra: DihedralAngles: %q edge %v bounds %d faces: %w",
				p.Name, e, len(fs), topology.ErrNotManifold)
		}
		angle, err := geometry.DihedralAngle(p.Vertices, p.Faces[fs[0]], p.Faces[fs[1]])
		if err != nil {
			return nil, fmt.Errorf("polyhedra: DihedralAngles: %q edge %v: %w", p.Name, e, err)
		}
		res[i] = angle
	}
	return res, nil
}

// AlignVertexToPole returns a copy of p rotated about the origin so that
// vertex v lies on the positive Z axis.
func (p *Polyhedron) AlignVertexToPole(v int) (*Polyhedron, error) {
	vertices, err := geometry.AlignToPole(p.Vertices, v)
	if err != nil {
		return nil, fmt.Errorf("polyhedra: AlignVertexToPole: %q: %w", p.Name, err)
	}
	res := *p
	res.Vertices = vertices
	res.Faces = cloneFaces(p.Faces)
	res.Edges = topology.AllEdges(res.Faces)
	return &res, nil
}

// Vertices returns the vertices of the named solid.
func Vertices(name string, setters ...Option) ([]r3.Vector, error) {
	p, err := build("Vertices", name, setters)
	if err != nil {
		return nil, err
	}
	return p.Vertices, nil
}

// Faces returns the faces of the named solid.
func Faces(name string, setters ...Option) ([][]int, error) {
	p, err := build("Faces", name, setters)
	if err != nil {
		return nil, err
	}
	return p.Faces, nil
}

// Edges returns the edges of the named solid.
func Edges(name string, setters ...Option) ([]topology.Edge, error) {
	p, err := build("Edges", name, setters)
	if err != nil {
		return nil, err
	}
	return p.Edges, nil
}

// CircumradiusFactor returns ξ such that R = ξ·a for edge length a.
// Scaling options do not affect it.
func CircumradiusFactor(name string, setters ...Option) (float64, error) {
	p, err := build("CircumradiusFactor", name, setters)
	if err != nil {
		return 0, err
	}
	return p.CircumradiusFactor, nil
}

// FaceCenters returns the face centroids of the named solid.
func FaceCenters(name string, setters ...Option) ([]r3.Vector, error) {
	p, err := build("FaceCenters", name, setters)
	if err != nil {
		return nil, err
	}
	return p.FaceCenters(), nil
}

// FaceOrientations returns the face orientations of the named solid.
func FaceOrientations(name string, setters ...Option) ([]geometry.Rotation, error) {
	p, err := build("FaceOrientations", name, setters)
	if err != nil {
		return nil, err
	}
	return p.FaceOrientations()
}

// FaceInradii returns the face inradii of the named solid.
func FaceInradii(name string, setters ...Option) ([]float64, error) {
	p, err := build("FaceInradii", name, setters)
	if err != nil {
		return nil, err
	}
	return p.FaceInradii(), nil
}
