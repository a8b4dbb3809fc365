// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package icon draws shaded SVG icons of polyhedra.
//
// The solid is turned to a view orientation and projected orthographically
// onto the XY plane, looking down the Z axis. Faces turned away from the
// viewer are culled; the rest are shaded by a directional light and painted
// back to front.
package icon

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/2dChan/polyhedra"
	"github.com/2dChan/polyhedra/geometry"
	"github.com/2dChan/polyhedra/utils"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r3"
)

const (
	defaultSize  = 512
	defaultColor = "#3498db"
	defaultSeed  = 0

	ambient = 0.3
	// fill is the share of the canvas covered by the projected solid.
	fill = 0.9
	// Faces whose normal is this close to the view plane are seen edge-on.
	edgeOnEps = 1e-9
)

var (
	defaultLight = r3.Vector{X: 1, Y: 2, Z: 3}
	viewAxis     = r3.Vector{X: 0, Y: 0, Z: 1}
	axes         = [3]r3.Vector{{X: 1}, {Y: 1}, {Z: 1}}
)

// ErrInvalidOption is returned by options given out of range values.
var ErrInvalidOption = errors.New("icon: invalid option")

type Options struct {
	// Size is the width and height of the canvas in pixels.
	Size  int
	Color string
	// Orientation holds the rx, ry and rz angles in degrees of the view
	// rotation Rz·Ry·Rx, applied to vertices as row vectors. When unset, it
	// is drawn from Seed.
	Orientation *[3]float64
	Light       r3.Vector
	Seed        int64
}

type Option func(*Options) error

func WithSize(px int) Option {
	return func(o *Options) error {
		if px <= 0 {
			return fmt.Errorf("WithSize: px = %d, want > 0: %w", px, ErrInvalidOption)
		}
		o.Size = px
		return nil
	}
}

// WithColor sets the base face color as a hex triplet such as "#3498db".
func WithColor(hex string) Option {
	return func(o *Options) error {
		if _, err := parseHex(hex); err != nil {
			return fmt.Errorf("WithColor: %w", err)
		}
		o.Color = hex
		return nil
	}
}

// WithOrientation fixes the view orientation.
func WithOrientation(rx, ry, rz float64) Option {
	return func(o *Options) error {
		for _, a := range []float64{rx, ry, rz} {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return fmt.Errorf("WithOrientation: angle %v, want finite: %w", a, ErrInvalidOption)
			}
		}
		o.Orientation = &[3]float64{rx, ry, rz}
		return nil
	}
}

// WithLight sets the direction towards the light source.
func WithLight(dir r3.Vector) Option {
	return func(o *Options) error {
		if dir.Norm() == 0 {
			return fmt.Errorf("WithLight: zero direction: %w", ErrInvalidOption)
		}
		o.Light = dir
		return nil
	}
}

// WithSeed sets the seed of the random orientation. It has no effect
// together with WithOrientation.
func WithSeed(seed int64) Option {
	return func(o *Options) error {
		o.Seed = seed
		return nil
	}
}

func newOptions(setters []Option) (Options, error) {
	opts := Options{
		Size:  defaultSize,
		Color: defaultColor,
		Light: defaultLight,
		Seed:  defaultSeed,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	if opts.Orientation == nil {
		o := utils.RandomOrientation(opts.Seed)
		opts.Orientation = &o
	}
	return opts, nil
}

// Polygon is a projected face in canvas coordinates.
type Polygon struct {
	Face  int
	X, Y  []int
	Depth float64
	Fill  string
}

// Project returns the faces of p visible from the view orientation, in
// painting order.
func Project(p *polyhedra.Polyhedron, setters ...Option) ([]Polygon, error) {
	opts, err := newOptions(setters)
	if err != nil {
		return nil, fmt.Errorf("icon: Project: %w", err)
	}
	polys, err := project(p, opts)
	if err != nil {
		return nil, fmt.Errorf("icon: Project: %w", err)
	}
	return polys, nil
}

func project(p *polyhedra.Polyhedron, opts Options) ([]Polygon, error) {
	if p == nil || len(p.Vertices) == 0 {
		return nil, errors.New("empty polyhedron")
	}
	base, err := parseHex(opts.Color)
	if err != nil {
		return nil, err
	}

	vertices := make([]r3.Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = turn(v, *opts.Orientation)
	}

	lo, hi := bounds(vertices)
	scale := fill * float64(opts.Size) / max(hi.X-lo.X, hi.Y-lo.Y)
	center := lo.Add(hi).Mul(0.5)
	half := float64(opts.Size) / 2
	light := opts.Light.Normalize()

	res := make([]Polygon, 0, len(p.Faces))
	for i, f := range p.Faces {
		n, err := geometry.Normal(vertices, f)
		if err != nil || n.Dot(viewAxis) <= edgeOnEps {
			continue
		}
		shade := ambient + (1-ambient)*max(0, n.Dot(light))

		poly := Polygon{
			Face:  i,
			X:     make([]int, len(f)),
			Y:     make([]int, len(f)),
			Depth: geometry.Centroid(vertices, f).Z,
			Fill:  base.scale(shade).String(),
		}
		for j, idx := range f {
			v := vertices[idx]
			// NOTE: Canvas Y grows downwards.
			poly.X[j] = int(math.Round(half + (v.X-center.X)*scale))
			poly.Y[j] = int(math.Round(half - (v.Y-center.Y)*scale))
		}
		res = append(res, poly)
	}

	slices.SortStableFunc(res, func(a, b Polygon) int {
		switch {
		case a.Depth < b.Depth:
			return -1
		case a.Depth > b.Depth:
			return 1
		}
		return 0
	})
	return res, nil
}

// turn applies the view orientation to v as a row vector multiplied by
// Rz·Ry·Rx, which rotates by -rz about Z, then -ry about Y, then -rx about X.
func turn(v r3.Vector, orientation [3]float64) r3.Vector {
	for k := len(axes) - 1; k >= 0; k-- {
		v = geometry.Rotate(v, -orientation[k], axes[k])
	}
	return v
}

// Render writes an SVG icon of p to w.
func Render(w io.Writer, p *polyhedra.Polyhedron, setters ...Option) error {
	opts, err := newOptions(setters)
	if err != nil {
		return fmt.Errorf("icon: Render: %w", err)
	}
	polys, err := project(p, opts)
	if err != nil {
		return fmt.Errorf("icon: Render: %w", err)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Size, opts.Size)
	canvas.Title(p.Name)
	for _, poly := range polys {
		canvas.Polygon(poly.X, poly.Y, "fill:"+poly.Fill)
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("icon: Render: %w", ew.err)
	}
	return nil
}

func bounds(vertices []r3.Vector) (r3.Vector, r3.Vector) {
	lo, hi := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo = r3.Vector{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = r3.Vector{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}

type rgb [3]uint8

func parseHex(s string) (rgb, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return rgb{}, fmt.Errorf("color %q, want #rrggbb: %w", s, ErrInvalidOption)
	}
	var c rgb
	for i := range c {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return rgb{}, fmt.Errorf("color %q, want #rrggbb: %w", s, ErrInvalidOption)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

func (c rgb) scale(f float64) rgb {
	var res rgb
	for i, v := range c {
		res[i] = uint8(float64(v) * f)
	}
	return res
}

func (c rgb) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
