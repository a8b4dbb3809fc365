// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package polyhedra

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"math"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/golang/geo/r3"
	"gopkg.in/yaml.v3"
)

// Family groups solids by construction.
type Family string

const (
	FamilyPlatonic    Family = "platonic"
	FamilyArchimedean Family = "archimedean"
	FamilyCatalan     Family = "catalan"
	FamilyJohnson     Family = "johnson"
	FamilyParametric  Family = "parametric"
)

//go:embed data/*.yaml
var dataFS embed.FS

// aliases maps the bare name of a chiral solid to its laevo table.
var aliases = map[string]string{
	"snub_cube":                   "snub_cube_laevo",
	"snub_dodecahedron":           "snub_dodecahedron_laevo",
	"pentagonal_icositetrahedron": "pentagonal_icositetrahedron_laevo",
	"pentagonal_hexecontahedron":  "pentagonal_hexecontahedron_laevo",
}

// entry is a registry record. Fixed solids ignore n and m.
type entry struct {
	family Family
	// NOTE: Every vertex lies at distance circumradius from the origin.
	spherical bool
	// NOTE: Every edge has unit length before scaling. The parametric
	// families decide per n.
	uniformEdges func(n, m int) bool

	vertices     func(n, m int) ([]r3.Vector, error)
	faces        func(n, m int) ([][]int, error)
	circumradius func(n, m int) (float64, error)
}

type table struct {
	Name         string      `yaml:"name"`
	Family       Family      `yaml:"family"`
	Circumradius float64     `yaml:"circumradius"`
	Spherical    bool        `yaml:"spherical"`
	UniformEdges bool        `yaml:"uniform_edges"`
	Vertices     [][]float64 `yaml:"vertices"`
	Faces        [][]int     `yaml:"faces"`
}

var registry = sync.OnceValues(loadRegistry)

func loadRegistry() (map[string]entry, error) {
	reg := make(map[string]entry)

	files, err := fs.Glob(dataFS, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("polyhedra: listing tables: %w", err)
	}
	for _, file := range files {
		raw, err := dataFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("polyhedra: reading %s: %w", file, err)
		}
		var t table
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("polyhedra: decoding %s: %w", file, err)
		}
		if want := strings.TrimSuffix(path.Base(file), ".yaml"); t.Name != want {
			return nil, fmt.Errorf("polyhedra: %s: table name %q, want %q", file, t.Name, want)
		}
		e, err := fixedEntry(t)
		if err != nil {
			return nil, fmt.Errorf("polyhedra: %s: %w", file, err)
		}
		reg[t.Name] = e
	}

	for alias, name := range aliases {
		e, ok := reg[name]
		if !ok {
			return nil, fmt.Errorf("polyhedra: alias %q refers to missing table %q", alias, name)
		}
		reg[alias] = e
	}

	for name, e := range parametricEntries() {
		reg[name] = e
	}
	return reg, nil
}

func fixedEntry(t table) (entry, error) {
	if t.Circumradius <= 0 || math.IsInf(t.Circumradius, 0) || math.IsNaN(t.Circumradius) {
		return entry{}, fmt.Errorf("circumradius = %v, want positive finite", t.Circumradius)
	}
	if len(t.Vertices) < 4 || len(t.Faces) < 4 {
		return entry{}, fmt.Errorf("%d vertices and %d faces, want at least 4 of each", len(t.Vertices), len(t.Faces))
	}

	vertices := make([]r3.Vector, len(t.Vertices))
	for i, c := range t.Vertices {
		if len(c) != 3 {
			return entry{}, fmt.Errorf("vertex %d has %d coordinates, want 3", i, len(c))
		}
		vertices[i] = r3.Vector{X: c[0], Y: c[1], Z: c[2]}
	}
	for i, f := range t.Faces {
		if len(f) < 3 {
			return entry{}, fmt.Errorf("face %d has %d vertices, want at least 3", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return entry{}, fmt.Errorf("face %d: vertex index %d out of range [0 %d)", i, idx, len(vertices))
			}
		}
	}

	return entry{
		family:    t.Family,
		spherical: t.Spherical,
		vertices: func(int, int) ([]r3.Vector, error) {
			return slices.Clone(vertices), nil
		},
		faces: func(int, int) ([][]int, error) {
			return cloneFaces(t.Faces), nil
		},
		circumradius: func(int, int) (float64, error) {
			return t.Circumradius, nil
		},
		uniformEdges: func(int, int) bool {
			return t.UniformEdges
		},
	}, nil
}

func lookup(fn, name string) (entry, error) {
	reg, err := registry()
	if err != nil {
		return entry{}, err
	}
	e, ok := reg[name]
	if !ok {
		return entry{}, fmt.Errorf("polyhedra: %s: %w: %q", fn, ErrUnknownPolyhedron, name)
	}
	return e, nil
}

// List returns the identifiers of all registered solids in lexical order.
func List() []string {
	reg, err := registry()
	if err != nil {
		panic(err)
	}
	return slices.Sorted(maps.Keys(reg))
}

// Families returns the names of all solid families.
func Families() []Family {
	return []Family{FamilyPlatonic, FamilyArchimedean, FamilyCatalan, FamilyJohnson, FamilyParametric}
}

// ListFamily returns the identifiers of the solids in family f in lexical
// order.
func ListFamily(f Family) []string {
	res := make([]string, 0)
	for _, name := range List() {
		e, _ := lookup("ListFamily", name)
		if e.family == f {
			res = append(res, name)
		}
	}
	return res
}

func cloneFaces(faces [][]int) [][]int {
	res := make([][]int, len(faces))
	for i, f := range faces {
		res[i] = slices.Clone(f)
	}
	return res
}
