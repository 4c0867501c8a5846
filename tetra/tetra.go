// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tetra implements a procedural altitude field
// over the unit sphere,
// defined by recursive midpoint displacement
// over a bounding tetrahedron.
//
// The field has infinite resolution:
// any direction on the sphere can be queried
// and the same direction always returns the same altitude
// for a given seed.
package tetra

import (
	"math"

	"github.com/js-arias/planet/hintmap"
)

// A Vertex is a corner of a subdivision tetrahedron.
// Vertices are immutable after creation:
// either one of the four root vertices,
// or the midpoint of an edge cut during subdivision.
type Vertex struct {
	X, Y, Z float64 // position, on or outside the unit sphere
	Seed    float64 // seed, in [-1, 1)
	Alt     float64 // altitude
	Shadow  float64 // rain shadow accumulator
}

// dist2 returns the square of the distance
// between two vertices.
func dist2(a, b Vertex) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return dx*dx + dy*dy + dz*dz
}

// rand2 is a symmetric two seed random number generator:
// rand2(p, q) == rand2(q, p),
// so the seed of an edge midpoint
// does not depend on the order
// in which the endpoints are visited.
// The result is in [-1, 1).
func rand2(p, q float64) float64 {
	r := (p + 3.14159265) * (q + 3.14159265)
	return 2*(r-math.Trunc(r)) - 1
}

// ShadeMode indicates how the shading intensity
// of a sample is calculated.
type ShadeMode int

const (
	// No shading.
	NoShade ShadeMode = iota

	// Bump map shading.
	Bump

	// Bump map shading on land only.
	BumpLand

	// Daylight shading,
	// with the light source at a given longitude and latitude.
	Daylight
)

// Param is a collection of parameters
// that define an altitude field.
// The zero value is not useful;
// start from DefaultParam.
type Param struct {
	// Master seed of the field.
	Seed float64

	// Altitude of the four root vertices,
	// usually slightly below sea level.
	Altitude float64

	// Weight and power
	// for the altitude difference term
	// of the midpoint displacement.
	AltWeight float64
	AltPower  float64

	// Weight and power
	// for the edge length term
	// of the midpoint displacement.
	DistWeight float64
	DistPower  float64

	// Wrinkly produces more rugged terrain
	// by halving the altitude weight
	// and lowering the altitude power to 0.75.
	// It does not accumulate:
	// setting it twice is the same as setting it once.
	Wrinkly bool

	// Base subdivision depth.
	Depth int

	// Rotation of the whole planet,
	// in degrees,
	// around the X and Y axes.
	RotateX float64
	RotateY float64

	// Optional altitude hint grid.
	// While the cut edge is longer than MatchSize
	// (compared as a squared length),
	// midpoint altitudes are read from the grid
	// instead of being displaced at random.
	Hint      *hintmap.Grid
	MatchSize float64

	// RainShadow enables the rain shadow accumulator,
	// needed for rainfall and biome maps.
	RainShadow bool

	// Shading mode and light angles,
	// in degrees.
	Shading     ShadeMode
	ShadeAngle  float64
	ShadeAngle2 float64
}

// DefaultParam returns the default field parameters.
func DefaultParam() Param {
	return Param{
		Seed:        0.123,
		Altitude:    -0.02,
		AltWeight:   0.45,
		AltPower:    1.0,
		DistWeight:  0.035,
		DistPower:   0.47,
		MatchSize:   0.1,
		ShadeAngle:  150,
		ShadeAngle2: 20,
	}
}

// A Model is an immutable altitude field:
// the four root vertices
// and the parameters of the subdivision.
// A Model is safe for concurrent use;
// queries are made through a Field,
// one per worker.
type Model struct {
	root [4]Vertex

	altWeight  float64
	altPower   float64
	distWeight float64
	distPower  float64
	depth      int

	hint      *hintmap.Grid
	matchSize float64

	rainShadow bool

	shading     ShadeMode
	sinAngle    float64
	cosAngle    float64
	shadeAngle  float64
	shadeAngle2 float64
}

// New creates an altitude field from its parameters.
func New(p Param) *Model {
	m := &Model{
		altWeight:   p.AltWeight,
		altPower:    p.AltPower,
		distWeight:  p.DistWeight,
		distPower:   p.DistPower,
		depth:       p.Depth,
		hint:        p.Hint,
		matchSize:   p.MatchSize,
		rainShadow:  p.RainShadow,
		shading:     p.Shading,
		sinAngle:    math.Sin(math.Pi * p.ShadeAngle / 180),
		cosAngle:    math.Cos(math.Pi * p.ShadeAngle / 180),
		shadeAngle:  p.ShadeAngle,
		shadeAngle2: p.ShadeAngle2,
	}
	if p.Wrinkly {
		m.altWeight = p.AltWeight / 2
		m.altPower = 0.75
	}

	// The root tetrahedron is slightly irregular,
	// so no subdivision edge is ever exactly tied.
	sq3 := math.Sqrt(3.0)
	m.root[0] = Vertex{X: -sq3 - 0.20, Y: -sq3 - 0.22, Z: -sq3 - 0.23}
	m.root[1] = Vertex{X: -sq3 - 0.19, Y: sq3 + 0.18, Z: sq3 + 0.17}
	m.root[2] = Vertex{X: sq3 + 0.21, Y: -sq3 - 0.24, Z: sq3 + 0.15}
	m.root[3] = Vertex{X: sq3 + 0.24, Y: sq3 + 0.22, Z: -sq3 - 0.25}

	r1 := rand2(p.Seed, p.Seed)
	r2 := rand2(r1, r1)
	r3 := rand2(r1, r2)
	r4 := rand2(r2, r3)
	m.root[0].Seed = r1
	m.root[1].Seed = r2
	m.root[2].Seed = r3
	m.root[3].Seed = r4

	for i := range m.root {
		m.root[i].Alt = p.Altitude
	}

	m.rotate(p.RotateX, p.RotateY)
	return m
}

// rotate turns the root tetrahedron
// around the Y axis and then the X axis,
// with the angles in degrees.
func (m *Model) rotate(rotX, rotY float64) {
	rx := -rotX * math.Pi / 180
	ry := -rotY * math.Pi / 180
	sx, cx := math.Sin(rx), math.Cos(rx)
	sy, cy := math.Sin(ry), math.Cos(ry)

	for i := range m.root {
		x := m.root[i].X
		y := m.root[i].Y
		z := m.root[i].Z
		m.root[i].X = cy*x + sy*z
		m.root[i].Z = -sy*x + cy*z

		z = m.root[i].Z
		m.root[i].Y = cx*y - sx*z
		m.root[i].Z = sx*y + cx*z
	}
}

// Depth returns the base subdivision depth of the field.
func (m *Model) Depth() int { return m.depth }
