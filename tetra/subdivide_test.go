// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tetra

import (
	"math"
	"testing"
)

func TestRand2Symmetry(t *testing.T) {
	pairs := [][2]float64{
		{0.123, 0.456},
		{-0.99, 0.99},
		{0, 0.5},
		{-0.25, -0.75},
		{0.123456789, -0.987654321},
	}
	for _, p := range pairs {
		a := rand2(p[0], p[1])
		b := rand2(p[1], p[0])
		if a != b {
			t.Errorf("rand2(%g, %g): got %g, want %g", p[0], p[1], a, b)
		}
		if a < -1 || a >= 1 {
			t.Errorf("rand2(%g, %g): got %g, want a value in [-1, 1)", p[0], p[1], a)
		}
	}
}

func TestRand2Deterministic(t *testing.T) {
	for _, p := range []float64{-0.9, -0.1, 0, 0.123, 0.77} {
		for _, q := range []float64{-0.5, 0.25, 0.99} {
			if rand2(p, q) != rand2(p, q) {
				t.Errorf("rand2(%g, %g): not deterministic", p, q)
			}
		}
	}
}

// With equal seeds at both endpoints
// the cut point is the unweighted midpoint,
// so the field must not depend
// on the order of the two vertices.
func TestEqualSeedCut(t *testing.T) {
	p := DefaultParam()
	p.Depth = 12
	base := New(p)

	m1 := *base
	for i := range m1.root {
		m1.root[i].Seed = 0.25
	}
	m2 := m1
	m2.root[0], m2.root[1] = m1.root[1], m1.root[0]

	f1 := m1.NewField()
	f2 := m2.NewField()
	for _, d := range testDirections() {
		a1 := f1.Altitude(d[0], d[1], d[2])
		a2 := f2.Altitude(d[0], d[1], d[2])
		if a1 != a2 {
			t.Errorf("direction %v: got %.15g, want %.15g", d, a2, a1)
		}
	}
}

// The root tetrahedron is semantically unordered:
// permuting its vertices
// must not change the field.
func TestRootPermutation(t *testing.T) {
	p := DefaultParam()
	p.Depth = 20
	base := New(p)

	perms := [][4]int{
		{1, 0, 2, 3},
		{3, 2, 1, 0},
		{2, 3, 0, 1},
		{1, 2, 3, 0},
	}
	f0 := base.NewField()
	for _, perm := range perms {
		m := *base
		for i, pi := range perm {
			m.root[i] = base.root[pi]
		}
		f := m.NewField()
		for _, d := range testDirections() {
			f0.ResetCache()
			f.ResetCache()
			want := f0.Altitude(d[0], d[1], d[2])
			got := f.Altitude(d[0], d[1], d[2])
			if got != want {
				t.Errorf("permutation %v: direction %v: got %.15g, want %.15g", perm, d, got, want)
			}
		}
	}
}

// At any subdivision,
// the midpoint altitude must stay
// within the displacement bound
// of the average of the endpoints.
func TestDisplacementBound(t *testing.T) {
	p := DefaultParam()
	m := New(p)

	a := m.root[0]
	b := m.root[3]
	a.Alt = 0.05
	b.Alt = -0.08

	e := Vertex{Seed: rand2(a.Seed, b.Seed)}
	es1 := rand2(e.Seed, e.Seed)
	es2 := 0.5 + 0.1*rand2(es1, es1)
	es3 := 1 - es2
	if a.Seed < b.Seed {
		e.X = es2*a.X + es3*b.X
		e.Y = es2*a.Y + es3*b.Y
		e.Z = es2*a.Z + es3*b.Z
	} else {
		e.X = es3*a.X + es2*b.X
		e.Y = es3*a.Y + es2*b.Y
		e.Z = es3*a.Z + es2*b.Z
	}

	lab := dist2(a, b)
	if lab > 1 {
		lab = math.Pow(lab, 0.5)
	}
	alt := 0.5*(a.Alt+b.Alt) +
		e.Seed*m.altWeight*math.Pow(math.Abs(a.Alt-b.Alt), m.altPower) +
		es1*m.distWeight*math.Pow(lab, m.distPower)

	bound := m.altWeight*math.Pow(math.Abs(a.Alt-b.Alt), m.altPower) +
		m.distWeight*math.Pow(lab, m.distPower)
	if d := math.Abs(alt - 0.5*(a.Alt+b.Alt)); d > bound {
		t.Errorf("displacement: got %.15g, want at most %.15g", d, bound)
	}
}

// A query deep enough must leave
// a valid tetrahedron in the descent cache.
func TestCacheSnapshot(t *testing.T) {
	p := DefaultParam()
	p.Depth = 24
	f := New(p).NewField()

	if f.cache != [4]Vertex{} {
		t.Fatalf("cache: not empty before any query")
	}
	f.Altitude(1, 0, 0)
	if f.cache == [4]Vertex{} {
		t.Errorf("cache: empty after a query at depth %d", p.Depth)
	}

	f.ResetCache()
	if f.cache != [4]Vertex{} {
		t.Errorf("cache: not empty after reset")
	}
}

func testDirections() [][3]float64 {
	dirs := [][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{-1, 0, 0},
		{0, -1, 0},
		{0, 0, -1},
	}
	for i := 1; i < 8; i++ {
		lat := -1.2 + 0.3*float64(i)
		lon := 0.8 * float64(i)
		dirs = append(dirs, [3]float64{
			math.Cos(lon) * math.Cos(lat),
			math.Sin(lat),
			-math.Sin(lon) * math.Cos(lat),
		})
	}
	return dirs
}
