// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tetra

import "math"

// cacheLevel is the subdivision level
// at which the descent is snapshot,
// counted from the leaf end.
const cacheLevel = 11

// A Field is a query context over a Model.
// It holds the descent cache
// and the side outputs of the last query,
// so each concurrent worker must use its own Field.
type Field struct {
	m     *Model
	depth int

	// last tetrahedron visited at cacheLevel
	cache [4]Vertex

	// side outputs of the last query
	shadow float64
	shade  int
}

// NewField creates a query context for the field.
func (m *Model) NewField() *Field {
	return &Field{m: m, depth: m.depth}
}

// Model returns the model the field queries.
func (f *Field) Model() *Model { return f.m }

// SetDepth changes the base subdivision depth
// used when a query restarts from the root tetrahedron.
// Projections use it to adapt the depth
// to the local magnification of a map row.
// A change of depth clears the descent cache,
// as the cached tetrahedron was reached
// from the previous depth.
func (f *Field) SetDepth(depth int) {
	if depth != f.depth {
		f.cache = [4]Vertex{}
	}
	f.depth = depth
}

// ResetCache clears the descent cache.
// Clearing the cache never changes the result of a query,
// only the time it takes.
func (f *Field) ResetCache() { f.cache = [4]Vertex{} }

// Shadow returns the rain shadow
// at the direction of the last Altitude query.
func (f *Field) Shadow() float64 { return f.shadow }

// Shade returns the shading intensity,
// in the range [10, 255],
// at the direction of the last Altitude query.
// It is only meaningful
// if the model has a shading mode.
func (f *Field) Shade() int { return f.shade }

// Altitude returns the altitude of the field
// at a direction (x, y, z) on the unit sphere.
// It also updates the rain shadow
// and shading side outputs.
//
// If the direction is inside the tetrahedron
// cached by a previous query,
// the subdivision resumes from the cache
// instead of the root tetrahedron.
// The result is identical either way.
func (f *Field) Altitude(x, y, z float64) float64 {
	abx := f.cache[1].X - f.cache[0].X
	aby := f.cache[1].Y - f.cache[0].Y
	abz := f.cache[1].Z - f.cache[0].Z
	acx := f.cache[2].X - f.cache[0].X
	acy := f.cache[2].Y - f.cache[0].Y
	acz := f.cache[2].Z - f.cache[0].Z
	adx := f.cache[3].X - f.cache[0].X
	ady := f.cache[3].Y - f.cache[0].Y
	adz := f.cache[3].Z - f.cache[0].Z
	apx := x - f.cache[0].X
	apy := y - f.cache[0].Y
	apz := z - f.cache[0].Z

	if (adx*aby*acz+ady*abz*acx+adz*abx*acy-
		adz*aby*acx-ady*abx*acz-adx*abz*acy)*
		(apx*aby*acz+apy*abz*acx+apz*abx*acy-
			apz*aby*acx-apy*abx*acz-apx*abz*acy) > 0 {
		// p is on the same side of abc as d
		if (acx*aby*adz+acy*abz*adx+acz*abx*ady-
			acz*aby*adx-acy*abx*adz-acx*abz*ady)*
			(apx*aby*adz+apy*abz*adx+apz*abx*ady-
				apz*aby*adx-apy*abx*adz-apx*abz*ady) > 0 {
			// p is on the same side of abd as c
			if (abx*ady*acz+aby*adz*acx+abz*adx*acy-
				abz*ady*acx-aby*adx*acz-abx*adz*acy)*
				(apx*ady*acz+apy*adz*acx+apz*adx*acy-
					apz*ady*acx-apy*adx*acz-apx*adz*acy) > 0 {
				// p is on the same side of acd as b
				bax := -abx
				bay := -aby
				baz := -abz
				bcx := f.cache[2].X - f.cache[1].X
				bcy := f.cache[2].Y - f.cache[1].Y
				bcz := f.cache[2].Z - f.cache[1].Z
				bdx := f.cache[3].X - f.cache[1].X
				bdy := f.cache[3].Y - f.cache[1].Y
				bdz := f.cache[3].Z - f.cache[1].Z
				bpx := x - f.cache[1].X
				bpy := y - f.cache[1].Y
				bpz := z - f.cache[1].Z
				if (bax*bcy*bdz+bay*bcz*bdx+baz*bcx*bdy-
					baz*bcy*bdx-bay*bcx*bdz-bax*bcz*bdy)*
					(bpx*bcy*bdz+bpy*bcz*bdx+bpz*bcx*bdy-
						bpz*bcy*bdx-bpy*bcx*bdz-bpx*bcz*bdy) > 0 {
					// p is on the same side of bcd as a,
					// so p is inside the cached tetrahedron
					return f.planet(f.cache[0], f.cache[1], f.cache[2], f.cache[3], x, y, z, cacheLevel)
				}
			}
		}
	}

	return f.planet(f.m.root[0], f.m.root[1], f.m.root[2], f.m.root[3], x, y, z, f.depth)
}

// planet subdivides the tetrahedron (a, b, c, d)
// towards the direction (x, y, z)
// and returns the altitude at the leaf.
func (f *Field) planet(a, b, c, d Vertex, x, y, z float64, level int) float64 {
	if level <= 0 {
		f.leafShade(a, b, c, d, x, y, z)
		f.shadow = 0.25 * (a.Shadow + b.Shadow + c.Shadow + d.Shadow)
		return 0.25 * (a.Alt + b.Alt + c.Alt + d.Alt)
	}

	// rotate the tuple so that ab is the longest edge
	lab := dist2(a, b)
	lac := dist2(a, c)
	lad := dist2(a, d)
	lbc := dist2(b, c)
	lbd := dist2(b, d)
	lcd := dist2(c, d)

	maxlength := lab
	if lac > maxlength {
		maxlength = lac
	}
	if lad > maxlength {
		maxlength = lad
	}
	if lbc > maxlength {
		maxlength = lbc
	}
	if lbd > maxlength {
		maxlength = lbd
	}
	if lcd > maxlength {
		maxlength = lcd
	}

	if lac == maxlength {
		return f.planet(a, c, b, d, x, y, z, level)
	}
	if lad == maxlength {
		return f.planet(a, d, b, c, x, y, z, level)
	}
	if lbc == maxlength {
		return f.planet(b, c, a, d, x, y, z, level)
	}
	if lbd == maxlength {
		return f.planet(b, d, a, c, x, y, z, level)
	}
	if lcd == maxlength {
		return f.planet(c, d, a, b, x, y, z, level)
	}

	if level == cacheLevel {
		f.cache[0] = a
		f.cache[1] = b
		f.cache[2] = c
		f.cache[3] = d
	}

	// cut ab at a seeded midpoint
	var e Vertex
	e.Seed = rand2(a.Seed, b.Seed)
	es1 := rand2(e.Seed, e.Seed)
	es2 := 0.5 + 0.1*rand2(es1, es1)
	es3 := 1.0 - es2

	// the endpoint with the smaller seed
	// always takes the weight es2,
	// so the cut point does not depend
	// on the order of a and b
	switch {
	case a.Seed < b.Seed:
		e.X = es2*a.X + es3*b.X
		e.Y = es2*a.Y + es3*b.Y
		e.Z = es2*a.Z + es3*b.Z
	case a.Seed > b.Seed:
		e.X = es3*a.X + es2*b.X
		e.Y = es3*a.Y + es2*b.Y
		e.Z = es3*a.Z + es2*b.Z
	default:
		e.X = 0.5*a.X + 0.5*b.X
		e.Y = 0.5*a.Y + 0.5*b.Y
		e.Z = 0.5*a.Z + 0.5*b.Z
	}

	if f.m.hint != nil && lab > f.m.matchSize {
		// take the altitude from the hint grid
		w, h := f.m.hint.Width(), f.m.hint.Height()
		l := math.Sqrt(e.X*e.X + e.Y*e.Y + e.Z*e.Z)
		yy := math.Asin(e.Y/l)*float64(h-1)/math.Pi + float64(h-1)/2
		xx := math.Atan2(e.X, e.Z)*float64(w-1)/2/math.Pi + float64(w-1)/2
		e.Alt = float64(f.m.hint.At(int(xx+0.5), int(yy+0.5))) * 0.1 / 8.0
	} else {
		if lab > 1.0 {
			// decrease the contribution of very long edges
			lab = math.Pow(lab, 0.5)
		}
		e.Alt = 0.5*(a.Alt+b.Alt) +
			e.Seed*f.m.altWeight*math.Pow(math.Abs(a.Alt-b.Alt), f.m.altPower) +
			es1*f.m.distWeight*math.Pow(lab, f.m.distPower)
	}

	if e.Alt <= 0 || !f.m.rainShadow {
		e.Shadow = 0
	} else {
		// altitude-weighted slope at the midpoint
		x1 := 0.5 * (a.X + b.X)
		x1 = a.Alt*(x1-a.X) + b.Alt*(x1-b.X)
		y1 := 0.5 * (a.Y + b.Y)
		y1 = a.Alt*(y1-a.Y) + b.Alt*(y1-b.Y)
		z1 := 0.5 * (a.Z + b.Z)
		z1 = a.Alt*(z1-a.Z) + b.Alt*(z1-b.Z)
		l1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
		if l1 == 0 {
			l1 = 1
		}
		tmp := math.Sqrt(1 - y*y)
		if tmp < 0.0001 {
			tmp = 0.0001
		}
		z2 := -z/tmp*x1 + x/tmp*z1
		if lab > 0.04 {
			e.Shadow = (a.Shadow + b.Shadow - f.m.cosAngle*z2/l1) / 3
		} else {
			e.Shadow = (a.Shadow + b.Shadow) / 2
		}
	}

	// decide in which of the two halves
	// the target direction lies
	eax := a.X - e.X
	eay := a.Y - e.Y
	eaz := a.Z - e.Z
	ecx := c.X - e.X
	ecy := c.Y - e.Y
	ecz := c.Z - e.Z
	edx := d.X - e.X
	edy := d.Y - e.Y
	edz := d.Z - e.Z
	epx := x - e.X
	epy := y - e.Y
	epz := z - e.Z
	if (eax*ecy*edz+eay*ecz*edx+eaz*ecx*edy-
		eaz*ecy*edx-eay*ecx*edz-eax*ecz*edy)*
		(epx*ecy*edz+epy*ecz*edx+epz*ecx*edy-
			epz*ecy*edx-epy*ecx*edz-epx*ecz*edy) > 0 {
		// point is inside acde
		return f.planet(c, d, a, e, x, y, z, level-1)
	}
	// point is inside bcde
	return f.planet(c, d, b, e, x, y, z, level-1)
}
