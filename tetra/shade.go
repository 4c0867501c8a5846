// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tetra

import "math"

// leafShade estimates the shading intensity
// at the leaf tetrahedron (a, b, c, d)
// for the direction (x, y, z),
// and stores it as a side output.
//
// The surface normal is estimated
// from the altitudes of the four enclosing vertices.
func (f *Field) leafShade(a, b, c, d Vertex, x, y, z float64) {
	switch f.m.shading {
	case Bump, BumpLand:
		x1 := 0.25 * (a.X + b.X + c.X + d.X)
		x1 = a.Alt*(x1-a.X) + b.Alt*(x1-b.X) + c.Alt*(x1-c.X) + d.Alt*(x1-d.X)
		y1 := 0.25 * (a.Y + b.Y + c.Y + d.Y)
		y1 = a.Alt*(y1-a.Y) + b.Alt*(y1-b.Y) + c.Alt*(y1-c.Y) + d.Alt*(y1-d.Y)
		z1 := 0.25 * (a.Z + b.Z + c.Z + d.Z)
		z1 = a.Alt*(z1-a.Z) + b.Alt*(z1-b.Z) + c.Alt*(z1-c.Z) + d.Alt*(z1-d.Z)
		l1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
		if l1 == 0 {
			l1 = 1
		}
		tmp := math.Sqrt(1 - y*y)
		if tmp < 0.0001 {
			tmp = 0.0001
		}
		y2 := -x*y/tmp*x1 + tmp*y1 - z*y/tmp*z1
		z2 := -z/tmp*x1 + x/tmp*z1
		shade := int((-f.m.sinAngle*y2 - f.m.cosAngle*z2) / l1 * 48.0 + 128.0)
		if shade < 10 {
			shade = 10
		}
		if shade > 255 {
			shade = 255
		}
		if f.m.shading == BumpLand && a.Alt+b.Alt+c.Alt+d.Alt < 0 {
			shade = 150
		}
		f.shade = shade
	case Daylight:
		var x1, y1, z1 float64
		if a.Alt+b.Alt+c.Alt+d.Alt <= 0 {
			// sea: the normal is the direction itself
			x1, y1, z1 = x, y, z
		} else {
			x1 = 0.25 * (a.X + b.X + c.X + d.X)
			x1 = a.Alt*(x1-a.X) + b.Alt*(x1-b.X) + c.Alt*(x1-c.X) + d.Alt*(x1-d.X)
			y1 = 0.25 * (a.Y + b.Y + c.Y + d.Y)
			y1 = a.Alt*(y1-a.Y) + b.Alt*(y1-b.Y) + c.Alt*(y1-c.Y) + d.Alt*(y1-d.Y)
			z1 = 0.25 * (a.Z + b.Z + c.Z + d.Z)
			z1 = a.Alt*(z1-a.Z) + b.Alt*(z1-b.Z) + c.Alt*(z1-c.Z) + d.Alt*(z1-d.Z)
			l1 := 5.0 * math.Sqrt(x1*x1+y1*y1+z1*z1)
			x1 += x * l1
			y1 += y * l1
			z1 += z * l1
		}
		l1 := math.Sqrt(x1*x1 + y1*y1 + z1*z1)
		if l1 == 0 {
			l1 = 1
		}
		a1 := math.Pi * f.m.shadeAngle / 180
		a2 := math.Pi * f.m.shadeAngle2 / 180
		x2 := math.Cos(a1-0.5*math.Pi) * math.Cos(a2)
		y2 := -math.Sin(a2)
		z2 := -math.Sin(a1-0.5*math.Pi) * math.Cos(a2)
		shade := int((x1*x2 + y1*y2 + z1*z2) / l1 * 170.0 + 10)
		if shade < 10 {
			shade = 10
		}
		if shade > 255 {
			shade = 255
		}
		f.shade = shade
	}
}
