// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package projection implements the cartographic projections
// used to render planetary maps.
//
// A projection scans the pixels of a raster
// and reports,
// for each pixel,
// the direction on the unit sphere
// seen through that pixel,
// or that the pixel is outside the globe.
package projection

import (
	"math"
	"slices"
)

// A Canvas receives the pixels produced by a projection.
type Canvas interface {
	// Ground reports that pixel (i, j)
	// sees the direction (x, y, z) on the unit sphere.
	// Depth is the subdivision depth
	// suggested for the sample,
	// adapted to the local magnification.
	Ground(i, j int, x, y, z float64, depth int)

	// Background reports that pixel (i, j)
	// is outside the projected globe.
	Background(i, j int)
}

// Params define the view of a projection.
type Params struct {
	// Size of the raster in pixels.
	Width, Height int

	// Magnification of the map.
	Scale float64

	// Center of the view,
	// in radians.
	Longitude float64
	Latitude  float64
}

// A Func scans a raster through a projection.
type Func func(p Params, c Canvas)

// Projections maps projection names
// to their implementations.
var Projections = map[string]Func{
	"azimuthal":     Azimuthal,
	"conical":       Conical,
	"gnomonic":      Gnomonic,
	"icosahedral":   Icosahedral,
	"mercator":      Mercator,
	"mollweide":     Mollweide,
	"orthographic":  Orthographic,
	"peters":        Peters,
	"sinusoid":      Sinusoid,
	"square":        Square,
	"stereographic": Stereographic,
}

// Names returns the sorted names
// of the available projections.
func Names() []string {
	names := make([]string, 0, len(Projections))
	for n := range Projections {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// BaseDepth returns the subdivision depth
// for a raster of a given height
// at a given magnification.
func BaseDepth(scale float64, height int) int {
	return 3*int(math.Log2(scale*float64(height))) + 6
}

// rowDepth is the adaptive depth
// used by the cylindrical projections,
// which magnify the rows near the poles.
func rowDepth(scale1 float64, height int) int {
	return 3*int(math.Log2(scale1*float64(height))) + 3
}

// closeDepth is the adaptive depth
// used by the perspective projections
// when zoomed out.
func closeDepth(scale float64, height int) int {
	return int(float64(3*int(math.Log2(scale*float64(height)))+6) + 1.5/scale)
}

// rotation holds the view rotation
// shared by the perspective projections.
type rotation struct {
	sla, cla float64
	slo, clo float64
}

func newRotation(p Params) rotation {
	return rotation{
		sla: math.Sin(p.Latitude),
		cla: math.Cos(p.Latitude),
		slo: math.Sin(p.Longitude),
		clo: math.Cos(p.Longitude),
	}
}

// Turn rotates a direction
// from view coordinates
// to planet coordinates.
func (r rotation) turn(x, y, z float64) (float64, float64, float64) {
	x1 := r.clo*x + r.slo*r.sla*y + r.slo*r.cla*z
	y1 := r.cla*y - r.sla*z
	z1 := -r.slo*x + r.clo*r.sla*y + r.clo*r.cla*z
	return x1, y1, z1
}

// Mercator is the conformal cylindrical projection.
func Mercator(p Params, c Canvas) {
	y := math.Sin(p.Latitude)
	y = (1 + y) / (1 - y)
	y = 0.5 * math.Log(y)
	k := int(0.5*y*float64(p.Width)*p.Scale/math.Pi + 0.5)
	for j := 0; j < p.Height; j++ {
		y = math.Pi * (2.0*float64(j-k) - float64(p.Height)) / float64(p.Width) / p.Scale
		y = math.Exp(2 * y)
		y = (y - 1) / (y + 1)
		scale1 := p.Scale * float64(p.Width) / float64(p.Height) / math.Sqrt(1-y*y) / math.Pi
		cos2 := math.Sqrt(1 - y*y)
		depth := rowDepth(scale1, p.Height)
		for i := 0; i < p.Width; i++ {
			theta1 := p.Longitude - 0.5*math.Pi + math.Pi*(2.0*float64(i)-float64(p.Width))/float64(p.Width)/p.Scale
			c.Ground(i, j, math.Cos(theta1)*cos2, y, -math.Sin(theta1)*cos2, depth)
		}
	}
}

// Peters is the area preserving cylindrical projection.
func Peters(p Params, c Canvas) {
	y := 2 * math.Sin(p.Latitude)
	k := int(0.5*y*float64(p.Width)*p.Scale/math.Pi + 0.5)
	for j := 0; j < p.Height; j++ {
		y = 0.5 * math.Pi * (2.0*float64(j-k) - float64(p.Height)) / float64(p.Width) / p.Scale
		if math.Abs(y) > 1 {
			for i := 0; i < p.Width; i++ {
				c.Background(i, j)
			}
			continue
		}
		cos2 := math.Sqrt(1 - y*y)
		if cos2 <= 0 {
			continue
		}
		scale1 := p.Scale * float64(p.Width) / float64(p.Height) / cos2 / math.Pi
		depth := rowDepth(scale1, p.Height)
		for i := 0; i < p.Width; i++ {
			theta1 := p.Longitude - 0.5*math.Pi + math.Pi*(2.0*float64(i)-float64(p.Width))/float64(p.Width)/p.Scale
			c.Ground(i, j, math.Cos(theta1)*cos2, y, -math.Sin(theta1)*cos2, depth)
		}
	}
}

// Square is the cylindrical projection
// with equidistant latitudes.
func Square(p Params, c Canvas) {
	k := int(0.5*p.Latitude*float64(p.Width)*p.Scale/math.Pi + 0.5)
	for j := 0; j < p.Height; j++ {
		y := (2.0*float64(j-k) - float64(p.Height)) / float64(p.Width) / p.Scale * math.Pi
		if math.Abs(y+y) > math.Pi {
			for i := 0; i < p.Width; i++ {
				c.Background(i, j)
			}
			continue
		}
		cos2 := math.Cos(y)
		if cos2 <= 0 {
			continue
		}
		scale1 := p.Scale * float64(p.Width) / float64(p.Height) / cos2 / math.Pi
		depth := rowDepth(scale1, p.Height)
		for i := 0; i < p.Width; i++ {
			theta1 := p.Longitude - 0.5*math.Pi + math.Pi*(2.0*float64(i)-float64(p.Width))/float64(p.Width)/p.Scale
			c.Ground(i, j, math.Cos(theta1)*cos2, math.Sin(y), -math.Sin(theta1)*cos2, depth)
		}
	}
}

// Mollweide is the area preserving elliptical projection.
func Mollweide(p Params, c Canvas) {
	rot := newRotation(p)
	for j := 0; j < p.Height; j++ {
		y1 := 2 * (2.0*float64(j) - float64(p.Height)) / float64(p.Width) / p.Scale
		if math.Abs(y1) >= 1 {
			for i := 0; i < p.Width; i++ {
				c.Background(i, j)
			}
			continue
		}
		zz := math.Sqrt(1 - y1*y1)
		y := 2 / math.Pi * (y1*zz + math.Asin(y1))
		cos2 := math.Sqrt(1 - y*y)
		if cos2 <= 0 {
			continue
		}
		scale1 := p.Scale * float64(p.Width) / float64(p.Height) / cos2 / math.Pi
		depth := rowDepth(scale1, p.Height)
		for i := 0; i < p.Width; i++ {
			theta1 := math.Pi / zz * (2.0*float64(i) - float64(p.Width)) / float64(p.Width) / p.Scale
			if math.Abs(theta1) > math.Pi {
				c.Background(i, j)
				continue
			}
			theta1 += -0.5 * math.Pi
			x2 := math.Cos(theta1) * cos2
			y2 := y
			z2 := -math.Sin(theta1) * cos2
			x3, y3, z3 := rot.turn(x2, y2, z2)
			c.Ground(i, j, x3, y3, z3, depth)
		}
	}
}

// Sinusoid is the area preserving projection
// with straight parallels,
// interrupted at every 30 degrees of longitude.
func Sinusoid(p Params, c Canvas) {
	k := int(p.Latitude*float64(p.Width)*p.Scale/math.Pi + 0.5)
	for j := 0; j < p.Height; j++ {
		y := (2.0*float64(j-k) - float64(p.Height)) / float64(p.Width) / p.Scale * math.Pi
		if math.Abs(y+y) > math.Pi {
			for i := 0; i < p.Width; i++ {
				c.Background(i, j)
			}
			continue
		}
		cos2 := math.Cos(y)
		if cos2 <= 0 {
			continue
		}
		scale1 := p.Scale * float64(p.Width) / float64(p.Height) / cos2 / math.Pi
		depth := rowDepth(scale1, p.Height)
		for i := 0; i < p.Width; i++ {
			l := int(float64(i*12/p.Width) / p.Scale)
			l1 := float64(l) * float64(p.Width) * p.Scale / 12.0
			i1 := float64(i) - l1
			theta2 := p.Longitude - 0.5*math.Pi + math.Pi*(2.0*l1-float64(p.Width))/float64(p.Width)/p.Scale
			theta1 := (math.Pi * (2.0*i1 - float64(p.Width)*p.Scale/12.0) / float64(p.Width) / p.Scale) / cos2
			if math.Abs(theta1) > math.Pi/12.0 {
				c.Background(i, j)
				continue
			}
			c.Ground(i, j,
				math.Cos(theta1+theta2)*cos2, math.Sin(y), -math.Sin(theta1+theta2)*cos2,
				depth)
		}
	}
}

// Stereographic is the conformal perspective projection.
func Stereographic(p Params, c Canvas) {
	rot := newRotation(p)
	depth := BaseDepth(p.Scale, p.Height)
	if p.Scale < 1 {
		depth = closeDepth(p.Scale, p.Height)
	}
	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			x := (2.0*float64(i) - float64(p.Width)) / float64(p.Height) / p.Scale
			y := (2.0*float64(j) - float64(p.Height)) / float64(p.Height) / p.Scale
			z := x*x + y*y
			zz := 0.25 * (4.0 + z)
			x = x / zz
			y = y / zz
			z = (1.0 - 0.25*z) / zz
			x1, y1, z1 := rot.turn(x, y, z)
			c.Ground(i, j, x1, y1, z1, depth)
		}
	}
}

// Orthographic is the projection of the globe
// as seen from far away.
func Orthographic(p Params, c Canvas) {
	rot := newRotation(p)
	depth := BaseDepth(p.Scale, p.Height)
	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			x := (2.0*float64(i) - float64(p.Width)) / float64(p.Height) / p.Scale
			y := (2.0*float64(j) - float64(p.Height)) / float64(p.Height) / p.Scale
			if x*x+y*y > 1 {
				c.Background(i, j)
				continue
			}
			z := math.Sqrt(1 - x*x - y*y)
			x1, y1, z1 := rot.turn(x, y, z)
			c.Ground(i, j, x1, y1, z1, depth)
		}
	}
}

// Gnomonic is the perspective projection
// from the center of the planet.
func Gnomonic(p Params, c Canvas) {
	rot := newRotation(p)
	depth := BaseDepth(p.Scale, p.Height)
	if p.Scale < 1 {
		depth = closeDepth(p.Scale, p.Height)
	}
	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			x := (2.0*float64(i) - float64(p.Width)) / float64(p.Height) / p.Scale
			y := (2.0*float64(j) - float64(p.Height)) / float64(p.Height) / p.Scale
			zz := math.Sqrt(1 / (1 + x*x + y*y))
			x = x * zz
			y = y * zz
			z := math.Sqrt(1 - x*x - y*y)
			x1, y1, z1 := rot.turn(x, y, z)
			c.Ground(i, j, x1, y1, z1, depth)
		}
	}
}

// Azimuthal is the area preserving azimuthal projection.
func Azimuthal(p Params, c Canvas) {
	rot := newRotation(p)
	depth := BaseDepth(p.Scale, p.Height)
	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			x := (2.0*float64(i) - float64(p.Width)) / float64(p.Height) / p.Scale
			y := (2.0*float64(j) - float64(p.Height)) / float64(p.Height) / p.Scale
			zz := x*x + y*y
			z := 1.0 - 0.5*zz
			if z < -1 {
				c.Background(i, j)
				continue
			}
			zz = math.Sqrt(1 - 0.25*zz)
			x = x * zz
			y = y * zz
			x1, y1, z1 := rot.turn(x, y, z)
			c.Ground(i, j, x1, y1, z1, depth)
		}
	}
}

// Conical is the conformal conic projection.
// The view latitude must not be zero:
// as the latitude approaches the equator
// the cone opens into a cylinder
// (use Mercator),
// and at the poles it closes into a plane
// (use Stereographic).
func Conical(p Params, c Canvas) {
	depth := BaseDepth(p.Scale, p.Height)
	if p.Scale < 1 {
		depth = closeDepth(p.Scale, p.Height)
	}

	k1 := 1 / math.Sin(p.Latitude)
	cc := k1 * k1
	y2 := math.Sqrt(cc * (1 - math.Sin(p.Latitude/k1)) / (1 + math.Sin(p.Latitude/k1)))
	south := p.Latitude <= 0

	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			x := (2.0*float64(i) - float64(p.Width)) / float64(p.Height) / p.Scale
			y := (2.0*float64(j) - float64(p.Height)) / float64(p.Height) / p.Scale
			if south {
				y -= y2
			} else {
				y += y2
			}
			zz := x*x + y*y
			var theta1 float64
			if zz != 0 {
				if south {
					theta1 = -k1 * math.Atan2(x, -y)
				} else {
					theta1 = k1 * math.Atan2(x, y)
				}
			}
			if theta1 < -math.Pi || theta1 > math.Pi {
				c.Background(i, j)
				continue
			}
			theta1 += p.Longitude - 0.5*math.Pi // theta1 is longitude
			theta2 := k1 * math.Asin((zz-cc)/(zz+cc))
			if theta2 > 0.5*math.Pi || theta2 < -0.5*math.Pi {
				c.Background(i, j)
				continue
			}
			cos2 := math.Cos(theta2)
			y = math.Sin(theta2)
			c.Ground(i, j, math.Cos(theta1)*cos2, y, -math.Sin(theta1)*cos2, depth)
		}
	}
}
