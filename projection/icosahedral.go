// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package projection

import "math"

// Icosahedral unfolds the planet
// over the twenty triangles of an icosahedron,
// each rendered through a gnomonic view.
func Icosahedral(p Params, c Canvas) {
	depth := BaseDepth(p.Scale, p.Height)
	sq3 := math.Sqrt(3.0)
	const l1 = 10.812317  // theoretically 10.9715145571469
	const l2 = -52.622632 // theoretically -48.3100310579607
	const s = 55.6        // found by experimentation

	const deg2Rad = math.Pi / 180

	for j := 0; j < p.Height; j++ {
		for i := 0; i < p.Width; i++ {
			x0 := 198.0*(2.0*float64(i)-float64(p.Width))/float64(p.Width)/p.Scale - 36
			y0 := 198.0*(2.0*float64(j)-float64(p.Height))/float64(p.Width)/p.Scale - p.Latitude/deg2Rad

			longi1 := 0.0
			lat1 := 500.0
			if y0/sq3 <= 18.0 && y0/sq3 >= -18.0 {
				// middle row of triangles

				// upward triangles
				switch {
				case x0-y0/sq3 < 144.0 && x0+y0/sq3 >= 108.0:
					lat1 = -l1
					longi1 = 126.0
				case x0-y0/sq3 < 72.0 && x0+y0/sq3 >= 36.0:
					lat1 = -l1
					longi1 = 54.0
				case x0-y0/sq3 < 0.0 && x0+y0/sq3 >= -36.0:
					lat1 = -l1
					longi1 = -18.0
				case x0-y0/sq3 < -72.0 && x0+y0/sq3 >= -108.0:
					lat1 = -l1
					longi1 = -90.0
				case x0-y0/sq3 < -144.0 && x0+y0/sq3 >= -180.0:
					lat1 = -l1
					longi1 = -162.0

				// downward triangles
				case x0+y0/sq3 < 108.0 && x0-y0/sq3 >= 72.0:
					lat1 = l1
					longi1 = 90.0
				case x0+y0/sq3 < 36.0 && x0-y0/sq3 >= 0.0:
					lat1 = l1
					longi1 = 18.0
				case x0+y0/sq3 < -36.0 && x0-y0/sq3 >= -72.0:
					lat1 = l1
					longi1 = -54.0
				case x0+y0/sq3 < -108.0 && x0-y0/sq3 >= -144.0:
					lat1 = l1
					longi1 = -126.0
				case x0+y0/sq3 < -180.0 && x0-y0/sq3 >= -216.0:
					lat1 = l1
					longi1 = -198.0
				}
			}

			if y0/sq3 > 18.0 {
				// bottom row of triangles
				switch {
				case x0+y0/sq3 < 180.0 && x0-y0/sq3 >= 72.0:
					lat1 = l2
					longi1 = 126.0
				case x0+y0/sq3 < 108.0 && x0-y0/sq3 >= 0.0:
					lat1 = l2
					longi1 = 54.0
				case x0+y0/sq3 < 36.0 && x0-y0/sq3 >= -72.0:
					lat1 = l2
					longi1 = -18.0
				case x0+y0/sq3 < -36.0 && x0-y0/sq3 >= -144.0:
					lat1 = l2
					longi1 = -90.0
				case x0+y0/sq3 < -108.0 && x0-y0/sq3 >= -216.0:
					lat1 = l2
					longi1 = -162.0
				}
			}
			if y0/sq3 < -18.0 {
				// top row of triangles
				switch {
				case x0-y0/sq3 < 144.0 && x0+y0/sq3 >= 36.0:
					lat1 = -l2
					longi1 = 90.0
				case x0-y0/sq3 < 72.0 && x0+y0/sq3 >= -36.0:
					lat1 = -l2
					longi1 = 18.0
				case x0-y0/sq3 < 0.0 && x0+y0/sq3 >= -108.0:
					lat1 = -l2
					longi1 = -54.0
				case x0-y0/sq3 < -72.0 && x0+y0/sq3 >= -180.0:
					lat1 = -l2
					longi1 = -126.0
				case x0-y0/sq3 < -144.0 && x0+y0/sq3 >= -252.0:
					lat1 = -l2
					longi1 = -198.0
				}
			}

			if lat1 > 400 {
				c.Background(i, j)
				continue
			}

			x := (x0 - longi1) / s
			y := (y0 + lat1) / s

			longi1 = longi1*deg2Rad - p.Longitude
			lat1 = lat1 * deg2Rad

			rot := rotation{
				sla: math.Sin(lat1), cla: math.Cos(lat1),
				slo: math.Sin(longi1), clo: math.Cos(longi1),
			}

			zz := math.Sqrt(1 / (1 + x*x + y*y))
			x = x * zz
			y = y * zz
			z := math.Sqrt(1 - x*x - y*y)
			x1, y1, z1 := rot.turn(x, y, z)
			c.Ground(i, j, x1, y1, z1, depth)
		}
	}
}
