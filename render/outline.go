// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import "github.com/js-arias/planet/palette"

// Outline marks the coastlines of the map
// with the outline colors.
// ContourLines adds that many altitude contour lines on land;
// coastContourLines adds contour lines
// on the shallow sea near the coasts.
// If bw is true the map is reduced
// to black outlines on white.
func (r *Raster) Outline(bw bool, contourLines, coastContourLines int) {
	sea := r.pal.Sea()
	land := r.pal.Land()
	highest := r.pal.Highest()

	type point struct{ i, j int }
	var out []point

	for j := 1; j < r.height-1; j++ {
		for i := 1; i < r.width-1; i++ {
			c := r.cols[j][i]
			if c < palette.Lowest || c > sea {
				continue
			}
			// a sea point with at least one land neighbor
			// is part of the coastline
			if r.cols[j][i-1] >= land || r.cols[j][i+1] >= land ||
				r.cols[j-1][i] >= land || r.cols[j+1][i] >= land ||
				r.cols[j-1][i-1] >= land || r.cols[j+1][i-1] >= land ||
				r.cols[j-1][i+1] >= land || r.cols[j+1][i+1] >= land {
				out = append(out, point{i, j})
			}
		}
	}

	if contourLines > 0 {
		step := (highest - land) / (contourLines + 1)
		if step > 0 {
			for j := 1; j < r.height-1; j++ {
				for i := 1; i < r.width-1; i++ {
					c := r.cols[j][i]
					if c < land {
						continue
					}
					t := (c - land) / step
					if (r.cols[j][i-1]-land)/step > t ||
						(r.cols[j][i+1]-land)/step > t ||
						(r.cols[j-1][i]-land)/step > t ||
						(r.cols[j+1][i]-land)/step > t {
						// a point on a contour line
						// with a higher neighbor
						out = append(out, point{i, j})
					}
				}
			}
		}
	}
	if coastContourLines > 0 {
		step := (land - palette.Lowest) / 20
		if step > 0 {
			for j := 1; j < r.height-1; j++ {
				for i := 1; i < r.width-1; i++ {
					c := r.cols[j][i]
					if c > sea {
						continue
					}
					t := (c - land) / step
					if t < -coastContourLines {
						continue
					}
					if (r.cols[j][i-1]-land)/step > t ||
						(r.cols[j][i+1]-land)/step > t ||
						(r.cols[j-1][i]-land)/step > t ||
						(r.cols[j+1][i]-land)/step > t {
						out = append(out, point{i, j})
					}
				}
			}
		}
	}

	if bw {
		// clear the map to black coasts on white land
		for j := 0; j < r.height; j++ {
			for i := 0; i < r.width; i++ {
				if r.cols[j][i] >= palette.Lowest {
					r.cols[j][i] = palette.White
				} else {
					r.cols[j][i] = palette.Black
				}
			}
		}
	}

	step := (highest - land) / (contourLines + 1)
	for _, p := range out {
		t := palette.Black
		if !bw {
			t = r.cols[p.j][p.i]
			if t != palette.Outline1 && t != palette.Outline2 {
				switch {
				case contourLines > 0 && t >= land && step > 0:
					if ((t-land)/step)%2 == 1 {
						t = palette.Outline1
					} else {
						t = palette.Outline2
					}
				case t <= sea:
					t = palette.Outline1
				}
			}
		}
		r.cols[p.j][p.i] = t
	}
}
