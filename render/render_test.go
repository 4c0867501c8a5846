// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"image/color"
	"testing"

	"github.com/js-arias/planet/hintmap"
	"github.com/js-arias/planet/palette"
	"github.com/js-arias/planet/surface"
	"github.com/js-arias/planet/tetra"
)

func testRaster(width, height int, o Options) *Raster {
	r := &Raster{
		width:  width,
		height: height,
		pal:    palette.Default(),
		cols:   newGrid[int](width, height),
	}
	if o.Shading {
		r.shades = newGrid[int](width, height)
	}
	if o.Grids {
		r.xs = newGrid[float64](width, height)
		r.ys = newGrid[float64](width, height)
		r.zs = newGrid[float64](width, height)
	}
	return r
}

func TestOutline(t *testing.T) {
	r := testRaster(5, 5, Options{})
	sea := r.pal.Sea()
	land := r.pal.Land()
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			r.cols[j][i] = sea
		}
	}
	r.cols[2][2] = land

	r.Outline(false, 0, 0)

	// the eight sea neighbors of the land pixel
	// are now coastline
	for j := 1; j <= 3; j++ {
		for i := 1; i <= 3; i++ {
			if i == 2 && j == 2 {
				continue
			}
			if got := r.cols[j][i]; got != palette.Outline1 {
				t.Errorf("pixel (%d, %d): got %d, want %d", i, j, got, palette.Outline1)
			}
		}
	}
	if got := r.cols[2][2]; got != land {
		t.Errorf("land pixel: got %d, want %d", got, land)
	}
	if got := r.cols[0][0]; got != sea {
		t.Errorf("open sea pixel: got %d, want %d", got, sea)
	}
}

func TestOutlineBW(t *testing.T) {
	r := testRaster(5, 5, Options{})
	sea := r.pal.Sea()
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			r.cols[j][i] = sea
		}
	}
	r.cols[2][2] = r.pal.Land()

	r.Outline(true, 0, 0)

	if got := r.cols[2][2]; got != palette.White {
		t.Errorf("land pixel: got %d, want %d", got, palette.White)
	}
	if got := r.cols[1][1]; got != palette.Black {
		t.Errorf("coast pixel: got %d, want %d", got, palette.Black)
	}
	if got := r.cols[0][0]; got != palette.White {
		t.Errorf("open sea pixel: got %d, want %d", got, palette.White)
	}
}

func TestSmoothShades(t *testing.T) {
	r := testRaster(3, 3, Options{Shading: true})
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			r.shades[j][i] = 90
		}
	}
	r.shades[1][1] = 99

	r.SmoothShades()

	want := (4*90 + 2*90 + 2*90 + 99 + 4) / 9
	if got := r.shades[0][0]; got != want {
		t.Errorf("smoothed shade: got %d, want %d", got, want)
	}
}

func TestLatitudeGrid(t *testing.T) {
	r := testRaster(2, 2, Options{Grids: true})
	sea := r.pal.Sea()
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			r.cols[j][i] = sea
		}
	}
	// the south neighbor is at a latitude
	// across a 45 degree parallel
	r.ys[1][0] = 0.8

	r.LatitudeGrid(45)

	if got := r.cols[0][0]; got != palette.Grid {
		t.Errorf("grid pixel: got %d, want %d", got, palette.Grid)
	}
	if got := r.cols[1][1]; got != sea {
		t.Errorf("plain pixel: got %d, want %d", got, sea)
	}
}

func TestWaterFraction(t *testing.T) {
	r := testRaster(2, 2, Options{})
	r.water = 3
	r.land = 1
	if got := r.WaterFraction(); got != 0.75 {
		t.Errorf("water fraction: got %g, want 0.75", got)
	}

	empty := testRaster(2, 2, Options{})
	if got := empty.WaterFraction(); got != 0 {
		t.Errorf("empty raster: got %g, want 0", got)
	}
}

func TestImageShading(t *testing.T) {
	r := testRaster(1, 1, Options{Shading: true})
	r.cols[0][0] = palette.White
	r.shades[0][0] = 150

	// a shade of 150 leaves the color unchanged
	img := r.Image()
	if got := img.At(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("neutral shade: got %v", got)
	}

	// brighter shades are clamped
	r.shades[0][0] = 255
	if got := r.Image().At(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("bright shade: got %v", got)
	}

	// darker shades darken the color
	r.shades[0][0] = 75
	if got := r.Image().At(0, 0); got != (color.RGBA{127, 127, 127, 255}) {
		t.Errorf("dark shade: got %v", got)
	}
}

// A raster filled through a flat planet
// counts its water and stores its colors.
func TestGround(t *testing.T) {
	g := hintmap.New(48, 24)
	p := tetra.DefaultParam()
	p.Depth = 12
	p.Altitude = 0
	p.Hint = g
	p.MatchSize = 0

	pal := palette.Default()
	smp := surface.New(tetra.New(p).NewField(), pal, surface.Options{})

	r := New(smp, pal, 2, 2, Options{Shading: true})
	r.Ground(0, 0, 1, 0, 0, 12)
	r.Background(1, 0)

	if got := r.Color(0, 0); got != pal.Sea() {
		t.Errorf("flat sea pixel: got %d, want %d", got, pal.Sea())
	}
	if got := r.Color(1, 0); got != palette.Back {
		t.Errorf("background pixel: got %d, want %d", got, palette.Back)
	}
	if got := r.Shade(1, 0); got != 255 {
		t.Errorf("background shade: got %d, want 255", got)
	}
	if got := r.WaterFraction(); got != 1 {
		t.Errorf("water fraction: got %g, want 1", got)
	}
	if got, want := r.Image().Bounds().Dx(), 2; got != want {
		t.Errorf("image width: got %d, want %d", got, want)
	}
}
