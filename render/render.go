// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render implements the raster
// of a planetary map:
// a grid of palette color indices
// and shading intensities
// filled through a projection,
// decorated with grids,
// outlines,
// and contour lines,
// and converted to an image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/js-arias/planet/palette"
	"github.com/js-arias/planet/surface"
)

// Options select the data stored by a raster.
type Options struct {
	// Shading stores the shading intensity of each pixel.
	Shading bool

	// Grids stores the direction of each pixel,
	// needed to draw longitude and latitude grids.
	Grids bool

	// Heights stores the altitude of each pixel,
	// needed to write a heightfield.
	Heights bool

	// Climate stores the temperature and rainfall
	// of each pixel,
	// needed to draw gradient maps.
	Climate bool
}

// A Raster is a planetary map
// while it is being rendered.
// It is the canvas filled by a projection.
type Raster struct {
	width  int
	height int

	sampler *surface.Sampler
	pal     *palette.Table

	cols   [][]int
	shades [][]int

	// per pixel directions for the grid overlays
	xs, ys, zs [][]float64

	alts         [][]float64
	temps, rains [][]float64

	water, land int
}

// New creates an empty raster
// of the given size,
// filled by sampling a planet surface.
func New(s *surface.Sampler, pal *palette.Table, width, height int, o Options) *Raster {
	r := &Raster{
		width:   width,
		height:  height,
		sampler: s,
		pal:     pal,
		cols:    newGrid[int](width, height),
	}
	if o.Shading {
		r.shades = newGrid[int](width, height)
	}
	if o.Grids {
		r.xs = newGrid[float64](width, height)
		r.ys = newGrid[float64](width, height)
		r.zs = newGrid[float64](width, height)
	}
	if o.Heights {
		r.alts = newGrid[float64](width, height)
	}
	if o.Climate {
		r.temps = newGrid[float64](width, height)
		r.rains = newGrid[float64](width, height)
	}
	return r
}

func newGrid[T int | float64](width, height int) [][]T {
	g := make([][]T, height)
	for i := range g {
		g[i] = make([]T, width)
	}
	return g
}

// Width returns the number of columns of the raster.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows of the raster.
func (r *Raster) Height() int { return r.height }

// Color returns the palette color index
// at pixel (i, j).
func (r *Raster) Color(i, j int) int { return r.cols[j][i] }

// Shade returns the shading intensity
// at pixel (i, j),
// or 0 if the raster has no shading.
func (r *Raster) Shade(i, j int) int {
	if r.shades == nil {
		return 0
	}
	return r.shades[j][i]
}

// Ground implements the projection.Canvas interface:
// it samples the planet at a direction
// and stores the results for pixel (i, j).
func (r *Raster) Ground(i, j int, x, y, z float64, depth int) {
	r.sampler.Field().SetDepth(depth)
	pt := r.sampler.At(x, y, z)

	r.cols[j][i] = pt.Color
	if r.shades != nil {
		r.shades[j][i] = pt.Shade
	}
	if r.xs != nil {
		r.xs[j][i] = x
		r.ys[j][i] = y
		r.zs[j][i] = z
	}
	if r.alts != nil {
		r.alts[j][i] = pt.Alt
	}
	if r.temps != nil {
		r.temps[j][i] = pt.Temp
		r.rains[j][i] = pt.Rain
	}

	if pt.Color < r.pal.Land() {
		r.water++
	} else {
		r.land++
	}
}

// Background implements the projection.Canvas interface:
// it marks pixel (i, j) as outside the globe.
func (r *Raster) Background(i, j int) {
	r.cols[j][i] = palette.Back
	if r.shades != nil {
		r.shades[j][i] = 255
	}
}

// WaterFraction returns the fraction
// of sampled pixels below sea level.
func (r *Raster) WaterFraction() float64 {
	if r.water+r.land == 0 {
		return 0
	}
	return float64(r.water) / float64(r.water+r.land)
}

// LongitudeGrid marks the pixels
// that cross a longitude multiple of step
// (in degrees)
// with the grid color.
func (r *Raster) LongitudeGrid(step float64) {
	if r.xs == nil || step == 0 {
		return
	}
	for j := 0; j < r.height-1; j++ {
		for i := 0; i < r.width-1; i++ {
			g := false
			if math.Abs(r.ys[j][i]) == 1 {
				g = true
			} else {
				t := math.Floor((math.Atan2(r.xs[j][i], r.zs[j][i])*180/math.Pi + 360) / step)
				if t != math.Floor((math.Atan2(r.xs[j][i+1], r.zs[j][i+1])*180/math.Pi+360)/step) {
					g = true
				}
				if t != math.Floor((math.Atan2(r.xs[j+1][i], r.zs[j+1][i])*180/math.Pi+360)/step) {
					g = true
				}
			}
			if g {
				r.cols[j][i] = palette.Grid
				if r.shades != nil {
					r.shades[j][i] = 255
				}
			}
		}
	}
}

// LatitudeGrid marks the pixels
// that cross a latitude multiple of step
// (in degrees)
// with the grid color.
func (r *Raster) LatitudeGrid(step float64) {
	if r.ys == nil || step == 0 {
		return
	}
	for j := 0; j < r.height-1; j++ {
		for i := 0; i < r.width-1; i++ {
			g := false
			t := math.Floor((math.Asin(r.ys[j][i])*180/math.Pi + 360) / step)
			if t != math.Floor((math.Asin(r.ys[j][i+1])*180/math.Pi+360)/step) {
				g = true
			}
			if t != math.Floor((math.Asin(r.ys[j+1][i])*180/math.Pi+360)/step) {
				g = true
			}
			if g {
				r.cols[j][i] = palette.Grid
				if r.shades != nil {
					r.shades[j][i] = 255
				}
			}
		}
	}
}

// SmoothShades softens the shading
// by averaging each shade
// with its east, south, and south-east neighbors.
func (r *Raster) SmoothShades() {
	if r.shades == nil {
		return
	}
	for j := 0; j < r.height-2; j++ {
		for i := 0; i < r.width-2; i++ {
			r.shades[j][i] = (4*r.shades[j][i] + 2*r.shades[j+1][i] +
				2*r.shades[j][i+1] + r.shades[j+1][i+1] + 4) / 9
		}
	}
}

// WriteHeights writes the raster
// as a text heightfield:
// one row of integer altitudes per line.
// The raster must have been created
// with the Heights option.
func (r *Raster) WriteHeights(w io.Writer) error {
	if r.alts == nil {
		return fmt.Errorf("raster without heightfield data")
	}
	for j := 0; j < r.height; j++ {
		for i := 0; i < r.width; i++ {
			if i > 0 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%d", int(10000000*r.alts[j][i])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Image returns the rendered map
// painted with the palette of the raster.
// If the raster has shading,
// the colors are scaled by the shading intensity.
func (r *Raster) Image() image.Image {
	return rasterImage{r}
}

type rasterImage struct {
	r *Raster
}

func (ri rasterImage) ColorModel() color.Model { return color.RGBAModel }
func (ri rasterImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, ri.r.width, ri.r.height)
}
func (ri rasterImage) At(x, y int) color.Color {
	c := ri.r.pal.Color(ri.r.cols[y][x])
	if ri.r.shades == nil {
		return c
	}
	s := ri.r.shades[y][x]
	return color.RGBA{shaded(int(c.R), s), shaded(int(c.G), s), shaded(int(c.B), s), 255}
}

func shaded(v, s int) uint8 {
	v = s * v / 150
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
