// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/planet/palette"
)

// Gradienter is an interface for types
// that return a color gradient.
type Gradienter interface {
	Gradient(v float64) color.Color
}

// Incandescent returns the incandescent
// sequential color scheme,
// used by default for temperature maps.
type Incandescent struct{}

func (in Incandescent) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return blind.Sequential(blind.Incandescent, v)
}

// Iridescent returns the iridescent
// sequential color scheme,
// used by default for rainfall maps.
type Iridescent struct{}

func (ir Iridescent) Gradient(v float64) color.Color {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return blind.Sequential(blind.Iridescent, v)
}

// TemperatureImage returns a map
// of the sampled temperatures
// drawn with a color gradient,
// scaled between the coldest and warmest samples.
// The raster must have been created
// with the Climate option.
func (r *Raster) TemperatureImage(g Gradienter) (image.Image, error) {
	if r.temps == nil {
		return nil, fmt.Errorf("raster without climate data")
	}
	if g == nil {
		g = Incandescent{}
	}
	return newClimateImage(r, r.temps, g), nil
}

// RainfallImage returns a map
// of the sampled rainfall
// drawn with a color gradient,
// scaled between the driest and wettest samples.
// The raster must have been created
// with the Climate option.
func (r *Raster) RainfallImage(g Gradienter) (image.Image, error) {
	if r.rains == nil {
		return nil, fmt.Errorf("raster without climate data")
	}
	if g == nil {
		g = Iridescent{}
	}
	return newClimateImage(r, r.rains, g), nil
}

type climateImage struct {
	r        *Raster
	vals     [][]float64
	g        Gradienter
	min, max float64
}

func newClimateImage(r *Raster, vals [][]float64, g Gradienter) climateImage {
	ci := climateImage{
		r:    r,
		vals: vals,
		g:    g,
	}
	first := true
	for j := 0; j < r.height; j++ {
		for i := 0; i < r.width; i++ {
			if r.cols[j][i] == palette.Back {
				continue
			}
			v := vals[j][i]
			if first {
				ci.min, ci.max = v, v
				first = false
				continue
			}
			if v < ci.min {
				ci.min = v
			}
			if v > ci.max {
				ci.max = v
			}
		}
	}
	return ci
}

func (ci climateImage) ColorModel() color.Model { return color.RGBAModel }
func (ci climateImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, ci.r.width, ci.r.height)
}
func (ci climateImage) At(x, y int) color.Color {
	if ci.r.cols[y][x] == palette.Back {
		return color.RGBA{A: 255}
	}
	v := 0.0
	if ci.max > ci.min {
		v = (ci.vals[y][x] - ci.min) / (ci.max - ci.min)
	}
	return ci.g.Gradient(v)
}
