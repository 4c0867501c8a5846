// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package surface implements the per sample pipeline
// of a planetary map:
// from a direction on the unit sphere
// to altitude,
// climate,
// and a color index of the palette.
package surface

import (
	"github.com/js-arias/planet/climate"
	"github.com/js-arias/planet/palette"
	"github.com/js-arias/planet/tetra"
)

// Display selects the magnitude
// shown by the altitude ramp of the map.
type Display int

const (
	// Altitude colors.
	ShowAltitude Display = iota

	// Altitude replaced by temperature.
	ShowTemperature

	// Altitude replaced by rainfall.
	ShowRainfall

	// Whittaker biome classes on land.
	ShowBiomes
)

// Options modify the sample pipeline.
type Options struct {
	// What the color ramp shows.
	Display Display

	// Degree of latitude based coloring:
	// ice caps near the poles
	// and altitudes adjusted with latitude.
	// Zero disables it.
	Latic int

	// NonLinear scales altitudes
	// by the cube,
	// making terrain flatter near sea level.
	NonLinear bool
}

// A Sampler derives the color of map pixels
// by querying an altitude field.
// A sampler is not safe for concurrent use;
// parallel renders need one sampler
// (with its own field)
// per worker.
type Sampler struct {
	field *tetra.Field
	pal   *palette.Table
	stats *climate.Stats
	opt   Options
}

// New creates a sampler
// from a field query context
// and a color table.
func New(f *tetra.Field, pal *palette.Table, opt Options) *Sampler {
	return &Sampler{
		field: f,
		pal:   pal,
		stats: climate.NewStats(),
		opt:   opt,
	}
}

// Field returns the field query context of the sampler.
func (s *Sampler) Field() *tetra.Field { return s.field }

// Stats returns the land climate statistics
// accumulated by the sampler.
func (s *Sampler) Stats() *climate.Stats { return s.stats }

// A Point is a fully derived sample.
type Point struct {
	Alt    float64 // altitude of the field
	Temp   float64
	Rain   float64
	Shadow float64 // rain shadow
	Color  int     // color index in the palette
	Shade  int     // shading intensity in [10, 255], or 0 without shading
}

// At samples the planet
// at a direction (x, y, z) on the unit sphere.
func (s *Sampler) At(x, y, z float64) Point {
	alt := s.field.Altitude(x, y, z)
	shadow := s.field.Shadow()

	var pt Point
	pt.Alt = alt
	pt.Shadow = shadow

	temp := climate.Temperature(y, alt)
	pt.Temp = temp
	s.stats.AddTemperature(alt, temp)
	if s.opt.Display == ShowTemperature {
		alt = temp - 0.05
	}

	rain := climate.Rainfall(y, temp, shadow)
	pt.Rain = rain
	s.stats.AddRainfall(pt.Alt, rain)
	if s.opt.Display == ShowRainfall {
		alt = rain - 0.02
	}

	if s.opt.NonLinear {
		// non-linear scaling makes terrain
		// flatter near sea level
		alt = alt * alt * alt * 300
	}

	y2 := y * y
	y2 = y2 * y2
	y2 = y2 * y2

	pt.Color = s.color(alt, temp, rain, y2)
	pt.Shade = s.field.Shade()
	return pt
}

// Color classifies a sample
// into a color index of the palette.
func (s *Sampler) color(alt, temp, rain, y2 float64) int {
	sea := s.pal.Sea()
	land := s.pal.Land()
	highest := s.pal.Highest()

	if s.opt.Display == ShowBiomes {
		if alt <= 0 {
			c := sea + int(float64(sea-palette.Lowest+1)*(10*alt))
			if c < palette.Lowest {
				c = palette.Lowest
			}
			return c
		}
		b := climate.BiomeAt(temp, rain)
		return int(b) - 64 + land
	}

	if alt <= 0 {
		if s.opt.Latic > 0 && y2+alt >= 1.0-0.02*float64(s.opt.Latic*s.opt.Latic) {
			// ice caps near the poles
			return highest
		}
		c := sea + int(float64(sea-palette.Lowest+1)*(10*alt))
		if c < palette.Lowest {
			c = palette.Lowest
		}
		return c
	}

	if s.opt.Latic > 0 {
		// altitude adjusted with latitude
		alt += 0.1 * float64(s.opt.Latic) * y2
	}
	if alt >= 0.1 {
		return highest
	}
	c := land + int(float64(highest-land+1)*(10*alt))
	if c > highest {
		c = highest
	}
	return c
}
