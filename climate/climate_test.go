// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package climate_test

import (
	"math"
	"testing"

	"github.com/js-arias/planet/climate"
)

func TestTemperature(t *testing.T) {
	tests := map[string]struct {
		y, alt float64
		want   float64
	}{
		"equator, sea level": {y: 0, alt: 0, want: 1.0 / 8},
		"equator, deep sea":  {y: 0, alt: -0.1, want: 1.0/8 - 0.1*0.3},
		"equator, highland":  {y: 0, alt: 0.1, want: 1.0/8 - 0.1*1.2},
		"pole, lowland":      {y: 1, alt: 0.01, want: -0.01 * 1.2},
	}
	for name, test := range tests {
		got := climate.Temperature(test.y, test.alt)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("%s: got %.6f, want %.6f", name, got, test.want)
		}
	}
}

func TestRainfall(t *testing.T) {
	// at the horse latitudes (y = 0.5)
	// the reduction term peaks
	mid := climate.Rainfall(0.5, 0.2, 0)
	eq := climate.Rainfall(0, 0.2, 0)
	if mid >= eq {
		t.Errorf("horse latitudes: got %.6f, want less than %.6f", mid, eq)
	}

	// the rain shadow term is additive
	base := climate.Rainfall(0, 0.2, 0)
	shadowed := climate.Rainfall(0, 0.2, -2)
	if got, want := base-shadowed, 0.03*2.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("rain shadow: got a difference of %.6f, want %.6f", got, want)
	}

	// rainfall is never negative
	if got := climate.Rainfall(0.5, -1, -100); got != 0 {
		t.Errorf("dry planet: got %.6f, want 0", got)
	}
}

func TestBiomeAt(t *testing.T) {
	tests := map[string]struct {
		temp, rain float64
		want       climate.Biome
	}{
		// both indices clamp at 44
		"hot and wet":  {temp: 0.5, rain: 0.5, want: climate.TropicalRainForest},
		"cold and dry": {temp: -0.5, rain: 0, want: climate.Icecap},
		// rain*300-9 = 0, temp*300+10 = 40
		"hot desert": {temp: 0.1, rain: 0.03, want: climate.Desert},
		// rain*300-9 = 21, temp*300+10 = 27
		"temperate forest": {temp: 0.057, rain: 0.1, want: climate.TemperateForest},
	}
	for name, test := range tests {
		if got := climate.BiomeAt(test.temp, test.rain); got != test.want {
			t.Errorf("%s: got %s, want %s", name, got, test.want)
		}
	}
}

func TestStats(t *testing.T) {
	s := climate.NewStats()

	// sea samples must be ignored
	s.AddTemperature(-0.5, 0.1)
	s.AddRainfall(-0.5, 0.1)
	if s.TempMin != 1000 || s.TempMax != -1000 {
		t.Errorf("sea samples: got range [%g, %g], want empty", s.TempMin, s.TempMax)
	}

	s.AddTemperature(0.05, 0.1)
	s.AddTemperature(0.05, -0.2)
	s.AddRainfall(0.05, 0.3)
	s.AddRainfall(0.05, 0.7)
	if s.TempMin != -0.2 || s.TempMax != 0.1 {
		t.Errorf("temperature: got range [%g, %g], want [-0.2, 0.1]", s.TempMin, s.TempMax)
	}
	if s.RainMin != 0.3 || s.RainMax != 0.7 {
		t.Errorf("rainfall: got range [%g, %g], want [0.3, 0.7]", s.RainMin, s.RainMax)
	}
}
