// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package palette_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/js-arias/planet/palette"
)

func TestRead(t *testing.T) {
	data := `# a tiny color table
0 0 0 0
4 40 80 120
`
	p, err := palette.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// tables are padded to at least 10 colors
	if p.Len() != 10 {
		t.Fatalf("len: got %d, want 10", p.Len())
	}
	if p.Highest() != 9 {
		t.Errorf("highest: got %d, want 9", p.Highest())
	}

	// interpolated colors
	tests := []struct {
		i    int
		want color.RGBA
	}{
		{0, color.RGBA{0, 0, 0, 255}},
		{1, color.RGBA{10, 20, 30, 255}},
		{2, color.RGBA{20, 40, 60, 255}},
		{3, color.RGBA{30, 60, 90, 255}},
		{4, color.RGBA{40, 80, 120, 255}},
		// padded with the last read color
		{9, color.RGBA{40, 80, 120, 255}},
	}
	for _, test := range tests {
		if got := p.Color(test.i); got != test.want {
			t.Errorf("color %d: got %v, want %v", test.i, got, test.want)
		}
	}
}

func TestReadDecreasing(t *testing.T) {
	data := `0 0 0 0
20 100 100 100
10 255 255 255
`
	p, err := palette.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a decreasing index overwrites the last color
	if got, want := p.Color(20), (color.RGBA{255, 255, 255, 255}); got != want {
		t.Errorf("color 20: got %v, want %v", got, want)
	}
	if p.Len() != 21 {
		t.Errorf("len: got %d, want 21", p.Len())
	}
}

func TestReadError(t *testing.T) {
	if _, err := palette.Read(strings.NewReader("0 0 0\n")); err == nil {
		t.Errorf("short row: expecting error")
	}
	if _, err := palette.Read(strings.NewReader("0 x 0 0\n")); err == nil {
		t.Errorf("bad value: expecting error")
	}
}

func TestDefault(t *testing.T) {
	p := palette.Default()

	if p.Len() != 256 {
		t.Fatalf("len: got %d, want 256", p.Len())
	}
	if p.Highest() != 255 {
		t.Errorf("highest: got %d, want 255", p.Highest())
	}
	if p.Sea() != 130 {
		t.Errorf("sea: got %d, want 130", p.Sea())
	}
	if p.Land() != 131 {
		t.Errorf("land: got %d, want 131", p.Land())
	}

	// the sea ramp must get lighter
	// from the deepest sea to sea level
	prev := p.Color(palette.Lowest)
	for i := palette.Lowest + 1; i <= p.Sea(); i++ {
		c := p.Color(i)
		if c.R < prev.R || c.G < prev.G || c.B < prev.B {
			t.Errorf("sea ramp: color %d (%v) darker than %d (%v)", i, c, i-1, prev)
		}
		prev = c
	}
}

func TestBiomeColors(t *testing.T) {
	p := palette.Default()
	p.SetBiomeColors()

	land := p.Land()
	if got, want := p.Color(int('I')-64+land), (color.RGBA{255, 255, 255, 255}); got != want {
		t.Errorf("icecap: got %v, want %v", got, want)
	}
	if got, want := p.Color(int('O')-64+land), (color.RGBA{110, 160, 170, 255}); got != want {
		t.Errorf("tropical rain forest: got %v, want %v", got, want)
	}

	over := "T 1 2 3\n"
	if err := p.ReadBiomeColors(strings.NewReader(over)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := p.Color(int('T')-64+land), (color.RGBA{1, 2, 3, 255}); got != want {
		t.Errorf("tundra override: got %v, want %v", got, want)
	}

	if err := p.ReadBiomeColors(strings.NewReader("X 0 0 0\n")); err == nil {
		t.Errorf("unknown biome: expecting error")
	}
}
