// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package palette implements the color table
// used to paint planetary maps.
//
// A color table maps integer color indices to RGB values.
// The first indices have fixed roles
// (black, white, background, grid, outlines),
// and the remaining indices form a contiguous altitude ramp:
// the lower half for the sea,
// the upper half for the land.
package palette

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// Fixed color roles.
const (
	Black    = 0
	White    = 1
	Back     = 2 // map background
	Grid     = 3 // longitude-latitude grid lines
	Outline1 = 4 // coast outlines and odd contour lines
	Outline2 = 5 // even contour lines
	Lowest   = 6 // first color of the altitude ramp
)

// maxColors is the size of a color table.
const maxColors = 65536

// A Table is a color table.
type Table struct {
	r, g, b [maxColors]int
	numCols int
}

// Len returns the number of colors defined in the table.
func (t *Table) Len() int { return t.numCols }

// Highest returns the index of the highest altitude color.
func (t *Table) Highest() int { return t.numCols - 1 }

// Sea returns the index of the sea level color.
// Indices in [Lowest, Sea] form the sea depth ramp.
func (t *Table) Sea() int { return (t.Highest() + Lowest) / 2 }

// Land returns the index of the first land color.
// Indices in [Land, Highest] form the land altitude ramp.
func (t *Table) Land() int { return t.Sea() + 1 }

// Color returns the RGB value of a color index.
func (t *Table) Color(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	if i >= maxColors {
		i = maxColors - 1
	}
	return color.RGBA{uint8(t.r[i]), uint8(t.g[i]), uint8(t.b[i]), 255}
}

// SetColor assigns an RGB value to a color index.
func (t *Table) SetColor(i int, c color.RGBA) {
	if i < 0 || i >= maxColors {
		return
	}
	t.r[i] = int(c.R)
	t.g[i] = int(c.G)
	t.b[i] = int(c.B)
}

// Read reads a color table.
//
// The input is a sequence of lines,
// each with four integers:
//
//	color-index red green blue
//
// with the color index in [0, 65535]
// and the channel values in [0, 255].
// Color indices must be non-decreasing;
// colors between two specified indices
// are interpolated.
// Lines starting with '#' are ignored.
//
// The table is padded to at least 10 colors,
// repeating the last color read.
func Read(r io.Reader) (*Table, error) {
	t := &Table{}

	cNum := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		var c, rv, gv, bv int
		if _, err := fmt.Sscan(ln, &c, &rv, &gv, &bv); err != nil {
			return nil, fmt.Errorf("color table: %q: %v", ln, err)
		}

		old := cNum
		if c < old {
			c = old
		}
		if c > maxColors-1 {
			c = maxColors - 1
		}
		t.r[c] = rv
		t.g[c] = gv
		t.b[c] = bv

		// interpolate the colors between old and c
		for i := old + 1; i < c; i++ {
			t.r[i] = (t.r[old]*(c-i) + t.r[c]*(i-old)) / (c - old)
			t.g[i] = (t.g[old]*(c-i) + t.g[c]*(i-old)) / (c - old)
			t.b[i] = (t.b[old]*(c-i) + t.b[c]*(i-old)) / (c - old)
		}
		cNum = c
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("color table: %v", err)
	}

	t.numCols = cNum + 1
	if t.numCols < 10 {
		t.numCols = 10
	}

	// pad with the last read color
	for i := cNum + 1; i < t.numCols; i++ {
		t.r[i] = t.r[cNum]
		t.g[i] = t.g[cNum]
		t.b[i] = t.b[cNum]
	}
	return t, nil
}

// SetBiomeColors assigns the default biome colors
// to the palette slots reserved for biomes,
// just above the first land color.
func (t *Table) SetBiomeColors() {
	land := t.Land()
	for _, bc := range defaultBiomes {
		i := int(bc.letter) - 64 + land
		t.r[i] = bc.r
		t.g[i] = bc.g
		t.b[i] = bc.b
	}
}

type biomeColor struct {
	letter  byte
	r, g, b int
}

var defaultBiomes = []biomeColor{
	{'I', 255, 255, 255},
	{'T', 210, 210, 210},
	{'G', 250, 215, 165},
	{'B', 105, 155, 120},
	{'D', 220, 195, 175},
	{'S', 225, 155, 100},
	{'F', 155, 215, 170},
	{'R', 170, 195, 200},
	{'W', 185, 150, 160},
	{'E', 130, 190, 25},
	{'O', 110, 160, 170},
}

// ReadBiomeColors reads biome color overrides.
//
// The input is a sequence of lines,
// each with a biome letter
// and three integer channel values:
//
//	letter red green blue
//
// Unknown letters are an error.
func (t *Table) ReadBiomeColors(r io.Reader) error {
	land := t.Land()

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		var letter string
		var rv, gv, bv int
		if _, err := fmt.Sscan(ln, &letter, &rv, &gv, &bv); err != nil {
			return fmt.Errorf("biome colors: %q: %v", ln, err)
		}
		if len(letter) != 1 || !strings.Contains("ITGBDSFRWEO", letter) {
			return fmt.Errorf("biome colors: unknown biome %q", letter)
		}
		i := int(letter[0]) - 64 + land
		t.r[i] = rv
		t.g[i] = gv
		t.b[i] = bv
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("biome colors: %v", err)
	}
	return nil
}

// Default returns the built-in color table.
func Default() *Table {
	t, err := Read(strings.NewReader(DefaultColors))
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultColors is the built-in color table,
// in the format read by Read.
// With 256 colors,
// sea level is at index 130
// and the first land color at 131.
const DefaultColors = `# default planet colors
0 0 0 0
1 255 255 255
2 0 0 0
3 80 80 80
4 255 0 0
5 128 0 0
6 4 10 48
70 20 50 120
130 60 120 200
131 75 130 70
170 145 150 80
210 135 105 75
240 180 180 180
255 255 255 255
`

// DefaultBiomeColors is the built-in biome color table,
// in the format read by ReadBiomeColors.
const DefaultBiomeColors = `# default biome colors
I 255 255 255
T 210 210 210
G 250 215 165
B 105 155 120
D 220 195 175
S 225 155 100
F 155 215 170
R 170 195 200
W 185 150 160
E 130 190 25
O 110 160 170
`
