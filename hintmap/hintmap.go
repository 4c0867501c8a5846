// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package hintmap implements a low resolution altitude grid
// read from an ASCII field.
//
// The grid is used as a rough sketch of a world:
// while a subdivision edge is still long,
// midpoint altitudes are taken from the grid,
// so the large scale geography of the planet
// follows the sketch,
// while the detail stays fractal.
package hintmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Symbols of the ASCII field,
// from deepest to highest,
// mapped to the values -8, -6, ..., 6, 8.
const symbols = ".,:;-*oO@"

// A Grid is an equirectangular grid
// of small signed altitude hints,
// each in the range [-8, 8].
type Grid struct {
	width  int
	height int
	vals   [][]int // indexed by [y][x]
}

// New creates an empty grid
// with the given number of columns and rows.
func New(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		vals:   make([][]int, height),
	}
	for i := range g.vals {
		g.vals[i] = make([]int, width)
	}
	return g
}

// Width returns the number of columns of the grid.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows of the grid.
func (g *Grid) Height() int { return g.height }

// At returns the value of the grid
// at column x and row y.
// Coordinates outside the grid are clamped.
func (g *Grid) At(x, y int) int {
	if x < 0 {
		x = 0
	}
	if x >= g.width {
		x = g.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= g.height {
		y = g.height - 1
	}
	return g.vals[y][x]
}

// Set assigns a value
// to the cell at column x and row y.
func (g *Grid) Set(x, y, v int) {
	g.vals[y][x] = v
}

// Read reads an ASCII altitude field.
//
// Each line of the input is a row of the grid
// and each character a cell,
// with the characters
// '.', ',', ':', ';', '-', '*', 'o', 'O', '@'
// standing for the altitudes -8, -6, -4, -2, 0, 2, 4, 6, 8.
// All rows must have the same length.
//
// If the field has less than 48 columns
// it is upsampled to twice its resolution,
// interpolating the new cells
// from their neighbors
// (with longitude wrapping around).
func Read(r io.Reader) (*Grid, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimRight(sc.Text(), "\r\n")
		if ln == "" {
			continue
		}
		rows = append(rows, ln)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("while reading hint map: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("while reading hint map: empty input")
	}

	width := len(rows[0])
	step := 1
	if width < 48 {
		step = 2
	}

	g := New(width*step, len(rows)*step)
	for j, ln := range rows {
		if len(ln) != width {
			return nil, fmt.Errorf("hint map: row %d: got %d columns, want %d", j+1, len(ln), width)
		}
		for i, r := range ln {
			v := strings.IndexRune(symbols, r)
			if v < 0 {
				return nil, fmt.Errorf("hint map: row %d: wrong symbol %q", j+1, r)
			}
			g.vals[j*step][i*step] = 2*v - 8
		}
	}

	if step == 2 {
		g.interpolate()
	}
	return g, nil
}

// Interpolate fills the odd rows and columns
// of an upsampled grid.
func (g *Grid) interpolate() {
	// odd rows, from the rows above and below
	for j := 1; j < g.height; j += 2 {
		for i := 0; i < g.width; i += 2 {
			below := 0
			if j+1 < g.height {
				below = g.vals[j+1][i]
			}
			g.vals[j][i] = (g.vals[j-1][i] + below) / 2
		}
	}

	// odd columns, from the columns at each side,
	// wrapping around the east-west border
	for j := 0; j < g.height; j++ {
		for i := 1; i < g.width; i += 2 {
			g.vals[j][i] = (g.vals[j][i-1] + g.vals[j][(i+1)%g.width]) / 2
		}
	}
}
