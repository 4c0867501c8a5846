// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package hintmap_test

import (
	"strings"
	"testing"

	"github.com/js-arias/planet/hintmap"
)

func TestRead(t *testing.T) {
	// 48 columns: no upsampling
	rows := []string{
		strings.Repeat(".", 48),
		strings.Repeat("-", 48),
		strings.Repeat("@", 48),
	}
	g, err := hintmap.Read(strings.NewReader(strings.Join(rows, "\n") + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Width() != 48 || g.Height() != 3 {
		t.Fatalf("size: got %dx%d, want 48x3", g.Width(), g.Height())
	}
	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, -8},
		{47, 0, -8},
		{5, 1, 0},
		{20, 2, 8},
	}
	for _, test := range tests {
		if got := g.At(test.x, test.y); got != test.want {
			t.Errorf("at (%d, %d): got %d, want %d", test.x, test.y, got, test.want)
		}
	}
}

func TestReadSymbols(t *testing.T) {
	g, err := hintmap.Read(strings.NewReader(strings.Repeat(".,:;-*oO@", 6) + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{-8, -6, -4, -2, 0, 2, 4, 6, 8}
	for i, w := range want {
		if got := g.At(i, 0); got != w {
			t.Errorf("symbol %d: got %d, want %d", i, got, w)
		}
	}
}

func TestReadUpsample(t *testing.T) {
	// 4 columns: upsampled to 8x4
	data := ".@.@\n" +
		"@.@.\n"
	g, err := hintmap.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Width() != 8 || g.Height() != 4 {
		t.Fatalf("size: got %dx%d, want 8x4", g.Width(), g.Height())
	}

	// source cells on even rows and columns
	if got := g.At(0, 0); got != -8 {
		t.Errorf("at (0, 0): got %d, want -8", got)
	}
	if got := g.At(2, 0); got != 8 {
		t.Errorf("at (2, 0): got %d, want 8", got)
	}

	// interpolated rows: the average of north and south
	if got := g.At(0, 1); got != 0 {
		t.Errorf("at (0, 1): got %d, want 0", got)
	}
	// the last row interpolates against an empty row
	if got := g.At(0, 3); got != 4 {
		t.Errorf("at (0, 3): got %d, want 4", got)
	}

	// interpolated columns: the average of west and east,
	// wrapping around the border
	if got := g.At(1, 0); got != 0 {
		t.Errorf("at (1, 0): got %d, want 0", got)
	}
	if got := g.At(7, 0); got != 0 {
		t.Errorf("at (7, 0): got %d, want 0", got)
	}

	// out of range coordinates are clamped
	if got := g.At(-5, 100); got != g.At(0, 3) {
		t.Errorf("clamped: got %d, want %d", got, g.At(0, 3))
	}
}

func TestReadErrors(t *testing.T) {
	if _, err := hintmap.Read(strings.NewReader("")); err == nil {
		t.Errorf("empty input: expecting error")
	}
	if _, err := hintmap.Read(strings.NewReader(".@\n.@@\n")); err == nil {
		t.Errorf("ragged rows: expecting error")
	}
	if _, err := hintmap.Read(strings.NewReader(".x@@\n")); err == nil {
		t.Errorf("wrong symbol: expecting error")
	}
}
