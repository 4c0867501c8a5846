// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package colors implements a command to write
// the built-in color tables.
package colors

import (
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/planet/palette"
)

var Command = &command.Command{
	Usage: `colors [--biomes]
	[-o|--output <color-file>]`,
	Short: "write the built-in color tables",
	Long: `
Command colors writes the built-in color table as a file, so it can be edited
and given back to the render command with the --colors flag.

With the flag --biomes, the built-in biome colors are written instead, in the
format of the --biome-colors flag.

The output is written to the file given with the flag --output, or -o; by
default "planet.cols", or "planet.bio" for biome colors.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var biomesFlag bool
var outFlag string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&biomesFlag, "biomes", false, "")
	c.Flags().StringVar(&outFlag, "output", "", "")
	c.Flags().StringVar(&outFlag, "o", "", "")
}

func run(c *command.Command, args []string) error {
	out := outFlag
	data := palette.DefaultColors
	if biomesFlag {
		data = palette.DefaultBiomeColors
		if out == "" {
			out = "planet.bio"
		}
	}
	if out == "" {
		out = "planet.cols"
	}
	return os.WriteFile(out, []byte(data), 0644)
}
