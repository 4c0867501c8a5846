// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package worldcmd implements a command to create
// a world parameter file.
package worldcmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/planet/worldfile"
)

var Command = &command.Command{
	Usage: `world [-s|--seed <value>]
	[-p|--projection <name>] <world-file>`,
	Short: "create a world parameter file",
	Long: `
Command world writes a world parameter file with the default parameters of a
planet, so it can be edited and then rendered with the --world flag of the
render command.

The argument of the command is the name of the file to be created.

The flag --seed, or -s, sets the seed of the new world. The flag
--projection, or -p, sets its default projection.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var seedFlag float64
var projFlag string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&seedFlag, "seed", 0.123, "")
	c.Flags().Float64Var(&seedFlag, "s", 0.123, "")
	c.Flags().StringVar(&projFlag, "projection", "mercator", "")
	c.Flags().StringVar(&projFlag, "p", "mercator", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting world file")
	}

	w := worldfile.New(args[0])
	w.Seed = seedFlag
	w.Projection = projFlag
	return w.Write()
}
