// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Planet is a tool to generate maps of fractal planets.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/planet/cmd/planet/colors"
	"github.com/js-arias/planet/cmd/planet/render"
	"github.com/js-arias/planet/cmd/planet/whittaker"
	"github.com/js-arias/planet/cmd/planet/worldcmd"
)

var app = &command.Command{
	Usage: "planet <command> [<argument>...]",
	Short: "a tool to generate maps of fractal planets",
}

func init() {
	app.Add(colors.Command)
	app.Add(render.Command)
	app.Add(whittaker.Command)
	app.Add(worldcmd.Command)
}

func main() {
	app.Main()
}
