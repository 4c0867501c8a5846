// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package render implements a command to draw
// the map of a fractal planet.
package render

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/planet/hintmap"
	"github.com/js-arias/planet/palette"
	"github.com/js-arias/planet/projection"
	"github.com/js-arias/planet/render"
	"github.com/js-arias/planet/surface"
	"github.com/js-arias/planet/tetra"
	"github.com/js-arias/planet/worldfile"
)

var Command = &command.Command{
	Usage: `render [-o|--output <file>]
	[--world <world-file>] [-p|--projection <name>]
	[-s|--seed <value>] [--width <value>] [--height <value>]
	[-m|--magnification <value>]
	[-l|--longitude <value>] [-L|--latitude <value>]
	[--rotate1 <value>] [--rotate2 <value>]
	[--init-alt <value>] [--alt-weight <value>] [--dist-weight <value>]
	[--wrinkly] [--nonlinear] [--lat-color <value>]
	[--temperature] [--rainfall] [--biomes] [--gradient]
	[--shade <mode>] [--angle <value>] [--angle2 <value>]
	[--vgrid <value>] [--hgrid <value>]
	[--outline] [--bw] [--contours <value>]
	[--match <map-file>] [--match-size <value>]
	[--colors <color-file>] [--biome-colors <color-file>]
	[--heightfield]`,
	Short: "draw the map of a fractal planet",
	Long: `
Command render generates a fractal planet from a seed and draws its map as a
png image.

The planet is defined by the flag --seed, or -s, and the shape of its terrain
can be tuned with the flags --init-alt, for the starting altitude of the
planet (by default slightly below sea level), --alt-weight and --dist-weight,
for the roughness of the terrain, --wrinkly, for more rugged mountains, and
--nonlinear, to flatten terrain near sea level. A planet can also be stored
in a world file (see command "planet world") and loaded with the flag
--world; flags given explicitly override the values of the world file.

The view is set with the flag --projection, or -p, naming one of: mercator
(the default), peters, square, mollweide, sinusoid, stereographic,
orthographic, gnomonic, icosahedral, azimuthal, or conical; and the flags
--longitude (-l), --latitude (-L), and --magnification (-m), for the center
and the zoom of the view. The flags --rotate1 and --rotate2 rotate the whole
planet before projecting it.

By default, the map colors show altitude. With the flag --temperature or
--rainfall the color ramp shows the climate instead; with --gradient those
maps are drawn with a continuous color gradient. With the flag --biomes the
land is classified into Whittaker biomes. The flag --lat-color adds ice caps
and latitude based coloring; values larger than one increase the effect. Colors are read from the file given with --colors, and biome colors
from --biome-colors; without them, built-in tables are used.

Bump or daylight shading is set with the flag --shade, naming one of: bump,
bumpland, or daylight; the light comes from the angles set with --angle and
--angle2.

The flags --vgrid and --hgrid draw longitude and latitude grids with the
given spacing, in degrees. The flag --outline draws the coastlines; with
--bw the map is reduced to black outlines on white. The flag --contours adds
the given number of altitude contour lines on land, or, if negative, coastal
depth contours.

With the flag --match, the large scale geography of the planet follows an
ASCII map sketch read from the given file; --match-size sets the detail level
at which the sketch stops being used.

The output is written as a png image to the file given with --output, or -o
(by default "planet-map.png"). With the flag --heightfield a text heightfield
is written instead of an image.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outFlag string
var worldFlag string
var projFlag string
var seedFlag float64
var widthFlag int
var heightFlag int
var magFlag float64
var longFlag float64
var latFlag float64
var rotate1Flag float64
var rotate2Flag float64
var initAltFlag float64
var altWeightFlag float64
var altPowerFlag float64
var distWeightFlag float64
var distPowerFlag float64
var wrinklyFlag bool
var nonLinearFlag bool
var latColorFlag int
var tempFlag bool
var rainFlag bool
var biomesFlag bool
var gradientFlag bool
var shadeFlag string
var angleFlag float64
var angle2Flag float64
var vgridFlag float64
var hgridFlag float64
var outlineFlag bool
var bwFlag bool
var contoursFlag int
var matchFlag string
var matchSizeFlag float64
var colorsFlag string
var bioColorsFlag string
var heightfieldFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outFlag, "output", "planet-map.png", "")
	c.Flags().StringVar(&outFlag, "o", "planet-map.png", "")
	c.Flags().StringVar(&worldFlag, "world", "", "")
	c.Flags().StringVar(&projFlag, "projection", "mercator", "")
	c.Flags().StringVar(&projFlag, "p", "mercator", "")
	c.Flags().Float64Var(&seedFlag, "seed", 0.123, "")
	c.Flags().Float64Var(&seedFlag, "s", 0.123, "")
	c.Flags().IntVar(&widthFlag, "width", 800, "")
	c.Flags().IntVar(&heightFlag, "height", 600, "")
	c.Flags().Float64Var(&magFlag, "magnification", 1.0, "")
	c.Flags().Float64Var(&magFlag, "m", 1.0, "")
	c.Flags().Float64Var(&longFlag, "longitude", 0, "")
	c.Flags().Float64Var(&longFlag, "l", 0, "")
	c.Flags().Float64Var(&latFlag, "latitude", 0, "")
	c.Flags().Float64Var(&latFlag, "L", 0, "")
	c.Flags().Float64Var(&rotate1Flag, "rotate1", 0, "")
	c.Flags().Float64Var(&rotate2Flag, "rotate2", 0, "")
	c.Flags().Float64Var(&initAltFlag, "init-alt", -0.02, "")
	c.Flags().Float64Var(&altWeightFlag, "alt-weight", 0.45, "")
	c.Flags().Float64Var(&altPowerFlag, "alt-power", 1.0, "")
	c.Flags().Float64Var(&distWeightFlag, "dist-weight", 0.035, "")
	c.Flags().Float64Var(&distPowerFlag, "dist-power", 0.47, "")
	c.Flags().BoolVar(&wrinklyFlag, "wrinkly", false, "")
	c.Flags().BoolVar(&nonLinearFlag, "nonlinear", false, "")
	c.Flags().IntVar(&latColorFlag, "lat-color", 0, "")
	c.Flags().BoolVar(&tempFlag, "temperature", false, "")
	c.Flags().BoolVar(&rainFlag, "rainfall", false, "")
	c.Flags().BoolVar(&biomesFlag, "biomes", false, "")
	c.Flags().BoolVar(&gradientFlag, "gradient", false, "")
	c.Flags().StringVar(&shadeFlag, "shade", "", "")
	c.Flags().Float64Var(&angleFlag, "angle", 150, "")
	c.Flags().Float64Var(&angle2Flag, "angle2", 20, "")
	c.Flags().Float64Var(&vgridFlag, "vgrid", 0, "")
	c.Flags().Float64Var(&hgridFlag, "hgrid", 0, "")
	c.Flags().BoolVar(&outlineFlag, "outline", false, "")
	c.Flags().BoolVar(&bwFlag, "bw", false, "")
	c.Flags().IntVar(&contoursFlag, "contours", 0, "")
	c.Flags().StringVar(&matchFlag, "match", "", "")
	c.Flags().Float64Var(&matchSizeFlag, "match-size", 0.1, "")
	c.Flags().StringVar(&colorsFlag, "colors", "", "")
	c.Flags().StringVar(&bioColorsFlag, "biome-colors", "", "")
	c.Flags().BoolVar(&heightfieldFlag, "heightfield", false, "")
}

func run(c *command.Command, args []string) error {
	if worldFlag != "" {
		if err := applyWorld(c, worldFlag); err != nil {
			return err
		}
	}

	if magFlag < 0.1 {
		magFlag = 0.1
	}
	for longFlag < -180 {
		longFlag += 360
	}
	for longFlag > 180 {
		longFlag -= 360
	}
	if latFlag < -90 {
		latFlag = -90
	}
	if latFlag > 90 {
		latFlag = 90
	}

	projFlag = strings.ToLower(projFlag)
	if projFlag == "conical" && latFlag == 0 {
		// the cone opens into a cylinder at the equator
		projFlag = "mercator"
	}
	proj, ok := projection.Projections[projFlag]
	if !ok {
		return c.UsageError(fmt.Sprintf("unknown projection %q", projFlag))
	}

	pal, err := readPalette()
	if err != nil {
		return err
	}

	var hint *hintmap.Grid
	if matchFlag != "" {
		f, err := os.Open(matchFlag)
		if err != nil {
			return err
		}
		hint, err = hintmap.Read(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("on file %q: %v", matchFlag, err)
		}
	}

	shading, err := shadeMode(shadeFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	par := tetra.DefaultParam()
	par.Seed = seedFlag
	par.Altitude = initAltFlag
	par.AltWeight = altWeightFlag
	par.AltPower = altPowerFlag
	par.DistWeight = distWeightFlag
	par.DistPower = distPowerFlag
	par.Wrinkly = wrinklyFlag
	par.Depth = projection.BaseDepth(magFlag, heightFlag)
	par.RotateX = rotate1Flag
	par.RotateY = rotate2Flag
	par.Hint = hint
	par.MatchSize = matchSizeFlag
	par.RainShadow = rainFlag || biomesFlag
	par.Shading = shading
	par.ShadeAngle = angleFlag
	par.ShadeAngle2 = angle2Flag

	display := surface.ShowAltitude
	switch {
	case biomesFlag:
		display = surface.ShowBiomes
	case tempFlag:
		display = surface.ShowTemperature
	case rainFlag:
		display = surface.ShowRainfall
	}

	field := tetra.New(par).NewField()
	smp := surface.New(field, pal, surface.Options{
		Display:   display,
		Latic:     latColorFlag,
		NonLinear: nonLinearFlag,
	})

	rr := render.New(smp, pal, widthFlag, heightFlag, render.Options{
		Shading: shading != tetra.NoShade,
		Grids:   vgridFlag != 0 || hgridFlag != 0,
		Heights: heightfieldFlag,
		Climate: gradientFlag,
	})

	proj(projection.Params{
		Width:     widthFlag,
		Height:    heightFlag,
		Scale:     magFlag,
		Longitude: longFlag * math.Pi / 180,
		Latitude:  latFlag * math.Pi / 180,
	}, rr)

	if projFlag == "peters" {
		fmt.Fprintf(c.Stderr(), "water percentage: %d\n", int(100*rr.WaterFraction()))
	}

	if outlineFlag || bwFlag || contoursFlag != 0 {
		contours := 0
		coastContours := 0
		if contoursFlag > 0 {
			contours = contoursFlag
		} else {
			coastContours = -contoursFlag
		}
		rr.Outline(bwFlag, contours, coastContours)
	}
	rr.LongitudeGrid(vgridFlag)
	rr.LatitudeGrid(hgridFlag)
	rr.SmoothShades()

	if heightfieldFlag {
		return writeHeights(outFlag, rr)
	}

	img, err := mapImage(rr)
	if err != nil {
		return err
	}
	return writeImage(outFlag, img)
}

// applyWorld loads a world file
// and uses its values as the defaults
// for every flag not given explicitly.
func applyWorld(c *command.Command, name string) error {
	w, err := worldfile.Read(name)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	c.Flags().Visit(func(f *flag.Flag) { set[f.Name] = true })
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if !given("seed", "s") {
		seedFlag = w.Seed
	}
	if !given("init-alt") {
		initAltFlag = w.Altitude
	}
	if !given("alt-weight") {
		altWeightFlag = w.AltWeight
	}
	if !given("alt-power") {
		altPowerFlag = w.AltPower
	}
	if !given("dist-weight") {
		distWeightFlag = w.DistWeight
	}
	if !given("dist-power") {
		distPowerFlag = w.DistPower
	}
	if !given("wrinkly") {
		wrinklyFlag = w.Wrinkly
	}
	if !given("projection", "p") {
		projFlag = w.Projection
	}
	if !given("longitude", "l") {
		longFlag = w.Longitude
	}
	if !given("latitude", "L") {
		latFlag = w.Latitude
	}
	if !given("magnification", "m") {
		magFlag = w.Magnification
	}
	if !given("width") {
		widthFlag = w.Width
	}
	if !given("height") {
		heightFlag = w.Height
	}
	return nil
}

func shadeMode(s string) (tetra.ShadeMode, error) {
	switch strings.ToLower(s) {
	case "":
		return tetra.NoShade, nil
	case "bump":
		return tetra.Bump, nil
	case "bumpland":
		return tetra.BumpLand, nil
	case "daylight":
		return tetra.Daylight, nil
	}
	return tetra.NoShade, fmt.Errorf("unknown shading mode %q", s)
}

func readPalette() (*palette.Table, error) {
	pal := palette.Default()
	if colorsFlag != "" {
		f, err := os.Open(colorsFlag)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		pal, err = palette.Read(f)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", colorsFlag, err)
		}
	}
	if !biomesFlag {
		return pal, nil
	}

	pal.SetBiomeColors()
	if bioColorsFlag != "" {
		f, err := os.Open(bioColorsFlag)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := pal.ReadBiomeColors(f); err != nil {
			return nil, fmt.Errorf("on file %q: %v", bioColorsFlag, err)
		}
	}
	return pal, nil
}

func mapImage(rr *render.Raster) (image.Image, error) {
	if gradientFlag {
		if tempFlag {
			return rr.TemperatureImage(render.Incandescent{})
		}
		if rainFlag {
			return rr.RainfallImage(render.Iridescent{})
		}
	}
	return rr.Image(), nil
}

func writeHeights(name string, rr *render.Raster) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()
	return rr.WriteHeights(f)
}

func writeImage(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("when encoding file %q: %v", name, err)
	}
	return nil
}
