// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package whittaker implements a command to plot
// the climate of a planet
// over a Whittaker diagram.
package whittaker

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/js-arias/command"
	"github.com/js-arias/planet/climate"
	"github.com/js-arias/planet/palette"
	"github.com/js-arias/planet/projection"
	"github.com/js-arias/planet/surface"
	"github.com/js-arias/planet/tetra"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var Command = &command.Command{
	Usage: `whittaker [-s|--seed <value>]
	[--samples <number>] [--wrinkly]
	[-o|--output <file>]`,
	Short: "plot the climate of a planet",
	Long: `
Command whittaker samples random land points of a fractal planet and plots
their temperature and rainfall as a scatter over the Whittaker biome diagram,
with each point colored by its biome. It also reports the temperature and
rainfall ranges of the land, with the mean and the quartiles.

The planet is defined by the flag --seed, or -s, as in the render command;
the flag --wrinkly produces the more rugged version of the planet.

The flag --samples sets the number of sampled directions (by default 20000;
only samples over land are plotted).

The plot is written as a png image to the file given with the flag --output,
or -o (by default "whittaker.png").
	`,
	SetFlags: setFlags,
	Run:      run,
}

var seedFlag float64
var samplesFlag int
var wrinklyFlag bool
var outFlag string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&seedFlag, "seed", 0.123, "")
	c.Flags().Float64Var(&seedFlag, "s", 0.123, "")
	c.Flags().IntVar(&samplesFlag, "samples", 20000, "")
	c.Flags().BoolVar(&wrinklyFlag, "wrinkly", false, "")
	c.Flags().StringVar(&outFlag, "output", "whittaker.png", "")
	c.Flags().StringVar(&outFlag, "o", "whittaker.png", "")
}

func run(c *command.Command, args []string) error {
	par := tetra.DefaultParam()
	par.Seed = seedFlag
	par.Wrinkly = wrinklyFlag
	par.RainShadow = true
	par.Depth = projection.BaseDepth(1, 600)

	pal := palette.Default()
	pal.SetBiomeColors()

	field := tetra.New(par).NewField()
	smp := surface.New(field, pal, surface.Options{Display: surface.ShowBiomes})

	// sample directions uniformly over the sphere,
	// with a generator seeded from the planet seed
	// so the plot is reproducible
	rng := rand.New(rand.NewSource(int64(math.Float64bits(seedFlag))))

	type sample struct {
		temp, rain float64
	}
	land := make(map[climate.Biome][]sample)
	var temps, rains []float64
	for i := 0; i < samplesFlag; i++ {
		y := 2*rng.Float64() - 1
		theta := 2 * math.Pi * rng.Float64()
		t := math.Sqrt(1 - y*y)
		x := t * math.Cos(theta)
		z := t * math.Sin(theta)

		pt := smp.At(x, y, z)
		if pt.Alt <= 0 {
			continue
		}
		b := climate.BiomeAt(pt.Temp, pt.Rain)
		land[b] = append(land[b], sample{pt.Temp, pt.Rain})
		temps = append(temps, pt.Temp)
		rains = append(rains, pt.Rain)
	}
	if len(temps) == 0 {
		return fmt.Errorf("planet %.6f: no land found", seedFlag)
	}

	st := smp.Stats()
	fmt.Fprintf(c.Stdout(), "land samples: %d\n", len(temps))
	fmt.Fprintf(c.Stdout(), "temperature: range [%.6f, %.6f]\n", st.TempMin, st.TempMax)
	report(c, "temperature", temps)
	fmt.Fprintf(c.Stdout(), "rainfall: range [%.6f, %.6f]\n", st.RainMin, st.RainMax)
	report(c, "rainfall", rains)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("planet %.6f", seedFlag)
	p.X.Label.Text = "temperature"
	p.Y.Label.Text = "rainfall"

	biomes := make([]climate.Biome, 0, len(land))
	for b := range land {
		biomes = append(biomes, b)
	}
	slices.Sort(biomes)

	for _, b := range biomes {
		pts := make(plotter.XYs, 0, len(land[b]))
		for _, s := range land[b] {
			pts = append(pts, plotter.XY{X: s.temp, Y: s.rain})
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("while plotting %s: %v", b, err)
		}
		sc.GlyphStyle.Color = pal.Color(int(b) - 64 + pal.Land())
		sc.GlyphStyle.Radius = vg.Points(1.5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(b.String(), sc)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, outFlag); err != nil {
		return err
	}
	return nil
}

// Report prints the mean and the quartiles
// of a set of samples.
func report(c *command.Command, name string, vals []float64) {
	slices.Sort(vals)
	mean := stat.Mean(vals, nil)
	q1 := stat.Quantile(0.25, stat.Empirical, vals, nil)
	q2 := stat.Quantile(0.5, stat.Empirical, vals, nil)
	q3 := stat.Quantile(0.75, stat.Empirical, vals, nil)
	fmt.Fprintf(c.Stdout(), "%s: mean %.6f, quartiles [%.6f, %.6f, %.6f]\n", name, mean, q1, q2, q3)
}
