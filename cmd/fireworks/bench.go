package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/terminal"
)

// benchOptions configures a headless run
type benchOptions struct {
	Ticks  int
	Seed   uint64
	Cols   int
	Rows   int
	Render bool // rasterize every tick into an offscreen terminal raster
}

// benchResult summarizes a headless run
type benchResult struct {
	Stats         firework.Stats
	Elapsed       time.Duration
	PeakParticles int
	PeakShells    int
}

func (r benchResult) TicksPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Stats.Ticks) / r.Elapsed.Seconds()
}

var benchOpts = benchOptions{Ticks: 3600, Seed: 1, Cols: 160, Rows: 48}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the simulation headless and report throughput",
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchOpts.Ticks <= 0 {
			return fmt.Errorf("--ticks must be positive, got %d", benchOpts.Ticks)
		}
		res := runBench(cfg, benchOpts)
		writeBench(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&benchOpts.Ticks, "ticks", benchOpts.Ticks, "ticks to simulate")
	f.Uint64Var(&benchOpts.Seed, "seed", benchOpts.Seed, "random seed")
	f.IntVar(&benchOpts.Cols, "cols", benchOpts.Cols, "raster columns")
	f.IntVar(&benchOpts.Rows, "rows", benchOpts.Rows, "raster rows")
	f.BoolVar(&benchOpts.Render, "render", false, "rasterize every tick")
	rootCmd.AddCommand(benchCmd)
}

// runBench drives a silent field with a fixed seed; the raster serves as viewport either way
func runBench(c *config.Config, opts benchOptions) benchResult {
	raster := terminal.NewRaster(opts.Cols, opts.Rows, c.WorldScale, terminal.ColorModeTrueColor)
	field := firework.NewField(raster,
		firework.WithConfig(c.FieldConfig()),
		firework.WithRand(rand.New(rand.NewPCG(opts.Seed, opts.Seed))),
	)

	var res benchResult
	start := time.Now()
	for range opts.Ticks {
		field.Tick()
		if opts.Render {
			render.BeginFrame(raster, parameter.FadeAmount)
			field.Render(raster)
		}
		res.PeakParticles = max(res.PeakParticles, len(field.Particles()))
		res.PeakShells = max(res.PeakShells, len(field.Projectiles()))
	}
	res.Elapsed = time.Since(start)
	res.Stats = field.Stats()
	return res
}

func writeBench(w io.Writer, r benchResult) {
	fmt.Fprintf(w, "ticks:      %d\n", r.Stats.Ticks)
	fmt.Fprintf(w, "elapsed:    %s (%.0f ticks/s)\n", r.Elapsed.Round(time.Millisecond), r.TicksPerSecond())
	fmt.Fprintf(w, "launched:   %d\n", r.Stats.Launched)
	fmt.Fprintf(w, "detonated:  %d\n", r.Stats.Detonated)
	fmt.Fprintf(w, "spawned:    %d\n", r.Stats.ParticlesSpawned)
	fmt.Fprintf(w, "reaped:     %d\n", r.Stats.ParticlesReaped)
	fmt.Fprintf(w, "dropped:    %d\n", r.Stats.ParticlesDropped)
	fmt.Fprintf(w, "peak:       %d particles, %d shells\n", r.PeakParticles, r.PeakShells)
}
