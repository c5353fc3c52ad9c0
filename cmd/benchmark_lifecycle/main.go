package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lumenui/lumen/dom"
	"github.com/lumenui/lumen/reactive"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_lifecycle",
		Usage: "measure mount and dispose throughput of component trees",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "repeats",
				Usage: "take the best result out of this many runs",
				Value: 5,
			},
			&cli.UintFlag{
				Name:  "iterations",
				Usage: "mount/dispose cycles per run",
				Value: 100,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(int(cmd.Uint("repeats")), int(cmd.Uint("iterations")))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type lifecycleConfig struct {
	name  string
	width int // components per layer
	depth int // nested component layers
}

func run(repeats, iterations int) error {
	log.Print("Starting lifecycle benchmark, please wait...")
	defer log.Print("Finished lifecycle benchmark")

	cfgs := []lifecycleConfig{
		{name: "shallow wide", width: 100, depth: 1},
		{name: "balanced", width: 10, depth: 3},
		{name: "deep narrow", width: 2, depth: 10},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "components", "nTimes", "test", "time", "mountRate",
	})

	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		best := time.Hour
		for i := 0; i < repeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, repeats)
			d, err := runOnce(cfg, iterations)
			if err != nil {
				return err
			}
			if d < best {
				best = d
			}
		}

		total := int64(componentCount(cfg)) * int64(iterations)
		mountRate := float64(total) / (float64(best) / float64(time.Millisecond))

		table.Append([]string{
			fmt.Sprintf("%dx%d", cfg.width, cfg.depth),
			humanize.Comma(int64(componentCount(cfg))),
			humanize.Comma(int64(iterations)),
			cfg.name,
			fmt.Sprint(best),
			humanize.Comma(int64(mountRate)),
		})
	}
	table.Render()
	return nil
}

// runOnce mounts and disposes a width*depth component tree `iterations`
// times and returns the wall time for the whole run.
func runOnce(cfg lifecycleConfig, iterations int) (time.Duration, error) {
	sched := reactive.NewManualScheduler()
	rt := reactive.NewRuntime(sched, func(err error) {
		log.Panic(err)
	})
	r := dom.NewRenderer(rt)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		root := dom.Element("div")
		scope, err := r.Mount(root, makeTree(rt, cfg.width, cfg.depth))
		if err != nil {
			return 0, err
		}
		sched.Flush()
		scope.Dispose()
	}
	return time.Since(start), nil
}

// makeTree builds a component tree `depth` layers deep with `width`
// children per layer. Each leaf carries a cell, an effect-backed text
// binding, and a cleanup so that dispose cost is realistic.
func makeTree(rt *reactive.Runtime, width, depth int) dom.View {
	if depth == 0 {
		return dom.ComponentView(func(r *dom.Renderer) (dom.View, error) {
			cell := reactive.NewCell(rt, "leaf")
			if err := reactive.OnCleanup(rt, func() error { return nil }); err != nil {
				return dom.View{}, err
			}
			return dom.ReaderView(cell.Get), nil
		})
	}

	children := make([]dom.View, width)
	for i := 0; i < width; i++ {
		children[i] = makeTree(rt, width, depth-1)
	}
	return dom.ComponentView(func(r *dom.Renderer) (dom.View, error) {
		return dom.ElementView("div", children...), nil
	})
}

func componentCount(cfg lifecycleConfig) int {
	// geometric series of component nodes over the layers
	total := 0
	layer := 1
	for d := 0; d <= cfg.depth; d++ {
		total += layer
		layer *= cfg.width
	}
	return total
}
