package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lumenui/lumen/reactive"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagate(true)
}

// benchmarkPropagate builds w independent chains of h memos hanging off one
// source cell, attaches an effect to the end of each chain, and times a
// write plus the flush it schedules.
func benchmarkPropagate(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Lumen propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sched := reactive.NewManualScheduler()
			rt := reactive.NewRuntime(sched, func(err error) {
				log.Panic(err)
			})

			var src *reactive.Cell[int]
			if err := reactive.Root(rt, func(dispose func()) error {
				src = reactive.NewCell(rt, 1)
				for i := 0; i < w; i++ {
					last := src.Get
					for j := 0; j < h; j++ {
						prev := last
						m, err := reactive.NewMemo(rt, func() (int, error) {
							return prev() + 1, nil
						})
						if err != nil {
							return err
						}
						last = m.Get
					}

					if _, err := reactive.Effect(rt, func() (reactive.Cleanup, error) {
						_ = last()
						return nil, nil
					}); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				log.Panic(err)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Peek() + 1)
				sched.Flush()
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
