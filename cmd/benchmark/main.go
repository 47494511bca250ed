package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cwithmichael/reactor/reactor"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey      = "iters"
	cpuProfileKey = "cpuprofile"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation round latency over chain grids",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Rounds to time per grid",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to the given path",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkGrid(10, 10, iters)

	tbl := table.NewWriter()
	tbl.SetTitle("Reactor Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, w := range ww {
		for _, h := range hh {
			calc, digest := benchmarkGrid(w, h, iters)
			_, again := benchmarkGrid(w, h, iters)
			if digest != again {
				return fmt.Errorf("non-deterministic propagation for %d*%d: %016x != %016x", w, h, digest, again)
			}
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest),
				},
			})
		}
	}
	tbl.Render()
	return nil
}

// benchmarkGrid builds w independent chains of h compute cells off a single
// input, registers a callback on every chain tail, then times iters
// propagation rounds. The xxhash digest of the callback value stream
// doubles as a determinism check between runs of the same grid.
func benchmarkGrid(w, h, iters int) (*tachymeter.Metrics, uint64) {
	r := reactor.New[int]()
	src := r.CreateInput(1)

	digest := xxhash.New()
	for i := 0; i < w; i++ {
		last := src
		for j := 0; j < h; j++ {
			next, err := r.CreateCompute([]reactor.CellID{last}, func(deps []int) int {
				return deps[0] + 1
			})
			if err != nil {
				log.Fatal(err)
			}
			last = next
		}
		if _, err := r.AddCallback(last, func(v int) {
			fmt.Fprintf(digest, "%d,", v)
		}); err != nil {
			log.Fatal(err)
		}
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		if err := r.SetInput(src, i+2); err != nil {
			log.Fatal(err)
		}
		tach.AddTime(time.Since(start))
	}
	return tach.Calc(), digest.Sum64()
}
