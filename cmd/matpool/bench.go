package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-matpool/mat"
	"github.com/ajroetker/go-matpool/workerpool"
)

type benchResult struct {
	name string
	best time.Duration
	mean time.Duration
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	var (
		size int
		runs int
		seed uint64
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time pooled and sequential multiply on random square matrices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 || runs <= 0 {
				return fmt.Errorf("--size and --runs must be positive")
			}
			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			a := randomMatrix(rng, size)
			b := randomMatrix(rng, size)

			pool := workerpool.New(root.workers, workerpool.WithLogger(root.logger))
			defer pool.Close()

			variants := []struct {
				name string
				fn   func() error
			}{
				{"sequential", func() error {
					_, err := mat.MatMul(a, b)
					return err
				}},
				{"pooled (fresh pool per call)", func() error {
					_, err := mat.Multiply(a, b, mat.WithNumWorkers(root.workers), mat.WithLogger(root.logger))
					return err
				}},
				{"pooled (shared pool)", func() error {
					_, err := mat.MultiplyWithPool(pool, a, b, mat.WithLogger(root.logger))
					return err
				}},
			}
			var results []benchResult
			for _, v := range variants {
				r, err := timeRuns(v.name, runs, v.fn)
				if err != nil {
					return err
				}
				results = append(results, r)
			}

			p := message.NewPrinter(language.English)
			w := cmd.OutOrStdout()
			p.Fprintf(w, "%d x %d, %d tasks, %d workers, %d runs\n", size, size, size*size, pool.NumWorkers(), runs)
			for _, r := range results {
				p.Fprintf(w, "  %-30s best %12dns  mean %12dns\n", r.name, r.best.Nanoseconds(), r.mean.Nanoseconds())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&size, "size", "n", 64, "matrix dimension")
	flags.IntVarP(&runs, "runs", "r", 5, "timed runs per variant")
	flags.Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func randomMatrix(rng *rand.Rand, n int) *mat.Matrix[float64] {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	return mat.New(data, n, n)
}

func timeRuns(name string, runs int, fn func() error) (benchResult, error) {
	var total time.Duration
	best := time.Duration(math.MaxInt64)
	for range runs {
		start := time.Now()
		if err := fn(); err != nil {
			return benchResult{}, fmt.Errorf("%s: %w", name, err)
		}
		d := time.Since(start)
		total += d
		best = min(best, d)
	}
	return benchResult{name: name, best: best, mean: total / time.Duration(runs)}, nil
}
