package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"life-torus/pkg/core"
	"life-torus/pkg/life"

	"golang.org/x/sync/errgroup"
)

type trialResult struct {
	density life.Density
	filled  int
	settled int
}

type densityStats struct {
	trials  int
	filled  float64
	settled float64
}

func main() {
	width := flag.Int("w", 120, "board width in cells")
	height := flag.Int("h", 80, "board height in cells")
	trials := flag.Int("trials", 2000, "number of random boards to generate")
	steps := flag.Int("steps", 0, "generations to run after each fill")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first trial; trial i uses seed+i")
	flag.Parse()

	if *width < 1 || *height < 1 || *trials < 1 || *workers < 1 || *steps < 0 {
		log.Fatal("w, h, trials and workers must be positive and steps not negative")
	}

	fmt.Printf("Filling %d boards of %dx%d (%d workers, %d steps)\n", *trials, *width, *height, *workers, *steps)

	results := make([]trialResult, *trials)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	start := time.Now()
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runTrial(*width, *height, *steps, *seed+int64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	area := float64(*width * *height)
	stats := map[life.Density]*densityStats{}
	for _, d := range life.Densities {
		stats[d] = &densityStats{}
	}
	for _, res := range results {
		st := stats[res.density]
		st.trials++
		st.filled += float64(res.filled) / area
		st.settled += float64(res.settled) / area
	}

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, d := range life.Densities {
		st := stats[d]
		if st.trials == 0 {
			fmt.Printf("density %s: never chosen\n", d)
			continue
		}
		n := float64(st.trials)
		line := fmt.Sprintf("density %s: chosen %5.1f%% mean fill %.4f expected %.4f",
			d, 100*n/float64(*trials), st.filled/n, d.Fraction())
		if *steps > 0 {
			line += fmt.Sprintf(" after %d steps %.4f", *steps, st.settled/n)
		}
		fmt.Println(line)
	}
}

func runTrial(w, h, steps int, seed int64) trialResult {
	b := life.New(w, h)
	d := b.RandomFill(core.NewRNG(seed))
	res := trialResult{density: d, filled: b.Len()}
	for i := 0; i < steps; i++ {
		b.Step()
	}
	res.settled = b.Len()
	return res
}
