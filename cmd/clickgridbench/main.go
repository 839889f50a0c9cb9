// cmd/clickgridbench/main.go
// Runs every search strategy against one level in isolation and reports
// how long each took and how many moves it found, the way the teacher's
// bench_perf tool profiled one AI configuration across a simulated game.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"clickgrid/internal/coordinator"
	"clickgrid/internal/levelxml"
	"clickgrid/internal/search"
)

func main() {
	levelNumber := flag.Int("level", 0, "level number to benchmark")
	maxSteps := flag.Int("max-steps", 100, "move-count cutoff shared by every strategy")
	maxQueue := flag.Int("max-queue", 100_000, "frontier cap for BFS/GBFS/A*/EA*")
	timeout := flag.Duration("timeout", 60*time.Second, "wall-clock budget for IDA* and MCTS")
	seed := flag.Int64("seed", 1, "MCTS rollout PRNG seed")
	profile := flag.String("cpuprofile", "", "write a CPU profile to this path")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <levels.xml>\n", os.Args[0])
		os.Exit(1)
	}

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not create CPU profile:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, "could not start CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "reading levels file:", err)
		os.Exit(1)
	}
	doc, err := levelxml.Parse(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parsing levels file:", err)
		os.Exit(1)
	}

	var lvl *levelxml.Level
	for i := range doc.Levels {
		if doc.Levels[i].Number == *levelNumber {
			lvl = &doc.Levels[i]
			break
		}
	}
	if lvl == nil {
		fmt.Fprintf(os.Stderr, "level %d not found\n", *levelNumber)
		os.Exit(1)
	}

	b, err := levelxml.BuildBoard(*lvl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building board:", err)
		os.Exit(1)
	}

	cfg := search.Config{
		MaxSteps:     *maxSteps,
		MaxQueueSize: *maxQueue,
		Timeout:      *timeout,
		Seed:         *seed,
	}

	fmt.Printf("Benchmarking level %d (%dx%d) across %d strategies...\n",
		*levelNumber, b.Rows, b.Cols, len(coordinator.AllStrategies()))

	for _, st := range coordinator.AllStrategies() {
		start := time.Now()
		solved := st.Run(context.Background(), b, cfg)
		elapsed := time.Since(start)
		if solved != nil {
			fmt.Printf("%-8s  %10v  solved in %d moves\n", st.Name, elapsed, solved.Moves.N())
		} else {
			fmt.Printf("%-8s  %10v  no solution\n", st.Name, elapsed)
		}
	}

	if *profile != "" {
		fmt.Printf("Profile saved to %s. Run 'go tool pprof -http=:8080 %s' to view it.\n", *profile, *profile)
	}
}
