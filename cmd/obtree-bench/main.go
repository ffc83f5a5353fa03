// cmd/obtree-bench/main.go
package main

import (
	"fmt"
	"os"

	"github.com/lattice-tree/obtree/internal/bench"
	"github.com/lattice-tree/obtree/internal/config"
)

func main() {
	cfg, err := config.ParseFlags("obtree-bench", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "obtree-bench:", err)
		os.Exit(1)
	}

	suites := []struct {
		name string
		run  func(config.Config) (*bench.Report, error)
	}{
		{"scaling", bench.RunScalingAnalysis},
		{"order comparison", bench.RunOrderComparison},
		{"B-tree vs linear", bench.RunBTreeVsLinear},
		{"insertion pattern", bench.RunInsertionPatternAnalysis},
		{"theoretical vs actual", bench.RunTheoreticalVsActual},
	}

	for _, s := range suites {
		report, err := s.run(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "obtree-bench: %s: %v\n", s.name, err)
			os.Exit(1)
		}
		report.WriteTo(os.Stdout)
	}
}
