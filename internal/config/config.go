// internal/config/config.go
package config

import (
	"flag"
	"fmt"
)

// Config carries the knobs needed to construct an obtree.Tree from a
// command line: the fanout and whether to collect the hot-path statistics
// counters.
type Config struct {
	Order        int
	CollectStats bool
}

// ParseFlags builds a Config from args using a flag.FlagSet, the way the
// teacher's cmd/cli and cmd/server build theirs. -order defaults to the
// recommended 128 (SPEC_FULL.md §4.1); -stats defaults to true, matching
// Tree's own default.
func ParseFlags(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	order := fs.Int("order", 128, "maximum children per B-tree node (3-1024)")
	stats := fs.Bool("stats", true, "collect per-comparison and per-node-visit statistics")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{Order: *order, CollectStats: *stats}
	if cfg.Order < 3 || cfg.Order > 1024 {
		return Config{}, fmt.Errorf("invalid -order %d: must be in [3, 1024]", cfg.Order)
	}
	return cfg, nil
}
