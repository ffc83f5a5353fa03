// internal/bench/suites.go
package bench

import (
	"github.com/lattice-tree/obtree/internal/config"
	"github.com/lattice-tree/obtree/internal/obtree"
)

// sizes mirrors the DATA_SIZES array run_scaling_benchmark iterates over in
// the original benchmark.c.
var sizes = []int{1_000, 10_000, 100_000, 1_000_000}

// orders mirrors the ORDERS array run_order_comparison_benchmark iterates
// over in the original.
var orders = []int{8, 32, 128, 512}

const benchSeed = 0x5ca1ab1e

// timed runs fn and returns its elapsed wall-clock time in milliseconds.
func timed(fn func()) float64 {
	var t timer
	t.Start()
	fn()
	t.Stop()
	return t.ElapsedMS()
}

// opsPerSec converts an op count and an elapsed-ms duration into a rate,
// guarding against a zero denominator on extremely small datasets.
func opsPerSec(ops int, ms float64) float64 {
	if ms <= 0 {
		return 0
	}
	return float64(ops) / (ms / 1000)
}

func buildAndSearch(order int, keys []obtree.Key, collectStats bool) (*obtree.Tree, Result, error) {
	tree, err := obtree.New(order)
	if err != nil {
		return nil, Result{}, err
	}
	tree.SetCollectStats(collectStats)

	insertMS := timed(func() {
		for _, k := range keys {
			_ = tree.Insert(k, k)
		}
	})

	searchMS := timed(func() {
		for _, k := range keys {
			tree.Contains(k)
		}
	})

	st := tree.StatsGet()
	var avgCmp, avgVisits float64
	if st.SearchOps > 0 {
		avgCmp = float64(st.Comparisons) / float64(st.SearchOps)
		avgVisits = float64(st.NodeVisits) / float64(st.SearchOps)
	}

	res := Result{
		DataSize:                len(keys),
		TreeOrder:               order,
		InsertTimeMS:            insertMS,
		SearchTimeMS:            searchMS,
		InsertOpsPerSec:         opsPerSec(len(keys), insertMS),
		SearchOpsPerSec:         opsPerSec(len(keys), searchMS),
		TreeHeight:              st.Height,
		AvgComparisonsPerSearch: avgCmp,
		AvgNodeVisitsPerSearch:  avgVisits,
		FillFactor:              st.AvgFillFactor,
	}
	return tree, res, nil
}

// RunScalingAnalysis builds a Tree of cfg's order over each of sizes and
// records insert/search throughput and structural stats, mirroring
// run_scaling_benchmark in the original benchmark.c.
func RunScalingAnalysis(cfg config.Config) (*Report, error) {
	r := NewReport("Scaling analysis (fixed order, growing data size)")
	for _, n := range sizes {
		data := Shuffle(GenerateHashedPseudorandom(n, benchSeed), int64(n))
		_, res, err := buildAndSearch(cfg.Order, data.Keys, cfg.CollectStats)
		if err != nil {
			return nil, err
		}
		res.Name = "scaling"
		r.Add(res)
	}
	return r, nil
}

// RunOrderComparison holds the data size fixed and varies the tree's order,
// mirroring run_order_comparison_benchmark.
func RunOrderComparison(cfg config.Config) (*Report, error) {
	const n = 100_000
	r := NewReport("Order comparison (fixed data size, varying fanout)")
	data := Shuffle(GenerateHashedPseudorandom(n, benchSeed), int64(n))
	for _, order := range orders {
		_, res, err := buildAndSearch(order, data.Keys, cfg.CollectStats)
		if err != nil {
			return nil, err
		}
		res.Name = "order-comparison"
		r.Add(res)
	}
	return r, nil
}

// RunBTreeVsLinear builds both a Tree and the O(N) linear baseline over the
// same dataset and reports their search throughput side by side, mirroring
// run_btree_vs_linear_benchmark.
func RunBTreeVsLinear(cfg config.Config) (*Report, error) {
	const n = 50_000
	r := NewReport("B-tree vs linear-scan search")

	data := Shuffle(GenerateHashedPseudorandom(n, benchSeed), int64(n))

	_, treeRes, err := buildAndSearch(cfg.Order, data.Keys, cfg.CollectStats)
	if err != nil {
		return nil, err
	}
	treeRes.Name = "btree"
	r.Add(treeRes)

	arr := newLinearArray(n)
	insertMS := timed(func() {
		for _, k := range data.Keys {
			arr.Insert(k, k)
		}
	})

	var comparisons uint64
	searchMS := timed(func() {
		for _, k := range data.Keys {
			arr.Search(k, &comparisons)
		}
	})

	r.Add(Result{
		Name:                    "linear",
		DataSize:                n,
		InsertTimeMS:            insertMS,
		SearchTimeMS:            searchMS,
		InsertOpsPerSec:         opsPerSec(n, insertMS),
		SearchOpsPerSec:         opsPerSec(n, searchMS),
		AvgComparisonsPerSearch: float64(comparisons) / float64(n),
	})
	return r, nil
}

// RunInsertionPatternAnalysis compares sequential-ascending insertion
// against shuffled insertion at a fixed size and order, mirroring
// run_insertion_pattern_benchmark's sorted-vs-random comparison.
func RunInsertionPatternAnalysis(cfg config.Config) (*Report, error) {
	const n = 100_000
	r := NewReport("Insertion pattern analysis (sequential vs random)")

	sequential := GenerateSequential(n)
	_, seqRes, err := buildAndSearch(cfg.Order, sequential.Keys, cfg.CollectStats)
	if err != nil {
		return nil, err
	}
	seqRes.Name = "sequential"
	r.Add(seqRes)

	random := Shuffle(GenerateHashedPseudorandom(n, benchSeed), int64(n))
	_, randRes, err := buildAndSearch(cfg.Order, random.Keys, cfg.CollectStats)
	if err != nil {
		return nil, err
	}
	randRes.Name = "random"
	r.Add(randRes)

	return r, nil
}

// RunTheoreticalVsActual measures the average comparisons per search over a
// shuffled dataset at cfg's order, with statistics collection forced on,
// mirroring the measured side of run_theoretical_analysis. The report holds
// that single measured row ("actual"); no theoretical figure is computed or
// reported.
func RunTheoreticalVsActual(cfg config.Config) (*Report, error) {
	const n = 100_000
	r := NewReport("Theoretical vs actual comparison counts")

	data := Shuffle(GenerateHashedPseudorandom(n, benchSeed), int64(n))
	_, res, err := buildAndSearch(cfg.Order, data.Keys, true)
	if err != nil {
		return nil, err
	}
	res.Name = "actual"
	r.Add(res)
	return r, nil
}
