// internal/bench/report.go
package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Result is one row of benchmark output, mirroring benchmark_result_t in
// the original benchmark.c.
type Result struct {
	Name                    string
	DataSize                int
	TreeOrder               int // 0 for the linear baseline, which has no order
	InsertTimeMS            float64
	SearchTimeMS            float64
	InsertOpsPerSec         float64
	SearchOpsPerSec         float64
	TreeHeight              uint32
	AvgComparisonsPerSearch float64
	AvgNodeVisitsPerSearch  float64
	FillFactor              float64
}

// Report accumulates Results and renders them as a fixed-width table, the
// Go equivalent of the original's printf-formatted columns.
type Report struct {
	Title   string
	Results []Result
}

func NewReport(title string) *Report {
	return &Report{Title: title}
}

func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// WriteTo renders the report as a fixed-width table using text/tabwriter,
// one line per Result, with the same columns the original's print_header/
// print_result produce.
func (r *Report) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", r.Title)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Benchmark\tRecords\tOrder\tInsert(ms)\tInsert/sec\tSearch/sec\tHeight\tAvg Cmp\tAvg Node\tFill%")

	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.0f\t%.0f\t%d\t%.2f\t%.2f\t%.1f\n",
			res.Name,
			res.DataSize,
			res.TreeOrder,
			res.InsertTimeMS,
			res.InsertOpsPerSec,
			res.SearchOpsPerSec,
			res.TreeHeight,
			res.AvgComparisonsPerSearch,
			res.AvgNodeVisitsPerSearch,
			res.FillFactor*100,
		)
	}
	tw.Flush()
}
