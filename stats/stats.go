// Package stats accumulates scan-run counters the way scan.py's
// report_stats/stats_pct do, and reports them in the same tabular shape.
package stats

import (
	"fmt"
	"io"
)

// Counters tracks a single scan run across a stream of lines or a TEI
// batch: how many lines were seen, how many scanned to exactly one
// scansion, how many failed to scan at all, and how many scanned
// ambiguously (more than one minimum-cost result).
type Counters struct {
	Total      int
	Scanned    int
	NoMatch    int
	MultiMatch int
}

// Record folds one line's result count into the counters.
func (c *Counters) Record(n int) {
	c.Total++
	switch {
	case n == 0:
		c.NoMatch++
	case n == 1:
		c.Scanned++
	default:
		c.MultiMatch++
	}
}

// Pct returns the percentage field represents of Total, or 0 if no lines
// have been recorded yet.
func (c Counters) Pct(field int) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(field) / float64(c.Total) * 100
}

// Report writes the same four-line summary scan.py's report_stats prints.
func (c Counters) Report(w io.Writer) {
	fmt.Fprintf(w, "Total lines scanned: %d\n", c.Total)
	fmt.Fprintf(w, "Success:             %d (%.1f%%)\n", c.Scanned, c.Pct(c.Scanned))
	fmt.Fprintf(w, "Failed:              %d (%.1f%%)\n", c.NoMatch, c.Pct(c.NoMatch))
	fmt.Fprintf(w, "Multiple matches:    %d (%.1f%%)\n", c.MultiMatch, c.Pct(c.MultiMatch))
}
