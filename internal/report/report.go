// Package report renders simulation results for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/memsim/sim"
)

// WriteText prints one summary block per result:
//
//	First Fit
//	Average Nodes Traversed: 31.20
//	Request Denial Percentage: 27.90
//	Average Fragments: 0.01
func WriteText(w io.Writer, results []sim.Result) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w,
			"%s\nAverage Nodes Traversed: %.2f\nRequest Denial Percentage: %.2f\nAverage Fragments: %.2f\n",
			r.Title, r.AvgScan(), r.DenialPercent(), r.AvgFragments())
		if err != nil {
			return err
		}
	}
	return nil
}

// jsonResult adds the derived averages to a result.
type jsonResult struct {
	sim.Result
	AvgScan       float64 `json:"avg_scan"`
	DenialPercent float64 `json:"denial_percent"`
	AvgFragments  float64 `json:"avg_fragments"`
	PoolMap       string  `json:"pool_map,omitempty"`
}

// WriteJSON encodes results as an indented JSON array. The pool map is
// included only when withMap is set.
func WriteJSON(w io.Writer, results []sim.Result, withMap bool) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{
			Result:        r,
			AvgScan:       r.AvgScan(),
			DenialPercent: r.DenialPercent(),
			AvgFragments:  r.AvgFragments(),
		}
		if withMap {
			jr.PoolMap = r.PoolMap
		}
		out = append(out, jr)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// WriteDetail prints a longer, human-oriented report with grouped numbers.
func WriteDetail(w io.Writer, results []sim.Result) error {
	p := message.NewPrinter(language.English)
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		ps := r.Pool
		lines := []string{
			p.Sprintf("%s", r.Title),
			p.Sprintf("  Requests:            %d", r.Requests),
			p.Sprintf("  Allocations:         %d (denied %d)", r.Allocations, r.Denials),
			p.Sprintf("  Deallocations:       %d (no-op %d, units freed %d)", r.Deallocations, r.DeallocMisses, r.UnitsFreed),
			p.Sprintf("  Average scan:        %.2f units", r.AvgScan()),
			p.Sprintf("  Denial rate:         %.2f%%", r.DenialPercent()),
			p.Sprintf("  Average fragments:   %.2f", r.AvgFragments()),
			p.Sprintf("  Pool:                %d units, %d owned, %d free in %d runs (largest %d)",
				ps.Units, ps.OwnedUnits, ps.FreeUnits, ps.FreeRuns, ps.LargestRun),
			p.Sprintf("  Free capacity:       %d (%d inside owned units)", ps.FreeCapacity, ps.InternalWaste),
		}
		if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteMap prints each result's final pool map, width units per line.
// A width <= 0 prints each map on a single line.
func WriteMap(w io.Writer, results []sim.Result, width int) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s pool map:\n%s\n", r.Title, wrap(r.PoolMap, width)); err != nil {
			return err
		}
	}
	return nil
}

func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
