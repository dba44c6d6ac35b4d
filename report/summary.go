package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/acotour/aco"
)

// Summary is the printable outcome of one run.
type Summary struct {
	Labels []string   // optional; vertex indices are printed when nil
	Result aco.Result // as returned by the engine
	// Optimum is the exact tour length, or 0 when unknown.
	Optimum float64
}

// Gap returns (Distance − Optimum)/Optimum, or 0 when the optimum is unknown.
func (s Summary) Gap() float64 {
	if s.Optimum <= 0 {
		return 0
	}
	return (s.Result.Distance - s.Optimum) / s.Optimum
}

// Improvement returns how much the best length shrank over the run as a
// fraction of the first iteration's best. ok is false when there is no
// history or the first entry is zero.
func (s Summary) Improvement() (frac float64, ok bool) {
	h := s.Result.History
	if len(h) == 0 || h[0] == 0 {
		return 0, false
	}
	return (h[0] - h[len(h)-1]) / h[0], true
}

// WriteSummary prints the route, its length and run counters to w.
//
// Example output:
//
//	route:      Depot -> B -> A -> Depot
//	distance:   12.3400
//	iterations: 100
//	improvement: 8.4%
func WriteSummary(w io.Writer, s Summary) error {
	stops := make([]string, len(s.Result.Tour))
	for i, v := range s.Result.Tour {
		stops[i] = label(s.Labels, v)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "route:      %s\n", strings.Join(stops, " -> "))
	fmt.Fprintf(&b, "distance:   %.4f\n", s.Result.Distance)
	fmt.Fprintf(&b, "iterations: %d\n", s.Result.Iterations)
	if frac, ok := s.Improvement(); ok {
		fmt.Fprintf(&b, "improvement: %.1f%%\n", 100*frac)
	}
	if s.Result.Degenerate > 0 {
		fmt.Fprintf(&b, "fallbacks:  %d\n", s.Result.Degenerate)
	}
	if s.Optimum > 0 {
		fmt.Fprintf(&b, "optimum:    %.4f (gap %.2f%%)\n", s.Optimum, 100*s.Gap())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func label(labels []string, v int) string {
	if v >= 0 && v < len(labels) && labels[v] != "" {
		return labels[v]
	}
	return fmt.Sprintf("%d", v)
}
