package movestats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type Summary struct {
	Histogram []int
	Count     int
	Average   float64
	StdDev    float64
	// Targets keeps the configured order of Quantiles.
	Targets   []float64
	Quantiles map[float64]float64
}

// PrintReport writes the histogram and the average, one per line.
func (summary *Summary) PrintReport(w io.Writer) {
	fmt.Fprintln(w, FormatHistogram(summary.Histogram))
	fmt.Fprintln(w, FormatAverage(summary.Average))
}

func (summary *Summary) PrintDetails(w io.Writer) {
	fmt.Fprintf(
		w,
		`
Games: %d
Move-count mean +/- SD: %.2f +/- %.2f
`,
		summary.Count,
		summary.Average,
		summary.StdDev,
	)
	for _, q := range summary.Targets {
		fmt.Fprintf(w, "Move-count %s pct: %.1f\n", FormatPercent(q), summary.Quantiles[q])
	}
}

// FormatHistogram renders counts as a bracketed list, e.g. [1, 1, 0].
func FormatHistogram(counts []int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatAverage prints the shortest exact form of v and always keeps a
// decimal point, so 6 is written as 6.0.
func FormatAverage(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// FormatPercent writes quantile q as a percentage, dropping the float
// noise of the multiplication (0.07 gives 7, not 7.000000000000001).
func FormatPercent(q float64) string {
	pct := math.Round(100*q*1e6) / 1e6
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
