package movestats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAverage(t *testing.T) {
	tests := map[float64]string{
		1.5:        "1.5",
		6:          "6.0",
		1:          "1.0",
		10.0 / 3.0: "3.3333333333333335",
		2.25:       "2.25",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatAverage(in))
	}
}

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		0.05:  "5",
		0.07:  "7",
		0.29:  "29",
		0.5:   "50",
		0.95:  "95",
		0.999: "99.9",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPercent(in), "quantile %v", in)
	}
}

func TestFormatHistogram(t *testing.T) {
	assert.Equal(t, "[1, 1, 0, 0, 0, 0]", FormatHistogram([]int{1, 1, 0, 0, 0, 0}))
	assert.Equal(t, "[]", FormatHistogram(nil))
}

func TestPrintReport(t *testing.T) {
	summary := Summary{Histogram: []int{0, 0, 0, 0, 0, 3}, Count: 3, Average: 6}
	var buf bytes.Buffer
	summary.PrintReport(&buf)
	assert.Equal(t, "[0, 0, 0, 0, 0, 3]\n6.0\n", buf.String())
}

func TestPrintDetails(t *testing.T) {
	summary := Summary{
		Histogram: []int{1, 1, 0, 0, 0, 0},
		Count:     2,
		Average:   1.5,
		StdDev:    0.7071,
		Targets:   []float64{0.07, 0.5, 0.95},
		Quantiles: map[float64]float64{0.07: 1, 0.5: 1, 0.95: 2},
	}
	var buf bytes.Buffer
	summary.PrintDetails(&buf)
	assert.Equal(t,
		"\nGames: 2\nMove-count mean +/- SD: 1.50 +/- 0.71\nMove-count 7 pct: 1.0\nMove-count 50 pct: 1.0\nMove-count 95 pct: 2.0\n",
		buf.String(),
	)
}
