// Package movestats tallies how many moves each recorded game took.
//
// Every input line is one game: whitespace separated tokens, two per move.
// The Accumulator folds lines into a fixed histogram of move-counts and a
// running mean, then hands back a Summary for reporting.
package movestats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beorn7/perks/quantile"
	"go.uber.org/multierr"
)

const DefaultBuckets = 6

// QuantileEpsilon is the rank error allowed for every reported quantile
// once the stream is too large to be kept exactly.
const QuantileEpsilon = 0.001

// maxLineLength bounds a single game record.
const maxLineLength = 16 << 20

type Accumulator struct {
	buckets   []int
	stats     BasicStats
	targets   []float64
	quantiles *quantile.Stream
	lines     int
}

// NewAccumulator returns an accumulator with one bucket per move-count in
// 1..buckets. A non-positive buckets falls back to DefaultBuckets. The
// targets are the quantiles Summarize will report.
func NewAccumulator(buckets int, targets ...float64) *Accumulator {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	acc := &Accumulator{
		buckets: make([]int, buckets),
		targets: append([]float64(nil), targets...),
	}
	if len(targets) > 0 {
		objectives := make(map[float64]float64, len(targets))
		for _, q := range targets {
			objectives[q] = QuantileEpsilon
		}
		acc.quantiles = quantile.NewTargeted(objectives)
	}
	return acc
}

// MoveCount is half the number of whitespace separated tokens on line,
// rounded down. It also returns the token count.
func MoveCount(line string) (moves, tokens int) {
	tokens = len(strings.Fields(line))
	return tokens / 2, tokens
}

// AddLine counts one game. A move-count without a bucket yields a
// *RangeError and leaves the histogram and totals untouched.
func (acc *Accumulator) AddLine(line string) error {
	acc.lines++
	moves, tokens := MoveCount(line)
	if moves < 1 || moves > len(acc.buckets) {
		return &RangeError{
			Line:    acc.lines,
			Tokens:  tokens,
			Moves:   moves,
			Buckets: len(acc.buckets),
		}
	}
	acc.buckets[moves-1]++
	acc.stats.Add(moves)
	if acc.quantiles != nil {
		acc.quantiles.Insert(float64(moves))
	}
	return nil
}

// Process feeds every line of r to AddLine and stops at the first error.
// Lines end at "\n", "\r\n" or a lone "\r". A final line without a line
// ending is still counted.
func (acc *Accumulator) Process(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	scanner.Split(scanLines)
	for scanner.Scan() {
		if err := acc.AddLine(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", acc.lines+1, err)
	}
	return nil
}

// scanLines is bufio.ScanLines that also accepts a bare carriage return
// as a line ending.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// a "\r" at the end of the buffer may be the first half of "\r\n"
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func (acc *Accumulator) Histogram() []int {
	return append([]int(nil), acc.buckets...)
}

// Count is the number of accepted lines.
func (acc *Accumulator) Count() int {
	return acc.stats.Count
}

// Average is the mean move-count, or ErrNoData for empty input.
func (acc *Accumulator) Average() (float64, error) {
	return acc.stats.Mean()
}

func (acc *Accumulator) Summarize() (summary Summary, err error) {
	summary.Average, err = acc.Average()
	if err != nil {
		return
	}
	summary.Histogram = acc.Histogram()
	summary.Count = acc.stats.Count
	summary.StdDev = acc.stats.StdDev()
	if acc.quantiles != nil {
		summary.Targets = append([]float64(nil), acc.targets...)
		summary.Quantiles = make(map[float64]float64, len(acc.targets))
		for _, q := range acc.targets {
			summary.Quantiles[q] = acc.quantiles.Query(q)
		}
	}
	return
}

// ProcessFile runs a fresh accumulator over the file at path. The file is
// closed on every return path; a close failure is joined to the result.
func ProcessFile(path string, buckets int, targets ...float64) (summary Summary, err error) {
	f, err := os.Open(path)
	if err != nil {
		return summary, fmt.Errorf("opening input: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	acc := NewAccumulator(buckets, targets...)
	if err = acc.Process(f); err != nil {
		return summary, fmt.Errorf("%s: %w", path, err)
	}
	if summary, err = acc.Summarize(); err != nil {
		return summary, fmt.Errorf("%s: %w", path, err)
	}
	return summary, nil
}
