package movestats

import (
	"math"
)

// BasicStats keeps running moments of the move-counts added so far.
// Sums are kept as integers so the mean is exact up to the final division.
type BasicStats struct {
	Count int
	Sum   int
	Sumsq int
}

func (s *BasicStats) Add(moves int) {
	s.Count++
	s.Sum += moves
	s.Sumsq += moves * moves
}

func (s *BasicStats) Mean() (float64, error) {
	if s.Count == 0 {
		return 0, ErrNoData
	}
	return float64(s.Sum) / float64(s.Count), nil
}

func (s *BasicStats) Variance() (variance float64) {
	if s.Count < 2 {
		return 0
	}
	count := float64(s.Count)
	mean := float64(s.Sum) / count
	variance = float64(s.Sumsq) - count*mean*mean
	if variance < 0 {
		variance = 0
	} else {
		variance /= (count - 1)
	}
	return
}

func (s *BasicStats) StdDev() float64 {
	return math.Sqrt(s.Variance())
}
