package movestats

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData is returned when an average is requested before any line
	// was accepted.
	ErrNoData = errors.New("no lines processed")

	// ErrOutOfRange matches every *RangeError.
	ErrOutOfRange = errors.New("move-count out of range")
)

// RangeError reports a line whose move-count has no histogram bucket.
type RangeError struct {
	Line    int
	Tokens  int
	Moves   int
	Buckets int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"line %d: %d tokens give move-count %d, outside 1..%d",
		e.Line, e.Tokens, e.Moves, e.Buckets,
	)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
