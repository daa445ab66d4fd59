// Package equivalence compares two renderings of the same signal, such as
// the streaming and zero-phase outputs of one filter, after an initial
// transient has been skipped.
package equivalence

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when the inputs differ in length.
var ErrLengthMismatch = errors.New("equivalence: inputs differ in length")

// ErrTooShort is returned when fewer than two samples remain after skipping.
var ErrTooShort = errors.New("equivalence: fewer than two samples after skip")

// Result summarises the agreement of two signals.
type Result struct {
	Samples     int     // samples compared
	MaxAbsDiff  float64 // largest |a-b|
	MeanAbsDiff float64
	RMSDiff     float64
	// Correlation is the Pearson correlation. It is NaN when either signal
	// is constant over the compared range.
	Correlation float64
	RMSA, RMSB  float64
}

// Compare measures a[skip:] against b[skip:].
func Compare(a, b []float64, skip int) (Result, error) {
	if len(a) != len(b) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	skip = max(skip, 0)
	if len(a)-skip < 2 {
		return Result{}, fmt.Errorf("%w: %d samples, skip %d", ErrTooShort, len(a), skip)
	}

	a, b = a[skip:], b[skip:]
	n := float64(len(a))

	diff := make([]float64, len(a))
	floats.SubTo(diff, a, b)

	res := Result{
		Samples:     len(a),
		MaxAbsDiff:  floats.Distance(a, b, math.Inf(1)),
		MeanAbsDiff: floats.Norm(diff, 1) / n,
		RMSDiff:     floats.Norm(diff, 2) / math.Sqrt(n),
		Correlation: stat.Correlation(a, b, nil),
		RMSA:        RMS(a),
		RMSB:        RMS(b),
	}

	return res, nil
}

// Within reports whether the signals agree to maxAbs and correlate above
// minCorrelation.
func (r Result) Within(maxAbs, minCorrelation float64) bool {
	return r.MaxAbsDiff < maxAbs && r.Correlation > minCorrelation
}

// RMS returns the root mean square of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, 2) / math.Sqrt(float64(len(x)))
}
