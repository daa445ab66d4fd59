// Package tf provides rational transfer-function filter primitives.
//
// [Coefficients] holds a numerator b and denominator a with a[0] normalized to
// 1. A [Filter] runs the recursion sample by sample in Direct Form II
// Transposed with a delay line of max(len(a), len(b))-1 values, starting
// from the steady state returned by [SteadyState] so that a unit-level input
// produces no start-up transient.
//
// Coefficient design lives in dsp/filter/design; forward-backward batch
// filtering lives in dsp/filter/zerophase.
package tf
