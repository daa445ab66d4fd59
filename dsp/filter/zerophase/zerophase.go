package zerophase

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
)

// ErrInsufficientSamples is returned when the input is not longer than the
// padding added at each end.
var ErrInsufficientSamples = errors.New("zerophase: insufficient samples")

// Filter is a forward-backward (filtfilt) filter for fixed coefficients.
type Filter struct {
	coeffs tf.Coefficients
	zi     []float64
	cfg    config
}

// New prepares a zero-phase filter. The steady state of c is solved once
// here; a pole at z = 1 fails with tf.ErrSingular unless
// WithZeroInitialState is given.
func New(c tf.Coefficients, opts ...Option) (*Filter, error) {
	c, err := tf.New(c.B, c.A)
	if err != nil {
		return nil, fmt.Errorf("zerophase: %w", err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch cfg.padType {
	case PadOdd, PadEven, PadConstant, PadNone:
	default:
		return nil, fmt.Errorf("zerophase: unknown pad type %s", cfg.padType)
	}

	f := &Filter{coeffs: c, cfg: cfg}

	if cfg.zeroState {
		f.zi = make([]float64, c.Order())
		return f, nil
	}

	zi, err := tf.SteadyState(c)
	if err != nil {
		return nil, fmt.Errorf("zerophase: %w", err)
	}

	f.zi = zi

	return f, nil
}

// FiltFilt is a one-shot form of New followed by Apply.
func FiltFilt(c tf.Coefficients, x []float64, opts ...Option) ([]float64, error) {
	f, err := New(c, opts...)
	if err != nil {
		return nil, err
	}

	return f.Apply(x)
}

// Coefficients returns a copy of the transfer function.
func (f *Filter) Coefficients() tf.Coefficients {
	return f.coeffs.Clone()
}

// PadLength returns the number of samples added at each end of the input.
func (f *Filter) PadLength() int {
	if f.cfg.padType == PadNone {
		return 0
	}

	if f.cfg.padLen >= 0 {
		return f.cfg.padLen
	}

	return 3 * f.coeffs.Taps()
}

// MinLength returns the shortest input Apply accepts.
func (f *Filter) MinLength() int {
	return f.PadLength() + 1
}

// Apply returns the zero-phase filtered copy of x. x is not modified.
func (f *Filter) Apply(x []float64) ([]float64, error) {
	edge := f.PadLength()
	if len(x) <= edge {
		return nil, fmt.Errorf("%w: need more than %d samples, got %d",
			ErrInsufficientSamples, edge, len(x))
	}

	ext := f.extend(x, edge)

	if err := f.pass(ext); err != nil {
		return nil, err
	}

	slices.Reverse(ext)

	if err := f.pass(ext); err != nil {
		return nil, err
	}

	slices.Reverse(ext)

	out := make([]float64, len(x))
	copy(out, ext[edge:edge+len(x)])

	return out, nil
}

// pass filters buf in place starting from the initial state scaled by buf[0].
func (f *Filter) pass(buf []float64) error {
	state := make([]float64, len(f.zi))
	if !f.cfg.zeroState {
		vecmath.ScaleBlock(state, f.zi, buf[0])
	}

	flt, err := tf.NewFilterWithState(f.coeffs, state)
	if err != nil {
		return fmt.Errorf("zerophase: %w", err)
	}

	flt.ProcessBlock(buf)

	return nil
}

func (f *Filter) extend(x []float64, edge int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*edge)
	copy(ext[edge:], x)

	first, last := x[0], x[n-1]

	for k := 1; k <= edge; k++ {
		left, right := x[k], x[n-1-k]

		switch f.cfg.padType {
		case PadOdd:
			ext[edge-k] = 2*first - left
			ext[edge+n-1+k] = 2*last - right
		case PadEven:
			ext[edge-k] = left
			ext[edge+n-1+k] = right
		case PadConstant:
			ext[edge-k] = first
			ext[edge+n-1+k] = last
		}
	}

	return ext
}
