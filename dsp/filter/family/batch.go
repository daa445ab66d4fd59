package family

import (
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/smooth"
	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

// Batch filters whole buffers with zero phase. It holds no mutable state
// and is safe for concurrent use.
type Batch struct {
	spec Spec
	iir  *zerophase.Filter
	ma   *smooth.ZeroPhase
}

// NewBatch builds an offline filter for s. opts tune the forward-backward
// pass of IIR kinds and are ignored for the moving average.
func NewBatch(s Spec, opts ...zerophase.Option) (*Batch, error) {
	if s.Kind == KindMovingAverage {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		ma, err := smooth.NewZeroPhase(s.Window)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSpecification, err)
		}

		return &Batch{spec: s, ma: ma}, nil
	}

	c, err := Design(s)
	if err != nil {
		return nil, err
	}

	f, err := zerophase.New(c, opts...)
	if err != nil {
		return nil, fmt.Errorf("family: %s: %w", s.Kind, err)
	}

	return &Batch{spec: s, iir: f}, nil
}

// Filter returns the zero-phase filtered copy of x. IIR kinds fail with
// ErrInsufficientSamples when len(x) < MinLength(); the moving average
// accepts any length.
func (b *Batch) Filter(x []float64) ([]float64, error) {
	if b.ma != nil {
		return b.ma.Apply(x), nil
	}

	return b.iir.Apply(x)
}

// MinLength returns the shortest buffer Filter accepts.
func (b *Batch) MinLength() int {
	if b.ma != nil {
		return 0
	}

	return b.iir.MinLength()
}

// Spec returns the specification the filter was built from.
func (b *Batch) Spec() Spec {
	return b.spec
}

// Coefficients returns the transfer function. ok is false for the moving
// average.
func (b *Batch) Coefficients() (c tf.Coefficients, ok bool) {
	if b.iir == nil {
		return tf.Coefficients{}, false
	}

	return b.iir.Coefficients(), true
}

// NewOfflineBandpass builds a zero-phase Butterworth bandpass.
func NewOfflineBandpass(low, high, sampleRate float64, opts ...Option) (*Batch, error) {
	return NewBatch(Bandpass(low, high, sampleRate, opts...))
}

// NewOfflineLowpass builds a zero-phase Butterworth lowpass.
func NewOfflineLowpass(cutoff, sampleRate float64, opts ...Option) (*Batch, error) {
	return NewBatch(Lowpass(cutoff, sampleRate, opts...))
}

// NewOfflineHighpass builds a zero-phase Butterworth highpass.
func NewOfflineHighpass(cutoff, sampleRate float64, opts ...Option) (*Batch, error) {
	return NewBatch(Highpass(cutoff, sampleRate, opts...))
}

// NewOfflineNotch builds a zero-phase notch.
func NewOfflineNotch(freq, sampleRate float64, opts ...Option) (*Batch, error) {
	return NewBatch(Notch(freq, sampleRate, opts...))
}

// NewOfflineMovingAverage builds a forward-backward moving average.
func NewOfflineMovingAverage(window int) (*Batch, error) {
	return NewBatch(MovingAverage(window))
}
