package family

import (
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/filter/smooth"
	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
)

// Streaming filters one sample at a time. IIR kinds run a transposed
// direct form II recursion that starts from the unit-step steady state;
// the moving average keeps a FIFO window.
//
// A Streaming is not safe for concurrent use; give each stream its own
// instance.
type Streaming struct {
	spec Spec
	iir  *tf.Filter
	ma   *smooth.MovingAverage
}

// NewStreaming builds a realtime filter for s.
func NewStreaming(s Spec) (*Streaming, error) {
	if s.Kind == KindMovingAverage {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		ma, err := smooth.NewMovingAverage(s.Window)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSpecification, err)
		}

		return &Streaming{spec: s, ma: ma}, nil
	}

	c, err := Design(s)
	if err != nil {
		return nil, err
	}

	f, err := tf.NewFilter(c)
	if err != nil {
		return nil, fmt.Errorf("family: %s: %w", s.Kind, err)
	}

	return &Streaming{spec: s, iir: f}, nil
}

// Next filters one sample and returns the output.
func (s *Streaming) Next(x float64) float64 {
	if s.ma != nil {
		return s.ma.ProcessSample(x)
	}

	return s.iir.ProcessSample(x)
}

// ProcessBlock filters buf in place, sample by sample.
func (s *Streaming) ProcessBlock(buf []float64) {
	if s.ma != nil {
		s.ma.ProcessBlock(buf)
		return
	}

	s.iir.ProcessBlock(buf)
}

// Reset returns to the construction-time state: the unit-step steady state
// for IIR kinds, an empty window for the moving average.
func (s *Streaming) Reset() {
	if s.ma != nil {
		s.ma.Reset()
		return
	}

	s.iir.Reset()
}

// PrimeTo sets the state to the steady state for a constant input of
// level, so a signal resting at level produces no start-up transient. It
// has no effect on the moving average.
func (s *Streaming) PrimeTo(level float64) {
	if s.iir != nil {
		s.iir.PrimeTo(level)
	}
}

// Spec returns the specification the filter was built from.
func (s *Streaming) Spec() Spec {
	return s.spec
}

// Coefficients returns the transfer function. ok is false for the moving
// average.
func (s *Streaming) Coefficients() (c tf.Coefficients, ok bool) {
	if s.iir == nil {
		return tf.Coefficients{}, false
	}

	return s.iir.Coefficients(), true
}

// NewRealtimeBandpass builds a streaming Butterworth bandpass.
func NewRealtimeBandpass(low, high, sampleRate float64, opts ...Option) (*Streaming, error) {
	return NewStreaming(Bandpass(low, high, sampleRate, opts...))
}

// NewRealtimeLowpass builds a streaming Butterworth lowpass.
func NewRealtimeLowpass(cutoff, sampleRate float64, opts ...Option) (*Streaming, error) {
	return NewStreaming(Lowpass(cutoff, sampleRate, opts...))
}

// NewRealtimeHighpass builds a streaming Butterworth highpass.
func NewRealtimeHighpass(cutoff, sampleRate float64, opts ...Option) (*Streaming, error) {
	return NewStreaming(Highpass(cutoff, sampleRate, opts...))
}

// NewRealtimeNotch builds a streaming notch.
func NewRealtimeNotch(freq, sampleRate float64, opts ...Option) (*Streaming, error) {
	return NewStreaming(Notch(freq, sampleRate, opts...))
}

// NewRealtimeMovingAverage builds a streaming moving average.
func NewRealtimeMovingAverage(window int) (*Streaming, error) {
	return NewStreaming(MovingAverage(window))
}
