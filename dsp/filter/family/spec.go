package family

import (
	"fmt"
	"math"
)

const (
	// DefaultOrder is the Butterworth order used when none is given.
	DefaultOrder = 4
	// DefaultQuality is the notch quality factor used when none is given.
	DefaultQuality = 30.0
)

// Spec describes one filter. Only the fields relevant to Kind are used:
//
//	KindBandpass       Low, High, SampleRate, Order
//	KindLowpass        Cutoff, SampleRate, Order
//	KindHighpass       Cutoff, SampleRate, Order
//	KindNotch          Freq, Quality, SampleRate
//	KindMovingAverage  Window
//
// Build values with the kind constructors so defaults are filled in.
type Spec struct {
	Kind       Kind
	SampleRate float64 // Hz
	Order      int

	Low, High float64 // band edges, Hz
	Cutoff    float64 // Hz
	Freq      float64 // notch centre, Hz
	Quality   float64
	Window    int // samples
}

// Option adjusts a Spec built by one of the kind constructors.
type Option func(*Spec)

// WithOrder sets the Butterworth order.
func WithOrder(order int) Option {
	return func(s *Spec) { s.Order = order }
}

// WithQuality sets the notch quality factor.
func WithQuality(q float64) Option {
	return func(s *Spec) { s.Quality = q }
}

func build(s Spec, opts []Option) Spec {
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// Bandpass returns a Butterworth bandpass spec between low and high Hz.
func Bandpass(low, high, sampleRate float64, opts ...Option) Spec {
	return build(Spec{Kind: KindBandpass, Low: low, High: high, SampleRate: sampleRate, Order: DefaultOrder}, opts)
}

// Lowpass returns a Butterworth lowpass spec.
func Lowpass(cutoff, sampleRate float64, opts ...Option) Spec {
	return build(Spec{Kind: KindLowpass, Cutoff: cutoff, SampleRate: sampleRate, Order: DefaultOrder}, opts)
}

// Highpass returns a Butterworth highpass spec.
func Highpass(cutoff, sampleRate float64, opts ...Option) Spec {
	return build(Spec{Kind: KindHighpass, Cutoff: cutoff, SampleRate: sampleRate, Order: DefaultOrder}, opts)
}

// Notch returns a notch spec removing freq Hz.
func Notch(freq, sampleRate float64, opts ...Option) Spec {
	return build(Spec{Kind: KindNotch, Freq: freq, SampleRate: sampleRate, Quality: DefaultQuality}, opts)
}

// MovingAverage returns a moving-average spec over window samples.
func MovingAverage(window int) Spec {
	return Spec{Kind: KindMovingAverage, Window: window}
}

// Nyquist returns half the sample rate.
func (s Spec) Nyquist() float64 {
	return s.SampleRate / 2
}

// String formats the parameters relevant to the kind.
func (s Spec) String() string {
	switch s.Kind {
	case KindBandpass:
		return fmt.Sprintf("bandpass %g-%g Hz order %d @ %g Hz", s.Low, s.High, s.Order, s.SampleRate)
	case KindLowpass, KindHighpass:
		return fmt.Sprintf("%s %g Hz order %d @ %g Hz", s.Kind, s.Cutoff, s.Order, s.SampleRate)
	case KindNotch:
		return fmt.Sprintf("notch %g Hz Q %g @ %g Hz", s.Freq, s.Quality, s.SampleRate)
	case KindMovingAverage:
		return fmt.Sprintf("moving-average %d samples", s.Window)
	default:
		return s.Kind.String()
	}
}

// Validate reports whether a filter can be built from s. Band edges and
// cutoffs that the clamping policy recovers are accepted.
func (s Spec) Validate() error {
	if s.Kind == KindMovingAverage {
		if s.Window < 1 {
			return fmt.Errorf("%w: window must be >= 1: %d", ErrInvalidSpecification, s.Window)
		}

		return nil
	}

	_, err := Design(s)

	return err
}

func (s Spec) validateRate() error {
	if s.SampleRate <= 0 || math.IsNaN(s.SampleRate) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidSpecification, s.SampleRate)
	}

	return nil
}

func (s Spec) validateOrder() error {
	if s.Order < 1 {
		return fmt.Errorf("%w: order must be >= 1: %d", ErrInvalidSpecification, s.Order)
	}

	return nil
}

// inBand checks 0 < f < Nyquist for a raw frequency in Hz.
func (s Spec) inBand(name string, f float64) error {
	if math.IsNaN(f) || f <= 0 || f >= s.Nyquist() {
		return fmt.Errorf("%w: %s must be in (0, %g) Hz: %v", ErrInvalidSpecification, name, s.Nyquist(), f)
	}

	return nil
}
