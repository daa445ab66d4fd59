package family

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biosig/dsp/filter/design"
	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
)

// Design computes the transfer function for s. It is deterministic: equal
// specs give bit-identical coefficients. The moving average fails with
// ErrNotRational.
func Design(s Spec) (tf.Coefficients, error) {
	switch s.Kind {
	case KindMovingAverage:
		return tf.Coefficients{}, ErrNotRational
	case KindBandpass, KindLowpass, KindHighpass, KindNotch:
	default:
		return tf.Coefficients{}, fmt.Errorf("%w: unknown filter kind %s", ErrInvalidSpecification, s.Kind)
	}

	if err := s.validateRate(); err != nil {
		return tf.Coefficients{}, err
	}

	switch s.Kind {
	case KindBandpass:
		if err := s.validateOrder(); err != nil {
			return tf.Coefficients{}, err
		}

		if math.IsNaN(s.Low) || math.IsInf(s.Low, 0) || math.IsNaN(s.High) || math.IsInf(s.High, 0) {
			return tf.Coefficients{}, fmt.Errorf("%w: band edges must be finite: %v, %v",
				ErrInvalidSpecification, s.Low, s.High)
		}

		low, high := design.ClampBand(
			design.Normalize(s.Low, s.SampleRate),
			design.Normalize(s.High, s.SampleRate),
		)

		return design.ButterworthBandpass(s.Order, low, high)
	case KindLowpass, KindHighpass:
		if err := s.validateOrder(); err != nil {
			return tf.Coefficients{}, err
		}

		if err := s.inBand("cutoff", s.Cutoff); err != nil {
			return tf.Coefficients{}, err
		}

		wn := design.ClampCutoff(design.Normalize(s.Cutoff, s.SampleRate))
		if s.Kind == KindLowpass {
			return design.ButterworthLowpass(s.Order, wn)
		}

		return design.ButterworthHighpass(s.Order, wn)
	default:
		if err := s.inBand("notch frequency", s.Freq); err != nil {
			return tf.Coefficients{}, err
		}

		return design.Notch(design.Normalize(s.Freq, s.SampleRate), s.Quality)
	}
}
