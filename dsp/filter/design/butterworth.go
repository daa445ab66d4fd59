package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
)

// BandType selects the response shape of a Butterworth design.
type BandType int

const (
	Lowpass BandType = iota + 1
	Highpass
	Bandpass
)

// String returns the band type name.
func (b BandType) String() string {
	switch b {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("BandType(%d)", int(b))
	}
}

// digitalFs is the sample rate implied by Nyquist-normalized frequencies.
const digitalFs = 2.0

// prewarp maps a normalized digital frequency to the analog frequency the
// bilinear transform sends back onto it.
func prewarp(wn float64) float64 {
	return 2 * digitalFs * math.Tan(math.Pi*wn/digitalFs)
}

// ButterworthZPK designs a digital Butterworth filter in zero-pole-gain form.
// wn holds one normalized critical frequency for Lowpass and Highpass and the
// (low, high) edges for Bandpass. A bandpass of order N has 2N poles.
func ButterworthZPK(order int, btype BandType, wn ...float64) (ZPK, error) {
	if err := validateOrder(order); err != nil {
		return ZPK{}, err
	}

	want := 1
	if btype == Bandpass {
		want = 2
	}

	if len(wn) != want {
		return ZPK{}, fmt.Errorf("%w: %s needs %d critical frequencies, got %d",
			ErrInvalidSpecification, btype, want, len(wn))
	}

	for _, w := range wn {
		if err := validateNormalized("critical frequency", w); err != nil {
			return ZPK{}, err
		}
	}

	proto := ButterworthPrototype(order)

	var analog ZPK

	switch btype {
	case Lowpass:
		analog = proto.LowpassToLowpass(prewarp(wn[0]))
	case Highpass:
		analog = proto.LowpassToHighpass(prewarp(wn[0]))
	case Bandpass:
		if wn[0] >= wn[1] {
			return ZPK{}, fmt.Errorf("%w: band edges must satisfy low < high: %v >= %v",
				ErrInvalidSpecification, wn[0], wn[1])
		}

		lo, hi := prewarp(wn[0]), prewarp(wn[1])
		analog = proto.LowpassToBandpass(math.Sqrt(lo*hi), hi-lo)
	default:
		return ZPK{}, fmt.Errorf("%w: unknown band type %s", ErrInvalidSpecification, btype)
	}

	return analog.Bilinear(digitalFs), nil
}

// Butterworth designs a digital Butterworth filter and returns its transfer
// function. See [ButterworthZPK] for the meaning of wn.
func Butterworth(order int, btype BandType, wn ...float64) (tf.Coefficients, error) {
	zpk, err := ButterworthZPK(order, btype, wn...)
	if err != nil {
		return tf.Coefficients{}, err
	}

	return zpk.TransferFunction()
}

// ButterworthLowpass designs an order-N lowpass with normalized cutoff wn.
func ButterworthLowpass(order int, wn float64) (tf.Coefficients, error) {
	return Butterworth(order, Lowpass, wn)
}

// ButterworthHighpass designs an order-N highpass with normalized cutoff wn.
func ButterworthHighpass(order int, wn float64) (tf.Coefficients, error) {
	return Butterworth(order, Highpass, wn)
}

// ButterworthBandpass designs an order-N bandpass (2N poles) between the
// normalized edges low and high.
func ButterworthBandpass(order int, low, high float64) (tf.Coefficients, error) {
	return Butterworth(order, Bandpass, low, high)
}
