package design

import (
	"math"

	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
)

// Notch designs a second-order IIR notch at the normalized frequency wn with
// quality factor q. The -3 dB bandwidth is wn/q; gain is unity at DC and
// Nyquist and zero at wn.
func Notch(wn, q float64) (tf.Coefficients, error) {
	if err := validateNormalized("notch frequency", wn); err != nil {
		return tf.Coefficients{}, err
	}

	if err := validateQuality(q); err != nil {
		return tf.Coefficients{}, err
	}

	bw := wn / q * math.Pi
	w0 := wn * math.Pi

	beta := math.Tan(bw / 2)
	gain := 1 / (1 + beta)
	cw := math.Cos(w0)

	b := []float64{gain, -2 * gain * cw, gain}
	a := []float64{1, -2 * gain * cw, 2*gain - 1}

	return tf.New(b, a)
}
