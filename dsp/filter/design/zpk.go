package design

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biosig/dsp/filter/tf"
	"github.com/cwbudde/algo-biosig/internal/poly"
)

// ZPK is a transfer function in zero-pole-gain form. For analog filters the
// roots live in the s-plane, for digital filters in the z-plane.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// ButterworthPrototype returns the analog Butterworth lowpass prototype of
// the given order with a cutoff of 1 rad/s: no zeros, unit gain and poles
// p_k = -exp(j*pi*m/(2N)) for m = -N+1, -N+3, ..., N-1.
func ButterworthPrototype(order int) ZPK {
	poles := make([]complex128, order)
	for i := range poles {
		m := float64(2*i - order + 1)
		poles[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	return ZPK{Poles: poles, Gain: 1}
}

// RelativeDegree returns len(Poles) - len(Zeros).
func (z ZPK) RelativeDegree() int {
	return len(z.Poles) - len(z.Zeros)
}

// LowpassToLowpass moves an analog lowpass prototype to cutoff wo (rad/s).
func (z ZPK) LowpassToLowpass(wo float64) ZPK {
	k := complex(wo, 0)

	return ZPK{
		Zeros: mapRoots(z.Zeros, func(r complex128) complex128 { return r * k }),
		Poles: mapRoots(z.Poles, func(r complex128) complex128 { return r * k }),
		Gain:  z.Gain * math.Pow(wo, float64(z.RelativeDegree())),
	}
}

// LowpassToHighpass turns an analog lowpass prototype into a highpass with
// cutoff wo (rad/s). Missing zeros are placed at the origin.
func (z ZPK) LowpassToHighpass(wo float64) ZPK {
	k := complex(wo, 0)
	invert := func(r complex128) complex128 { return k / r }

	zeros := mapRoots(z.Zeros, invert)
	for range z.RelativeDegree() {
		zeros = append(zeros, 0)
	}

	return ZPK{
		Zeros: zeros,
		Poles: mapRoots(z.Poles, invert),
		Gain:  z.Gain * real(prodNeg(z.Zeros)/prodNeg(z.Poles)),
	}
}

// LowpassToBandpass turns an analog lowpass prototype into a bandpass
// centred on wo with bandwidth bw (both rad/s). Every root splits in two and
// the relative degree worth of zeros is placed at the origin.
func (z ZPK) LowpassToBandpass(wo, bw float64) ZPK {
	half := complex(bw/2, 0)
	wo2 := complex(wo*wo, 0)

	split := func(roots []complex128) []complex128 {
		out := make([]complex128, 0, 2*len(roots))
		for _, r := range roots {
			lp := r * half
			out = append(out, lp+cmplx.Sqrt(lp*lp-wo2))
		}
		for _, r := range roots {
			lp := r * half
			out = append(out, lp-cmplx.Sqrt(lp*lp-wo2))
		}

		return out
	}

	degree := z.RelativeDegree()

	zeros := split(z.Zeros)
	for range degree {
		zeros = append(zeros, 0)
	}

	return ZPK{
		Zeros: zeros,
		Poles: split(z.Poles),
		Gain:  z.Gain * math.Pow(bw, float64(degree)),
	}
}

// Bilinear maps an analog ZPK to the z-plane with s = 2*fs*(z-1)/(z+1).
// Zeros at infinity land on z = -1.
func (z ZPK) Bilinear(fs float64) ZPK {
	fs2 := complex(2*fs, 0)
	bilinear := func(r complex128) complex128 { return (fs2 + r) / (fs2 - r) }

	zeros := mapRoots(z.Zeros, bilinear)
	for range z.RelativeDegree() {
		zeros = append(zeros, -1)
	}

	num := complex(1, 0)
	for _, r := range z.Zeros {
		num *= fs2 - r
	}

	den := complex(1, 0)
	for _, r := range z.Poles {
		den *= fs2 - r
	}

	return ZPK{
		Zeros: zeros,
		Poles: mapRoots(z.Poles, bilinear),
		Gain:  z.Gain * real(num/den),
	}
}

// TransferFunction expands the ZPK into numerator and denominator
// polynomials. Roots must come in conjugate pairs.
func (z ZPK) TransferFunction() (tf.Coefficients, error) {
	if err := poly.CheckConjugatePairs(z.Zeros); err != nil {
		return tf.Coefficients{}, fmt.Errorf("design: zeros: %w", err)
	}

	if err := poly.CheckConjugatePairs(z.Poles); err != nil {
		return tf.Coefficients{}, fmt.Errorf("design: poles: %w", err)
	}

	b, err := poly.Real(poly.FromRoots(z.Zeros))
	if err != nil {
		return tf.Coefficients{}, fmt.Errorf("design: numerator: %w", err)
	}

	a, err := poly.Real(poly.FromRoots(z.Poles))
	if err != nil {
		return tf.Coefficients{}, fmt.Errorf("design: denominator: %w", err)
	}

	return tf.New(poly.Scale(b, z.Gain), a)
}

func mapRoots(roots []complex128, fn func(complex128) complex128) []complex128 {
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = fn(r)
	}

	return out
}

// prodNeg returns prod(-r) over roots; the empty product is 1.
func prodNeg(roots []complex128) complex128 {
	p := complex(1, 0)
	for _, r := range roots {
		p *= -r
	}

	return p
}
