package tf

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-biosig/internal/poly"
)

// ErrInvalidCoefficients is returned for empty coefficient slices or a zero
// leading denominator coefficient.
var ErrInvalidCoefficients = errors.New("tf: invalid coefficients")

// Coefficients is a rational transfer function
//
//	H(z) = (b[0] + b[1] z^-1 + ... ) / (1 + a[1] z^-1 + ...)
//
// Values built with [New] always carry a[0] == 1.
type Coefficients struct {
	B []float64 // feedforward (numerator)
	A []float64 // feedback (denominator)
}

// New copies b and a and normalizes both by a[0].
func New(b, a []float64) (Coefficients, error) {
	if len(b) == 0 || len(a) == 0 {
		return Coefficients{}, fmt.Errorf("%w: empty numerator or denominator", ErrInvalidCoefficients)
	}

	a0 := a[0]
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}, fmt.Errorf("%w: a[0] = %v", ErrInvalidCoefficients, a0)
	}

	c := Coefficients{
		B: make([]float64, len(b)),
		A: make([]float64, len(a)),
	}
	for i, v := range b {
		c.B[i] = v / a0
	}
	for i, v := range a {
		c.A[i] = v / a0
	}
	c.A[0] = 1

	return c, nil
}

// Taps returns max(len(B), len(A)).
func (c Coefficients) Taps() int {
	return max(len(c.B), len(c.A))
}

// Order returns the recursion order, Taps()-1. It equals the length of the
// filter state.
func (c Coefficients) Order() int {
	if c.Taps() == 0 {
		return 0
	}

	return c.Taps() - 1
}

// Clone returns a deep copy.
func (c Coefficients) Clone() Coefficients {
	return Coefficients{
		B: append([]float64(nil), c.B...),
		A: append([]float64(nil), c.A...),
	}
}

// padded returns copies of B and A zero-extended to Taps().
func (c Coefficients) padded() (b, a []float64) {
	n := c.Taps()
	b = make([]float64, n)
	a = make([]float64, n)
	copy(b, c.B)
	copy(a, c.A)

	return b, a
}

// DCGain returns H(1) = sum(b)/sum(a).
func (c Coefficients) DCGain() float64 {
	var sb, sa float64
	for _, v := range c.B {
		sb += v
	}
	for _, v := range c.A {
		sa += v
	}

	return sb / sa
}

// Response computes the complex frequency response H(e^jw) at freqHz for
// the given sample rate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	zinv := cmplx.Exp(complex(0, -w))

	// Horner in z^-1 with reversed coefficient order.
	return evalInverse(c.B, zinv) / evalInverse(c.A, zinv)
}

func evalInverse(coeff []float64, zinv complex128) complex128 {
	var v complex128
	for i := len(coeff) - 1; i >= 0; i-- {
		v = v*zinv + complex(coeff[i], 0)
	}

	return v
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Poles returns the roots of the denominator in the z-plane.
func (c Coefficients) Poles() ([]complex128, error) {
	if len(c.A) < 2 {
		return nil, nil
	}

	return poly.Roots(c.A)
}

// IsStable reports whether every pole lies strictly inside the unit circle.
func (c Coefficients) IsStable() (bool, error) {
	poles, err := c.Poles()
	if err != nil {
		return false, err
	}

	for _, p := range poles {
		if cmplx.Abs(p) >= 1 {
			return false, nil
		}
	}

	return true, nil
}
