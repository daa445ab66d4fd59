// Package poly provides the polynomial helpers shared by the filter design
// packages: expansion from roots, conjugate-pair checks and root finding.
//
// Coefficients are always in descending power order:
// c[0]*z^n + c[1]*z^(n-1) + ... + c[n].
package poly

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDegeneratePolynomial is returned for a constant polynomial, a zero
	// leading coefficient or a failed eigenvalue decomposition.
	ErrDegeneratePolynomial = errors.New("poly: degenerate polynomial")

	// ErrNotReal is returned when a polynomial expected to have real
	// coefficients carries a significant imaginary part, i.e. its roots do
	// not come in conjugate pairs.
	ErrNotReal = errors.New("poly: coefficients are not real")
)

// ConjugateTol is the relative tolerance for conjugate pair matching.
const ConjugateTol = 1e-7

// realTol bounds the imaginary residue accepted by [Real], relative to the
// largest coefficient magnitude.
const realTol = 1e-9

// FromRoots expands prod(z - r_i) into monic polynomial coefficients.
// An empty root set yields the constant polynomial 1.
func FromRoots(roots []complex128) []complex128 {
	coeff := make([]complex128, 1, len(roots)+1)
	coeff[0] = 1

	for _, r := range roots {
		coeff = append(coeff, 0)
		for i := len(coeff) - 1; i > 0; i-- {
			coeff[i] -= r * coeff[i-1]
		}
	}

	return coeff
}

// Real drops the imaginary parts of coeff after checking they are negligible.
func Real(coeff []complex128) ([]float64, error) {
	scale := 0.0
	for _, c := range coeff {
		scale = math.Max(scale, cmplx.Abs(c))
	}

	out := make([]float64, len(coeff))
	for i, c := range coeff {
		if math.Abs(imag(c)) > realTol*math.Max(1, scale) {
			return nil, ErrNotReal
		}

		out[i] = real(c)
	}

	return out, nil
}

// Scale multiplies every coefficient by k in place and returns coeff.
func Scale(coeff []float64, k float64) []float64 {
	for i := range coeff {
		coeff[i] *= k
	}

	return coeff
}

// IsConjugate checks whether a and b are complex conjugates within tolerance.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}

// CheckConjugatePairs verifies that every non-real root has a conjugate
// partner, so that FromRoots expands to a real polynomial. Roots whose
// imaginary part is within ConjugateTol of zero count as real.
func CheckConjugatePairs(roots []complex128) error {
	used := make([]bool, len(roots))

	for i, r := range roots {
		if used[i] {
			continue
		}

		used[i] = true
		if math.Abs(imag(r)) <= ConjugateTol*math.Max(1, cmplx.Abs(r)) {
			continue
		}

		paired := false
		for j := i + 1; j < len(roots); j++ {
			if !used[j] && IsConjugate(r, roots[j], ConjugateTol) {
				used[j] = true
				paired = true
				break
			}
		}

		if !paired {
			return fmt.Errorf("%w: root %v has no conjugate", ErrNotReal, r)
		}
	}

	return nil
}

// Roots returns all roots of a real polynomial as the eigenvalues of its
// companion matrix. The leading coefficient must be non-zero.
func Roots(coeff []float64) ([]complex128, error) {
	if len(coeff) < 2 || coeff[0] == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1
	companion := mat.NewDense(n, n, nil)

	for j := range n {
		companion.Set(0, j, -coeff[j+1]/coeff[0])
	}

	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if !eig.Factorize(companion, mat.EigenNone) {
		return nil, ErrDegeneratePolynomial
	}

	return eig.Values(nil), nil
}
