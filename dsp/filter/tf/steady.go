package tf

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned by [SteadyState] when the recursion has no finite
// step steady state, i.e. sum(a) == 0 (a pole at z = 1).
var ErrSingular = errors.New("tf: steady state is singular")

// SteadyState returns the delay-line state of c after a unit step has been
// applied forever. Priming a [Filter] with v*zi makes a constant input v
// produce the constant v*DCGain() from the very first sample.
//
// The state solves (I - companion(a)^T) zi = b[1:] - a[1:]*b[0].
func SteadyState(c Coefficients) ([]float64, error) {
	if len(c.A) == 0 || c.A[0] != 1 {
		return nil, fmt.Errorf("%w: denominator not normalized", ErrInvalidCoefficients)
	}

	b, a := c.padded()

	m := len(b) - 1
	if m <= 0 {
		return []float64{}, nil
	}

	lhs := mat.NewDense(m, m, nil)
	rhs := mat.NewVecDense(m, nil)

	for i := range m {
		lhs.Set(i, i, 1)
		lhs.Set(i, 0, lhs.At(i, 0)+a[i+1])

		if i+1 < m {
			lhs.Set(i, i+1, -1)
		}

		rhs.SetVec(i, b[i+1]-a[i+1]*b[0])
	}

	var zi mat.VecDense
	if err := zi.SolveVec(lhs, rhs); err != nil {
		// A Condition error still carries a solution; poles close to z = 1
		// (narrow low bands) legitimately produce large condition numbers.
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}

	out := make([]float64, m)
	for i := range out {
		out[i] = zi.AtVec(i)
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, fmt.Errorf("%w: non-finite state", ErrSingular)
		}
	}

	return out, nil
}
