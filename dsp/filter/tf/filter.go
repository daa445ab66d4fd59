package tf

import "fmt"

// Filter runs a rational transfer function sample by sample in Direct Form
// II Transposed. It owns its delay line; a Filter must not be shared between
// goroutines.
type Filter struct {
	b, a    []float64 // zero-padded to equal length
	state   []float64
	initial []float64
}

// NewFilter returns a Filter primed with the unit-step steady state of c.
func NewFilter(c Coefficients) (*Filter, error) {
	zi, err := SteadyState(c)
	if err != nil {
		return nil, err
	}

	return NewFilterWithState(c, zi)
}

// NewFilterWithState returns a Filter whose initial (and reset) state is zi.
// zi must have length c.Order(); a nil zi means all-zero state.
func NewFilterWithState(c Coefficients, zi []float64) (*Filter, error) {
	if len(c.B) == 0 || len(c.A) == 0 || c.A[0] != 1 {
		return nil, fmt.Errorf("%w: denominator not normalized", ErrInvalidCoefficients)
	}

	b, a := c.padded()
	n := len(b) - 1

	if zi == nil {
		zi = make([]float64, n)
	}

	if len(zi) != n {
		return nil, fmt.Errorf("%w: state length %d, want %d", ErrInvalidCoefficients, len(zi), n)
	}

	f := &Filter{
		b:       b,
		a:       a,
		state:   make([]float64, n),
		initial: append([]float64(nil), zi...),
	}
	copy(f.state, zi)

	return f, nil
}

// ProcessSample filters one input sample and returns the output.
//
//	y    = b0*x + z0
//	z[i] = b[i+1]*x + z[i+1] - a[i+1]*y
//	z[n-1] = b[n]*x - a[n]*y
func (f *Filter) ProcessSample(x float64) float64 {
	z := f.state

	n := len(z)
	if n == 0 {
		return f.b[0] * x
	}

	y := f.b[0]*x + z[0]
	for i := 0; i < n-1; i++ {
		z[i] = f.b[i+1]*x + z[i+1] - f.a[i+1]*y
	}
	z[n-1] = f.b[n]*x - f.a[n]*y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset restores the state the filter was constructed with.
func (f *Filter) Reset() {
	copy(f.state, f.initial)
}

// PrimeTo sets the state to the initial state scaled by level. For a filter
// built by [NewFilter] this is the steady state of a constant input equal to
// level, so a signal starting near level starts without a transient.
func (f *Filter) PrimeTo(level float64) {
	for i, v := range f.initial {
		f.state[i] = v * level
	}
}

// Order returns the length of the delay line.
func (f *Filter) Order() int {
	return len(f.state)
}

// State returns a copy of the current delay line.
func (f *Filter) State() []float64 {
	return append([]float64(nil), f.state...)
}

// InitialState returns a copy of the state restored by [Filter.Reset].
func (f *Filter) InitialState() []float64 {
	return append([]float64(nil), f.initial...)
}

// SetState overwrites the delay line. Extra values are ignored and missing
// values are left untouched.
func (f *Filter) SetState(state []float64) {
	copy(f.state, state)
}

// Coefficients returns a copy of the (padded) coefficients in use.
func (f *Filter) Coefficients() Coefficients {
	return Coefficients{
		B: append([]float64(nil), f.b...),
		A: append([]float64(nil), f.a...),
	}
}
