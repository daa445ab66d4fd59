package tf

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-biosig/internal/testutil"
)

const eps = 1e-12

// referenceSteadyState derives the unit-step state directly from the
// recursion: z[i] = sum_{k>i} (b[k] - a[k]*H(1)).
func referenceSteadyState(c Coefficients) []float64 {
	b, a := c.padded()
	h := c.DCGain()

	zi := make([]float64, len(b)-1)
	for i := range zi {
		for k := i + 1; k < len(b); k++ {
			zi[i] += b[k] - a[k]*h
		}
	}

	return zi
}

func mustNew(t *testing.T, b, a []float64) Coefficients {
	t.Helper()

	c, err := New(b, a)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return c
}

func TestNewNormalizes(t *testing.T) {
	c := mustNew(t, []float64{2, 2}, []float64{2, -1})

	testutil.RequireSliceNearlyEqual(t, c.B, []float64{1, 1}, eps)
	testutil.RequireSliceNearlyEqual(t, c.A, []float64{1, -0.5}, eps)

	if c.Taps() != 2 || c.Order() != 1 {
		t.Fatalf("Taps/Order = %d/%d, want 2/1", c.Taps(), c.Order())
	}
}

func TestNewCopies(t *testing.T) {
	b := []float64{1, 2}
	c := mustNew(t, b, []float64{1})
	b[0] = 99

	if c.B[0] != 1 {
		t.Fatal("New did not copy the numerator")
	}

	clone := c.Clone()
	clone.B[1] = -1
	if c.B[1] != 2 {
		t.Fatal("Clone shares storage")
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
	}{
		{name: "empty b", b: nil, a: []float64{1}},
		{name: "empty a", b: []float64{1}, a: nil},
		{name: "zero a0", b: []float64{1}, a: []float64{0, 1}},
		{name: "nan a0", b: []float64{1}, a: []float64{math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.b, tt.a); !errors.Is(err, ErrInvalidCoefficients) {
				t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
			}
		})
	}
}

func TestSteadyStateFirstOrder(t *testing.T) {
	c := mustNew(t, []float64{0.5, 0.5}, []float64{1, 0})

	zi, err := SteadyState(c)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, zi, []float64{0.5}, eps)
}

func TestSteadyStateMatchesRecursion(t *testing.T) {
	tests := []struct {
		name string
		b, a []float64
	}{
		{name: "biquad", b: []float64{0.25, 0.5, 0.25}, a: []float64{1, -0.2, 0.04}},
		{name: "longer numerator", b: []float64{0.1, 0.2, 0.3, 0.2}, a: []float64{1, -0.5}},
		{name: "longer denominator", b: []float64{0.3}, a: []float64{1, -0.9, 0.2, -0.05}},
		{name: "bandpass-like", b: []float64{0.2, 0, -0.2}, a: []float64{1, -1.5, 0.7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, tt.b, tt.a)

			zi, err := SteadyState(c)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual(t, zi, referenceSteadyState(c), 1e-12)
		})
	}
}

func TestSteadyStateSingular(t *testing.T) {
	// Integrator: pole at z = 1, no finite step steady state.
	c := mustNew(t, []float64{1, 0}, []float64{1, -1})

	if _, err := SteadyState(c); !errors.Is(err, ErrSingular) {
		t.Fatalf("err = %v, want ErrSingular", err)
	}
}

func TestSteadyStateGainOnly(t *testing.T) {
	c := mustNew(t, []float64{0.5}, []float64{1})

	zi, err := SteadyState(c)
	if err != nil {
		t.Fatal(err)
	}

	if len(zi) != 0 {
		t.Fatalf("len(zi) = %d, want 0", len(zi))
	}

	f, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	if got := f.ProcessSample(3); got != 1.5 {
		t.Fatalf("ProcessSample = %v, want 1.5", got)
	}
}

func TestFilterConstantInputHasNoTransient(t *testing.T) {
	c := mustNew(t, []float64{0.2, 0.4, 0.2}, []float64{1, -0.5, 0.25})

	f, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	want := c.DCGain()
	for i := range 64 {
		if got := f.ProcessSample(1); math.Abs(got-want) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestFilterPrimeTo(t *testing.T) {
	c := mustNew(t, []float64{0.2, 0.4, 0.2}, []float64{1, -0.5, 0.25})

	f, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	f.PrimeTo(-3)
	want := -3 * c.DCGain()
	for i := range 16 {
		if got := f.ProcessSample(-3); math.Abs(got-want) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, got, want)
		}
	}

	f.Reset()
	testutil.RequireSliceNearlyEqual(t, f.State(), f.InitialState(), 0)
}

func TestFilterImpulseResponse(t *testing.T) {
	c := mustNew(t, []float64{0.25, 0.5, 0.25}, []float64{1, -0.2, 0.04})

	f, err := NewFilterWithState(c, nil)
	if err != nil {
		t.Fatal(err)
	}

	got := testutil.Impulse(6, 0)
	f.ProcessBlock(got)

	want := []float64{0.25, 0.55, 0.35, 0.048, -0.0044, -0.0028}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestFilterProcessBlockToMatchesSample(t *testing.T) {
	c := mustNew(t, []float64{0.1, 0.2, 0.3, 0.2}, []float64{1, -0.5, 0.1})
	src := testutil.DeterministicNoise(7, 1, 256)

	a, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	dst := make([]float64, len(src))
	a.ProcessBlockTo(dst, src)

	for i, x := range src {
		if y := b.ProcessSample(x); y != dst[i] {
			t.Fatalf("sample %d: block %v, sample %v", i, dst[i], y)
		}
	}
}

func TestFilterResetReproducesOutput(t *testing.T) {
	c := mustNew(t, []float64{0.25, 0.5, 0.25}, []float64{1, -0.2, 0.04})

	f, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	in := testutil.DeterministicNoise(3, 1, 128)
	first := make([]float64, len(in))
	f.ProcessBlockTo(first, in)

	f.Reset()

	second := make([]float64, len(in))
	f.ProcessBlockTo(second, in)

	for i := range first {
		if math.Float64bits(first[i]) != math.Float64bits(second[i]) {
			t.Fatalf("sample %d differs after Reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestFilterStateRoundTrip(t *testing.T) {
	c := mustNew(t, []float64{0.25, 0.5, 0.25}, []float64{1, -0.2, 0.04})

	f, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	f.ProcessSample(0.3)
	saved := f.State()
	y1 := f.ProcessSample(0.7)

	f.SetState(saved)
	if y2 := f.ProcessSample(0.7); y2 != y1 {
		t.Fatalf("SetState did not restore: %v vs %v", y2, y1)
	}

	if f.Order() != 2 {
		t.Fatalf("Order = %d, want 2", f.Order())
	}
}

func TestNewFilterWithStateLength(t *testing.T) {
	c := mustNew(t, []float64{0.25, 0.5, 0.25}, []float64{1, -0.2, 0.04})

	if _, err := NewFilterWithState(c, []float64{1}); !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("err = %v, want ErrInvalidCoefficients", err)
	}

	if _, err := NewFilterWithState(Coefficients{B: []float64{1}, A: []float64{2}}, nil); !errors.Is(err, ErrInvalidCoefficients) {
		t.Fatalf("unnormalized: err = %v, want ErrInvalidCoefficients", err)
	}
}

func TestNonFiniteInputPropagates(t *testing.T) {
	c := mustNew(t, []float64{0.5, 0.5}, []float64{1, -0.5})

	f, err := NewFilter(c)
	if err != nil {
		t.Fatal(err)
	}

	if y := f.ProcessSample(math.NaN()); !math.IsNaN(y) {
		t.Fatalf("ProcessSample(NaN) = %v, want NaN", y)
	}
}

func TestResponse(t *testing.T) {
	// Two-tap average: zero at Nyquist, unity at DC.
	c := mustNew(t, []float64{0.5, 0.5}, []float64{1})

	if got := c.MagnitudeDB(0, 1000); math.Abs(got) > 1e-12 {
		t.Fatalf("DC magnitude = %v dB, want 0", got)
	}

	if got := c.MagnitudeDB(250, 1000); math.Abs(got+3.0103) > 1e-4 {
		t.Fatalf("quarter-rate magnitude = %v dB, want -3.0103", got)
	}

	if got := c.Phase(250, 1000); math.Abs(got+math.Pi/4) > 1e-12 {
		t.Fatalf("quarter-rate phase = %v, want -pi/4", got)
	}

	if got := c.DCGain(); got != 1 {
		t.Fatalf("DCGain = %v, want 1", got)
	}
}

func TestIsStable(t *testing.T) {
	stable := mustNew(t, []float64{1}, []float64{1, -0.2, 0.04})
	if ok, err := stable.IsStable(); err != nil || !ok {
		t.Fatalf("IsStable = %v, %v; want true", ok, err)
	}

	unstable := mustNew(t, []float64{1}, []float64{1, -2.5, 1})
	if ok, err := unstable.IsStable(); err != nil || ok {
		t.Fatalf("IsStable = %v, %v; want false", ok, err)
	}

	fir := mustNew(t, []float64{1, 1}, []float64{1})
	if ok, err := fir.IsStable(); err != nil || !ok {
		t.Fatalf("FIR IsStable = %v, %v; want true", ok, err)
	}
}
