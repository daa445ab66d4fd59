package poly

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"
)

func TestFromRoots(t *testing.T) {
	tests := []struct {
		name  string
		roots []complex128
		want  []float64
	}{
		{name: "empty", roots: nil, want: []float64{1}},
		{name: "single", roots: []complex128{2}, want: []float64{1, -2}},
		{name: "real pair", roots: []complex128{1, 2}, want: []float64{1, -3, 2}},
		{name: "conjugates", roots: []complex128{complex(0, 1), complex(0, -1)}, want: []float64{1, 0, 1}},
		{name: "bilinear zeros", roots: []complex128{-1, -1, -1}, want: []float64{1, 3, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Real(FromRoots(tt.roots))
			if err != nil {
				t.Fatalf("Real: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}

			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("coeff[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRealRejectsUnpairedRoots(t *testing.T) {
	_, err := Real(FromRoots([]complex128{complex(0.5, 0.5)}))
	if !errors.Is(err, ErrNotReal) {
		t.Fatalf("err = %v, want ErrNotReal", err)
	}
}

func TestScale(t *testing.T) {
	got := Scale([]float64{1, -2}, 0.5)
	if got[0] != 0.5 || got[1] != -1 {
		t.Fatalf("Scale = %v", got)
	}
}

func TestRootsQuartic(t *testing.T) {
	// (z^2 - 1)(z^2 - 4) = z^4 - 5z^2 + 4
	roots, err := Roots([]float64{1, 0, -5, 0, 4})
	if err != nil {
		t.Fatal(err)
	}

	re := make([]float64, len(roots))
	for i, r := range roots {
		if math.Abs(imag(r)) > 1e-9 {
			t.Fatalf("root %v is not real", r)
		}

		re[i] = real(r)
	}

	sort.Float64s(re)

	want := []float64{-2, -1, 1, 2}
	for i := range want {
		if math.Abs(re[i]-want[i]) > 1e-9 {
			t.Fatalf("roots = %v, want %v", re, want)
		}
	}
}

func TestRootsRoundTrip(t *testing.T) {
	want := []complex128{complex(0.5, 0.3), complex(0.5, -0.3), complex(-0.2, 0)}

	coeff, err := Real(FromRoots(want))
	if err != nil {
		t.Fatal(err)
	}

	got, err := Roots(coeff)
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range want {
		found := false
		for _, g := range got {
			if cmplx.Abs(g-w) < 1e-9 {
				found = true
				break
			}
		}

		if !found {
			t.Fatalf("root %v not recovered from %v", w, got)
		}
	}
}

func TestRootsDegenerate(t *testing.T) {
	if _, err := Roots([]float64{1}); !errors.Is(err, ErrDegeneratePolynomial) {
		t.Fatalf("constant polynomial: err = %v", err)
	}

	if _, err := Roots([]float64{0, 1, 2}); !errors.Is(err, ErrDegeneratePolynomial) {
		t.Fatalf("zero leading coefficient: err = %v", err)
	}
}

func TestRootsNonMonic(t *testing.T) {
	// 2z^2 + 2 has roots +-j.
	roots, err := Roots([]float64{2, 0, 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 2 {
		t.Fatalf("len = %d, want 2", len(roots))
	}

	for _, r := range roots {
		if math.Abs(real(r)) > 1e-12 || math.Abs(math.Abs(imag(r))-1) > 1e-12 {
			t.Fatalf("root %v, want +-j", r)
		}
	}
}

func TestIsConjugate(t *testing.T) {
	if !IsConjugate(complex(1, 2), complex(1, -2), ConjugateTol) {
		t.Fatal("expected conjugates")
	}

	if IsConjugate(complex(1, 2), complex(1, 2), ConjugateTol) {
		t.Fatal("equal non-real values are not conjugates")
	}
}

func TestCheckConjugatePairs(t *testing.T) {
	tests := []struct {
		name  string
		roots []complex128
		ok    bool
	}{
		{name: "empty", roots: nil, ok: true},
		{name: "real", roots: []complex128{-1, 0.5, 0}, ok: true},
		{name: "pair", roots: []complex128{complex(0.3, 0.4), -1, complex(0.3, -0.4)}, ok: true},
		{name: "two pairs", roots: []complex128{complex(0.1, 0.2), complex(0.1, 0.2), complex(0.1, -0.2), complex(0.1, -0.2)}, ok: true},
		{name: "rounding residue", roots: []complex128{complex(-1, 1e-17)}, ok: true},
		{name: "lonely", roots: []complex128{complex(0.3, 0.4)}, ok: false},
		{name: "same sign", roots: []complex128{complex(0.3, 0.4), complex(0.3, 0.4)}, ok: false},
		{name: "one pair short", roots: []complex128{complex(0.1, 0.2), complex(0.1, 0.2), complex(0.1, -0.2)}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConjugatePairs(tt.roots)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !tt.ok && !errors.Is(err, ErrNotReal) {
				t.Fatalf("err = %v, want ErrNotReal", err)
			}
		})
	}
}
