package family

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-biosig/internal/testutil"
)

func TestStreamingChainMatchesStages(t *testing.T) {
	specs := []Spec{Highpass(1, fs, WithOrder(2)), Notch(50, fs), Lowpass(40, fs)}

	chain, err := NewStreamingChain(specs...)
	if err != nil {
		t.Fatal(err)
	}

	if chain.Len() != 3 {
		t.Fatalf("Len = %d, want 3", chain.Len())
	}

	x := testutil.NoisyMixture(fs, 600, 1, 0.1)

	want := append([]float64(nil), x...)
	for _, s := range specs {
		f, err := NewStreaming(s)
		if err != nil {
			t.Fatal(err)
		}

		f.ProcessBlock(want)
	}

	got := make([]float64, len(x))
	for i, v := range x {
		got[i] = chain.Next(v)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	chain.Reset()

	again := append([]float64(nil), x...)
	chain.ProcessBlock(again)
	testutil.RequireSliceNearlyEqual(t, again, want, 0)
}

func TestEmptyStreamingChainPassesThrough(t *testing.T) {
	chain, err := NewStreamingChain()
	if err != nil {
		t.Fatal(err)
	}

	if got := chain.Next(math.Pi); got != math.Pi {
		t.Fatalf("Next = %v, want pi", got)
	}
}

func TestBatchChain(t *testing.T) {
	specs := []Spec{Notch(50, fs), Lowpass(40, fs, WithOrder(2)), MovingAverage(3)}

	chain, err := NewBatchChain(specs)
	if err != nil {
		t.Fatal(err)
	}

	if chain.MinLength() != 10 || chain.Len() != 3 {
		t.Fatalf("MinLength=%d Len=%d, want 10 and 3", chain.MinLength(), chain.Len())
	}

	x := testutil.NoisyMixture(fs, 400, 2, 0.1)

	got, err := chain.Filter(x)
	if err != nil {
		t.Fatal(err)
	}

	want := x
	for _, s := range specs {
		f, err := NewBatch(s)
		if err != nil {
			t.Fatal(err)
		}

		if want, err = f.Filter(want); err != nil {
			t.Fatal(err)
		}
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	if _, err := chain.Filter(x[:9]); !errors.Is(err, ErrInsufficientSamples) {
		t.Fatalf("short input: err = %v, want ErrInsufficientSamples", err)
	}
}

func TestChainRejectsInvalidStage(t *testing.T) {
	if _, err := NewStreamingChain(Lowpass(40, fs), MovingAverage(0)); !errors.Is(err, ErrInvalidSpecification) {
		t.Fatalf("streaming: err = %v", err)
	}

	if _, err := NewBatchChain([]Spec{Notch(600, fs)}); !errors.Is(err, ErrInvalidSpecification) {
		t.Fatalf("batch: err = %v", err)
	}
}
