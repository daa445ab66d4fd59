package main

import (
	"testing"

	"github.com/cwbudde/algo-biosig/dsp/window"
)

func TestSynthesizeLength(t *testing.T) {
	x, err := synthesize(500, 3, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(x) != 1500 {
		t.Fatalf("len = %d, want 1500", len(x))
	}
}

func TestNotchLevelsPerWindow(t *testing.T) {
	const fs = 1000.0

	input, err := synthesize(fs, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"rectangular", "hann", "hamming", "blackman"} {
		t.Run(name, func(t *testing.T) {
			win, err := window.ParseType(name)
			if err != nil {
				t.Fatal(err)
			}

			before, after, atten, err := notchLevels(input, fs, win)
			if err != nil {
				t.Fatal(err)
			}

			if before < 0.3 || before > 0.55 {
				t.Errorf("50 Hz level before = %.4f, want about 0.5", before)
			}
			if after >= before {
				t.Errorf("50 Hz level after = %.4f, want below %.4f", after, before)
			}
			if atten < 20 {
				t.Errorf("attenuation = %.1f dB, want >= 20", atten)
			}
		})
	}
}
