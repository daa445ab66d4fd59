// Package tone measures the level of a single frequency in a real signal
// with an FFT. It is used to verify notch depth and band attenuation of
// filtered signals.
package tone

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-biosig/dsp/core"
	"github.com/cwbudde/algo-biosig/dsp/window"
)

var (
	// ErrEmptySignal is returned for an empty input.
	ErrEmptySignal = errors.New("tone: empty signal")
	// ErrFrequencyRange is returned for a frequency outside [0, Nyquist].
	ErrFrequencyRange = errors.New("tone: frequency outside [0, Nyquist]")
)

// Config holds measurement parameters.
type Config struct {
	SampleRate float64
	// FFTSize is rounded up to a power of two; 0 uses the signal length.
	FFTSize int
	// Window is applied before the transform. The zero value is
	// rectangular, which is exact for bin-centred tones.
	Window window.Type
	// SearchBins widens the peak search to +-SearchBins around the nearest
	// bin.
	SearchBins int
}

// Spectrum is the single-sided amplitude spectrum of a signal, scaled so
// that a sinusoid of amplitude A centred on a bin reads A.
type Spectrum struct {
	SampleRate float64
	Size       int
	Amplitude  []float64
}

// Analyze computes the amplitude spectrum of signal.
func Analyze(signal []float64, cfg Config) (Spectrum, error) {
	if len(signal) == 0 {
		return Spectrum{}, ErrEmptySignal
	}

	if cfg.SampleRate <= 0 || !core.IsFinite(cfg.SampleRate) {
		return Spectrum{}, fmt.Errorf("tone: invalid sample rate %v", cfg.SampleRate)
	}

	size := cfg.FFTSize
	if size < len(signal) {
		size = len(signal)
	}

	size = nextPowerOf2(size)

	coeffs := window.Generate(cfg.Window, len(signal), window.WithPeriodic())

	gain, err := window.CoherentGain(coeffs)
	if err != nil {
		return Spectrum{}, fmt.Errorf("tone: %w", err)
	}

	windowed, err := window.ApplyCoefficients(signal, coeffs)
	if err != nil {
		return Spectrum{}, fmt.Errorf("tone: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("tone: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("tone: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	amp := make([]float64, bins)
	vecmath.Magnitude(amp, re, im)

	// Single-sided scaling; DC and Nyquist have no mirror image.
	scale := 2 / (float64(len(signal)) * gain)
	vecmath.ScaleBlock(amp, amp, scale)
	amp[0] /= 2
	if size%2 == 0 {
		amp[bins-1] /= 2
	}

	return Spectrum{SampleRate: cfg.SampleRate, Size: size, Amplitude: amp}, nil
}

// BinWidth returns the frequency spacing of the bins in Hz.
func (s Spectrum) BinWidth() float64 {
	return s.SampleRate / float64(s.Size)
}

// Bin returns the index of the bin nearest to freqHz.
func (s Spectrum) Bin(freqHz float64) int {
	return int(math.Round(freqHz / s.BinWidth()))
}

// Peak returns the largest amplitude within +-search bins of freqHz.
func (s Spectrum) Peak(freqHz float64, search int) (float64, error) {
	if freqHz < 0 || freqHz > s.SampleRate/2 || math.IsNaN(freqHz) {
		return 0, fmt.Errorf("%w: %v Hz", ErrFrequencyRange, freqHz)
	}

	k := s.Bin(freqHz)
	lo := max(0, k-search)
	hi := min(len(s.Amplitude)-1, k+search)

	peak := 0.0
	for i := lo; i <= hi; i++ {
		peak = max(peak, s.Amplitude[i])
	}

	return peak, nil
}

// Level returns the amplitude of the tone at freqHz in signal.
func Level(signal []float64, freqHz float64, cfg Config) (float64, error) {
	spec, err := Analyze(signal, cfg)
	if err != nil {
		return 0, err
	}

	return spec.Peak(freqHz, cfg.SearchBins)
}

// Attenuation returns how far the tone at freqHz dropped from before to
// after, in dB. Positive values mean the tone was reduced.
func Attenuation(before, after []float64, freqHz float64, cfg Config) (float64, error) {
	in, err := Level(before, freqHz, cfg)
	if err != nil {
		return 0, err
	}

	out, err := Level(after, freqHz, cfg)
	if err != nil {
		return 0, err
	}

	return core.RatioDB(in, out), nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
