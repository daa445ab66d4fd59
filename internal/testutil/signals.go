// Package testutil holds deterministic signals and tolerance assertions
// shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform white noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// NoisyMixture returns the three-tone test signal used throughout the
// filter tests: sin(10 Hz) + 0.5 sin(50 Hz) + 0.3 sin(100 Hz) plus uniform
// noise of the given amplitude.
func NoisyMixture(sampleRate float64, length int, seed int64, noise float64) []float64 {
	out := DeterministicNoise(seed, noise, length)
	for i := range out {
		ts := float64(i) / sampleRate
		out[i] += math.Sin(2*math.Pi*10*ts) +
			0.5*math.Sin(2*math.Pi*50*ts) +
			0.3*math.Sin(2*math.Pi*100*ts)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
