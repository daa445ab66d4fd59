package design

import (
	"math"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

const (
	// MinNormalized is the lowest normalized edge the clamping policy keeps.
	MinNormalized = 0.001
	// MaxNormalized is the highest normalized edge the clamping policy keeps.
	MaxNormalized = 0.999
	// MinBandwidth is the narrowest normalized band ClampBand produces.
	MinBandwidth = 0.001
)

// Normalize converts freqHz to a fraction of the Nyquist frequency.
func Normalize(freqHz, sampleRate float64) float64 {
	return freqHz / (sampleRate / 2)
}

// ClampCutoff pulls a normalized cutoff into [MinNormalized, MaxNormalized].
func ClampCutoff(wn float64) float64 {
	return core.Clamp(wn, MinNormalized, MaxNormalized)
}

// ClampBand pulls normalized band edges into range. low is clamped like a
// cutoff; high is capped at MaxNormalized and then floored to
// low+MinBandwidth, so low >= high yields a band of width MinBandwidth
// instead of an error. When low is already at MaxNormalized the returned
// high reaches 1 and the band is no longer designable.
func ClampBand(low, high float64) (float64, float64) {
	low = core.Clamp(low, MinNormalized, MaxNormalized)
	high = math.Max(low+MinBandwidth, math.Min(high, MaxNormalized))

	return low, high
}
