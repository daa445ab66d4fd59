package smooth

import (
	"fmt"
	"slices"
)

// ZeroPhase applies a moving average forwards and then backwards over a
// buffer, each pass with a fresh window. The result has no lag and the
// smoothing of a triangular window of length 2*window-1 away from the ends.
type ZeroPhase struct {
	window int
}

// NewZeroPhase creates a batch smoother with the given window.
func NewZeroPhase(window int) (*ZeroPhase, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	return &ZeroPhase{window: window}, nil
}

// Window returns the configured window length.
func (z *ZeroPhase) Window() int {
	return z.window
}

// Apply returns the smoothed copy of x. Any length is accepted, including
// zero.
func (z *ZeroPhase) Apply(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	// The window was validated by NewZeroPhase.
	m := &MovingAverage{buf: make([]float64, z.window)}
	m.ProcessBlockTo(out, x)

	slices.Reverse(out)
	m.Reset()
	m.ProcessBlock(out)
	slices.Reverse(out)

	return out
}
