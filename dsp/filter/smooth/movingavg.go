package smooth

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-biosig/dsp/core"
)

// ErrInvalidWindow is returned for a window shorter than one sample.
var ErrInvalidWindow = errors.New("smooth: window must be >= 1")

// MovingAverage returns the mean of the most recent Window() samples. Until
// the window has filled, the mean covers the samples seen so far.
//
// A running sum keeps ProcessSample O(1); it is rebuilt from the window once
// per Window() samples so rounding error cannot accumulate. Non-finite
// samples are kept out of the running sum and force a direct summation while
// they are in the window, so they leave no trace after eviction.
//
// A MovingAverage is not safe for concurrent use.
type MovingAverage struct {
	buf        []float64
	head       int
	n          int
	sum        float64
	nonFinite  int
	sinceResum int
}

// NewMovingAverage creates a smoother over the last window samples.
func NewMovingAverage(window int) (*MovingAverage, error) {
	if window < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	return &MovingAverage{buf: make([]float64, window)}, nil
}

// Window returns the configured window length.
func (m *MovingAverage) Window() int {
	return len(m.buf)
}

// Len returns the number of samples currently averaged.
func (m *MovingAverage) Len() int {
	return m.n
}

// ProcessSample appends x, evicts the oldest sample when the window is
// full and returns the mean of the window.
func (m *MovingAverage) ProcessSample(x float64) float64 {
	if m.n == len(m.buf) {
		m.remove(m.buf[m.head])
	} else {
		m.n++
	}

	m.buf[m.head] = x
	m.head++
	if m.head == len(m.buf) {
		m.head = 0
	}

	if core.IsFinite(x) {
		m.sum += x
	} else {
		m.nonFinite++
	}

	m.sinceResum++
	if m.sinceResum >= len(m.buf) {
		m.resum()
	}

	return m.Mean()
}

// ProcessBlock smooths buf in place.
func (m *MovingAverage) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = m.ProcessSample(x)
	}
}

// ProcessBlockTo smooths src into dst. Only min(len(dst), len(src)) samples
// are processed.
func (m *MovingAverage) ProcessBlockTo(dst, src []float64) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = m.ProcessSample(src[i])
	}
}

// Mean returns the current mean without adding a sample. It is 0 for an
// empty window.
func (m *MovingAverage) Mean() float64 {
	if m.n == 0 {
		return 0
	}

	if m.nonFinite > 0 {
		var s float64
		for _, v := range m.window() {
			s += v
		}

		return s / float64(m.n)
	}

	return m.sum / float64(m.n)
}

// Reset empties the window.
func (m *MovingAverage) Reset() {
	clear(m.buf)
	m.head = 0
	m.n = 0
	m.sum = 0
	m.nonFinite = 0
	m.sinceResum = 0
}

func (m *MovingAverage) remove(x float64) {
	if core.IsFinite(x) {
		m.sum -= x
	} else {
		m.nonFinite--
	}
}

// window returns the occupied part of the ring in storage order.
func (m *MovingAverage) window() []float64 {
	if m.n < len(m.buf) {
		return m.buf[:m.n]
	}

	return m.buf
}

func (m *MovingAverage) resum() {
	m.sum = 0
	for _, v := range m.window() {
		if core.IsFinite(v) {
			m.sum += v
		}
	}

	m.sinceResum = 0
}
