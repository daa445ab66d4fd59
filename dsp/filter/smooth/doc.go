// Package smooth provides a boxcar moving-average smoother in streaming
// ([MovingAverage]) and forward-backward batch ([ZeroPhase]) form.
package smooth
