// Package design provides digital IIR coefficient designers that return
// rational transfer functions ([tf.Coefficients]).
//
// Frequencies are normalized to the Nyquist frequency, so valid critical
// frequencies lie in the open interval (0, 1). Butterworth designs are
// built from the analog prototype in zero-pole-gain form ([ZPK]), moved to the
// requested band, mapped through the bilinear transform and expanded to
// polynomials. [Notch] implements the second-order notch of Orfanidis
// (Introduction to Signal Processing, eq. 11.3.4).
//
// [ClampCutoff] and [ClampBand] implement the band-edge safety net used by
// the filter family: normalized edges are silently pulled into
// [0.001, 0.999] and a band never collapses below 0.001 in width. The
// policy is inherited behaviour, kept for compatibility; it is not a
// general-purpose validator.
package design
