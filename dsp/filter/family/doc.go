// Package family exposes the five filter kinds used for biosignal
// conditioning (Butterworth bandpass, lowpass and highpass, a second-order
// notch and a moving average) in a realtime form that processes one sample
// at a time and an offline form that filters a whole buffer with zero
// phase.
//
// Both forms are built from the same [Spec] through [Design], so a
// [Streaming] and a [Batch] made from equal specs share identical
// coefficients. Frequencies in a Spec are in Hz. Band edges and cutoffs
// are normalized to Nyquist and clamped with [design.ClampBand] and
// [design.ClampCutoff] before design.
//
// Streaming filters start from the steady state of a unit step (the state
// a filter reaches after seeing 1.0 forever) and Reset returns to it.
package family
