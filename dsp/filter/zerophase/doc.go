// Package zerophase applies a rational IIR filter forwards and backwards
// over a whole buffer so the result has no phase distortion.
//
// The input is extended at both ends (odd reflection by default) by
// 3*max(len(a), len(b)) samples, filtered forward, reversed, filtered again
// and reversed back before the padding is trimmed. The magnitude response
// of the combined operation is |H|^2.
//
// Each pass starts from the filter's steady state scaled by the first
// sample it sees, which removes most of the start-up transient. Use
// [WithZeroInitialState] to start both passes from rest instead.
//
// A [Filter] keeps no state between calls and is safe for concurrent use.
package zerophase
