package zerophase

import "fmt"

// PadType selects how the input is extended before filtering.
type PadType int

const (
	// PadOdd extends with 2*x[edge] - x[edge-k] (point-symmetric reflection).
	PadOdd PadType = iota
	// PadEven mirrors the samples next to each end.
	PadEven
	// PadConstant repeats the first and last sample.
	PadConstant
	// PadNone filters the raw buffer without extension.
	PadNone
)

// String returns the pad type name.
func (p PadType) String() string {
	switch p {
	case PadOdd:
		return "odd"
	case PadEven:
		return "even"
	case PadConstant:
		return "constant"
	case PadNone:
		return "none"
	default:
		return fmt.Sprintf("PadType(%d)", int(p))
	}
}

// Option configures a Filter.
type Option func(*config)

type config struct {
	padType   PadType
	padLen    int // < 0 selects 3*taps
	zeroState bool
}

func defaultConfig() config {
	return config{padType: PadOdd, padLen: -1}
}

// WithPadType selects the extension applied at both ends. Default PadOdd.
func WithPadType(p PadType) Option {
	return func(cfg *config) { cfg.padType = p }
}

// WithPadLength overrides the number of samples added at each end. Negative
// values restore the default of 3*max(len(a), len(b)).
func WithPadLength(n int) Option {
	return func(cfg *config) { cfg.padLen = n }
}

// WithZeroInitialState starts both passes from a zero state instead of the
// scaled steady state.
func WithZeroInitialState() Option {
	return func(cfg *config) { cfg.zeroState = true }
}
