package family

import (
	"fmt"
	"strings"
)

// Kind selects a filter in the family.
type Kind int

const (
	KindBandpass Kind = iota + 1
	KindLowpass
	KindHighpass
	KindNotch
	KindMovingAverage
)

var kindNames = map[Kind]string{
	KindBandpass:      "bandpass",
	KindLowpass:       "lowpass",
	KindHighpass:      "highpass",
	KindNotch:         "notch",
	KindMovingAverage: "moving-average",
}

// String returns the lower-case kind name used by ParseKind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Rational reports whether the kind has a rational transfer function.
func (k Kind) Rational() bool {
	switch k {
	case KindBandpass, KindLowpass, KindHighpass, KindNotch:
		return true
	default:
		return false
	}
}

// ParseKind parses a kind name. Matching ignores case and accepts "band",
// "low", "high", "ma" and "movingaverage" as aliases.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bandpass", "band":
		return KindBandpass, nil
	case "lowpass", "low":
		return KindLowpass, nil
	case "highpass", "high":
		return KindHighpass, nil
	case "notch":
		return KindNotch, nil
	case "moving-average", "movingaverage", "ma":
		return KindMovingAverage, nil
	default:
		return 0, fmt.Errorf("%w: unknown filter kind %q", ErrInvalidSpecification, s)
	}
}
