package family

import (
	"errors"

	"github.com/cwbudde/algo-biosig/dsp/filter/design"
	"github.com/cwbudde/algo-biosig/dsp/filter/zerophase"
)

var (
	// ErrInvalidSpecification reports parameters no filter can be built
	// from. It is the same value as design.ErrInvalidSpecification.
	ErrInvalidSpecification = design.ErrInvalidSpecification

	// ErrInsufficientSamples reports a buffer too short for zero-phase
	// filtering. It is the same value as zerophase.ErrInsufficientSamples.
	ErrInsufficientSamples = zerophase.ErrInsufficientSamples

	// ErrNotRational is returned by Design for the moving average, which is
	// not expressed as a transfer function.
	ErrNotRational = errors.New("family: filter kind has no rational transfer function")
)
