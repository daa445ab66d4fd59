package design

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpecification is returned for filter parameters that cannot be
// designed: non-positive order, critical frequencies outside (0, 1),
// inverted bands or a non-positive quality factor.
var ErrInvalidSpecification = errors.New("invalid filter specification")

func validateOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("%w: order must be >= 1: %d", ErrInvalidSpecification, order)
	}

	return nil
}

func validateNormalized(name string, wn float64) error {
	if math.IsNaN(wn) || wn <= 0 || wn >= 1 {
		return fmt.Errorf("%w: %s must be in (0, 1): %v", ErrInvalidSpecification, name, wn)
	}

	return nil
}

func validateQuality(q float64) error {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return fmt.Errorf("%w: quality factor must be > 0: %v", ErrInvalidSpecification, q)
	}

	return nil
}
