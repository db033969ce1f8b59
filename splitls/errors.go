package splitls

import (
	"errors"
	"fmt"
)

// Sentinel errors for the splitls package.
var (
	// ErrInvalidTaxonCount indicates a non-positive taxon count.
	ErrInvalidTaxonCount = errors.New("splitls: taxon count must be positive")

	// ErrDimensionMismatch indicates the distance matrix dimension does not match n.
	ErrDimensionMismatch = errors.New("splitls: distance matrix dimension does not match taxon count")
)

// lsErrorf wraps err with a call-site tag so every error carries its
// originating operation.
func lsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
