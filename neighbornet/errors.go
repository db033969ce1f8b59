package neighbornet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the neighbornet package.
var (
	// ErrDimensionMismatch indicates len(labels) does not match d's dimension.
	ErrDimensionMismatch = errors.New("neighbornet: labels count does not match distance matrix dimension")

	// ErrInvalidTaxonCount indicates a non-positive taxon count.
	ErrInvalidTaxonCount = errors.New("neighbornet: taxon count must be positive")
)

// nnErrorf wraps err with a call-site tag so every error carries its
// originating operation.
func nnErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
