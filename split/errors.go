package split

import (
	"errors"
	"fmt"
)

// Sentinel errors for the split package.
var (
	// ErrInvalidTaxonCount indicates a non-positive taxon count n.
	ErrInvalidTaxonCount = errors.New("split: taxon count must be positive")

	// ErrTaxonOutOfRange indicates a taxon identifier outside 1..=n.
	ErrTaxonOutOfRange = errors.New("split: taxon out of range")

	// ErrEmptyPart indicates a split part would be empty.
	ErrEmptyPart = errors.New("split: split part must be non-empty")

	// ErrNotPermutation indicates a Cycle is not a permutation of 1..=n.
	ErrNotPermutation = errors.New("split: cycle is not a permutation of 1..n")

	// ErrInvalidInterval indicates an interval (p, q) outside its valid range.
	ErrInvalidInterval = errors.New("split: invalid interval")
)

// splitErrorf wraps err with a call-site tag so every error carries its
// originating operation.
func splitErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
