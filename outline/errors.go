package outline

import (
	"errors"
	"fmt"
)

// Sentinel errors for the outline package.
var (
	// ErrEmptyLabels indicates an empty label list was supplied to Sweep.
	ErrEmptyLabels = errors.New("outline: labels must be non-empty")

	// ErrLabelCountMismatch indicates len(labels) does not match the cycle's
	// taxon count.
	ErrLabelCountMismatch = errors.New("outline: label count does not match cycle taxon count")

	// ErrEmptyOutGroup indicates RootOutGroup was called with no out-group
	// taxa.
	ErrEmptyOutGroup = errors.New("outline: out-group must be non-empty")
)

// outlineErrorf wraps err with a call-site tag so every error carries its
// originating operation.
func outlineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
