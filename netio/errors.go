package netio

import "fmt"

// netioErrorf wraps err with a call-site tag so every error carries its
// originating operation.
func netioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
