// SPDX-License-Identifier: MIT

package cayley

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints indicates an empty point set.
	ErrTooFewPoints = errors.New("cayley: at least one point required")

	// ErrDimensionMismatch indicates points of different lengths or a
	// non-square distance matrix.
	ErrDimensionMismatch = errors.New("cayley: dimension mismatch")
)

func cayleyErrorf(tag string, err error) error {
	return fmt.Errorf("cayley: %s: %w", tag, err)
}
