// SPDX-License-Identifier: MIT

package projector

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDirection indicates a Nudge direction of zero length.
	ErrZeroDirection = errors.New("projector: zero direction")
	// ErrDirectionMismatch indicates a Nudge direction whose length is not dim·|V|.
	ErrDirectionMismatch = errors.New("projector: direction length mismatch")
)

func projectorErrorf(tag string, err error) error {
	return fmt.Errorf("projector: %s: %w", tag, err)
}
