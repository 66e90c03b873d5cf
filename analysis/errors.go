// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a Config field outside its valid range.
	ErrInvalidConfig = errors.New("analysis: invalid config")
	// ErrNoFlex indicates Relax on a framework without non-trivial motions.
	ErrNoFlex = errors.New("analysis: framework has no flex")
)

func analysisErrorf(tag string, err error) error {
	return fmt.Errorf("analysis: %s: %w", tag, err)
}
