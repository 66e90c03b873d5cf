// SPDX-License-Identifier: MIT

package rigidity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates an embedding dimension d < 1.
	ErrInvalidDimension = errors.New("rigidity: embedding dimension must be >= 1")
)

const (
	opBuild      = "Build"
	opAnalyze    = "Analyze"
	opTrivial    = "TrivialMotions"
	opNonTrivial = "NonTrivialMotions"
)

func rigidityErrorf(tag string, err error) error {
	return fmt.Errorf("rigidity: %s: %w", tag, err)
}
