// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic layout without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrLayoutMismatch indicates explicit coordinates whose count or length does
// not match the graph and dimension.
var ErrLayoutMismatch = errors.New("builder: layout does not match graph")

// ErrUnknownExample indicates a Lookup name absent from the registry.
var ErrUnknownExample = errors.New("builder: unknown example")

// ErrOptionViolation indicates an unsupported parameter value (e.g. an unknown solid).
var ErrOptionViolation = errors.New("builder: invalid parameter")

// ErrConstructFailed indicates a nil constructor or layout.
var ErrConstructFailed = errors.New("builder: construction failed")

func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
