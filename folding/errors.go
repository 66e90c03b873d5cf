// SPDX-License-Identifier: MIT

package folding

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateAxis indicates hinge axis endpoints that coincide.
	ErrDegenerateAxis = errors.New("folding: degenerate rotation axis")

	// ErrDegenerateEdge indicates a zero-length edge used as an alignment direction.
	ErrDegenerateEdge = errors.New("folding: degenerate edge direction")

	// ErrOpposedDirections indicates an alignment whose source and target
	// directions are opposite in 1D, where no half-turn plane exists.
	ErrOpposedDirections = errors.New("folding: opposed alignment directions")

	// ErrLengthViolation indicates an edge length drifting beyond tolerance.
	ErrLengthViolation = errors.New("folding: edge length not preserved")

	// ErrRankMismatch indicates recomputed ranks that differ from the declared ones.
	ErrRankMismatch = errors.New("folding: declared rank does not match")

	// ErrInvalidHinge indicates a rotated set with a neighbor outside the set and the axis.
	ErrInvalidHinge = errors.New("folding: hinge fold moves an outside neighbor")

	// ErrNotThreeDimensional indicates a hinge rotation on non-3D coordinates.
	ErrNotThreeDimensional = errors.New("folding: hinge rotation needs 3D coordinates")

	// ErrUnknownKind indicates an Operation with an unsupported Kind.
	ErrUnknownKind = errors.New("folding: unknown operation kind")
)

func foldingErrorf(tag string, err error) error {
	return fmt.Errorf("folding: %s: %w", tag, err)
}
