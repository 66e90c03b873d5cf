// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag
// via matrixErrorf) and tests check them with errors.Is. No kernel panics on
// user-triggered conditions; panics are confined to option constructors.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates negative matrix dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes (ragged rows,
	// vector length != Cols, ...).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned by LU when a pivot falls below tolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags for error wrapping.
const (
	opRank      = "Rank"
	opNullSpace = "NullSpace"
	opRREF      = "RREF"
	opLU        = "LU"
	opDet       = "Determinant"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMul       = "Mul"
	opFromRows  = "NewDenseFromRows"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
