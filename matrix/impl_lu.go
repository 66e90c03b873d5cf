// SPDX-License-Identifier: MIT
// Package matrix - LU factorization with partial pivoting and determinants.

package matrix

import (
	"fmt"
	"math"
)

// LUResult holds P·A = L·U for a square A.
//   - L is unit lower triangular, U upper triangular.
//   - Perm[i] is the source row of A placed at row i.
//   - Sign is the permutation parity (+1 or -1).
type LUResult struct {
	L    *Dense
	U    *Dense
	Perm []int
	Sign float64
}

// LU factorizes a private copy of a square m with partial pivoting
// (Doolittle elimination, largest |pivot| per column).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare;
//   - ErrSingular when the largest available pivot is below tolerance.
//
// Complexity: O(n^3).
func LU(m Matrix, opts ...Option) (*LUResult, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := NewOptions(opts...)

	n := a.r
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0
	for k := 0; k < n; k++ {
		best := k
		bestAbs := math.Abs(a.data[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if bestAbs < o.tol || bestAbs == 0 {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: |%g| < %g: %w", k, bestAbs, o.tol, ErrSingular))
		}
		if best != k {
			swapRows(a, best, k)
			perm[best], perm[k] = perm[k], perm[best]
			sign = -sign
		}
		pivot := a.data[k*n+k]
		for i := k + 1; i < n; i++ {
			f := a.data[i*n+k] / pivot
			a.data[i*n+k] = f // store multiplier in the L part
			for j := k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = a.data[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = a.data[i*n+j]
			default:
				U.data[i*n+j] = a.data[i*n+j]
			}
		}
	}

	return &LUResult{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Determinant returns det(m) as the signed product of the LU pivots.
// A pivot below tolerance yields exactly 0 (singular or degenerate input)
// instead of an error; only shape errors are reported.
func Determinant(m Matrix, opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if m.Rows() == 0 {
		return 1, nil
	}
	f, err := LU(m, opts...)
	if err != nil {
		if isSingular(err) {
			return 0, nil
		}
		return 0, matrixErrorf(opDet, err)
	}

	det := f.Sign
	n := f.U.r
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det, nil
}
