// SPDX-License-Identifier: MIT
// Package matrix - Gaussian elimination kernels (Rank, RREF, NullSpace).
//
// Purpose:
//   - One elimination routine with partial pivoting serves every rank query.
//   - Row-echelon (forward only) answers Rank; full reduction answers RREF and NullSpace.
//
// Numeric policy:
//   - The pivot of each column is the largest-magnitude entry at or below the
//     current row. If |pivot| < tol, the column is skipped and no row is consumed.
//   - Eliminated entries are written as exact zeros.

package matrix

import "math"

// eliminate runs Gaussian elimination with partial pivoting on a in place and
// returns the pivot columns in row order.
//
// Implementation:
//   - Stage 1: for each column, select the largest |a[i][col]| for i >= row.
//   - Stage 2: skip the column if that magnitude is below tol.
//   - Stage 3: swap the pivot row up; when reduced, scale it to a unit pivot
//     and clear the column in every other row, otherwise clear only below.
//
// Complexity: O(r * c * min(r,c)).
func eliminate(a *Dense, tol float64, reduced bool) []int {
	r, c := a.r, a.c
	pivots := make([]int, 0, min(r, c))
	row := 0
	for col := 0; col < c && row < r; col++ {
		best := row
		bestAbs := math.Abs(a.data[row*c+col])
		for i := row + 1; i < r; i++ {
			if v := math.Abs(a.data[i*c+col]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if bestAbs < tol || bestAbs == 0 {
			continue
		}
		if best != row {
			swapRows(a, best, row)
		}

		base := row * c
		pivot := a.data[base+col]
		if reduced {
			inv := 1 / pivot
			for j := col; j < c; j++ {
				a.data[base+j] *= inv
			}
			a.data[base+col] = 1
			for i := 0; i < r; i++ {
				if i == row {
					continue
				}
				f := a.data[i*c+col]
				if f == 0 {
					continue
				}
				for j := col; j < c; j++ {
					a.data[i*c+j] -= f * a.data[base+j]
				}
				a.data[i*c+col] = 0
			}
		} else {
			for i := row + 1; i < r; i++ {
				f := a.data[i*c+col] / pivot
				if f == 0 {
					continue
				}
				for j := col; j < c; j++ {
					a.data[i*c+j] -= f * a.data[base+j]
				}
				a.data[i*c+col] = 0
			}
		}

		pivots = append(pivots, col)
		row++
	}

	return pivots
}

func swapRows(a *Dense, i, j int) {
	ri := a.data[i*a.c : (i+1)*a.c]
	rj := a.data[j*a.c : (j+1)*a.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Rank returns the number of pivots found by row-echelon reduction of a
// private copy of m.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(r * c * min(r,c)).
func Rank(m Matrix, opts ...Option) (int, error) {
	a, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := NewOptions(opts...)

	return len(eliminate(a, o.tol, false)), nil
}

// RREF returns the reduced row-echelon form of m together with its pivot
// columns (in row order). m is not modified.
func RREF(m Matrix, opts ...Option) (*Dense, []int, error) {
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}
	o := NewOptions(opts...)
	pivots := eliminate(a, o.tol, true)

	return a, pivots, nil
}

// NullSpace returns a basis of {x : m·x = 0}.
//
// Implementation:
//   - Stage 1: reduce a private copy to RREF.
//   - Stage 2: every non-pivot column f yields one vector with x[f] = 1,
//     x[p_k] = -R[k][f] for each pivot row k, and zeros elsewhere.
//
// Behavior highlights:
//   - Vectors are ordered by increasing free column; they are not orthonormal.
//   - An invertible square matrix yields an empty (non-nil) Basis.
//
// Complexity: O(r * c * min(r,c) + c^2).
func NullSpace(m Matrix, opts ...Option) (Basis, error) {
	a, pivots, err := RREF(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	c := a.c
	isPivot := make([]bool, c)
	for _, p := range pivots {
		isPivot[p] = true
	}

	basis := make(Basis, 0, c-len(pivots))
	for f := 0; f < c; f++ {
		if isPivot[f] {
			continue
		}
		v := make([]float64, c)
		v[f] = 1
		for k, p := range pivots {
			v[p] = -a.data[k*c+f]
		}
		basis = append(basis, v)
	}

	return basis, nil
}

// Nullity returns Cols(m) - Rank(m).
func Nullity(m Matrix, opts ...Option) (int, error) {
	r, err := Rank(m, opts...)
	if err != nil {
		return 0, err
	}

	return m.Cols() - r, nil
}
