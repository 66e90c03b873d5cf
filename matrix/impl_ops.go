// SPDX-License-Identifier: MIT
// Package matrix - small allocation-returning kernels (Transpose, Mul, MatVec).
// Inputs are never mutated; results are fresh *Dense values.

package matrix

// Transpose returns mᵀ.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, _ := NewDense(a.c, a.r)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// Mul returns the product a×b.
// Complexity: O(r*n*c), i→k→j loop order.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, _ := NewDense(da.r, db.c)
	for i := 0; i < da.r; i++ {
		for k := 0; k < da.c; k++ {
			aik := da.data[i*da.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < db.c; j++ {
				out.data[i*db.c+j] += aik * db.data[k*db.c+j]
			}
		}
	}

	return out, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != Cols(m).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	a, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		var sum float64
		row := a.data[i*a.c : (i+1)*a.c]
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
