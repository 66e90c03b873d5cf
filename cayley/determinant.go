// SPDX-License-Identifier: MIT

package cayley

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linkage/matrix"
)

// SquaredDistanceMatrix returns D with D[i][j] = |p_i - p_j|^2.
func SquaredDistanceMatrix(points [][]float64) ([][]float64, error) {
	if err := checkPoints(points); err != nil {
		return nil, cayleyErrorf("SquaredDistanceMatrix", err)
	}
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := 0.0
			for k := range points[i] {
				diff := points[i][k] - points[j][k]
				s += diff * diff
			}
			d[i][j], d[j][i] = s, s
		}
	}

	return d, nil
}

// CayleyMengerFromDistances returns the determinant of the bordered matrix
// built from a square matrix of squared distances.
func CayleyMengerFromDistances(d2 [][]float64, opts ...Option) (float64, error) {
	o := newOptions(opts...)
	n := len(d2)
	if n == 0 {
		return 0, cayleyErrorf("CayleyMengerFromDistances", ErrTooFewPoints)
	}
	m, err := matrix.NewDense(n+1, n+1)
	if err != nil {
		return 0, cayleyErrorf("CayleyMengerFromDistances", err)
	}
	for i := 0; i < n; i++ {
		if len(d2[i]) != n {
			return 0, cayleyErrorf("CayleyMengerFromDistances",
				fmt.Errorf("row %d has %d entries, want %d: %w", i, len(d2[i]), n, ErrDimensionMismatch))
		}
		if err := m.Set(0, i+1, 1); err != nil {
			return 0, cayleyErrorf("CayleyMengerFromDistances", err)
		}
		if err := m.Set(i+1, 0, 1); err != nil {
			return 0, cayleyErrorf("CayleyMengerFromDistances", err)
		}
		for j := 0; j < n; j++ {
			if err := m.Set(i+1, j+1, d2[i][j]); err != nil {
				return 0, cayleyErrorf("CayleyMengerFromDistances", err)
			}
		}
	}
	det, err := matrix.Determinant(m, matrix.WithTolerance(o.pivotTol))
	if err != nil {
		return 0, cayleyErrorf("CayleyMengerFromDistances", err)
	}

	return det, nil
}

// CayleyMenger returns the Cayley-Menger determinant of the given points
// (k+1 points, (k+2)x(k+2) matrix). Degenerate configurations yield 0.
func CayleyMenger(points [][]float64, opts ...Option) (float64, error) {
	d2, err := SquaredDistanceMatrix(points)
	if err != nil {
		return 0, err
	}

	return CayleyMengerFromDistances(d2, opts...)
}

// SimplexVolume returns the k-volume of the simplex spanned by k+1 points
// (length for 2 points, area for 3, volume for 4). A single point has volume 1.
func SimplexVolume(points [][]float64, opts ...Option) (float64, error) {
	cm, err := CayleyMenger(points, opts...)
	if err != nil {
		return 0, err
	}
	k := len(points) - 1
	sign := -1.0
	if (k+1)%2 == 0 {
		sign = 1
	}
	fact := 1.0
	for i := 2; i <= k; i++ {
		fact *= float64(i)
	}
	v2 := sign * cm / (math.Ldexp(1, k) * fact * fact)

	return math.Sqrt(math.Abs(v2)), nil
}

func checkPoints(points [][]float64) error {
	if len(points) == 0 {
		return ErrTooFewPoints
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return fmt.Errorf("point %d has %d components, want %d: %w", i, len(p), dim, ErrDimensionMismatch)
		}
	}

	return nil
}
