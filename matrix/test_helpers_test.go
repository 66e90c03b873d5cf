// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Cross-check kernels against gonum/mat as an independent oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkage/matrix"
)

// hide wraps any Matrix to hide its concrete type and force the generic path.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandomRows returns an r×c matrix of uniform values in [-1,1) from a fixed seed.
func RandomRows(seed int64, r, c int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}

// gonumDense flattens rows into a gonum matrix.
func gonumDense(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// oracleRank computes the numerical rank through gonum's SVD.
func oracleRank(t *testing.T, rows [][]float64) int {
	t.Helper()
	var svd mat.SVD
	require.True(t, svd.Factorize(gonumDense(rows), mat.SVDNone))

	return svd.Rank(1e-10)
}

// lowRank returns an r×c matrix of rank k as the product of r×k and k×c random factors.
func lowRank(seed int64, r, c, k int) [][]float64 {
	a := RandomRows(seed, r, k)
	b := RandomRows(seed+1, k, c)
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			for l := 0; l < k; l++ {
				out[i][j] += a[i][l] * b[l][j]
			}
		}
	}

	return out
}
