// SPDX-License-Identifier: MIT

package rigidity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkage/core"
)

// frame builds a framework from vertex rows and edge pairs or fails the test.
func frame(t *testing.T, rows [][]float64, pairs ...[2]int) core.Framework {
	t.Helper()
	edges := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = core.E(p[0], p[1])
	}
	g, err := core.NewGraph(len(rows), edges...)
	require.NoError(t, err)
	c, err := core.FromRows(len(rows[0]), rows)
	require.NoError(t, err)
	fw, err := core.NewFramework(g, c)
	require.NoError(t, err)

	return fw
}

func triangle(t *testing.T, dim int) core.Framework {
	rows := [][]float64{{0, 0, 0}, {1, 0, 0}, {0.5, 0.866, 0}}
	for i := range rows {
		rows[i] = rows[i][:dim]
	}

	return frame(t, rows, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})
}

func tetrahedron(t *testing.T) core.Framework {
	return frame(t,
		[][]float64{{0, 0, 0}, {1, 0, 0}, {0.5, 0.866, 0}, {0.5, 0.289, 0.816}},
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
}

func square(t *testing.T) core.Framework {
	return frame(t,
		[][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3})
}

func matVec(t *testing.T, rows [][]float64, x []float64) []float64 {
	t.Helper()
	out := make([]float64, len(rows))
	for i, r := range rows {
		require.Len(t, r, len(x))
		for j := range r {
			out[i] += r[j] * x[j]
		}
	}

	return out
}
