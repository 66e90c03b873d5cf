// SPDX-License-Identifier: MIT

package folding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkage/builder"
	"github.com/katalvlaran/linkage/core"
)

// example fetches a registered fixture or fails the test.
func example(t *testing.T, name string) core.Framework {
	t.Helper()
	ex, err := builder.Lookup(name)
	require.NoError(t, err)

	return ex.Framework
}

// planar builds a 2D framework from literal rows and edges.
func planar(t *testing.T, rows [][]float64, edges ...core.Edge) core.Framework {
	t.Helper()
	g, err := core.NewGraph(len(rows), edges...)
	require.NoError(t, err)
	c, err := core.FromRows(2, rows)
	require.NoError(t, err)
	fw, err := core.NewFramework(g, c)
	require.NoError(t, err)

	return fw
}

// spatial builds a 3D framework on n vertices; vertices past len(rows) stay unplaced.
func spatial(t *testing.T, n int, rows [][]float64, edges ...core.Edge) core.Framework {
	t.Helper()
	g, err := core.NewGraph(n, edges...)
	require.NoError(t, err)
	c, err := core.FromRows(3, rows)
	require.NoError(t, err)
	fw, err := core.NewFramework(g, c)
	require.NoError(t, err)

	return fw
}

// requireLengthsKept asserts every bar of before keeps its length in after.
func requireLengthsKept(t *testing.T, before, after core.Framework, tol float64) {
	t.Helper()
	cons, err := before.EdgeConstraints()
	require.NoError(t, err)
	for _, c := range cons {
		l, err := after.Coords.Distance(c.Source, c.Target)
		require.NoError(t, err)
		require.InDelta(t, c.Length, l, tol, "edge %d-%d", c.Source, c.Target)
	}
}
