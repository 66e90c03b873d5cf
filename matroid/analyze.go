// SPDX-License-Identifier: MIT

package matroid

import "github.com/katalvlaran/linkage/core"

// Report bundles every combinatorial query on one graph.
type Report struct {
	CliqueNumber     int
	CliqueExact      bool
	MaximalCliques   [][]core.VertexID
	Laman            LamanResult
	Circuits         [][]string
	CircuitDimension int
	MinimalDimension int
	IsTree           bool
	IsPathLike       bool
	MaxDegree        int
}

// Analyze runs every query of the package on g with shared options.
func Analyze(g *core.Graph, opts ...Option) (*Report, error) {
	o := newOptions(opts...)
	omega, exact, err := CliqueNumber(g, opts...)
	if err != nil {
		return nil, matroidErrorf(opAnalyze, err)
	}
	cliques, err := MaximalCliques(g)
	if err != nil {
		return nil, matroidErrorf(opAnalyze, err)
	}
	laman, err := CheckLaman(g, opts...)
	if err != nil {
		return nil, matroidErrorf(opAnalyze, err)
	}
	circuits, err := FindCircuits(g, o.circuitDim, opts...)
	if err != nil {
		return nil, matroidErrorf(opAnalyze, err)
	}
	minDim, err := ComputeMinimalDimension(g, opts...)
	if err != nil {
		return nil, matroidErrorf(opAnalyze, err)
	}
	tree, err := IsTree(g)
	if err != nil {
		return nil, matroidErrorf(opAnalyze, err)
	}

	return &Report{
		CliqueNumber:     omega,
		CliqueExact:      exact,
		MaximalCliques:   cliques,
		Laman:            laman,
		Circuits:         circuits,
		CircuitDimension: o.circuitDim,
		MinimalDimension: minDim,
		IsTree:           tree,
		IsPathLike:       tree && g.MaxDegree() <= 2,
		MaxDegree:        g.MaxDegree(),
	}, nil
}
