// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkage/core"
)

// Constructor adds a block of fresh vertices and its edges to b.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(b *core.GraphBuilder, cfg builderConfig) error

// Layout places vertices 0..n-1 in R^dim.
type Layout func(n, dim int, cfg builderConfig) ([][]float64, error)

// BuildGraph applies the constructors in order to a fresh GraphBuilder.
// The first failing constructor aborts the build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)

	return buildGraph(cfg, cons)
}

func buildGraph(cfg builderConfig, cons []Constructor) (*core.Graph, error) {
	b := core.NewGraphBuilder()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// BuildFramework builds the graph, places it with layout in R^dim and names
// every vertex with the configured NameFn.
func BuildFramework(dim int, layout Layout, bopts []BuilderOption, cons ...Constructor) (core.Framework, error) {
	cfg := newBuilderConfig(bopts...)
	if layout == nil {
		return core.Framework{}, fmt.Errorf("BuildFramework: nil layout: %w", ErrConstructFailed)
	}
	g, err := buildGraph(cfg, cons)
	if err != nil {
		return core.Framework{}, fmt.Errorf("BuildFramework: %w", err)
	}
	rows, err := layout(g.VertexCount(), dim, cfg)
	if err != nil {
		return core.Framework{}, fmt.Errorf("BuildFramework: %w", err)
	}
	coords, err := core.FromRows(dim, rows)
	if err != nil {
		return core.Framework{}, fmt.Errorf("BuildFramework: %w", err)
	}
	fw, err := core.NewFramework(g, coords)
	if err != nil {
		return core.Framework{}, fmt.Errorf("BuildFramework: %w", err)
	}
	for _, v := range g.Vertices() {
		fw.Attrs = fw.Attrs.WithName(v, cfg.nameFn(int(v)))
	}

	return fw, nil
}

// addEdges adds (ids[p[0]], ids[p[1]]) for every pair, wrapping failures with method.
func addEdges(b *core.GraphBuilder, method string, ids []core.VertexID, pairs [][2]int) error {
	for _, p := range pairs {
		if err := b.AddEdge(ids[p[0]], ids[p[1]]); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, ids[p[0]], ids[p[1]], err)
		}
	}

	return nil
}

func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, fmt.Errorf("%s=%d < min=%d: %w", param, got, min, ErrTooFewVertices))
	}

	return nil
}
