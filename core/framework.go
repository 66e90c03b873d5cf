// SPDX-License-Identifier: MIT

package core

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// EdgeConstraint is the invariant a motion must keep: |p_Source - p_Target| == Length.
type EdgeConstraint struct {
	Source VertexID
	Target VertexID
	Length float64
}

// Framework pairs an immutable Graph with a Coordinates snapshot.
// Transformations return a new Framework sharing the Graph and carrying new Coordinates.
type Framework struct {
	Graph  *Graph
	Coords *Coordinates
	Attrs  Attributes
}

// NewFramework validates that every vertex referenced by an edge has a coordinate.
func NewFramework(g *Graph, c *Coordinates) (Framework, error) {
	fw := Framework{Graph: g, Coords: c}
	if err := fw.Validate(); err != nil {
		return Framework{}, err
	}

	return fw, nil
}

// Validate checks the framework invariant (non-nil parts, edge endpoints placed).
func (fw Framework) Validate() error {
	if fw.Graph == nil {
		return coreErrorf("Framework", ErrNilGraph)
	}
	if fw.Coords == nil {
		return coreErrorf("Framework", ErrMissingCoordinate)
	}
	for _, e := range fw.Graph.edges {
		for _, v := range [2]VertexID{e.U, e.V} {
			if !fw.Coords.Has(v) {
				return coreErrorf("Framework", fmt.Errorf("edge %s vertex %d: %w", e.Label(), v, ErrMissingCoordinate))
			}
		}
	}

	return nil
}

// Dim returns the coordinate dimension.
func (fw Framework) Dim() int { return fw.Coords.Dim() }

// WithCoords returns a framework on the same Graph with new coordinates.
func (fw Framework) WithCoords(c *Coordinates) Framework {
	return Framework{Graph: fw.Graph, Coords: c, Attrs: fw.Attrs}
}

// Lengths returns the current bar lengths in Graph edge order.
func (fw Framework) Lengths() ([]float64, error) {
	out := make([]float64, 0, fw.Graph.EdgeCount())
	for _, e := range fw.Graph.edges {
		d, err := fw.Coords.Distance(e.U, e.V)
		if err != nil {
			return nil, coreErrorf("Lengths", err)
		}
		out = append(out, d)
	}

	return out, nil
}

// EdgeConstraints returns one constraint per bar holding its current length.
func (fw Framework) EdgeConstraints() ([]EdgeConstraint, error) {
	lengths, err := fw.Lengths()
	if err != nil {
		return nil, err
	}
	out := make([]EdgeConstraint, len(lengths))
	for i, e := range fw.Graph.edges {
		out[i] = EdgeConstraint{Source: e.U, Target: e.V, Length: lengths[i]}
	}

	return out, nil
}

// Fingerprint hashes vertex count, edges, dimension and every coordinate bit pattern.
// Equal frameworks hash equal; it is a cache key, not a cryptographic digest.
func (fw Framework) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	put := func(x uint64) {
		binary.LittleEndian.PutUint64(buf[:], x)
		_, _ = h.Write(buf[:])
	}

	if fw.Graph != nil {
		put(uint64(fw.Graph.n))
		for _, e := range fw.Graph.edges {
			put(uint64(e.U))
			put(uint64(e.V))
		}
	}
	if fw.Coords != nil {
		put(uint64(fw.Coords.dim))
		for _, v := range fw.Coords.Vertices() {
			put(uint64(v))
			for _, x := range fw.Coords.pts[v] {
				put(math.Float64bits(x))
			}
		}
	}

	return h.Sum64()
}
