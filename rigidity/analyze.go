// SPDX-License-Identifier: MIT

package rigidity

import (
	"log/slog"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/matrix"
)

// Result summarizes the infinitesimal rigidity of a framework in dimension Dim.
type Result struct {
	Dim          int
	Rank         int
	Nullity      int
	ExpectedRank int
	TrivialDOF   int
	// InternalDOF is max(0, d|V| - TrivialDOF - Rank).
	InternalDOF int
	// InfinitesimallyRigid holds iff Rank >= ExpectedRank.
	InfinitesimallyRigid bool
	// StressCount is |E| - Rank, the number of independent self-stresses.
	StressCount int
	NullSpace   matrix.Basis
	Matrix      *RigidityMatrix
}

// Analyze builds the rigidity matrix of fw in dimension d and derives its
// rank, null space and DOF counts.
func Analyze(fw core.Framework, d int, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	rm, err := Build(fw, d, opts...)
	if err != nil {
		return nil, err
	}
	mopt := matrix.WithTolerance(o.tol)
	rank, err := matrix.Rank(rm.Matrix, mopt)
	if err != nil {
		return nil, rigidityErrorf(opAnalyze, err)
	}
	ns, err := matrix.NullSpace(rm.Matrix, mopt)
	if err != nil {
		return nil, rigidityErrorf(opAnalyze, err)
	}

	n := fw.Graph.VertexCount()
	res := &Result{
		Dim:          d,
		Rank:         rank,
		Nullity:      len(ns),
		ExpectedRank: ExpectedRank(d, n),
		TrivialDOF:   TrivialDOF(d),
		InternalDOF:  max(0, d*n-TrivialDOF(d)-rank),
		StressCount:  fw.Graph.EdgeCount() - rank,
		NullSpace:    ns,
		Matrix:       rm,
	}
	res.InfinitesimallyRigid = rank >= res.ExpectedRank
	o.logger.Debug("rigidity: analyzed",
		slog.Int("dim", d), slog.Int("rank", rank), slog.Int("internal_dof", res.InternalDOF))

	return res, nil
}

func slogEdge(e core.Edge) slog.Attr { return slog.String("edge", e.Label()) }
