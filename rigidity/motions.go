// SPDX-License-Identifier: MIT

package rigidity

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/matrix"
)

// TrivialMotions returns the infinitesimal rigid motions of fw in R^d as
// vectors of length d|V| (same column layout as Build):
//   - d translations, e_a on every vertex;
//   - d(d-1)/2 rotations, one per coordinate plane (a,b) with a < b:
//     v[a] = -p[b], v[b] = p[a].
//
// The vectors span the trivial motions but need not be independent (a
// framework confined to a subspace has fewer independent rotations).
func TrivialMotions(fw core.Framework, d int) (matrix.Basis, error) {
	if fw.Graph == nil {
		return nil, rigidityErrorf(opTrivial, core.ErrNilGraph)
	}
	if d < 1 {
		return nil, rigidityErrorf(opTrivial, ErrInvalidDimension)
	}
	n := fw.Graph.VertexCount()
	out := make(matrix.Basis, 0, TrivialDOF(d))
	for a := 0; a < d; a++ {
		t := make([]float64, d*n)
		for v := 0; v < n; v++ {
			t[v*d+a] = 1
		}
		out = append(out, t)
	}
	for a := 0; a < d; a++ {
		for b := a + 1; b < d; b++ {
			r := make([]float64, d*n)
			for v := 0; v < n; v++ {
				p := pointOrZero(fw.Coords, core.VertexID(v), d)
				r[v*d+a] = -p[b]
				r[v*d+b] = p[a]
			}
			out = append(out, r)
		}
	}

	return out, nil
}

// NonTrivialMotions returns an orthonormal basis of the null space of the
// rigidity matrix with the trivial motions projected out. Its size is the
// number of independent flexes; a rigid framework yields an empty basis.
//
// Implementation:
//   - Stage 1: orthonormalize TrivialMotions (modified Gram-Schmidt, dropping
//     dependent vectors).
//   - Stage 2: project every null-space vector off the accumulated basis and
//     keep the residual when its norm exceeds the motion tolerance.
func NonTrivialMotions(fw core.Framework, d int, opts ...Option) (matrix.Basis, error) {
	o := newOptions(opts...)
	res, err := Analyze(fw, d, opts...)
	if err != nil {
		return nil, err
	}
	trivial, err := TrivialMotions(fw, d)
	if err != nil {
		return nil, rigidityErrorf(opNonTrivial, err)
	}

	var span matrix.Basis
	for _, t := range trivial {
		if u, ok := orthogonalize(t, span, o.motionTol); ok {
			span = append(span, u)
		}
	}
	out := matrix.Basis{}
	for _, v := range res.NullSpace {
		u, ok := orthogonalize(v, span, o.motionTol)
		if !ok {
			continue
		}
		span = append(span, u)
		out = append(out, u)
	}

	return out, nil
}

// orthogonalize removes from v its components along the orthonormal vectors in
// span and returns the normalized residual; ok is false when the residual
// norm is at most tol times the input norm.
func orthogonalize(v []float64, span matrix.Basis, tol float64) ([]float64, bool) {
	u := make([]float64, len(v))
	copy(u, v)
	scale := floats.Norm(u, 2)
	if scale == 0 {
		return nil, false
	}
	for _, s := range span {
		floats.AddScaled(u, -floats.Dot(u, s), s)
	}
	norm := floats.Norm(u, 2)
	if norm <= tol*scale {
		return nil, false
	}
	floats.Scale(1/norm, u)

	return u, true
}
