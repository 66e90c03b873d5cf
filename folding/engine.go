// SPDX-License-Identifier: MIT

package folding

import (
	"fmt"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkage/core"
)

// Engine proposes, evaluates and applies folds. The zero value is not usable;
// build one with NewEngine. An Engine holds no per-framework state and is safe
// for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	return &Engine{opts: newOptions(opts...)}
}

// snapshot caches what every evaluation of one framework needs.
type snapshot struct {
	fw          core.Framework
	rows        [][]float64
	dim         int
	constraints []core.EdgeConstraint
	edgeRank    int
	coordRank   int
}

func (e *Engine) snapshot(fw core.Framework) (*snapshot, error) {
	rows, err := frameworkRows(fw)
	if err != nil {
		return nil, err
	}
	cons, err := fw.EdgeConstraints()
	if err != nil {
		return nil, err
	}
	er, err := edgeVectorRank(fw.Graph, rows, e.opts.rankTol)
	if err != nil {
		return nil, err
	}
	cr, err := coordinateRank(rows, e.opts.rankTol)
	if err != nil {
		return nil, err
	}

	return &snapshot{fw: fw, rows: rows, dim: fw.Dim(), constraints: cons, edgeRank: er, coordRank: cr}, nil
}

// aligned reports whether a->c already points along ±(a->b) as requested.
func (s *snapshot) aligned(a, c, b core.VertexID, anti bool) bool {
	pa := s.rows[a]
	u := make([]float64, len(pa))
	w := make([]float64, len(pa))
	floats.SubTo(u, s.rows[c], pa)
	floats.SubTo(w, s.rows[b], pa)
	nu, nw := floats.Norm(u, 2), floats.Norm(w, 2)
	if nu < minDirection || nw < minDirection {
		return true
	}
	cos := floats.Dot(u, w) / (nu * nw)
	if anti {
		cos = -cos
	}

	return cos > alignedCos
}

// transform computes the coordinates produced by op from rows.
func transform(rows [][]float64, op Operation) ([][]float64, error) {
	switch op.Kind {
	case EdgeAlignment:
		return alignRows(rows, op)
	case HingeRotation:
		return hingeRows(rows, op)
	default:
		return nil, fmt.Errorf("%v: %w", op.Kind, ErrUnknownKind)
	}
}

// evaluate fills the outcome fields of op; ok is false when the transform is
// degenerate or breaks an edge length.
func (e *Engine) evaluate(s *snapshot, op Operation) (Operation, bool) {
	rows, err := transform(s.rows, op)
	if err != nil {
		e.opts.logger.Debug("folding: proposal skipped", slog.String("op", op.Description), slog.Any("err", err))
		return op, false
	}
	op.MaxLengthError = maxLengthError(rows, s.constraints)
	op.LengthPreserving = op.MaxLengthError <= e.opts.lengthTol
	if !op.LengthPreserving {
		e.opts.logger.Debug("folding: proposal breaks lengths",
			slog.String("op", op.Description), slog.Float64("max_error", op.MaxLengthError))
		return op, false
	}
	if op.EdgeVectorRank, err = edgeVectorRank(s.fw.Graph, rows, e.opts.rankTol); err != nil {
		return op, false
	}
	if op.CoordinateRank, err = coordinateRank(rows, e.opts.rankTol); err != nil {
		return op, false
	}

	return op, true
}

// EdgeAlignmentFolds returns the edge alignments that keep every length and
// strictly lower the edge-vector rank.
func (e *Engine) EdgeAlignmentFolds(fw core.Framework) ([]Operation, error) {
	s, err := e.snapshot(fw)
	if err != nil {
		return nil, foldingErrorf("EdgeAlignmentFolds", err)
	}

	return e.alignmentFolds(s)
}

func (e *Engine) alignmentFolds(s *snapshot) ([]Operation, error) {
	props, err := alignmentProposals(s)
	if err != nil {
		return nil, foldingErrorf("EdgeAlignmentFolds", err)
	}
	var out []Operation
	for _, p := range props {
		op, ok := e.evaluate(s, p)
		if ok && op.EdgeVectorRank < s.edgeRank {
			out = append(out, op)
		}
	}

	return out, nil
}

// HingeFolds returns every valid, length-preserving hinge rotation of fw,
// whether or not it lowers the rank. Non-3D frameworks have none.
func (e *Engine) HingeFolds(fw core.Framework) ([]Operation, error) {
	s, err := e.snapshot(fw)
	if err != nil {
		return nil, foldingErrorf("HingeFolds", err)
	}

	return e.hingeFolds(s)
}

func (e *Engine) hingeFolds(s *snapshot) ([]Operation, error) {
	props, err := e.hingeProposals(s)
	if err != nil {
		return nil, foldingErrorf("HingeFolds", err)
	}
	var out []Operation
	for _, p := range props {
		if op, ok := e.evaluate(s, p); ok {
			out = append(out, op)
		}
	}

	return out, nil
}

// Candidates returns the rank-reducing operations of both kinds, with
// duplicates (same kind, description and ranks) removed, ordered by
// resulting edge-vector rank, coordinate rank, kind and description.
func (e *Engine) Candidates(fw core.Framework) ([]Operation, error) {
	s, err := e.snapshot(fw)
	if err != nil {
		return nil, foldingErrorf("Candidates", err)
	}

	return e.candidates(s)
}

func (e *Engine) candidates(s *snapshot) ([]Operation, error) {
	aligns, err := e.alignmentFolds(s)
	if err != nil {
		return nil, err
	}
	hinges, err := e.hingeFolds(s)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := []Operation{}
	for _, op := range append(aligns, hinges...) {
		if op.EdgeVectorRank >= s.edgeRank || seen[op.key()] {
			continue
		}
		seen[op.key()] = true
		out = append(out, op)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EdgeVectorRank != b.EdgeVectorRank {
			return a.EdgeVectorRank < b.EdgeVectorRank
		}
		if a.CoordinateRank != b.CoordinateRank {
			return a.CoordinateRank < b.CoordinateRank
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Description < b.Description
	})

	return out, nil
}

// Apply recomputes op on fw and returns the folded framework (same Graph,
// new Coordinates). fw itself is not modified.
//
// Errors:
//   - core.ErrMissingCoordinate when a vertex has no coordinate;
//   - ErrInvalidHinge for a hinge rotation moving an outside neighbor;
//   - ErrLengthViolation when an edge drifts beyond the length tolerance;
//   - ErrRankMismatch when the recomputed ranks differ from the declared ones;
//   - ErrDegenerateAxis, ErrDegenerateEdge, ErrNotThreeDimensional;
//   - ErrOpposedDirections for an opposed alignment in 1D.
func (e *Engine) Apply(fw core.Framework, op Operation) (core.Framework, error) {
	s, err := e.snapshot(fw)
	if err != nil {
		return core.Framework{}, foldingErrorf("Apply", err)
	}
	if op.Kind == HingeRotation {
		ok, err := IsHingeFoldValid(fw.Graph, op.Axis, op.Rotated)
		if err != nil {
			return core.Framework{}, foldingErrorf("Apply", err)
		}
		if !ok {
			return core.Framework{}, foldingErrorf("Apply", fmt.Errorf("%s: %w", op.Description, ErrInvalidHinge))
		}
	}
	rows, err := transform(s.rows, op)
	if err != nil {
		return core.Framework{}, foldingErrorf("Apply", err)
	}
	if worst := maxLengthError(rows, s.constraints); worst > e.opts.lengthTol {
		return core.Framework{}, foldingErrorf("Apply",
			fmt.Errorf("%s: drift %g > %g: %w", op.Description, worst, e.opts.lengthTol, ErrLengthViolation))
	}
	er, err := edgeVectorRank(fw.Graph, rows, e.opts.rankTol)
	if err != nil {
		return core.Framework{}, foldingErrorf("Apply", err)
	}
	cr, err := coordinateRank(rows, e.opts.rankTol)
	if err != nil {
		return core.Framework{}, foldingErrorf("Apply", err)
	}
	if er != op.EdgeVectorRank || cr != op.CoordinateRank {
		return core.Framework{}, foldingErrorf("Apply", fmt.Errorf("%s: ranks (%d,%d), declared (%d,%d): %w",
			op.Description, er, cr, op.EdgeVectorRank, op.CoordinateRank, ErrRankMismatch))
	}
	next, err := fw.Coords.WithRows(rows)
	if err != nil {
		return core.Framework{}, foldingErrorf("Apply", err)
	}

	return fw.WithCoords(next), nil
}

// State returns the folding state of fw with its rank-reducing candidates.
func (e *Engine) State(fw core.Framework) (State, error) {
	s, err := e.snapshot(fw)
	if err != nil {
		return State{}, foldingErrorf("State", err)
	}
	cands, err := e.candidates(s)
	if err != nil {
		return State{}, err
	}

	return State{
		Dimension:      s.edgeRank,
		CoordinateRank: s.coordRank,
		Minimal:        len(cands) == 0,
		Candidates:     cands,
	}, nil
}

// Minimize applies the first candidate repeatedly until the state is Minimal
// or the step budget is spent.
func (e *Engine) Minimize(fw core.Framework) (*Trace, error) {
	tr := &Trace{History: []*core.Coordinates{fw.Coords}, Final: fw}
	for step := 0; ; step++ {
		st, err := e.State(tr.Final)
		if err != nil {
			return nil, err
		}
		tr.State = st
		if st.Minimal || step == e.opts.maxSteps {
			return tr, nil
		}
		op := st.Candidates[0]
		next, err := e.Apply(tr.Final, op)
		if err != nil {
			return nil, err
		}
		e.opts.logger.Debug("folding: applied", slog.String("op", op.Description),
			slog.Int("edge_rank", op.EdgeVectorRank))
		tr.Steps = append(tr.Steps, op)
		tr.History = append(tr.History, next.Coords)
		tr.Final = next
	}
}
