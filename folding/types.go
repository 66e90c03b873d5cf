// SPDX-License-Identifier: MIT

package folding

import (
	"fmt"

	"github.com/katalvlaran/linkage/core"
)

// Kind names an operation family.
type Kind int

const (
	// EdgeAlignment makes one edge parallel or anti-parallel to an adjacent one.
	EdgeAlignment Kind = iota
	// HingeRotation turns a clique about an edge it shares with another clique.
	HingeRotation
)

func (k Kind) String() string {
	switch k {
	case EdgeAlignment:
		return "edge-alignment"
	case HingeRotation:
		return "hinge-rotation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Hinge is an axis edge shared by two maximal cliques. Fixed is the clique
// that stays put; Moving lists the other clique's non-axis vertices.
type Hinge struct {
	Axis   core.Edge
	Fixed  []core.VertexID
	Moving []core.VertexID
}

// Operation is a proposal produced by an Engine. The transform is fully
// determined by Kind and its parameters; the rank and length fields describe
// the outcome the engine measured when it proposed it.
type Operation struct {
	Kind        Kind
	Description string

	// Edge alignment: rotate Rotated about Pivot so Pivot->Moving follows Pivot->Reference.
	Pivot        core.VertexID
	Moving       core.VertexID
	Reference    core.VertexID
	AntiParallel bool

	// Hinge rotation: rotate Rotated about Axis (from Axis.U to Axis.V) by Angle radians.
	Axis  core.Edge
	Angle float64

	// Rotated is the ascending set of vertices the operation moves.
	Rotated []core.VertexID

	CoordinateRank   int
	EdgeVectorRank   int
	LengthPreserving bool
	MaxLengthError   float64
}

func (op Operation) key() string {
	return fmt.Sprintf("%s|%s|%d|%d", op.Kind, op.Description, op.CoordinateRank, op.EdgeVectorRank)
}

// State is the folding state of one framework.
type State struct {
	// Dimension is the current edge-vector rank.
	Dimension      int
	CoordinateRank int
	// Minimal holds when no rank-reducing operation exists.
	Minimal    bool
	Candidates []Operation
}

func (s State) String() string {
	if s.Minimal {
		return fmt.Sprintf("minimal(%d)", s.Dimension)
	}

	return fmt.Sprintf("unfolded(%d)", s.Dimension)
}

// Trace records a Minimize run. History[0] is the input snapshot and
// History[i+1] the snapshot after Steps[i].
type Trace struct {
	Steps   []Operation
	History []*core.Coordinates
	Final   core.Framework
	State   State
}
