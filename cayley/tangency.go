// SPDX-License-Identifier: MIT

package cayley

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// TangencyClass classifies two spheres by their tangency gap.
type TangencyClass int

const (
	// Intersecting spheres meet in a circle of solutions.
	Intersecting TangencyClass = iota
	// Tangent spheres meet in one point (locally rigid).
	Tangent
	// Disjoint spheres do not meet (infeasible for a valid configuration).
	Disjoint
)

func (c TangencyClass) String() string {
	switch c {
	case Intersecting:
		return "intersecting"
	case Tangent:
		return "tangent"
	case Disjoint:
		return "disjoint"
	default:
		return fmt.Sprintf("TangencyClass(%d)", int(c))
	}
}

// TangencyGap returns |c1 - c2| - (r1 + r2).
func TangencyGap(c1 []float64, r1 float64, c2 []float64, r2 float64) (float64, error) {
	if len(c1) != len(c2) {
		return 0, cayleyErrorf("TangencyGap", ErrDimensionMismatch)
	}

	return floats.Distance(c1, c2, 2) - (r1 + r2), nil
}

// Classify maps a gap to its class. |gap| <= tol counts as Tangent.
func Classify(gap, tol float64) TangencyClass {
	switch {
	case gap >= -tol && gap <= tol:
		return Tangent
	case gap < 0:
		return Intersecting
	default:
		return Disjoint
	}
}
