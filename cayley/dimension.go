// SPDX-License-Identifier: MIT

package cayley

import (
	"github.com/katalvlaran/linkage/core"
)

// AffineDimension returns the dimension (0..3) of the affine hull of points:
//   - 0 for at most one point, 1 for two;
//   - 1 when every triple spans area below the degeneracy tolerance;
//   - 3 when some quadruple spans volume at or above it;
//   - 2 otherwise.
//
// Ragged input reports ErrDimensionMismatch.
// Complexity: O(n^3 + n^4) simplex evaluations in the worst case.
func AffineDimension(points [][]float64, opts ...Option) (int, error) {
	o := newOptions(opts...)
	n := len(points)
	if n <= 1 {
		return 0, nil
	}
	if err := checkPoints(points); err != nil {
		return 0, cayleyErrorf("AffineDimension", err)
	}
	if n == 2 {
		return 1, nil
	}

	flat, err := allFlat(points, 3, o, opts)
	if err != nil {
		return 0, err
	}
	if flat {
		return 1, nil
	}
	if n < 4 {
		return 2, nil
	}
	flat, err = allFlat(points, 4, o, opts)
	if err != nil {
		return 0, err
	}
	if flat {
		return 2, nil
	}

	return 3, nil
}

// allFlat reports whether every size-k subset spans a simplex volume below
// the degeneracy tolerance. It stops at the first non-flat subset.
func allFlat(points [][]float64, k int, o Options, opts []Option) (bool, error) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sub := make([][]float64, k)
	n := len(points)
	for {
		for i, j := range idx {
			sub[i] = points[j]
		}
		v, err := SimplexVolume(sub, opts...)
		if err != nil {
			return false, err
		}
		if v >= o.degenTol {
			return false, nil
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true, nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// AffineDimensionOf applies AffineDimension to every placed vertex of c in
// ascending id order.
func AffineDimensionOf(c *core.Coordinates, opts ...Option) (int, error) {
	if c == nil {
		return 0, nil
	}
	vs := c.Vertices()
	points := make([][]float64, len(vs))
	for i, v := range vs {
		p, err := c.Point(v)
		if err != nil {
			return 0, cayleyErrorf("AffineDimensionOf", err)
		}
		points[i] = p
	}

	return AffineDimension(points, opts...)
}
