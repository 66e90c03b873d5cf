// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
)

const methodLayout = "Layout"

// CircleLayout places vertex i at radius·(cos 2πi/n, sin 2πi/n) in the first
// two axes; further axes are 0. dim must be >= 2.
func CircleLayout(radius float64) Layout {
	return func(n, dim int, _ builderConfig) ([][]float64, error) {
		if err := validateMin(methodLayout, "dim", dim, 2); err != nil {
			return nil, err
		}
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, dim)
			a := 2 * math.Pi * float64(i) / float64(n)
			rows[i][0] = radius * math.Cos(a)
			rows[i][1] = radius * math.Sin(a)
		}

		return rows, nil
	}
}

// LineLayout places vertex i at (i·spacing, 0, ...).
func LineLayout(spacing float64) Layout {
	return func(n, dim int, _ builderConfig) ([][]float64, error) {
		if err := validateMin(methodLayout, "dim", dim, 1); err != nil {
			return nil, err
		}
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, dim)
			rows[i][0] = float64(i) * spacing
		}

		return rows, nil
	}
}

// RandomLayout draws every component uniformly from [-scale, scale) with the
// configured RNG. Requires WithSeed or WithRand.
func RandomLayout(scale float64) Layout {
	return func(n, dim int, cfg builderConfig) ([][]float64, error) {
		if cfg.rng == nil {
			return nil, builderErrorf(methodLayout, ErrNeedRandSource)
		}
		if err := validateMin(methodLayout, "dim", dim, 1); err != nil {
			return nil, err
		}
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, dim)
			for k := range rows[i] {
				rows[i][k] = (cfg.rng.Float64()*2 - 1) * scale
			}
		}

		return rows, nil
	}
}

// ExplicitLayout uses the given rows verbatim; their count must equal n and
// each row must have dim components.
func ExplicitLayout(rows [][]float64) Layout {
	return func(n, dim int, _ builderConfig) ([][]float64, error) {
		if len(rows) != n {
			return nil, builderErrorf(methodLayout, fmt.Errorf("%d rows for %d vertices: %w", len(rows), n, ErrLayoutMismatch))
		}
		for i, r := range rows {
			if len(r) != dim {
				return nil, builderErrorf(methodLayout, fmt.Errorf("row %d has %d components, want %d: %w", i, len(r), dim, ErrLayoutMismatch))
			}
		}

		return resize(rows, dim), nil
	}
}

// resize copies rows, truncating or zero-padding each to dim components.
func resize(rows [][]float64, dim int) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, dim)
		copy(out[i], r)
	}

	return out
}
