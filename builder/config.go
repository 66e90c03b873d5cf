// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates the knobs constructors and layouts read.
// It is passed by value; constructors never retain it.
type builderConfig struct {
	// nameFn maps a vertex index to its display name.
	nameFn NameFn
	// rng drives RandomLayout; nil means no randomness.
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{nameFn: DecimalNames}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
