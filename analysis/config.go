// SPDX-License-Identifier: MIT

package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkage/cayley"
	"github.com/katalvlaran/linkage/folding"
	"github.com/katalvlaran/linkage/matroid"
	"github.com/katalvlaran/linkage/projector"
	"github.com/katalvlaran/linkage/rigidity"
)

// DefaultCacheSize is the number of reports an Analyzer keeps.
const DefaultCacheSize = 128

// Config tunes every stage of an Analyzer.
type Config struct {
	// Dimension of the rigidity analysis; 0 uses the coordinate dimension.
	Dimension           int       `yaml:"dimension"`
	RankTolerance       float64   `yaml:"rank_tolerance"`
	FoldRankTolerance   float64   `yaml:"fold_rank_tolerance"` // coordinate and edge-vector ranks
	LengthTolerance     float64   `yaml:"length_tolerance"`
	GeometryTolerance   float64   `yaml:"geometry_tolerance"`
	CacheSize           int       `yaml:"cache_size"`
	MaxSubsetSize       int       `yaml:"max_subset_size"`
	ProjectorIterations int       `yaml:"projector_iterations"`
	HingeAngles         []float64 `yaml:"hinge_angles"` // degrees
}

// DefaultConfig returns the package defaults of every stage.
func DefaultConfig() Config {
	return Config{
		RankTolerance:       rigidity.DefaultTolerance,
		FoldRankTolerance:   folding.DefaultRankTolerance,
		LengthTolerance:     folding.DefaultLengthTolerance,
		GeometryTolerance:   cayley.DefaultDegeneracyTolerance,
		CacheSize:           DefaultCacheSize,
		MaxSubsetSize:       matroid.DefaultMaxSubsetSize,
		ProjectorIterations: projector.DefaultIterations,
		HingeAngles:         append([]float64(nil), folding.DefaultAngles...),
	}
}

// Validate rejects negative or non-finite tolerances and empty budgets.
func (c Config) Validate() error {
	if c.Dimension < 0 {
		return fmt.Errorf("dimension %d: %w", c.Dimension, ErrInvalidConfig)
	}
	tols := []struct {
		name string
		v    float64
	}{
		{"rank_tolerance", c.RankTolerance},
		{"fold_rank_tolerance", c.FoldRankTolerance},
		{"length_tolerance", c.LengthTolerance},
		{"geometry_tolerance", c.GeometryTolerance},
	}
	for _, t := range tols {
		if t.v < 0 || math.IsNaN(t.v) || math.IsInf(t.v, 0) {
			return fmt.Errorf("%s %g: %w", t.name, t.v, ErrInvalidConfig)
		}
	}
	if c.CacheSize < 1 {
		return fmt.Errorf("cache_size %d: %w", c.CacheSize, ErrInvalidConfig)
	}
	if c.MaxSubsetSize < 2 {
		return fmt.Errorf("max_subset_size %d: %w", c.MaxSubsetSize, ErrInvalidConfig)
	}
	if c.ProjectorIterations < 1 {
		return fmt.Errorf("projector_iterations %d: %w", c.ProjectorIterations, ErrInvalidConfig)
	}
	if len(c.HingeAngles) == 0 {
		return fmt.Errorf("hinge_angles empty: %w", ErrInvalidConfig)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// LoadConfig decodes one YAML document from r over DefaultConfig.
// Unknown keys are rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, analysisErrorf("LoadConfig", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, analysisErrorf("LoadConfig", err)
	}

	return cfg, nil
}
