// SPDX-License-Identifier: MIT

package analysis

import (
	"io"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/linkage/cayley"
	"github.com/katalvlaran/linkage/core"
	"github.com/katalvlaran/linkage/folding"
	"github.com/katalvlaran/linkage/matroid"
	"github.com/katalvlaran/linkage/projector"
	"github.com/katalvlaran/linkage/rigidity"
)

// Report is the combined analysis of one framework.
type Report struct {
	Fingerprint     uint64
	Dimension       int
	Rigidity        *rigidity.Result
	Matroid         *matroid.Report
	AffineDimension int
	Folding         folding.State
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger routes the logs of the Analyzer and of every stage to l.
// nil keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// Analyzer runs and memoizes analyses. It is safe for concurrent use.
type Analyzer struct {
	cfg    Config
	logger *slog.Logger
	cache  *lru.Cache[uint64, *Report]
	engine *folding.Engine
}

// New validates cfg and returns an Analyzer.
func New(cfg Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, analysisErrorf("New", err)
	}
	a := &Analyzer{cfg: cfg, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, fn := range opts {
		if fn != nil {
			fn(a)
		}
	}
	cache, err := lru.New[uint64, *Report](cfg.CacheSize)
	if err != nil {
		return nil, analysisErrorf("New", err)
	}
	a.cache = cache
	a.engine = folding.NewEngine(
		folding.WithLengthTolerance(cfg.LengthTolerance),
		folding.WithRankTolerance(cfg.FoldRankTolerance),
		folding.WithAngles(cfg.HingeAngles...),
		folding.WithLogger(a.logger),
	)

	return a, nil
}

// Config returns the validated configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Engine returns the folding engine configured from Config.
func (a *Analyzer) Engine() *folding.Engine { return a.engine }

// CacheLen reports the number of memoized reports.
func (a *Analyzer) CacheLen() int { return a.cache.Len() }

// Analyze returns the Report of fw, from cache when an identical framework
// was analyzed before.
func (a *Analyzer) Analyze(fw core.Framework) (*Report, error) {
	if err := fw.Validate(); err != nil {
		return nil, analysisErrorf("Analyze", err)
	}
	fp := fw.Fingerprint()
	if r, ok := a.cache.Get(fp); ok {
		a.logger.Debug("analysis: cache hit", slog.Uint64("fingerprint", fp))
		return r, nil
	}

	d := a.cfg.Dimension
	if d == 0 {
		d = fw.Dim()
	}
	rig, err := rigidity.Analyze(fw, d,
		rigidity.WithTolerance(a.cfg.RankTolerance), rigidity.WithLogger(a.logger))
	if err != nil {
		return nil, analysisErrorf("Analyze", err)
	}
	mat, err := matroid.Analyze(fw.Graph, matroid.WithMaxSubsetSize(a.cfg.MaxSubsetSize))
	if err != nil {
		return nil, analysisErrorf("Analyze", err)
	}
	aff, err := cayley.AffineDimensionOf(fw.Coords, cayley.WithDegeneracyTolerance(a.cfg.GeometryTolerance))
	if err != nil {
		return nil, analysisErrorf("Analyze", err)
	}
	st, err := a.engine.State(fw)
	if err != nil {
		return nil, analysisErrorf("Analyze", err)
	}

	r := &Report{
		Fingerprint:     fp,
		Dimension:       d,
		Rigidity:        rig,
		Matroid:         mat,
		AffineDimension: aff,
		Folding:         st,
	}
	a.cache.Add(fp, r)
	a.logger.Info("analysis: analyzed",
		slog.Uint64("fingerprint", fp),
		slog.Int("rank", rig.Rank),
		slog.Bool("rigid", rig.InfinitesimallyRigid),
		slog.String("state", st.String()))

	return r, nil
}

// Apply verifies and applies op to fw.
func (a *Analyzer) Apply(fw core.Framework, op folding.Operation) (core.Framework, error) {
	next, err := a.engine.Apply(fw, op)
	if err != nil {
		return core.Framework{}, analysisErrorf("Apply", err)
	}
	a.logger.Debug("analysis: applied", slog.String("op", op.Description))

	return next, nil
}

// Minimize folds fw greedily until no rank-reducing operation remains.
func (a *Analyzer) Minimize(fw core.Framework) (*folding.Trace, error) {
	tr, err := a.engine.Minimize(fw)
	if err != nil {
		return nil, analysisErrorf("Minimize", err)
	}

	return tr, nil
}

// Relax takes a finite step of length step along the first non-trivial
// infinitesimal motion of fw and projects back onto the bar lengths.
// Rigid frameworks yield ErrNoFlex.
func (a *Analyzer) Relax(fw core.Framework, step float64) (*projector.Result, error) {
	rep, err := a.Analyze(fw)
	if err != nil {
		return nil, analysisErrorf("Relax", err)
	}
	if rep.Dimension != fw.Dim() {
		// motions live in the analysis dimension; project the coordinates to it
		c, err := fw.Coords.Resize(rep.Dimension)
		if err != nil {
			return nil, analysisErrorf("Relax", err)
		}
		fw = fw.WithCoords(c)
	}
	motions, err := rigidity.NonTrivialMotions(fw, rep.Dimension, rigidity.WithTolerance(a.cfg.RankTolerance))
	if err != nil {
		return nil, analysisErrorf("Relax", err)
	}
	if len(motions) == 0 {
		return nil, analysisErrorf("Relax", ErrNoFlex)
	}

	return projector.Nudge(fw, motions[0], step,
		projector.WithIterations(a.cfg.ProjectorIterations),
		projector.WithTolerance(a.cfg.LengthTolerance),
		projector.WithLogger(a.logger))
}
