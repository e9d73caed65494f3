package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/relgraph/relgraph/pkg/cache"
	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/instance"
	"github.com/relgraph/relgraph/pkg/instance/wire"
	"github.com/relgraph/relgraph/pkg/multigraph"
	"github.com/relgraph/relgraph/pkg/render"
)

// Runner executes the pipeline with artifact caching. It is stateless
// except for the cache and logger, so one Runner can serve many runs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// falls back to the package default logger.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Instance is the loaded (and possibly projected) instance.
	Instance instance.DataInstance

	// Graph is the materialized multigraph.
	Graph *multigraph.Graph

	// DOT is the Graphviz source the artifact was rendered from.
	// Empty for the json format, which bypasses DOT.
	DOT string

	// Artifact is the rendered output in the requested format.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Execute runs the complete load → project → materialize → render
// pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	loadStart := time.Now()
	in, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)

	var inst instance.DataInstance = in
	if len(opts.Projections) > 0 {
		projectStart := time.Now()
		inst, err = inst.Project(opts.Projections)
		if err != nil {
			return nil, err
		}
		result.Stats.ProjectTime = time.Since(projectStart)
		r.Logger.Debug("applied projections", "atoms", opts.Projections, "duration", result.Stats.ProjectTime)
	}
	result.Instance = inst
	result.Stats.AtomCount = len(inst.Atoms())
	relations := inst.Relations()
	result.Stats.RelationCount = len(relations)
	for _, rel := range relations {
		result.Stats.TupleCount += len(rel.Tuples)
	}

	buildStart := time.Now()
	g := inst.Graph(instance.GraphOptions{
		HideDisconnected:         opts.HideDisconnected,
		HideDisconnectedBuiltins: opts.HideDisconnectedBuiltins,
	})
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	r.Logger.Info("materialized graph",
		"atoms", result.Stats.AtomCount,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount)

	renderStart := time.Now()
	if err := r.renderArtifact(ctx, g, opts, result); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered artifact",
		"format", opts.Format,
		"bytes", len(result.Artifact),
		"cached", result.CacheInfo.RenderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the instance file per the options' encoding, with the
// standard import normalization.
func (r *Runner) Load(opts Options) (*wire.Instance, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	if opts.Encoding == EncodingBSON {
		data, err := os.ReadFile(opts.Input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Input)
		}
		return wire.ReadBSON(data, wire.DefaultOptions(), r.Logger)
	}
	return wire.ImportJSON(opts.Input, wire.DefaultOptions(), r.Logger)
}

// renderArtifact produces the requested artifact, consulting the cache
// for the Graphviz-backed formats.
func (r *Runner) renderArtifact(ctx context.Context, g *multigraph.Graph, opts Options, result *Result) error {
	if opts.Format == FormatJSON {
		data, err := multigraph.MarshalDocument(g)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "serialize multigraph")
		}
		result.Artifact = data
		return nil
	}

	dot := render.ToDOT(g, opts.Style)
	result.DOT = dot

	if opts.Format == FormatDOT {
		result.Artifact = []byte(dot)
		return nil
	}

	key := cache.Key("artifact", dot, opts.Format)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		result.Artifact = data
		result.CacheInfo.RenderHit = true
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch opts.Format {
	case FormatSVG:
		data, err = render.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}

	if err := r.Cache.Set(ctx, key, data, DefaultTTL); err != nil {
		r.Logger.Warn("failed to cache artifact", "err", err)
	}
	result.Artifact = data
	return nil
}
