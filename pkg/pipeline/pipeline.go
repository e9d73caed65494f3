// Package pipeline provides the load → project → materialize → render
// pipeline for relational instances.
//
// Centralizing the pipeline keeps the CLI and any future surface on one
// code path: load a wire instance, optionally apply projections, build the
// multigraph, and render the requested artifact, with rendered SVG/PNG
// artifacts cached by content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "instance.json",
//	    Format: pipeline.FormatSVG,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifact
package pipeline

import (
	"time"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/render"
)

// Input encodings for instance files.
const (
	EncodingJSON = "json"
	EncodingBSON = "bson"
)

// Output artifact formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// validEncodings is the set of supported instance file encodings.
var validEncodings = map[string]bool{
	EncodingJSON: true,
	EncodingBSON: true,
}

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 24 * time.Hour

// Options configures one pipeline run.
type Options struct {
	// Input is the path of the instance file to load.
	Input string

	// Encoding is the input codec: "json" (default) or "bson".
	Encoding string

	// Projections holds atom ids to project over before materializing.
	Projections []string

	// HideDisconnected removes all nodes with zero incident edges from
	// the materialized graph; HideDisconnectedBuiltins removes only the
	// builtin-typed ones.
	HideDisconnected         bool
	HideDisconnectedBuiltins bool

	// Format is the artifact to produce: dot, svg, png, or json
	// (the multigraph document). Defaults to svg.
	Format string

	// Style is the visual treatment for DOT/SVG/PNG output.
	// The zero value is replaced with [render.DefaultStyle].
	Style render.Style

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// It is idempotent; Execute calls it on its own.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no input file given")
	}
	if o.Encoding == "" {
		o.Encoding = EncodingJSON
	}
	if !validEncodings[o.Encoding] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid encoding %q (must be json or bson)", o.Encoding)
	}
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if !ValidFormats[o.Format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be dot, svg, png, or json)", o.Format)
	}
	if o.Style == (render.Style{}) {
		o.Style = render.DefaultStyle()
	}
	if err := o.Style.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Stats contains pipeline execution statistics.
type Stats struct {
	AtomCount     int
	RelationCount int
	TupleCount    int
	NodeCount     int
	EdgeCount     int

	LoadTime    time.Duration
	ProjectTime time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	// RenderHit reports whether the rendered artifact came from the
	// cache instead of Graphviz.
	RenderHit bool
}
