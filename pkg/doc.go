// Package pkg provides the core libraries for relgraph.
//
// # Overview
//
// Relgraph works with relational data instances in the style of Alloy model
// instances: atoms grouped into type hierarchies, connected by named n-ary
// relations. The pkg directory is organized into five main areas:
//
//  1. [instance] - The instance model (atoms, types, relations, tuples)
//  2. [multigraph] - Directed multigraph materialized from instances
//  3. [render] - DOT generation and Graphviz SVG/PNG rendering
//  4. [pipeline] - Orchestration (load → project → materialize → render)
//  5. [cache] - Content-addressed artifact caching
//
// # Architecture
//
// The typical data flow through relgraph:
//
//	instance file (JSON/BSON)
//	         ↓
//	    [instance/wire] package (decode + normalize)
//	         ↓
//	    [instance] package (projection, merge)
//	         ↓
//	    [multigraph] package (nodes + labeled edges)
//	         ↓
//	    [render] package (DOT → SVG/PNG)
//
// # Quick Start
//
// Load an instance and render it:
//
//	import (
//	    "context"
//	    "github.com/relgraph/relgraph/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Input:  "instance.json",
//	    Format: pipeline.FormatSVG,
//	})
//
// # Main Packages
//
// [instance] - The shared instance model. A Model stores atoms, type
// hierarchies, and relations with insertion-order iteration, and provides
// Alloy-style projection and cross-instance merge. The DataInstance
// interface is the contract both adapters implement.
//
// [instance/wire] - The strict adapter and the JSON/BSON wire codecs.
// Duplicate ids, mismatched tuples, and dangling references are errors,
// with per-concern normalization switches.
//
// [instance/objgraph] - The lenient adapter for foreign object graphs.
// Objects are ingested breadth-first with cycle-safe identity mapping and
// primitive interning, and instances reify back to constructor-call text.
//
// [multigraph] - Directed multigraph with parallel labeled edges, plus its
// JSON node-link document.
//
// [render] - DOT source generation with TOML-configurable styles, and
// Graphviz-backed SVG and PNG rendering.
//
// [pipeline] - Complete pipeline (load → project → materialize → render)
// used by the CLI. Rendered artifacts are cached by DOT content hash.
//
// [cache] - File-based cache with TTL expiry and a null implementation.
//
// [errors] - Coded errors shared across all packages.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// [instance]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/instance
// [instance/wire]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/instance/wire
// [instance/objgraph]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/instance/objgraph
// [multigraph]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/multigraph
// [render]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/relgraph/relgraph/pkg/buildinfo
package pkg
