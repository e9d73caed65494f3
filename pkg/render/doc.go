// Package render turns materialized multigraphs into Graphviz node-link
// diagrams.
//
// # Pipeline
//
// [ToDOT] converts a [multigraph.Graph] to DOT text under a [Style];
// [RenderSVG] and [RenderPNG] rasterize the DOT via Graphviz. Styles are
// plain data and load from TOML files with [LoadStyle], so the visual
// treatment of a rendered instance is configurable without code changes:
//
//	rankdir = "LR"
//	node_shape = "ellipse"
//	builtin_fill = "lightyellow"
//
// # Determinism
//
// Nodes are emitted sorted by id and edges in insertion order, so the same
// graph always produces byte-identical DOT. This keeps rendered artifacts
// cacheable by content hash.
package render
