// Package multigraph provides a directed multigraph used as the
// materialization target for relational instances.
//
// # Overview
//
// An instance's atoms become nodes and its relation tuples become directed
// edges. Unlike a simple graph, a multigraph permits parallel edges (several
// edges between the same pair of nodes, one per tuple) and self-loops
// (unary tuples point a node at itself). Every edge therefore carries its
// own unique ID alongside its endpoints.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode], and edges with
// [Graph.AddEdge]. Nodes and edges must have unique non-empty IDs, and edges
// can only connect existing nodes:
//
//	g := multigraph.New()
//	g.AddNode(multigraph.Node{ID: "a", Label: "Node_0", Type: "Node"})
//	g.AddNode(multigraph.Node{ID: "b", Label: "Node_1", Type: "Node"})
//	g.AddEdge(multigraph.Edge{ID: "edges:a:b", From: "a", To: "b", Label: "edges"})
//
// Query the structure with [Graph.OutEdges], [Graph.InEdges], [Graph.Degree],
// and related methods. Use [Graph.Validate] to verify integrity before
// serializing or rendering.
//
// # Serialization
//
// The [Document] type in this package is the canonical node-link JSON format
// consumed by external layout and query tooling. Convert with [FromGraph] and
// [ToGraph].
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package multigraph
