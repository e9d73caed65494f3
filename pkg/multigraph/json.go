package multigraph

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Document - Multigraph Serialization
// =============================================================================

// Document is the canonical serialization format for materialized graphs.
// Used for files, caching, and hand-off to external layout and query tooling.
//
// The format is human-readable and designed for round-trip fidelity:
// build → export → re-import produces an identical graph.
type Document struct {
	Nodes []NodeDoc `json:"nodes" bson:"nodes"`
	Edges []EdgeDoc `json:"edges" bson:"edges"`
}

// NodeDoc is the serialized form of a [Node].
type NodeDoc struct {
	ID      string `json:"id" bson:"id"`
	Label   string `json:"label,omitempty" bson:"label,omitempty"`
	Type    string `json:"type,omitempty" bson:"type,omitempty"`
	Builtin bool   `json:"builtin,omitempty" bson:"builtin,omitempty"`
}

// EdgeDoc is the serialized form of an [Edge].
type EdgeDoc struct {
	ID       string `json:"id" bson:"id"`
	From     string `json:"from" bson:"from"`
	To       string `json:"to" bson:"to"`
	Label    string `json:"label,omitempty" bson:"label,omitempty"`
	Relation string `json:"relation,omitempty" bson:"relation,omitempty"`
}

// =============================================================================
// Graph ↔ Document Conversion
// =============================================================================

// FromGraph converts a Graph to its serialization format.
// Nodes are sorted by ID for deterministic output; edges keep their
// insertion order.
func FromGraph(g *Graph) Document {
	nodes := g.SortedNodes()
	edges := g.Edges()

	out := Document{
		Nodes: make([]NodeDoc, len(nodes)),
		Edges: make([]EdgeDoc, len(edges)),
	}

	for i, n := range nodes {
		out.Nodes[i] = NodeDoc{
			ID:      n.ID,
			Label:   n.Label,
			Type:    n.Type,
			Builtin: n.Builtin,
		}
	}

	for i, e := range edges {
		out.Edges[i] = EdgeDoc{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Label:    e.Label,
			Relation: e.Relation,
		}
	}

	return out
}

// ToGraph converts a Document back to a Graph.
// Returns an error if the document violates graph constraints (duplicate
// IDs, edges referencing missing nodes).
func ToGraph(doc Document) (*Graph, error) {
	g := New()

	for _, nd := range doc.Nodes {
		n := Node{
			ID:      nd.ID,
			Label:   nd.Label,
			Type:    nd.Type,
			Builtin: nd.Builtin,
		}
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("add node %s: %w", nd.ID, err)
		}
	}

	for _, ed := range doc.Edges {
		e := Edge{
			ID:       ed.ID,
			From:     ed.From,
			To:       ed.To,
			Label:    ed.Label,
			Relation: ed.Relation,
		}
		if err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", ed.From, ed.To, err)
		}
	}

	return g, nil
}

// MarshalDocument serializes a Graph to indented JSON bytes.
func MarshalDocument(g *Graph) ([]byte, error) {
	return json.MarshalIndent(FromGraph(g), "", "  ")
}

// UnmarshalDocument deserializes JSON bytes to a Document.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
