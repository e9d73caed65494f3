package multigraph

import (
	"encoding/json"
	"strings"
	"testing"
)

func buildSample() *Graph {
	g := New()
	g.AddNode(Node{ID: "n1", Label: "Node_0", Type: "Node"})
	g.AddNode(Node{ID: "n0", Label: "Node_1", Type: "Node"})
	g.AddNode(Node{ID: "int_5", Label: "5", Type: "int", Builtin: true})
	g.AddEdge(Edge{ID: "edges:n0:n1", From: "n0", To: "n1", Label: "edges", Relation: "edges"})
	g.AddEdge(Edge{ID: "val:n0:int_5", From: "n0", To: "int_5", Label: "val", Relation: "val"})
	return g
}

func TestFromGraph(t *testing.T) {
	doc := FromGraph(buildSample())

	if got := len(doc.Nodes); got != 3 {
		t.Fatalf("nodes = %d, want 3", got)
	}
	if got := len(doc.Edges); got != 2 {
		t.Fatalf("edges = %d, want 2", got)
	}

	// Nodes are sorted by ID for stable output.
	ids := []string{doc.Nodes[0].ID, doc.Nodes[1].ID, doc.Nodes[2].ID}
	want := []string{"int_5", "n0", "n1"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("node[%d].ID = %q, want %q", i, ids[i], want[i])
		}
	}

	if !doc.Nodes[0].Builtin {
		t.Error("int_5 not flagged builtin")
	}

	// Edges keep insertion order.
	if doc.Edges[0].ID != "edges:n0:n1" {
		t.Errorf("edge[0].ID = %q, want edges:n0:n1", doc.Edges[0].ID)
	}
}

func TestRoundTrip(t *testing.T) {
	orig := buildSample()

	data, err := MarshalDocument(orig)
	if err != nil {
		t.Fatalf("MarshalDocument: %v", err)
	}

	doc, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("UnmarshalDocument: %v", err)
	}

	g, err := ToGraph(doc)
	if err != nil {
		t.Fatalf("ToGraph: %v", err)
	}

	if got := g.NodeCount(); got != orig.NodeCount() {
		t.Errorf("NodeCount() = %d, want %d", got, orig.NodeCount())
	}
	if got := g.EdgeCount(); got != orig.EdgeCount() {
		t.Errorf("EdgeCount() = %d, want %d", got, orig.EdgeCount())
	}

	e, ok := g.Edge("val:n0:int_5")
	if !ok {
		t.Fatal("edge val:n0:int_5 lost in round trip")
	}
	if e.Relation != "val" {
		t.Errorf("edge relation = %q, want %q", e.Relation, "val")
	}
}

func TestToGraphErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr string
	}{
		{
			name: "DuplicateNode",
			doc: Document{
				Nodes: []NodeDoc{{ID: "a"}, {ID: "a"}},
			},
			wantErr: "duplicate node ID",
		},
		{
			name: "DanglingEdge",
			doc: Document{
				Nodes: []NodeDoc{{ID: "a"}},
				Edges: []EdgeDoc{{ID: "e1", From: "a", To: "ghost"}},
			},
			wantErr: "unknown target node",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGraph(tt.doc)
			if err == nil {
				t.Fatal("ToGraph() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDocumentJSONShape(t *testing.T) {
	doc := FromGraph(buildSample())
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := raw["nodes"]; !ok {
		t.Error("missing top-level nodes key")
	}
	if _, ok := raw["edges"]; !ok {
		t.Error("missing top-level edges key")
	}
}
