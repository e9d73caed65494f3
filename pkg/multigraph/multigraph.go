package multigraph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidEdgeID is returned by [Graph.AddEdge] when the edge ID is
	// empty. Parallel edges are only distinguishable by their IDs, so every
	// edge must have one.
	ErrInvalidEdgeID = errors.New("edge ID must not be empty")

	// ErrDuplicateEdgeID is returned by [Graph.AddEdge] when an edge with the
	// same ID already exists in the graph. Edge IDs must be unique.
	ErrDuplicateEdgeID = errors.New("duplicate edge ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a node that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Node represents a vertex in the materialized graph. Nodes correspond
// one-to-one with the atoms of the instance they were built from, keyed by
// the atom's ID.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Node struct {
	ID      string // Unique identifier (the originating atom's ID)
	Label   string // Display label (defaults to ID when empty)
	Type    string // Most specific type name of the originating atom
	Builtin bool   // Whether the originating atom has a builtin type
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge represents a directed connection between two nodes. A unary tuple
// materializes as a self-loop (From == To), and parallel edges between the
// same endpoints are distinguished by ID.
type Edge struct {
	ID       string // Unique identifier, synthesized from the originating tuple
	From     string // Source node ID
	To       string // Target node ID
	Label    string // Display label (relation name, plus interior atoms for wide tuples)
	Relation string // Name of the relation the edge came from
}

// IsSelfLoop reports whether the edge starts and ends on the same node.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// Graph is a directed multigraph: parallel edges and self-loops are allowed.
// Edge insertion order is preserved, which keeps serialized output stable
// across runs for the same input.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]*Node
	edges    []*Edge
	edgeByID map[string]*Edge
	outgoing map[string][]*Edge // nodeID -> edges leaving the node
	incoming map[string][]*Edge // nodeID -> edges entering the node
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edgeByID: make(map[string]*Edge),
		outgoing: make(map[string][]*Edge),
		incoming: make(map[string][]*Edge),
	}
}

// AddNode adds a node to the graph.
// Returns ErrInvalidNodeID if the node ID is empty, or ErrDuplicateNodeID
// if a node with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[n.ID] = &n
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrInvalidEdgeID if the edge ID is empty, ErrDuplicateEdgeID if
// the ID is already in use, ErrUnknownSourceNode if the From node doesn't
// exist, or ErrUnknownTargetNode if the To node doesn't exist.
//
// Self-loops (From == To) and parallel edges between the same endpoints are
// both allowed.
func (g *Graph) AddEdge(e Edge) error {
	if e.ID == "" {
		return ErrInvalidEdgeID
	}
	if _, exists := g.edgeByID[e.ID]; exists {
		return ErrDuplicateEdgeID
	}
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	edge := &e
	g.edges = append(g.edges, edge)
	g.edgeByID[edge.ID] = edge
	g.outgoing[edge.From] = append(g.outgoing[edge.From], edge)
	g.incoming[edge.To] = append(g.incoming[edge.To], edge)
	return nil
}

// RemoveEdge removes the edge with the given ID if it exists.
// No error is returned if the edge does not exist.
func (g *Graph) RemoveEdge(id string) {
	edge, ok := g.edgeByID[id]
	if !ok {
		return
	}
	delete(g.edgeByID, id)
	g.edges = slices.DeleteFunc(g.edges, func(e *Edge) bool { return e.ID == id })
	g.outgoing[edge.From] = slices.DeleteFunc(g.outgoing[edge.From], func(e *Edge) bool { return e.ID == id })
	g.incoming[edge.To] = slices.DeleteFunc(g.incoming[edge.To], func(e *Edge) bool { return e.ID == id })
}

// RemoveNode removes the node with the given ID along with every edge
// incident to it. No error is returned if the node does not exist.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for _, e := range slices.Clone(g.outgoing[id]) {
		g.RemoveEdge(e.ID)
	}
	for _, e := range slices.Clone(g.incoming[id]) {
		g.RemoveEdge(e.ID)
	}
	delete(g.outgoing, id)
	delete(g.incoming, id)
	delete(g.nodes, id)
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the actual node in the graph, so
// modifications affect the graph (except for ID changes).
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with the given ID and true, or nil and false if not
// found.
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edgeByID[id]
	return e, ok
}

// Nodes returns all nodes in the graph.
// The order is not guaranteed. The returned slice contains pointers to the
// actual node structs, so modifications affect the graph.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// SortedNodes returns all nodes sorted by ID.
// Use this wherever deterministic iteration matters (serialization, DOT
// generation, tests).
func (g *Graph) SortedNodes() []*Node {
	nodes := g.Nodes()
	slices.SortFunc(nodes, func(a, b *Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return nodes
}

// Edges returns a copy of the edge list in insertion order.
// The slice is a copy but the pointers refer to the actual edges.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// OutEdges returns the edges leaving the node in insertion order.
// Returns nil if the node has no outgoing edges or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (g *Graph) OutEdges(id string) []*Edge { return g.outgoing[id] }

// InEdges returns the edges entering the node in insertion order.
// Returns nil if the node has no incoming edges or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (g *Graph) InEdges(id string) []*Edge { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the node.
// Returns 0 if the node doesn't exist. A self-loop counts once.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the node.
// Returns 0 if the node doesn't exist. A self-loop counts once.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Degree returns the total number of edge endpoints at the node.
// A self-loop contributes to both the in- and out-degree, so it counts
// twice here. Returns 0 if the node doesn't exist.
func (g *Graph) Degree(id string) int { return len(g.outgoing[id]) + len(g.incoming[id]) }

// Isolated returns all nodes with no incident edges, sorted by ID.
// A node whose only edge is a self-loop is not isolated.
func (g *Graph) Isolated() []*Node {
	var isolated []*Node
	for _, n := range g.SortedNodes() {
		if g.Degree(n.ID) == 0 {
			isolated = append(isolated, n)
		}
	}
	return isolated
}

// Validate checks graph integrity and returns nil if valid.
// It verifies that every edge connects existing nodes. Returns
// ErrInvalidEdgeEndpoint if an edge references a missing node.
//
// Cycles and parallel edges are legal in a multigraph, so no structural
// constraints beyond endpoint existence are checked.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if _, ok := g.nodes[e.To]; !ok {
			return ErrInvalidEdgeEndpoint
		}
	}
	return nil
}
