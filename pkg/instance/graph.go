package instance

import (
	"fmt"
	"strings"

	"github.com/relgraph/relgraph/pkg/multigraph"
)

// GraphOptions controls the cleanup pass of [Model.Graph].
type GraphOptions struct {
	// HideDisconnected removes every node with zero incident edges.
	HideDisconnected bool

	// HideDisconnectedBuiltins removes only zero-edge nodes whose type is
	// builtin. Subsumed by HideDisconnected when both are set.
	HideDisconnectedBuiltins bool
}

// Graph materializes the instance into a directed multigraph.
//
// Every atom becomes a node carrying its label, type, and builtin flag.
// Every tuple of arity >= 2 becomes one edge from its first to its last
// atom; interior atoms of wider tuples are not separate edges, their labels
// fold into the edge label as a bracketed annotation ("r[mid1, mid2]").
// Arity-1 tuples become self-loops labeled with the relation name. Parallel
// edges are kept apart by a synthetic edge id combining the relation id
// with the tuple's full atom-id chain.
//
// The receiver is never mutated.
func (m *Model) Graph(opts GraphOptions) *multigraph.Graph {
	g := multigraph.New()

	for _, aid := range m.atomOrder {
		a := m.atoms[aid]
		err := g.AddNode(multigraph.Node{
			ID:      a.ID,
			Label:   a.Label,
			Type:    a.Type,
			Builtin: m.isBuiltinAtom(a),
		})
		if err != nil {
			m.logger.Warn("graph: skipping node", "atom", a.ID, "err", err)
		}
	}

	for _, rid := range m.relOrder {
		r := m.relations[rid]
		for _, t := range r.Tuples {
			e := m.tupleEdge(r, t)
			if err := g.AddEdge(e); err != nil {
				m.logger.Warn("graph: skipping edge", "relation", r.Name, "atoms", t.Atoms, "err", err)
			}
		}
	}

	if opts.HideDisconnected || opts.HideDisconnectedBuiltins {
		for _, n := range g.Isolated() {
			if opts.HideDisconnected || n.Builtin {
				g.RemoveNode(n.ID)
			}
		}
	}

	return g
}

// tupleEdge derives the edge for a single tuple.
func (m *Model) tupleEdge(r *Relation, t Tuple) multigraph.Edge {
	first := t.Atoms[0]
	last := t.Atoms[len(t.Atoms)-1]

	label := r.Name
	if len(t.Atoms) > 2 {
		interior := make([]string, len(t.Atoms)-2)
		for i, id := range t.Atoms[1 : len(t.Atoms)-1] {
			interior[i] = m.displayLabel(id)
		}
		label = fmt.Sprintf("%s[%s]", r.Name, strings.Join(interior, ", "))
	}

	return multigraph.Edge{
		ID:       edgeID(r.ID, t),
		From:     first,
		To:       last,
		Label:    label,
		Relation: r.Name,
	}
}

// edgeID builds the synthetic id for a tuple's edge. Duplicate tuples are
// rejected on insert, so the relation id plus the atom chain is unique.
func edgeID(relationID string, t Tuple) string {
	return relationID + ":" + strings.Join(t.Atoms, ":")
}
