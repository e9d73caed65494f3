package objgraph

import (
	"strconv"
	"strings"

	"github.com/relgraph/relgraph/pkg/instance"
)

// Marker text emitted for the degenerate reification cases. These are
// inline diagnostics, not errors: reification is a best-effort export, and
// a cyclic or rootless instance still produces output.
const (
	noRootsMarker = "<no roots>"
	cyclePrefix   = "<cycle "
	missingPrefix = "<missing "
)

// Reify reconstructs approximate constructor-call source text for the
// instance's root objects.
//
// A root is an atom never referenced at tuple position >= 1 in any
// relation. Zero roots (a purely cyclic instance) reify to an explicit
// marker; several roots are wrapped in a list literal; a single root
// reifies directly. Primitive atoms render as literal syntax (quoted
// strings, bare numbers, True/False), compound atoms as
// "Type(attr=value, ...)" built from their outgoing relation edges.
// Attribute order follows relation declaration order, which may differ
// from the source object's own attribute order.
//
// Recursion carries a path-local visited set: an atom already on the
// current path renders as a cycle marker instead of recursing forever.
func (in *Instance) Reify() (string, error) {
	relations := in.Model.Relations()

	referenced := make(map[string]bool)
	for _, r := range relations {
		for _, t := range r.Tuples {
			for _, id := range t.Atoms[1:] {
				referenced[id] = true
			}
		}
	}

	var roots []string
	for _, a := range in.Model.Atoms() {
		if !referenced[a.ID] {
			roots = append(roots, a.ID)
		}
	}

	if len(roots) == 0 {
		return noRootsMarker, nil
	}

	visited := make(map[string]bool)
	parts := make([]string, len(roots))
	for i, id := range roots {
		parts[i] = in.reifyAtom(id, relations, visited)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

// reifyAtom renders one atom. visited holds the atom ids on the current
// recursion path only; siblings may legitimately share substructure.
func (in *Instance) reifyAtom(id string, relations []instance.Relation, visited map[string]bool) string {
	a, ok := in.Model.Atom(id)
	if !ok {
		return missingPrefix + id + ">"
	}
	if visited[id] {
		return cyclePrefix + a.Label + ">"
	}

	switch a.Type {
	case typeStr:
		return strconv.Quote(a.Label)
	case typeInt, typeFloat, typeBool:
		return a.Label
	}

	visited[id] = true
	defer delete(visited, id)

	var args []string
	for _, r := range relations {
		operands := outgoingOperands(r, id)
		if len(operands) == 0 {
			continue
		}
		rendered := make([]string, len(operands))
		for i, target := range operands {
			rendered[i] = in.reifyAtom(target, relations, visited)
		}
		value := rendered[0]
		if len(rendered) > 1 {
			value = "[" + strings.Join(rendered, ", ") + "]"
		}
		args = append(args, r.Name+"="+value)
	}

	return a.Type + "(" + strings.Join(args, ", ") + ")"
}

// outgoingOperands collects, per tuple of r whose first atom is id, the
// tuple's final atom. Interior atoms of wide tuples are context, not
// attribute values, matching graph materialization.
func outgoingOperands(r instance.Relation, id string) []string {
	var out []string
	for _, t := range r.Tuples {
		if len(t.Atoms) >= 2 && t.Atoms[0] == id {
			out = append(out, t.Atoms[len(t.Atoms)-1])
		}
	}
	return out
}
