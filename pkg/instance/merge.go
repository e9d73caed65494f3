package instance

import (
	"github.com/relgraph/relgraph/pkg/errors"
)

// AddFrom splices a snapshot of another instance into the receiver.
//
// Every source atom receives a fresh id unique in the receiver, except when
// unifyBuiltins is set and the atom has a builtin type: then an existing
// receiver atom with the same (type, label) absorbs it, deduplicating
// shared primitives. Tuples are rewritten through the id mapping before
// insertion, and structurally duplicate tuples are dropped rather than
// appended twice. Type entries and empty relations are carried over so the
// receiver can distinguish emptied relations from ones never created.
//
// Reports false without mutating when other is nil; true otherwise.
// Individual records that cannot be inserted (a dangling tuple in the
// source, say) are logged and skipped, not rolled back.
func (m *Model) AddFrom(other Source, unifyBuiltins bool) bool {
	if other == nil {
		return false
	}

	srcTypes := other.Types()
	typeByID := make(map[string]Type, len(srcTypes))
	for _, t := range srcTypes {
		typeByID[t.ID] = t
	}

	// Carry type entries over first so source ordering and empty types
	// survive the merge.
	for _, t := range srcTypes {
		m.EnsureType(t.ID, t.Types, t.Builtin)
	}

	idMap := make(map[string]string)
	for _, a := range other.Atoms() {
		srcType, known := typeByID[a.Type]
		builtin := known && srcType.Builtin

		if unifyBuiltins && builtin {
			if existing, ok := m.FindByTypeAndLabel(a.Type, a.Label); ok {
				idMap[a.ID] = existing
				continue
			}
		}

		fresh := m.FreshID()
		idMap[a.ID] = fresh

		var hierarchy []string
		if known {
			hierarchy = srcType.Types
		}
		if _, err := m.AddTypedAtom(Atom{ID: fresh, Type: a.Type, Label: a.Label}, hierarchy, builtin); err != nil {
			m.logger.Warn("merge: skipping atom", "id", a.ID, "err", err)
			delete(idMap, a.ID)
		}
	}

	for _, r := range other.Relations() {
		// Preserve emptied relations and declared column types.
		m.EnsureRelation(r.ID, r.Name, r.Types)

		for _, t := range r.Tuples {
			mapped := Tuple{
				Atoms: make([]string, len(t.Atoms)),
				Types: make([]string, len(t.Types)),
			}
			copy(mapped.Types, t.Types)
			for i, id := range t.Atoms {
				if to, ok := idMap[id]; ok {
					mapped.Atoms[i] = to
				} else {
					mapped.Atoms[i] = id
				}
			}

			if err := m.AddTuple(r.Name, mapped); err != nil {
				if errors.Is(err, errors.ErrCodeDuplicateTuple) {
					continue
				}
				m.logger.Warn("merge: skipping tuple", "relation", r.Name, "atoms", t.Atoms, "err", err)
			}
		}
	}

	return true
}

// FindByTypeAndLabel returns the id of the first atom (in insertion order)
// with the given type and label. Merge unification and the foreign-object
// adapter's primitive interning both resolve atoms through it.
func (m *Model) FindByTypeAndLabel(typeID, label string) (string, bool) {
	for _, id := range m.atomOrder {
		a := m.atoms[id]
		if a.Type == typeID && a.Label == label {
			return id, true
		}
	}
	return "", false
}
