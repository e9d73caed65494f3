package instance

import "slices"

// Atom is a uniquely identified entity with a type and display label.
// IDs are unique within an instance; labels may repeat across atoms.
type Atom struct {
	ID    string // Unique identifier within the owning instance
	Type  string // Names a Type by id; the entry is created on demand
	Label string // Display name, may repeat across atoms
}

// Type is a named sort with an ordered ancestor chain.
// The chain is self-first and most-general-last; its last element is the
// top-level type, which projection uses to decide which atoms belong to the
// same sort. Atoms holds the member atom ids in insertion order.
type Type struct {
	ID      string   // Type name, referenced by Atom.Type
	Types   []string // Ancestor chain: self first, top-level type last
	Atoms   []string // Member atom ids in insertion order
	Builtin bool     // Pre-registered primitive/base type
}

// TopLevel returns the coarsest ancestor of the type: the last element of
// the chain, or the type's own id for a trivial or empty chain.
func (t Type) TopLevel() string {
	if len(t.Types) == 0 {
		return t.ID
	}
	return t.Types[len(t.Types)-1]
}

// Clone returns a deep copy of the type.
func (t Type) Clone() Type {
	t.Types = slices.Clone(t.Types)
	t.Atoms = slices.Clone(t.Atoms)
	return t
}

// Tuple is an ordered list of atom ids with a parallel list of per-position
// type ids. Both lists always have the same length, at least 1.
type Tuple struct {
	Atoms []string // Atom ids, one per column
	Types []string // Type id per column, same length as Atoms
}

// Equal reports whether two tuples are structurally equal.
// Tuples compare by their ordered atom-id sequence only; the parallel type
// lists do not participate in identity.
func (t Tuple) Equal(other Tuple) bool {
	return slices.Equal(t.Atoms, other.Atoms)
}

// Arity returns the number of columns in the tuple.
func (t Tuple) Arity() int { return len(t.Atoms) }

// Contains reports whether the tuple references the given atom id in any
// position.
func (t Tuple) Contains(atomID string) bool {
	return slices.Contains(t.Atoms, atomID)
}

// Clone returns a deep copy of the tuple.
func (t Tuple) Clone() Tuple {
	return Tuple{
		Atoms: slices.Clone(t.Atoms),
		Types: slices.Clone(t.Types),
	}
}

// Relation is a named, typed set of tuples (n-ary edges) over atoms.
// ID and Name are usually equal; lookups accept either. The declared column
// types grow to cover the widest tuple seen.
type Relation struct {
	ID     string   // Usually equal to Name
	Name   string   // Relation name used on edges and in reification
	Types  []string // Expected type per column
	Tuples []Tuple  // Member tuples in insertion order
}

// Arity returns the number of declared columns.
func (r Relation) Arity() int { return len(r.Types) }

// HasTuple reports whether the relation contains a tuple structurally equal
// to the given one.
func (r Relation) HasTuple(t Tuple) bool {
	for _, existing := range r.Tuples {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the relation.
func (r Relation) Clone() Relation {
	r.Types = slices.Clone(r.Types)
	tuples := make([]Tuple, len(r.Tuples))
	for i, t := range r.Tuples {
		tuples[i] = t.Clone()
	}
	r.Tuples = tuples
	return r
}
