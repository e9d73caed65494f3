package instance

import "github.com/relgraph/relgraph/pkg/multigraph"

// Source is the read-only snapshot surface of an instance.
// It is the minimal contract [Model.AddFrom] needs, so any adapter can merge
// data from any other without knowing its concrete representation.
type Source interface {
	// Atoms returns a snapshot of all atoms in insertion order.
	Atoms() []Atom

	// Types returns a deep snapshot of all type entries in insertion order.
	Types() []Type

	// Relations returns a deep snapshot of all relations in insertion order.
	Relations() []Relation
}

// DataInstance is the shared read/write contract implemented by every
// adapter. External collaborators (REPL parsers, the layout and query
// engine, serializers) bind to this surface only.
//
// Mutation policy differs per adapter: the wire adapter fails fast on
// duplicate ids, missing atoms, and dangling references, while the
// foreign-object adapter assigns fresh ids and logs-and-skips instead of
// failing. The derived views behave identically everywhere.
type DataInstance interface {
	Source

	// AtomType returns the type entry of the given atom.
	// Fails with a NOT_FOUND error if the atom or its type entry is missing.
	AtomType(id string) (Type, error)

	// AddAtom inserts an atom and returns the stored record, which may carry
	// a different id than the input (the foreign-object adapter assigns its
	// own). The atom's type entry is created on demand.
	AddAtom(a Atom) (Atom, error)

	// RemoveAtom deletes an atom, removes it from its type's member list,
	// and removes every tuple in every relation referencing it.
	RemoveAtom(id string) error

	// AddTuple inserts a tuple into the named relation, creating the
	// relation on first use and widening its declared column types if the
	// tuple is wider.
	AddTuple(relation string, t Tuple) error

	// RemoveTuple deletes the structurally equal tuple from the named
	// relation. Fails with a NOT_FOUND error if the relation or tuple is
	// absent.
	RemoveTuple(relation string, t Tuple) error

	// Project returns a new instance with the given atoms' sorts collapsed
	// out of the model. The receiver is untouched.
	Project(atomIDs []string) (DataInstance, error)

	// Graph materializes the instance into a directed multigraph.
	Graph(opts GraphOptions) *multigraph.Graph

	// Reify reconstructs an external representation of the instance: the
	// wire adapter emits its JSON document, the foreign-object adapter
	// emits constructor-call source text.
	Reify() (string, error)

	// AddFrom splices a snapshot of another instance into the receiver,
	// re-identifying atoms and rewriting tuples. Reports false without
	// mutating when other is unusable (nil); true otherwise, even when
	// individual records were skipped.
	AddFrom(other Source, unifyBuiltins bool) bool

	// Subscribe registers a change listener and returns a function that
	// removes it again.
	Subscribe(l Listener) (cancel func())
}
