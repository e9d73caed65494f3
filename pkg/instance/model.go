package instance

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/relgraph/relgraph/pkg/errors"
)

// Model is the shared atom/type/relation store embedded by every adapter.
// It owns the canonical records, keeps insertion order for deterministic
// snapshots, and implements the representation-independent algorithms:
// cascading removal, projection, merge, and graph materialization.
//
// The Model's own mutators are strict: duplicate ids, missing atoms, and
// dangling references fail with coded errors. Lenient adapters wrap these
// mutators with their own policy instead of weakening them here.
//
// The zero value is not usable - use NewModel.
type Model struct {
	atoms     map[string]*Atom
	atomOrder []string
	types     map[string]*Type
	typeOrder []string
	relations map[string]*Relation // keyed by relation id
	relByName map[string]string    // name -> id, since lookups accept either
	relOrder  []string

	listeners listenerSet
	logger    *log.Logger
	seq       int // fresh-id sequence, owned by this instance
}

// NewModel creates an empty model. A nil logger falls back to the package
// default logger.
func NewModel(logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	return &Model{
		atoms:     make(map[string]*Atom),
		types:     make(map[string]*Type),
		relations: make(map[string]*Relation),
		relByName: make(map[string]string),
		logger:    logger,
	}
}

// Logger returns the logger the instance reports on.
func (m *Model) Logger() *log.Logger { return m.logger }

// ===== Snapshots =====

// Atoms returns a snapshot of all atoms in insertion order.
func (m *Model) Atoms() []Atom {
	out := make([]Atom, 0, len(m.atomOrder))
	for _, id := range m.atomOrder {
		out = append(out, *m.atoms[id])
	}
	return out
}

// Types returns a deep snapshot of all type entries in insertion order.
func (m *Model) Types() []Type {
	out := make([]Type, 0, len(m.typeOrder))
	for _, id := range m.typeOrder {
		out = append(out, m.types[id].Clone())
	}
	return out
}

// Relations returns a deep snapshot of all relations in insertion order.
func (m *Model) Relations() []Relation {
	out := make([]Relation, 0, len(m.relOrder))
	for _, id := range m.relOrder {
		out = append(out, m.relations[id].Clone())
	}
	return out
}

// Atom returns a copy of the atom with the given id.
func (m *Model) Atom(id string) (Atom, bool) {
	a, ok := m.atoms[id]
	if !ok {
		return Atom{}, false
	}
	return *a, true
}

// HasAtom reports whether an atom with the given id exists.
func (m *Model) HasAtom(id string) bool {
	_, ok := m.atoms[id]
	return ok
}

// Relation returns a deep copy of the relation with the given id or name.
func (m *Model) Relation(idOrName string) (Relation, bool) {
	r, ok := m.lookupRelation(idOrName)
	if !ok {
		return Relation{}, false
	}
	return r.Clone(), true
}

// AtomCount returns the number of atoms in the instance.
func (m *Model) AtomCount() int { return len(m.atoms) }

// TypeCount returns the number of type entries in the instance.
func (m *Model) TypeCount() int { return len(m.types) }

// RelationCount returns the number of relations in the instance.
func (m *Model) RelationCount() int { return len(m.relations) }

// TupleCount returns the total number of tuples across all relations.
func (m *Model) TupleCount() int {
	n := 0
	for _, r := range m.relations {
		n += len(r.Tuples)
	}
	return n
}

// AtomType returns the type entry of the given atom.
// Returns a NOT_FOUND error if the atom or its type entry is missing.
func (m *Model) AtomType(id string) (Type, error) {
	a, ok := m.atoms[id]
	if !ok {
		return Type{}, errors.New(errors.ErrCodeNotFound, "atom %q not found", id)
	}
	t, ok := m.types[a.Type]
	if !ok {
		return Type{}, errors.New(errors.ErrCodeNotFound, "type %q of atom %q not found", a.Type, id)
	}
	return t.Clone(), nil
}

// TopLevelOf resolves the top-level type of a type id: the last element of
// its ancestor chain, or the id itself when no entry exists.
func (m *Model) TopLevelOf(typeID string) string {
	if t, ok := m.types[typeID]; ok {
		return t.TopLevel()
	}
	return typeID
}

// ===== Mutation =====

// AddAtom inserts an atom with a trivial single-element type hierarchy,
// creating the type entry on demand. Returns the stored atom.
// Fails with DUPLICATE_ID if the id is already present and MALFORMED_INPUT
// if the id is empty.
func (m *Model) AddAtom(a Atom) (Atom, error) {
	return m.AddTypedAtom(a, nil, false)
}

// AddTypedAtom inserts an atom whose type entry, if created here, uses the
// given ancestor chain and builtin flag. A nil hierarchy defaults to the
// trivial chain containing only the type itself. An existing type entry is
// left untouched.
func (m *Model) AddTypedAtom(a Atom, hierarchy []string, builtin bool) (Atom, error) {
	if a.ID == "" {
		return Atom{}, errors.New(errors.ErrCodeMalformedInput, "atom id cannot be empty")
	}
	if a.Type == "" {
		return Atom{}, errors.New(errors.ErrCodeMalformedInput, "atom %q has no type", a.ID)
	}
	if _, exists := m.atoms[a.ID]; exists {
		return Atom{}, errors.New(errors.ErrCodeDuplicateID, "atom %q already exists", a.ID)
	}

	t := m.EnsureType(a.Type, hierarchy, builtin)
	t.Atoms = append(t.Atoms, a.ID)

	stored := a
	m.atoms[a.ID] = &stored
	m.atomOrder = append(m.atomOrder, a.ID)

	m.emitAtomAdded(a)
	return a, nil
}

// RemoveAtom deletes the atom, removes it from its type's member list, and
// removes every tuple (in every relation) that references it in any
// position. Partial column removal is not performed; referencing tuples
// vanish whole. Returns NOT_FOUND if the atom is absent.
func (m *Model) RemoveAtom(id string) error {
	a, ok := m.atoms[id]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "atom %q not found", id)
	}
	removed := *a

	if t, ok := m.types[a.Type]; ok {
		t.Atoms = slices.DeleteFunc(t.Atoms, func(member string) bool { return member == id })
	}

	// Collect cascaded tuples first so events fire only after the whole
	// mutation has completed.
	type cascaded struct {
		relation string
		tuple    Tuple
	}
	var gone []cascaded
	for _, rid := range m.relOrder {
		r := m.relations[rid]
		r.Tuples = slices.DeleteFunc(r.Tuples, func(t Tuple) bool {
			if t.Contains(id) {
				gone = append(gone, cascaded{relation: r.Name, tuple: t})
				return true
			}
			return false
		})
	}

	delete(m.atoms, id)
	m.atomOrder = slices.DeleteFunc(m.atomOrder, func(s string) bool { return s == id })

	for _, c := range gone {
		m.emitTupleRemoved(c.relation, c.tuple)
	}
	m.emitAtomRemoved(removed)
	return nil
}

// AddTuple inserts a tuple into the named relation. The relation is created
// lazily on first use (id and name both set to the given name) and its
// declared column types grow to cover a wider tuple.
//
// Fails with MALFORMED_INPUT when the atom and type lists differ in length
// or are empty, DANGLING_REFERENCE when a referenced atom does not exist,
// and DUPLICATE_TUPLE when a structurally equal tuple is already present.
func (m *Model) AddTuple(relation string, t Tuple) error {
	if err := m.checkTuple(t); err != nil {
		return err
	}

	r, ok := m.lookupRelation(relation)
	if !ok {
		r = m.EnsureRelation(relation, relation, nil)
	}
	if r.HasTuple(t) {
		return errors.New(errors.ErrCodeDuplicateTuple, "relation %q already contains tuple %v", r.Name, t.Atoms)
	}

	// Widen the declared column types to the widest tuple seen.
	for i := len(r.Types); i < len(t.Types); i++ {
		r.Types = append(r.Types, t.Types[i])
	}

	stored := t.Clone()
	r.Tuples = append(r.Tuples, stored)

	m.emitTupleAdded(r.Name, stored)
	return nil
}

// RemoveTuple deletes the structurally equal tuple from the named relation.
// Returns NOT_FOUND if the relation or the exact tuple is absent.
func (m *Model) RemoveTuple(relation string, t Tuple) error {
	r, ok := m.lookupRelation(relation)
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "relation %q not found", relation)
	}

	idx := slices.IndexFunc(r.Tuples, func(existing Tuple) bool { return existing.Equal(t) })
	if idx < 0 {
		return errors.New(errors.ErrCodeNotFound, "relation %q has no tuple %v", r.Name, t.Atoms)
	}

	removed := r.Tuples[idx]
	r.Tuples = slices.Delete(r.Tuples, idx, idx+1)

	m.emitTupleRemoved(r.Name, removed)
	return nil
}

// EnsureType returns the type entry with the given id, creating it if
// absent. A freshly created entry uses the given ancestor chain (defaulting
// to the trivial [id] chain) and builtin flag; an existing entry is returned
// unchanged.
func (m *Model) EnsureType(id string, hierarchy []string, builtin bool) *Type {
	if t, ok := m.types[id]; ok {
		return t
	}
	if len(hierarchy) == 0 {
		hierarchy = []string{id}
	}
	t := &Type{
		ID:      id,
		Types:   slices.Clone(hierarchy),
		Builtin: builtin,
	}
	m.types[id] = t
	m.typeOrder = append(m.typeOrder, id)
	return t
}

// EnsureRelation returns the relation with the given id or name, creating
// an empty one if absent. A relation created here starts with the given
// declared column types; an existing relation is returned unchanged, so an
// emptied relation stays distinguishable from one never created.
func (m *Model) EnsureRelation(id, name string, columnTypes []string) *Relation {
	if r, ok := m.lookupRelation(id); ok {
		return r
	}
	if name == "" {
		name = id
	}
	r := &Relation{
		ID:    id,
		Name:  name,
		Types: slices.Clone(columnTypes),
	}
	m.relations[id] = r
	if _, taken := m.relByName[name]; !taken {
		m.relByName[name] = id
	}
	m.relOrder = append(m.relOrder, id)
	return r
}

// RestoreRelation installs a relation snapshot verbatim, without reference
// validation or change events. Loaders use it to bring in externally
// supplied data whose reference checking has been explicitly disabled; the
// regular mutation path is [Model.AddTuple]. An existing relation with the
// same id is replaced.
func (m *Model) RestoreRelation(r Relation) {
	stored := r.Clone()
	if stored.Name == "" {
		stored.Name = stored.ID
	}
	if _, exists := m.relations[stored.ID]; !exists {
		m.relOrder = append(m.relOrder, stored.ID)
	}
	m.relations[stored.ID] = &stored
	if _, taken := m.relByName[stored.Name]; !taken {
		m.relByName[stored.Name] = stored.ID
	}
}

// Subscribe registers a change listener and returns a cancel function that
// removes it again. Cancel is idempotent.
func (m *Model) Subscribe(l Listener) func() {
	return m.listeners.subscribe(l)
}

// ===== Internal helpers =====

// lookupRelation resolves a relation by id first, then by name.
func (m *Model) lookupRelation(idOrName string) (*Relation, bool) {
	if r, ok := m.relations[idOrName]; ok {
		return r, true
	}
	if id, ok := m.relByName[idOrName]; ok {
		return m.relations[id], true
	}
	return nil, false
}

// checkTuple validates tuple shape and reference integrity.
func (m *Model) checkTuple(t Tuple) error {
	if len(t.Atoms) == 0 {
		return errors.New(errors.ErrCodeMalformedInput, "tuple has no atoms")
	}
	if len(t.Atoms) != len(t.Types) {
		return errors.New(errors.ErrCodeMalformedInput,
			"tuple has %d atoms but %d types", len(t.Atoms), len(t.Types))
	}
	for _, id := range t.Atoms {
		if _, ok := m.atoms[id]; !ok {
			return errors.New(errors.ErrCodeDanglingReference, "tuple references unknown atom %q", id)
		}
	}
	return nil
}

// FreshID returns an atom id unique within this instance, advancing the
// instance-scoped sequence past any ids already taken.
func (m *Model) FreshID() string {
	for {
		id := fmt.Sprintf("atom_%d", m.seq)
		m.seq++
		if _, taken := m.atoms[id]; !taken {
			return id
		}
	}
}

// displayLabel returns the atom's label, falling back to its id.
func (m *Model) displayLabel(atomID string) string {
	if a, ok := m.atoms[atomID]; ok && a.Label != "" {
		return a.Label
	}
	return atomID
}

// isBuiltinAtom reports whether the atom's type entry is builtin.
func (m *Model) isBuiltinAtom(a *Atom) bool {
	t, ok := m.types[a.Type]
	return ok && t.Builtin
}
