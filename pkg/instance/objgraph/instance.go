package objgraph

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/instance"
)

// Builtin type ids pre-registered on every objgraph instance. "object" is
// the universal root type; every other type's ancestor chain ends in it.
const (
	typeInt    = "int"
	typeFloat  = "float"
	typeStr    = "str"
	typeBool   = "bool"
	typeObject = "object"
)

// Atom and Tuple are re-exported for adapter callers.
type (
	Atom  = instance.Atom
	Tuple = instance.Tuple
)

// Instance is the lenient foreign-object adapter. Introspected runtime
// objects are inherently best-effort, so mutation here logs and skips where
// the wire adapter would fail: atom ids are assigned internally (raw id
// collisions are never exposed to ingestion), removing a missing atom is a
// no-op, and a tuple referencing an unknown atom is warned about and
// dropped rather than aborting the whole ingestion.
type Instance struct {
	*instance.Model

	counters       map[string]int     // per-type label counters, instance-scoped
	origins        map[string]*Object // atom id -> ingested source object
	includePrivate bool
}

// Option configures an objgraph instance.
type Option func(*Instance)

// WithPrivateAttrs makes ingestion descend into private and dunder
// attribute names instead of skipping them.
func WithPrivateAttrs() Option {
	return func(in *Instance) { in.includePrivate = true }
}

// New creates an empty objgraph instance with the builtin types
// pre-registered, so every atom's type always resolves. A nil logger falls
// back to the package default logger.
func New(logger *log.Logger, opts ...Option) *Instance {
	in := &Instance{
		Model:    instance.NewModel(logger),
		counters: make(map[string]int),
		origins:  make(map[string]*Object),
	}
	for _, opt := range opts {
		opt(in)
	}

	in.Model.EnsureType(typeObject, []string{typeObject}, true)
	for _, id := range []string{typeInt, typeFloat, typeStr, typeBool} {
		in.Model.EnsureType(id, []string{id, typeObject}, true)
	}
	return in
}

// AddAtom inserts a copy of the atom under a freshly generated id; the
// input id is ignored, so ingestion never observes a raw id collision. An
// empty type defaults to "object" and an empty label gets the next per-type
// counter label. Returns the stored atom.
func (in *Instance) AddAtom(a Atom) (Atom, error) {
	if a.Type == "" {
		a.Type = typeObject
	}
	if a.Label == "" {
		a.Label = in.nextLabel(a.Type)
	}
	a.ID = freshID()
	return in.Model.AddTypedAtom(a, in.hierarchyFor(a.Type), false)
}

// RemoveAtom deletes the atom, cascading into its type and every
// referencing tuple. A missing atom is a no-op.
func (in *Instance) RemoveAtom(id string) error {
	err := in.Model.RemoveAtom(id)
	if errors.Is(err, errors.ErrCodeNotFound) {
		in.Logger().Debug("remove of missing atom ignored", "id", id)
		return nil
	}
	delete(in.origins, id)
	return err
}

// AddTuple inserts a tuple into the named relation. A tuple referencing an
// unknown atom is warned about and skipped, and a structural duplicate is
// silently dropped; neither is an error here.
func (in *Instance) AddTuple(relation string, t Tuple) error {
	err := in.Model.AddTuple(relation, t)
	switch {
	case errors.Is(err, errors.ErrCodeDanglingReference):
		in.Logger().Warn("skipping tuple referencing unknown atom", "relation", relation, "atoms", t.Atoms)
		return nil
	case errors.Is(err, errors.ErrCodeDuplicateTuple):
		in.Logger().Debug("skipping duplicate tuple", "relation", relation, "atoms", t.Atoms)
		return nil
	}
	return err
}

// Project returns a new objgraph instance with the given atoms' sorts
// collapsed out. Source-object bookkeeping is carried over for the
// surviving atoms so their reification stays informed. The receiver is
// untouched.
func (in *Instance) Project(atomIDs []string) (instance.DataInstance, error) {
	m, err := in.Model.Project(atomIDs)
	if err != nil {
		return nil, err
	}

	res := &Instance{
		Model:          m,
		counters:       make(map[string]int, len(in.counters)),
		origins:        make(map[string]*Object),
		includePrivate: in.includePrivate,
	}
	for k, v := range in.counters {
		res.counters[k] = v
	}
	for id, obj := range in.origins {
		if m.HasAtom(id) {
			res.origins[id] = obj
		}
	}
	return res, nil
}

// Origin returns the source object an atom was ingested from, if any.
// Atoms synthesized after ingestion have none.
func (in *Instance) Origin(atomID string) (*Object, bool) {
	obj, ok := in.origins[atomID]
	return obj, ok
}

// nextLabel advances the per-type counter and formats the display label.
func (in *Instance) nextLabel(typeID string) string {
	n := in.counters[typeID]
	in.counters[typeID]++
	return fmt.Sprintf("%s_%d", typeID, n)
}

// hierarchyFor builds the ancestor chain for a type: [self, "object"], or
// just ["object"] for the universal root itself.
func (in *Instance) hierarchyFor(typeID string) []string {
	if typeID == typeObject {
		return []string{typeObject}
	}
	return []string{typeID, typeObject}
}

// freshID generates a collision-proof atom id. Ids are internal here; the
// display surface is the label.
func freshID() string {
	return uuid.NewString()
}

var _ instance.DataInstance = (*Instance)(nil)
