package wire

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/instance"
)

// Instance is the strict JSON/BSON adapter. It embeds the shared
// [instance.Model] without weakening it: every mutator fails fast, exactly
// as the model does.
type Instance struct {
	*instance.Model
}

// New creates an empty wire instance. A nil logger falls back to the
// package default logger.
func New(logger *log.Logger) *Instance {
	return &Instance{Model: instance.NewModel(logger)}
}

// Project returns a new wire instance with the given atoms' sorts collapsed
// out. The receiver is untouched.
func (in *Instance) Project(atomIDs []string) (instance.DataInstance, error) {
	m, err := in.Model.Project(atomIDs)
	if err != nil {
		return nil, err
	}
	return &Instance{Model: m}, nil
}

// Document builds the wire document for the current state: atoms and
// relations in insertion order plus the full types section.
func (in *Instance) Document() Document {
	atoms := in.Model.Atoms()
	relations := in.Model.Relations()
	types := in.Model.Types()

	doc := Document{
		Atoms:     make([]AtomDoc, len(atoms)),
		Relations: make([]RelationDoc, len(relations)),
		Types:     make([]TypeDoc, len(types)),
	}

	for i, a := range atoms {
		doc.Atoms[i] = AtomDoc{ID: a.ID, Type: a.Type, Label: a.Label}
	}
	for i, r := range relations {
		rd := RelationDoc{
			ID:     r.ID,
			Name:   r.Name,
			Types:  r.Types,
			Tuples: make([]TupleDoc, len(r.Tuples)),
		}
		for j, t := range r.Tuples {
			rd.Tuples[j] = TupleDoc{Atoms: t.Atoms, Types: t.Types}
		}
		doc.Relations[i] = rd
	}
	for i, t := range types {
		doc.Types[i] = TypeDoc{ID: t.ID, Types: t.Types, Atoms: t.Atoms, Builtin: t.Builtin}
	}

	return doc
}

// Reify renders the instance back into its own wire shape: the indented
// JSON document.
func (in *Instance) Reify() (string, error) {
	data, err := json.MarshalIndent(in.Document(), "", "  ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "reify instance")
	}
	return string(data), nil
}

var _ instance.DataInstance = (*Instance)(nil)
