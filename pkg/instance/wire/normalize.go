package wire

import (
	"github.com/charmbracelet/log"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/instance"
)

// Options controls import normalization. The zero value disables every
// pass; use [DefaultOptions] for the standard behavior.
type Options struct {
	// MergeRelations combines same-named relation entries into one,
	// deduplicating tuples by structural equality. When disabled, a
	// repeated relation id is a MALFORMED_INPUT error and a repeated
	// tuple inside a single relation entry is a DUPLICATE_TUPLE error.
	MergeRelations bool

	// InferTypes derives type entries from atom types when the document's
	// types section omits them. When disabled, an atom referencing an
	// undeclared type is a MALFORMED_INPUT error.
	InferTypes bool

	// ValidateReferences rejects tuples referencing unknown atoms with
	// DANGLING_REFERENCE. Disabling it is the only way to load data with
	// dangling references; such tuples are installed verbatim.
	ValidateReferences bool

	// DeduplicateAtoms drops atoms repeating an earlier id, keeping the
	// first occurrence and logging a warning. When disabled, a repeated id
	// is a DUPLICATE_ID error.
	DeduplicateAtoms bool
}

// DefaultOptions returns the standard import behavior: every normalization
// pass enabled.
func DefaultOptions() Options {
	return Options{
		MergeRelations:     true,
		InferTypes:         true,
		ValidateReferences: true,
		DeduplicateAtoms:   true,
	}
}

// FromDocument loads a decoded document into a fresh instance, applying the
// given normalization options. On any error no instance is returned.
func FromDocument(doc Document, opts Options, logger *log.Logger) (*Instance, error) {
	in := New(logger)

	declared := make(map[string]TypeDoc, len(doc.Types))
	for _, td := range doc.Types {
		if td.ID == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "type entry with empty id")
		}
		declared[td.ID] = td
		// Member lists are rebuilt from the atoms section; the declared
		// hierarchy and builtin flag are what matter here.
		in.Model.EnsureType(td.ID, td.Types, td.Builtin)
	}

	if err := loadAtoms(in, doc.Atoms, declared, opts); err != nil {
		return nil, err
	}
	if err := loadRelations(in, doc.Relations, opts); err != nil {
		return nil, err
	}
	return in, nil
}

func loadAtoms(in *Instance, atoms []AtomDoc, declared map[string]TypeDoc, opts Options) error {
	seen := make(map[string]bool, len(atoms))
	for _, ad := range atoms {
		if ad.ID == "" {
			return errors.New(errors.ErrCodeMalformedInput, "atom with empty id")
		}
		if ad.Type == "" {
			return errors.New(errors.ErrCodeMalformedInput, "atom %q has no type", ad.ID)
		}
		if seen[ad.ID] {
			if !opts.DeduplicateAtoms {
				return errors.New(errors.ErrCodeDuplicateID, "atom %q appears more than once", ad.ID)
			}
			in.Model.Logger().Warn("dropping repeated atom id, keeping first", "id", ad.ID)
			continue
		}
		seen[ad.ID] = true

		td, known := declared[ad.Type]
		if !known && !opts.InferTypes {
			return errors.New(errors.ErrCodeMalformedInput,
				"atom %q references undeclared type %q and type inference is disabled", ad.ID, ad.Type)
		}

		label := ad.Label
		if label == "" {
			label = ad.ID
		}
		atom := instance.Atom{ID: ad.ID, Type: ad.Type, Label: label}
		if _, err := in.Model.AddTypedAtom(atom, td.Types, td.Builtin); err != nil {
			return err
		}
	}
	return nil
}

func loadRelations(in *Instance, relations []RelationDoc, opts Options) error {
	loaded := make(map[string]*relationAcc)
	var order []string

	for _, rd := range relations {
		if rd.ID == "" {
			return errors.New(errors.ErrCodeMalformedInput, "relation entry with empty id")
		}
		name := rd.Name
		if name == "" {
			name = rd.ID
		}

		acc, exists := loaded[name]
		if exists && !opts.MergeRelations {
			return errors.New(errors.ErrCodeMalformedInput,
				"relation %q appears more than once and relation merging is disabled", name)
		}
		if !exists {
			acc = &relationAcc{id: rd.ID, name: name}
			loaded[name] = acc
			order = append(order, name)
		}

		for i := len(acc.types); i < len(rd.Types); i++ {
			acc.types = append(acc.types, rd.Types[i])
		}
		for _, td := range rd.Tuples {
			t, err := in.normalizeTuple(rd, td)
			if err != nil {
				return err
			}
			if acc.has(t) {
				if !opts.MergeRelations {
					return errors.New(errors.ErrCodeDuplicateTuple,
						"relation %q repeats tuple %v and relation merging is disabled", name, t.Atoms)
				}
				in.Model.Logger().Debug("dropping duplicate tuple", "relation", name, "atoms", t.Atoms)
				continue
			}
			acc.tuples = append(acc.tuples, t)
		}
	}

	for _, name := range order {
		acc := loaded[name]
		if opts.ValidateReferences {
			in.Model.EnsureRelation(acc.id, acc.name, acc.types)
			for _, t := range acc.tuples {
				if err := in.Model.AddTuple(acc.name, t); err != nil {
					return err
				}
			}
			continue
		}
		// Reference checking disabled: install the snapshot verbatim so
		// dangling tuples survive the load.
		in.Model.RestoreRelation(instance.Relation{
			ID:     acc.id,
			Name:   acc.name,
			Types:  acc.types,
			Tuples: acc.tuples,
		})
	}
	return nil
}

// relationAcc accumulates one relation's columns and tuples across every
// document entry that contributes to it.
type relationAcc struct {
	id     string
	name   string
	types  []string
	tuples []instance.Tuple
}

func (a *relationAcc) has(t instance.Tuple) bool {
	for _, existing := range a.tuples {
		if existing.Equal(t) {
			return true
		}
	}
	return false
}

// normalizeTuple validates tuple shape and fills an omitted type list from
// the referenced atoms' types.
func (in *Instance) normalizeTuple(rd RelationDoc, td TupleDoc) (instance.Tuple, error) {
	if len(td.Atoms) == 0 {
		return instance.Tuple{}, errors.New(errors.ErrCodeMalformedInput,
			"relation %q contains a tuple with no atoms", rd.ID)
	}

	types := td.Types
	if len(types) == 0 {
		types = make([]string, len(td.Atoms))
		for i, id := range td.Atoms {
			if a, ok := in.Model.Atom(id); ok {
				types[i] = a.Type
			} else if i < len(rd.Types) {
				types[i] = rd.Types[i]
			}
		}
	}
	if len(td.Atoms) != len(types) {
		return instance.Tuple{}, errors.New(errors.ErrCodeMalformedInput,
			"relation %q tuple has %d atoms but %d types", rd.ID, len(td.Atoms), len(types))
	}

	return instance.Tuple{Atoms: td.Atoms, Types: types}, nil
}
