package instance

import (
	"slices"

	"github.com/relgraph/relgraph/pkg/errors"
)

// Project builds a new model with the given atoms' sorts collapsed out, in
// the manner of Alloy's project command: each chosen atom becomes implicit
// context, and the entire sort it belongs to disappears from the result.
//
// Each chosen atom's top-level type must be pairwise distinct; two atoms
// sharing one fail with CONFLICTING_PROJECTION. Unknown atom ids fail with
// NOT_FOUND. On any error no partial result is produced.
//
// The semantics, in order:
//
//  1. Every type whose ancestor chain contains a projected top-level type
//     has its member list emptied entirely, not just the chosen atom. Other
//     types drop only the chosen atoms.
//  2. A relation is affected if any declared column type falls under a
//     projected top-level type. Affected relations keep only tuples that
//     contain the chosen atom somewhere, then lose the affected columns
//     from every surviving tuple and from their declared types. Tuples left
//     with zero columns are dropped, and a relation left with no tuples and
//     no columns is dropped whole.
//  3. The final atom set excludes every atom whose top-level type is
//     projected, chosen or not.
//
// The receiver is never mutated.
func (m *Model) Project(atomIDs []string) (*Model, error) {
	// topLevelType -> chosen atom id
	projections := make(map[string]string, len(atomIDs))
	for _, id := range atomIDs {
		a, ok := m.atoms[id]
		if !ok {
			return nil, errors.New(errors.ErrCodeNotFound, "atom %q not found", id)
		}
		top := m.TopLevelOf(a.Type)
		if prev, dup := projections[top]; dup {
			return nil, errors.New(errors.ErrCodeConflictingProjection,
				"atoms %q and %q share top-level type %q", prev, id, top)
		}
		projections[top] = id
	}

	chosen := make(map[string]bool, len(projections))
	for _, id := range projections {
		chosen[id] = true
	}

	res := NewModel(m.logger)

	// Types: affected sorts are emptied whole.
	for _, tid := range m.typeOrder {
		t := m.types[tid]
		nt := &Type{ID: t.ID, Types: slices.Clone(t.Types), Builtin: t.Builtin}
		if !m.typeAffected(t, projections) {
			for _, member := range t.Atoms {
				if !chosen[member] {
					nt.Atoms = append(nt.Atoms, member)
				}
			}
		}
		res.types[tid] = nt
		res.typeOrder = append(res.typeOrder, tid)
	}

	// Relations: column elimination.
	for _, rid := range m.relOrder {
		r := m.relations[rid]
		if nr, keep := m.projectRelation(r, projections); keep {
			res.relations[rid] = nr
			if _, taken := res.relByName[nr.Name]; !taken {
				res.relByName[nr.Name] = rid
			}
			res.relOrder = append(res.relOrder, rid)
		}
	}

	// Atoms: the whole sort goes, not just the chosen representative.
	for _, aid := range m.atomOrder {
		a := m.atoms[aid]
		if _, projected := projections[m.TopLevelOf(a.Type)]; projected {
			continue
		}
		cp := *a
		res.atoms[aid] = &cp
		res.atomOrder = append(res.atomOrder, aid)
	}

	return res, nil
}

// typeAffected reports whether any element of the type's ancestor chain is
// a projected top-level type.
func (m *Model) typeAffected(t *Type, projections map[string]string) bool {
	for _, ancestor := range t.Types {
		if _, ok := projections[ancestor]; ok {
			return true
		}
	}
	return false
}

// projectRelation applies the column-elimination step to one relation.
// The second return value reports whether the relation survives at all.
func (m *Model) projectRelation(r *Relation, projections map[string]string) (*Relation, bool) {
	// Locate affected columns and the chosen atoms relevant to them.
	affectedCols := make(map[int]bool)
	var relevantChosen []string
	for top, chosenID := range projections {
		hit := false
		for i, colType := range r.Types {
			if m.TopLevelOf(colType) == top {
				affectedCols[i] = true
				hit = true
			}
		}
		if hit {
			relevantChosen = append(relevantChosen, chosenID)
		}
	}

	if len(affectedCols) == 0 {
		clone := r.Clone()
		return &clone, true
	}

	var newTypes []string
	for i, colType := range r.Types {
		if !affectedCols[i] {
			newTypes = append(newTypes, colType)
		}
	}

	var survivors []Tuple
	for _, t := range r.Tuples {
		keep := true
		for _, chosenID := range relevantChosen {
			if !t.Contains(chosenID) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}

		var nt Tuple
		for i := range t.Atoms {
			if affectedCols[i] {
				continue
			}
			nt.Atoms = append(nt.Atoms, t.Atoms[i])
			nt.Types = append(nt.Types, t.Types[i])
		}
		if len(nt.Atoms) == 0 {
			continue
		}
		survivors = append(survivors, nt)
	}

	if len(survivors) == 0 && len(newTypes) == 0 {
		return nil, false
	}

	return &Relation{
		ID:     r.ID,
		Name:   r.Name,
		Types:  newTypes,
		Tuples: survivors,
	}, true
}
