package instance

import (
	"testing"
)

func pairModel(t *testing.T) *Model {
	t.Helper()
	m := newTestModel()
	m.AddAtom(Atom{ID: "A", Type: "T", Label: "A"})
	m.AddAtom(Atom{ID: "B", Type: "T", Label: "B"})
	if err := m.AddTuple("r", Tuple{Atoms: []string{"A", "B"}, Types: []string{"T", "T"}}); err != nil {
		t.Fatalf("AddTuple: %v", err)
	}
	return m
}

func TestAddFromNil(t *testing.T) {
	m := newTestModel()
	if m.AddFrom(nil, false) {
		t.Error("AddFrom(nil) = true, want false")
	}
	if m.AtomCount() != 0 {
		t.Error("AddFrom(nil) mutated the receiver")
	}
}

func TestAddFromTwiceDoublesAtoms(t *testing.T) {
	src := pairModel(t)
	dst := newTestModel()

	if !dst.AddFrom(src, false) {
		t.Fatal("first AddFrom = false, want true")
	}
	if !dst.AddFrom(src, false) {
		t.Fatal("second AddFrom = false, want true")
	}

	if got := dst.AtomCount(); got != 4 {
		t.Errorf("AtomCount() = %d, want 4 (no unification, no id reuse)", got)
	}

	// Each pass contributed its own rewritten tuple.
	r, ok := dst.Relation("r")
	if !ok {
		t.Fatal("relation r missing after merge")
	}
	if len(r.Tuples) != 2 {
		t.Errorf("tuples = %d, want 2", len(r.Tuples))
	}
}

func TestAddFromRemapsIDs(t *testing.T) {
	src := pairModel(t)
	dst := pairModel(t)

	if !dst.AddFrom(src, false) {
		t.Fatal("AddFrom = false, want true")
	}

	if got := dst.AtomCount(); got != 4 {
		t.Fatalf("AtomCount() = %d, want 4", got)
	}

	// The source ids collide with the destination's, so the merged atoms
	// must carry fresh ids while keeping their labels.
	labels := map[string]int{}
	for _, a := range dst.Atoms() {
		labels[a.Label]++
	}
	if labels["A"] != 2 || labels["B"] != 2 {
		t.Errorf("labels = %v, want two of each", labels)
	}

	// Tuples were rewritten through the id map: the merged tuple must not
	// reference the destination's original atoms.
	r, _ := dst.Relation("r")
	if len(r.Tuples) != 2 {
		t.Fatalf("tuples = %d, want 2", len(r.Tuples))
	}
	for _, id := range r.Tuples[1].Atoms {
		if id == "A" || id == "B" {
			t.Errorf("merged tuple references destination atom %q, want remapped id", id)
		}
		if !dst.HasAtom(id) {
			t.Errorf("merged tuple references unknown atom %q", id)
		}
	}
}

func TestAddFromUnifiesBuiltins(t *testing.T) {
	src := newTestModel()
	src.AddTypedAtom(Atom{ID: "int_5", Type: "int", Label: "5"}, []string{"int", "object"}, true)
	src.AddTypedAtom(Atom{ID: "n0", Type: "Node", Label: "Node_0"}, []string{"Node", "object"}, false)
	src.AddTuple("val", Tuple{Atoms: []string{"n0", "int_5"}, Types: []string{"Node", "int"}})

	dst := newTestModel()
	dst.AddTypedAtom(Atom{ID: "int_5", Type: "int", Label: "5"}, []string{"int", "object"}, true)

	if !dst.AddFrom(src, true) {
		t.Fatal("AddFrom = false, want true")
	}

	// The builtin 5 was absorbed by the existing atom; only the Node atom
	// was copied.
	if got := dst.AtomCount(); got != 2 {
		t.Errorf("AtomCount() = %d, want 2 (builtin unified)", got)
	}

	r, ok := dst.Relation("val")
	if !ok {
		t.Fatal("relation val missing")
	}
	if len(r.Tuples) != 1 {
		t.Fatalf("tuples = %d, want 1", len(r.Tuples))
	}
	if got := r.Tuples[0].Atoms[1]; got != "int_5" {
		t.Errorf("tuple value column = %q, want the existing int_5", got)
	}
}

func TestAddFromWithoutUnificationCopiesBuiltins(t *testing.T) {
	src := newTestModel()
	src.AddTypedAtom(Atom{ID: "int_5", Type: "int", Label: "5"}, []string{"int", "object"}, true)

	dst := newTestModel()
	dst.AddTypedAtom(Atom{ID: "int_5", Type: "int", Label: "5"}, []string{"int", "object"}, true)

	if !dst.AddFrom(src, false) {
		t.Fatal("AddFrom = false, want true")
	}
	if got := dst.AtomCount(); got != 2 {
		t.Errorf("AtomCount() = %d, want 2 (no unification requested)", got)
	}
}

func TestAddFromDedupesTuples(t *testing.T) {
	src := newTestModel()
	src.AddTypedAtom(Atom{ID: "int_5", Type: "int", Label: "5"}, []string{"int", "object"}, true)
	src.AddTypedAtom(Atom{ID: "int_7", Type: "int", Label: "7"}, []string{"int", "object"}, true)
	src.AddTuple("less", Tuple{Atoms: []string{"int_5", "int_7"}, Types: []string{"int", "int"}})

	dst := newTestModel()
	dst.AddFrom(src, true)
	dst.AddFrom(src, true)

	// With builtins unified both passes rewrite to the same tuple; the
	// second insert is a structural duplicate and is dropped.
	r, ok := dst.Relation("less")
	if !ok {
		t.Fatal("relation less missing")
	}
	if len(r.Tuples) != 1 {
		t.Errorf("tuples = %d, want 1 (duplicate dropped)", len(r.Tuples))
	}
}

func TestAddFromCarriesTypesAndEmptyRelations(t *testing.T) {
	src := newTestModel()
	src.EnsureType("Ghost", []string{"Ghost", "object"}, false)
	src.EnsureRelation("empty", "empty", []string{"Ghost"})

	dst := newTestModel()
	if !dst.AddFrom(src, false) {
		t.Fatal("AddFrom = false, want true")
	}

	found := false
	for _, tp := range dst.Types() {
		if tp.ID == "Ghost" {
			found = true
			if tp.TopLevel() != "object" {
				t.Errorf("Ghost top-level = %q, want object", tp.TopLevel())
			}
		}
	}
	if !found {
		t.Error("empty type Ghost not carried over")
	}

	if _, ok := dst.Relation("empty"); !ok {
		t.Error("empty relation not carried over")
	}
}
