package wire

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/instance"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

const pairJSON = `{
  "atoms": [
    {"id": "A", "type": "T", "label": "A"},
    {"id": "B", "type": "T", "label": "B"}
  ],
  "relations": [
    {"id": "r", "name": "r", "types": ["T", "T"],
     "tuples": [{"atoms": ["A", "B"], "types": ["T", "T"]}]}
  ]
}`

func loadPair(t *testing.T) *Instance {
	t.Helper()
	in, err := ReadJSON(strings.NewReader(pairJSON), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return in
}

func TestReadJSONLoadsAtomsAndRelations(t *testing.T) {
	in := loadPair(t)

	if got := in.AtomCount(); got != 2 {
		t.Errorf("AtomCount() = %d, want 2", got)
	}
	if got := in.RelationCount(); got != 1 {
		t.Errorf("RelationCount() = %d, want 1", got)
	}
	if got := in.TupleCount(); got != 1 {
		t.Errorf("TupleCount() = %d, want 1", got)
	}

	typ, err := in.AtomType("A")
	if err != nil {
		t.Fatalf("AtomType(A): %v", err)
	}
	if typ.ID != "T" {
		t.Errorf("AtomType(A).ID = %q, want T", typ.ID)
	}
	if got := typ.TopLevel(); got != "T" {
		t.Errorf("TopLevel() = %q, want T", got)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	tests := []struct {
		name string
		json string
		want errors.Code
	}{
		{
			name: "InvalidJSON",
			json: `{"atoms": [`,
			want: errors.ErrCodeMalformedInput,
		},
		{
			name: "EmptyAtomID",
			json: `{"atoms": [{"id": "", "type": "T"}], "relations": []}`,
			want: errors.ErrCodeMalformedInput,
		},
		{
			name: "MissingAtomType",
			json: `{"atoms": [{"id": "A"}], "relations": []}`,
			want: errors.ErrCodeMalformedInput,
		},
		{
			name: "MismatchedTuple",
			json: `{"atoms": [{"id": "A", "type": "T"}],
			        "relations": [{"id": "r", "tuples": [{"atoms": ["A"], "types": ["T", "T"]}]}]}`,
			want: errors.ErrCodeMalformedInput,
		},
		{
			name: "DanglingReference",
			json: `{"atoms": [{"id": "A", "type": "T"}],
			        "relations": [{"id": "r", "tuples": [{"atoms": ["A", "ghost"], "types": ["T", "T"]}]}]}`,
			want: errors.ErrCodeDanglingReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.json), DefaultOptions(), testLogger())
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want code %v", err, tt.want)
			}
		})
	}
}

func TestDeduplicateAtomsKeepsFirst(t *testing.T) {
	doc := `{
	  "atoms": [
	    {"id": "A", "type": "T", "label": "first"},
	    {"id": "A", "type": "T", "label": "second"}
	  ],
	  "relations": []
	}`

	in, err := ReadJSON(strings.NewReader(doc), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got := in.AtomCount(); got != 1 {
		t.Fatalf("AtomCount() = %d, want 1", got)
	}
	a, _ := in.Atom("A")
	if a.Label != "first" {
		t.Errorf("kept label = %q, want first", a.Label)
	}

	opts := DefaultOptions()
	opts.DeduplicateAtoms = false
	if _, err := ReadJSON(strings.NewReader(doc), opts, testLogger()); !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Errorf("with dedup disabled, error = %v, want DUPLICATE_ID", err)
	}
}

func TestMergeRelationsDeduplicatesTuples(t *testing.T) {
	doc := `{
	  "atoms": [
	    {"id": "A", "type": "T"},
	    {"id": "B", "type": "T"}
	  ],
	  "relations": [
	    {"id": "r", "name": "r", "types": ["T", "T"],
	     "tuples": [{"atoms": ["A", "B"], "types": ["T", "T"]}]},
	    {"id": "r2", "name": "r", "types": ["T", "T"],
	     "tuples": [
	       {"atoms": ["A", "B"], "types": ["T", "T"]},
	       {"atoms": ["B", "A"], "types": ["T", "T"]}
	     ]}
	  ]
	}`

	in, err := ReadJSON(strings.NewReader(doc), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got := in.RelationCount(); got != 1 {
		t.Errorf("RelationCount() = %d, want 1", got)
	}
	if got := in.TupleCount(); got != 2 {
		t.Errorf("TupleCount() = %d, want 2", got)
	}

	opts := DefaultOptions()
	opts.MergeRelations = false
	if _, err := ReadJSON(strings.NewReader(doc), opts, testLogger()); !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("with merging disabled, error = %v, want MALFORMED_INPUT", err)
	}
}

func TestRepeatedTupleInSingleRelationEntry(t *testing.T) {
	doc := `{
	  "atoms": [
	    {"id": "A", "type": "T"},
	    {"id": "B", "type": "T"}
	  ],
	  "relations": [
	    {"id": "r", "name": "r", "types": ["T", "T"],
	     "tuples": [
	       {"atoms": ["A", "B"], "types": ["T", "T"]},
	       {"atoms": ["A", "B"], "types": ["T", "T"]}
	     ]}
	  ]
	}`

	in, err := ReadJSON(strings.NewReader(doc), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got := in.TupleCount(); got != 1 {
		t.Errorf("TupleCount() = %d, want 1", got)
	}

	opts := DefaultOptions()
	opts.MergeRelations = false
	if _, err := ReadJSON(strings.NewReader(doc), opts, testLogger()); !errors.Is(err, errors.ErrCodeDuplicateTuple) {
		t.Errorf("with merging disabled, error = %v, want DUPLICATE_TUPLE", err)
	}
}

func TestValidateReferencesDisabledLoadsDanglingTuples(t *testing.T) {
	doc := `{
	  "atoms": [{"id": "A", "type": "T"}],
	  "relations": [
	    {"id": "r", "tuples": [{"atoms": ["A", "ghost"], "types": ["T", "T"]}]}
	  ]
	}`

	opts := DefaultOptions()
	opts.ValidateReferences = false
	in, err := ReadJSON(strings.NewReader(doc), opts, testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got := in.TupleCount(); got != 1 {
		t.Errorf("TupleCount() = %d, want 1 (dangling tuple kept verbatim)", got)
	}
}

func TestInferTypesDisabledRejectsUndeclared(t *testing.T) {
	doc := `{"atoms": [{"id": "A", "type": "T"}], "relations": []}`

	opts := DefaultOptions()
	opts.InferTypes = false
	if _, err := ReadJSON(strings.NewReader(doc), opts, testLogger()); !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("ReadJSON() error = %v, want MALFORMED_INPUT", err)
	}
}

func TestDeclaredTypeHierarchyIsUsed(t *testing.T) {
	doc := `{
	  "atoms": [{"id": "M0", "type": "Manager", "label": "M0"}],
	  "relations": [],
	  "types": [{"id": "Manager", "types": ["Manager", "Employee", "Person"]}]
	}`

	in, err := ReadJSON(strings.NewReader(doc), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	typ, err := in.AtomType("M0")
	if err != nil {
		t.Fatalf("AtomType: %v", err)
	}
	if got := typ.TopLevel(); got != "Person" {
		t.Errorf("TopLevel() = %q, want Person", got)
	}
}

func TestDuplicateAddAtomFailsWithoutMutating(t *testing.T) {
	in := loadPair(t)

	if _, err := in.AddAtom(instance.Atom{ID: "A", Type: "T", Label: "again"}); !errors.Is(err, errors.ErrCodeDuplicateID) {
		t.Fatalf("AddAtom() error = %v, want DUPLICATE_ID", err)
	}
	if got := in.AtomCount(); got != 2 {
		t.Errorf("AtomCount() = %d, want 2", got)
	}
}

func TestReifyRoundTrip(t *testing.T) {
	in := loadPair(t)

	out, err := in.Reify()
	if err != nil {
		t.Fatalf("Reify: %v", err)
	}

	back, err := ReadJSON(strings.NewReader(out), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("re-import reified output: %v", err)
	}
	if got := back.AtomCount(); got != 2 {
		t.Errorf("AtomCount() = %d, want 2", got)
	}
	if got := back.RelationCount(); got != 1 {
		t.Errorf("RelationCount() = %d, want 1", got)
	}
	if got := back.TupleCount(); got != 1 {
		t.Errorf("TupleCount() = %d, want 1", got)
	}
}

func TestWriteJSONReadJSONRoundTrip(t *testing.T) {
	in := loadPair(t)

	var sb strings.Builder
	if err := WriteJSON(in, &sb); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	back, err := ReadJSON(strings.NewReader(sb.String()), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got, want := back.AtomCount(), in.AtomCount(); got != want {
		t.Errorf("AtomCount() = %d, want %d", got, want)
	}
	if got, want := back.TupleCount(), in.TupleCount(); got != want {
		t.Errorf("TupleCount() = %d, want %d", got, want)
	}
}

func TestBSONRoundTrip(t *testing.T) {
	in := loadPair(t)

	data, err := EncodeBSON(in)
	if err != nil {
		t.Fatalf("EncodeBSON: %v", err)
	}
	back, err := ReadBSON(data, DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadBSON: %v", err)
	}
	if got := back.AtomCount(); got != 2 {
		t.Errorf("AtomCount() = %d, want 2", got)
	}
	if got := back.TupleCount(); got != 1 {
		t.Errorf("TupleCount() = %d, want 1", got)
	}
}

func TestGraphFromWireInstance(t *testing.T) {
	in := loadPair(t)

	g := in.Graph(instance.GraphOptions{})
	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
	e := g.Edges()[0]
	if e.From != "A" || e.To != "B" || e.Label != "r" {
		t.Errorf("edge = %s -> %s (%s), want A -> B (r)", e.From, e.To, e.Label)
	}
}

func TestProjectReturnsWireInstance(t *testing.T) {
	doc := `{
	  "atoms": [
	    {"id": "Time0", "type": "Time"},
	    {"id": "Time1", "type": "Time"},
	    {"id": "P0", "type": "Person"}
	  ],
	  "relations": []
	}`
	in, err := ReadJSON(strings.NewReader(doc), DefaultOptions(), testLogger())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	proj, err := in.Project([]string{"Time0"})
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	atoms := proj.Atoms()
	if len(atoms) != 1 || atoms[0].ID != "P0" {
		t.Fatalf("projected atoms = %v, want [P0]", atoms)
	}

	// The projection reifies in the wire shape like any other wire instance.
	out, err := proj.Reify()
	if err != nil {
		t.Fatalf("Reify: %v", err)
	}
	var round Document
	if err := json.Unmarshal([]byte(out), &round); err != nil {
		t.Fatalf("reified output is not a wire document: %v", err)
	}
	if len(round.Atoms) != 1 {
		t.Errorf("reified atoms = %d, want 1", len(round.Atoms))
	}
}
