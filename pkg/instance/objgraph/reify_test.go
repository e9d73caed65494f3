package objgraph

import (
	"strings"
	"testing"
)

func reify(t *testing.T, in *Instance) string {
	t.Helper()
	out, err := in.Reify()
	if err != nil {
		t.Fatalf("Reify: %v", err)
	}
	return out
}

func TestReifySingleRoot(t *testing.T) {
	in := newTestInstance()
	person := NewObject("Person").
		Set("name", Str("alice")).
		Set("age", Int(30)).
		Set("active", Bool(true))

	if _, err := in.Ingest(person); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got := reify(t, in)
	want := `Person(name="alice", age=30, active=True)`
	if got != want {
		t.Errorf("Reify() = %s, want %s", got, want)
	}
}

func TestReifyNestedObjects(t *testing.T) {
	in := newTestInstance()
	person := NewObject("Person").
		Set("home", NewObject("Addr").Set("city", Str("bergen")))

	if _, err := in.Ingest(person); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got := reify(t, in)
	want := `Person(home=Addr(city="bergen"))`
	if got != want {
		t.Errorf("Reify() = %s, want %s", got, want)
	}
}

func TestReifyFloat(t *testing.T) {
	in := newTestInstance()
	p := NewObject("Point").Set("x", Float(2.5))
	if _, err := in.Ingest(p); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if got, want := reify(t, in), "Point(x=2.5)"; got != want {
		t.Errorf("Reify() = %s, want %s", got, want)
	}
}

func TestReifyNoRoots(t *testing.T) {
	in := newTestInstance()
	x := NewObject("Node")
	x.Set("next", x)
	if _, err := in.Ingest(x); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if got := reify(t, in); got != noRootsMarker {
		t.Errorf("Reify() = %s, want %s", got, noRootsMarker)
	}
}

func TestReifyMultipleRootsListLiteral(t *testing.T) {
	in := newTestInstance()
	if _, err := in.Ingest(NewObject("A")); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if _, err := in.Ingest(NewObject("B")); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if got, want := reify(t, in), "[A(), B()]"; got != want {
		t.Errorf("Reify() = %s, want %s", got, want)
	}
}

func TestReifyCycleMarker(t *testing.T) {
	in := newTestInstance()
	a := NewObject("Node")
	b := NewObject("Node")
	a.Set("next", b)
	b.Set("next", a)
	root := NewObject("List").Set("head", a)

	if _, err := in.Ingest(root); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got := reify(t, in)
	if !strings.Contains(got, cyclePrefix) {
		t.Errorf("Reify() = %s, want a cycle marker inside", got)
	}
	if !strings.HasPrefix(got, "List(head=Node(next=Node(next=") {
		t.Errorf("Reify() = %s, want the chain reconstructed up to the cycle", got)
	}
}

func TestReifySharedSubstructureRendersTwice(t *testing.T) {
	// Sharing is not a cycle: the visited set is path-local, so a shared
	// object appears fully reified under both attributes.
	in := newTestInstance()
	shared := NewObject("Addr").Set("city", Str("bergen"))
	p := NewObject("Person").Set("home", shared).Set("work", shared)

	if _, err := in.Ingest(p); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	got := reify(t, in)
	if strings.Count(got, `Addr(city="bergen")`) != 2 {
		t.Errorf("Reify() = %s, want the shared Addr rendered under both attributes", got)
	}
}

func TestReifySynthesizedAtomFallsBackToEdges(t *testing.T) {
	// Atoms added after ingestion have no remembered source object; their
	// calls are rebuilt purely from outgoing relation edges.
	in := newTestInstance()
	owner, _ := in.AddAtom(Atom{Type: "Thing"})
	val, _ := in.AddAtom(Atom{Type: "str", Label: "x"})
	if err := in.AddTuple("tag", Tuple{Atoms: []string{owner.ID, val.ID}, Types: []string{"Thing", "str"}}); err != nil {
		t.Fatalf("AddTuple: %v", err)
	}

	if _, ok := in.Origin(owner.ID); ok {
		t.Fatal("synthesized atom should have no origin")
	}
	if got, want := reify(t, in), `Thing(tag="x")`; got != want {
		t.Errorf("Reify() = %s, want %s", got, want)
	}
}

func TestReifyMultiValuedAttributeRendersList(t *testing.T) {
	in := newTestInstance()
	owner, _ := in.AddAtom(Atom{Type: "Bag"})
	a, _ := in.AddAtom(Atom{Type: "int", Label: "1"})
	b, _ := in.AddAtom(Atom{Type: "int", Label: "2"})
	for _, v := range []string{a.ID, b.ID} {
		if err := in.AddTuple("items", Tuple{Atoms: []string{owner.ID, v}, Types: []string{"Bag", "int"}}); err != nil {
			t.Fatalf("AddTuple: %v", err)
		}
	}

	if got, want := reify(t, in), "Bag(items=[1, 2])"; got != want {
		t.Errorf("Reify() = %s, want %s", got, want)
	}
}
