package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const pairJSON = `{
  "atoms": [
    {"id": "A", "type": "Person", "label": "alice"},
    {"id": "B", "type": "Person", "label": "bob"}
  ],
  "relations": [
    {"id": "r", "name": "knows", "types": ["Person", "Person"],
     "tuples": [{"atoms": ["A", "B"]}]}
  ]
}`

// execute runs the CLI root command with the given args.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func writeTempInstance(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "instance.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestShowCommand(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	if err := execute(t, "show", path); err != nil {
		t.Fatal(err)
	}
}

func TestShowCommandMissingFile(t *testing.T) {
	if err := execute(t, "show", filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestProjectCommandWritesOutput(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	out := filepath.Join(t.TempDir(), "projected.json")

	if err := execute(t, "project", path, "A", "-o", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// Projecting over A collapses the whole Person sort.
	if strings.Contains(string(data), `"id": "B"`) {
		t.Error("projected output should not contain atom B")
	}
}

func TestRenderCommandDOT(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	out := filepath.Join(t.TempDir(), "graph.dot")

	if err := execute(t, "render", path, "-f", "dot", "-o", out, "--no-cache"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "digraph") {
		t.Errorf("expected DOT output, got:\n%s", data)
	}
}

func TestRenderCommandBadFormat(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	if err := execute(t, "render", path, "-f", "pdf"); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestReifyCommandCode(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	out := filepath.Join(t.TempDir(), "reified.txt")

	if err := execute(t, "reify", path, "--style", "code", "-o", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Person(") {
		t.Errorf("expected constructor-call text, got:\n%s", data)
	}
}

func TestReifyCommandBadStyle(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	if err := execute(t, "reify", path, "--style", "yaml"); err == nil {
		t.Fatal("expected an error for an invalid style")
	}
}

func TestMergeCommand(t *testing.T) {
	a := writeTempInstance(t, pairJSON)
	b := writeTempInstance(t, pairJSON)
	out := filepath.Join(t.TempDir(), "merged.json")

	if err := execute(t, "merge", a, b, "-o", out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// Both inputs' atoms survive under fresh ids.
	if got := strings.Count(string(data), `"type": "Person"`); got != 4 {
		t.Errorf("merged output has %d Person atoms, want 4", got)
	}
}

func TestConvertCommandRoundTrip(t *testing.T) {
	path := writeTempInstance(t, pairJSON)
	bsonOut := filepath.Join(t.TempDir(), "instance.bson")
	jsonOut := filepath.Join(t.TempDir(), "back.json")

	if err := execute(t, "convert", path, "-o", bsonOut); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "convert", bsonOut, "-o", jsonOut); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(jsonOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"knows"`) {
		t.Errorf("round-tripped instance lost the relation:\n%s", data)
	}
}

func TestCachePathCommand(t *testing.T) {
	if err := execute(t, "cache", "path"); err != nil {
		t.Fatal(err)
	}
}

func TestCacheClearCommandEmpty(t *testing.T) {
	if err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
}
