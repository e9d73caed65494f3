package wire

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/relgraph/relgraph/pkg/errors"
)

// Document is the wire shape of a complete instance.
type Document struct {
	Atoms     []AtomDoc     `json:"atoms" bson:"atoms"`
	Relations []RelationDoc `json:"relations" bson:"relations"`
	Types     []TypeDoc     `json:"types,omitempty" bson:"types,omitempty"`
}

// AtomDoc is the serialized form of an atom.
type AtomDoc struct {
	ID    string `json:"id" bson:"id"`
	Type  string `json:"type" bson:"type"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

// TypeDoc is the serialized form of a type entry. Types holds the ancestor
// chain (self first, top-level last); Atoms holds member atom ids.
type TypeDoc struct {
	ID      string   `json:"id" bson:"id"`
	Types   []string `json:"types,omitempty" bson:"types,omitempty"`
	Atoms   []string `json:"atoms,omitempty" bson:"atoms,omitempty"`
	Builtin bool     `json:"isBuiltin,omitempty" bson:"isBuiltin,omitempty"`
}

// RelationDoc is the serialized form of a relation.
type RelationDoc struct {
	ID     string     `json:"id" bson:"id"`
	Name   string     `json:"name,omitempty" bson:"name,omitempty"`
	Types  []string   `json:"types,omitempty" bson:"types,omitempty"`
	Tuples []TupleDoc `json:"tuples" bson:"tuples"`
}

// TupleDoc is the serialized form of a tuple. Types may be omitted on
// import, in which case per-position types are derived from the referenced
// atoms.
type TupleDoc struct {
	Atoms []string `json:"atoms" bson:"atoms"`
	Types []string `json:"types,omitempty" bson:"types,omitempty"`
}

// ReadJSON decodes a JSON document from r and loads it into a fresh
// instance, applying the given normalization options.
//
// Malformed JSON and shape violations (empty atom ids, mismatched tuple
// lists) fail with MALFORMED_INPUT; documents violating reference integrity
// fail per the options. ReadJSON does not close r.
func ReadJSON(r io.Reader, opts Options, logger *log.Logger) (*Instance, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode instance JSON")
	}
	return FromDocument(doc, opts, logger)
}

// ImportJSON reads a JSON instance file at path.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string, opts Options, logger *log.Logger) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	in, err := ReadJSON(f, opts, logger)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return in, nil
}

// WriteJSON encodes the instance as an indented JSON document on w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(in *Instance, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(in.Document()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode instance JSON")
	}
	return nil
}

// ExportJSON writes the instance to a JSON file at path.
func ExportJSON(in *Instance, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(in, f)
}

// ReadBSON decodes a BSON document and loads it into a fresh instance with
// the same normalization as [ReadJSON].
func ReadBSON(data []byte, opts Options, logger *log.Logger) (*Instance, error) {
	var doc Document
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode instance BSON")
	}
	return FromDocument(doc, opts, logger)
}

// EncodeBSON serializes the instance to BSON bytes.
func EncodeBSON(in *Instance) ([]byte, error) {
	data, err := bson.Marshal(in.Document())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode instance BSON")
	}
	return data, nil
}
