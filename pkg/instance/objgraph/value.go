package objgraph

import "strconv"

// Value is a foreign value: either a primitive (Str, Int, Float, Bool) or
// an *Object. The set of variants is closed; consumers dispatch with an
// exhaustive type switch instead of runtime reflection.
type Value interface {
	// IsObject checks whether this value is a compound object.
	IsObject() bool
	// Literal generates the source-literal text of the value. For objects
	// this is only the class name; reification renders their full
	// constructor calls.
	Literal() string
}

// Str is a foreign string value.
type Str string

var _ Value = Str("")

// IsObject reports that a Str is not an object.
func (s Str) IsObject() bool { return false }

// Literal returns the raw string text.
func (s Str) Literal() string { return string(s) }

// Int is a foreign integer value.
type Int int64

var _ Value = Int(0)

// IsObject reports that an Int is not an object.
func (i Int) IsObject() bool { return false }

// Literal returns the bare numeric text.
func (i Int) Literal() string { return strconv.FormatInt(int64(i), 10) }

// Float is a foreign floating-point value.
type Float float64

var _ Value = Float(0)

// IsObject reports that a Float is not an object.
func (f Float) IsObject() bool { return false }

// Literal returns the bare numeric text.
func (f Float) Literal() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Bool is a foreign boolean value.
type Bool bool

var _ Value = Bool(false)

// IsObject reports that a Bool is not an object.
func (b Bool) IsObject() bool { return false }

// Literal returns the Python-style boolean text.
func (b Bool) Literal() string {
	if b {
		return "True"
	}
	return "False"
}

// Field is one named attribute of an [Object]. Order is preserved.
type Field struct {
	Name  string
	Value Value
}

// Object is a compound foreign value: a class tag plus ordered named
// attributes. Identity is the pointer; two objects with equal contents are
// still distinct, and a shared or cyclic reference is the same pointer seen
// twice.
type Object struct {
	Class  string // Class tag; empty means the universal "object"
	Fields []Field
}

var _ Value = (*Object)(nil)

// NewObject creates an object with the given class tag.
func NewObject(class string) *Object {
	return &Object{Class: class}
}

// Set appends or replaces the named attribute and returns the object for
// chaining.
func (o *Object) Set(name string, v Value) *Object {
	for i, f := range o.Fields {
		if f.Name == name {
			o.Fields[i].Value = v
			return o
		}
	}
	o.Fields = append(o.Fields, Field{Name: name, Value: v})
	return o
}

// IsObject reports that an Object is an object.
func (o *Object) IsObject() bool { return true }

// Literal returns the class tag.
func (o *Object) Literal() string {
	if o.Class == "" {
		return typeObject
	}
	return o.Class
}

// primitiveType maps a primitive Value to its builtin type id.
// Objects never reach this; ingestion routes them through the work queue.
func primitiveType(v Value) string {
	switch v.(type) {
	case Str:
		return typeStr
	case Int:
		return typeInt
	case Float:
		return typeFloat
	case Bool:
		return typeBool
	default:
		return typeObject
	}
}
