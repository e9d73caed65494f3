package objgraph

import (
	"strings"

	"github.com/relgraph/relgraph/pkg/errors"
	"github.com/relgraph/relgraph/pkg/instance"
)

// Ingest consumes an arbitrary nested object graph and loads it into the
// instance, returning the atom id assigned to root.
//
// Traversal is breadth-first over a FIFO work queue, cycle-safe and
// sharing-aware: an identity map keyed by object pointer ensures every
// distinct object becomes exactly one atom, however many references lead to
// it. Re-encountering a mapped object only adds the owner-to-it relation
// tuple; its attributes are not revisited.
//
// Primitive attribute values are interned by (label, type): equal
// primitives of the same builtin type share one atom, referenced by as many
// tuples as there are attributes carrying the value. Each attribute becomes
// a binary relation named after the attribute, from the owning atom to the
// value atom.
//
// Private and dunder attribute names are skipped unless the instance was
// built with [WithPrivateAttrs]; __class__ and __dict__ are always skipped.
// The identity map is scoped to this single call, so objects ingested
// across separate Ingest calls are never unified.
func (in *Instance) Ingest(root *Object) (string, error) {
	if root == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "cannot ingest nil object")
	}

	// link describes the attribute edge that led to an enqueued object;
	// the root carries none.
	type pending struct {
		obj   *Object
		owner string // atom id of the owning object, "" for root
		attr  string // attribute (relation) name on the owner
	}

	seen := make(map[*Object]string)
	queue := []pending{{obj: root}}
	var rootID string

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if id, mapped := seen[p.obj]; mapped {
			// Cycle or shared reference: only add the relation tuple.
			if p.owner != "" {
				in.linkAtoms(p.owner, p.attr, id)
			}
			continue
		}

		id := in.allocObjectAtom(p.obj)
		seen[p.obj] = id
		if p.owner == "" {
			rootID = id
		} else {
			in.linkAtoms(p.owner, p.attr, id)
		}

		for _, f := range p.obj.Fields {
			if in.skipAttr(f.Name) {
				continue
			}
			switch v := f.Value.(type) {
			case nil:
				in.Logger().Debug("skipping attribute with nil value", "attr", f.Name)
			case *Object:
				if v == nil {
					in.Logger().Debug("skipping attribute with nil object", "attr", f.Name)
					continue
				}
				queue = append(queue, pending{obj: v, owner: id, attr: f.Name})
			default:
				in.linkAtoms(id, f.Name, in.internPrimitive(v))
			}
		}
	}

	return rootID, nil
}

// allocObjectAtom creates the atom for a compound object and remembers the
// source object for reification.
func (in *Instance) allocObjectAtom(o *Object) string {
	typeID := o.Class
	if typeID == "" {
		typeID = typeObject
	}

	a := instance.Atom{
		ID:    freshID(),
		Type:  typeID,
		Label: in.nextLabel(typeID),
	}
	stored, err := in.Model.AddTypedAtom(a, in.hierarchyFor(typeID), false)
	if err != nil {
		// Ids are generated, so this cannot collide; surface it anyway.
		in.Logger().Error("failed to allocate atom", "type", typeID, "err", err)
		return a.ID
	}
	in.origins[stored.ID] = o
	return stored.ID
}

// internPrimitive returns the atom id for a primitive value, reusing an
// existing atom with the same (label, type) when one exists.
func (in *Instance) internPrimitive(v Value) string {
	typeID := primitiveType(v)
	label := v.Literal()

	if id, ok := in.Model.FindByTypeAndLabel(typeID, label); ok {
		return id
	}

	a := instance.Atom{ID: freshID(), Type: typeID, Label: label}
	stored, err := in.Model.AddTypedAtom(a, in.hierarchyFor(typeID), true)
	if err != nil {
		in.Logger().Error("failed to intern primitive", "type", typeID, "label", label, "err", err)
		return a.ID
	}
	return stored.ID
}

// linkAtoms adds the binary attribute tuple [owner, target] under the
// attribute's relation, carrying the atoms' types per column.
func (in *Instance) linkAtoms(ownerID, attr, targetID string) {
	owner, okOwner := in.Model.Atom(ownerID)
	target, okTarget := in.Model.Atom(targetID)
	if !okOwner || !okTarget {
		in.Logger().Warn("skipping attribute link with unknown atom", "relation", attr, "owner", ownerID, "target", targetID)
		return
	}

	// AddTuple is the lenient adapter path: duplicates and dangling
	// references log instead of failing.
	_ = in.AddTuple(attr, instance.Tuple{
		Atoms: []string{ownerID, targetID},
		Types: []string{owner.Type, target.Type},
	})
}

// skipAttr reports whether an attribute name is excluded from ingestion.
func (in *Instance) skipAttr(name string) bool {
	if name == "__class__" || name == "__dict__" {
		return true
	}
	return !in.includePrivate && strings.HasPrefix(name, "_")
}
