// Package objgraph implements the foreign-object adapter: it ingests an
// arbitrary nested object graph into a relational instance and reifies the
// instance back into approximate constructor-call source text.
//
// # Values
//
// Foreign values form the closed union [Value]: [Str], [Int], [Float],
// [Bool], and [*Object]. Object identity is the pointer, which is what
// makes cycle detection and shared-substructure deduplication possible
// without long-lived weak references; the "already seen" map lives only for
// the duration of one [Instance.Ingest] call.
//
// # Ingestion
//
// Ingest walks the object graph breadth-first, allocating one atom per
// distinct object (labels "<Type>_<n>" with an instance-scoped per-type
// counter), interning primitives by (label, type), and emitting one binary
// relation per attribute name. The builtin types int, float, str, bool, and
// object are pre-registered; every non-builtin type gets the two-element
// hierarchy [self, "object"], making "object" the universal top-level type.
//
// # Mutation Policy
//
// Introspected runtime data is best-effort, so this adapter is lenient
// where the wire adapter is strict: ids are assigned internally, removing a
// missing atom is a no-op, and a tuple referencing an unknown atom is
// logged and skipped instead of failing the ingestion.
//
// # Reification
//
// [Instance.Reify] reconstructs constructor-call text for the root objects
// (atoms never referenced in tuple position >= 1), guarding recursion with
// a path-local visited set and emitting inline markers for cycles and
// rootless instances. See the method documentation for the exact rendering
// rules.
package objgraph
