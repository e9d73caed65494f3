// Package instance implements the relational data-instance model: typed
// atoms connected by named n-ary relations, in the Alloy/Forge tradition.
//
// # Overview
//
// An instance holds three kinds of records. [Atom] is a uniquely identified
// entity with a display label and a type. [Type] is a named sort with an
// ordered ancestor chain whose last element is the top-level type. [Relation]
// is a named set of [Tuple] values, each an ordered list of atom ids with a
// parallel list of per-position types.
//
// [Model] is the shared store plus the representation-independent algorithms:
// cascading atom removal, Alloy-style projection ([Model.Project]), cross-
// instance merge ([Model.AddFrom]), and graph materialization ([Model.Graph]).
// Adapters embed a Model and layer their own policy on top: the wire adapter
// (subpackage wire) mutates strictly and fails fast, the foreign-object
// adapter (subpackage objgraph) ingests leniently and assigns its own ids.
//
// # Contract
//
// [DataInstance] is the surface external collaborators bind to. Every adapter
// implements it, so a REPL, projector, or renderer can operate over any
// representation uninterpreted. [Source] is the minimal read-only subset that
// [Model.AddFrom] accepts, letting any adapter feed any other.
//
// # Change Events
//
// Mutations notify subscribed [Listener] values synchronously, in
// registration order, after the mutation has fully completed. A panic inside
// a listener is recovered and logged, never propagated to the mutator.
//
// # Concurrency
//
// An instance is single-writer and fully synchronous. Derived views
// ([Model.Project], [Model.Graph], adapter reification) are pure functions
// over a snapshot and never mutate the receiver. Concurrent mutation is
// unsupported; wrap the instance in a single-owner boundary if needed.
package instance
