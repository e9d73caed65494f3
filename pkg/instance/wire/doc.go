// Package wire implements the JSON/BSON adapter for relational instances.
//
// # Overview
//
// The wire adapter consumes and produces the external document format:
//
//	{
//	  "atoms": [{"id": "A", "type": "T", "label": "A"}],
//	  "relations": [
//	    {"id": "r", "name": "r", "types": ["T", "T"],
//	     "tuples": [{"atoms": ["A", "B"], "types": ["T", "T"]}]}
//	  ],
//	  "types": [{"id": "T", "types": ["T"], "atoms": ["A", "B"], "isBuiltin": false}]
//	}
//
// The "types" section is optional; type entries are inferred from atom types
// when it is omitted (controlled by [Options.InferTypes]).
//
// # Mutation Policy
//
// Wire data is externally supplied and must be trustworthy before use, so
// this adapter fails fast and loudly: duplicate atom ids, dangling tuple
// references, and malformed documents are all errors, never warnings. The
// lenient counterpart is the objgraph sibling package.
//
// # Import Normalization
//
// [ReadJSON] and friends normalize on the way in, controlled by [Options]:
// same-named relations can be merged with structural tuple deduplication,
// repeated atom ids dropped keep-first, missing type entries inferred, and
// dangling tuple references either rejected or loaded verbatim. All four
// options default to enabled; disabling reference validation is the only way
// to load data with dangling references without an error.
//
// # Serialization
//
// JSON is the primary codec ([ReadJSON], [WriteJSON], [ImportJSON],
// [ExportJSON]); BSON ([ReadBSON], [EncodeBSON]) is carried for
// storage-friendly hand-off. [Instance.Reify] renders the instance back to
// its own indented JSON document.
package wire
