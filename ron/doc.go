// Package ron parses and prints a small object-notation dialect used
// for scene-description documents.
//
// # Documents
//
// A document is a sequence of optional directives followed by exactly
// one value:
//
//	#![enable(implicit_some)]
//	Prefab(
//	    entities: [
//	        (data: (transform: (translation: (0.0, 1.0, 4.0)))),
//	    ],
//	)
//
// The only recognized extension is implicit_some. A directive naming
// any other extension is a parse error: the parser cannot honor it,
// and ignoring it would silently change the document's meaning.
//
// # Values
//
// The dialect supports:
//
//   - Named-field records: (name: value, ...)
//   - Positional tuples: (value, value, ...)
//   - Sequences: [value, value, ...]
//   - Tagged values: Tag(...) with a record or tuple payload, or a
//     bare Tag for payload-free variants
//   - Booleans: true, false
//   - Integer and float literals with optional sign and exponent
//   - Strings with \" \\ \n \r \t and \u{...} escapes
//
// Trailing commas are allowed in all delimited lists. Line comments
// (//) and nestable block comments (/* */) may appear anywhere
// whitespace may.
//
// Maps, raw strings, character literals, numeric digit separators,
// and non-decimal integer bases are outside the dialect.
//
// # Interpretation
//
// The parser produces an untyped [Value] tree with source positions;
// it attaches no meaning to tags or field names. Whether Some(x) and
// None mark optional values, and which tags are valid where, is the
// caller's concern. See the prefab package for the typed layer.
package ron
