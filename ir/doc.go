// Package ir defines the value model for jot documents.
//
// A document is a tree of Node values. Node is a closed tagged union over
// Type: null, bool, number (int64 or float64), string, array, object, and
// raw (pre-rendered value text emitted verbatim). Object and Array are the
// two container types; Object keeps insertion order so that encoding is
// deterministic per instance.
//
// The model distinguishes a stored null from an absent key. Has reports
// membership, IsNull reports the null tag; the two are independent.
//
// Accessors come in two families. Get* returns an error when the key is
// missing or the value does not coerce; Opt* substitutes a caller default
// and never fails. Coercion is lenient: numeric getters parse numeric
// string text, the bool getter accepts "true"/"false" in any case.
//
// Infer performs the reverse leniency for parsing: it maps bare value text
// to the node it denotes, falling back to string text.
package ir
