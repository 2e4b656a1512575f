// Package json parses JSON documents (RFC 8259) with a grammar composed
// entirely from the combinators of package parse.
//
// Documents decode into a small set of Go types:
//
//	null    nil
//	boolean bool
//	number  [Number] (the original text)
//	string  string
//	array   []any
//	object  *Object (members in document order)
//
// Objects keep duplicate keys; [Object.Get] returns the last occurrence.
// [ToNative] converts a document to maps and slices, and [FormatJSON] and
// [FormatYAML] render one back out with member order preserved.
//
// Arrays and objects may nest at most [MaxDepth] levels unless
// [WithMaxDepth] says otherwise. Deeper documents fail with [ErrNesting].
package json
