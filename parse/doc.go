// Package parse decodes Values from the formats in package format.
//
// Binary input must hold exactly one item; unknown type tags,
// truncation and trailing bytes are errors carrying the byte offset.
// Text input is a sequence of path=value records whose values are
// typed with ir.(*Value).StringInterpret. A later record for the same
// path replaces an earlier one.
package parse
