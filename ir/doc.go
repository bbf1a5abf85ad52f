// Package ir provides Value, the dynamically typed container shared by
// every codec and the contract engine.
//
// # Variants
//
// A Value holds one of nine variants: Null, Integer, Boolean,
// Character, String, WString, Real, Map or Array. A Null value takes
// on a variant at its first write. After that only values of the same
// category may be written; Integer and Real form one category.
//
// # Sharing
//
// String, WString, Map and Array payloads live in a reference counted
// cell. Share and Assign make another holder of the same cell, so a
// change made to a Map through one holder is seen through all of them.
// Writing a new string with SetString or SetWString is different: a
// holder whose cell is shared first moves to a private cell.
//
//	a := ir.NewMap()
//	b := a.Share()
//	x, _ := b.At("x")
//	x.SetInt(1)
//	a.Exists("x") // true
//
// Clone makes a deep copy sharing nothing.
//
// # Paths
//
// At resolves dotted paths such as "a.0.b". A segment which parses as a
// base 10 integer addresses an Array slot unless the value is already a
// Map. Null values on the way become Maps or Arrays by the same rule.
// An Array index may be an existing index, the current length or
// Append.
//
// # Errors
//
// Failures are *Error values carrying an ErrorCode, the originating
// function and source position, and optionally a clone of the value at
// fault. (*Error).Value renders an error as a Map.
//
// # Thread Safety
//
// Values are not safe for concurrent mutation.
package ir
