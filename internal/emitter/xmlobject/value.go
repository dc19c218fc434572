// Package xmlobject is the runtime support library every generated package
// imports. It is the Go rendering of lib/XMLObject.h/.cpp: a base type
// every generated struct embeds, a handful of typed accessors, and the
// construct-function registry that lets the runtime build the right
// concrete type for an XML element it has never seen a declaration for at
// compile time.
//
// This file is copied verbatim into every generated output tree (see
// internal/emitter's go:embed of this directory) so that generated code
// never needs to import back into this module.
package xmlobject

import "strconv"

// Value is a single attribute or text-content value, stored as the literal
// string read off the document. The C++ original's Value type converts
// implicitly to bool/int/double; Go has no implicit conversion operators,
// so those become explicit methods instead.
type Value string

// String returns the value's literal text.
func (v Value) String() string { return string(v) }

// Bool reports whether the value is the literal "true".
func (v Value) Bool() bool { return string(v) == "true" }

// Int parses the value as a base-10 integer.
func (v Value) Int() (int, error) { return strconv.Atoi(string(v)) }

// Float64 parses the value as a floating point number.
func (v Value) Float64() (float64, error) { return strconv.ParseFloat(string(v), 64) }

// MustInt parses the value as an integer, returning 0 for a lexically
// invalid value. Instance validation (rejecting a document whose attribute
// text doesn't parse as its declared type) is out of scope, so generated
// constructors use this instead of checking Int's error.
func (v Value) MustInt() int {
	n, _ := v.Int()
	return n
}

// MustFloat64 is Float64 with the error discarded, for the same reason.
func (v Value) MustFloat64() float64 {
	f, _ := v.Float64()
	return f
}
