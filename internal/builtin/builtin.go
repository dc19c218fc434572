// Package builtin pre-populates the symbol table with the XSD built-in
// types the resolver and parser may reference before any schema has been
// loaded, mirroring BuiltInClasses.h/.cpp in the C++ original: fourteen
// names, each carrying the Go type the emitter renders a member as.
package builtin

import "github.com/rajgoel/schematicpp/internal/model"

// Namespace is the fixed namespace URI every built-in type lives in.
const Namespace = "http://www.w3.org/2001/XMLSchema"

// entry pairs an XSD built-in name with the Go type it is rendered as.
// integer/int both render as Go int, and float/double/decimal all render
// as Go float64 -- the same collapsing the original performs by aliasing
// IntClass onto IntegerClass and FloatClass/DoubleClass onto DecimalClass.
// anyURI/time/date/dateTime/QName/ID/IDREF all alias StringClass, since Go
// has no built-in date/time type suited to unvalidated passthrough and the
// spec's instance-validation non-goal means we never need anything more
// structured than the original's literal string ownership.
var entries = []struct {
	name   string
	goType string
}{
	{"string", "string"},
	{"boolean", "bool"},
	{"integer", "int"},
	{"int", "int"},
	{"decimal", "float64"},
	{"float", "float64"},
	{"double", "float64"},
	{"anyURI", "string"},
	{"time", "string"},
	{"date", "string"},
	{"dateTime", "string"},
	{"QName", "string"},
	{"ID", "string"},
	{"IDREF", "string"},
}

// GoType reports the Go rendering of a built-in XSD local name.
func GoType(local string) (string, bool) {
	for _, e := range entries {
		if e.name == local {
			return e.goType, true
		}
	}
	return "", false
}

// Populate registers every built-in type into t.Classes, in the fixed order
// above, before the loader processes the first schema file -- invariant 4
// of the data model (built-ins pre-exist every schema-derived definition).
func Populate(t *model.Table) error {
	for _, e := range entries {
		td := &model.TypeDescriptor{
			Name:         model.FullName{NS: Namespace, Local: e.name},
			GoName:       e.goType,
			Kind:         model.KindBuiltIn,
			SourceSchema: "<builtin>",
		}
		if err := t.DefineClass(td); err != nil {
			return err
		}
	}
	return nil
}
