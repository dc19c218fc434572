// Package xsderr gives each schema error kind a typed code, the same
// shape jacoelho-xsd/errors uses for its W3C cvc-* codes: a small Kind
// string enum plus an error struct that carries the schema/location context
// a CLI user needs to find the offending declaration.
package xsderr

import "fmt"

// Kind is one of the error classes.
type Kind string

const (
	// KindIO: the schema file could not be opened or read (fatal).
	KindIO Kind = "io"
	// KindMalformedXML: the schema file is not well-formed XML (fatal).
	KindMalformedXML Kind = "malformed-xml"
	// KindMissingTargetNamespace: a schema document has no targetNamespace
	// attribute (fatal).
	KindMissingTargetNamespace Kind = "missing-target-namespace"
	// KindSchemaStructure: a parsed node is missing a required attribute,
	// or uses an unsupported or unrecognized construct -- minOccurs/
	// maxOccurs on choice/all, an unknown complexType child, and the like
	// (fatal).
	KindSchemaStructure Kind = "schema-structure"
	// KindRedefinition: a name was defined twice with a real body (fatal).
	KindRedefinition Kind = "redefinition"
	// KindUnresolvedBase: a base type or attribute group reference never
	// resolved (fatal).
	KindUnresolvedBase Kind = "unresolved-base"
	// KindUnresolvedRequiredMember: a required member's type never
	// resolved (reported, non-fatal).
	KindUnresolvedRequiredMember Kind = "unresolved-required-member"
	// KindUnresolvedOptionalMember: an optional or repeated member's type
	// never resolved (reported under -v only, non-fatal).
	KindUnresolvedOptionalMember Kind = "unresolved-optional-member"
)

// Error wraps one occurrence of a Kind with its schema-level context.
type Error struct {
	Kind    Kind
	Schema  string
	Subject string // the FullName, member name, or path the error concerns
	Detail  string
}

func (e *Error) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Subject, e.Detail)
	}
	return fmt.Sprintf("%s: %s: %s: %s", e.Schema, e.Kind, e.Subject, e.Detail)
}

// Fatal reports whether errors of this kind abort the run immediately.
// Every kind from IO through unresolved base/group is fatal; the two
// unresolved-member kinds only ever accumulate as diagnostics.
func (k Kind) Fatal() bool {
	switch k {
	case KindUnresolvedRequiredMember, KindUnresolvedOptionalMember:
		return false
	default:
		return true
	}
}
