package model

import "github.com/rajgoel/schematicpp/internal/xsderr"

// Table is the pair of symbol tables threaded through the pipeline in place
// of the package-level globals the original tool used: classes (emitted
// types, in insertion order) and groups (attribute groups, spliced into
// classes during resolution and never emitted themselves).
type Table struct {
	Classes map[FullName]*TypeDescriptor
	Groups  map[FullName]*TypeDescriptor

	classOrder []FullName
	groupOrder []FullName
}

// NewTable returns an empty Table ready for builtin.Populate and the parser.
func NewTable() *Table {
	return &Table{
		Classes: make(map[FullName]*TypeDescriptor),
		Groups:  make(map[FullName]*TypeDescriptor),
	}
}

// DefineClass registers td under td.Name, enforcing the re-definition rule:
// a second definition of the same name is only accepted if the first one is
// still an empty placeholder (no members, no base) -- mirroring the source
// tool's "addClass" behaviour, where a forward reference created to satisfy
// a type= lookup is later filled in by the real declaration.
func (t *Table) DefineClass(td *TypeDescriptor) error {
	return define(t.Classes, &t.classOrder, td)
}

// DefineGroup registers gd under gd.Name using the same re-definition rule.
func (t *Table) DefineGroup(gd *TypeDescriptor) error {
	return define(t.Groups, &t.groupOrder, gd)
}

func define(table map[FullName]*TypeDescriptor, order *[]FullName, td *TypeDescriptor) error {
	existing, ok := table[td.Name]
	if !ok {
		*order = append(*order, td.Name)
		table[td.Name] = td
		return nil
	}
	if len(existing.Members) != 0 || !existing.BaseRef.IsZero() {
		return &xsderr.Error{
			Kind:    xsderr.KindRedefinition,
			Schema:  td.SourceSchema,
			Subject: td.Name.String(),
			Detail:  "defined more than once, first in " + existing.SourceSchema,
		}
	}
	table[td.Name] = td
	return nil
}

// ClassOrder returns the FullNames of all registered classes in the order
// they were first defined (including forward-reference placeholders later
// overwritten). The emitter's topological sort uses this as its tie-break.
func (t *Table) ClassOrder() []FullName { return t.classOrder }

// GroupOrder returns group names in first-definition order.
func (t *Table) GroupOrder() []FullName { return t.groupOrder }

// ClassesInOrder returns the descriptors themselves, in ClassOrder.
func (t *Table) ClassesInOrder() []*TypeDescriptor {
	out := make([]*TypeDescriptor, 0, len(t.classOrder))
	for _, name := range t.classOrder {
		out = append(out, t.Classes[name])
	}
	return out
}

// GroupsInOrder returns the group descriptors themselves, in GroupOrder.
func (t *Table) GroupsInOrder() []*TypeDescriptor {
	out := make([]*TypeDescriptor, 0, len(t.groupOrder))
	for _, name := range t.groupOrder {
		out = append(out, t.Groups[name])
	}
	return out
}

// LookupClass resolves ref against the class table using the two-strategy
// name lookup described for the resolver: first an exact (namespace, local)
// match, then -- if that fails -- a namespace-blind scan by local name
// alone, returning the first match in definition order. The fallback exists
// because schemas in this corpus are not always consistent about which
// namespace a cross-file reference names explicitly.
func (t *Table) LookupClass(ref FullName) (*TypeDescriptor, bool) {
	if td, ok := t.Classes[ref]; ok {
		return td, true
	}
	for _, name := range t.classOrder {
		if name.Local == ref.Local {
			return t.Classes[name], true
		}
	}
	return nil, false
}
