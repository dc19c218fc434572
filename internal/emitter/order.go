// Package emitter implements stage S4: it walks the resolved symbol table
// in a base-before-derived order, renders one Go source file per
// non-builtin descriptor through text/template (generalising
// ivarg-goxsd/templ.go's small template set), formats the result with
// go/format, and only rewrites a file on disk when its rendered content
// actually changed.
package emitter

import "github.com/rajgoel/schematicpp/internal/model"

// TopoSort returns every non-builtin class in an order where a type always
// appears after its base, breaking ties by first-definition order --
// ClassOrder() -- rather than the original's std::map key order, per the
// rewrite's explicit ordering guarantee.
func TopoSort(t *model.Table) []*model.TypeDescriptor {
	placed := make(map[model.FullName]bool)
	var remaining []*model.TypeDescriptor
	for _, cl := range t.ClassesInOrder() {
		if cl.Kind == model.KindBuiltIn {
			placed[cl.Name] = true
			continue
		}
		remaining = append(remaining, cl)
	}

	var ordered []*model.TypeDescriptor
	for len(remaining) > 0 {
		var next []*model.TypeDescriptor
		progressed := false
		for _, cl := range remaining {
			if cl.Base == nil || placed[cl.Base.Name] {
				ordered = append(ordered, cl)
				placed[cl.Name] = true
				progressed = true
			} else {
				next = append(next, cl)
			}
		}
		if !progressed {
			// A genuine cycle is impossible for well-formed XSD (base
			// references cannot form a loop without the resolver having
			// already failed to bind one of them), but guard against a
			// logic error here rather than spinning forever.
			ordered = append(ordered, next...)
			break
		}
		remaining = next
	}
	return ordered
}
