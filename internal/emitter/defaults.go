package emitter

import "github.com/rajgoel/schematicpp/internal/model"

// defaultEntry is one aggregated default-bearing attribute.
type defaultEntry struct {
	Namespace string
	Name      string
	Literal   string
}

// aggregateDefaults walks td's base chain from the root ancestor down to
// td itself, collecting every attribute member that carries a default
// literal. Entries are keyed by attribute name alone: each name appears
// once, at the position where it is first introduced walking from the root
// ancestor down, carrying the literal and namespace of its most-derived
// declaration, so a derived type's own default shadows an ancestor's
// default for the same attribute.
func aggregateDefaults(td *model.TypeDescriptor) []defaultEntry {
	var derivedToRoot []*model.TypeDescriptor
	for d := td; d != nil; d = d.Base {
		derivedToRoot = append(derivedToRoot, d)
	}

	// A derived type's own default for a given name overrides an
	// ancestor's default for that same name.
	winner := make(map[string]defaultEntry)
	for _, d := range derivedToRoot {
		for _, m := range d.Members {
			if !m.IsAttribute || !m.HasDefault {
				continue
			}
			if _, ok := winner[m.Name]; ok {
				continue
			}
			winner[m.Name] = defaultEntry{Namespace: d.Name.NS, Name: m.Name, Literal: m.DefaultLiteral}
		}
	}

	// Position in the output follows base-to-derived order: a name's slot
	// is where it is first introduced, walking from the root ancestor down.
	var order []string
	seenPosition := make(map[string]bool)
	for i := len(derivedToRoot) - 1; i >= 0; i-- {
		for _, m := range derivedToRoot[i].Members {
			if !m.IsAttribute || !m.HasDefault || seenPosition[m.Name] {
				continue
			}
			seenPosition[m.Name] = true
			order = append(order, m.Name)
		}
	}

	out := make([]defaultEntry, 0, len(order))
	for _, name := range order {
		out = append(out, winner[name])
	}
	return out
}
