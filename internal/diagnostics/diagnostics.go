// Package diagnostics accumulates the non-fatal xsderr.Error values that
// the resolver produces along the way: an unresolved required member is
// reported but does not stop the run, so the pipeline needs somewhere to
// collect these instead of returning on the first one. (An unresolved
// optional or repeated member is only logged under -v and never lands
// here.)
package diagnostics

import (
	"errors"
	"strings"

	"github.com/rajgoel/schematicpp/internal/xsderr"
)

// List collects diagnostics in the order they were recorded.
type List struct {
	entries []*xsderr.Error
}

// Add records one diagnostic.
func (l *List) Add(e *xsderr.Error) { l.entries = append(l.entries, e) }

// Entries returns every recorded diagnostic, in recording order.
func (l *List) Entries() []*xsderr.Error { return l.entries }

// Len reports how many diagnostics have been recorded.
func (l *List) Len() int { return len(l.entries) }

// String renders every diagnostic, one per line, for printing to stderr.
func (l *List) String() string {
	lines := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}

// Join combines every recorded diagnostic into one error via errors.Join,
// the same way jacoelho-xsd/cmd/xmllint combines per-document validation
// failures into a single reportable error. Returns nil if nothing was
// recorded.
func (l *List) Join() error {
	errs := make([]error, len(l.entries))
	for i, e := range l.entries {
		errs[i] = e
	}
	return errors.Join(errs...)
}
