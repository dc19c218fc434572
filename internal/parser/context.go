// Package parser implements stage S2: it walks each schema's top-level
// declarations and the content models beneath them, building the
// TypeDescriptor/Member graph the resolver will later bind together. The
// dispatch structure is a direct generalisation of the original tool's
// parseElement/parseComplexType/parseSequence functions, switched from a
// flattened xml:"sequence>element" decode onto the document-order Node
// tree from internal/xmlnode so choice, all, nested sequences, attribute
// groups and anyAttribute can all be told apart.
package parser

import (
	"log"

	"github.com/rajgoel/schematicpp/internal/builtin"
	"github.com/rajgoel/schematicpp/internal/model"
)

// Context threads the symbol table and the ref-index sugar table through
// every parse call, replacing the original's global classes/groups/types
// maps with an explicit value per the rewrite's "no package-level mutable
// state" design decision.
type Context struct {
	Table *model.Table

	// RefIndex maps a top-level element's local name to the FullName of
	// its declared type. It exists to resolve <element ref="foo"/> members:
	// the original tool pre-scans each schema's top-level elements that
	// carry an explicit type= attribute into a global "types" map before
	// parsing that schema's declarations, and keeps accumulating into the
	// same map across every schema file processed so far. An element ref
	// is then resolved by looking up its bare local name in this map,
	// ignoring namespace entirely -- a second, narrower lookup strategy
	// alongside the resolver's own namespace-then-local-name fallback.
	RefIndex map[string]model.FullName

	Logger *log.Logger
}

// NewContext returns a Context over an already builtin-populated table.
func NewContext(t *model.Table, logger *log.Logger) *Context {
	return &Context{Table: t, RefIndex: make(map[string]model.FullName), Logger: logger}
}

func (c *Context) warnf(schema, format string, args ...any) {
	if c.Logger == nil {
		return
	}
	c.Logger.Printf("%s: "+format, append([]any{schema}, args...)...)
}

// XSDNamespace is re-exported for callers that only import parser.
const XSDNamespace = builtin.Namespace
