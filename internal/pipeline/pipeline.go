// Package pipeline bundles the four generator stages -- loader, parser,
// resolver, emitter -- into the single Run entry point cmd/schematicpp
// calls, threading the symbol table and diagnostics list explicitly through
// every stage rather than relying on any package-level mutable state.
package pipeline

import (
	"fmt"
	"log"

	"github.com/rajgoel/schematicpp/internal/builtin"
	"github.com/rajgoel/schematicpp/internal/diagnostics"
	"github.com/rajgoel/schematicpp/internal/emitter"
	"github.com/rajgoel/schematicpp/internal/loader"
	"github.com/rajgoel/schematicpp/internal/model"
	"github.com/rajgoel/schematicpp/internal/parser"
	"github.com/rajgoel/schematicpp/internal/resolver"
)

// Options configures one end-to-end run.
type Options struct {
	SchemaPaths []string
	OutputDir   string
	Package     string
	Verbose     bool
	DryRun      bool
	Logger      *log.Logger
}

// Result reports what a run produced, for cmd/schematicpp to summarise and
// turn into an exit code.
type Result struct {
	Diagnostics diagnostics.List
	Emit        emitter.Result
}

// Run loads, parses, resolves and emits every schema in opts.SchemaPaths in
// order, interleaving S1 and S2 per file the way the original tool does
// (see parser.ParseSchema), then running S3 and S4 once over the completed
// table. A fatal xsderr.Error from any stage aborts the run and is
// returned as-is; non-fatal diagnostics from the resolver are collected
// into Result.Diagnostics instead.
func Run(opts Options) (Result, error) {
	var res Result

	table := model.NewTable()
	if err := builtin.Populate(table); err != nil {
		return res, fmt.Errorf("pipeline: %w", err)
	}

	ctx := parser.NewContext(table, opts.Logger)

	for _, path := range opts.SchemaPaths {
		schema, err := loader.Load(path)
		if err != nil {
			return res, err
		}
		prefixLUT := loader.PrefixLUT(schema.Root, schema.TargetNamespace, parser.XSDNamespace)
		if err := parser.ParseSchema(ctx, schema, prefixLUT); err != nil {
			return res, err
		}
	}

	if err := resolver.Resolve(table, &res.Diagnostics, opts.Verbose, opts.Logger); err != nil {
		return res, err
	}

	emitRes, err := emitter.Emit(table, emitter.Options{
		OutputDir: opts.OutputDir,
		Package:   opts.Package,
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return res, err
	}
	res.Emit = emitRes

	return res, nil
}
