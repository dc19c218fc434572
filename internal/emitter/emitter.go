package emitter

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rajgoel/schematicpp/internal/importpath"
	"github.com/rajgoel/schematicpp/internal/model"
)

// runtimeFS embeds this module's own xmlobject package so that Emit can
// copy it verbatim into every output tree, the same way the original tool
// shipped lib/XMLObject.h/.cpp alongside its generated sources rather than
// asking the consumer to depend back on the generator's own repository.
//
//go:embed xmlobject
var runtimeFS embed.FS

// Options configures a single Emit run. OutputDir is the root directory
// passed via -o: the xmlobject runtime is copied to OutputDir/xmlobject
// and the generated descriptors are written to OutputDir/Package, the two
// living as siblings the way SPEC_FULL's layout diagram shows.
type Options struct {
	OutputDir string
	Package   string // Go package name, and the <namespace> subdirectory name
	DryRun    bool
}

// Result summarises one Emit run for cmd/schematicpp's reporting and exit
// code decision.
type Result struct {
	Manifest Manifest
	Writes   []WriteResult
}

// Emit walks t in base-before-derived order, renders one Go source file per
// non-builtin descriptor into OutputDir/Package, copies the xmlobject
// runtime package into the sibling OutputDir/xmlobject, and writes
// Package/manifest.txt recording what was produced -- stage S4 in full,
// tying together TopoSort, RenderComplex/RenderAlias and Writer.
func Emit(t *model.Table, opts Options) (Result, error) {
	var res Result
	writer := Writer{DryRun: opts.DryRun}
	nsDir := filepath.Join(opts.OutputDir, opts.Package)

	runtimeImportPath, err := importpath.Resolve(opts.OutputDir)
	if err != nil {
		return res, fmt.Errorf("emitter: %w", err)
	}

	runtimeWrites, err := copyRuntime(opts.OutputDir, writer)
	if err != nil {
		return res, err
	}
	for _, w := range runtimeWrites {
		res.Writes = append(res.Writes, w)
		res.Manifest.Add(w.Path)
	}

	for _, td := range TopoSort(t) {
		var (
			content []byte
			path    string
		)
		switch td.Kind {
		case model.KindSimple:
			content, err = RenderAlias(td, opts.Package)
			path = filepath.Join(nsDir, aliasFileName(td))
		case model.KindComplex:
			content, err = RenderComplex(td, opts.Package, runtimeImportPath)
			path = filepath.Join(nsDir, complexFileName(td))
		default:
			continue
		}
		if err != nil {
			return res, fmt.Errorf("emitter: %s: %w", td.Name, err)
		}

		w, err := writer.WriteFile(path, content)
		if err != nil {
			return res, err
		}
		res.Writes = append(res.Writes, w)
		res.Manifest.Add(w.Path)
	}

	manifestPath := filepath.Join(nsDir, "manifest.txt")
	w, err := writer.WriteFile(manifestPath, []byte(res.Manifest.String()))
	if err != nil {
		return res, err
	}
	res.Writes = append(res.Writes, w)

	return res, nil
}

func complexFileName(td *model.TypeDescriptor) string {
	return model.SanitizeUnexported(td.Name.Local) + ".go"
}

func aliasFileName(td *model.TypeDescriptor) string {
	return model.SanitizeUnexported(td.Name.Local) + "_alias.go"
}

// copyRuntime copies every file under the embedded xmlobject tree into
// outputDir/xmlobject, preserving its relative layout.
func copyRuntime(outputDir string, writer Writer) ([]WriteResult, error) {
	var out []WriteResult
	err := fs.WalkDir(runtimeFS, "xmlobject", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// object_test.go exercises this package in isolation; it has no
		// place in a generated output tree, which never imports "testing".
		if filepath.Ext(p) == ".go" && len(p) > len("_test.go") && p[len(p)-len("_test.go"):] == "_test.go" {
			return nil
		}
		data, err := fs.ReadFile(runtimeFS, p)
		if err != nil {
			return fmt.Errorf("emitter: read embedded %s: %w", p, err)
		}
		dest := filepath.Join(outputDir, p)
		w, err := writer.WriteFile(dest, data)
		if err != nil {
			return err
		}
		out = append(out, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
