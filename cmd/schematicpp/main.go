// Command schematicpp reads one or more XSD schema files and writes a
// strongly-typed Go object model for them: one source file per complex or
// simple type, plus a copy of the xmlobject runtime package every
// generated file depends on. See internal/pipeline for the four stages
// this command drives.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rajgoel/schematicpp/internal/emitter"
	"github.com/rajgoel/schematicpp/internal/pipeline"
)

const usage = `Usage: schematicpp [-v] [-s] -n <namespace> -o <output-dir> -i <schema1> [<schema2> ...]

Options:
  -v  verbose diagnostics to standard error
  -s  dry run: compute the change set, write nothing, exit 1 iff a file would change
  -n  target namespace/identifier for the generated package
  -o  output directory (created if absent; a subdirectory named after -n is also created)
  -i  one or more schema file paths (consumed until the next -flag)
`

type args struct {
	namespace string
	outputDir string
	schemas   []string
	verbose   bool
	dryRun    bool
}

// parseArgs hand-rolls the argv walk because -i must greedily consume every
// following argument up to the next "-flag" token, a shape the standard
// flag package has no way to express.
func parseArgs(argv []string) (args, error) {
	var a args
	i := 0
	for i < len(argv) {
		switch argv[i] {
		case "-v":
			a.verbose = true
			i++
		case "-s":
			a.dryRun = true
			i++
		case "-n":
			if i+1 >= len(argv) {
				return a, fmt.Errorf("-n requires a value")
			}
			a.namespace = argv[i+1]
			i += 2
		case "-o":
			if i+1 >= len(argv) {
				return a, fmt.Errorf("-o requires a value")
			}
			a.outputDir = argv[i+1]
			i += 2
		case "-i":
			i++
			for i < len(argv) && !strings.HasPrefix(argv[i], "-") {
				a.schemas = append(a.schemas, argv[i])
				i++
			}
		default:
			return a, fmt.Errorf("unrecognized argument %q", argv[i])
		}
	}
	if a.namespace == "" || a.outputDir == "" || len(a.schemas) == 0 {
		return a, fmt.Errorf("-n, -o and -i are all required")
	}
	return a, nil
}

// packageName derives a lower-case Go package name from the target
// namespace identifier, since a package name is conventionally one
// lower-case word rather than CamelCase: ASCII letters are lower-cased,
// digits kept, every other rune replaced with '_', a leading digit gets a
// '_' prefix, and an empty result becomes "schema". Go keywords are not
// checked.
func packageName(namespace string) string {
	var b strings.Builder
	for _, r := range namespace {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		return "schema"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	a, err := parseArgs(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	var logger *log.Logger
	if a.verbose {
		logger = log.New(os.Stderr, "", 0)
	}

	pkg := packageName(a.namespace)

	res, err := pipeline.Run(pipeline.Options{
		SchemaPaths: a.schemas,
		OutputDir:   a.outputDir,
		Package:     pkg,
		Verbose:     a.verbose,
		DryRun:      a.dryRun,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := res.Diagnostics.Join(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	for _, w := range res.Emit.Writes {
		if w.Status != '.' || a.verbose {
			fmt.Printf("%c %s\n", w.Status, w.Path)
		}
	}

	if a.dryRun && emitter.Dirty(res.Emit.Writes) {
		return 1
	}
	return 0
}
