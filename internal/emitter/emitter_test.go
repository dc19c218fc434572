package emitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rajgoel/schematicpp/internal/builtin"
	"github.com/rajgoel/schematicpp/internal/model"
)

// newOutputDir returns the root directory passed as -o: xmlobject and the
// <namespace> package are written as siblings underneath it.
func newOutputDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/widgets\n\ngo 1.21\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	return root
}

func newSampleTable(t *testing.T) *model.Table {
	t.Helper()
	table := model.NewTable()
	if err := builtin.Populate(table); err != nil {
		t.Fatalf("builtin.Populate: %v", err)
	}
	foo := &model.TypeDescriptor{Name: model.FullName{NS: "urn:a", Local: "Foo"}, GoName: "Foo", Kind: model.KindComplex}
	foo.Members = append(foo.Members, &model.Member{Name: "id", GoName: "Id", IsAttribute: true, MinOccurs: 1, MaxOccurs: 1, Type: table.Classes[model.FullName{NS: builtin.Namespace, Local: "string"}]})
	if err := table.DefineClass(foo); err != nil {
		t.Fatalf("DefineClass: %v", err)
	}
	return table
}

// TestEmitDryRunStability matches spec scenario F: a dry run against an
// empty output directory reports every file 'A' and leaves disk untouched;
// a real run then creates them; a second dry run reports nothing pending.
func TestEmitDryRunStability(t *testing.T) {
	outputDir := newOutputDir(t)
	table := newSampleTable(t)

	dryRes, err := Emit(table, Options{OutputDir: outputDir, Package: "urna", DryRun: true})
	if err != nil {
		t.Fatalf("first (dry-run) Emit: %v", err)
	}
	if !Dirty(dryRes.Writes) {
		t.Fatalf("dry run against an empty directory should report pending changes")
	}
	if _, err := os.Stat(filepath.Join(outputDir, "urna")); !os.IsNotExist(err) {
		t.Fatalf("dry run should not have created %s/urna", outputDir)
	}

	realRes, err := Emit(table, Options{OutputDir: outputDir, Package: "urna"})
	if err != nil {
		t.Fatalf("second (real) Emit: %v", err)
	}
	if !Dirty(realRes.Writes) {
		t.Fatalf("the first real run should report every file added")
	}
	if _, err := os.Stat(filepath.Join(outputDir, "urna", "foo.go")); err != nil {
		t.Errorf("urna/foo.go was not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "xmlobject", "object.go")); err != nil {
		t.Errorf("xmlobject runtime package was not copied as a sibling of urna: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "xmlobject", "object_test.go")); !os.IsNotExist(err) {
		t.Errorf("object_test.go should not be copied into a generated output tree")
	}

	secondDry, err := Emit(table, Options{OutputDir: outputDir, Package: "urna", DryRun: true})
	if err != nil {
		t.Fatalf("third (dry-run) Emit: %v", err)
	}
	if Dirty(secondDry.Writes) {
		t.Fatalf("re-running over unchanged inputs must report zero pending changes, got %+v", secondDry.Writes)
	}
}

func TestEmitManifestListsEveryProducedFile(t *testing.T) {
	outputDir := newOutputDir(t)
	table := newSampleTable(t)

	res, err := Emit(table, Options{OutputDir: outputDir, Package: "urna"})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	found := false
	for _, f := range res.Manifest.Files {
		if filepath.Base(f) == "foo.go" {
			found = true
		}
	}
	if !found {
		t.Errorf("manifest does not list foo.go: %v", res.Manifest.Files)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "urna", "manifest.txt"))
	if err != nil {
		t.Fatalf("read manifest.txt: %v", err)
	}
	if len(data) == 0 {
		t.Errorf("manifest.txt is empty")
	}
}
