package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseArgsConsumesVariadicSchemasUntilNextFlag(t *testing.T) {
	a, err := parseArgs([]string{"-v", "-n", "urn:a", "-o", "/tmp/out", "-i", "one.xsd", "two.xsd", "-s"})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if !a.verbose || !a.dryRun {
		t.Errorf("verbose/dryRun not set: %+v", a)
	}
	if a.namespace != "urn:a" || a.outputDir != "/tmp/out" {
		t.Errorf("namespace/outputDir = %q/%q, want urn:a//tmp/out", a.namespace, a.outputDir)
	}
	want := []string{"one.xsd", "two.xsd"}
	if len(a.schemas) != len(want) {
		t.Fatalf("schemas = %v, want %v", a.schemas, want)
	}
	for i := range want {
		if a.schemas[i] != want[i] {
			t.Errorf("schemas[%d] = %q, want %q", i, a.schemas[i], want[i])
		}
	}
}

func TestParseArgsRequiresNamespaceOutputDirAndSchemas(t *testing.T) {
	tests := [][]string{
		{},
		{"-n", "urn:a"},
		{"-n", "urn:a", "-o", "/tmp/out"},
		{"-o", "/tmp/out", "-i", "a.xsd"},
	}
	for i, argv := range tests {
		if _, err := parseArgs(argv); err == nil {
			t.Errorf("[%d] parseArgs(%v) should have failed", i, argv)
		}
	}
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"-x"}); err == nil {
		t.Errorf("parseArgs should reject an unrecognized flag")
	}
}

func TestParseArgsDashNWithoutValueErrors(t *testing.T) {
	if _, err := parseArgs([]string{"-n"}); err == nil {
		t.Errorf("-n with no following value should error")
	}
	if _, err := parseArgs([]string{"-o"}); err == nil {
		t.Errorf("-o with no following value should error")
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"urn:example:widgets", "urn_example_widgets"},
		{"Widgets", "widgets"},
		{"123abc", "_123abc"},
		{"", "schema"},
	}
	for i, tt := range tests {
		if got := packageName(tt.in); got != tt.want {
			t.Errorf("[%d] packageName(%q) = %q, want %q", i, tt.in, got, tt.want)
		}
	}
}

func TestRunEndToEndDryRunThenRealRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/widgets\n\ngo 1.21\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	schemaPath := filepath.Join(dir, "a.xsd")
	schema := `<schema xmlns="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:a">
	  <complexType name="Foo"><attribute name="id" type="xs:string"/></complexType>
	</schema>`
	if err := os.WriteFile(schemaPath, []byte(schema), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	if code := run([]string{"-s", "-n", "urn:a", "-o", outDir, "-i", schemaPath}); code != 1 {
		t.Fatalf("dry run over an empty directory should exit 1, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(outDir, "urn_a")); !os.IsNotExist(err) {
		t.Fatalf("dry run should not create any output directory")
	}

	if code := run([]string{"-n", "urn:a", "-o", outDir, "-i", schemaPath}); code != 0 {
		t.Fatalf("real run should exit 0, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(outDir, "urn_a", "foo.go")); err != nil {
		t.Fatalf("foo.go was not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "xmlobject", "object.go")); err != nil {
		t.Fatalf("xmlobject runtime should be a sibling of urn_a, not nested inside it: %v", err)
	}

	if code := run([]string{"-s", "-n", "urn:a", "-o", outDir, "-i", schemaPath}); code != 0 {
		t.Fatalf("second dry run over unchanged output should exit 0, got %d", code)
	}
}

func TestRunReturnsOneOnUsageError(t *testing.T) {
	if code := run([]string{"-n", "urn:a"}); code != 1 {
		t.Errorf("missing -o/-i should exit 1, got %d", code)
	}
}
