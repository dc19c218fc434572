package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rajgoel/schematicpp/internal/emitter"
)

func writeSchema(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestRunEndToEndScenarioB matches spec scenario B: inheritance via
// complexContent/extension, exercised all the way through emission.
func TestRunEndToEndScenarioB(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/widgets\n\ngo 1.21\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	schemaPath := writeSchema(t, dir, "a.xsd", `<schema xmlns="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:a" targetNamespace="urn:a">
	  <complexType name="Base"><attribute name="k" type="xs:string"/></complexType>
	  <complexType name="Derived">
	    <complexContent><extension base="tns:Base">
	      <sequence><element name="v" type="xs:string"/></sequence>
	    </extension></complexContent>
	  </complexType>
	</schema>`)

	root := filepath.Join(dir, "out")
	nsDir := filepath.Join(root, "urna")
	res, err := Run(Options{
		SchemaPaths: []string{schemaPath},
		OutputDir:   root,
		Package:     "urna",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Diagnostics.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", res.Diagnostics.String())
	}
	if emitter.Dirty(res.Emit.Writes) == false {
		t.Fatalf("a first run over an empty output directory should report added files")
	}

	baseGo, err := os.ReadFile(filepath.Join(nsDir, "base.go"))
	if err != nil {
		t.Fatalf("base.go not written: %v", err)
	}
	derivedGo, err := os.ReadFile(filepath.Join(nsDir, "derived.go"))
	if err != nil {
		t.Fatalf("derived.go not written: %v", err)
	}
	if !contains(string(derivedGo), "Base") {
		t.Errorf("derived.go should embed Base:\n%s", derivedGo)
	}
	_ = baseGo

	if _, err := os.Stat(filepath.Join(root, "xmlobject", "object.go")); err != nil {
		t.Fatalf("xmlobject runtime was not copied as a sibling of urna: %v", err)
	}

	manifest, err := os.ReadFile(filepath.Join(nsDir, "manifest.txt"))
	if err != nil {
		t.Fatalf("manifest.txt not written: %v", err)
	}
	baseIdx := indexOf(string(manifest), "base.go")
	derivedIdx := indexOf(string(manifest), "derived.go")
	if baseIdx == -1 || derivedIdx == -1 {
		t.Fatalf("manifest missing base.go or derived.go: %s", manifest)
	}
	if baseIdx > derivedIdx {
		t.Errorf("manifest must list base.go before derived.go (topological order): %s", manifest)
	}
}

func TestRunFailsFastOnUnresolvedBase(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/widgets\n\ngo 1.21\n"), 0o644); err != nil {
		t.Fatalf("write go.mod: %v", err)
	}
	schemaPath := writeSchema(t, dir, "a.xsd", `<schema xmlns="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:a" targetNamespace="urn:a">
	  <complexType name="Derived">
	    <complexContent><extension base="tns:Missing">
	      <sequence><element name="v" type="xs:string"/></sequence>
	    </extension></complexContent>
	  </complexType>
	</schema>`)

	_, err := Run(Options{
		SchemaPaths: []string{schemaPath},
		OutputDir:   filepath.Join(dir, "urna"),
		Package:     "urna",
	})
	if err == nil {
		t.Fatalf("Run should fail when a base type never resolves")
	}
}

func contains(s, substr string) bool { return indexOf(s, substr) != -1 }

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
