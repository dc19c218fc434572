package model

import (
	"testing"

	"github.com/rajgoel/schematicpp/internal/xsderr"
)

func TestDefineClassRejectsRedefinitionOfANonPlaceholder(t *testing.T) {
	table := NewTable()
	name := FullName{NS: "urn:a", Local: "Foo"}
	first := &TypeDescriptor{Name: name, GoName: "Foo", Kind: KindComplex, SourceSchema: "a.xsd"}
	first.Members = append(first.Members, &Member{Name: "x"})
	if err := table.DefineClass(first); err != nil {
		t.Fatalf("first DefineClass: %v", err)
	}

	second := &TypeDescriptor{Name: name, GoName: "Foo", Kind: KindComplex, SourceSchema: "b.xsd"}
	err := table.DefineClass(second)
	if err == nil {
		t.Fatalf("DefineClass should reject redefining a descriptor that already has members")
	}
	xerr, ok := err.(*xsderr.Error)
	if !ok {
		t.Fatalf("DefineClass error is a %T, want *xsderr.Error", err)
	}
	if xerr.Kind != xsderr.KindRedefinition {
		t.Errorf("Kind = %v, want %v", xerr.Kind, xsderr.KindRedefinition)
	}
}

func TestDefineClassAllowsFillingAForwardReferencePlaceholder(t *testing.T) {
	table := NewTable()
	name := FullName{NS: "urn:a", Local: "Bar"}
	placeholder := &TypeDescriptor{Name: name, GoName: "Bar", Kind: KindComplex, SourceSchema: "a.xsd"}
	if err := table.DefineClass(placeholder); err != nil {
		t.Fatalf("placeholder DefineClass: %v", err)
	}

	real := &TypeDescriptor{Name: name, GoName: "Bar", Kind: KindComplex, SourceSchema: "a.xsd"}
	real.Members = append(real.Members, &Member{Name: "y"})
	if err := table.DefineClass(real); err != nil {
		t.Errorf("DefineClass should accept filling in a placeholder, got error: %v", err)
	}
	if got := table.Classes[name]; got != real {
		t.Errorf("DefineClass did not replace the placeholder with the real descriptor")
	}
}

func TestClassOrderPreservesFirstDefinitionOrder(t *testing.T) {
	table := NewTable()
	names := []string{"Zeta", "Alpha", "Mu"}
	for _, n := range names {
		td := &TypeDescriptor{Name: FullName{NS: "urn:a", Local: n}, GoName: n, Kind: KindComplex}
		if err := table.DefineClass(td); err != nil {
			t.Fatalf("DefineClass(%s): %v", n, err)
		}
	}
	order := table.ClassOrder()
	if len(order) != len(names) {
		t.Fatalf("ClassOrder has %d entries, want %d", len(order), len(names))
	}
	for i, n := range names {
		if order[i].Local != n {
			t.Errorf("ClassOrder[%d] = %q, want %q", i, order[i].Local, n)
		}
	}
}

func TestLookupClassFallsBackToNamespaceBlindMatch(t *testing.T) {
	table := NewTable()
	name := FullName{NS: "urn:a", Local: "Widget"}
	td := &TypeDescriptor{Name: name, GoName: "Widget", Kind: KindComplex}
	if err := table.DefineClass(td); err != nil {
		t.Fatalf("DefineClass: %v", err)
	}

	tests := []struct {
		name string
		ref  FullName
		want bool
	}{
		{name: "exact match", ref: FullName{NS: "urn:a", Local: "Widget"}, want: true},
		{name: "wrong namespace falls back by local name", ref: FullName{NS: "urn:b", Local: "Widget"}, want: true},
		{name: "unknown local name", ref: FullName{NS: "urn:a", Local: "Gadget"}, want: false},
	}
	for i, tt := range tests {
		got, ok := table.LookupClass(tt.ref)
		if ok != tt.want {
			t.Errorf("[%d] %s: LookupClass(%v) ok = %v, want %v", i, tt.name, tt.ref, ok, tt.want)
			continue
		}
		if ok && got != td {
			t.Errorf("[%d] %s: LookupClass(%v) returned a different descriptor than expected", i, tt.name, tt.ref)
		}
	}
}
