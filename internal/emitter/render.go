package emitter

import (
	"fmt"
	"strings"

	"github.com/rajgoel/schematicpp/internal/model"
)

// fieldRender is everything the templates need to emit one struct field
// and the corresponding line of construct-function logic.
type fieldRender struct {
	GoName     string
	GoType     string
	Cardinality string // doc-comment fragment: "required", "optional", "repeated"
	CtorStmt   string
	Stub       bool   // true: member.Type never resolved, emit a comment only
	StubReason string
}

// scalarGoType follows a descriptor's base chain down to the built-in it
// ultimately renders as, used to pick which xmlobject.Value accessor
// converts an attribute or text-content string into the field's Go type.
func scalarGoType(td *model.TypeDescriptor) string {
	for d := td; d != nil; d = d.Base {
		if d.Kind == model.KindBuiltIn {
			return d.GoName
		}
	}
	return "string"
}

// valueExpr renders the Go expression that converts a Value into the
// target scalar Go type, discarding any lexical error: instance validation
// (rejecting an attribute whose text doesn't parse as its declared type)
// is explicitly out of scope, so int/float64 members use the Must*
// variants rather than checking the error xmlobject.Value.Int/Float64
// return.
func valueExpr(valueExprSrc, goType string) string {
	switch goType {
	case "int":
		return fmt.Sprintf("%s.MustInt()", valueExprSrc)
	case "float64":
		return fmt.Sprintf("%s.MustFloat64()", valueExprSrc)
	case "bool":
		return fmt.Sprintf("%s.Bool()", valueExprSrc)
	default:
		return fmt.Sprintf("%s.String()", valueExprSrc)
	}
}

func renderMember(m *model.Member) fieldRender {
	if m.Type == nil {
		card := "required"
		switch {
		case m.IsArray():
			card = "repeated"
		case m.IsOptional():
			card = "optional"
		}
		return fieldRender{
			GoName:      m.GoName,
			Stub:        true,
			Cardinality: card,
			StubReason:  fmt.Sprintf("%s is of an unresolved type and cannot be represented", m.Name),
		}
	}

	complex := m.Type.Kind == model.KindComplex
	base := m.Type.GoName
	goScalar := scalarGoType(m.Type)

	if m.IsAttribute {
		goType := base
		if m.IsOptional() {
			goType = "*" + base
		}
		accessExpr := fmt.Sprintf("obj.RequiredAttributeByName(%q).Value", m.Name)
		if m.IsOptional() {
			return fieldRender{
				GoName:      m.GoName,
				GoType:      goType,
				Cardinality: "optional",
				CtorStmt: fmt.Sprintf(
					"if a, ok := obj.OptionalAttributeByName(%q); ok {\n\t\tv := %s\n\t\tobj.%s = &v\n\t}",
					m.Name, valueExpr("a.Value", goScalar), m.GoName,
				),
			}
		}
		return fieldRender{
			GoName:      m.GoName,
			GoType:      goType,
			Cardinality: "required",
			CtorStmt:    fmt.Sprintf("obj.%s = %s", m.GoName, valueExpr(accessExpr, goScalar)),
		}
	}

	// Element member.
	switch {
	case m.IsArray():
		if complex {
			return fieldRender{
				GoName:      m.GoName,
				GoType:      "[]*" + base,
				Cardinality: "repeated",
				CtorStmt:    fmt.Sprintf("obj.%s = xmlobject.GetChildren[*%s](obj.XMLObject())", m.GoName, base),
			}
		}
		return fieldRender{
			GoName:      m.GoName,
			GoType:      "[]" + goScalar,
			Cardinality: "repeated",
			CtorStmt: fmt.Sprintf(
				"for _, c := range obj.ChildrenByName(%q) {\n\t\tobj.%s = append(obj.%s, %s)\n\t}",
				m.Name, m.GoName, m.GoName, valueExpr("xmlobject.Value(c.XMLObject().TextContent)", goScalar),
			),
		}
	case m.IsOptional():
		if complex {
			return fieldRender{
				GoName:      m.GoName,
				GoType:      "*" + base,
				Cardinality: "optional",
				CtorStmt:    fmt.Sprintf("obj.%s, _ = xmlobject.GetOptionalChild[*%s](obj.XMLObject())", m.GoName, base),
			}
		}
		return fieldRender{
			GoName:      m.GoName,
			GoType:      "*" + goScalar,
			Cardinality: "optional",
			CtorStmt: fmt.Sprintf(
				"if val, ok := obj.OptionalChildValueByName(%q); ok {\n\t\tv := %s\n\t\tobj.%s = &v\n\t}",
				m.Name, valueExpr("val", goScalar), m.GoName,
			),
		}
	default: // required, singular
		if complex {
			return fieldRender{
				GoName:      m.GoName,
				GoType:      "*" + base,
				Cardinality: "required",
				CtorStmt:    fmt.Sprintf("obj.%s = xmlobject.GetRequiredChild[*%s](obj.XMLObject())", m.GoName, base),
			}
		}
		return fieldRender{
			GoName:      m.GoName,
			GoType:      goScalar,
			Cardinality: "required",
			CtorStmt:    fmt.Sprintf("obj.%s = %s", m.GoName, valueExpr(fmt.Sprintf("obj.RequiredChildValueByName(%q)", m.Name), goScalar)),
		}
	}
}

// splitDoc wraps s at approximately width columns for a doc comment,
// matching the teacher pack's habit of not letting generated comment lines
// run unbounded.
func splitDoc(s string, width int) []string {
	words := strings.Fields(s)
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len()+len(w)+1 > width && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
