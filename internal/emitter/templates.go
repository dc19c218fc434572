package emitter

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"github.com/rajgoel/schematicpp/internal/model"
)

var fmap = template.FuncMap{
	"join": func(lines []string, sep string) string { return strings.Join(lines, sep) },
}

const complexTmplSrc = `// Code generated by schematicpp. DO NOT EDIT.

package {{ .Package }}

import (
	"{{ .RuntimeImportPath }}"
)

// {{ .GoName }} is generated from {{ .FullName }}, declared in {{ .SourceSchema }}.
{{- range .MemberDocs }}
//   {{ . }}
{{- end }}
{{- if .Friends }}
//
// Referenced as a member type by: {{ .Friends }}.
{{- end }}
type {{ .GoName }} struct {
	{{ .Embed }}
{{- range .Fields }}
	{{ .GoName }} {{ .GoType }}
{{- end }}
{{- range .Stubs }}
	// {{ .GoName }} omitted: {{ .StubReason }}
{{- end }}
}

{{- if .Defaults }}

var {{ .DefaultsVar }} = xmlobject.Attributes{
{{- range .Defaults }}
	{Namespace: {{ printf "%q" .Namespace }}, Name: {{ printf "%q" .Name }}, Value: {{ printf "%q" .Literal }}},
{{- end }}
}
{{- end }}

func init() {
	xmlobject.Register({{ printf "%q" .FactoryKey }}, func(ns, className string, el *xmlobject.Element, defaults xmlobject.Attributes) xmlobject.Instance {
		return {{ .NewFunc }}(ns, className, el, {{ .FactoryDefaultsArg }})
	})
}

// {{ .NewFunc }} builds a {{ .GoName }} from an already-decoded element. defaults
// is forwarded unchanged to the embedded base constructor; only the root
// xmlobject.Object backfills missing attributes from it.
func {{ .NewFunc }}(ns, className string, el *xmlobject.Element, defaults xmlobject.Attributes) *{{ .GoName }} {
	obj := &{{ .GoName }}{}
	{{ .EmbedInit }}
{{- range .Fields }}
	{{ .CtorStmt }}
{{- end }}
	return obj
}
`

const aliasTmplSrc = `// Code generated by schematicpp. DO NOT EDIT.

package {{ .Package }}

// {{ .GoName }} is generated from {{ .FullName }}, declared in {{ .SourceSchema }}.
// It is a transparent alias for {{ .Underlying }}, the same way the source
// schema's simpleType is a restriction that adds no structure of its own.
type {{ .GoName }} = {{ .Underlying }}
`

var (
	complexTmpl = template.Must(template.New("complex").Funcs(fmap).Parse(complexTmplSrc))
	aliasTmpl   = template.Must(template.New("alias").Funcs(fmap).Parse(aliasTmplSrc))
)

type complexData struct {
	Package             string
	RuntimeImportPath   string
	GoName              string
	FullName            string
	SourceSchema        string
	MemberDocs          []string
	Friends             string
	Embed               string
	EmbedInit           string
	Fields              []fieldRender
	Stubs               []fieldRender
	Defaults            []defaultEntry
	DefaultsVar         string
	FactoryKey          string
	FactoryDefaultsArg  string
	NewFunc             string
}

// RenderComplex renders the Go source file for a complex (struct-backed)
// descriptor.
func RenderComplex(td *model.TypeDescriptor, pkg, runtimeImportPath string) ([]byte, error) {
	data := complexData{
		Package:           pkg,
		RuntimeImportPath: runtimeImportPath,
		GoName:            td.GoName,
		FullName:          td.Name.String(),
		SourceSchema:      td.SourceSchema,
		DefaultsVar:       model.SanitizeUnexported(td.Name.Local) + "Defaults",
		FactoryKey:        fmt.Sprintf("%s:%s", td.Name.NS, td.Name.Local),
		NewFunc:           "new" + td.GoName,
	}

	if len(td.Friends) > 0 {
		names := make([]string, 0, len(td.Friends))
		for n := range td.Friends {
			names = append(names, n)
		}
		sort.Strings(names)
		data.Friends = strings.Join(names, ", ")
	}

	if td.Base != nil && td.Base.Kind != model.KindBuiltIn {
		data.Embed = td.Base.GoName
		data.EmbedInit = fmt.Sprintf("obj.%s = *%s(ns, className, el, defaults)", td.Base.GoName, "new"+td.Base.GoName)
	} else {
		data.Embed = "xmlobject.Object"
		data.EmbedInit = "obj.Object = *xmlobject.NewObject(ns, className, el, defaults)"
	}

	data.Defaults = aggregateDefaults(td)
	if len(data.Defaults) > 0 {
		data.FactoryDefaultsArg = data.DefaultsVar
	} else {
		data.FactoryDefaultsArg = "nil"
	}

	for _, m := range td.Members {
		fr := renderMember(m)
		card := fr.Cardinality
		doc := fmt.Sprintf("%s (%s)", m.Name, card)
		if m.IsAttribute {
			doc = fmt.Sprintf("%s (attribute, %s)", m.Name, card)
		}
		data.MemberDocs = append(data.MemberDocs, doc)
		if fr.Stub {
			data.Stubs = append(data.Stubs, fr)
			continue
		}
		data.Fields = append(data.Fields, fr)
	}

	var buf bytes.Buffer
	if err := complexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("emitter: render %s: %w", td.Name, err)
	}
	return format.Source(buf.Bytes())
}

type aliasData struct {
	Package      string
	GoName       string
	FullName     string
	SourceSchema string
	Underlying   string
}

// RenderAlias renders the Go source file for a simple (alias-backed)
// descriptor.
func RenderAlias(td *model.TypeDescriptor, pkg string) ([]byte, error) {
	data := aliasData{
		Package:      pkg,
		GoName:       td.GoName,
		FullName:     td.Name.String(),
		SourceSchema: td.SourceSchema,
		Underlying:   scalarGoType(td),
	}
	var buf bytes.Buffer
	if err := aliasTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("emitter: render %s: %w", td.Name, err)
	}
	return format.Source(buf.Bytes())
}
