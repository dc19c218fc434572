// Package loader implements stage S1: it reads a schema file off disk and
// decodes it into the generic element tree, extracting the one piece of
// information the rest of the pipeline needs before parsing can begin --
// the schema's targetNamespace -- the same way extractXsd in ivarg-goxsd's
// xsd.go opens a file, unmarshals it, and hands the result to the builder.
package loader

import (
	"os"

	"github.com/rajgoel/schematicpp/internal/xmlnode"
	"github.com/rajgoel/schematicpp/internal/xsderr"
)

// Schema is one decoded XSD document.
type Schema struct {
	Path            string
	Root            xmlnode.Node
	TargetNamespace string
}

// Load reads and decodes the schema file at path. A missing file, malformed
// XML (load errors), or a missing targetNamespace attribute (a schema
// structure error) are all fatal, matching the original's treatment of
// both classes as immediate aborts.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &xsderr.Error{Kind: xsderr.KindIO, Schema: path, Subject: path, Detail: err.Error()}
	}
	root, err := xmlnode.Decode(data)
	if err != nil {
		return nil, &xsderr.Error{Kind: xsderr.KindMalformedXML, Schema: path, Subject: path, Detail: err.Error()}
	}
	tns, ok := root.Attribute("targetNamespace")
	if !ok || tns == "" {
		return nil, &xsderr.Error{Kind: xsderr.KindMissingTargetNamespace, Schema: path, Subject: path, Detail: "schema has no targetNamespace attribute"}
	}
	return &Schema{Path: path, Root: root, TargetNamespace: tns}, nil
}

// PrefixLUT builds the namespace-prefix lookup table for one schema: the
// conventional xs/xsd/xsl -> XSD-namespace seeding, tns -> this schema's own
// target namespace, plus every xmlns:* declaration found on the schema's
// root element.
func PrefixLUT(root xmlnode.Node, targetNamespace, xsdNamespace string) map[string]string {
	lut := map[string]string{
		"xs":  xsdNamespace,
		"xsd": xsdNamespace,
		"xsl": xsdNamespace,
		"tns": targetNamespace,
	}
	for _, a := range root.Attrs {
		if a.Name.Space == "xmlns" {
			lut[a.Name.Local] = a.Value
		}
	}
	return lut
}
