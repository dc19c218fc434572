// Package xmlnode decodes an XSD document into a generic, order-preserving
// element tree. ivarg-goxsd's xsd.go reads a schema straight into typed
// Go structs with xml:"sequence>element" path tags; that shortcut loses
// the distinction between a direct <sequence> child and one nested inside
// another <sequence>, and has no room for <choice>, <all>, attribute
// groups or <anyAttribute>. The full dispatch table the parser needs reads
// children in document order and switches on local name, the way the
// original tool's DOM-based getChildElements did -- so schema documents are
// decoded into this generic Node tree instead of a fixed struct shape.
package xmlnode

import "encoding/xml"

// Node is one element of a decoded XSD document. encoding/xml resolves
// element and attribute names against the namespace declarations in
// scope, so Name.Space holds a namespace URI, not a raw prefix -- except
// for xmlns:* declarations themselves, whose Name.Space is the literal
// "xmlns".
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Local returns the element's local name.
func (n Node) Local() string { return n.XMLName.Local }

// NS returns the element's namespace URI.
func (n Node) NS() string { return n.XMLName.Space }

// Attribute returns the value of the first attribute whose local name is
// local, whatever its namespace, and whether one was present.
func (n Node) Attribute(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute named local is present.
func (n Node) HasAttribute(local string) bool {
	_, ok := n.Attribute(local)
	return ok
}

// ChildrenNamed returns the direct children whose local name is local, in
// document order.
func (n Node) ChildrenNamed(local string) []Node {
	var out []Node
	for _, c := range n.Children {
		if c.Local() == local {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildNamed returns the first direct child named local, if any.
func (n Node) FirstChildNamed(local string) (Node, bool) {
	for _, c := range n.Children {
		if c.Local() == local {
			return c, true
		}
	}
	return Node{}, false
}

// Decode parses an XSD document's bytes into its root Node.
func Decode(data []byte) (Node, error) {
	var root Node
	if err := xml.Unmarshal(data, &root); err != nil {
		return Node{}, err
	}
	return root, nil
}
