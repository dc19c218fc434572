package xmlobject

import "fmt"

// Attribute is one attribute carried by an Object, including the defaults
// backfilled at construction time.
type Attribute struct {
	Namespace string
	Name      string
	Value     Value
}

// Attributes is an ordered list of default attributes a generated type's
// construct function passes down to Object, root ancestor's defaults first
// in the aggregation and forwarded unchanged through every base constructor
// in the embedding chain -- only the root Object actually consults it.
type Attributes []Attribute

// Instance is implemented by every generated type, directly through
// embedding Object and the promoted XMLObject method below. It plays the
// role XMLObject's own pointer type played in the C++ original: the common
// type dynamic_cast, findRecursive and the factory all operate on.
//
// The accessor is named XMLObject rather than the more obvious Base
// because a generated struct's first embedded field is itself named after
// its base type -- for the spec's own inheritance example that field is
// literally named Base, and a field named Base at depth 1 would shadow a
// Base() method promoted from Object at depth 2, silently breaking
// Instance satisfaction for exactly the schemas this runtime exists to
// support.
type Instance interface {
	XMLObject() *Object
}

// Object is the base type every generated struct embeds as its first
// field, directly or (for a derived type) transitively through embedding
// another generated type that itself embeds Object.
type Object struct {
	Namespace   string
	ClassName   string
	ElementName string
	TextContent string
	Attributes  Attributes
	Children    []Instance
}

// XMLObject returns o itself, satisfying Instance; every type that embeds
// Object gets this method promoted automatically, which is what lets
// As/MustAs/Find work across the whole generated type hierarchy without
// any type having to implement anything by hand.
func (o *Object) XMLObject() *Object { return o }

// NewObject builds the base Object for a just-decoded Element: it copies
// the element's attributes, backfills any attribute named in defaults that
// the element itself did not carry, recursively constructs every child
// through the factory, and -- if the element had no element children --
// records its text content. This mirrors the XMLObject constructor body in
// lib/XMLObject.cpp line for line, aside from defaultAttributes being
// forwarded down the embedding chain instead of up a C++ base-initializer
// list.
func NewObject(ns, className string, el *Element, defaults Attributes) *Object {
	o := &Object{Namespace: ns, ClassName: className, ElementName: el.Local}
	for _, a := range el.Attrs {
		o.Attributes = append(o.Attributes, Attribute{Namespace: a.NS, Name: a.Local, Value: Value(a.Value)})
	}
	for _, d := range defaults {
		if _, ok := o.OptionalAttributeByName(d.Name); !ok {
			o.Attributes = append(o.Attributes, d)
		}
	}
	for _, c := range el.Children {
		o.Children = append(o.Children, CreateObject(c))
	}
	if len(o.Children) == 0 {
		o.TextContent = el.Text
	}
	return o
}

// RequiredAttributeByName returns the named attribute, panicking if it is
// absent -- the Go rendering of getRequiredAttributeByName's exception.
func (o *Object) RequiredAttributeByName(name string) *Attribute {
	if a, ok := o.OptionalAttributeByName(name); ok {
		return a
	}
	panic(fmt.Sprintf("xmlobject: element %q has no required attribute %q", o.ElementName, name))
}

// OptionalAttributeByName returns the named attribute and whether it was
// present.
func (o *Object) OptionalAttributeByName(name string) (*Attribute, bool) {
	for i := range o.Attributes {
		if o.Attributes[i].Name == name {
			return &o.Attributes[i], true
		}
	}
	return nil, false
}

// RequiredChildByName returns the first child element named name,
// panicking if none is found.
func (o *Object) RequiredChildByName(name string) Instance {
	if c, ok := o.OptionalChildByName(name); ok {
		return c
	}
	panic(fmt.Sprintf("xmlobject: element %q has no required child %q", o.ElementName, name))
}

// OptionalChildByName returns the first child element named name, and
// whether one was found.
func (o *Object) OptionalChildByName(name string) (Instance, bool) {
	for _, c := range o.Children {
		if c.XMLObject().ElementName == name {
			return c, true
		}
	}
	return nil, false
}

// ChildrenByName returns every child element named name, in document
// order.
func (o *Object) ChildrenByName(name string) []Instance {
	var out []Instance
	for _, c := range o.Children {
		if c.XMLObject().ElementName == name {
			out = append(out, c)
		}
	}
	return out
}

// RequiredChildValueByName returns the text content of the first child
// element named name, panicking if none is found -- used by a generated
// constructor when an element member's type is a builtin or simple-type
// alias rather than another generated struct.
func (o *Object) RequiredChildValueByName(name string) Value {
	return Value(o.RequiredChildByName(name).XMLObject().TextContent)
}

// OptionalChildValueByName is RequiredChildValueByName without the panic.
func (o *Object) OptionalChildValueByName(name string) (Value, bool) {
	c, ok := o.OptionalChildByName(name)
	if !ok {
		return "", false
	}
	return Value(c.XMLObject().TextContent), true
}

// String reconstructs an XML rendering of o and its descendants. It is a
// port of XMLObject::stringify: the exact non-goal on whitespace/comment
// round-tripping means this is an approximation (no namespace prefixes are
// reconstructed), good enough for debugging and logging, not for producing
// a byte-identical copy of the original document.
func (o *Object) String() string {
	var b []byte
	b = append(b, '<')
	b = append(b, o.ElementName...)
	for _, a := range o.Attributes {
		b = append(b, ' ')
		b = append(b, a.Name...)
		b = append(b, '=', '"')
		b = append(b, a.Value.String()...)
		b = append(b, '"')
	}
	if len(o.Children) == 0 && o.TextContent == "" {
		b = append(b, '/', '>')
		return string(b)
	}
	b = append(b, '>')
	b = append(b, o.TextContent...)
	for _, c := range o.Children {
		b = append(b, fmt.Sprint(c)...)
	}
	b = append(b, '<', '/')
	b = append(b, o.ElementName...)
	b = append(b, '>')
	return string(b)
}
