package xmlobject

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseReader decodes one XML document from r and constructs its root
// Instance through the factory, the Go rendering of
// XMLObject::createFromStream.
func ParseReader(r io.Reader) (Instance, error) {
	el, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return CreateObject(el), nil
}

// ParseString is ParseReader over an in-memory document, the rendering of
// XMLObject::createFromString.
func ParseString(s string) (Instance, error) {
	return ParseReader(strings.NewReader(s))
}

// ParseFile is ParseReader over a named file, the rendering of
// XMLObject::createFromFile.
func ParseFile(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xmlobject: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseReader(f)
}
