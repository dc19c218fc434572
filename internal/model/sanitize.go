package model

import (
	"strings"
	"unicode"
)

// keywords is the full set of Go reserved words. A sanitized identifier
// that collides with one of these gets a trailing underscore, the same way
// the source tool's Class::sanitize guards against the C++ keyword table.
var keywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// Sanitize turns an arbitrary XSD NCName into a legal Go identifier:
// '-', '_', '.' and whitespace are word separators and are dropped, the
// letter or digit after each separator (and at the start, and after a
// leading run of digits) is upper-cased, and every other character outside [A-Za-z0-9] is replaced with '_'. A
// result that starts with a digit, or is empty, gets a leading '_', and so
// is not exported. A trailing underscore is appended if the result
// collides with a Go keyword.
func Sanitize(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		switch {
		case r == '-' || r == '_' || r == '.' || unicode.IsSpace(r):
			upperNext = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				b.WriteRune(unicode.ToUpper(r))
				// A leading run of digits does not start a word of its own:
				// the letter after it is still upper-cased.
				upperNext = unicode.IsDigit(r) && strings.TrimLeft(b.String(), "0123456789") == ""
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune('_')
			upperNext = false
		}
	}
	out := b.String()
	if out == "" {
		out = "_"
	}
	if unicode.IsDigit(rune(out[0])) {
		out = "_" + out
	}
	if keywords[out] {
		out += "_"
	}
	return out
}

// SanitizeUnexported is Sanitize but leaving the first rune lower-case,
// used for the unexported constructor/registration helpers the emitter
// generates alongside each exported type.
func SanitizeUnexported(name string) string {
	exported := Sanitize(name)
	if exported == "" {
		return exported
	}
	r := []rune(exported)
	r[0] = unicode.ToLower(r[0])
	out := string(r)
	if keywords[out] {
		out += "_"
	}
	return out
}
