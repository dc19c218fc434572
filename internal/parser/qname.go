package parser

import (
	"strings"

	"github.com/rajgoel/schematicpp/internal/model"
)

// resolveQName splits a QName of the form "prefix:local" (or a bare
// "local") using prefixLUT, falling back to defaultNS for an unprefixed
// name -- the Go rendering of the original's lookupNamespace/toFullName
// pair.
func resolveQName(raw string, prefixLUT map[string]string, defaultNS string) model.FullName {
	i := strings.LastIndex(raw, ":")
	if i < 0 {
		return model.FullName{NS: defaultNS, Local: raw}
	}
	prefix, local := raw[:i], raw[i+1:]
	return model.FullName{NS: prefixLUT[prefix], Local: local}
}
