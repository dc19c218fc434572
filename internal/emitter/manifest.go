package emitter

import (
	"strings"
)

// Manifest lists every file the emitter produced, in emission order,
// replacing the original tool's generated CMakeLists.txt source list: a
// plain, greppable record of what a run wrote, not a build recipe, since
// the rewrite leaves build-system integration to the host module's own
// go.mod.
//
// Emission order is topological (base types before the types that embed
// them, see TopoSort): a base-of relation that callers validating
// manifest.txt depend on, so Add must preserve the order its caller adds
// paths in rather than imposing one of its own.
type Manifest struct {
	Files []string
}

// Add records path, keeping Files de-duplicated while preserving the
// order paths were first added in.
func (m *Manifest) Add(path string) {
	for _, f := range m.Files {
		if f == path {
			return
		}
	}
	m.Files = append(m.Files, path)
}

// String renders the manifest as one path per line, suitable for writing to
// manifest.txt.
func (m *Manifest) String() string {
	return strings.Join(m.Files, "\n") + "\n"
}
