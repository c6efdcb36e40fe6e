package document

import "fmt"

// ReferenceNotFoundError reports a named part or geometry reference that no
// loaded document satisfies. The first one aborts the compile; no partial
// output is produced.
type ReferenceNotFoundError struct {
	Label   string // the reference that failed to resolve
	Context string // what was being compiled when it failed
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference %q not found (while compiling %s)", e.Label, e.Context)
}

// MalformedTopologyError reports joint-topology input that cannot be
// interpreted: an ill-formed cell address, a field with no value, or body
// wiring that does not form a single-rooted tree.
type MalformedTopologyError struct {
	Address string // offending cell address or record label, when one exists
	Detail  string
}

func (e *MalformedTopologyError) Error() string {
	if e.Address == "" {
		return "malformed topology: " + e.Detail
	}
	return fmt.Sprintf("malformed topology at %s: %s", e.Address, e.Detail)
}
