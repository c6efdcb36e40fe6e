package topology

import (
	"fmt"
	"strings"

	"github.com/mjcad/mjcad/internal/document"
)

// Spec describes one joint: its type tag, an optional anchor-point
// reference, and whatever parameters were declared with it. Type tags are
// not interpreted beyond the special case of "free".
type Spec struct {
	Type     string
	Position string          // named anchor point; meaningful on the root joint only
	Params   []document.Attr // ordered; may include "axis"
}

// Param returns the named parameter's value.
func (s *Spec) Param(key string) (document.Value, bool) {
	for _, a := range s.Params {
		if a.Key == key {
			return a.Value, true
		}
	}
	return document.Value{}, false
}

// Node is one body in the kinematic tree. A nil Joint means the body is
// welded: to its parent, or to the world at the root.
type Node struct {
	Label    string
	Joint    *Spec
	Children []*Node
}

// FromDocument lifts a declarative document's body declarations into the
// kinematic tree. The document must declare exactly one top-level body and
// every label must be unique across the tree.
func FromDocument(doc *document.Document) (*Node, error) {
	if len(doc.Bodies) != 1 {
		return nil, &document.MalformedTopologyError{
			Detail: fmt.Sprintf("document declares %d top-level bodies, want exactly one", len(doc.Bodies)),
		}
	}
	return fromDeclared(doc.Bodies[0], make(map[string]bool))
}

func fromDeclared(d *document.TopologyNode, seen map[string]bool) (*Node, error) {
	if seen[d.Label] {
		return nil, &document.MalformedTopologyError{Address: d.Label, Detail: "body declared twice"}
	}
	seen[d.Label] = true

	n := &Node{Label: d.Label, Joint: specFromDecl(d.Joint)}
	for _, c := range d.Children {
		child, err := fromDeclared(c, seen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func specFromDecl(d *document.JointDecl) *Spec {
	if d == nil {
		return nil
	}
	s := &Spec{
		Type:     d.Type,
		Position: d.Position,
		Params:   append([]document.Attr(nil), d.Params...),
	}
	if strings.EqualFold(d.Type, "free") {
		// A free joint has all six degrees of freedom; an axis or any other
		// parameter is meaningless on it. Authored ones are dropped, not
		// rejected. The position reference stays: the root anchor reads it.
		s.Params = nil
	}
	return s
}
