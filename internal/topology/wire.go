package topology

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mjcad/mjcad/internal/document"
)

// Field keys with fixed meaning inside a role block. Everything else is a
// joint parameter and passes through.
const (
	fieldBody     = "body"
	fieldType     = "type"
	fieldPosition = "position"
)

// WireRecords links flat sheet records into the kinematic tree.
//
// The parent block names its part in the "body" field; so does every child
// block. Each child block's remaining fields describe that child's joint:
// "type" and "position" are lifted out, everything else is a parameter. A
// child block without a "type" attaches its part rigidly. The part that is
// never attached as a child is the root; there must be exactly one, it gets
// no joint, and every other part must hang off it.
func WireRecords(records []Record) (*Node, error) {
	if len(records) == 0 {
		return nil, &document.MalformedTopologyError{Detail: "no joint records"}
	}

	nodes := make(map[string]*Node)
	attached := make(map[string]bool)
	node := func(label string) *Node {
		if n, ok := nodes[label]; ok {
			return n
		}
		n := &Node{Label: label}
		nodes[label] = n
		return n
	}

	// Pass 1: attach every child block to its record's parent part.
	for _, rec := range records {
		if rec.Parent == nil {
			return nil, &document.MalformedTopologyError{Address: rec.Label, Detail: "record has no parent block"}
		}
		parentLabel, ok := rec.Parent.Get(fieldBody)
		if !ok {
			return nil, &document.MalformedTopologyError{Address: rec.Label, Detail: "parent block has no body field"}
		}
		parent := node(parentLabel)

		for _, child := range rec.Children {
			childLabel, ok := child.Get(fieldBody)
			if !ok {
				return nil, &document.MalformedTopologyError{Address: rec.Label, Detail: "child block has no body field"}
			}
			if attached[childLabel] {
				return nil, &document.MalformedTopologyError{
					Address: rec.Label,
					Detail:  fmt.Sprintf("part %q is attached twice", childLabel),
				}
			}
			attached[childLabel] = true

			cn := node(childLabel)
			cn.Joint = specFromFields(child)
			parent.Children = append(parent.Children, cn)
		}
	}

	// Pass 2: exactly one part stays unattached; that is the root.
	var root *Node
	for _, rec := range records {
		label, _ := rec.Parent.Get(fieldBody)
		if attached[label] {
			continue
		}
		if root != nil && root.Label != label {
			return nil, &document.MalformedTopologyError{
				Detail: fmt.Sprintf("parts %q and %q both look like roots", root.Label, label),
			}
		}
		root = node(label)
	}
	if root == nil {
		return nil, &document.MalformedTopologyError{Detail: "no root part; the joint records form a cycle"}
	}

	// Pass 3: the records must form a single tree under the root.
	if n := countReachable(root); n != len(nodes) {
		return nil, &document.MalformedTopologyError{
			Detail: fmt.Sprintf("%d parts are not reachable from root %q", len(nodes)-n, root.Label),
		}
	}

	return root, nil
}

func countReachable(root *Node) int {
	count := 0
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, n.Children...)
	}
	return count
}

func specFromFields(fields Fields) *Spec {
	typ, ok := fields.Get(fieldType)
	if !ok {
		return nil
	}
	s := &Spec{Type: typ}
	for _, f := range fields {
		switch f.Key {
		case fieldBody, fieldType:
		case fieldPosition:
			s.Position = f.Value
		default:
			s.Params = append(s.Params, document.Attr{Key: f.Key, Value: parseFieldValue(f.Value)})
		}
	}
	if strings.EqualFold(typ, "free") {
		// Same permissiveness as the declarative reader: parameters on a
		// free joint are dropped, the position reference stays.
		s.Params = nil
	}
	return s
}

// parseFieldValue turns sheet text into a document value: two or more
// space-separated numbers make a vector, anything else stays scalar text.
func parseFieldValue(text string) document.Value {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return document.String(text)
	}
	vec := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return document.String(text)
		}
		vec[i] = f
	}
	return document.Vector(vec)
}
