// Package hcldoc reads scene documents written in HCL and translates them
// into the format-agnostic document model.
package hcldoc

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mjcad/mjcad/internal/document"
)

// fileRoot decodes the top-level blocks of a scene document. The remain body
// tolerates block types this tool does not know about.
type fileRoot struct {
	Compiler *settingsBlock `hcl:"compiler,block"`
	Option   *settingsBlock `hcl:"option,block"`
	Bodies   []*bodyBlock   `hcl:"body,block"`
	Equality []*declBlock   `hcl:"equality,block"`
	Actuator []*declBlock   `hcl:"actuator,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

// settingsBlock is a compiler or option block: free-form attributes, no
// fixed schema.
type settingsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// bodyBlock is one body declaration. Nested body blocks are its children.
type bodyBlock struct {
	Label  string       `hcl:"label,label"`
	Joint  *jointBlock  `hcl:"joint,block"`
	Bodies []*bodyBlock `hcl:"body,block"`
}

// jointBlock is a body's joint. Everything beyond type and position is a
// passthrough parameter, axis included.
type jointBlock struct {
	Type     string   `hcl:"type"`
	Position string   `hcl:"position,optional"`
	Remain   hcl.Body `hcl:",remain"`
}

// declBlock is one equality or actuator declaration. The label is the output
// element's tag and is never interpreted.
type declBlock struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`
}

// ParseFile reads and translates the scene document at path.
func ParseFile(path string) (*document.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing scene document %s: %w", path, diags)
	}
	return translate(file.Body)
}

// Parse translates an in-memory scene document. The filename only labels
// diagnostics.
func Parse(src []byte, filename string) (*document.Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing scene document %s: %w", filename, diags)
	}
	return translate(file.Body)
}

func translate(body hcl.Body) (*document.Document, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decoding scene document: %w", diags)
	}

	doc := &document.Document{}

	var err error
	if doc.Config.Compiler, err = settingsAttrs(root.Compiler); err != nil {
		return nil, fmt.Errorf("compiler block: %w", err)
	}
	if doc.Config.Option, err = settingsAttrs(root.Option); err != nil {
		return nil, fmt.Errorf("option block: %w", err)
	}

	for _, block := range root.Equality {
		decl, err := declFromBlock(block)
		if err != nil {
			return nil, fmt.Errorf("equality %q: %w", block.Kind, err)
		}
		doc.Config.Equality = append(doc.Config.Equality, decl)
	}
	for _, block := range root.Actuator {
		decl, err := declFromBlock(block)
		if err != nil {
			return nil, fmt.Errorf("actuator %q: %w", block.Kind, err)
		}
		doc.Config.Actuator = append(doc.Config.Actuator, decl)
	}

	for _, block := range root.Bodies {
		node, err := nodeFromBlock(block)
		if err != nil {
			return nil, err
		}
		doc.Bodies = append(doc.Bodies, node)
	}
	return doc, nil
}

func nodeFromBlock(block *bodyBlock) (*document.TopologyNode, error) {
	node := &document.TopologyNode{Label: block.Label}

	if block.Joint != nil {
		params, err := bodyAttrs(block.Joint.Remain)
		if err != nil {
			return nil, fmt.Errorf("joint of body %q: %w", block.Label, err)
		}
		node.Joint = &document.JointDecl{
			Type:     block.Joint.Type,
			Position: block.Joint.Position,
			Params:   params,
		}
	}

	for _, child := range block.Bodies {
		childNode, err := nodeFromBlock(child)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

func declFromBlock(block *declBlock) (document.Decl, error) {
	attrs, err := bodyAttrs(block.Body)
	if err != nil {
		return document.Decl{}, err
	}
	return document.Decl{Kind: block.Kind, Attrs: attrs}, nil
}

func settingsAttrs(block *settingsBlock) ([]document.Attr, error) {
	if block == nil {
		return nil, nil
	}
	return bodyAttrs(block.Body)
}
