package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mjcad/mjcad/internal/assembly"
	"github.com/mjcad/mjcad/internal/document"
	"github.com/mjcad/mjcad/internal/frame"
	"github.com/mjcad/mjcad/internal/palette"
	"github.com/mjcad/mjcad/internal/spatial"
	"github.com/mjcad/mjcad/internal/topology"
)

// Compiler turns a kinematic tree plus scene configuration into a Graph.
// A Compiler holds no per-compile state and is safe for concurrent use over
// independent inputs.
type Compiler struct {
	catalog *assembly.Catalog
	frames  *frame.Resolver
	colors  *palette.Palette
}

// NewCompiler wires a compiler to its assembly, reference resolver and
// material palette.
func NewCompiler(catalog *assembly.Catalog, frames *frame.Resolver, colors *palette.Palette) *Compiler {
	return &Compiler{catalog: catalog, frames: frames, colors: colors}
}

// compileContext is the per-compile state, threaded explicitly through the
// recursion rather than captured in closures.
type compileContext struct {
	anchor mgl64.Vec3
}

// Compile builds the scene graph. It either returns a complete graph or the
// first error; no partial output escapes.
func (c *Compiler) Compile(root *topology.Node, cfg document.Config) (*Graph, error) {
	anchor, err := c.resolveAnchor(root)
	if err != nil {
		return nil, err
	}
	cc := &compileContext{anchor: anchor}

	g := &Graph{
		Compiler: mergeAttrs(defaultCompiler, cfg.Compiler),
		Option:   mergeAttrs(defaultOption, cfg.Option),
	}

	g.Root, err = c.compileBody(cc, root, nil)
	if err != nil {
		return nil, err
	}

	c.compileAssets(g)

	ext := c.catalog.Extent().Translated(anchor.Mul(-1))
	if ext.IsEmpty() {
		// No part carried bounds; collapse to a point at the origin.
		ext = spatial.Box3{}
	}
	g.Floor = floorElement(ext)
	g.Light = lightElement(ext, g.Root.Name)

	for _, decl := range cfg.Equality {
		el, err := c.compileEquality(cc, decl)
		if err != nil {
			return nil, err
		}
		g.Equality = append(g.Equality, el)
	}
	for _, decl := range cfg.Actuator {
		g.Actuator = append(g.Actuator, Element{Tag: decl.Kind, Attrs: encodeAttrs(decl.Attrs)})
	}

	return g, nil
}

// resolveAnchor reads the scene anchor off the root joint's position
// reference. The anchor is subtracted from every body exactly once, here and
// nowhere else in the recursion.
func (c *Compiler) resolveAnchor(root *topology.Node) (mgl64.Vec3, error) {
	if root.Joint == nil || root.Joint.Position == "" {
		return mgl64.Vec3{}, nil
	}
	part, ok := c.catalog.Part(root.Label)
	if !ok {
		return mgl64.Vec3{}, &document.ReferenceNotFoundError{Label: root.Label, Context: "scene root"}
	}
	p, err := c.frames.Point(part.Source, root.Joint.Position)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("resolving scene anchor: %w", err)
	}
	return p, nil
}

func (c *Compiler) compileBody(cc *compileContext, node *topology.Node, parent *assembly.Part) (Body, error) {
	part, ok := c.catalog.Part(node.Label)
	if !ok {
		return Body{}, &document.ReferenceNotFoundError{Label: node.Label, Context: "body tree"}
	}

	material, ok := c.colors.Name(part.Color)
	if !ok {
		return Body{}, fmt.Errorf("no material allocated for part %q", part.Label)
	}

	pos := part.Position.Sub(cc.anchor)
	quat := part.Orientation.ScalarFirst()
	body := Body{
		Name: part.Label,
		Pos:  pos,
		Quat: quat,
		Geom: Geom{Mesh: part.MeshName, Material: material, Pos: pos, Quat: quat},
	}

	if node.Joint != nil {
		axisIn := &part
		if parent != nil {
			axisIn = parent
		}
		joint, err := c.compileJoint(node.Joint, &part, axisIn, pos)
		if err != nil {
			return Body{}, err
		}
		body.Joint = joint
	}

	for _, child := range node.Children {
		cb, err := c.compileBody(cc, child, &part)
		if err != nil {
			return Body{}, err
		}
		body.Children = append(body.Children, cb)
	}
	return body, nil
}

// compileJoint emits one joint. Free joints carry only a name and type. For
// everything else the pivot coincides with the body's own emitted position,
// and a named axis resolves as a datum in the parent part's document rotated
// by the parent part's orientation.
func (c *Compiler) compileJoint(spec *topology.Spec, part, axisIn *assembly.Part, bodyPos mgl64.Vec3) (*Joint, error) {
	j := &Joint{Name: part.Label, Type: spec.Type}
	if strings.EqualFold(spec.Type, "free") {
		return j, nil
	}

	pos := bodyPos
	j.Pos = &pos

	for _, p := range spec.Params {
		if p.Key != "axis" || j.Axis != nil {
			j.Attrs = append(j.Attrs, Attr{Key: p.Key, Value: p.Value.Encode()})
			continue
		}
		axis, err := c.resolveAxis(p.Value, axisIn, part.Label)
		if err != nil {
			return nil, err
		}
		if axis == nil {
			j.Attrs = append(j.Attrs, Attr{Key: p.Key, Value: p.Value.Encode()})
			continue
		}
		j.Axis = axis
	}
	return j, nil
}

// resolveAxis turns an axis parameter into a direction: literal 3-vectors
// pass through untouched, scalar names resolve as datums. Any other shape
// returns nil and is emitted verbatim by the caller.
func (c *Compiler) resolveAxis(v document.Value, axisIn *assembly.Part, jointOf string) (*mgl64.Vec3, error) {
	if vec, ok := v.Vector(); ok {
		if len(vec) != 3 {
			return nil, nil
		}
		axis := mgl64.Vec3{vec[0], vec[1], vec[2]}
		return &axis, nil
	}
	label, ok := v.Scalar()
	if !ok || label == "" {
		return nil, nil
	}
	dir, err := c.frames.AxisDirection(axisIn.Source, label, axisIn.Orientation)
	if err != nil {
		return nil, fmt.Errorf("resolving axis of joint on body %q: %w", jointOf, err)
	}
	return &dir, nil
}

// compileAssets lays out mesh references (deduplicated by name, first seen
// wins), the fixed grid texture/material pair, then the palette materials.
func (c *Compiler) compileAssets(g *Graph) {
	seen := make(map[string]bool)
	for _, part := range c.catalog.Parts() {
		if seen[part.MeshName] {
			continue
		}
		seen[part.MeshName] = true
		g.Meshes = append(g.Meshes, MeshAsset{
			Name: part.MeshName,
			File: "./" + MeshDir + "/" + part.MeshName + ".stl",
		})
	}

	g.Textures = []Element{gridTexture()}
	g.Materials = []Element{gridMaterial()}
	for _, e := range c.colors.Entries() {
		g.Materials = append(g.Materials, Element{Tag: "material", Attrs: []Attr{
			{Key: "name", Value: e.Name},
			{Key: "rgba", Value: formatRGBA(e.Color)},
		}})
	}
}

// compileEquality resolves a constraint's anchor into the global frame:
// global = R2*a + T2, with body2's orientation and its emitted, anchor
// shifted position. Declarations without the body1/body2/anchor triple pass
// through verbatim.
func (c *Compiler) compileEquality(cc *compileContext, decl document.Decl) (Element, error) {
	_, hasB1 := attrValue(decl.Attrs, "body1")
	b2, hasB2 := attrValue(decl.Attrs, "body2")
	anchor, hasAnchor := attrValue(decl.Attrs, "anchor")
	if !hasB1 || !hasB2 || !hasAnchor {
		return Element{Tag: decl.Kind, Attrs: encodeAttrs(decl.Attrs)}, nil
	}

	b2Label, _ := b2.Scalar()
	part, ok := c.catalog.Part(b2Label)
	if !ok {
		return Element{}, &document.ReferenceNotFoundError{
			Label:   b2Label,
			Context: decl.Kind + " constraint",
		}
	}

	local, err := c.anchorPoint(anchor, &part, decl.Kind)
	if err != nil {
		return Element{}, err
	}
	global := part.Orientation.Rotate(local).Add(part.Position.Sub(cc.anchor))

	attrs := make([]Attr, 0, len(decl.Attrs))
	for _, a := range decl.Attrs {
		if a.Key == "anchor" {
			attrs = append(attrs, Attr{Key: "anchor", Value: FormatVec3(global)})
			continue
		}
		attrs = append(attrs, Attr{Key: a.Key, Value: a.Value.Encode()})
	}
	return Element{Tag: decl.Kind, Attrs: attrs}, nil
}

// anchorPoint reads a constraint anchor: a literal 3-vector is already in
// body2's local frame, a scalar names an object in body2's document.
func (c *Compiler) anchorPoint(v document.Value, part *assembly.Part, kind string) (mgl64.Vec3, error) {
	if vec, ok := v.Vector(); ok && len(vec) == 3 {
		return mgl64.Vec3{vec[0], vec[1], vec[2]}, nil
	}
	if label, ok := v.Scalar(); ok && label != "" {
		p, err := c.frames.Point(part.Source, label)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("resolving anchor of %s constraint: %w", kind, err)
		}
		return p, nil
	}
	return mgl64.Vec3{}, &document.MalformedTopologyError{
		Detail: fmt.Sprintf("%s constraint anchor must be a point name or a 3-vector", kind),
	}
}

// mergeAttrs overlays user attributes onto defaults: matching keys replace
// in place, new keys append in declared order.
func mergeAttrs(defaults, overrides []document.Attr) []Attr {
	merged := append([]document.Attr(nil), defaults...)
	for _, o := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Key == o.Key {
				merged[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, o)
		}
	}
	return encodeAttrs(merged)
}

func encodeAttrs(attrs []document.Attr) []Attr {
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Key: a.Key, Value: a.Value.Encode()}
	}
	return out
}

func attrValue(attrs []document.Attr, key string) (document.Value, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return document.Value{}, false
}
