// Package mjcf serializes a compiled scene graph into MJCF XML. The writer
// formats and orders; every number it touches was computed upstream.
package mjcf

import (
	"fmt"
	"os"

	"github.com/beevik/etree"

	"github.com/mjcad/mjcad/internal/scene"
)

// Marshal renders the graph as an indented MJCF document. Section order is
// fixed: compiler, option, asset, worldbody, then equality and actuator only
// when they have content.
func Marshal(g *scene.Graph) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	root := doc.CreateElement("mujoco")

	setAttrs(root.CreateElement("compiler"), g.Compiler)
	setAttrs(root.CreateElement("option"), g.Option)

	asset := root.CreateElement("asset")
	for _, m := range g.Meshes {
		mesh := asset.CreateElement("mesh")
		mesh.CreateAttr("name", m.Name)
		mesh.CreateAttr("file", m.File)
	}
	for _, el := range g.Textures {
		appendElement(asset, el)
	}
	for _, el := range g.Materials {
		appendElement(asset, el)
	}

	world := root.CreateElement("worldbody")
	appendElement(world, g.Floor)
	appendElement(world, g.Light)
	appendBody(world, g.Root)

	if len(g.Equality) > 0 {
		eq := root.CreateElement("equality")
		for _, el := range g.Equality {
			appendElement(eq, el)
		}
	}
	if len(g.Actuator) > 0 {
		act := root.CreateElement("actuator")
		for _, el := range g.Actuator {
			appendElement(act, el)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// WriteFile marshals g to path.
func WriteFile(path string, g *scene.Graph) error {
	b, err := Marshal(g)
	if err != nil {
		return fmt.Errorf("marshaling model: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing model: %w", err)
	}
	return nil
}

func appendBody(parent *etree.Element, b scene.Body) {
	el := parent.CreateElement("body")
	el.CreateAttr("name", b.Name)
	el.CreateAttr("pos", scene.FormatVec3(b.Pos))
	el.CreateAttr("quat", scene.FormatQuat(b.Quat))

	if b.Joint != nil {
		joint := el.CreateElement("joint")
		joint.CreateAttr("name", b.Joint.Name)
		joint.CreateAttr("type", b.Joint.Type)
		if b.Joint.Pos != nil {
			joint.CreateAttr("pos", scene.FormatVec3(*b.Joint.Pos))
		}
		if b.Joint.Axis != nil {
			joint.CreateAttr("axis", scene.FormatVec3(*b.Joint.Axis))
		}
		for _, a := range b.Joint.Attrs {
			joint.CreateAttr(a.Key, a.Value)
		}
	}

	geom := el.CreateElement("geom")
	geom.CreateAttr("type", "mesh")
	geom.CreateAttr("mesh", b.Geom.Mesh)
	geom.CreateAttr("material", b.Geom.Material)
	geom.CreateAttr("pos", scene.FormatVec3(b.Geom.Pos))
	geom.CreateAttr("quat", scene.FormatQuat(b.Geom.Quat))

	for _, child := range b.Children {
		appendBody(el, child)
	}
}

// appendElement writes one generic element. Zero elements (no tag) are
// skipped so partially filled graphs still marshal.
func appendElement(parent *etree.Element, el scene.Element) {
	if el.Tag == "" {
		return
	}
	created := parent.CreateElement(el.Tag)
	for _, a := range el.Attrs {
		created.CreateAttr(a.Key, a.Value)
	}
}

func setAttrs(el *etree.Element, attrs []scene.Attr) {
	for _, a := range attrs {
		el.CreateAttr(a.Key, a.Value)
	}
}
