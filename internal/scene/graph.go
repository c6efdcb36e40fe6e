package scene

import "github.com/go-gl/mathgl/mgl64"

// Attr is one emitted attribute, already encoded to its output text.
type Attr struct {
	Key   string
	Value string
}

// Element is one generic emitted element: a tag plus ordered attributes.
// Constraints, actuators, textures and materials all take this shape.
type Element struct {
	Tag   string
	Attrs []Attr
}

// MeshAsset is one mesh file reference in the asset section.
type MeshAsset struct {
	Name string
	File string
}

// Geom is the visual/collision geometry of a body. It repeats the body's
// pos and quat; the target format wants the frame on both elements.
type Geom struct {
	Mesh     string
	Material string
	Pos      mgl64.Vec3
	Quat     [4]float64 // scalar-first
}

// Joint is one emitted joint. Pos and Axis stay nil for joint kinds that do
// not carry them.
type Joint struct {
	Name  string
	Type  string
	Pos   *mgl64.Vec3
	Axis  *mgl64.Vec3
	Attrs []Attr
}

// Body is one emitted body. Children preserve topology order.
type Body struct {
	Name     string
	Pos      mgl64.Vec3
	Quat     [4]float64 // scalar-first
	Geom     Geom
	Joint    *Joint
	Children []Body
}

// Graph is a fully computed scene: everything the writer needs and nothing
// it has to derive. A Graph is built fresh by every compile.
type Graph struct {
	Compiler []Attr
	Option   []Attr

	Meshes    []MeshAsset
	Textures  []Element
	Materials []Element

	Floor Element
	Light Element
	Root  Body

	Equality []Element
	Actuator []Element
}
