package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mjcad/mjcad/internal/document"
	"github.com/mjcad/mjcad/internal/spatial"
)

// MeshDir is the directory mesh assets reference, relative to the model
// file.
const MeshDir = "mesh_files"

// Baseline compiler and option settings. User configuration overrides by
// key; unmatched keys append after these.
var (
	defaultCompiler = []document.Attr{
		{Key: "coordinate", Value: document.String("global")},
	}
	defaultOption = []document.Attr{
		{Key: "gravity", Value: document.String("0 0 -1")},
		{Key: "timestep", Value: document.String("0.005")},
	}
)

func gridTexture() Element {
	return Element{Tag: "texture", Attrs: []Attr{
		{Key: "name", Value: "grid"},
		{Key: "type", Value: "2d"},
		{Key: "builtin", Value: "checker"},
		{Key: "width", Value: "512"},
		{Key: "height", Value: "512"},
		{Key: "rgb1", Value: "0.1 0.2 0.3"},
		{Key: "rgb2", Value: "0.2 0.3 0.4"},
	}}
}

func gridMaterial() Element {
	return Element{Tag: "material", Attrs: []Attr{
		{Key: "name", Value: "grid"},
		{Key: "texture", Value: "grid"},
		{Key: "texrepeat", Value: "10 10"},
		{Key: "texuniform", Value: "true"},
		{Key: "reflectance", Value: ".2"},
	}}
}

// floorElement sizes the ground plane at ten times the assembly footprint.
func floorElement(ext spatial.Box3) Element {
	size := ext.Size()
	return Element{Tag: "geom", Attrs: []Attr{
		{Key: "name", Value: "floor"},
		{Key: "size", Value: FormatNum(10*size[0]) + " " + FormatNum(10*size[1]) + " 0.05"},
		{Key: "type", Value: "plane"},
		{Key: "material", Value: "grid"},
		{Key: "condim", Value: "3"},
	}}
}

// lightElement places the spotlight above and behind the assembly, aimed at
// the root body, with the cutoff opened to twice the largest extent.
func lightElement(ext spatial.Box3, target string) Element {
	cutoff := 2 * math.Max(ext.Max[0], math.Max(ext.Max[1], ext.Max[2]))
	return Element{Tag: "light", Attrs: []Attr{
		{Key: "name", Value: "spotlight"},
		{Key: "mode", Value: "targetbodycom"},
		{Key: "target", Value: target},
		{Key: "diffuse", Value: "0.8 0.8 0.8"},
		{Key: "specular", Value: "0.2 0.2 0.2"},
		{Key: "pos", Value: FormatVec3(mgl64.Vec3{0, 1.5 * ext.Max[1], 1.5 * ext.Max[2]})},
		{Key: "cutoff", Value: FormatNum(cutoff)},
	}}
}
