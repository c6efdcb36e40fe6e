// Package assembly models the CAD side of the pipeline: rigid parts with
// authored poses, and the catalog compile-time label lookups resolve
// against.
package assembly

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mjcad/mjcad/internal/spatial"
)

// Color is a part color as authored, channels in [0, 1]. The fourth channel
// holds the source document's transparency; the palette inverts it into
// opacity when materials are allocated.
type Color [4]float64

// Part is one rigid part lifted out of a CAD assembly. Parts are value
// objects: the catalog hands out copies and nothing downstream mutates one.
type Part struct {
	Label       string
	Source      string // document the part's geometry references resolve in
	MeshName    string // mesh asset base name, no extension
	Position    mgl64.Vec3
	Orientation spatial.Quaternion
	Color       Color
	Bounds      spatial.Box3 // axis-aligned box in the global frame, as exported
}

// Catalog resolves part labels and remembers the input order, so everything
// derived from "all parts" is stable across runs.
type Catalog struct {
	parts map[string]Part
	order []string
}

// NewCatalog builds a catalog. Labels must be unique.
func NewCatalog(parts []Part) (*Catalog, error) {
	c := &Catalog{parts: make(map[string]Part, len(parts))}
	for _, p := range parts {
		if p.Label == "" {
			return nil, fmt.Errorf("part without a label")
		}
		if _, dup := c.parts[p.Label]; dup {
			return nil, fmt.Errorf("duplicate part label %q", p.Label)
		}
		c.parts[p.Label] = p
		c.order = append(c.order, p.Label)
	}
	return c, nil
}

// Part returns the labeled part.
func (c *Catalog) Part(label string) (Part, bool) {
	p, ok := c.parts[label]
	return p, ok
}

// Parts returns all parts in input order.
func (c *Catalog) Parts() []Part {
	out := make([]Part, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, c.parts[label])
	}
	return out
}

// Len returns the number of parts.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Extent returns the box enclosing every part, in the global frame the parts
// were authored in. It is derived on demand rather than stored.
func (c *Catalog) Extent() spatial.Box3 {
	box := spatial.EmptyBox3()
	for _, label := range c.order {
		box.ExpandByBox(c.parts[label].Bounds)
	}
	return box
}
