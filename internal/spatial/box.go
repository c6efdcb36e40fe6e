package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box3 is an axis-aligned bounding box. The zero value is a degenerate box at
// the origin; use EmptyBox3 when accumulating so the first expansion
// initializes both corners.
type Box3 struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyBox3 returns a box containing no points.
func EmptyBox3() Box3 {
	return Box3{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint grows the box to contain p.
func (b *Box3) ExpandByPoint(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

// ExpandByBox grows the box to contain o.
func (b *Box3) ExpandByBox(o Box3) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Translated returns a copy of the box shifted by v. Empty boxes stay empty.
func (b Box3) Translated(v mgl64.Vec3) Box3 {
	if b.IsEmpty() {
		return b
	}
	return Box3{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Size returns the per-axis extent, zero for an empty box.
func (b Box3) Size() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}
