package spatial

import "github.com/go-gl/mathgl/mgl64"

// Placement is a rigid pose: where an object sits and how it is turned.
type Placement struct {
	Position    mgl64.Vec3
	Orientation Quaternion
}
