// Package frame resolves named geometric references — datum points, datum
// lines, sketch anchors — into concrete global-frame vectors.
package frame

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mjcad/mjcad/internal/document"
	"github.com/mjcad/mjcad/internal/spatial"
)

// GeometrySource looks up named objects inside a part's source document.
// Placements come back exactly as authored there.
type GeometrySource interface {
	Object(source, label string) (spatial.Placement, bool)
}

// Resolver turns object references into points and directions.
type Resolver struct {
	src GeometrySource
}

// NewResolver returns a resolver over src.
func NewResolver(src GeometrySource) *Resolver {
	return &Resolver{src: src}
}

// Point returns the named object's position as authored in its source
// document.
func (r *Resolver) Point(source, label string) (mgl64.Vec3, error) {
	obj, ok := r.src.Object(source, label)
	if !ok {
		return mgl64.Vec3{}, &document.ReferenceNotFoundError{Label: label, Context: source}
	}
	return obj.Position, nil
}

// AxisDirection returns the named datum's direction: its local +Z axis,
// carried into the global frame by rotating. The caller must pass the
// orientation of the part the datum lives in; a datum referenced from a
// joint resolves in the parent part's document, with the parent's
// orientation.
func (r *Resolver) AxisDirection(source, label string, rotating spatial.Quaternion) (mgl64.Vec3, error) {
	obj, ok := r.src.Object(source, label)
	if !ok {
		return mgl64.Vec3{}, &document.ReferenceNotFoundError{Label: label, Context: source}
	}
	local := obj.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	return rotating.Rotate(local), nil
}
