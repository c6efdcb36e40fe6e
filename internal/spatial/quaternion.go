// Package spatial carries the geometric conventions shared by the whole
// pipeline: CAD snapshots author orientations vector-first, the scene format
// wants them scalar-first, and all rotation math runs through mgl64.
package spatial

import "github.com/go-gl/mathgl/mgl64"

// Quaternion is an orientation in the source convention: vector part first,
// scalar last (x, y, z, w).
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity returns the no-rotation quaternion.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// ScalarFirst reindexes q into the target convention (w, x, y, z).
// The reindex is a cyclic permutation, not a swap: feeding an already
// scalar-first array back through it does not restore the original.
// Conversions back must go through VectorFirst.
func (q Quaternion) ScalarFirst() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}

// VectorFirst is the exact inverse of Quaternion.ScalarFirst.
func VectorFirst(c [4]float64) Quaternion {
	return Quaternion{X: c[1], Y: c[2], Z: c[3], W: c[0]}
}

// Mgl converts q for rotation math.
func (q Quaternion) Mgl() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// Rotate applies the rotation q to v.
func (q Quaternion) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return q.Mgl().Rotate(v)
}
