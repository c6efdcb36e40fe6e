// Package scene compiles a kinematic tree against its assembly into the
// fully computed scene graph the writer serializes.
//
// Compilation is a single pass over immutable inputs: resolve the scene
// anchor, walk the tree emitting framed bodies, then lay out assets, world
// furniture, constraints and actuators. Everything geometric is computed
// here; the writer only formats.
package scene
