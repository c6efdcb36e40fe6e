package scene

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mjcad/mjcad/internal/assembly"
)

// FormatNum renders a number the way the output document wants every
// number: the shortest decimal form that round-trips.
func FormatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatVec3 renders a vector as space-joined components.
func FormatVec3(v mgl64.Vec3) string {
	return FormatNum(v[0]) + " " + FormatNum(v[1]) + " " + FormatNum(v[2])
}

// FormatQuat renders a scalar-first quaternion as space-joined components.
func FormatQuat(q [4]float64) string {
	return FormatNum(q[0]) + " " + FormatNum(q[1]) + " " + FormatNum(q[2]) + " " + FormatNum(q[3])
}

// formatRGBA renders material channels at fixed two-decimal precision.
func formatRGBA(c assembly.Color) string {
	return fmt.Sprintf("%.2f %.2f %.2f %.2f", c[0], c[1], c[2], c[3])
}
