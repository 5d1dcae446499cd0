package constrainedcamera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MouseRotate orbits the camera around its pivot for a drag of (dx, dy)
// pixels. The scene appears to follow the mouse.
func (c *Camera) MouseRotate(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	angle := c.RotationSensitivity * math.Hypot(dx, dy)
	q := quatFromAxisAngle(mgl64.Vec3{-dy, -dx, 0}, angle)
	c.frame.RotateAroundPoint(q, c.pivot)
}

// MousePan slides the camera so that points at the pivot depth follow a drag
// of (dx, dy) pixels.
func (c *Camera) MousePan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	x, y := ConvertFromScreen(0, 0, dx, dy, c.pivotDepth())
	k := c.TranslationSensitivity
	local := mgl64.Vec3{-x * k, -y * k, 0}
	c.frame.Translate(c.frame.InverseTransformOf(local))
}

// MouseWheel moves the camera along its view direction. A positive delta
// moves towards the pivot by WheelSensitivity of the current distance.
func (c *Camera) MouseWheel(delta float64) {
	if delta == 0 {
		return
	}
	local := mgl64.Vec3{0, 0, -delta * c.WheelSensitivity * c.pivotDepth()}
	c.frame.Translate(c.frame.InverseTransformOf(local))
}
