package constrainedcamera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera looks down the local -Z axis of its frame with +Y up, and orbits
// around a pivot point.
type Camera struct {
	frame       *Frame
	pivot       mgl64.Vec3
	sceneRadius float64

	RotationSensitivity    float64
	TranslationSensitivity float64
	WheelSensitivity       float64
}

func NewCamera() *Camera {
	c := &Camera{
		frame:                  NewFrame(),
		sceneRadius:            1,
		RotationSensitivity:    0.01,
		TranslationSensitivity: 1,
		WheelSensitivity:       0.1,
	}
	c.frame.SetPosition(mgl64.Vec3{0, 0, 1})
	return c
}

// Frame is the manipulation frame; the active constraint is attached to it.
func (c *Camera) Frame() *Frame {
	return c.frame
}

func (c *Camera) Position() mgl64.Vec3 {
	return c.frame.Position()
}

func (c *Camera) SetPosition(x, y, z float64) {
	c.frame.SetPosition(mgl64.Vec3{x, y, z})
}

func (c *Camera) Pivot() mgl64.Vec3 {
	return c.pivot
}

func (c *Camera) SetPivot(p mgl64.Vec3) {
	c.pivot = p
}

func (c *Camera) SceneRadius() float64 {
	return c.sceneRadius
}

func (c *Camera) SetSceneRadius(r float64) {
	if r <= 0 {
		return
	}
	c.sceneRadius = r
}

// ViewDirection is the world direction the camera looks at.
func (c *Camera) ViewDirection() mgl64.Vec3 {
	return c.frame.InverseTransformOf(mgl64.Vec3{0, 0, -1})
}

// LookAt turns the camera towards target, keeping world +Y up when possible.
// The constraint is bypassed.
func (c *Camera) LookAt(target mgl64.Vec3) {
	forward := target.Sub(c.frame.Position())
	if forward.Len() < epsilon {
		return
	}
	zAxis := forward.Mul(-1 / forward.Len())

	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(zAxis.Dot(up)) > 0.999 {
		up = mgl64.Vec3{0, 0, 1}
	}
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	basis := mgl64.Mat4{
		xAxis[0], xAxis[1], xAxis[2], 0,
		yAxis[0], yAxis[1], yAxis[2], 0,
		zAxis[0], zAxis[1], zAxis[2], 0,
		0, 0, 0, 1,
	}
	c.frame.SetOrientation(mgl64.Mat4ToQuat(basis))
}

// ShowEntireScene moves the camera back along its view direction until the
// scene sphere around the pivot fits the view.
func (c *Camera) ShowEntireScene() {
	distance := c.sceneRadius * 2.8
	back := c.frame.InverseTransformOf(mgl64.Vec3{0, 0, 1})
	c.frame.SetPosition(c.pivot.Add(back.Mul(distance)))
}

// GetCameraMatrix maps world points into the renderer's camera space: eye at
// the origin, looking down +Z, +Y up.
func (c *Camera) GetCameraMatrix() *Matrix {
	pos := c.frame.Position()
	view := mgl64.Scale3D(1, 1, -1).
		Mul4(c.frame.Orientation().Conjugate().Mat4()).
		Mul4(mgl64.Translate3D(-pos[0], -pos[1], -pos[2]))
	return FromMat4(view)
}

// pivotDepth is the distance from the eye to the pivot along the view axis.
func (c *Camera) pivotDepth() float64 {
	d := c.frame.CoordinatesOf(c.pivot)[2]
	if d > -nearPlaneZ {
		return nearPlaneZ
	}
	return -d
}
