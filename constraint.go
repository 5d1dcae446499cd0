package constrainedcamera

import "github.com/go-gl/mathgl/mgl64"

// Constraint filters the translations and rotations applied to a Frame.
type Constraint interface {
	TranslationConstraintType() ConstraintType
	SetTranslationConstraintType(t ConstraintType)
	TranslationConstraintDirection() mgl64.Vec3
	SetTranslationConstraintDirection(d mgl64.Vec3)

	RotationConstraintType() ConstraintType
	SetRotationConstraintType(t ConstraintType)
	RotationConstraintDirection() mgl64.Vec3
	SetRotationConstraintDirection(d mgl64.Vec3)

	// ConstrainTranslation filters t, a world translation about to be applied to f.
	ConstrainTranslation(t mgl64.Vec3, f *Frame) mgl64.Vec3
	// ConstrainRotation filters q, a local rotation about to be applied to f.
	ConstrainRotation(q mgl64.Quat, f *Frame) mgl64.Quat
}

// AxisPlaneConstraint stores a type and a unit direction for translation and
// rotation. The embedding type decides in which coordinate system the
// directions are read.
type AxisPlaneConstraint struct {
	translationType ConstraintType
	translationDir  mgl64.Vec3
	rotationType    ConstraintType
	rotationDir     mgl64.Vec3
}

func newAxisPlaneConstraint() AxisPlaneConstraint {
	return AxisPlaneConstraint{
		translationDir: mgl64.Vec3{1, 0, 0},
		rotationDir:    mgl64.Vec3{1, 0, 0},
	}
}

func (c *AxisPlaneConstraint) TranslationConstraintType() ConstraintType {
	return c.translationType
}

func (c *AxisPlaneConstraint) SetTranslationConstraintType(t ConstraintType) {
	c.translationType = t
}

func (c *AxisPlaneConstraint) TranslationConstraintDirection() mgl64.Vec3 {
	return c.translationDir
}

// SetTranslationConstraintDirection stores the normalized direction. A null
// vector is ignored and an AXIS or PLANE constraint falls back to FREE.
func (c *AxisPlaneConstraint) SetTranslationConstraintDirection(d mgl64.Vec3) {
	norm := d.Len()
	if norm < epsilon {
		if c.translationType == AXIS || c.translationType == PLANE {
			c.translationType = FREE
		}
		return
	}
	c.translationDir = d.Mul(1 / norm)
}

func (c *AxisPlaneConstraint) RotationConstraintType() ConstraintType {
	return c.rotationType
}

func (c *AxisPlaneConstraint) SetRotationConstraintType(t ConstraintType) {
	c.rotationType = t
}

func (c *AxisPlaneConstraint) RotationConstraintDirection() mgl64.Vec3 {
	return c.rotationDir
}

// SetRotationConstraintDirection behaves like SetTranslationConstraintDirection.
func (c *AxisPlaneConstraint) SetRotationConstraintDirection(d mgl64.Vec3) {
	norm := d.Len()
	if norm < epsilon {
		if c.rotationType == AXIS || c.rotationType == PLANE {
			c.rotationType = FREE
		}
		return
	}
	c.rotationDir = d.Mul(1 / norm)
}

// constrainTranslationAlong applies the translation type with a direction
// already expressed in world coordinates.
func (c *AxisPlaneConstraint) constrainTranslationAlong(t, dir mgl64.Vec3) mgl64.Vec3 {
	switch c.translationType {
	case PLANE:
		return projectOnPlane(t, dir)
	case AXIS:
		return projectOnAxis(t, dir)
	case FORBIDDEN:
		return mgl64.Vec3{}
	}
	return t
}

// constrainRotationAround applies the rotation type with an axis already
// expressed in the frame's local coordinates. PLANE leaves q untouched.
func (c *AxisPlaneConstraint) constrainRotationAround(q mgl64.Quat, axis mgl64.Vec3) mgl64.Quat {
	switch c.rotationType {
	case AXIS:
		return quatFromAxisAngle(projectOnAxis(q.V, axis), quatAngle(q))
	case FORBIDDEN:
		return mgl64.QuatIdent()
	}
	return q
}

// WorldConstraint reads its directions in world coordinates.
type WorldConstraint struct {
	AxisPlaneConstraint
}

func NewWorldConstraint() *WorldConstraint {
	return &WorldConstraint{AxisPlaneConstraint: newAxisPlaneConstraint()}
}

func (c *WorldConstraint) ConstrainTranslation(t mgl64.Vec3, f *Frame) mgl64.Vec3 {
	return c.constrainTranslationAlong(t, c.translationDir)
}

func (c *WorldConstraint) ConstrainRotation(q mgl64.Quat, f *Frame) mgl64.Quat {
	return c.constrainRotationAround(q, f.TransformOf(c.rotationDir))
}

// LocalConstraint reads its directions in the constrained frame's coordinates.
type LocalConstraint struct {
	AxisPlaneConstraint
}

func NewLocalConstraint() *LocalConstraint {
	return &LocalConstraint{AxisPlaneConstraint: newAxisPlaneConstraint()}
}

func (c *LocalConstraint) ConstrainTranslation(t mgl64.Vec3, f *Frame) mgl64.Vec3 {
	return c.constrainTranslationAlong(t, f.InverseTransformOf(c.translationDir))
}

func (c *LocalConstraint) ConstrainRotation(q mgl64.Quat, f *Frame) mgl64.Quat {
	return c.constrainRotationAround(q, c.rotationDir)
}

// CameraConstraint reads its directions in a camera's coordinates. Attached to
// that camera's own frame it is equivalent to a LocalConstraint.
type CameraConstraint struct {
	AxisPlaneConstraint
	camera *Camera
}

func NewCameraConstraint(camera *Camera) *CameraConstraint {
	return &CameraConstraint{
		AxisPlaneConstraint: newAxisPlaneConstraint(),
		camera:              camera,
	}
}

func (c *CameraConstraint) Camera() *Camera {
	return c.camera
}

func (c *CameraConstraint) ConstrainTranslation(t mgl64.Vec3, f *Frame) mgl64.Vec3 {
	return c.constrainTranslationAlong(t, c.camera.Frame().InverseTransformOf(c.translationDir))
}

func (c *CameraConstraint) ConstrainRotation(q mgl64.Quat, f *Frame) mgl64.Quat {
	return c.constrainRotationAround(q, f.TransformOf(c.camera.Frame().InverseTransformOf(c.rotationDir)))
}
