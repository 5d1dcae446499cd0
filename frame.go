package constrainedcamera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-8

// Frame is a position and an orientation in world coordinates. Translations
// are expressed in world coordinates and rotations in the frame's local
// coordinates; both go through the attached Constraint, if any.
type Frame struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
	constraint  Constraint
}

func NewFrame() *Frame {
	return &Frame{
		orientation: mgl64.QuatIdent(),
	}
}

func (f *Frame) Position() mgl64.Vec3 {
	return f.position
}

func (f *Frame) SetPosition(p mgl64.Vec3) {
	f.position = p
}

func (f *Frame) Orientation() mgl64.Quat {
	return f.orientation
}

func (f *Frame) SetOrientation(q mgl64.Quat) {
	if q.Len() < epsilon {
		f.orientation = mgl64.QuatIdent()
		return
	}
	f.orientation = q.Normalize()
}

func (f *Frame) Constraint() Constraint {
	return f.constraint
}

// SetConstraint replaces the constraint. nil removes it.
func (f *Frame) SetConstraint(c Constraint) {
	f.constraint = c
}

// TransformOf converts a world vector into the frame's local coordinates.
func (f *Frame) TransformOf(v mgl64.Vec3) mgl64.Vec3 {
	return f.orientation.Conjugate().Rotate(v)
}

// InverseTransformOf converts a local vector into world coordinates.
func (f *Frame) InverseTransformOf(v mgl64.Vec3) mgl64.Vec3 {
	return f.orientation.Rotate(v)
}

// CoordinatesOf returns the local coordinates of a world point.
func (f *Frame) CoordinatesOf(p mgl64.Vec3) mgl64.Vec3 {
	return f.TransformOf(p.Sub(f.position))
}

// Translate moves the frame by t (world coordinates).
func (f *Frame) Translate(t mgl64.Vec3) {
	if f.constraint != nil {
		t = f.constraint.ConstrainTranslation(t, f)
	}
	f.position = f.position.Add(t)
}

// Rotate applies q, expressed in local coordinates, to the orientation.
func (f *Frame) Rotate(q mgl64.Quat) {
	if f.constraint != nil {
		q = f.constraint.ConstrainRotation(q, f)
	}
	f.SetOrientation(f.orientation.Mul(q))
}

// RotateAroundPoint rotates the frame by q (local coordinates) around a world
// point. The orbit translation is filtered by the constraint as well.
func (f *Frame) RotateAroundPoint(q mgl64.Quat, point mgl64.Vec3) {
	if f.constraint != nil {
		q = f.constraint.ConstrainRotation(q, f)
	}
	f.SetOrientation(f.orientation.Mul(q))

	worldAxis := f.InverseTransformOf(q.V)
	orbit := quatFromAxisAngle(worldAxis, quatAngle(q))

	trans := point.Add(orbit.Rotate(f.position.Sub(point))).Sub(f.position)
	if f.constraint != nil {
		trans = f.constraint.ConstrainTranslation(trans, f)
	}
	f.position = f.position.Add(trans)
}

// quatFromAxisAngle returns the identity for a null axis.
func quatFromAxisAngle(axis mgl64.Vec3, angle float64) mgl64.Quat {
	norm := axis.Len()
	if norm < epsilon {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatRotate(angle, axis.Mul(1/norm))
}

func quatAngle(q mgl64.Quat) float64 {
	w := q.W
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	return 2 * math.Acos(w)
}

func projectOnAxis(v, direction mgl64.Vec3) mgl64.Vec3 {
	sq := direction.Dot(direction)
	if sq < epsilon {
		return v
	}
	return direction.Mul(v.Dot(direction) / sq)
}

func projectOnPlane(v, normal mgl64.Vec3) mgl64.Vec3 {
	sq := normal.Dot(normal)
	if sq < epsilon {
		return v
	}
	return v.Sub(normal.Mul(v.Dot(normal) / sq))
}
