package constrainedcamera

import "fmt"

// ConstraintType limits either the translation or the rotation of a frame.
type ConstraintType int

const (
	FREE ConstraintType = iota
	PLANE
	AXIS
	FORBIDDEN
)

func (t ConstraintType) String() string {
	switch t {
	case FREE:
		return "FREE"
	case PLANE:
		return "PLANE"
	case AXIS:
		return "AXIS"
	case FORBIDDEN:
		return "FORBIDDEN"
	}
	return fmt.Sprintf("ConstraintType(%d)", int(t))
}

// NextTranslationConstraintType cycles FREE -> PLANE -> AXIS -> FORBIDDEN -> FREE.
func NextTranslationConstraintType(t ConstraintType) ConstraintType {
	switch t {
	case FREE:
		return PLANE
	case PLANE:
		return AXIS
	case AXIS:
		return FORBIDDEN
	case FORBIDDEN:
		return FREE
	default:
		return FREE
	}
}

// NextRotationConstraintType cycles FREE -> AXIS -> FORBIDDEN -> FREE.
// PLANE has no meaning for a rotation and always moves back to FREE.
func NextRotationConstraintType(t ConstraintType) ConstraintType {
	switch t {
	case FREE:
		return AXIS
	case PLANE:
		return FREE
	case AXIS:
		return FORBIDDEN
	case FORBIDDEN:
		return FREE
	default:
		return FREE
	}
}
