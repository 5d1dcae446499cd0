package constrainedcamera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	worldConstraintIndex  = 0
	cameraConstraintIndex = 1
)

// ViewerState is the constraint configuration edited from the keyboard: two
// constraints (world and camera relative), the index of the one attached to
// the camera frame and the selected translation and rotation axes.
type ViewerState struct {
	constraints      [2]Constraint
	activeConstraint int
	transDir         int
	rotDir           int
}

// NewViewerState creates both constraints and attaches the world one to frame.
func NewViewerState(frame *Frame) *ViewerState {
	s := &ViewerState{
		// A CameraConstraint on the camera frame would behave the same: it is a
		// LocalConstraint there.
		constraints: [2]Constraint{NewWorldConstraint(), NewLocalConstraint()},
	}
	frame.SetConstraint(s.constraints[s.activeConstraint])
	return s
}

func (s *ViewerState) Constraint(i int) Constraint {
	return s.constraints[i]
}

func (s *ViewerState) Active() Constraint {
	return s.constraints[s.activeConstraint]
}

func (s *ViewerState) ActiveConstraint() int {
	return s.activeConstraint
}

func (s *ViewerState) TransDir() int {
	return s.transDir
}

func (s *ViewerState) RotDir() int {
	return s.rotDir
}

// ChangeConstraint switches to the other constraint, carrying over the types
// and directions of the previous one, and attaches it to frame.
func (s *ViewerState) ChangeConstraint(frame *Frame) {
	previous := s.constraints[s.activeConstraint]
	s.activeConstraint = (s.activeConstraint + 1) % 2
	next := s.constraints[s.activeConstraint]

	next.SetTranslationConstraintType(previous.TranslationConstraintType())
	next.SetTranslationConstraintDirection(previous.TranslationConstraintDirection())
	next.SetRotationConstraintType(previous.RotationConstraintType())
	next.SetRotationConstraintDirection(previous.RotationConstraintDirection())

	frame.SetConstraint(next)
}

// HandleKey applies one of the constraint keys. It reports false for any
// other key, leaving the state untouched.
func (s *ViewerState) HandleKey(key ebiten.Key, frame *Frame) bool {
	switch key {
	case ebiten.KeyG:
		s.transDir = (s.transDir + 1) % 3
	case ebiten.KeyD:
		s.rotDir = (s.rotDir + 1) % 3
	case ebiten.KeySpace:
		s.ChangeConstraint(frame)
	case ebiten.KeyT:
		c := s.Active()
		c.SetTranslationConstraintType(NextTranslationConstraintType(c.TranslationConstraintType()))
	case ebiten.KeyR:
		c := s.Active()
		c.SetRotationConstraintType(NextRotationConstraintType(c.RotationConstraintType()))
	default:
		return false
	}
	return true
}

// ApplyDirections sets the selected axes on the active constraint.
func (s *ViewerState) ApplyDirections() {
	c := s.Active()
	c.SetTranslationConstraintDirection(axisDirection(s.transDir))
	c.SetRotationConstraintDirection(axisDirection(s.rotDir))
}

// axisDirection is the unit vector along axis 0 (X), 1 (Y) or 2 (Z).
func axisDirection(axis int) mgl64.Vec3 {
	var dir mgl64.Vec3
	dir[axis] = 1.0
	return dir
}
