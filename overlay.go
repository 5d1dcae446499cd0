package constrainedcamera

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var overlayFace = text.NewGoXFace(basicfont.Face7x13)

// overlayText is one line of text anchored at its baseline.
type overlayText struct {
	X, Y int
	Text string
}

// DirectionLabel names axis 0, 1 or 2 followed by the key that changes it,
// e.g. "Y (G)". Any other axis gives an empty label.
func DirectionLabel(dir int, key rune) string {
	switch dir {
	case 0:
		return fmt.Sprintf("X (%c)", key)
	case 1:
		return fmt.Sprintf("Y (%c)", key)
	case 2:
		return fmt.Sprintf("Z (%c)", key)
	}
	return ""
}

// TypeLabel names a constraint type followed by its key, e.g. "AXIS (T)".
// Unknown types give an empty label.
func TypeLabel(t ConstraintType, key rune) string {
	switch t {
	case FREE, PLANE, AXIS, FORBIDDEN:
		return fmt.Sprintf("%s (%c)", t, key)
	}
	return ""
}

// ReferenceLabel describes the frame the active constraint directions are read in.
func ReferenceLabel(activeConstraint int) string {
	switch activeConstraint {
	case worldConstraintIndex:
		return "Constraint direction defined w/r to WORLD (SPACE)"
	case cameraConstraintIndex:
		return "Constraint direction defined w/r to CAMERA (SPACE)"
	}
	return ""
}

// constraintOverlay lays out the constraint status for a width x height view.
func constraintOverlay(s *ViewerState, width, height int) []overlayText {
	active := s.Active()
	return []overlayText{
		{X: 10, Y: height - 30, Text: "TRANSLATION :"},
		{X: 190, Y: height - 30, Text: DirectionLabel(s.transDir, 'G')},
		{X: 10, Y: height - 60, Text: TypeLabel(active.TranslationConstraintType(), 'T')},

		{X: width - 220, Y: height - 30, Text: "ROTATION :"},
		{X: width - 100, Y: height - 30, Text: DirectionLabel(s.rotDir, 'D')},
		{X: width - 220, Y: height - 60, Text: TypeLabel(active.RotationConstraintType(), 'R')},

		{X: 20, Y: 20, Text: ReferenceLabel(s.activeConstraint)},
	}
}

// drawText draws str with its first baseline at (x, y).
func drawText(dst *ebiten.Image, x, y int, str string, clr color.Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y)-overlayFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = overlayFace.Metrics().HLineGap + overlayFace.Metrics().HAscent + overlayFace.Metrics().HDescent
	text.Draw(dst, str, overlayFace, op)
}

// helpPanel lays out the help text and key descriptions as lines.
func helpPanel(help string, keys []KeyDescription) []string {
	lines := strings.Split(help, "\n")
	lines = append(lines, "", "Keys:")
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %-8s %s", k.Name, k.Description))
	}
	return lines
}
