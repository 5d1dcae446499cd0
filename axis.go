package constrainedcamera

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var axisColors = [3]color.RGBA{
	{R: 230, G: 60, B: 60, A: 255},
	{R: 60, G: 200, B: 60, A: 255},
	{R: 80, G: 110, B: 240, A: 255},
}

type segment struct {
	x0, y0, x1, y1 float32
}

// projectSegment projects a camera-space segment, clipping it at the near
// plane. ok is false when the segment is entirely behind it.
func projectSegment(a, b []float64, width, height float64) (seg segment, ok bool) {
	aIn, bIn := a[2] >= nearPlaneZ, b[2] >= nearPlaneZ
	switch {
	case !aIn && !bIn:
		return seg, false
	case !aIn:
		a = intersectNearPlane(a, b)
	case !bIn:
		b = intersectNearPlane(a, b)
	}
	return segment{
		x0: ConvertToScreenX(width, height, a[0], a[2]),
		y0: ConvertToScreenY(width, height, a[1], a[2]),
		x1: ConvertToScreenX(width, height, b[0], b[2]),
		y1: ConvertToScreenY(width, height, b[1], b[2]),
	}, true
}

// axisSegments returns the screen segments of the world X, Y and Z axes.
func axisSegments(view *Matrix, length float64, width, height float64) ([3]segment, [3]bool) {
	var segs [3]segment
	var visible [3]bool
	origin := view.TransformPoint([]float64{0, 0, 0})
	for i := 0; i < 3; i++ {
		end := []float64{0, 0, 0}
		end[i] = length
		segs[i], visible[i] = projectSegment(origin, view.TransformPoint(end), width, height)
	}
	return segs, visible
}

// DrawAxis draws the world axes from the origin.
func DrawAxis(screen *ebiten.Image, cam *Camera, length float64) {
	bounds := screen.Bounds()
	segs, visible := axisSegments(cam.GetCameraMatrix(), length, float64(bounds.Dx()), float64(bounds.Dy()))
	for i, s := range segs {
		if !visible[i] {
			continue
		}
		DrawLine(screen, s.x0, s.y0, s.x1, s.y1, 2, axisColors[i])
	}
}
