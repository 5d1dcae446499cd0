package constrainedcamera

import (
	"image/color"
	"math"
)

// Face is a convex polygon of a Model. Points and normal are indices into the
// model's meshes.
type Face struct {
	Col         color.RGBA
	pointIdx    []int
	normalIdx   int
	pointsToUse [][]float64 // scratch buffer, reused every frame
}

func NewFace(col color.RGBA, pointIdx []int, normalIdx int) *Face {
	return &Face{
		Col:         col,
		pointIdx:    pointIdx,
		normalIdx:   normalIdx,
		pointsToUse: make([][]float64, 0, len(pointIdx)),
	}
}

func (f *Face) PointIndices() []int {
	return f.pointIdx
}

// gather returns the face's points from a transformed point list.
func (f *Face) gather(points *Matrix) [][]float64 {
	out := f.pointsToUse[:0]
	for _, i := range f.pointIdx {
		out = append(out, points.ThisMatrix[i])
	}
	f.pointsToUse = out
	return out
}

func getMidpoint(points [][]float64) []float64 {
	if len(points) == 0 {
		return nil
	}

	mid := make([]float64, 3)
	for _, p := range points {
		mid[0] += p[0]
		mid[1] += p[1]
		mid[2] += p[2]
	}
	n := float64(len(points))
	mid[0] /= n
	mid[1] /= n
	mid[2] /= n
	return mid
}

// calcColor shades the face with an ambient term plus a spotlight shining
// from the eye along +Z. point and normal are in camera space; the normal
// points away from the eye on a visible face.
func (f *Face) calcColor(point []float64, normal []float64) color.RGBA {
	const ambientLight = 0.65
	// Higher values narrow the spotlight cone.
	const spotlightConePower = 10.0
	const spotlightLightAmount = 1.0 - ambientLight

	diffuseFactor := normal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	var spotlightFactor float64
	if length := GetLength(point); length > 0 {
		cosAngle := point[2] / length
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, spotlightConePower)
	} else {
		spotlightFactor = 1.0
	}

	brightness := ambientLight + diffuseFactor*spotlightFactor*spotlightLightAmount

	// brightness 1.0 keeps the color, 0.0 darkens by 240.
	c := 240 - int(brightness*240)
	const min = 7
	return color.RGBA{
		R: uint8(clamp(int(f.Col.R)-c, min, 255)),
		G: uint8(clamp(int(f.Col.G)-c, min, 255)),
		B: uint8(clamp(int(f.Col.B)-c, min, 255)),
		A: f.Col.A,
	}
}
