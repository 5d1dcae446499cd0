package constrainedcamera

import (
	"image/color"
	"math"
)

// RibbonSteps is the number of quad strip vertex pairs in the ribbon.
const RibbonSteps = 200

// ribbonStep returns the two strip vertices, the normal and the color of step i.
func ribbonStep(i int, scale float64) (inner, outer, normal []float64, col color.RGBA) {
	ratio := float64(i) / RibbonSteps
	angle := 21.0 * ratio
	c := math.Cos(angle)
	s := math.Sin(angle)
	r1 := 1.0 - 0.8*ratio
	r2 := 0.8 - 0.8*ratio
	alt := ratio - 0.5
	const nor = 0.5
	up := math.Sqrt(1.0 - nor*nor)

	inner = []float64{r1 * c * scale, alt * scale, r1 * s * scale}
	outer = []float64{r2 * c * scale, (alt + 0.05) * scale, r2 * s * scale}
	normal = []float64{nor * c, up, nor * s}
	col = color.RGBA{
		R: uint8(math.Round((1 - ratio) * 255)),
		G: uint8(math.Round(0.2 * 255)),
		B: uint8(math.Round(ratio * 255)),
		A: 255,
	}
	return inner, outer, normal, col
}

// NewRibbon builds the twisted spiral strip shown by the viewer. Each quad
// joins step i to step i+1 and takes the normal and color of step i.
func NewRibbon(scale float64) *Model {
	m := NewModel()

	prevInner, prevOuter, prevNormal, prevCol := ribbonStep(0, scale)
	for i := 1; i < RibbonSteps; i++ {
		inner, outer, normal, col := ribbonStep(i, scale)
		m.AddFace([][]float64{prevInner, prevOuter, outer, inner}, prevNormal, prevCol)
		prevInner, prevOuter, prevNormal, prevCol = inner, outer, normal, col
	}

	m.Finished()
	return m
}
