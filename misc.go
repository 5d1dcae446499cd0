package constrainedcamera

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func GetLength(vec []float64) float64 {
	return math.Sqrt(math.Abs(vec[0]*vec[0] + vec[1]*vec[1] + vec[2]*vec[2]))
}

func DrawLine(screen *ebiten.Image, startX, startY, endX, endY float32, width float32, col color.Color) {
	vector.StrokeLine(screen, startX, startY, endX, endY, width, col, true)
}
