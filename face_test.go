package constrainedcamera

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcColor(t *testing.T) {
	grey := color.RGBA{R: 200, G: 200, B: 200, A: 255}

	testCases := []struct {
		name     string
		col      color.RGBA
		point    []float64
		normal   []float64
		expected color.RGBA
	}{
		{
			name:     "head-on in the spotlight center",
			col:      grey,
			point:    []float64{0, 0, 10},
			normal:   []float64{0, 0, 1},
			expected: color.RGBA{R: 200, G: 200, B: 200, A: 255},
		},
		{
			name:     "facing away gets ambient only",
			col:      grey,
			point:    []float64{0, 0, 10},
			normal:   []float64{0, 0, -1},
			expected: color.RGBA{R: 116, G: 116, B: 116, A: 255},
		},
		{
			name:     "edge-on gets ambient only",
			col:      grey,
			point:    []float64{10, 0, 10},
			normal:   []float64{1, 0, 0},
			expected: color.RGBA{R: 116, G: 116, B: 116, A: 255},
		},
		{
			name:     "45 degrees off the spotlight center",
			col:      grey,
			point:    []float64{10, 0, 10},
			normal:   []float64{0.70710678118, 0, 0.70710678118},
			expected: color.RGBA{R: 117, G: 117, B: 117, A: 255},
		},
		{
			name:     "dark colors clamp at 7",
			col:      color.RGBA{R: 10, G: 10, B: 10, A: 255},
			point:    []float64{0, 0, 10},
			normal:   []float64{0, 0, -1},
			expected: color.RGBA{R: 7, G: 7, B: 7, A: 255},
		},
		{
			name:     "alpha is kept",
			col:      color.RGBA{R: 200, G: 200, B: 200, A: 128},
			point:    []float64{0, 0, 10},
			normal:   []float64{0, 0, 1},
			expected: color.RGBA{R: 200, G: 200, B: 200, A: 128},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFace(tc.col, nil, 0)
			assert.Equal(t, tc.expected, f.calcColor(tc.point, tc.normal))
		})
	}
}

func TestGetMidpoint(t *testing.T) {
	assert.Nil(t, getMidpoint(nil))
	assert.Equal(t, []float64{1, 2, 3}, getMidpoint([][]float64{{0, 0, 0}, {2, 4, 6}}))
}

func TestFaceGatherReusesBuffer(t *testing.T) {
	m := NewMatrix()
	m.AddRow([]float64{0, 0, 0})
	m.AddRow([]float64{1, 0, 0})
	m.AddRow([]float64{0, 1, 0})

	f := NewFace(color.RGBA{}, []int{2, 0}, 0)
	first := f.gather(m)
	assert.Equal(t, [][]float64{{0, 1, 0}, {0, 0, 0}}, first)

	second := f.gather(m)
	assert.Same(t, &first[0], &second[0])
}
