package constrainedcamera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const float64EqualityThreshold = 1e-6

func assertPointsInDelta(t *testing.T, expected, actual [][]float64, delta float64) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		require.Len(t, actual[i], len(expected[i]), "point %d", i)
		for j := range expected[i] {
			assert.InDelta(t, expected[i][j], actual[i][j], delta, "point %d coordinate %d", i, j)
		}
	}
}

func TestClipPolygonAgainstNearPlane(t *testing.T) {
	testCases := []struct {
		name     string
		input    [][]float64
		expected [][]float64
	}{
		{
			name:     "fully in front of the near plane",
			input:    [][]float64{{0, 0, 20}, {1, 0, 20}, {0, 1, 20}},
			expected: [][]float64{{0, 0, 20}, {1, 0, 20}, {0, 1, 20}},
		},
		{
			name:     "fully behind the near plane",
			input:    [][]float64{{0, 0, 5}, {1, 0, 5}, {0, 1, 5}},
			expected: [][]float64{},
		},
		{
			name:     "one point in front",
			input:    [][]float64{{0, 0, 15}, {0, 1, 5}, {1, 0, 5}},
			expected: [][]float64{{0.5, 0, 10}, {0, 0, 15}, {0, 0.5, 10}},
		},
		{
			name:     "two points in front",
			input:    [][]float64{{0, 0, 5}, {0, 1, 15}, {1, 0, 15}},
			expected: [][]float64{{0.5, 0, 10}, {0, 0.5, 10}, {0, 1, 15}, {1, 0, 15}},
		},
		{
			name:     "empty",
			input:    [][]float64{},
			expected: [][]float64{},
		},
		{
			name:     "lying on the near plane",
			input:    [][]float64{{0, 0, 10}, {1, 0, 10}, {0, 1, 10}},
			expected: [][]float64{{0, 0, 10}, {1, 0, 10}, {0, 1, 10}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygonAgainstNearPlane(tc.input)
			require.NotNil(t, clipped)
			assertPointsInDelta(t, tc.expected, clipped, float64EqualityThreshold)
		})
	}
}

func TestIntersectNearPlane(t *testing.T) {
	testCases := []struct {
		name     string
		p1, p2   []float64
		expected []float64
	}{
		{"along z", []float64{0, 0, 0}, []float64{0, 0, 20}, []float64{0, 0, 10}},
		{"non-zero x and y", []float64{10, 20, 0}, []float64{30, 40, 20}, []float64{20, 30, 10}},
		{"parallel to the plane", []float64{10, 10, 5}, []float64{20, 20, 5}, []float64{10, 10, 5}},
		{"on the plane", []float64{10, 10, 10}, []float64{20, 20, 10}, []float64{10, 10, 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := intersectNearPlane(tc.p1, tc.p2)
			assert.InDeltaSlice(t, tc.expected, result, float64EqualityThreshold)
		})
	}
}

func TestIntersectNearPlaneDoesNotAliasInput(t *testing.T) {
	p1 := []float64{1, 2, 5}
	result := intersectNearPlane(p1, []float64{3, 4, 5})
	result[0] = 99
	assert.Equal(t, 1.0, p1[0])
}

func TestCoordinateConversion(t *testing.T) {
	width, height := 800.0, 600.0

	testPoints := []struct {
		name    string
		x, y, z float64
	}{
		{"center", 0, 0, 50},
		{"arbitrary", 15, -25, 75},
		{"large z", 100, 200, 1000},
		{"just past the near plane", 1, 2, 11},
	}

	for _, p := range testPoints {
		t.Run(p.name, func(t *testing.T) {
			sx := ConvertToScreenX(width, height, p.x, p.z)
			sy := ConvertToScreenY(width, height, p.y, p.z)

			x, y := ConvertFromScreen(width, height, float64(sx), float64(sy), p.z)
			// Screen coordinates are float32.
			assert.InDelta(t, p.x, x, 1e-3)
			assert.InDelta(t, p.y, y, 1e-3)
		})
	}
}

func TestScreenProjectionOrientation(t *testing.T) {
	assert.Equal(t, float32(400), ConvertToScreenX(800, 600, 0, 100))
	assert.Equal(t, float32(300), ConvertToScreenY(800, 600, 0, 100))

	assert.Greater(t, ConvertToScreenX(800, 600, 10, 100), float32(400), "+X is to the right")
	assert.Less(t, ConvertToScreenY(800, 600, 10, 100), float32(300), "+Y is up")
}

func TestClipPolygon(t *testing.T) {
	screenWidth, screenHeight := float32(800), float32(600)

	testCases := []struct {
		name     string
		input    []Point
		expected []Point
	}{
		{
			name:     "fully inside",
			input:    []Point{{100, 100}, {200, 100}, {150, 200}},
			expected: []Point{{100, 100}, {200, 100}, {150, 200}},
		},
		{
			name:     "fully outside",
			input:    []Point{{900, 100}, {1000, 100}, {950, 200}},
			expected: []Point{},
		},
		{
			// The right edge sits at screenWidth+1.
			name:     "crossing the right edge",
			input:    []Point{{700, 100}, {900, 100}, {700, 200}},
			expected: []Point{{700, 100}, {801, 100}, {801, 149.5}, {700, 200}},
		},
		{
			name:     "covering the top-left corner",
			input:    []Point{{-100, -100}, {100, -100}, {100, 100}, {-100, 100}},
			expected: []Point{{0, 0}, {100, 0}, {100, 100}, {0, 100}},
		},
		{
			name:     "empty",
			input:    []Point{},
			expected: []Point{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygon(tc.input, screenWidth, screenHeight)
			require.Len(t, clipped, len(tc.expected), "got %v", clipped)
			for i := range tc.expected {
				assert.InDelta(t, tc.expected[i].X, clipped[i].X, 1e-4, "point %d", i)
				assert.InDelta(t, tc.expected[i].Y, clipped[i].Y, 1e-4, "point %d", i)
			}
		})
	}
}
