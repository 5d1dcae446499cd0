package constrainedcamera

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrix is a 4x4 transform stored as four columns: ThisMatrix[col][row].
// Column 3 holds the translation. Point lists reuse the same type, one point
// per row.
type Matrix struct {
	ThisMatrix [][]float64
}

func NewMatrix() *Matrix {
	return &Matrix{
		ThisMatrix: make([][]float64, 0, 100),
	}
}

func newSquareMatrix() [][]float64 {
	m := make([][]float64, 4)
	for i := range m {
		m[i] = make([]float64, 4)
	}
	return m
}

func IdentMatrix() *Matrix {
	m := newSquareMatrix()
	m[0][0], m[1][1], m[2][2], m[3][3] = 1.0, 1.0, 1.0, 1.0
	return &Matrix{ThisMatrix: m}
}

func TransMatrix(x, y, z float64) *Matrix {
	m := IdentMatrix()
	m.ThisMatrix[3][0] = x
	m.ThisMatrix[3][1] = y
	m.ThisMatrix[3][2] = z
	return m
}

// FromMat4 converts a column-major mathgl matrix.
func FromMat4(m mgl64.Mat4) *Matrix {
	rows := newSquareMatrix()
	for col := 0; col < 4; col++ {
		copy(rows[col], m[col*4:col*4+4])
	}
	return &Matrix{ThisMatrix: rows}
}

func (m *Matrix) AddRow(row []float64) {
	m.ThisMatrix = append(m.ThisMatrix, row)
}

// MultiplyBy returns m * aMatrix.
func (m *Matrix) MultiplyBy(aMatrix *Matrix) *Matrix {
	out := make([][]float64, len(aMatrix.ThisMatrix))
	for i := range out {
		out[i] = make([]float64, 4)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < len(aMatrix.ThisMatrix); x++ {
			out[x][y] = m.ThisMatrix[0][y]*aMatrix.ThisMatrix[x][0] +
				m.ThisMatrix[1][y]*aMatrix.ThisMatrix[x][1] +
				m.ThisMatrix[2][y]*aMatrix.ThisMatrix[x][2] +
				m.ThisMatrix[3][y]*aMatrix.ThisMatrix[x][3]
		}
	}
	return &Matrix{ThisMatrix: out}
}

// TransformObj writes the transformed points of src into dest. dest must
// have at least as many rows as src.
func (m *Matrix) TransformObj(src, dest *Matrix) {
	t := m.ThisMatrix
	for i, p := range src.ThisMatrix {
		dest.ThisMatrix[i][0] = t[0][0]*p[0] + t[1][0]*p[1] + t[2][0]*p[2] + t[3][0]
		dest.ThisMatrix[i][1] = t[0][1]*p[0] + t[1][1]*p[1] + t[2][1]*p[2] + t[3][1]
		dest.ThisMatrix[i][2] = t[0][2]*p[0] + t[1][2]*p[1] + t[2][2]*p[2] + t[3][2]
	}
}

// TransformNormals is TransformObj without the translation column.
func (m *Matrix) TransformNormals(src, dest *Matrix) {
	t := m.ThisMatrix
	for i, n := range src.ThisMatrix {
		dest.ThisMatrix[i][0] = t[0][0]*n[0] + t[1][0]*n[1] + t[2][0]*n[2]
		dest.ThisMatrix[i][1] = t[0][1]*n[0] + t[1][1]*n[1] + t[2][1]*n[2]
		dest.ThisMatrix[i][2] = t[0][2]*n[0] + t[1][2]*n[1] + t[2][2]*n[2]
	}
}

// TransformPoint transforms a single point.
func (m *Matrix) TransformPoint(p []float64) []float64 {
	t := m.ThisMatrix
	return []float64{
		t[0][0]*p[0] + t[1][0]*p[1] + t[2][0]*p[2] + t[3][0],
		t[0][1]*p[0] + t[1][1]*p[1] + t[2][1]*p[2] + t[3][1],
		t[0][2]*p[0] + t[1][2]*p[1] + t[2][2]*p[2] + t[3][2],
	}
}

func (m *Matrix) Copy() *Matrix {
	rows := make([][]float64, len(m.ThisMatrix))
	for i, row := range m.ThisMatrix {
		rows[i] = make([]float64, len(row))
		copy(rows[i], row)
	}
	return &Matrix{ThisMatrix: rows}
}

func (m *Matrix) String() string {
	var sb strings.Builder
	for i, row := range m.ThisMatrix {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, val := range row {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("%f", val))
		}
	}
	return sb.String()
}
