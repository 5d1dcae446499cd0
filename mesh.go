package constrainedcamera

// Mesh is a list of unique points. Faces refer to points by index so shared
// vertices are only transformed once per frame.
type Mesh struct {
	Points     *Matrix
	pointIndex map[[3]float64]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     NewMatrix(),
		pointIndex: make(map[[3]float64]int),
	}
}

// AddPoint returns the index of point, adding it if it is not already known.
func (m *Mesh) AddPoint(point []float64) int {
	key := [3]float64{point[0], point[1], point[2]}
	if index, found := m.pointIndex[key]; found {
		return index
	}

	m.Points.AddRow([]float64{point[0], point[1], point[2]})
	index := len(m.Points.ThisMatrix) - 1
	m.pointIndex[key] = index
	return index
}

func (m *Mesh) Len() int {
	return len(m.Points.ThisMatrix)
}
