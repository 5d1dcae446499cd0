package constrainedcamera

import (
	"image/color"
	"math"
	"sort"
)

// polygonSink receives projected polygons in paint order.
type polygonSink interface {
	AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32)
}

var outlineColor = color.RGBA{R: 50, G: 50, B: 50, A: 25}

// Model is a set of flat faces. Faces are painted two-sided and back to front,
// which suits open surfaces that a BSP tree would have to split heavily.
type Model struct {
	points       *Mesh
	normals      *Mesh
	transPoints  *Matrix
	transNormals *Matrix
	faces        []*Face
	drawOutlines bool
	order        []int
	depths       []float64
}

func NewModel() *Model {
	return &Model{
		points:       NewMesh(),
		normals:      NewMesh(),
		drawOutlines: true,
	}
}

func (o *Model) SetDrawOutlines(draw bool) {
	o.drawOutlines = draw
}

// AddFace adds a polygon in object space. Shared points are stored once.
func (o *Model) AddFace(points [][]float64, normal []float64, col color.RGBA) *Face {
	idx := make([]int, len(points))
	for i, p := range points {
		idx[i] = o.points.AddPoint(p)
	}
	f := NewFace(col, idx, o.normals.AddPoint(normal))
	o.faces = append(o.faces, f)
	return f
}

// Finished allocates the camera-space buffers. Call it once all faces are added.
func (o *Model) Finished() {
	o.transPoints = o.points.Points.Copy()
	o.transNormals = o.normals.Points.Copy()
	o.order = make([]int, len(o.faces))
	o.depths = make([]float64, len(o.faces))
}

func (o *Model) FaceCount() int {
	return len(o.faces)
}

func (o *Model) Faces() []*Face {
	return o.faces
}

func (o *Model) Points() *Matrix {
	return o.points.Points
}

// Radius is the distance from the model origin to its farthest point.
func (o *Model) Radius() float64 {
	r := 0.0
	for _, p := range o.points.Points.ThisMatrix {
		r = math.Max(r, GetLength(p))
	}
	return r
}

// ApplyMatrixTemp transforms the model into camera space for this frame only.
func (o *Model) ApplyMatrixTemp(aMatrix *Matrix) {
	if o.transPoints == nil {
		o.Finished()
	}
	aMatrix.TransformNormals(o.normals.Points, o.transNormals)
	aMatrix.TransformObj(o.points.Points, o.transPoints)
}

// PaintObject paints the faces transformed by the last ApplyMatrixTemp.
func (o *Model) PaintObject(sink polygonSink, screenWidth, screenHeight float32) {
	if o.transPoints == nil {
		return
	}

	for i, f := range o.faces {
		o.order[i] = i
		mid := getMidpoint(f.gather(o.transPoints))
		o.depths[i] = GetLength(mid)
	}
	sort.Slice(o.order, func(i, j int) bool {
		return o.depths[o.order[i]] > o.depths[o.order[j]]
	})

	for _, i := range o.order {
		o.paintFace(sink, o.faces[i], screenWidth, screenHeight)
	}
}

func (o *Model) paintFace(sink polygonSink, face *Face, screenWidth, screenHeight float32) {
	points := face.gather(o.transPoints)
	n := o.transNormals.ThisMatrix[face.normalIdx]
	normal := []float64{n[0], n[1], n[2]}

	// Two-sided: turn the normal to the side the eye sees.
	where := normal[0]*points[0][0] + normal[1]*points[0][1] + normal[2]*points[0][2]
	if where < 0 {
		normal[0], normal[1], normal[2] = -normal[0], -normal[1], -normal[2]
	}
	polyColor := face.calcColor(getMidpoint(points), normal)

	clipped := clipPolygonAgainstNearPlane(points)
	if len(clipped) < 3 {
		return
	}

	w, h := float64(screenWidth), float64(screenHeight)
	screenPoints := make([]Point, len(clipped))
	for i, p := range clipped {
		screenPoints[i] = Point{
			X: ConvertToScreenX(w, h, p[0], p[2]),
			Y: ConvertToScreenY(w, h, p[1], p[2]),
		}
	}

	screenPoints = clipPolygon(screenPoints, screenWidth, screenHeight)
	if len(screenPoints) < 3 {
		return
	}

	xp := make([]float32, len(screenPoints))
	yp := make([]float32, len(screenPoints))
	for i, p := range screenPoints {
		xp[i], yp[i] = p.X, p.Y
	}

	stroke := outlineColor
	if !o.drawOutlines {
		stroke = color.RGBA{}
	}
	sink.AddPolygonAndOutline(xp, yp, polyColor, stroke, 1.0)
}
