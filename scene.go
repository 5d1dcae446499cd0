package constrainedcamera

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Scene holds the models shown by the viewer, each at a world position.
type Scene struct {
	objects []*Model
	objPos  []mgl64.Vec3
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) AddObject(obj *Model, x, y, z float64) {
	s.objects = append(s.objects, obj)
	s.objPos = append(s.objPos, mgl64.Vec3{x, y, z})
}

func (s *Scene) ObjectCount() int {
	return len(s.objects)
}

// Radius of a sphere centred on the world origin that holds every object.
func (s *Scene) Radius() float64 {
	r := 0.0
	for i, obj := range s.objects {
		r = math.Max(r, s.objPos[i].Len()+obj.Radius())
	}
	return r
}

// PaintObjects paints the objects farthest from the camera first.
func (s *Scene) PaintObjects(sink polygonSink, cam *Camera, screenWidth, screenHeight float32) {
	camPos := cam.Position()

	order := make([]int, len(s.objects))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return s.objPos[order[i]].Sub(camPos).Len() > s.objPos[order[j]].Sub(camPos).Len()
	})

	view := cam.GetCameraMatrix()
	for _, i := range order {
		pos := s.objPos[i]
		objToCam := view.MultiplyBy(TransMatrix(pos[0], pos[1], pos[2]))
		s.objects[i].ApplyMatrixTemp(objToCam)
		s.objects[i].PaintObject(sink, screenWidth, screenHeight)
	}
}
