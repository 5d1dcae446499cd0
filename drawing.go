package constrainedcamera

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

type triangleBatch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

// PolygonBatcher collects filled and outlined polygons in paint order and
// sends them to the GPU with as few DrawTriangles calls as uint16 indices
// allow.
type PolygonBatcher struct {
	batches []triangleBatch
	polys   int
}

func NewPolygonBatcher() *PolygonBatcher {
	return &PolygonBatcher{batches: []triangleBatch{{}}}
}

func (b *PolygonBatcher) Reset() {
	b.batches = b.batches[:1]
	b.batches[0].vertices = b.batches[0].vertices[:0]
	b.batches[0].indices = b.batches[0].indices[:0]
	b.polys = 0
}

// PolygonCount is the number of polygons added since the last Reset.
func (b *PolygonBatcher) PolygonCount() int {
	return b.polys
}

// current returns a batch with room for n more vertices.
func (b *PolygonBatcher) current(n int) *triangleBatch {
	last := &b.batches[len(b.batches)-1]
	if len(last.vertices)+n > math.MaxUint16 {
		b.batches = append(b.batches, triangleBatch{})
		last = &b.batches[len(b.batches)-1]
	}
	return last
}

func colorComponents(clr color.RGBA) (float32, float32, float32, float32) {
	return float32(clr.R) / 255.0, float32(clr.G) / 255.0, float32(clr.B) / 255.0, float32(clr.A) / 255.0
}

// AddPolygon adds a filled convex polygon as a triangle fan.
func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	b.polys++

	batch := b.current(len(xp))
	base := uint16(len(batch.vertices))
	cr, cg, cb, ca := colorComponents(clr)

	for i := range xp {
		batch.vertices = append(batch.vertices, ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := 2; i < len(xp); i++ {
		batch.indices = append(batch.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

// addOutline strokes the closed outline of a polygon.
func (b *PolygonBatcher) addOutline(xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width: strokeWidth,
	})

	batch := b.current(len(vertices))
	base := uint16(len(batch.vertices))
	cr, cg, cb, ca := colorComponents(clr)

	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}
	batch.vertices = append(batch.vertices, vertices...)
	for _, idx := range indices {
		batch.indices = append(batch.indices, base+idx)
	}
}

func (b *PolygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)
	b.addOutline(xp, yp, strokeWidth, strokeClr)
}

// Flush draws everything collected so far onto dst and resets the batcher.
func (b *PolygonBatcher) Flush(dst *ebiten.Image) {
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	for _, batch := range b.batches {
		if len(batch.indices) == 0 {
			continue
		}
		dst.DrawTriangles(batch.vertices, batch.indices, whiteSub, op)
	}
	b.Reset()
}
