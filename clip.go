package constrainedcamera

// Camera space looks down +Z with +Y up. Anything closer than nearPlaneZ is
// clipped before the perspective divide.
const nearPlaneZ = 10

const conversionFactor = 700

type Point struct {
	X, Y float32
}

func ConvertToScreenX(width, height, x, z float64) float32 {
	return float32((conversionFactor*x)/z + width/2)
}

func ConvertToScreenY(width, height, y, z float64) float32 {
	return float32(height/2 - (conversionFactor*y)/z)
}

// ConvertFromScreen is the inverse projection for a known depth z.
func ConvertFromScreen(width, height, screenX, screenY, z float64) (float64, float64) {
	x := (screenX - width/2) * z / conversionFactor
	y := (height/2 - screenY) * z / conversionFactor
	return x, y
}

// intersectNearPlane returns where the segment p1-p2 crosses z = nearPlaneZ.
// A segment parallel to the plane yields p1.
func intersectNearPlane(p1, p2 []float64) []float64 {
	dz := p2[2] - p1[2]
	if dz == 0 {
		return []float64{p1[0], p1[1], p1[2]}
	}
	t := (nearPlaneZ - p1[2]) / dz
	return []float64{
		p1[0] + (p2[0]-p1[0])*t,
		p1[1] + (p2[1]-p1[1])*t,
		nearPlaneZ,
	}
}

// clipPolygonAgainstNearPlane keeps the part of the polygon with z >= nearPlaneZ.
func clipPolygonAgainstNearPlane(points [][]float64) [][]float64 {
	out := make([][]float64, 0, len(points)+2)
	if len(points) == 0 {
		return out
	}

	prev := points[len(points)-1]
	prevInside := prev[2] >= nearPlaneZ
	for _, cur := range points {
		curInside := cur[2] >= nearPlaneZ
		if curInside {
			if !prevInside {
				out = append(out, intersectNearPlane(prev, cur))
			}
			out = append(out, cur)
		} else if prevInside {
			out = append(out, intersectNearPlane(prev, cur))
		}
		prev, prevInside = cur, curInside
	}
	return out
}

type screenEdge struct {
	inside    func(p Point) bool
	intersect func(a, b Point) Point
}

// clipPolygon clips a projected polygon to the screen rectangle, one edge at a time.
func clipPolygon(points []Point, screenWidth, screenHeight float32) []Point {
	right := screenWidth + 1
	bottom := screenHeight + 1

	atX := func(x float32) func(a, b Point) Point {
		return func(a, b Point) Point {
			t := float64(x-a.X) / float64(b.X-a.X)
			return Point{X: x, Y: float32(float64(a.Y) + float64(b.Y-a.Y)*t)}
		}
	}
	atY := func(y float32) func(a, b Point) Point {
		return func(a, b Point) Point {
			t := float64(y-a.Y) / float64(b.Y-a.Y)
			return Point{X: float32(float64(a.X) + float64(b.X-a.X)*t), Y: y}
		}
	}

	edges := []screenEdge{
		{inside: func(p Point) bool { return p.X >= 0 }, intersect: atX(0)},
		{inside: func(p Point) bool { return p.X <= right }, intersect: atX(right)},
		{inside: func(p Point) bool { return p.Y >= 0 }, intersect: atY(0)},
		{inside: func(p Point) bool { return p.Y <= bottom }, intersect: atY(bottom)},
	}

	out := points
	for _, edge := range edges {
		if len(out) == 0 {
			return []Point{}
		}
		in := out
		out = make([]Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			if edge.inside(cur) {
				if !edge.inside(prev) {
					out = append(out, edge.intersect(prev, cur))
				}
				out = append(out, cur)
			} else if edge.inside(prev) {
				out = append(out, edge.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
