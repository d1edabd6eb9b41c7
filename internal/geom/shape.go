// Package geom builds 2D shape primitives from obstacle descriptions and
// answers point-containment and bounding-box queries over them. It mirrors
// the role the original Python service's algorithms/geometry.py module
// played, using a Shapely polygon for every obstacle kind; here each kind
// gets its own analytic representation instead.
package geom

import "math"

// Point is a 2D point in world meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Shape answers containment and bounding-box queries for a rasterized
// obstacle. Rectangles and circles are analytic; polygons (including the
// 64-gon a circle is approximated by) use ray casting.
type Shape interface {
	// Contains reports whether p lies inside the shape. Box and Circle count
	// boundary points as inside; Polygon's ray casting may report a boundary
	// point as either inside or outside.
	Contains(p Point) bool
	// Bounds returns the axis-aligned bounding box (minX, minY, maxX, maxY).
	Bounds() (minX, minY, maxX, maxY float64)
}

// Box is an axis-aligned rectangle, inclusive of its boundary.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBox builds a Box from a center point and full width/height.
func NewBox(cx, cy, w, h float64) Box {
	return Box{
		MinX: cx - w/2,
		MinY: cy - h/2,
		MaxX: cx + w/2,
		MaxY: cy + h/2,
	}
}

// Contains implements Shape.
func (b Box) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Bounds implements Shape.
func (b Box) Bounds() (minX, minY, maxX, maxY float64) {
	return b.MinX, b.MinY, b.MaxX, b.MaxY
}

// Circle is a disk, inclusive of its boundary.
type Circle struct {
	CX, CY, R float64
}

// Contains implements Shape.
func (c Circle) Contains(p Point) bool {
	dx := p.X - c.CX
	dy := p.Y - c.CY
	return dx*dx+dy*dy <= c.R*c.R
}

// Bounds implements Shape.
func (c Circle) Bounds() (minX, minY, maxX, maxY float64) {
	return c.CX - c.R, c.CY - c.R, c.CX + c.R, c.CY + c.R
}

// circleVerticesPerQuarter matches the reference implementation's buffered
// point: 16 vertices per quarter turn, i.e. a regular 64-gon for a full circle.
const circleVerticesPerQuarter = 16

// CirclePolygon approximates c with a regular 64-gon, matching the
// resolution=16 buffer the reference geometry library used for every
// circle obstacle. Used only where byte-level parity with that
// rasterization is required (see Polygon below); Circle.Contains itself
// uses the exact analytic test.
func CirclePolygon(c Circle) Polygon {
	sides := circleVerticesPerQuarter * 4
	verts := make([]Point, sides)
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		verts[i] = Point{
			X: c.CX + c.R*math.Cos(theta),
			Y: c.CY + c.R*math.Sin(theta),
		}
	}
	return Polygon{Vertices: verts}
}

// Polygon is an arbitrary simple polygon, stored in the given vertex order.
type Polygon struct {
	Vertices []Point
}

// Contains implements Shape using the standard ray-casting (even-odd) rule.
func (p Polygon) Contains(pt Point) bool {
	inside := false
	n := len(p.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.Vertices[i], p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			xCross := (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Bounds implements Shape.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.Vertices) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p.Vertices[0].X, p.Vertices[0].Y
	maxX, maxY = minX, minY
	for _, v := range p.Vertices[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}
