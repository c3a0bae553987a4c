package internal

import "fmt"

// Where a point is relative to a polygon.
type Location int

const (
	Exterior Location = iota - 1
	Boundary
	Interior
)

var locationLabels = [3]string{"Exterior", "Boundary", "Interior"}

func (l Location) String() string {
	if l < Exterior || l > Interior {
		return fmt.Sprintf("Location(%d)", int(l))
	}
	return locationLabels[int(l+1)]
}

// Get the relation between p and a polygon with the even-odd rule, by casting
// a ray from p toward +x.
//
// Only consecutive pairs in the slice are treated as edges. Nothing wraps
// around from the last point to the first, so the polygon must already end
// with a copy of its first point. An unclosed polygon is missing its last
// edge, and anything shorter than two points is always Exterior.
func RelationPP(p Point, polygon []Point) Location {
	inside := false
	for i := 0; i < len(polygon)-1; i++ {
		p1 := polygon[i]
		p2 := polygon[i+1]
		// Skip edges whose y span does not include p
		if (p1.Y <= p.Y) != (p.Y <= p2.Y) {
			continue
		}

		if p1.Y == p2.Y {
			// Horizontal edge at p's height. It can only matter if p is on it.
			// The edge may run in either direction
			if PointInRectangle(p, p1, p2) {
				return Boundary
			}
			continue
		}

		// The gate above already limits p to the edge's y span, so a zero cross
		// product means p is on the edge itself, not just on its line.
		c := CrossProduct(p1, p2, p)
		if c == 0 {
			return Boundary
		}
		// An upward edge crosses the ray when p is left of it, a downward edge
		// when p is right of it.
		if (p1.Y < p2.Y) == (c > 0) {
			inside = !inside
		}
	}

	if inside {
		return Interior
	}
	return Exterior
}

// Get the signed area of a polygon by summing a triangle fan from the first
// point. Positive means counterclockwise. The closing copy of the first point
// is optional since it adds a zero area triangle. Fewer than three points give
// zero.
func Area(points []Point) float64 {
	var r float64
	for i := 2; i < len(points); i++ {
		r += CrossProduct(points[i-1], points[i], points[0])
	}
	return r / 2
}

func (poly Polygon) Locate(p Point) Location {
	return RelationPP(p, poly.Points)
}

func (poly Polygon) SignedArea() float64 {
	return Area(poly.Points)
}

// Check if the last point repeats the first, which RelationPP requires.
func (poly Polygon) IsClosed() bool {
	n := len(poly.Points)
	return n > 1 && poly.Points[0] == poly.Points[n-1]
}

// Get a copy of the polygon that ends with its first point. A polygon that is
// already closed, or is empty, is returned unchanged.
func (poly Polygon) Closed() Polygon {
	if len(poly.Points) == 0 || poly.IsClosed() {
		return poly
	}
	points := make([]Point, len(poly.Points), len(poly.Points)+1)
	copy(points, poly.Points)
	return Polygon{Points: append(points, points[0])}
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// The edges of the polygon as given, without wrapping around.
func (poly Polygon) Edges() []Segment {
	if len(poly.Points) < 2 {
		return nil
	}
	edges := make([]Segment, 0, len(poly.Points)-1)
	for i := 1; i < len(poly.Points); i++ {
		edges = append(edges, Segment{poly.Points[i-1], poly.Points[i]})
	}
	return edges
}

// Get the location of p relative to a set of polygons, treating them as one
// even-odd shape, so that clockwise holes inside outer polygons work. A point
// on any polygon's boundary is on the boundary.
func (list PolygonList) Locate(p Point) Location {
	inside := false
	for _, poly := range list {
		switch poly.Locate(p) {
		case Boundary:
			return Boundary
		case Interior:
			inside = !inside
		}
	}
	if inside {
		return Interior
	}
	return Exterior
}
