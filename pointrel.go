// Point relation predicates for the plane.
//
// This package tells you where a point is relative to a triangle or a simple
// polygon. For triangles the answer is one of eighteen named relations (on
// vertex A, strictly inside edge BC, on the extension of CA past A, outside
// the wedge at B, ...), plus coarse flags. For polygons it is interior,
// exterior, or boundary. It also computes signed polygon area.
//
// All functions are pure and safe for concurrent use. Arithmetic is ordinary
// float64 with exact sign tests, so points that are only approximately on an
// edge are reported as off it.
package pointrel

import "github.com/osuushi/pointrel/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type PolygonList = internal.PolygonList

type Winding = internal.Winding
type OrientationTriple = internal.OrientationTriple
type Relation = internal.Relation
type TriangleRelation = internal.TriangleRelation
type Location = internal.Location

const (
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise

	Exterior = internal.Exterior
	Boundary = internal.Boundary
	Interior = internal.Interior

	Unclassified = internal.Unclassified
	Inside       = internal.Inside
	IsA          = internal.IsA
	IsB          = internal.IsB
	IsC          = internal.IsC
	OnAB         = internal.OnAB
	OnBC         = internal.OnBC
	OnCA         = internal.OnCA
	OnExtendAB   = internal.OnExtendAB
	OnExtendBA   = internal.OnExtendBA
	OnExtendBC   = internal.OnExtendBC
	OnExtendCB   = internal.OnExtendCB
	OnExtendCA   = internal.OnExtendCA
	OnExtendAC   = internal.OnExtendAC
	OutsideA     = internal.OutsideA
	OutsideB     = internal.OutsideB
	OutsideC     = internal.OutsideC
	OutsideAB    = internal.OutsideAB
	OutsideBC    = internal.OutsideBC
	OutsideCA    = internal.OutsideCA
)

// Get the cross product of o->p and o->q. Positive means counterclockwise.
func CrossProduct(p, q, o Point) float64 {
	return internal.CrossProduct(p, q, o)
}

// Get the cross product of p and q as vectors from the origin.
func CrossProductFromOrigin(p, q Point) float64 {
	return internal.CrossProductFromOrigin(p, q)
}

// Get the rotation direction of a->b->c. Collinear points are Clockwise.
func RotationDirection(a, b, c Point) Winding {
	return internal.RotationDirection(a, b, c)
}

// Check if p is in the box with opposite corners a and b, edges included. The
// corners can come in any order.
func PointInRectangle(p, a, b Point) bool {
	return internal.PointInRectangle(p, a, b)
}

// Check if p is on the segment ab, endpoints included.
func PointInLineSegment(p, a, b Point) bool {
	return internal.PointInLineSegment(p, a, b)
}

// Get the winding-normalized side of p for each edge AB, BC, CA of a triangle.
func RelationPTC(p, a, b, c Point) OrientationTriple {
	return internal.RelationPTC(p, a, b, c)
}

// Classify p against the triangle a->b->c.
func RelationPT(p, a, b, c Point) TriangleRelation {
	return internal.RelationPT(p, a, b, c)
}

// Locate p relative to a polygon whose last point repeats its first. The
// closing point is not added for you; use Polygon.Closed if your polygon might
// not have one.
func RelationPP(p Point, polygon []Point) Location {
	return internal.RelationPP(p, polygon)
}

// Get the signed area of a polygon. Counterclockwise polygons are positive.
func Area(points []Point) float64 {
	return internal.Area(points)
}
