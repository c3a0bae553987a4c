package internal

import "math"

// Check if p lies in the axis aligned box with a and b as opposite corners,
// edges included. a and b may be given in either order.
func PointInRectangle(p, a, b Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// Check if p lies on the closed segment ab, endpoints included. Being on the
// line through a and b is not enough; p must also be inside the bounding box.
func PointInLineSegment(p, a, b Point) bool {
	return PointInRectangle(p, a, b) && CrossProduct(a, b, p) == 0
}

func (s Segment) Contains(p Point) bool {
	return PointInLineSegment(p, s.Start, s.End)
}

func (s Segment) BoundsContain(p Point) bool {
	return PointInRectangle(p, s.Start, s.End)
}
