package internal

import "fmt"

// Get the cross product of the vectors o->p and o->q. This is the z component
// of the 3D cross product. It is positive when o->p->q turns counterclockwise,
// negative when it turns clockwise, and zero when the three points are
// collinear (which includes any two of them coinciding).
func CrossProduct(p, q, o Point) float64 {
	return (p.X-o.X)*(q.Y-o.Y) - (p.Y-o.Y)*(q.X-o.X)
}

// Cross product with the origin as the common point.
func CrossProductFromOrigin(p, q Point) float64 {
	return CrossProduct(p, q, Point{})
}

type Winding int

const (
	Clockwise        Winding = -1
	CounterClockwise Winding = 1
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return fmt.Sprintf("Winding(%d)", int(w))
}

// Get the rotation direction of a->b->c->a. Note that a collinear triangle is
// reported as clockwise. This tie break flips the sign of every edge test made
// by RelationPTC for degenerate triangles, and must stay as it is.
func RotationDirection(a, b, c Point) Winding {
	if CrossProduct(b, c, a) > 0 {
		return CounterClockwise
	}
	return Clockwise
}

func (t *Triangle) SignedArea() float64 {
	return CrossProduct(t.B, t.C, t.A) / 2
}

func (t *Triangle) Winding() Winding {
	return RotationDirection(t.A, t.B, t.C)
}

func IsCCW(shape Shape) bool {
	return Area(shape.Vertices()) > 0
}

func IsCW(shape Shape) bool {
	return Area(shape.Vertices()) < 0
}

// Sign of a float as -1, 0 or 1. NaN gives 0.
func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
