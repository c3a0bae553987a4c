package internal

import "fmt"

// One sign per directed triangle edge, in the order AB, BC, CA. After
// normalization by the triangle's winding, 1 means the point is on the inner
// side of that edge, -1 the outer side, and 0 on the line through the edge.
type OrientationTriple [3]int

// Get the orientation of p against each edge of the triangle a->b->c. The
// signs are multiplied by the triangle's rotation direction so that the result
// does not depend on which way the triangle winds.
func RelationPTC(p, a, b, c Point) OrientationTriple {
	dir := int(RotationDirection(a, b, c))
	return OrientationTriple{
		sign(CrossProduct(a, b, p)) * dir,
		sign(CrossProduct(b, c, p)) * dir,
		sign(CrossProduct(c, a, p)) * dir,
	}
}

func (o OrientationTriple) Sum() int {
	return o[0] + o[1] + o[2]
}

func (o OrientationTriple) Product() int {
	return o[0] * o[1] * o[2]
}

func (o OrientationTriple) String() string {
	return fmt.Sprintf("(%d, %d, %d)", o[0], o[1], o[2])
}
