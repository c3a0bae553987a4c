package internal

import "fmt"

// The named relations between a point and a triangle. A point matches exactly
// one of these. Unclassified is only reachable with degenerate triangles,
// where the edge tests can disagree in ways a real triangle never produces.
type Relation int

const (
	Unclassified Relation = iota
	Inside

	// Coincides with a vertex
	IsA
	IsB
	IsC

	// Strictly between the endpoints of an edge
	OnAB
	OnBC
	OnCA

	// On the line through an edge, outside the edge itself. The second letter
	// is the vertex the point lies beyond, so OnExtendBA is past A on line AB.
	OnExtendAB
	OnExtendBA
	OnExtendBC
	OnExtendCB
	OnExtendCA
	OnExtendAC

	// Strictly outside. The single letter regions are the wedges beyond a
	// vertex (outside two edges), the two letter regions are beyond one edge.
	OutsideA
	OutsideB
	OutsideC
	OutsideAB
	OutsideBC
	OutsideCA
)

// These are the flag names used by existing consumers of the relation record,
// so they must not change.
var relationNames = [...]string{
	Unclassified: "unclassified",
	Inside:       "inside",
	IsA:          "isA",
	IsB:          "isB",
	IsC:          "isC",
	OnAB:         "onAB",
	OnBC:         "onBC",
	OnCA:         "onCA",
	OnExtendAB:   "onExtendAB",
	OnExtendBA:   "onExtendBA",
	OnExtendBC:   "onExtendBC",
	OnExtendCB:   "onExtendCB",
	OnExtendCA:   "onExtendCA",
	OnExtendAC:   "onExtendAC",
	OutsideA:     "outsideA",
	OutsideB:     "outsideB",
	OutsideC:     "outsideC",
	OutsideAB:    "outsideAB",
	OutsideBC:    "outsideBC",
	OutsideCA:    "outsideCA",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", int(r))
	}
	return relationNames[r]
}

// Mapping from edge orientations (AB, BC, CA) to the named relation. The
// naming is not a rotation of A/B/C; each row was checked against the geometry
// of a counterclockwise triangle and must be kept literally.
var relationTable = map[OrientationTriple]Relation{
	{1, 1, 1}: Inside,

	{0, 1, 0}: IsA,
	{0, 0, 1}: IsB,
	{1, 0, 0}: IsC,

	{0, 1, 1}: OnAB,
	{1, 0, 1}: OnBC,
	{1, 1, 0}: OnCA,

	{0, 1, -1}: OnExtendBA,
	{-1, 1, 0}: OnExtendCA,
	{0, -1, 1}: OnExtendAB,
	{-1, 0, 1}: OnExtendCB,
	{1, -1, 0}: OnExtendAC,
	{1, 0, -1}: OnExtendBC,

	{-1, 1, -1}: OutsideA,
	{-1, 1, 1}:  OutsideAB,
	{-1, -1, 1}: OutsideB,
	{1, -1, 1}:  OutsideBC,
	{1, -1, -1}: OutsideC,
	{1, 1, -1}:  OutsideCA,
}

// The result of classifying a point against a triangle. Kind is the fine
// grained relation. The coarse queries are computed from the orientation
// triple rather than from Kind, so they are meaningful even when Kind is
// Unclassified.
type TriangleRelation struct {
	Orientation OrientationTriple
	Kind        Relation
}

// Classify p against the triangle a->b->c.
func RelationPT(p, a, b, c Point) TriangleRelation {
	orientation := RelationPTC(p, a, b, c)
	return TriangleRelation{
		Orientation: orientation,
		Kind:        relationTable[orientation],
	}
}

func (t *Triangle) Relation(p Point) TriangleRelation {
	return RelationPT(p, t.A, t.B, t.C)
}

// Strictly inside all three edges.
func (r TriangleRelation) Inside() bool {
	return r.Orientation.Sum() == 3
}

// On one of the three vertices.
func (r TriangleRelation) IsVertex() bool {
	return r.Orientation.Product() == 0 && r.Orientation.Sum() == 1
}

// On the closed boundary of the triangle. Note that this includes vertices.
func (r TriangleRelation) OnEdge() bool {
	return r.Orientation.Product() == 0 && r.Orientation.Sum() > 0
}

// On the line through an edge, but not on the triangle itself.
func (r TriangleRelation) OnExtendEdge() bool {
	return r.Orientation.Product() == 0 && r.Orientation.Sum() <= 0
}

// Not touching the triangle or the lines through any of its edges.
func (r TriangleRelation) Outside() bool {
	return r.Orientation.Product() != 0 && r.Orientation.Sum() < 3
}

func (r TriangleRelation) Is(kind Relation) bool {
	return r.Kind == kind
}

// The orientation triple packed into a single integer as u*9 + v*3 + w. This
// is the numbering older callers stored, kept for compatibility only.
func (r TriangleRelation) Code() int {
	return r.Orientation[0]*9 + r.Orientation[1]*3 + r.Orientation[2]
}

// Names of all true flags, coarse first, then the fine relation if there is
// one. Inside is reported once.
func (r TriangleRelation) Flags() []string {
	var flags []string
	coarse := []struct {
		name string
		set  bool
	}{
		{"inside", r.Inside()},
		{"isVertex", r.IsVertex()},
		{"onEdge", r.OnEdge()},
		{"onExtendEdge", r.OnExtendEdge()},
		{"outside", r.Outside()},
	}
	for _, flag := range coarse {
		if flag.set {
			flags = append(flags, flag.name)
		}
	}
	if r.Kind != Unclassified && r.Kind != Inside {
		flags = append(flags, r.Kind.String())
	}
	return flags
}

func (r TriangleRelation) String() string {
	return fmt.Sprintf("%s %s", r.Kind, r.Orientation)
}
