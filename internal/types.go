package internal

// Points are plain values. Nothing in this package ever holds on to a point,
// triangle or polygon past the call it was passed to, and none of them are
// modified, so callers can reuse their slices freely.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

// Vertex order matters. It decides which side of each directed edge is the
// left side, and so which relation names (isA, onExtendBA, ...) come out of
// the classifier.
type Triangle struct {
	A, B, C Point
}

// A polygon is a chain of directed edges from each point to the next. The
// point-in-polygon test does not wrap around, so the chain must end with a
// copy of its first point. See IsClosed and Closed.
type Polygon struct {
	Points []Point
}

type PolygonList []Polygon

// Anything that can be reduced to an ordered list of vertices for area and
// winding purposes.
type Shape interface {
	Vertices() []Point
}

func (t *Triangle) Vertices() []Point {
	return []Point{t.A, t.B, t.C}
}

func (poly *Polygon) Vertices() []Point {
	return poly.Points
}

func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}
