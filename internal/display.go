package internal

import "github.com/logrusorgru/aurora"

// Colour a relation name for terminal output. Green is inside, yellow is on
// the boundary, cyan is on an edge's extension, red is outside.
func (r TriangleRelation) Colored() string {
	name := r.Kind.String()
	switch {
	case r.Inside():
		return aurora.Green(name).String()
	case r.OnEdge():
		return aurora.Yellow(name).String()
	case r.OnExtendEdge():
		return aurora.Cyan(name).String()
	case r.Outside():
		return aurora.Red(name).String()
	}
	return aurora.Magenta(name).String()
}

func (l Location) Colored() string {
	switch l {
	case Interior:
		return aurora.Green(l.String()).String()
	case Boundary:
		return aurora.Yellow(l.String()).String()
	}
	return aurora.Red(l.String()).String()
}

func (e Evaluation) Colored() string {
	if e.Triangle != nil {
		return e.Triangle.Colored()
	}
	if e.Polygon != nil {
		return e.Polygon.Colored()
	}
	return "none"
}
