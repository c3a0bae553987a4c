package internal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/osuushi/pointrel/internal/dbg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A scene is a set of shapes and a set of query points, read from YAML:
//
//	triangles:
//	  - name: wedge
//	    points: [[0, 0], [4, 0], [0, 4]]
//	polygons:
//	  - name: square
//	    points: [[0, 0], [0, 2], [2, 2], [2, 0]]
//	points:
//	  - name: center
//	    at: [1, 1]
//
// Names are optional; unnamed entries get a readable generated name. Polygons
// in a scene describe closed shapes, so they are closed on load if the last
// point does not already repeat the first.
type Scene struct {
	Triangles []NamedTriangle
	Polygons  []NamedPolygon
	Points    []NamedPoint
}

type NamedTriangle struct {
	Name string
	Triangle
}

type NamedPolygon struct {
	Name string
	Polygon
}

type NamedPoint struct {
	Name string
	Point
}

type sceneFile struct {
	Triangles []shapeEntry `yaml:"triangles"`
	Polygons  []shapeEntry `yaml:"polygons"`
	Points    []pointEntry `yaml:"points"`
}

type shapeEntry struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points"`
}

type pointEntry struct {
	Name string    `yaml:"name"`
	At   []float64 `yaml:"at"`
}

func LoadScene(r io.Reader) (scene *Scene, err error) {
	defer func() {
		if recoveredErr := HandleScenePanicRecover(recover()); recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()

	var file sceneFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return &Scene{}, nil
		}
		return nil, errors.Wrap(err, "failed to decode scene")
	}

	scene = &Scene{}
	for i, entry := range file.Triangles {
		points := toPoints(entry.Points, fmt.Sprintf("triangle %d", i))
		if len(points) != 3 {
			fatalf("triangle %d has %d points, want 3", i, len(points))
		}
		tri := Triangle{points[0], points[1], points[2]}
		name := entry.Name
		if name == "" {
			name = dbg.Name(tri)
		}
		scene.Triangles = append(scene.Triangles, NamedTriangle{name, tri})
	}

	for i, entry := range file.Polygons {
		points := toPoints(entry.Points, fmt.Sprintf("polygon %d", i))
		if len(points) < 3 {
			fatalf("polygon %d has %d points, want at least 3", i, len(points))
		}
		name := entry.Name
		if name == "" {
			name = dbg.Name(fmt.Sprintf("polygon:%v", points))
		}
		scene.Polygons = append(scene.Polygons, NamedPolygon{name, Polygon{points}.Closed()})
	}

	for i, entry := range file.Points {
		p := toPoint(entry.At, fmt.Sprintf("point %d", i))
		name := entry.Name
		if name == "" {
			name = dbg.Name(p)
		}
		scene.Points = append(scene.Points, NamedPoint{name, p})
	}
	return scene, nil
}

func toPoints(coords [][]float64, what string) []Point {
	points := make([]Point, 0, len(coords))
	for i, pair := range coords {
		points = append(points, toPoint(pair, fmt.Sprintf("%s, vertex %d", what, i)))
	}
	return points
}

func toPoint(pair []float64, what string) Point {
	if len(pair) != 2 {
		fatalf("%s: expected [x, y], got %d values", what, len(pair))
	}
	return Point{pair[0], pair[1]}
}

// Add polygons read from elsewhere (an svg, stdin). They are closed the same
// way polygons loaded from YAML are.
func (s *Scene) AddPolygons(list PolygonList) {
	for _, poly := range list {
		name := dbg.Name(fmt.Sprintf("polygon:%v", poly.Points))
		s.Polygons = append(s.Polygons, NamedPolygon{name, poly.Closed()})
	}
}

func (s *Scene) AddPoint(p Point) {
	s.Points = append(s.Points, NamedPoint{dbg.Name(p), p})
}

// The outcome of testing one point against one shape. Exactly one of
// Triangle and Polygon is set. PointIndex is the point's position in
// Scene.Points.
type Evaluation struct {
	Point      NamedPoint
	PointIndex int
	Shape      string
	Triangle *TriangleRelation
	Polygon  *Location
}

// Test every point against every shape. Triangles come first, then polygons,
// each in scene order, for each point in scene order.
func (s *Scene) Evaluate() []Evaluation {
	evaluations := make([]Evaluation, 0, len(s.Points)*(len(s.Triangles)+len(s.Polygons)))
	for pi, p := range s.Points {
		for i := range s.Triangles {
			tri := &s.Triangles[i]
			relation := tri.Relation(p.Point)
			evaluations = append(evaluations, Evaluation{Point: p, PointIndex: pi, Shape: tri.Name, Triangle: &relation})
		}
		for _, poly := range s.Polygons {
			location := poly.Locate(p.Point)
			evaluations = append(evaluations, Evaluation{Point: p, PointIndex: pi, Shape: poly.Name, Polygon: &location})
		}
	}
	return evaluations
}

// Strictly inside the shape.
func (e Evaluation) Contained() bool {
	if e.Triangle != nil {
		return e.Triangle.Inside()
	}
	return e.Polygon != nil && *e.Polygon == Interior
}

// On the boundary of the shape, vertices included.
func (e Evaluation) Touching() bool {
	if e.Triangle != nil {
		return e.Triangle.OnEdge()
	}
	return e.Polygon != nil && *e.Polygon == Boundary
}

func (e Evaluation) Label() string {
	if e.Triangle != nil {
		return strings.Join(e.Triangle.Flags(), ",")
	}
	if e.Polygon != nil {
		return e.Polygon.String()
	}
	return "none"
}

func (e Evaluation) String() string {
	return fmt.Sprintf("%s (%g, %g) vs %s: %s", e.Point.Name, e.Point.X, e.Point.Y, e.Shape, e.Label())
}

// Get the bounding box of every shape and point in the scene. An empty scene
// gives an inverted (infinite) box.
func (s *Scene) Bounds() (lo, hi Point) {
	lo = Point{math.Inf(1), math.Inf(1)}
	hi = Point{math.Inf(-1), math.Inf(-1)}
	grow := func(p Point) {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	for _, tri := range s.Triangles {
		for _, p := range tri.Vertices() {
			grow(p)
		}
	}
	for _, poly := range s.Polygons {
		for _, p := range poly.Points {
			grow(p)
		}
	}
	for _, p := range s.Points {
		grow(p.Point)
	}
	return lo, hi
}
