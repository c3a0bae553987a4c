package internal

// This contains no actual tests. It is a helper that checks RelationPP against
// an independent even-odd implementation by sampling a grid of points.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Textbook crossing count over an open polygon (no closing copy), using a
// half-open y interval per edge so shared vertices are counted once.
func crossingCount(poly Polygon, p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func containsByCrossingCount(list PolygonList, p Point) bool {
	total := 0
	for _, poly := range list {
		total += crossingCount(poly, p)
	}
	return total%2 == 1
}

// Sample a grid over the padded bounding box of the (open) polygons. The grid
// is offset by an odd fraction so that no sample shares a y value with a
// vertex, where the two rules are allowed to disagree.
func validateLocationsBySampling(t *testing.T, list PolygonList) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, poly := range list {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50

	closed := make(PolygonList, len(list))
	for i, poly := range list {
		closed[i] = poly.Closed()
	}

	for y := minY + step*0.37; y <= maxY; y += step {
		for x := minX + step*0.21; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			actual := closed.Locate(p)
			if actual == Boundary {
				continue
			}
			if containsByCrossingCount(list, p) {
				assert.Equal(t, Interior, actual, "point %v should be inside", p)
			} else {
				assert.Equal(t, Exterior, actual, "point %v should be outside", p)
			}
		}
	}
}
