package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It parses the document and
// converts every <polygon> element it finds into a Polygon, in document order.
// Transforms, paths and everything else are ignored. The points keep their
// SVG coordinates, so y grows downward and the winding you see on screen is
// the reverse of the winding the geometry reports.

func LoadSVGPolygons(r io.Reader) (list PolygonList, err error) {
	defer func() {
		if recoveredErr := HandleScenePanicRecover(recover()); recoveredErr != nil {
			list = nil
			err = recoveredErr
		}
	}()

	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	for _, polygonEl := range polygonEls {
		list = append(list, Polygon{Points: parseSVGPoints(polygonEl.Attributes["points"])})
	}
	return list, nil
}

// Parse an svg points attribute. Pairs are separated by whitespace, and the
// coordinates within a pair by a comma.
func parseSVGPoints(pointString string) []Point {
	pointStrings := strings.Fields(pointString)
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordStrings := strings.Split(pointString, ",")
		if len(coordStrings) != 2 {
			fatalf("invalid point string %q", pointString)
		}
		points = append(points, Point{
			X: parseCoordinate(coordStrings[0]),
			Y: parseCoordinate(coordStrings[1]),
		})
	}
	if len(points) == 0 {
		fatalf("polygon has no points")
	}
	return points
}

func parseCoordinate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fatalf("invalid coordinate %q: %v", s, err)
	}
	return v
}
