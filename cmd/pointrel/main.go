package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/pointrel/internal"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Classify query points against triangles and polygons, printing one line per
// point and shape pair.
//
// Shapes come from a YAML scene file, an SVG file, or stdin. On stdin, input
// should be newline separated points in the form "x y", with each group
// separated by an extra newline. Groups of three or more points are polygons;
// groups of a single point are query points.
var (
	app      = kingpin.New("pointrel", "Classify points against triangles and polygons.")
	verbose  = app.Flag("verbose", "Log debug output.").Short('v').Bool()
	drawPath = app.Flag("draw", "Render the scene to this PNG file.").String()
	catImage = app.Flag("imgcat", "Print the rendered scene to the terminal.").Bool()
	scale    = app.Flag("scale", "Pixels per unit when rendering.").Default("40").Float64()

	classifyCmd = app.Command("classify", "Classify the points of a YAML scene.")
	sceneFile   = classifyCmd.Arg("scene", "Scene file.").Required().File()

	svgCmd    = app.Command("svg", "Classify points against every polygon in an SVG file.")
	svgFile   = svgCmd.Arg("file", "SVG file.").Required().File()
	svgPoints = svgCmd.Flag("point", `Query point as "x,y". May be repeated.`).Short('p').Strings()

	stdinCmd = app.Command("stdin", "Read polygons and query points from stdin.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var (
		scene *internal.Scene
		err   error
	)
	switch command {
	case classifyCmd.FullCommand():
		defer (*sceneFile).Close()
		scene, err = internal.LoadScene(*sceneFile)
	case svgCmd.FullCommand():
		defer (*svgFile).Close()
		scene, err = readSVGScene(*svgFile, *svgPoints)
	case stdinCmd.FullCommand():
		scene, err = readStdinScene(os.Stdin)
	}
	if err != nil {
		log.WithError(err).Fatal("could not read input")
	}

	log.WithFields(log.Fields{
		"triangles": len(scene.Triangles),
		"polygons":  len(scene.Polygons),
		"points":    len(scene.Points),
	}).Debug("loaded scene")

	evaluations := scene.Evaluate()
	report(os.Stdout, scene, evaluations)

	if *drawPath != "" {
		if err := internal.SaveScenePNG(*drawPath, scene, evaluations, *scale); err != nil {
			log.WithError(err).Fatal("could not render scene")
		}
		log.WithField("path", *drawPath).Info("rendered scene")
	}
	if *catImage {
		if err := internal.CatScene(scene, evaluations, *scale); err != nil {
			log.WithError(err).Fatal("could not render scene")
		}
	}
}

func report(w io.Writer, scene *internal.Scene, evaluations []internal.Evaluation) {
	for _, poly := range scene.Polygons {
		fmt.Fprintf(w, "polygon %s: area %g\n", poly.Name, poly.SignedArea())
	}
	for _, e := range evaluations {
		fmt.Fprintf(w, "%s (%g, %g) vs %s: %s\n", e.Point.Name, e.Point.X, e.Point.Y, e.Shape, e.Colored())
		if e.Triangle != nil {
			log.WithFields(log.Fields{
				"point":       e.Point.Name,
				"triangle":    e.Shape,
				"orientation": e.Triangle.Orientation.String(),
				"flags":       strings.Join(e.Triangle.Flags(), ","),
			}).Debug("triangle relation")
		}
	}
}

func readSVGScene(in io.Reader, queries []string) (*internal.Scene, error) {
	polygons, err := internal.LoadSVGPolygons(in)
	if err != nil {
		return nil, err
	}
	scene := &internal.Scene{}
	scene.AddPolygons(polygons)
	for _, query := range queries {
		p, err := parsePoint(strings.Replace(query, ",", " ", 1))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --point %q", query)
		}
		scene.AddPoint(p)
	}
	return scene, nil
}

func readStdinScene(in io.Reader) (*internal.Scene, error) {
	scene := &internal.Scene{}
	var polygons internal.PolygonList
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []internal.Point{}
	flush := func() error {
		switch {
		case len(points) == 0:
		case len(points) == 1:
			scene.AddPoint(points[0])
		case len(points) >= 3:
			polygons = append(polygons, internal.Polygon{Points: points})
		default:
			return errors.Errorf("group of %d points is neither a polygon nor a query point", len(points))
		}
		points = []internal.Point{}
		return nil
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, this is the end of the group
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}

	// Handle trailing group if any
	if err := flush(); err != nil {
		return nil, err
	}
	scene.AddPolygons(polygons)
	return scene, nil
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}
