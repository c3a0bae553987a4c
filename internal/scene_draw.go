package internal

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the scene so that points on the bounding box are visible
const drawPadding = 40

const pointRadius = 4

// Largest canvas side in pixels. gg allocates the whole image up front.
const maxCanvasSize = 16384

// Render a scene with each query point coloured by how it relates to the
// shapes: green if strictly inside at least one shape, yellow if it touches a
// boundary but is inside none, red otherwise. Shapes are filled with the
// even-odd rule.
func DrawScene(scene *Scene, evaluations []Evaluation, scale float64) (*gg.Context, error) {
	if scale <= 0 {
		return nil, errors.Errorf("scale must be positive, got %g", scale)
	}
	lo, hi := scene.Bounds()
	if math.IsInf(lo.X, 0) || math.IsInf(hi.X, 0) {
		return nil, errors.New("scene is empty")
	}

	// Set up the context
	extentX := scale*(hi.X-lo.X) + drawPadding*2
	extentY := scale*(hi.Y-lo.Y) + drawPadding*2
	if !(extentX <= maxCanvasSize && extentY <= maxCanvasSize) {
		return nil, errors.Errorf(
			"scene is too large to draw at scale %g: %gx%g px, max %d",
			scale, extentX, extentY, maxCanvasSize,
		)
	}
	width := int(extentX)
	height := int(extentY)
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(2)
	for _, poly := range scene.Polygons {
		tracePath(c, poly.Points)
	}
	c.SetRGBA(0, 0.5, 0, 0.6)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for i := range scene.Triangles {
		tracePath(c, scene.Triangles[i].Vertices())
	}
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	c.SetRGB(1, 1, 1)
	c.Stroke()

	summaries := summarizePoints(len(scene.Points), evaluations)
	for i, p := range scene.Points {
		summary := summaries[i]
		switch {
		case summary.contained:
			c.SetRGB(0, 1, 0)
		case summary.touching:
			c.SetRGB(1, 1, 0)
		default:
			c.SetRGB(1, 0, 0)
		}
		// Draw in device space so the marker and label don't scale
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawCircle(x, y, pointRadius)
		c.Fill()
		c.DrawStringAnchored(p.Name, x, y-pointRadius*2, 0.5, 0)
		c.Pop()
	}
	return c, nil
}

func tracePath(c *gg.Context, points []Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

type pointSummary struct {
	contained, touching bool
}

// Combine the evaluations of each scene point. Points are told apart by their
// index, since names need not be unique.
func summarizePoints(pointCount int, evaluations []Evaluation) []pointSummary {
	summaries := make([]pointSummary, pointCount)
	for _, e := range evaluations {
		if e.PointIndex < 0 || e.PointIndex >= pointCount {
			continue
		}
		summary := &summaries[e.PointIndex]
		summary.contained = summary.contained || e.Contained()
		summary.touching = summary.touching || e.Touching()
	}
	return summaries
}

func SaveScenePNG(path string, scene *Scene, evaluations []Evaluation, scale float64) error {
	c, err := DrawScene(scene, evaluations, scale)
	if err != nil {
		return err
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "failed to save %q", path)
	}
	return nil
}

// Print a scene to the terminal through a temporary PNG. Only terminals that
// understand the iTerm image protocol will show anything.
func CatScene(scene *Scene, evaluations []Evaluation, scale float64) error {
	path := filepath.Join(os.TempDir(), "pointrel_scene.png")
	if err := SaveScenePNG(path, scene, evaluations, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
