package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/pointrel/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	p, err := parsePoint(" 1.5   -2 ")
	require.NoError(t, err)
	assert.Equal(t, internal.Point{X: 1.5, Y: -2}, p)

	_, err = parsePoint("1")
	assert.Error(t, err)
	_, err = parsePoint("a 2")
	assert.Error(t, err)
	_, err = parsePoint("1 b")
	assert.Error(t, err)
}

func TestReadStdinScene(t *testing.T) {
	input := strings.Join([]string{
		"0 0",
		"2 0",
		"2 2",
		"0 2",
		"",
		"1 1",
		"",
		"",
		"3 3",
	}, "\n")

	scene, err := readStdinScene(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, scene.Polygons, 1)
	assert.True(t, scene.Polygons[0].IsClosed())
	require.Len(t, scene.Points, 2)
	assert.Equal(t, internal.Point{X: 3, Y: 3}, scene.Points[1].Point)

	evaluations := scene.Evaluate()
	require.Len(t, evaluations, 2)
	assert.Equal(t, internal.Interior, *evaluations[0].Polygon)
	assert.Equal(t, internal.Exterior, *evaluations[1].Polygon)

	t.Run("two point group", func(t *testing.T) {
		_, err := readStdinScene(strings.NewReader("0 0\n1 1\n"))
		assert.EqualError(t, err, "group of 2 points is neither a polygon nor a query point")
	})

	t.Run("bad line", func(t *testing.T) {
		_, err := readStdinScene(strings.NewReader("0 0\nnope\n"))
		assert.Error(t, err)
	})
}

func TestReadSVGScene(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 4,0 4,4 0,4"/></svg>`

	scene, err := readSVGScene(strings.NewReader(svg), []string{"1,1", "4,2", "9,9"})
	require.NoError(t, err)
	require.Len(t, scene.Points, 3)

	var locations []internal.Location
	for _, e := range scene.Evaluate() {
		locations = append(locations, *e.Polygon)
	}
	assert.Equal(t, []internal.Location{internal.Interior, internal.Boundary, internal.Exterior}, locations)

	_, err = readSVGScene(strings.NewReader(svg), []string{"1;1"})
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	scene, err := readStdinScene(strings.NewReader("0 0\n2 0\n2 2\n0 2\n\n1 1\n"))
	require.NoError(t, err)

	var out bytes.Buffer
	report(&out, scene, scene.Evaluate())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "area 4")
	assert.Contains(t, lines[1], "(1, 1) vs")
	assert.Contains(t, lines[1], "Interior")
}
