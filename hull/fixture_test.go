package hull

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point clouds. This is not a
// full (or even correct) svg parser. It parses the SVG, finds whatever the
// first polygon is, and samples the region it bounds into a cloud. If
// anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

// loadFixtureOutline returns the vertices of the fixture's polygon.
func loadFixtureOutline(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// sampleOutline turns a fixture outline into a dense boundary cloud: the
// polygon's vertices plus points interpolated along every edge at spacing of
// at most step. The sampling is deterministic, so every trace over a fixture
// cloud is exactly reproducible.
func sampleOutline(name string, step float64) []Point {
	outline := loadFixtureOutline(name)

	var points []Point
	for i, a := range outline {
		b := outline[CircularIndex(i+1, len(outline))]
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		n := int(math.Ceil(length / step))
		if n < 1 {
			n = 1
		}
		for j := 0; j < n; j++ {
			f := float64(j) / float64(n)
			points = append(points, Point{a.X + f*(b.X-a.X), a.Y + f*(b.Y-a.Y)})
		}
	}
	return points
}

// sampleFilled adds an axis-aligned interior lattice to the boundary cloud.
func sampleFilled(name string, step float64) []Point {
	outline := loadFixtureOutline(name)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range outline {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	points := sampleOutline(name, step)
	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := Point{x, y}
			if PointInPolygon(p, outline) == Inside {
				points = append(points, p)
			}
		}
	}
	return points
}
