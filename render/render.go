package render

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/osuushi/concavehull/hull"
)

// PNG rendering of a traced hull over its cloud. The boundary is stroked
// segment by segment with a cool-to-warm gradient along the walk, so the
// winding direction is visible at a glance: the hull starts cyan at its
// first vertex and ends red-orange where it closes.

// Padding around the cloud, in pixels.
const imagePadding = 10

var (
	gradientStart = [3]float64{0, 1, 1}    // cyan
	gradientEnd   = [3]float64{1, 0.25, 0} // red-orange
)

type Options struct {
	// Pixels per input unit. Zero means 1.
	Scale float64
	// Text drawn in the bottom-left corner. Empty draws nothing.
	Label string
}

// Image draws the cloud and its hull ring into a new context. The ring may
// be empty to draw the cloud alone; with no points at all the result is a
// bare padded canvas.
func Image(points, ring []hull.Point, o Options) *gg.Context {
	if len(points) == 0 && len(ring) == 0 {
		c := gg.NewContext(imagePadding*2, imagePadding*2)
		c.SetRGB(0, 0, 0)
		c.DrawRectangle(0, 0, imagePadding*2, imagePadding*2)
		c.Fill()
		return c
	}

	scale := o.Scale
	if scale == 0 {
		scale = 1
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range ring {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + imagePadding*2
	height := int(scale*(maxY-minY)) + imagePadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(imagePadding, imagePadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Point size tracks the cloud extent so dots neither vanish on large
	// clouds nor swallow small ones. Stroke widths are in device pixels, but
	// circle radii pass through the transform, so divide the scale back out.
	extent := math.Max(maxX-minX, maxY-minY)
	pointRadius := math.Max(scale*extent/250, 2) / scale

	c.SetRGB(0.6, 0.6, 0.6)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, pointRadius)
	}
	c.Fill()

	if len(ring) >= 2 {
		drawRing(c, ring, pointRadius)
	}

	if o.Label != "" {
		c.Push()
		c.Identity()
		c.SetFontFace(basicfont.Face7x13)
		c.SetRGB(1, 1, 1)
		c.DrawString(o.Label, 6, float64(height)-6)
		c.Pop()
	}

	return c
}

func drawRing(c *gg.Context, ring []hull.Point, pointRadius float64) {
	perimeter := 0.0
	for i := 0; i+1 < len(ring); i++ {
		perimeter += ringDist(ring[i], ring[i+1])
	}
	if perimeter == 0 {
		perimeter = 1
	}

	c.SetLineWidth(2)
	walked := 0.0
	for i := 0; i+1 < len(ring); i++ {
		a, b := ring[i], ring[i+1]
		t := ease.InOutQuad(walked / perimeter)
		r := gradientStart[0] + (gradientEnd[0]-gradientStart[0])*t
		g := gradientStart[1] + (gradientEnd[1]-gradientStart[1])*t
		bl := gradientStart[2] + (gradientEnd[2]-gradientStart[2])*t
		c.SetRGB(r, g, bl)
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.Stroke()
		walked += ringDist(a, b)
	}

	// Mark the starting vertex so the gradient has an anchor to read from.
	c.SetRGB(1, 1, 1)
	c.DrawCircle(ring[0].X, ring[0].Y, pointRadius*2)
	c.Stroke()
}

func ringDist(a, b hull.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// WritePNG renders and saves in one call.
func WritePNG(path string, points, ring []hull.Point, o Options) error {
	return Image(points, ring, o).SavePNG(path)
}
