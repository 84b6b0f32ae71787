package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/furui/fastnoiselite-go"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/profile"
	"github.com/quasilyte/gmath"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/concavehull"
	"github.com/osuushi/concavehull/render"
)

var (
	app = kingpin.New("concavehull", "Trace concave hulls of 2D point clouds.")

	traceCmd       = app.Command("trace", "Trace the concave hull of a CSV point cloud.")
	traceInput     = traceCmd.Arg("input", "Input CSV of x,y records.").Required().ExistingFile()
	traceConcavity = traceCmd.Flag("concavity", "How far inward the hull may bite: 0 is tightest, inf is the convex hull.").Default("40").Float64()
	traceOutput    = traceCmd.Flag("output", "File to write the hull vertices to.").Short('o').Default("output.csv").String()
	traceImage     = traceCmd.Flag("image", "Render the hull to this PNG.").String()
	traceScale     = traceCmd.Flag("scale", "Pixels per input unit in the rendered image.").Default("1").Float64()
	traceShow      = traceCmd.Flag("show", "Print the rendered image inline (iTerm2).").Bool()
	traceProfile   = traceCmd.Flag("profile", "Write a CPU profile to the working directory.").Bool()

	genCmd    = app.Command("gen", "Generate a synthetic point cloud to experiment on.")
	genOutput = genCmd.Arg("output", "File to write the cloud to. Defaults to a generated name.").String()
	genN      = genCmd.Flag("n", "Number of points.").Default("500").Int()
	genShape  = genCmd.Flag("shape", "Cloud shape.").Default("blob").Enum("blob", "ring", "square")
	genSeed   = genCmd.Flag("seed", "Random seed.").Default("1").Int64()
	genJitter = genCmd.Flag("jitter", "Noise amplitude distorting the shape boundary.").Default("0.35").Float64()
)

func main() {
	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case traceCmd.FullCommand():
		runTrace()
	case genCmd.FullCommand():
		runGen()
	}
}

func runTrace() {
	if *traceProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	points, err := concavehull.ReadPointsFile(*traceInput)
	if err != nil {
		fail(err)
	}

	started := time.Now()
	ring, err := concavehull.Compute(points, *traceConcavity)
	if err != nil {
		fail(err)
	}
	elapsed := time.Since(started).Round(time.Microsecond)

	if err := concavehull.WritePointsFile(*traceOutput, ring); err != nil {
		fail(err)
	}

	imagePath := *traceImage
	if imagePath == "" && *traceShow {
		imagePath = "/tmp/concavehull.png"
	}
	if imagePath != "" {
		opts := render.Options{
			Scale: *traceScale,
			Label: fmt.Sprintf("n=%d concavity=%v", len(points), *traceConcavity),
		}
		if err := render.WritePNG(imagePath, points, ring, opts); err != nil {
			fail(err)
		}
	}
	if *traceShow {
		imgcat.CatFile(imagePath, os.Stdout)
	}

	fmt.Printf("%s %s: %d points -> %d hull vertices (concavity %v) in %s\n",
		aurora.Green("traced"), *traceInput, len(points), len(ring)-1, *traceConcavity, elapsed)
}

func runGen() {
	out := *genOutput
	if out == "" {
		petname.NonDeterministicMode()
		out = petname.Generate(2, "-") + ".csv"
	}
	points := generate(*genShape, *genN, *genSeed, *genJitter)
	if err := concavehull.WritePointsFile(out, points); err != nil {
		fail(err)
	}
	fmt.Printf("%s %d %s points -> %s\n", aurora.Green("generated"), len(points), *genShape, out)
}

// generate samples a cloud around the origin with a noise-wobbled boundary,
// so the hulls have something concave to find.
func generate(shape string, n int, seed int64, jitter float64) []concavehull.Point {
	rng := rand.New(rand.NewSource(seed))
	noise := fastnoiselite.NewNoise()
	noise.Seed = int32(seed)
	noise.Frequency = 1.5

	const radius = 200.0

	// Shape radius along a unit direction, wobbled by value noise so the
	// boundary grows bays and headlands instead of staying round.
	boundary := func(dir gmath.Vec) float64 {
		sample := noise.GetNoise2D(fastnoiselite.FNLfloat(dir.X), fastnoiselite.FNLfloat(dir.Y))
		return radius * (1 + jitter*float64(sample))
	}

	randomDir := func() gmath.Vec {
		return gmath.Vec{X: 1}.Rotated(gmath.Rad(rng.Float64() * 2 * math.Pi))
	}

	points := make([]concavehull.Point, 0, n)
	for len(points) < n {
		var p gmath.Vec
		switch shape {
		case "blob":
			// Area-uniform fill of the wobbled disc.
			dir := randomDir()
			p = dir.Mulf(boundary(dir) * math.Sqrt(rng.Float64()))
		case "ring":
			dir := randomDir()
			p = dir.Mulf(boundary(dir) * (0.7 + 0.3*rng.Float64()))
		case "square":
			p = gmath.Vec{
				X: (rng.Float64()*2 - 1) * radius,
				Y: (rng.Float64()*2 - 1) * radius,
			}
			sample := noise.GetNoise2D(fastnoiselite.FNLfloat(p.X/radius), fastnoiselite.FNLfloat(p.Y/radius))
			p = p.Add(randomDir().Mulf(jitter * radius * 0.2 * float64(sample)))
		}
		points = append(points, concavehull.Point{X: p.X, Y: p.Y})
	}
	return points
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
	os.Exit(1)
}
