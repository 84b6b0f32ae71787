package hull

import (
	"math"
	"sort"
)

// The active set lives in a uniform bucket grid sized for about one point
// per cell. A static tree would make removal awkward: the trace deletes one
// point per committed vertex, and a tombstoned or rebuilt tree degrades over
// a full trace. Buckets give O(1) swap removal and keep neighborhood queries
// proportional to the area actually inspected.
//
// Once the active set has shrunk to nearly nothing, ring walks over mostly
// empty cells would dominate the query cost, so small populations are
// scanned through a compact list of the active indices instead.

// Active population at or below which queries skip the cells and scan the
// active list directly.
const scanThreshold = 16

type Grid struct {
	pts        []Point
	side       float64 // cell side length
	cols, rows int
	minX, minY float64
	diag       float64 // bounding box diagonal of the full cloud

	cells     [][]int // active indices per cell
	cellPos   []int   // index -> position within its cell bucket
	active    []bool
	list      []int // compact list of active indices
	listPos   []int // index -> position within list
	remaining int

	minGap float64 // smallest positive nearest-neighbor distance in the full cloud
}

// NewGrid indexes a point cloud. All points start active.
func NewGrid(pts []Point) *Grid {
	if len(pts) == 0 {
		fatalf("cannot index an empty point cloud")
	}

	g := &Grid{pts: pts}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	w, h := maxX-minX, maxY-minY
	g.minX, g.minY = minX, minY
	g.diag = math.Hypot(w, h)

	// Aim for one point per cell. Degenerate extents (a collinear or
	// coincident cloud) fall back to a strip of cells, then to a single one.
	side := math.Sqrt(w * h / float64(len(pts)))
	if side == 0 {
		side = math.Max(w, h) / float64(len(pts))
	}
	if side == 0 {
		side = 1
	}
	// The area heuristic oversubdivides the long axis of a skewed bounding
	// box, so cap the cell count near the population. Compare in the float
	// domain; the raw product can overflow int.
	for (math.Floor(w/side)+1)*(math.Floor(h/side)+1) > 4*float64(len(pts)) {
		side *= 2
	}
	g.side = side
	g.cols = int(w/side) + 1
	g.rows = int(h/side) + 1

	g.cells = make([][]int, g.cols*g.rows)
	g.cellPos = make([]int, len(pts))
	g.active = make([]bool, len(pts))
	g.list = make([]int, len(pts))
	g.listPos = make([]int, len(pts))
	g.fill()

	g.minGap = math.Inf(1)
	for _, p := range pts {
		if n, ok := g.NearestBeyond(p, 0); ok {
			g.minGap = math.Min(g.minGap, n.Dist)
		}
	}
	return g
}

func (g *Grid) fill() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.list = g.list[:len(g.pts)]
	for i, p := range g.pts {
		c := g.cellIndex(p)
		g.cellPos[i] = len(g.cells[c])
		g.cells[c] = append(g.cells[c], i)
		g.active[i] = true
		g.list[i] = i
		g.listPos[i] = i
	}
	g.remaining = len(g.pts)
}

// colOf clamps in the float domain before converting, so that querying far
// outside the grid (or with an infinite radius padding) can never overflow
// the int conversion.
func (g *Grid) colOf(x float64) int {
	f := (x - g.minX) / g.side
	if !(f > 0) {
		return 0
	}
	if f >= float64(g.cols-1) {
		return g.cols - 1
	}
	return int(f)
}

func (g *Grid) rowOf(y float64) int {
	f := (y - g.minY) / g.side
	if !(f > 0) {
		return 0
	}
	if f >= float64(g.rows-1) {
		return g.rows - 1
	}
	return int(f)
}

func (g *Grid) cellIndex(p Point) int {
	return g.rowOf(p.Y)*g.cols + g.colOf(p.X)
}

// Remaining is the number of active points.
func (g *Grid) Remaining() int {
	return g.remaining
}

// Diagonal is the bounding box diagonal of the full cloud. No two points are
// farther apart, so a query radius of at least this length covers every
// active point.
func (g *Grid) Diagonal() float64 {
	return g.diag
}

// MinPositiveGap is the smallest positive distance from any point of the
// full cloud to its nearest neighbor, ignoring exact duplicates. It is +Inf
// when all points coincide.
func (g *Grid) MinPositiveGap() float64 {
	return g.minGap
}

// Remove deactivates a point. Removing an index twice is a no-op, so callers
// don't have to track whether a candidate was already consumed.
func (g *Grid) Remove(i int) {
	if i < 0 || i >= len(g.pts) {
		fatalf("point index %d out of range [0, %d)", i, len(g.pts))
	}
	if !g.active[i] {
		return
	}
	g.active[i] = false
	g.remaining--

	c := g.cellIndex(g.pts[i])
	bucket := g.cells[c]
	last := len(bucket) - 1
	moved := bucket[last]
	pos := g.cellPos[i]
	bucket[pos] = moved
	g.cellPos[moved] = pos
	g.cells[c] = bucket[:last]

	lastIdx := g.list[len(g.list)-1]
	pos = g.listPos[i]
	g.list[pos] = lastIdx
	g.listPos[lastIdx] = pos
	g.list = g.list[:len(g.list)-1]
}

// Reset restores every point to the active set. Retries of a trace start
// from a full index without re-deriving cell geometry.
func (g *Grid) Reset() {
	g.fill()
}

// WithinRadius returns the indices of all active points within distance r of
// q, inclusive, in ascending index order. An infinite radius returns every
// active point. Distances are measured exactly as Nearest and NearestBeyond
// measure them, so a radius taken from a reported neighbor always re-admits
// that neighbor.
func (g *Grid) WithinRadius(q Point, r float64) []int {
	if math.IsNaN(r) || r < 0 {
		fatalf("invalid query radius %v", r)
	}

	var out []int
	if math.IsInf(r, 1) || g.remaining <= scanThreshold {
		for _, i := range g.list {
			if dist(q, g.pts[i]) <= r {
				out = append(out, i)
			}
		}
		sort.Ints(out)
		return out
	}

	x0, x1 := g.colOf(q.X-r), g.colOf(q.X+r)
	y0, y1 := g.rowOf(q.Y-r), g.rowOf(q.Y+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			for _, i := range g.cells[y*g.cols+x] {
				if dist(q, g.pts[i]) <= r {
					out = append(out, i)
				}
			}
		}
	}
	sort.Ints(out)
	return out
}

// Nearest returns up to k active points ordered by ascending distance from
// q, ties broken by ascending index. When fewer than k points remain, all of
// them are returned.
func (g *Grid) Nearest(q Point, k int) []Neighbor {
	if k <= 0 {
		return nil
	}
	if k >= g.remaining || g.remaining <= scanThreshold {
		out := make([]Neighbor, 0, g.remaining)
		for _, i := range g.list {
			out = append(out, Neighbor{Index: i, Dist: dist(q, g.pts[i])})
		}
		sortNeighbors(out)
		if len(out) > k {
			out = out[:k]
		}
		return out
	}

	qx, qy := g.colOf(q.X), g.rowOf(q.Y)
	maxRing := g.cols + g.rows
	var out []Neighbor
	for ring := 0; ring <= maxRing; ring++ {
		g.scanRing(q, qx, qy, ring, func(i int, d float64) {
			out = append(out, Neighbor{Index: i, Dist: d})
		})
		if len(out) >= k {
			sortNeighbors(out)
			// Anything not yet scanned is at least the ring floor away. Stop
			// only when the kth hit strictly beats it, so an exact tie in an
			// unscanned ring can never displace a reported neighbor.
			if out[k-1].Dist < g.ringFloor(q, ring+1) {
				return out[:k]
			}
		}
	}
	sortNeighbors(out)
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// NearestBeyond returns the nearest active point strictly farther than
// minDist from q, ties broken by ascending index. The tracer calls it with
// zero to find the nearest point at a positive distance: exact duplicates of
// the query must not collapse the search radius.
func (g *Grid) NearestBeyond(q Point, minDist float64) (Neighbor, bool) {
	best := Neighbor{Index: -1, Dist: math.Inf(1)}
	consider := func(i int, d float64) {
		if d <= minDist {
			return
		}
		if d < best.Dist || (d == best.Dist && i < best.Index) {
			best = Neighbor{Index: i, Dist: d}
		}
	}

	if g.remaining <= scanThreshold {
		for _, i := range g.list {
			consider(i, dist(q, g.pts[i]))
		}
		return best, best.Index >= 0
	}

	qx, qy := g.colOf(q.X), g.rowOf(q.Y)
	maxRing := g.cols + g.rows
	for ring := 0; ring <= maxRing; ring++ {
		g.scanRing(q, qx, qy, ring, consider)
		if best.Index >= 0 && best.Dist < g.ringFloor(q, ring+1) {
			break
		}
	}
	return best, best.Index >= 0
}

// scanRing visits every active point in cells at exactly Chebyshev distance
// ring from cell (qx, qy), skipping cells outside the grid.
func (g *Grid) scanRing(q Point, qx, qy, ring int, visit func(i int, d float64)) {
	x0, x1 := qx-ring, qx+ring
	y0, y1 := qy-ring, qy+ring
	for y := y0; y <= y1; y++ {
		if y < 0 || y >= g.rows {
			continue
		}
		step := 1
		if ring > 0 && y != y0 && y != y1 {
			// Interior rows: only the two edge columns are on the ring.
			step = x1 - x0
		}
		for x := x0; x <= x1; x += step {
			if x < 0 || x >= g.cols {
				continue
			}
			for _, i := range g.cells[y*g.cols+x] {
				visit(i, dist(q, g.pts[i]))
			}
		}
	}
}

// ringFloor is a lower bound on the distance from q to any point in a cell
// at Chebyshev distance ring or farther from q's clamped cell. For queries
// inside the grid this is (ring-1) cell sides; queries outside get the bound
// loosened by their distance to the grid edge, which at worst degrades to a
// full scan rather than a wrong answer.
func (g *Grid) ringFloor(q Point, ring int) float64 {
	gapX := math.Max(0, math.Max(g.minX-q.X, q.X-(g.minX+float64(g.cols)*g.side)))
	gapY := math.Max(0, math.Max(g.minY-q.Y, q.Y-(g.minY+float64(g.rows)*g.side)))
	floor := float64(ring-1)*g.side - math.Hypot(gapX, gapY)
	return math.Max(0, floor)
}

func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Dist != ns[j].Dist {
			return ns[i].Dist < ns[j].Dist
		}
		return ns[i].Index < ns[j].Index
	})
}
