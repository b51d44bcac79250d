package qrbinarize

import "github.com/qrpix/qrpix/geom"

// Row is one contiguous same-colour span discovered on a single scanline
// during flood fill, handed to every Accumulator attached to that fill.
type Row struct {
	Left, Right, Y int32
}

// Accumulator is the capability set flood fill drives: anything that can
// consume a Row. A plain func(Row) satisfies it via AccumulatorFunc.
type Accumulator interface {
	Accumulate(row Row)
}

// AccumulatorFunc adapts a plain function to the Accumulator interface.
type AccumulatorFunc func(Row)

func (f AccumulatorFunc) Accumulate(row Row) { f(row) }

// Area sums the pixel count of every row it sees, estimating a region's
// total area.
type Area struct{ Total uint32 }

func (a *Area) Accumulate(row Row) {
	a.Total += uint32(row.Right - row.Left + 1)
}

// FirstCornerFinder tracks the point farthest (by squared Euclidean
// distance) from a fixed reference point — used to find one finder
// pattern's outer corner before AllCornerFinder locates the rest.
type FirstCornerFinder struct {
	Reference geom.Point
	Corner    geom.Point
	score     int64
}

func NewFirstCornerFinder(reference geom.Point) *FirstCornerFinder {
	return &FirstCornerFinder{Reference: reference, score: -1}
}

func (f *FirstCornerFinder) Accumulate(row Row) {
	for _, x := range [2]int32{row.Left, row.Right} {
		p := geom.Point{X: x, Y: row.Y}
		d := f.Reference.DistSq(p)
		if d > f.score {
			f.Corner = p
			f.score = d
		}
	}
}

// AllCornerFinder locates all four corners of a quadrilateral region
// given a reference point and one already-found corner, by scoring every
// sampled point against the baseline between them and its normal.
type AllCornerFinder struct {
	baseline geom.Slope
	Corners  [4]geom.Point
	scores   [4]int64
}

func NewAllCornerFinder(reference, corner geom.Point) *AllCornerFinder {
	baseline := geom.Slope{DX: corner.X - reference.X, DY: corner.Y - reference.Y}
	parScore := int64(reference.X)*int64(baseline.DX) + int64(reference.Y)*int64(baseline.DY)
	ortScore := -int64(reference.X)*int64(baseline.DY) + int64(reference.Y)*int64(baseline.DX)
	return &AllCornerFinder{
		baseline: baseline,
		Corners:  [4]geom.Point{reference, reference, reference, reference},
		scores:   [4]int64{parScore, ortScore, -parScore, -ortScore},
	}
}

func (f *AllCornerFinder) Accumulate(row Row) {
	dx, dy := int64(f.baseline.DX), int64(f.baseline.DY)
	ndx, ndy := dy, -dx
	for _, x := range [2]int32{row.Left, row.Right} {
		xi, yi := int64(x), int64(row.Y)
		baseDist := -xi*dy + yi*dx
		normDist := -xi*ndy + yi*ndx
		distances := [4]int64{normDist, baseDist, -normDist, -baseDist}
		for i, d := range distances {
			if d > f.scores[i] {
				f.Corners[i] = geom.Point{X: x, Y: row.Y}
				f.scores[i] = d
			}
		}
	}
}

// TopLeftCornerFinder finds the point of lowest score along a diagonal
// through the alignment-pattern region, used to estimate where the
// alignment pattern's own top-left corner lies once its area is found.
type TopLeftCornerFinder struct {
	Corner geom.Point
	m      geom.Slope
	score  int64
}

func NewTopLeftCornerFinder(seed geom.Point, m geom.Slope) *TopLeftCornerFinder {
	score := -int64(m.DY)*int64(seed.X) + int64(m.DX)*int64(seed.Y)
	return &TopLeftCornerFinder{Corner: seed, m: m, score: score}
}

func (f *TopLeftCornerFinder) Accumulate(row Row) {
	leftScore := -int64(f.m.DY)*int64(row.Left) + int64(f.m.DX)*int64(row.Y)
	rightScore := -int64(f.m.DY)*int64(row.Right) + int64(f.m.DX)*int64(row.Y)
	if leftScore < f.score {
		f.score = leftScore
		f.Corner = geom.Point{X: row.Left, Y: row.Y}
	}
	if rightScore < f.score {
		f.score = rightScore
		f.Corner = geom.Point{X: row.Right, Y: row.Y}
	}
}
