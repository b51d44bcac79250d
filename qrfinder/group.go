package qrfinder

import (
	"math"

	"github.com/qrpix/qrpix/geom"
)

// Group is three finder-pattern candidates assigned to top-left,
// top-right and bottom-left roles, the provisional fourth
// (alignment-pattern-side) corner estimated from them, and an estimated
// grid width derived from the edge lengths and module-unit sizes.
type Group struct {
	TopLeft, TopRight, BottomLeft Finder
	Align                         geom.Point
	EstimatedWidth                int32
}

// angle returns the unsigned angle in radians between vectors a->b and
// a->c, used to favour near-90-degree corners when scoring triples.
func angle(a, b, c geom.Point) float64 {
	bx, by := float64(b.X-a.X), float64(b.Y-a.Y)
	cx, cy := float64(c.X-a.X), float64(c.Y-a.Y)
	dot := bx*cx + by*cy
	magB := math.Hypot(bx, by)
	magC := math.Hypot(cx, cy)
	if magB == 0 || magC == 0 {
		return math.Pi
	}
	cos := dot / (magB * magC)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// GroupFinders picks, from every unordered triple of candidate finder
// stones, the ones whose angle at the shared (top-left) corner is
// closest to a right angle (within 50 degrees of error, per the
// standard's finder-pattern layout) and assembles them into Groups. A
// finder can belong to at most one group; triples are considered in
// order of angle error so the best-fitting symbols claim their finders
// first.
func GroupFinders(finders []Finder) []Group {
	const maxAngleErr = 50 * math.Pi / 180

	type candidate struct {
		i, j, k int
		err     float64
	}
	var candidates []candidate
	n := len(finders)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := j + 1; k < n; k++ {
				if k == i {
					continue
				}
				a := angle(finders[i].Point, finders[j].Point, finders[k].Point)
				err := math.Abs(a - math.Pi/2)
				if err > maxAngleErr {
					continue
				}
				candidates = append(candidates, candidate{i, j, k, err})
			}
		}
	}

	for a := 0; a < len(candidates); a++ {
		for b := a + 1; b < len(candidates); b++ {
			if candidates[b].err < candidates[a].err {
				candidates[a], candidates[b] = candidates[b], candidates[a]
			}
		}
	}

	used := make(map[int]bool, n)
	var groups []Group
	for _, c := range candidates {
		if used[c.i] || used[c.j] || used[c.k] {
			continue
		}
		corner, arm1, arm2 := finders[c.i], finders[c.j], finders[c.k]
		tl, tr, bl := assignRoles(corner, arm1, arm2)
		used[c.i], used[c.j], used[c.k] = true, true, true
		groups = append(groups, Group{
			TopLeft:        tl,
			TopRight:       tr,
			BottomLeft:     bl,
			Align:          estimateAlignCorner(tl.Point, tr.Point, bl.Point),
			EstimatedWidth: estimateWidth(tl, tr, bl),
		})
	}
	return groups
}

// assignRoles takes the shared right-angle corner and its two arm
// endpoints and labels them top-left/top-right/bottom-left using image
// coordinates (y grows downward): the arm closer to horizontal from the
// corner is top-right, the other is bottom-left.
func assignRoles(corner, a, b Finder) (tl, tr, bl Finder) {
	da := angle(corner.Point, geom.Point{X: corner.Point.X + 1, Y: corner.Point.Y}, a.Point)
	db := angle(corner.Point, geom.Point{X: corner.Point.X + 1, Y: corner.Point.Y}, b.Point)
	if da < db {
		return corner, a, b
	}
	return corner, b, a
}

// estimateAlignCorner places the symbol's fourth corner opposite the
// top-left finder, before any homography has been fit: TR + (BL - TL).
func estimateAlignCorner(tl, tr, bl geom.Point) geom.Point {
	return geom.Point{
		X: tr.X + (bl.X - tl.X),
		Y: tr.Y + (bl.Y - tl.Y),
	}
}

// estimateWidth converts the top-edge and left-edge pixel lengths to a
// module count using each arm's own module-unit estimate, then rounds
// to the nearest legal grid width (4v+17).
func estimateWidth(tl, tr, bl Finder) int32 {
	topDist := math.Hypot(float64(tr.Point.X-tl.Point.X), float64(tr.Point.Y-tl.Point.Y))
	leftDist := math.Hypot(float64(bl.Point.X-tl.Point.X), float64(bl.Point.Y-tl.Point.Y))
	unit := (tl.Unit + tr.Unit + bl.Unit) / 3.0
	if unit <= 0 {
		unit = 1
	}
	// finder centres sit 3.5 modules in from each edge, so the span
	// between two finder stones is (modules - 7) module units.
	topModules := topDist/unit + 7
	leftModules := leftDist/unit + 7
	avg := (topModules + leftModules) / 2
	v := math.Round((avg - 17) / 4)
	if v < 1 {
		v = 1
	}
	if v > 40 {
		v = 40
	}
	return int32(v)*4 + 17
}
