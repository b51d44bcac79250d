package qrdecode

import "github.com/qrpix/qrpix/geom"

// ScoreCorners reports whether every predicted corner in got matches
// its counterpart in want within 10% of the expected coordinate value,
// the tolerance rule a dataset fixture's corner-match scoring uses.
func ScoreCorners(got, want [4]geom.Point) bool {
	within := func(g, w int32) bool {
		if w == 0 {
			return g == 0
		}
		diff := float64(g-w) / float64(w)
		if diff < 0 {
			diff = -diff
		}
		return diff <= 0.10
	}
	for i := 0; i < 4; i++ {
		if !within(got[i].X, want[i].X) || !within(got[i].Y, want[i].Y) {
			return false
		}
	}
	return true
}
