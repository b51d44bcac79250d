package qrfinder

import (
	"github.com/qrpix/qrpix/geom"
	"github.com/qrpix/qrpix/internal/mathx"
	"github.com/qrpix/qrpix/qrbinarize"
)

// scanAxis runs a lineScanner over length samples, returning every datum
// the scan produces (including one final synthetic light sample, so a
// pattern touching the far edge still closes out).
func scanAxis(length int32, at int32, sample func(i int32) bool) []datum {
	var scn lineScanner
	scn.reset(at)
	var out []datum
	for i := int32(0); i < length; i++ {
		if d, ok := scn.advance(sample(i)); ok {
			out = append(out, d)
		}
	}
	if d, ok := scn.advance(false); ok {
		out = append(out, d)
	}
	return out
}

// verifyVertical re-scans the column through (x, y) looking for a
// 1:1:3:1:1 pattern whose stone row lands within two pixels of y.
func verifyVertical(bi *qrbinarize.BinaryImage, x, y int32) bool {
	data := scanAxis(int32(bi.H), x, func(i int32) bool {
		return bi.At(int(x), int(i)).Color.IsDark()
	})
	for _, d := range data {
		if mathx.AbsInt32(d.stone-y) <= 2 {
			return true
		}
	}
	return false
}

// verifyAndMark checks a horizontal finder-line hit d for a genuine
// finder pattern: the stone module must not already belong to a marked
// region, a vertical crosscheck through the stone must also see a
// 1:1:3:1:1 pattern, the stone's dark blob and the surrounding dark ring
// must be distinct (unconnected) regions, and the stone-to-ring area
// ratio must fall in the 10%-70% band a nested 3x3-in-7x7 finder
// produces. On success both regions are flagged IsFinderCandidate and
// the stone's centroid is returned. When the ring pixel is light or
// already visited, or cannot be filled, the stone's centroid is returned
// as a hit without the ring checks and without flagging.
func verifyAndMark(bi *qrbinarize.BinaryImage, d datum) (Finder, bool) {
	unit := float64(d.right-d.left) / 7.0
	if d.stone < 0 || d.stone >= int32(bi.W) || d.y < 0 || d.y >= int32(bi.H) {
		return Finder{}, false
	}
	if bi.At(int(d.stone), int(d.y)).Tag != qrbinarize.Unvisited {
		return Finder{}, false
	}
	if !bi.At(int(d.stone), int(d.y)).Color.IsDark() {
		return Finder{}, false
	}
	if !verifyVertical(bi, d.stone, d.y) {
		return Finder{}, false
	}

	var stoneCentroid geom.Point
	var stoneN int32
	centroid := qrbinarize.AccumulatorFunc(func(row qrbinarize.Row) {
		for px := row.Left; px <= row.Right; px++ {
			stoneCentroid.X += px
			stoneCentroid.Y += row.Y
			stoneN++
		}
	})
	stoneRegion, ok := bi.FloodFill(int(d.stone), int(d.y), centroid)
	if !ok {
		return Finder{}, false
	}
	if stoneN > 0 {
		stoneCentroid.X /= stoneN
		stoneCentroid.Y /= stoneN
	}
	found := Finder{Point: stoneCentroid, Unit: unit}

	ringX := d.left
	if ringX < 0 {
		ringX = 0
	}
	if bi.At(int(ringX), int(d.y)).Tag != qrbinarize.Unvisited || !bi.At(int(ringX), int(d.y)).Color.IsDark() {
		return found, true
	}
	ringRegion, ok := bi.FloodFill(int(ringX), int(d.y), nil)
	if !ok {
		return found, true
	}
	if ringRegion.ID == stoneRegion.ID {
		// ring and stone are 4-connected: the light separator ring
		// never formed, so this isn't a real finder pattern.
		return Finder{}, false
	}
	if ringRegion.Area > 0 {
		ratio := float64(stoneRegion.Area) / float64(ringRegion.Area)
		if ratio < 0.10 || ratio > 0.70 {
			return Finder{}, false
		}
	}

	bi.MarkFinderCandidate(stoneRegion.ID)
	bi.MarkFinderCandidate(ringRegion.ID)
	return found, true
}
