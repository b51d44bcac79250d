// Package qrfinder locates finder-pattern candidates in a binarised
// image, groups them into provisional symbols, and estimates each
// symbol's fourth (alignment) corner ahead of homography fitting.
package qrfinder

import (
	"github.com/qrpix/qrpix/geom"
	"github.com/qrpix/qrpix/qrbinarize"
)

// datum is one finder-line hit: the outer-left, inner-dark-centre and
// outer-right column indices on a scanline, plus the row.
type datum struct {
	left, stone, right, y int32
}

// lineScanner maintains the rolling 6-run buffer used to spot a
// 1:1:3:1:1 dark-light-dark-light-dark ratio on a single scanline.
type lineScanner struct {
	buf      [6]int32
	prevDark bool
	havePrev bool
	flips    int32
	pos      int32
	y        int32
}

func (s *lineScanner) reset(y int32) {
	*s = lineScanner{y: y}
}

// advance feeds one more pixel's darkness into the scanner, returning a
// datum if the just-completed run closes out a finder-shaped pattern.
func (s *lineScanner) advance(dark bool) (datum, bool) {
	s.pos++
	if s.havePrev && s.prevDark == dark {
		s.buf[5]++
		return datum{}, false
	}
	copy(s.buf[:5], s.buf[1:])
	s.buf[5] = 1
	s.prevDark = dark
	s.havePrev = true
	s.flips++

	if !s.isFinderLine() {
		return datum{}, false
	}
	sum5 := s.buf[0] + s.buf[1] + s.buf[2] + s.buf[3] + s.buf[4]
	return datum{
		left:  s.pos - 1 - sum5,
		stone: s.pos - 1 - (s.buf[2] + s.buf[3] + s.buf[4]) + s.buf[2]/2,
		right: s.pos - 2,
		y:     s.y,
	}, true
}

// isFinderLine checks whether the last five runs match a 1:1:3:1:1
// dark-light-dark-light-dark ratio within 3/4 of their average width.
func (s *lineScanner) isFinderLine() bool {
	// The run just opened must be light, so the five completed runs
	// before it end (and start) on dark.
	if s.flips < 5 || s.prevDark {
		return false
	}
	var sum int32
	for i := 0; i < 5; i++ {
		sum += s.buf[i]
	}
	avg := float64(sum) / 7.0
	tol := avg * 3.0 / 4.0
	ratio := [5]float64{1, 1, 3, 1, 1}
	for i, r := range ratio {
		rl := float64(s.buf[i])
		if rl < r*avg-tol || rl > r*avg+tol {
			return false
		}
	}
	return true
}

// Finder is a verified finder-pattern candidate: the stone's centroid
// and an estimated module width, derived from the horizontal hit that
// confirmed it (the outer ring spans 7 modules end to end).
type Finder struct {
	Point geom.Point
	Unit  float64
}

// Locate scans every row of bi for 1:1:3:1:1 finder-line hits, verifies
// each with a vertical crosscheck and area-ratio test, and returns the
// surviving finder stones.
func Locate(bi *qrbinarize.BinaryImage) []Finder {
	var finders []Finder
	var scn lineScanner
	for y := 0; y < bi.H; y++ {
		scn.reset(int32(y))
		for x := 0; x < bi.W; x++ {
			d, ok := scn.advance(bi.At(x, y).Color.IsDark())
			if !ok {
				continue
			}
			if f, ok := verifyAndMark(bi, d); ok {
				finders = append(finders, f)
			}
		}
		// a synthetic trailing light pixel closes out a finder pattern
		// that runs to the image's right edge.
		if d, ok := scn.advance(false); ok {
			if f, ok := verifyAndMark(bi, d); ok {
				finders = append(finders, f)
			}
		}
	}
	return finders
}
