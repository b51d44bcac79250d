package qrmatrix

import (
	"github.com/qrpix/qrpix/internal/mathx"
	"github.com/qrpix/qrpix/mask"
)

const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// ApplyMask XORs every data module's darkness against the given pattern's
// predicate, in place. Calling it twice with the same pattern is its own
// inverse, which is how SelectBestMask tries all eight without copying
// the grid.
func (q *QR) ApplyMask(m mask.Pattern) {
	for row := int32(0); row < q.Width; row++ {
		for col := int32(0); col < q.Width; col++ {
			cell := q.Get(row, col)
			if cell.Tag != Data {
				continue
			}
			if m.Apply(row, col) {
				cell.Color = cell.Color.Flip()
				q.Set(row, col, cell)
			}
		}
	}
}

// SelectBestMask tries all eight mask patterns, scoring each by the four
// standard penalty rules, and leaves the grid masked with (and Mask set
// to) the lowest-scoring pattern, breaking ties toward the lowest id.
// It also repaints the format info with the winning id, replacing the
// placeholder painted during layout.
func (q *QR) SelectBestMask() mask.Pattern {
	var best mask.Pattern
	bestScore := int32(-1)
	for _, m := range mask.All8() {
		q.ApplyMask(m)
		q.DrawFormatInfo(m.Value())
		score := q.penaltyScore()
		if bestScore == -1 || score < bestScore {
			bestScore = score
			best = m
		}
		q.ApplyMask(m)
	}
	q.Mask = best
	q.ApplyMask(best)
	q.DrawFormatInfo(best.Value())
	return best
}

// finderPenalty is the sliding 7-run history window used by rule N3 to
// spot a 1:1:3:1:1 light/dark pattern matching a finder pattern's
// silhouette anywhere else in the symbol.
type finderPenalty struct {
	size       int32
	runHistory [7]int32
}

func newFinderPenalty(size int32) *finderPenalty {
	return &finderPenalty{size: size}
}

func (p *finderPenalty) addHistory(runLen int32) {
	if p.runHistory[0] == 0 {
		runLen += p.size
	}
	copy(p.runHistory[1:], p.runHistory[:6])
	p.runHistory[0] = runLen
}

func (p finderPenalty) countPatterns() int32 {
	rh := p.runHistory
	n := rh[1]
	core := n > 0 && rh[2] == n && rh[3] == n*3 && rh[4] == n && rh[5] == n
	var count int32
	if core && rh[0] >= n*4 && rh[6] >= n {
		count++
	}
	if core && rh[6] >= n*4 && rh[0] >= n {
		count++
	}
	return count
}

func (p *finderPenalty) terminateAndCount(currentDark bool, runLen int32) int32 {
	if currentDark {
		p.addHistory(runLen)
		runLen = 0
	}
	runLen += p.size
	p.addHistory(runLen)
	return p.countPatterns()
}

// penaltyScore sums the four ISO/IEC 18004 penalty rules over the
// symbol's current colour, treating darkness only: a module counts as
// dark only when all its channels are dark, so a Poly symbol is scored
// the same way as a Mono one.
func (q *QR) penaltyScore() int32 {
	size := q.Width
	isDark := func(row, col int32) bool { return q.Get(row, col).Color.IsDark() }
	var result int32

	for row := int32(0); row < size; row++ {
		var runColor bool
		var runLen int32
		hist := newFinderPenalty(size)
		for col := int32(0); col < size; col++ {
			if isDark(row, col) == runColor {
				runLen++
				switch {
				case runLen == 5:
					result += penaltyN1
				case runLen > 5:
					result++
				}
			} else {
				hist.addHistory(runLen)
				if !runColor {
					result += hist.countPatterns() * penaltyN3
				}
				runColor = isDark(row, col)
				runLen = 1
			}
		}
		result += hist.terminateAndCount(runColor, runLen) * penaltyN3
	}

	for col := int32(0); col < size; col++ {
		var runColor bool
		var runLen int32
		hist := newFinderPenalty(size)
		for row := int32(0); row < size; row++ {
			if isDark(row, col) == runColor {
				runLen++
				switch {
				case runLen == 5:
					result += penaltyN1
				case runLen > 5:
					result++
				}
			} else {
				hist.addHistory(runLen)
				if !runColor {
					result += hist.countPatterns() * penaltyN3
				}
				runColor = isDark(row, col)
				runLen = 1
			}
		}
		result += hist.terminateAndCount(runColor, runLen) * penaltyN3
	}

	for row := int32(0); row < size-1; row++ {
		for col := int32(0); col < size-1; col++ {
			c := isDark(row, col)
			if c == isDark(row+1, col) && c == isDark(row, col+1) && c == isDark(row+1, col+1) {
				result += penaltyN2
			}
		}
	}

	var dark int32
	for row := int32(0); row < size; row++ {
		for col := int32(0); col < size; col++ {
			if isDark(row, col) {
				dark++
			}
		}
	}
	total := size * size
	k := (mathx.AbsInt32(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}
