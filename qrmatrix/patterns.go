package qrmatrix

import (
	"github.com/qrpix/qrpix/internal/mathx"
	"github.com/qrpix/qrpix/qrcolor"
)

// DrawFunctionPatterns paints timing lines, the three finder patterns,
// every alignment pattern for this version, and dummy format/version
// info (overwritten once the final mask is chosen).
func (q *QR) DrawFunctionPatterns() {
	size := q.Width
	for i := int32(0); i < size; i++ {
		q.timingModule(6, i, i%2 == 0)
		q.timingModule(i, 6, i%2 == 0)
	}

	q.drawFinderPattern(3, 3)
	q.drawFinderPattern(size-4, 3)
	q.drawFinderPattern(3, size-4)

	positions := q.Ver.AlignmentPatternPositions()
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue
			}
			q.drawAlignmentPattern(positions[i], positions[j])
		}
	}

	q.DrawFormatInfo(0)
	q.DrawVersionInfo()
}

func (q *QR) timingModule(row, col int32, dark bool) {
	q.SetFunction(row, col, colorOf(dark))
}

func colorOf(dark bool) qrcolor.Color {
	if dark {
		return qrcolor.Dark
	}
	return qrcolor.Light
}

// drawFinderPattern paints a 9×9 finder pattern (including its one
// module light separator ring) centred at (row, col).
func (q *QR) drawFinderPattern(row, col int32) {
	for dr := int32(-4); dr <= 4; dr++ {
		for dc := int32(-4); dc <= 4; dc++ {
			rr, cc := row+dr, col+dc
			if rr < 0 || rr >= q.Width || cc < 0 || cc >= q.Width {
				continue
			}
			dist := max(mathx.AbsInt32(dr), mathx.AbsInt32(dc))
			q.SetFunction(rr, cc, colorOf(dist != 2 && dist != 4))
		}
	}
}

// drawAlignmentPattern paints a 5×5 concentric-ring alignment pattern
// centred at (row, col). All modules must be in bounds.
func (q *QR) drawAlignmentPattern(row, col int32) {
	for dr := int32(-2); dr <= 2; dr++ {
		for dc := int32(-2); dc <= 2; dc++ {
			dist := max(mathx.AbsInt32(dr), mathx.AbsInt32(dc))
			q.SetFunction(row+dr, col+dc, colorOf(dist != 1))
		}
	}
}
