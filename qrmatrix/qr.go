package qrmatrix

import (
	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/mask"
	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/qrcolor"
	"github.com/qrpix/qrpix/version"
)

// QR is the rendered logical symbol: a w×w array of Modules plus its
// version, ec level, palette and mask. Owned exclusively by its builder
// until handed off to a renderer (or, on the decode side, assembled by
// the module sampler before symbol recovery runs against it).
type QR struct {
	Ver     version.Version
	ECLevel eclevel.ECLevel
	Palette palette.Palette
	Mask    mask.Pattern
	Width   int32

	cells []Module
}

// New creates a width×width grid with every cell tagged Empty, ready for
// DrawFunctionPatterns and the payload writer to fill in.
func New(ver version.Version, ecl eclevel.ECLevel, pal palette.Palette) *QR {
	w := ver.Width()
	return &QR{
		Ver:     ver,
		ECLevel: ecl,
		Palette: pal,
		Width:   w,
		cells:   make([]Module, w*w),
	}
}

// index normalises a signed (row, col) pair, wrapping negative indices
// from the far edge (so (-8, 8) addresses row size-8), and panics if the
// magnitude exceeds one grid width — the only out-of-range case the
// format/version painters ever produce is a programmer error.
func (q *QR) index(row, col int32) int {
	if row < 0 {
		row += q.Width
	}
	if col < 0 {
		col += q.Width
	}
	if row < 0 || row >= q.Width || col < 0 || col >= q.Width {
		panic("qrmatrix: coordinate out of range")
	}
	return int(row*q.Width + col)
}

// Get returns the module at (row, col), accepting the wrap-around
// convention described on QR.index.
func (q *QR) Get(row, col int32) Module {
	return q.cells[q.index(row, col)]
}

// Set overwrites the module at (row, col).
func (q *QR) Set(row, col int32, m Module) {
	q.cells[q.index(row, col)] = m
}

// SetFunction paints a function-pattern cell with the given colour.
func (q *QR) SetFunction(row, col int32, c qrcolor.Color) {
	q.Set(row, col, Module{Tag: Function, Color: c})
}

// AssertComplete panics if any cell is still tagged Empty — the
// invariant that no finished symbol may contain the transient tag.
func (q *QR) AssertComplete() {
	for _, c := range q.cells {
		if c.Tag == Empty {
			panic("qrmatrix: symbol has unassigned Empty module")
		}
	}
}
