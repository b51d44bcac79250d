package qrdecode

import (
	"github.com/qrpix/qrpix/geom"
	"github.com/qrpix/qrpix/qrbinarize"
	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/qrmatrix"
)

// logicalCorners returns the four module-space anchor points a
// homography is fit from: the stone centres of the three finders plus
// the fourth corner at (w-3.5, w-3.5), where a finder centre would sit
// in the bottom-right. The measured fourth point is the estimate
// TR + (BL - TL); it is not refined against the alignment pattern.
func logicalCorners(width int32) [4][2]float64 {
	w := float64(width)
	return [4][2]float64{
		{3.5, 3.5},
		{w - 3.5, 3.5},
		{w - 3.5, w - 3.5},
		{3.5, w - 3.5},
	}
}

// fitHomography solves the projective map from logical module space to
// image space given the three finder stones (top-left, top-right,
// bottom-left) and the estimated fourth corner, in that order.
func fitHomography(width int32, tl, tr, align, bl geom.Point) (geom.Homography, error) {
	src := logicalCorners(width)
	dst := [4][2]float64{
		{float64(tl.X), float64(tl.Y)},
		{float64(tr.X), float64(tr.Y)},
		{float64(align.X), float64(align.Y)},
		{float64(bl.X), float64(bl.Y)},
	}
	return geom.ComputeHomography(src, dst)
}

// sampleGrid paints every logical module of q by mapping its centre
// through h and classifying the underlying pixel, preserving whatever
// Tag DrawFunctionPatterns already assigned (Empty cells become Data,
// matching the eligibility rule the placement iterator already uses).
func sampleGrid(q *qrmatrix.QR, bi *qrbinarize.BinaryImage, h geom.Homography) error {
	for row := int32(0); row < q.Width; row++ {
		for col := int32(0); col < q.Width; col++ {
			p, err := h.Map(float64(col)+0.5, float64(row)+0.5)
			if err != nil {
				return err
			}
			if !bi.InBounds(int(p.X), int(p.Y)) {
				return qrerr.ErrAlignmentMismatch
			}
			c := bi.At(int(p.X), int(p.Y)).Color

			cell := q.Get(row, col)
			tag := cell.Tag
			if tag == qrmatrix.Empty {
				tag = qrmatrix.Data
			}
			q.Set(row, col, qrmatrix.Module{Tag: tag, Color: c})
		}
	}
	return nil
}
