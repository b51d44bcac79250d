// Package qrrender turns a painted qrmatrix.QR into a raster image: an
// 8-bit grayscale image for Mono symbols, an RGBA image for Poly, both
// surrounded by the standard quiet zone and upscaled module-to-pixel via
// golang.org/x/image/draw's nearest-neighbor scaler.
package qrrender

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/qrmatrix"
)

const (
	quietZoneNormal = 4
	quietZoneMicro  = 2
)

// quietZone returns the quiet zone width in modules for this symbol's
// version tag.
func quietZone(q *qrmatrix.QR) int32 {
	if q.Ver.IsMicro() {
		return quietZoneMicro
	}
	return quietZoneNormal
}

// Render draws the symbol at one pixel per module plus quiet zone, with
// no upscaling.
func Render(q *qrmatrix.QR) image.Image {
	return RenderScaled(q, 1)
}

// RenderScaled draws the symbol upscaled by the given integer factor
// (module edge length in pixels); scale must be at least 1.
func RenderScaled(q *qrmatrix.QR, scale int) image.Image {
	if scale < 1 {
		panic("qrrender: scale must be at least 1")
	}
	qz := quietZone(q)
	side := int(q.Width+2*qz) * scale

	if q.Palette == palette.Mono {
		base := image.NewGray(image.Rect(0, 0, int(q.Width+2*qz), int(q.Width+2*qz)))
		paintGray(base, q, qz)
		if scale == 1 {
			return base
		}
		dst := image.NewGray(image.Rect(0, 0, side, side))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Over, nil)
		return dst
	}

	base := image.NewRGBA(image.Rect(0, 0, int(q.Width+2*qz), int(q.Width+2*qz)))
	paintRGBA(base, q, qz)
	if scale == 1 {
		return base
	}
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Over, nil)
	return dst
}

func paintGray(img *image.Gray, q *qrmatrix.QR, qz int32) {
	for py := 0; py < img.Bounds().Dy(); py++ {
		for px := 0; px < img.Bounds().Dx(); px++ {
			row, col := int32(py)-qz, int32(px)-qz
			v := uint8(255)
			if row >= 0 && row < q.Width && col >= 0 && col < q.Width && q.Get(row, col).Color.IsDark() {
				v = 0
			}
			img.SetGray(px, py, color.Gray{Y: v})
		}
	}
}

func paintRGBA(img *image.RGBA, q *qrmatrix.QR, qz int32) {
	for py := 0; py < img.Bounds().Dy(); py++ {
		for px := 0; px < img.Bounds().Dx(); px++ {
			row, col := int32(py)-qz, int32(px)-qz
			r, g, b := uint8(255), uint8(255), uint8(255)
			if row >= 0 && row < q.Width && col >= 0 && col < q.Width {
				r, g, b = q.Get(row, col).Color.RGB()
			}
			img.SetRGBA(px, py, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
}
