package qrbinarize

import (
	"image"

	"github.com/qrpix/qrpix/qrcolor"
)

// PixelTag records a pixel's role in the flood-fill pass: fresh,
// belonging to a discovered region, a finder-line candidate, or reserved
// (never visited, e.g. already claimed by a function pattern sample).
type PixelTag uint8

const (
	Unvisited PixelTag = iota
	Visited
	Candidate
	Reserved
)

// Pixel is one classified sample of the binarised image.
type Pixel struct {
	Tag      PixelTag
	Color    qrcolor.Color
	RegionID uint8 // valid only when Tag == Visited
}

// BinaryImage is the classified, flood-fillable view of a source image.
type BinaryImage struct {
	W, H   int
	pixels []Pixel
	regions *regionTable
}

// Binarize runs the adaptive block-threshold classifier over img and
// returns a fresh BinaryImage with every pixel Unvisited. channels is 1
// for a grayscale source, 3 for RGB.
func Binarize(img image.Image, channels int) *BinaryImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	grid := thresholdGrid(img, channels)

	bi := &BinaryImage{
		W:       w,
		H:       h,
		pixels:  make([]Pixel, w*h),
		regions: newRegionTable(250),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := pixelAt(img, bounds.Min.X+x, bounds.Min.Y+y, channels)
			thr := grid.thresholdAt(x, y)
			var c qrcolor.Color
			if channels == 1 {
				lit := px[0] > thr[0]
				c = c.WithChannel(0, lit).WithChannel(1, lit).WithChannel(2, lit)
			} else {
				c = c.WithChannel(0, px[0] > thr[0]).WithChannel(1, px[1] > thr[1]).WithChannel(2, px[2] > thr[2])
			}
			bi.pixels[y*w+x] = Pixel{Tag: Unvisited, Color: c}
		}
	}
	return bi
}

func (bi *BinaryImage) index(x, y int) int { return y*bi.W + x }

// At returns the pixel at (x, y).
func (bi *BinaryImage) At(x, y int) Pixel {
	return bi.pixels[bi.index(x, y)]
}

// InBounds reports whether (x, y) lies inside the image.
func (bi *BinaryImage) InBounds(x, y int) bool {
	return x >= 0 && x < bi.W && y >= 0 && y < bi.H
}
