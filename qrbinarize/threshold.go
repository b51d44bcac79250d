// Package qrbinarize turns a photograph or scan into a tagged pixel grid
// ready for flood-fill region discovery: adaptive per-block thresholding
// followed by per-channel classification into the shared colour space.
package qrbinarize

import "image"

// blockStats accumulates a per-channel sum, min and max over one 8x8
// source block, for up to 3 channels (1 for grayscale, 3 for RGB).
type blockStats struct {
	sum [3]int
	min [3]uint8
	max [3]uint8
}

func newBlockStats() blockStats {
	var b blockStats
	for c := range b.min {
		b.min[c] = 255
	}
	return b
}

func (b *blockStats) accumulate(channels int, px [3]uint8) {
	for c := 0; c < channels; c++ {
		b.sum[c] += int(px[c])
		if px[c] < b.min[c] {
			b.min[c] = px[c]
		}
		if px[c] > b.max[c] {
			b.max[c] = px[c]
		}
	}
}

// blockGrid holds one blockStats per 8x8 block plus a resolved average,
// the shared working state behind thresholdGrid for both image kinds.
type blockGrid struct {
	w, h       int
	wsteps     int
	hsteps     int
	channels   int
	stats      []blockStats
	avg        [][3]int
	threshold  [][3]uint8
}

func pixelAt(img image.Image, x, y, channels int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	if channels == 1 {
		return [3]uint8{uint8(r >> 8), 0, 0}
	}
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// thresholdGrid runs the full four-step algorithm from §4.4: block sums,
// uniform-block short-circuit with neighbour smoothing, a 5x5-block
// window mean as each block's threshold (clamped at the border), and
// finally returns the per-channel threshold for every 8x8 block.
func thresholdGrid(img image.Image, channels int) *blockGrid {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	wsteps := (w + 7) / 8
	hsteps := (h + 7) / 8
	g := &blockGrid{w: w, h: h, wsteps: wsteps, hsteps: hsteps, channels: channels}
	g.stats = make([]blockStats, wsteps*hsteps)
	for i := range g.stats {
		g.stats[i] = newBlockStats()
	}

	blockIndex := func(bx, by int) int { return by*wsteps + bx }
	ox, oy := bounds.Min.X, bounds.Min.Y

	for y := 0; y < h; y++ {
		by := y / 8
		if y >= h-8 {
			by = (h - 1) / 8
		}
		for x := 0; x < w; x++ {
			bx := x / 8
			if x >= w-8 {
				bx = (w - 1) / 8
			}
			px := pixelAt(img, ox+x, oy+y, channels)
			idx := blockIndex(bx, by)
			g.stats[idx].accumulate(channels, px)
		}
	}

	g.avg = make([][3]int, len(g.stats))
	for i, st := range g.stats {
		for c := 0; c < channels; c++ {
			if int(st.max[c])-int(st.min[c]) <= 24 {
				v := int(st.min[c]) / 2
				if i > wsteps && i%wsteps > 0 {
					neighborAvg := (2*g.avg[i-1][c] + g.avg[i-wsteps][c] + g.avg[i-wsteps-1][c]) / 4
					if int(st.min[c]) < neighborAvg {
						v = neighborAvg
					}
				}
				g.avg[i][c] = v
			} else {
				g.avg[i][c] = st.sum[c] / 64
			}
		}
	}

	g.threshold = make([][3]uint8, len(g.stats))
	maxX, maxY := wsteps-2, hsteps-2
	for y := 0; y < hsteps; y++ {
		for x := 0; x < wsteps; x++ {
			i := y*wsteps + x
			if y > 0 && (y <= 2 || y >= maxY) {
				g.threshold[i] = g.threshold[i-wsteps]
				continue
			}
			if x > 0 && (x <= 2 || x >= maxX) {
				g.threshold[i] = g.threshold[i-1]
				continue
			}
			cx, cy := max(x, 2), max(y, 2)
			var sum [3]int
			for ny := cy - 2; ny <= cy+2; ny++ {
				base := ny*wsteps + cx
				for nx := base - 2; nx <= base+2; nx++ {
					for c := 0; c < channels; c++ {
						sum[c] += g.avg[nx][c]
					}
				}
			}
			for c := 0; c < channels; c++ {
				g.threshold[i][c] = uint8(sum[c] / 25)
			}
		}
	}
	return g
}

func (g *blockGrid) thresholdAt(x, y int) [3]uint8 {
	bx, by := x/8, y/8
	return g.threshold[by*g.wsteps+bx]
}
