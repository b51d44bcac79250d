package qrbinarize

// FloodFill performs a scanline flood fill from (x, y) over 4-connected
// pixels whose Tag is Unvisited and whose darkness (Color.IsDark())
// matches the seed pixel, feeding every discovered row to acc. It claims
// a region id from the LRU table (evicting and un-filling the
// least-recently-used region if the table is full) and tags every filled
// pixel Visited with that id.
//
// Returns the discovered Region, or ok=false if the seed itself isn't
// Unvisited.
func (bi *BinaryImage) FloodFill(x, y int, acc Accumulator) (Region, bool) {
	if !bi.InBounds(x, y) || bi.At(x, y).Tag != Unvisited {
		return Region{}, false
	}
	dark := bi.At(x, y).Color.IsDark()

	region := Region{Seed: [2]int{x, y}, Color: dark}
	id := bi.regions.allocate(bi, region)
	region.ID = id

	var area Area
	accumulate := func(row Row) {
		area.Accumulate(row)
		if acc != nil {
			acc.Accumulate(row)
		}
	}

	type span struct{ x1, x2, y int }
	stack := []span{{x, x, y}}

	matches := func(px, py int) bool {
		return bi.InBounds(px, py) && bi.At(px, py).Tag == Unvisited && bi.At(px, py).Color.IsDark() == dark
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		left, right := s.x1, s.x2
		for left > 0 && matches(left-1, s.y) {
			left--
		}
		for matches(right+1, s.y) {
			right++
		}

		for px := left; px <= right; px++ {
			idx := bi.index(px, s.y)
			bi.pixels[idx].Tag = Visited
			bi.pixels[idx].RegionID = id
		}

		accumulate(Row{Left: int32(left), Right: int32(right), Y: int32(s.y)})

		for _, ny := range [2]int{s.y - 1, s.y + 1} {
			if ny < 0 || ny >= bi.H {
				continue
			}
			px := left
			for px <= right {
				if !matches(px, ny) {
					px++
					continue
				}
				spanStart := px
				for px <= right && matches(px, ny) {
					px++
				}
				stack = append(stack, span{spanStart, px - 1, ny})
			}
		}
	}

	region.Area = area.Total
	bi.regions.entries[id].Value.(*regionEntry).region.Area = area.Total
	return region, true
}

// RegionByID returns the Region previously assigned id, if it is still
// resident in the LRU table.
func (bi *BinaryImage) RegionByID(id uint8) (Region, bool) {
	return bi.regions.get(id)
}
