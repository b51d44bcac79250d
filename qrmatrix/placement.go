package qrmatrix

import "github.com/qrpix/qrpix/qrcolor"

// dataPositions enumerates every data-module coordinate in the zig-zag
// column-pair order the standard requires, skipping the vertical timing
// column entirely. Shared by the codeword writer and extractor so the
// two walk identical ground.
func (q *QR) dataPositions() []Point32 {
	size := q.Width
	positions := make([]Point32, 0, size*size)
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := int32(0); vert < size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - int32(j)
				upward := (right+1)&2 == 0
				y := vert
				if upward {
					y = size - 1 - vert
				}
				if q.Get(y, x).IsDataEligible() {
					positions = append(positions, Point32{Row: y, Col: x})
				}
			}
		}
	}
	return positions
}

// Point32 is a grid coordinate in (Row, Col) order, local to qrmatrix.
type Point32 struct {
	Row, Col int32
}

// DrawCodewords walks the zig-zag order and paints one bit of the given
// codeword stream per eligible cell, MSB first within each byte. Cells
// past the end of the stream (the remainder bits) are painted Light;
// bits beyond the last eligible cell are not drawn.
func (q *QR) DrawCodewords(data []byte) {
	positions := q.dataPositions()
	bitLen := int32(len(data)) * 8
	for i, p := range positions {
		var dark bool
		if int32(i) < bitLen {
			byteIdx := i / 8
			bitIdx := 7 - uint(i%8)
			dark = (data[byteIdx]>>bitIdx)&1 != 0
		}
		q.Set(p.Row, p.Col, Module{Tag: Data, Color: colorOf(dark)})
	}
}

// ExtractCodewords reads the data modules back out in the same zig-zag
// order, XORing each against the active mask predicate, and packs them
// MSB-first into bytes. Any trailing bits short of a full byte are
// dropped, matching the padding the encoder never needed to track either.
func (q *QR) ExtractCodewords() []byte {
	positions := q.dataPositions()
	out := make([]byte, 0, (len(positions)+7)/8)
	var cur byte
	var nbits int
	for _, p := range positions {
		dark := q.Get(p.Row, p.Col).Color.IsDark()
		if q.Mask.Apply(p.Row, p.Col) {
			dark = !dark
		}
		cur <<= 1
		if dark {
			cur |= 1
		}
		nbits++
		if nbits == 8 {
			out = append(out, cur)
			cur, nbits = 0, 0
		}
	}
	return out
}

// DrawCodewordsPoly paints all three channels' codeword streams in one
// walk, combining each position's three bits into a single Hue module: a
// dark bit in a channel subtracts that channel, so all-dark reads black
// and all-light reads white. Per §4.3, any eligible cell left over once
// every channel is exhausted is painted Light.
func (q *QR) DrawCodewordsPoly(channels [3][]byte) {
	positions := q.dataPositions()
	bitLen := [3]int32{
		int32(len(channels[0])) * 8,
		int32(len(channels[1])) * 8,
		int32(len(channels[2])) * 8,
	}
	for i, p := range positions {
		var c qrcolor.Color = qrcolor.White
		for ch := 0; ch < 3; ch++ {
			lit := true
			if int32(i) < bitLen[ch] {
				byteIdx := i / 8
				bitIdx := 7 - uint(i%8)
				lit = (channels[ch][byteIdx]>>bitIdx)&1 == 0
			}
			c = c.WithChannel(ch, lit)
		}
		q.Set(p.Row, p.Col, Module{Tag: Data, Color: c})
	}
}

// ExtractCodewordsPoly is DrawCodewordsPoly's inverse: it reads each
// channel's bit back out of every data module (after un-masking) and
// packs the three streams independently into bytes.
func (q *QR) ExtractCodewordsPoly() [3][]byte {
	positions := q.dataPositions()
	var out [3][]byte
	var cur [3]byte
	var nbits int
	for _, p := range positions {
		cell := q.Get(p.Row, p.Col).Color
		flip := q.Mask.Apply(p.Row, p.Col)
		for ch := 0; ch < 3; ch++ {
			lit := cell.Channel(ch)
			if flip {
				lit = !lit
			}
			cur[ch] <<= 1
			if !lit {
				cur[ch] |= 1
			}
		}
		nbits++
		if nbits == 8 {
			for ch := 0; ch < 3; ch++ {
				out[ch] = append(out[ch], cur[ch])
			}
			cur = [3]byte{}
			nbits = 0
		}
	}
	return out
}
