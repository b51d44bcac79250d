package qrmatrix

import (
	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/reedsolomon"
	"github.com/qrpix/qrpix/version"
)

// Interleave splits data into version/ec-level-sized blocks, appends each
// block's Reed-Solomon ECC, and interleaves the result column-major: all
// blocks' byte 0, then all blocks' byte 1, and so on, short blocks
// dropping out once exhausted, ECC always trailing data. This is the
// layout the zig-zag placement walker expects to read back out in the
// same order.
func Interleave(data []byte, ver version.Version, ecl eclevel.ECLevel) []byte {
	k1, c1, k2, c2 := ver.BlockSizing(ecl)
	eccLen := int(version.EccCodewordsPerBlock(ver, ecl))

	rawBlocks := make([][]byte, 0, c1+c2)
	offset := 0
	for i := uint(0); i < c1; i++ {
		rawBlocks = append(rawBlocks, data[offset:offset+int(k1)])
		offset += int(k1)
	}
	for i := uint(0); i < c2; i++ {
		rawBlocks = append(rawBlocks, data[offset:offset+int(k2)])
		offset += int(k2)
	}

	blocks := make([]reedsolomon.Block, len(rawBlocks))
	for i, b := range rawBlocks {
		blocks[i] = reedsolomon.NewBlock(b, len(b)+eccLen)
	}

	maxDataLen := int(k2)
	out := make([]byte, 0, len(data)+eccLen*len(blocks))
	for i := 0; i < maxDataLen; i++ {
		for _, b := range blocks {
			if i < b.DLen {
				out = append(out, b.DataBytes()[i])
			}
		}
	}
	for i := 0; i < eccLen; i++ {
		for _, b := range blocks {
			out = append(out, b.ECC()[i])
		}
	}
	return out
}

// Deinterleave is Interleave's inverse: it regroups raw codewords back
// into blocks and error-corrects each one independently, returning the
// concatenated, rectified data bytes. An error from any block aborts the
// whole symbol, since a raw read that corrupts one block's worth of
// codewords is evidence the sample itself may be unreliable.
func Deinterleave(raw []byte, ver version.Version, ecl eclevel.ECLevel) ([]byte, error) {
	k1, c1, k2, c2 := ver.BlockSizing(ecl)
	eccLen := version.EccCodewordsPerBlock(ver, ecl)
	numBlocks := c1 + c2
	maxDataLen := int(k2)

	blockData := make([][]byte, numBlocks)
	for i := range blockData {
		dlen := int(k1)
		if uint(i) >= c1 {
			dlen = int(k2)
		}
		blockData[i] = make([]byte, 0, dlen+int(eccLen))
	}

	pos := 0
	for i := 0; i < maxDataLen; i++ {
		for b := uint(0); b < numBlocks; b++ {
			dlen := int(k1)
			if b >= c1 {
				dlen = int(k2)
			}
			if i < dlen {
				blockData[b] = append(blockData[b], raw[pos])
				pos++
			}
		}
	}
	for i := uint(0); i < eccLen; i++ {
		for b := uint(0); b < numBlocks; b++ {
			blockData[b] = append(blockData[b], raw[pos])
			pos++
		}
	}

	out := make([]byte, 0, int(k1)*int(c1)+int(k2)*int(c2))
	for _, bd := range blockData {
		dlen := len(bd) - int(eccLen)
		block := reedsolomon.WithEncoded(bd, dlen)
		fixed, err := block.Rectify()
		if err != nil {
			return nil, err
		}
		out = append(out, fixed...)
	}
	return out, nil
}
