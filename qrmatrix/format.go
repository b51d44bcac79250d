package qrmatrix

import (
	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/internal/bitx"
	"github.com/qrpix/qrpix/mask"
	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/reedsolomon"
	"github.com/qrpix/qrpix/version"
)

const formatInfoMask = 0x5412

// encodeFormatBits packs ec level and mask into the 15-bit BCH-extended,
// XOR-masked format information word.
func encodeFormatBits(ecl eclevel.ECLevel, m mask.Pattern) uint32 {
	data := uint32(ecl.FormatBits())<<3 | uint32(m.Value())
	rem := data
	for i := 0; i < 10; i++ {
		rem = (rem << 1) ^ ((rem >> 9) * 0x537)
	}
	return (data<<10 | rem) ^ formatInfoMask
}

// validFormatWords is every one of the 32 legal 15-bit format codewords,
// built once from every (ec level, mask) combination.
var validFormatWords = func() []uint32 {
	out := make([]uint32, 0, 32)
	for ecl := eclevel.Low; ecl <= eclevel.High; ecl++ {
		for m := uint8(0); m < 8; m++ {
			out = append(out, encodeFormatBits(ecl, mask.New(m)))
		}
	}
	return out
}()

// DrawFormatInfo paints both copies of the format information for the
// given mask value and this symbol's ec level, plus the mandatory dark
// module at (-8, 8).
func (q *QR) DrawFormatInfo(m uint8) {
	bits := encodeFormatBits(q.ECLevel, mask.New(m))

	for i := int32(0); i < 6; i++ {
		q.paintFormatBit(8, i, bits, i)
	}
	q.paintFormatBit(8, 7, bits, 6)
	q.paintFormatBit(8, 8, bits, 7)
	q.paintFormatBit(7, 8, bits, 8)
	for i := int32(9); i < 15; i++ {
		q.paintFormatBit(14-i, 8, bits, i)
	}

	size := q.Width
	for i := int32(0); i < 8; i++ {
		q.paintFormatBit(size-1-i, 8, bits, i)
	}
	for i := int32(8); i < 15; i++ {
		q.paintFormatBit(8, size-15+i, bits, i)
	}
	q.Set(size-8, 8, Module{Tag: FormatInfo, Color: colorOf(true)})
}

// paintFormatBit takes (x=col, y=row), the order the layout above is
// written in.
func (q *QR) paintFormatBit(x, y int32, bits uint32, i int32) {
	q.Set(y, x, Module{Tag: FormatInfo, Color: colorOf(bitx.GetBit(bits, i))})
}

// ReadFormatInfoMain/ReadFormatInfoSide extract the 15-bit raw format
// word from the main (top-left) and side (split across the other two
// corners) locations respectively, without rectification.
func (q *QR) ReadFormatInfoMain() uint32 {
	var bits uint32
	get := func(x, y, i int32) {
		if q.Get(y, x).Color.IsDark() {
			bits |= 1 << uint(i)
		}
	}
	for i := int32(0); i < 6; i++ {
		get(8, i, i)
	}
	get(8, 7, 6)
	get(8, 8, 7)
	get(7, 8, 8)
	for i := int32(9); i < 15; i++ {
		get(14-i, 8, i)
	}
	return bits
}

func (q *QR) ReadFormatInfoSide() uint32 {
	var bits uint32
	get := func(x, y, i int32) {
		if q.Get(y, x).Color.IsDark() {
			bits |= 1 << uint(i)
		}
	}
	size := q.Width
	for i := int32(0); i < 8; i++ {
		get(size-1-i, 8, i)
	}
	for i := int32(8); i < 15; i++ {
		get(8, size-15+i, i)
	}
	return bits
}

// RectifyFormatInfo applies the Hamming-distance-3 rectifier to the main
// copy, falling back to the side copy on failure, per §4.2/§4.6.
func RectifyFormatInfo(main, side uint32) (eclevel.ECLevel, mask.Pattern, error) {
	word, err := reedsolomon.RectifyInfo(main, validFormatWords, 3)
	if err != nil {
		word, err = reedsolomon.RectifyInfo(side, validFormatWords, 3)
		if err != nil {
			return 0, 0, qrerr.ErrInvalidFormatInfo
		}
	}
	unmasked := word ^ formatInfoMask
	data := unmasked >> 10
	eclBits := uint8(data >> 3)
	maskBits := uint8(data & 0x7)
	ecl, ok := eclevel.FromFormatBits(eclBits)
	if !ok {
		return 0, 0, qrerr.ErrInvalidFormatInfo
	}
	return ecl, mask.New(maskBits), nil
}

// encodeVersionBits packs a version number (7..40) into its 18-bit
// BCH-extended version information word.
func encodeVersionBits(ver uint8) uint32 {
	data := uint32(ver)
	rem := data
	for i := 0; i < 12; i++ {
		rem = (rem << 1) ^ ((rem >> 11) * 0x1F25)
	}
	return data<<12 | rem
}

var validVersionWords = func() []uint32 {
	out := make([]uint32, 0, 34)
	for v := uint8(7); v <= 40; v++ {
		out = append(out, encodeVersionBits(v))
	}
	return out
}()

// DrawVersionInfo paints both copies of the 18-bit version information,
// for versions 7 and up only.
func (q *QR) DrawVersionInfo() {
	if !q.Ver.HasVersionInfo() {
		return
	}
	bits := encodeVersionBits(q.Ver.Value())
	size := q.Width
	for i := int32(0); i < 18; i++ {
		bit := colorOf(bitx.GetBit(bits, i))
		a := size - 11 + i%3
		b := i / 3
		q.Set(a, b, Module{Tag: VersionInfo, Color: bit})
		q.Set(b, a, Module{Tag: VersionInfo, Color: bit})
	}
}

// ReadVersionInfoMain/ReadVersionInfoSide extract the two redundant
// 18-bit raw version words.
func (q *QR) ReadVersionInfoMain() uint32 {
	var bits uint32
	size := q.Width
	for i := int32(0); i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		if q.Get(a, b).Color.IsDark() {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

func (q *QR) ReadVersionInfoSide() uint32 {
	var bits uint32
	size := q.Width
	for i := int32(0); i < 18; i++ {
		a := size - 11 + i%3
		b := i / 3
		if q.Get(b, a).Color.IsDark() {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

// RectifyVersionInfo rectifies the two redundant version words against
// the 34-entry codebook, falling back from main to side.
func RectifyVersionInfo(main, side uint32) (version.Version, error) {
	word, err := reedsolomon.RectifyInfo(main, validVersionWords, 3)
	if err != nil {
		word, err = reedsolomon.RectifyInfo(side, validVersionWords, 3)
		if err != nil {
			return version.Version{}, qrerr.ErrInvalidVersionInfo
		}
	}
	return version.New(uint8(word >> 12)), nil
}
