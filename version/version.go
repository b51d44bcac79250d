// Package version carries the QR version number and every table that is
// indexed by it: grid width, alignment pattern coordinates, raw module
// count, and per-(version, ec level) codeword/block sizing.
package version

import "github.com/qrpix/qrpix/eclevel"

// Tag distinguishes a Normal version (1..40, fully supported) from a
// Micro version (1..4). Micro-QR generation is stubbed: qrbuilder's Build
// rejects a Micro version with qrerr.ErrMicroQRUnsupported, and the
// Normal-only tables here (NumRawDataModules and the methods built on
// it) panic when given one.
type Tag uint8

const (
	Normal Tag = iota
	Micro
)

// Version is a tagged integer: 1..=40 under Normal, 1..=4 under Micro.
type Version struct {
	tag Tag
	num uint8
}

const (
	// MinNormal and MaxNormal bound the supported Normal version range.
	MinNormal = uint8(1)
	MaxNormal = uint8(40)
	// MinMicro and MaxMicro bound the Micro version range (stub only).
	MinMicro = uint8(1)
	MaxMicro = uint8(4)
)

// New creates a Normal version object from the given number.
//
// Panics if the number is outside the range [1, 40]: an out-of-range
// version is always a programmer error, never recoverable caller input,
// since every code path that derives a version from untrusted data
// (decoded version info, or a version search loop bounded at 40) already
// clamps it before calling New.
func New(ver uint8) Version {
	if ver < MinNormal || ver > MaxNormal {
		panic("version: number out of range")
	}
	return Version{tag: Normal, num: ver}
}

// NewMicro creates a Micro version object from the given number.
func NewMicro(ver uint8) Version {
	if ver < MinMicro || ver > MaxMicro {
		panic("version: micro number out of range")
	}
	return Version{tag: Micro, num: ver}
}

// Tag reports whether this is a Normal or Micro version.
func (v Version) Tag() Tag { return v.tag }

// Value returns the numeric version, 1..40 for Normal or 1..4 for Micro.
func (v Version) Value() uint8 { return v.num }

// IsMicro reports whether this is a Micro version.
func (v Version) IsMicro() bool { return v.tag == Micro }

// Width returns the grid side length in modules: 4v+17 for Normal,
// 2v+9 for Micro.
func (v Version) Width() int32 {
	if v.tag == Micro {
		return int32(v.num)*2 + 9
	}
	return int32(v.num)*4 + 17
}

// AlignmentPatternPositions returns the row/column coordinates at which
// alignment pattern centres are placed, in ascending order. Ported
// verbatim from the proven closed-form construction rather than the
// giant per-version lookup table some implementations use.
func (v Version) AlignmentPatternPositions() []int32 {
	if v.tag == Micro || v.num == 1 {
		return []int32{}
	}
	ver := int32(v.num)
	size := v.Width()
	numalign := ver/7 + 2
	var step int32
	if ver == 32 {
		step = 26
	} else {
		step = (ver*4 + numalign*2 + 1) / (numalign*2 - 2) * 2
	}
	result := make([]int32, numalign)
	for i := int32(0); i < numalign-1; i++ {
		result[i] = size - 7 - i*step
	}
	result[numalign-1] = 6

	inverted := make([]int32, numalign)
	for i, val := range result {
		inverted[numalign-1-int32(i)] = val
	}
	return inverted
}

// NumRawDataModules returns the number of data bits that can be stored
// in a QR symbol of this version, after all function modules are
// excluded. Includes remainder bits, so it may not be a multiple of 8.
func (v Version) NumRawDataModules() uint {
	if v.tag == Micro {
		panic("version: NumRawDataModules not supported for Micro versions")
	}
	ver := uint(v.num)
	result := (16*ver+128)*ver + 64
	if ver >= 2 {
		numalign := ver/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if ver >= 7 {
			result -= 36
		}
	}
	return result
}

// NumDataCodewords returns the number of 8-bit data codewords (excluding
// error correction) carried by a symbol of this version and EC level,
// with remainder bits discarded.
func (v Version) NumDataCodewords(ecl eclevel.ECLevel) uint {
	return v.NumRawDataModules()/8 - EccCodewordsPerBlock(v, ecl)*NumErrorCorrectionBlocks(v, ecl)
}

// RemainderBits returns the number of unused bits left over after all
// codewords are placed, by version range.
func (v Version) RemainderBits() uint {
	ver := v.num
	switch {
	case ver == 1:
		return 0
	case ver <= 6:
		return 7
	case ver <= 13:
		return 0
	case ver <= 20:
		return 3
	case ver <= 27:
		return 4
	case ver <= 34:
		return 3
	default:
		return 0
	}
}

// HasVersionInfo reports whether this version paints an 18-bit version
// information block (required from version 7 upward).
func (v Version) HasVersionInfo() bool { return !v.IsMicro() && v.num >= 7 }

// BlockSizing returns (k1, c1, k2, c2): c1 blocks of k1 data codewords
// followed by c2 blocks of k2 = k1+1 data codewords.
func (v Version) BlockSizing(ecl eclevel.ECLevel) (k1, c1, k2, c2 uint) {
	numBlocks := NumErrorCorrectionBlocks(v, ecl)
	rawCodewords := v.NumRawDataModules() / 8
	numShortBlocks := numBlocks - (rawCodewords % numBlocks)
	shortBlockLen := rawCodewords / numBlocks
	eccLen := EccCodewordsPerBlock(v, ecl)
	k1 = shortBlockLen - eccLen
	c1 = numShortBlocks
	k2 = k1 + 1
	c2 = numBlocks - numShortBlocks
	return
}

// EccLen returns n-k, the number of error correction codewords per
// block, common to every block regardless of its data length.
func EccLen(v Version, ecl eclevel.ECLevel) uint {
	return EccCodewordsPerBlock(v, ecl)
}

// EccCodewordsPerBlock looks up the ECC_CODEWORDS_PER_BLOCK table.
func EccCodewordsPerBlock(v Version, ecl eclevel.ECLevel) uint {
	return tableGet(eccCodewordsPerBlock, v, ecl)
}

// NumErrorCorrectionBlocks looks up the NUM_ERROR_CORRECTION_BLOCKS table.
func NumErrorCorrectionBlocks(v Version, ecl eclevel.ECLevel) uint {
	return tableGet(numErrorCorrectionBlocks, v, ecl)
}

func tableGet(table [4][41]int8, v Version, ecl eclevel.ECLevel) uint {
	return uint(table[ecl.Ordinal()][uint(v.Value())])
}

// These two tables are the standard's fixed per-(version, ec level)
// sizing constants; index 0 is unused padding.
var (
	eccCodewordsPerBlock = [4][41]int8{
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	}

	numErrorCorrectionBlocks = [4][41]int8{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
	}

)

// DataBitCapacity returns the number of bits available for segment data
// (mode/count headers plus payload, not counting terminator/padding)
// for this version, ec level and palette. Poly triples per-channel
// capacity without altering the matrix geometry.
func (v Version) DataBitCapacity(ecl eclevel.ECLevel, channels int) uint {
	return v.NumDataCodewords(ecl) * 8 * uint(channels)
}
