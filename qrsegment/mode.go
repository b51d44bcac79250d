// Package qrsegment implements mode-aware segmentation of input bytes
// into the shortest legal bit string for a QR symbol (and the inverse on
// decode): the dynamic-program optimal mode chooser, the bit buffer, and
// the per-mode chunk encoders/decoders.
package qrsegment

import "github.com/qrpix/qrpix/version"

// Mode describes how a segment's data bits are interpreted.
type Mode uint32

const (
	ModeNumeric Mode = iota
	ModeAlphanumeric
	ModeByte
	ModeKanji
	ModeEci
	// ModeTerminator is not a real segment mode; it is the 4-bit all
	// zero sentinel a reader sees at the end of a payload.
	ModeTerminator
)

// Bits returns the unsigned 4-bit mode indicator value.
func (m Mode) Bits() uint32 {
	switch m {
	case ModeNumeric:
		return 0x1
	case ModeAlphanumeric:
		return 0x2
	case ModeByte:
		return 0x4
	case ModeKanji:
		return 0x8
	case ModeEci:
		return 0x7
	case ModeTerminator:
		return 0x0
	default:
		panic("qrsegment: unknown Mode")
	}
}

// ModeFromBits parses a 4-bit mode indicator, used by the reader.
func ModeFromBits(bits uint32) (Mode, bool) {
	switch bits {
	case 0x0:
		return ModeTerminator, true
	case 0x1:
		return ModeNumeric, true
	case 0x2:
		return ModeAlphanumeric, true
	case 0x4:
		return ModeByte, true
	case 0x8:
		return ModeKanji, true
	case 0x7:
		return ModeEci, true
	default:
		return 0, false
	}
}

// NumCharCountBits returns the bit width of the character count field
// for a segment in this mode at the given version, in the range [0,16].
func (m Mode) NumCharCountBits(ver version.Version) uint8 {
	var tmp [3]uint8
	switch m {
	case ModeNumeric:
		tmp = [3]uint8{10, 12, 14}
	case ModeAlphanumeric:
		tmp = [3]uint8{9, 11, 13}
	case ModeByte:
		tmp = [3]uint8{8, 16, 16}
	case ModeKanji:
		tmp = [3]uint8{8, 10, 12}
	case ModeEci:
		tmp = [3]uint8{0, 0, 0}
	default:
		panic("qrsegment: unknown Mode")
	}
	idx := (ver.Value() + 7) / 17
	return tmp[idx]
}
