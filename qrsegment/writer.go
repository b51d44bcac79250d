package qrsegment

import "github.com/qrpix/qrpix/version"

const (
	padCodewordA byte = 0xEC
	padCodewordB byte = 0x11
)

// WritePayload appends every segment's header and encoded bytes to buf,
// in order. It does not append the terminator or padding; callers drive
// that separately since padding depends on the channel's full capacity.
func WritePayload(buf *BitBuffer, segs []Segment, ver version.Version) {
	for _, seg := range segs {
		buf.AppendBits(seg.Mode.Bits(), 4)
		buf.AppendBits(uint32(len(seg.Data)), seg.Mode.NumCharCountBits(ver))
		writeSegmentData(buf, seg)
	}
}

func writeSegmentData(buf *BitBuffer, seg Segment) {
	switch seg.Mode {
	case ModeNumeric:
		writeNumeric(buf, seg.Data)
	case ModeAlphanumeric:
		writeAlphanumeric(buf, seg.Data)
	default:
		for _, b := range seg.Data {
			buf.AppendBits(uint32(b), 8)
		}
	}
}

func writeNumeric(buf *BitBuffer, data []byte) {
	for i := 0; i < len(data); i += 3 {
		chunk := data[i:min(i+3, len(data))]
		val := uint32(0)
		for _, c := range chunk {
			val = val*10 + uint32(c-'0')
		}
		bits := uint8(len(chunk)*3 + 1)
		buf.AppendBits(val, bits)
	}
}

func writeAlphanumeric(buf *BitBuffer, data []byte) {
	for i := 0; i < len(data); i += 2 {
		if i+1 < len(data) {
			val := uint32(alphanumericValue(data[i]))*45 + uint32(alphanumericValue(data[i+1]))
			buf.AppendBits(val, 11)
		} else {
			buf.AppendBits(uint32(alphanumericValue(data[i])), 6)
		}
	}
}

func alphanumericValue(c byte) int {
	for i := 0; i < len(AlphanumericCharset); i++ {
		if AlphanumericCharset[i] == c {
			return i
		}
	}
	panic("qrsegment: byte not in alphanumeric charset")
}

// PushTerminatorAndPad appends up to four zero terminator bits (fewer if
// capacity is short), zero-pads to the next byte boundary, then fills
// remaining bytes with the alternating pad codewords 0xEC, 0x11.
func PushTerminatorAndPad(buf *BitBuffer, capacityBits uint) {
	termLen := min(4, int(capacityBits)-buf.Len())
	for i := 0; i < termLen; i++ {
		buf.AppendBool(false)
	}

	for buf.Len()%8 != 0 {
		buf.AppendBool(false)
	}

	pad := [2]byte{padCodewordA, padCodewordB}
	i := 0
	for uint(buf.Len())+8 <= capacityBits {
		buf.AppendBits(uint32(pad[i%2]), 8)
		i++
	}
}
