package qrsegment

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/version"
)

// ReadPayload is the inverse of WritePayload followed by
// PushTerminatorAndPad: it reads segments until a terminator, capacity
// exhaustion, or fewer than 4 bits remain in buf, then concatenates
// every segment's decoded text into one string.
//
// Byte segments are decoded as UTF-8; on failure they are retried as
// Shift-JIS (common for Japanese-market QR payloads that predate
// widespread UTF-8 adoption), and InvalidCharacterEncoding is returned
// only if both fail.
func ReadPayload(buf *BitBuffer, ver version.Version) (string, error) {
	var out []byte
	for {
		modeBits, ok := buf.ReadBits(4)
		if !ok {
			break
		}
		mode, ok := ModeFromBits(modeBits)
		if !ok {
			return "", qrerr.ErrInvalidMode
		}
		if mode == ModeTerminator {
			break
		}

		countBits := int(mode.NumCharCountBits(ver))
		count, ok := buf.ReadBits(countBits)
		if !ok {
			return "", fmt.Errorf("qrsegment: reading character count: %w", qrerr.ErrCorruptDataSegment)
		}

		chunk, err := readSegmentData(buf, mode, int(count))
		if err != nil {
			return "", err
		}
		out = append(out, chunk...)

		if buf.Remaining() < 4 {
			break
		}
	}
	return string(out), nil
}

func readSegmentData(buf *BitBuffer, mode Mode, count int) ([]byte, error) {
	switch mode {
	case ModeNumeric:
		return readNumeric(buf, count)
	case ModeAlphanumeric:
		return readAlphanumeric(buf, count)
	case ModeByte:
		return readByte(buf, count)
	default:
		// Kanji and ECI segments are outside the decoded character set
		// this reader produces; a payload that uses either fails rather
		// than silently dropping data.
		return nil, fmt.Errorf("qrsegment: mode %v: %w", mode, qrerr.ErrCorruptDataSegment)
	}
}

func readNumeric(buf *BitBuffer, count int) ([]byte, error) {
	out := make([]byte, 0, count)
	remaining := count
	for remaining > 0 {
		n := min(remaining, 3)
		bits := n*3 + 1
		val, ok := buf.ReadBits(bits)
		if !ok {
			return nil, fmt.Errorf("qrsegment: numeric chunk: %w", qrerr.ErrCorruptDataSegment)
		}
		digits := make([]byte, n)
		for i := n - 1; i >= 0; i-- {
			digits[i] = byte(val%10) + '0'
			val /= 10
		}
		out = append(out, digits...)
		remaining -= n
	}
	return out, nil
}

func readAlphanumeric(buf *BitBuffer, count int) ([]byte, error) {
	out := make([]byte, 0, count)
	remaining := count
	for remaining > 0 {
		if remaining >= 2 {
			val, ok := buf.ReadBits(11)
			if !ok {
				return nil, fmt.Errorf("qrsegment: alphanumeric chunk: %w", qrerr.ErrCorruptDataSegment)
			}
			out = append(out, AlphanumericCharset[val/45], AlphanumericCharset[val%45])
			remaining -= 2
		} else {
			val, ok := buf.ReadBits(6)
			if !ok {
				return nil, fmt.Errorf("qrsegment: alphanumeric chunk: %w", qrerr.ErrCorruptDataSegment)
			}
			out = append(out, AlphanumericCharset[val])
			remaining--
		}
	}
	return out, nil
}

func readByte(buf *BitBuffer, count int) ([]byte, error) {
	out := make([]byte, count)
	for i := 0; i < count; i++ {
		val, ok := buf.ReadBits(8)
		if !ok {
			return nil, fmt.Errorf("qrsegment: byte chunk: %w", qrerr.ErrCorruptDataSegment)
		}
		out[i] = byte(val)
	}
	if utf8.Valid(out) {
		return out, nil
	}
	decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), out)
	if err != nil {
		return nil, qrerr.ErrInvalidCharacterEncoding
	}
	if !utf8.Valid(decoded) {
		return nil, qrerr.ErrInvalidCharacterEncoding
	}
	return decoded, nil
}
