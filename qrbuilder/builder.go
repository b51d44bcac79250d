// Package qrbuilder is the fluent entry point for encoding: it picks a
// version (or honours an explicit one), segments and bit-packs the
// input, Reed-Solomon encodes and interleaves it, and hands back a
// fully-painted qrmatrix.QR ready for rendering.
package qrbuilder

import (
	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/mask"
	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/qrlog"
	"github.com/qrpix/qrpix/qrmatrix"
	"github.com/qrpix/qrpix/qrsegment"
	"github.com/qrpix/qrpix/version"
)

// Builder accumulates the optional knobs for one symbol before Build
// runs the encode pipeline. New sets the defaults: ec level Medium and
// palette Mono, with version and mask auto-selected.
type Builder struct {
	data []byte
	ver  *version.Version
	ecl  eclevel.ECLevel
	pal  palette.Palette
	msk  *mask.Pattern
}

// New starts a Builder for the given byte payload.
func New(data []byte) *Builder {
	return &Builder{data: data, ecl: eclevel.Medium, pal: palette.Mono}
}

// Version pins the symbol to an explicit version instead of searching
// for the smallest one that fits.
func (b *Builder) Version(v version.Version) *Builder {
	b.ver = &v
	return b
}

// ECLevel overrides the default Medium error correction level.
func (b *Builder) ECLevel(ecl eclevel.ECLevel) *Builder {
	b.ecl = ecl
	return b
}

// Palette overrides the default Mono palette.
func (b *Builder) Palette(p palette.Palette) *Builder {
	b.pal = p
	return b
}

// Mask pins the data mask instead of letting Build choose the
// lowest-penalty one automatically.
func (b *Builder) Mask(m mask.Pattern) *Builder {
	b.msk = &m
	return b
}

// Build runs the full encode pipeline and returns the painted symbol.
func (b *Builder) Build() (*qrmatrix.QR, error) {
	log := qrlog.Logger()
	if len(b.data) == 0 {
		return nil, qrerr.ErrEmptyData
	}
	if b.ver != nil && b.ver.IsMicro() {
		return nil, qrerr.ErrMicroQRUnsupported
	}

	channels := b.pal.Channels()
	chunks, err := splitChannels(b.data, channels)
	if err != nil {
		return nil, err
	}

	ver, perChannelSegs, err := b.resolveVersion(chunks)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("version", int(ver.Value())).Str("ecLevel", b.ecl.String()).Msg("resolved qr version")

	q := qrmatrix.New(ver, b.ecl, b.pal)
	q.DrawFunctionPatterns()

	codewords := make([][]byte, channels)
	for ch := 0; ch < channels; ch++ {
		codewords[ch], err = encodeChannel(perChannelSegs[ch], ver, b.ecl)
		if err != nil {
			return nil, err
		}
	}

	if channels == 1 {
		q.DrawCodewords(codewords[0])
	} else {
		q.DrawCodewordsPoly([3][]byte{codewords[0], codewords[1], codewords[2]})
	}

	if b.msk != nil {
		q.Mask = *b.msk
		q.ApplyMask(q.Mask)
		q.DrawFormatInfo(q.Mask.Value())
	} else {
		q.SelectBestMask()
	}
	q.AssertComplete()
	return q, nil
}

// splitChannels divides data into `channels` near-equal contiguous
// slices (1 for Mono, 3 for Poly); every slice must be non-empty.
func splitChannels(data []byte, channels int) ([][]byte, error) {
	if channels == 1 {
		return [][]byte{data}, nil
	}
	base := len(data) / channels
	rem := len(data) % channels
	out := make([][]byte, channels)
	offset := 0
	for i := 0; i < channels; i++ {
		n := base
		if i < rem {
			n++
		}
		if n == 0 {
			return nil, qrerr.ErrEmptyData
		}
		out[i] = data[offset : offset+n]
		offset += n
	}
	return out, nil
}

// resolveVersion finds the smallest version (honouring an explicit pin)
// under which every channel's optimally-segmented payload fits, and
// returns each channel's chosen segmentation at that version.
func (b *Builder) resolveVersion(chunks [][]byte) (version.Version, [][]qrsegment.Segment, error) {
	channels := len(chunks)
	cap1 := func(v version.Version) uint { return v.DataBitCapacity(b.ecl, 1) }

	if b.ver != nil {
		segs := make([][]qrsegment.Segment, channels)
		capBits := cap1(*b.ver)
		for i, chunk := range chunks {
			s := qrsegment.ComputeOptimalSegments(chunk, *b.ver)
			if qrsegment.TotalBits(s, *b.ver) > capBits {
				return version.Version{}, nil, qrerr.ErrCapacityOverflow
			}
			segs[i] = s
		}
		return *b.ver, segs, nil
	}

	if channels == 1 {
		ver, segs, ok := qrsegment.FindOptimalVersionAndSegments(chunks[0], version.MaxNormal, cap1)
		if !ok {
			return version.Version{}, nil, qrerr.ErrDataTooLong
		}
		return ver, [][]qrsegment.Segment{segs}, nil
	}

	for v := version.MinNormal; v <= version.MaxNormal; v++ {
		ver := version.New(v)
		capBits := cap1(ver)
		segs := make([][]qrsegment.Segment, channels)
		fits := true
		for i, chunk := range chunks {
			s := qrsegment.ComputeOptimalSegments(chunk, ver)
			if qrsegment.TotalBits(s, ver) > capBits {
				fits = false
				break
			}
			segs[i] = s
		}
		if fits {
			return ver, segs, nil
		}
	}
	return version.Version{}, nil, qrerr.ErrDataTooLong
}

// encodeChannel packs one channel's segments into padded data codewords
// and returns the interleaved (data+ECC) stream ready for placement.
func encodeChannel(segs []qrsegment.Segment, ver version.Version, ecl eclevel.ECLevel) ([]byte, error) {
	var bb qrsegment.BitBuffer
	qrsegment.WritePayload(&bb, segs, ver)
	capBits := ver.DataBitCapacity(ecl, 1)
	if uint(bb.Len()) > capBits {
		return nil, qrerr.ErrCapacityOverflow
	}
	qrsegment.PushTerminatorAndPad(&bb, capBits)
	return qrmatrix.Interleave(bb.Bytes(), ver, ecl), nil
}
