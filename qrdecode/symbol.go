package qrdecode

import (
	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/geom"
	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/qrbinarize"
	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/qrfinder"
	"github.com/qrpix/qrpix/qrlog"
	"github.com/qrpix/qrpix/qrmatrix"
	"github.com/qrpix/qrpix/qrsegment"
	"github.com/qrpix/qrpix/version"
)

// Symbol is one finder group that survived verification and grouping,
// not yet decoded. It owns a shared reference to the binarised image
// (never copied) and the group geometry needed to fit a homography.
type Symbol struct {
	bi       *qrbinarize.BinaryImage
	group    qrfinder.Group
	channels int
}

// Bounds returns the image-space quadrilateral corners this symbol was
// detected at, in top-left, top-right, alignment-corner, bottom-left
// order, before any homography refinement from a successful Decode.
func (s *Symbol) Bounds() [4]geom.Point {
	return [4]geom.Point{
		s.group.TopLeft.Point,
		s.group.TopRight.Point,
		s.group.Align,
		s.group.BottomLeft.Point,
	}
}

// Decode fits the homography, samples the module grid, rectifies
// format/version information, unmasks, deinterleaves, runs Reed-Solomon
// correction and recovers the payload string. The returned Metadata is
// populated as far as decoding progressed even when an error is
// returned.
func (s *Symbol) Decode() (Metadata, string, error) {
	log := qrlog.Logger()
	var meta Metadata

	width := s.group.EstimatedWidth
	verNum := uint8((width - 17) / 4)
	if verNum < version.MinNormal {
		verNum = version.MinNormal
	}
	if verNum > version.MaxNormal {
		verNum = version.MaxNormal
	}
	ver := version.New(verNum)
	meta.Version = &ver

	h, err := fitHomography(ver.Width(), s.group.TopLeft.Point, s.group.TopRight.Point, s.group.Align, s.group.BottomLeft.Point)
	if err != nil {
		return meta, "", err
	}

	pal := palette.Mono
	if s.channels == 3 {
		pal = palette.Poly
	}
	meta.Palette = &pal

	q := qrmatrix.New(ver, eclevel.Medium, pal)
	q.DrawFunctionPatterns()

	if err := sampleGrid(q, s.bi, h); err != nil {
		log.Debug().Err(err).Msg("module sampling failed")
		return meta, "", err
	}

	ecl, msk, err := qrmatrix.RectifyFormatInfo(q.ReadFormatInfoMain(), q.ReadFormatInfoSide())
	if err != nil {
		return meta, "", err
	}
	q.ECLevel = ecl
	meta.ECLevel = &ecl
	meta.Mask = &msk

	if ver.HasVersionInfo() {
		decodedVer, err := qrmatrix.RectifyVersionInfo(q.ReadVersionInfoMain(), q.ReadVersionInfoSide())
		if err != nil {
			return meta, "", err
		}
		if decodedVer.Value() != ver.Value() {
			return meta, "", qrerr.ErrInvalidVersionInfo
		}
	}

	q.Mask = msk

	if s.channels == 1 {
		raw := q.ExtractCodewords()
		data, err := qrmatrix.Deinterleave(raw, ver, ecl)
		if err != nil {
			return meta, "", err
		}
		bb := qrsegment.NewBitBufferFromBytes(data)
		str, err := qrsegment.ReadPayload(bb, ver)
		if err != nil {
			return meta, "", err
		}
		return meta, str, nil
	}

	rawChannels := q.ExtractCodewordsPoly()
	var out string
	for ch := 0; ch < 3; ch++ {
		data, err := qrmatrix.Deinterleave(rawChannels[ch], ver, ecl)
		if err != nil {
			return meta, "", err
		}
		bb := qrsegment.NewBitBufferFromBytes(data)
		str, err := qrsegment.ReadPayload(bb, ver)
		if err != nil {
			return meta, "", err
		}
		out += str
	}
	return meta, out, nil
}
