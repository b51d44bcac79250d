// Package qrdecode assembles a symbol's logical grid from a binarised
// image via homography sampling, rectifies its format and version
// information, undoes masking and interleaving, and drives the bit
// reader to recover the original payload.
package qrdecode

import (
	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/mask"
	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/version"
)

// Metadata carries whatever decoding has determined about a symbol so
// far. Every field is optional: a Symbol fills them in as decoding
// progresses, so a caller inspecting the Metadata returned alongside an
// error can see how far recovery got before it failed.
type Metadata struct {
	Version *version.Version
	ECLevel *eclevel.ECLevel
	Palette *palette.Palette
	Mask    *mask.Pattern
}
