package qrdecode

import (
	"image"

	"github.com/qrpix/qrpix/qrbinarize"
	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/qrfinder"
	"github.com/qrpix/qrpix/qrlog"
)

// DecodeResult holds every finder group a Detector run turned into a
// Symbol candidate, whether or not each one goes on to decode cleanly.
type DecodeResult struct {
	Symbols []*Symbol
}

// Detector locates and verifies finder patterns in a rendered QR image.
// channels is 1 for a greyscale (Mono) source, 3 for RGB (Poly).
type Detector struct{}

// Detect binarises img, locates finder-line candidates, groups them
// into provisional symbols and returns one Symbol per surviving group.
// SymbolNotFound is returned when no group survives verification and
// grouping.
func (Detector) Detect(img image.Image, channels int) (*DecodeResult, error) {
	log := qrlog.Logger()
	bi := qrbinarize.Binarize(img, channels)
	finders := qrfinder.Locate(bi)
	log.Debug().Int("candidates", len(finders)).Msg("finder candidates located")

	groups := qrfinder.GroupFinders(finders)
	if len(groups) == 0 {
		return nil, qrerr.ErrSymbolNotFound
	}

	symbols := make([]*Symbol, len(groups))
	for i, g := range groups {
		symbols[i] = &Symbol{bi: bi, group: g, channels: channels}
	}
	return &DecodeResult{Symbols: symbols}, nil
}
