// Package qrmatrix is the matrix layout engine: placement of finder,
// timing and alignment patterns; the zig-zag data-placement iterator;
// the eight masking functions and penalty-based selection; format and
// version information; and the codeword interleaver/deinterleaver.
package qrmatrix

import "github.com/qrpix/qrpix/qrcolor"

// Tag records a module's role so that masking and extraction can
// selectively touch only data modules. Empty is a construction-time
// transient; no completed symbol may contain it.
type Tag uint8

const (
	Empty Tag = iota
	Function
	FormatInfo
	VersionInfo
	Data
)

// Module is one logical cell of the symbol grid.
type Module struct {
	Tag   Tag
	Color qrcolor.Color
}

// IsDataEligible reports whether the placement iterator may write to a
// cell tagged like this one (only Data, or the still-unassigned Empty
// transient during construction).
func (m Module) IsDataEligible() bool {
	return m.Tag == Data || m.Tag == Empty
}
