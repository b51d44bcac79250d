// Package qrerr collects the sentinel errors every fallible operation in
// this module returns. Callers match them with errors.Is; components that
// need to attach context wrap a sentinel with fmt.Errorf("...: %w", err)
// rather than defining bespoke error types.
package qrerr

import "errors"

// Builder-side input validation.
var (
	ErrEmptyData             = errors.New("qrpix: data must not be empty")
	ErrDataTooLong           = errors.New("qrpix: data too long to fit in any version at the requested error correction level")
	ErrCapacityOverflow      = errors.New("qrpix: encoded bit length exceeds the chosen version's capacity")
	ErrInvalidVersion        = errors.New("qrpix: invalid version number")
	ErrInvalidECLevel        = errors.New("qrpix: invalid error correction level")
	ErrInvalidPalette        = errors.New("qrpix: invalid palette")
	ErrInvalidColor          = errors.New("qrpix: invalid color")
	ErrInvalidChar           = errors.New("qrpix: character not valid in requested mode")
	ErrInvalidMaskingPattern = errors.New("qrpix: invalid mask pattern")
	ErrMicroQRUnsupported    = errors.New("qrpix: Micro QR is not supported by this implementation")
)

// Homography failure.
var (
	ErrSingularMatrix  = errors.New("qrpix: homography system is singular")
	ErrPointAtInfinity = errors.New("qrpix: point projects to infinity under this homography")
)

// Detection / localisation.
var ErrSymbolNotFound = errors.New("qrpix: no finder group survived verification")

// Reed-Solomon.
var ErrTooManyErrors = errors.New("qrpix: too many errors to correct within block capacity")

// Format/version info rectification.
var (
	ErrInvalidInfo        = errors.New("qrpix: info word rectification failed")
	ErrInvalidFormatInfo  = errors.New("qrpix: format info could not be rectified at either copy")
	ErrInvalidVersionInfo = errors.New("qrpix: version info could not be rectified at either copy")
)

// Geometric sanity checks.
var (
	ErrFinderMismatch    = errors.New("qrpix: finder pattern geometry mismatch")
	ErrTimingMismatch    = errors.New("qrpix: timing pattern mismatch")
	ErrAlignmentMismatch = errors.New("qrpix: alignment pattern mismatch")
)

// Decode-time text conversion.
var (
	ErrInvalidUTF8Sequence      = errors.New("qrpix: invalid UTF-8 sequence in byte segment")
	ErrInvalidCharacterEncoding = errors.New("qrpix: byte segment is neither valid UTF-8 nor Shift-JIS")
)

// Bit-level codec.
var (
	ErrCorruptDataSegment = errors.New("qrpix: data segment truncated or corrupt")
	ErrInvalidMode        = errors.New("qrpix: invalid mode indicator bits")
)
