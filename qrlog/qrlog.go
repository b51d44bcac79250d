// Package qrlog wires optional structured diagnostics into the encode
// and decode pipelines. The core never logs on its own: every call site
// is opt-in Debug-level detail (the resolved version in Builder.Build,
// the finder-candidate count in Detector, a module-sampling failure in
// Symbol.Decode) that a caller enables by installing a real logger. Until
// then every call is a cheap no-op against zerolog.Nop().
package qrlog

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger installs the logger used for diagnostic trace events.
func SetLogger(l zerolog.Logger) { logger = l }

// Logger returns the currently installed logger.
func Logger() zerolog.Logger { return logger }
