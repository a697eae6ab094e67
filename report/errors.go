package report

import "errors"

// ErrDecoderMissing is returned by Decode for peripheral kinds with no
// known report layout (a bare Motion Plus, with no pass-through
// extension attached).
var ErrDecoderMissing = errors.New("report: no decoder for this peripheral kind")
