package wii

import (
	"errors"
	"fmt"

	"github.com/sergev/wiidrv/kind"
)

// Error taxonomy. Every sentinel below is the value errors.Is should
// be compared against; call sites wrap it with context via
// fmt.Errorf("...: %w", ...).
var (
	// ErrUnsupportedPeripheral means the observed peripheral kind is
	// known to be outside the decoder table. Non-recoverable at this
	// call.
	ErrUnsupportedPeripheral = errors.New("wii: unsupported peripheral")
	// ErrNotInitialized means configuration attempts were exhausted;
	// the caller may retry Initialize later.
	ErrNotInitialized = errors.New("wii: not initialized")
	// ErrBusError wraps an underlying bus transaction failure.
	ErrBusError = errors.New("wii: bus error")
	// ErrUnknownParameter means the caller asked for a register this
	// driver does not model. Always a programming error, never
	// absorbed by the failure counter.
	ErrUnknownParameter = errors.New("wii: unknown parameter")
	// ErrInvalidData means the payload was the all-0xFF sentinel.
	ErrInvalidData = errors.New("wii: invalid data")
	// ErrDescrambleFailed is reserved for a codec that can reject a
	// payload as unrecoverable; the current descramble transform
	// cannot fail.
	ErrDescrambleFailed = errors.New("wii: descramble failed")
	// ErrDeviceDisabled means the device has exceeded
	// DisableThreshold failures; only Initialize recovers it.
	ErrDeviceDisabled = errors.New("wii: device disabled")
	// ErrRelativeDisabled means SetHome was called while relative
	// tracking is off.
	ErrRelativeDisabled = errors.New("wii: relative tracking disabled")
)

// IdMismatchError reports that identification succeeded but the
// observed peripheral kind did not match what the caller expected.
// The observed kind is recorded on the Device so callers may adapt;
// passing kind.Unknown as the expected kind suppresses this check.
type IdMismatchError struct {
	Expected, Observed kind.Peripheral
}

func (e *IdMismatchError) Error() string {
	return fmt.Sprintf("wii: identity mismatch: expected %v, observed %v", e.Expected, e.Observed)
}

// Unwrap lets errors.Is(err, ErrIdMismatch) succeed.
func (e *IdMismatchError) Unwrap() error { return ErrIdMismatch }

// ErrIdMismatch is the sentinel IdMismatchError wraps.
var ErrIdMismatch = errors.New("wii: identity mismatch")
