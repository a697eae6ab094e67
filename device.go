// Package wii is a host-side driver for Nintendo Wii extension
// controllers (Nunchuck, Classic Controller, and Motion Plus
// pass-through modes) attached over a two-wire serial bus. It brings
// up the bus, negotiates an unencrypted link, identifies the attached
// peripheral, periodically samples its status report, decodes the
// device-specific bit-packed report into a uniform snapshot, tracks a
// configurable home pose, and recovers the peripheral when transient
// errors accumulate.
//
// The driver is single-threaded, cooperative, and blocking: it has no
// task runtime and is not safe for concurrent use by more than one
// caller at a time.
package wii

import (
	"log"

	"github.com/sergev/wiidrv/bus"
	"github.com/sergev/wiidrv/codec"
	"github.com/sergev/wiidrv/home"
	"github.com/sergev/wiidrv/kind"
	"github.com/sergev/wiidrv/report"
)

// Status is the driver lifecycle state.
type Status int

const (
	Uninitialized Status = iota
	Configuring
	Active
	Disabled
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Configuring:
		return "configuring"
	case Active:
		return "active"
	case Disabled:
		return "disabled"
	default:
		return "status(?)"
	}
}

// Maintenance policy thresholds and connection timing.
const (
	MaxConnectAttempts  = 5
	ConnectRetryDelayMs = 500
	AfterIdConfirmMs    = 10

	ReconfigThreshold = 3
	DisableThreshold  = 20
)

// Device is the aggregate the facade operations act on. A Device is
// owned by exactly one caller at a time; concurrent mutation is a
// program error.
type Device struct {
	// Log, if non-nil, receives best-effort trace lines for
	// configuration and maintenance transitions. Never written to on
	// the hot poll path.
	Log *log.Logger
	// Scrambled selects the scrambled configuration path instead of
	// the default clear-text one.
	Scrambled bool
	// LastError mirrors the error most recently returned by query
	// (nil after a success), exposed read-only for diagnostics.
	// Queries rejected up front, on a disabled device or for an
	// unknown parameter, leave it unchanged.
	LastError error

	busCfg       bus.Config
	port         bus.Port
	delay        bus.DelayService
	expectedKind kind.Peripheral
	observedKind kind.Peripheral

	raw     [codec.MaxPayload]byte
	current report.Snapshot
	tracker *home.Tracker

	failureCount int
	status       Status
}

// New returns an uninitialized Device bound to port and delay. Call
// Initialize before any other operation.
func New(port bus.Port, delay bus.DelayService) *Device {
	return &Device{
		busCfg:  bus.DefaultConfig(),
		port:    port,
		delay:   delay,
		tracker: home.NewTracker(),
		status:  Uninitialized,
	}
}

// Status returns the current lifecycle state.
func (d *Device) Status() Status { return d.status }

// ExpectedKind returns the peripheral kind Initialize was asked for.
func (d *Device) ExpectedKind() kind.Peripheral { return d.expectedKind }

// ObservedKind returns the peripheral kind last identified on the
// bus, which may differ from ExpectedKind after an IdMismatchError.
func (d *Device) ObservedKind() kind.Peripheral { return d.observedKind }

// Current returns the latest decoded snapshot.
func (d *Device) Current() report.Snapshot { return d.current }

// Home returns the reference snapshot set by SetHome.
func (d *Device) Home() report.Snapshot { return d.tracker.Home() }

// Relative returns the latest current-minus-home snapshot.
func (d *Device) Relative() report.Snapshot { return d.tracker.Relative() }

// FailureCount returns the consecutive-failure counter driving the
// maintenance policy.
func (d *Device) FailureCount() int { return d.failureCount }

// RelativeEnabled reports whether relative tracking is on.
func (d *Device) RelativeEnabled() bool { return d.tracker.Enabled() }

func (d *Device) logf(format string, args ...any) {
	if d.Log != nil {
		d.Log.Printf(format, args...)
	}
}
