// This file implements the public entry points an application is
// expected to call.
package wii

import (
	"fmt"

	"github.com/sergev/wiidrv/kind"
)

// Initialize brings the bus up, sets the expected peripheral kind and
// encryption mode, and runs maintenance from Uninitialized.
// wantCleartext selects the clear-text configuration path; pass false
// only to force the scrambled path, which the driver otherwise never
// chooses on its own.
//
// Passing kind.Unknown as expectedKind accepts whatever peripheral is
// attached, suppressing the identity-mismatch check.
func (d *Device) Initialize(peripheralClockHz uint32, expectedKind kind.Peripheral, wantCleartext bool) error {
	d.expectedKind = expectedKind
	d.observedKind = kind.Unknown
	d.Scrambled = !wantCleartext
	d.failureCount = 0
	d.LastError = nil
	d.status = Uninitialized

	if err := d.delay.Init(peripheralClockHz); err != nil {
		return fmt.Errorf("wii: initialize delay service: %w", err)
	}
	if err := d.port.Init(d.busCfg, peripheralClockHz); err != nil {
		return fmt.Errorf("wii: initialize bus port: %w", err)
	}
	return d.doMaintenance()
}

// PollStatus queries STATUS once, updating Current and (if relative
// tracking is enabled) Relative.
func (d *Device) PollStatus() error {
	_, err := d.query(ParamStatus)
	return err
}

// SetHome polls STATUS, then copies the resulting snapshot into Home.
// It requires relative tracking to be on; call EnableRelative first if
// DisableRelative was called earlier.
func (d *Device) SetHome() error {
	if !d.tracker.Enabled() {
		return ErrRelativeDisabled
	}
	if _, err := d.query(ParamStatus); err != nil {
		return err
	}
	d.tracker.SetHome(d.current)
	return nil
}

// EnableRelative turns relative tracking on. Always succeeds.
func (d *Device) EnableRelative() error {
	d.tracker.Enable()
	return nil
}

// DisableRelative turns relative tracking off; Relative stops
// changing on subsequent polls. Always succeeds.
func (d *Device) DisableRelative() error {
	d.tracker.Disable()
	return nil
}

// DoMaintenance drives the lifecycle transitions: from Uninitialized
// it makes up to MaxConnectAttempts connection attempts; from Active
// it reconfigures once FailureCount exceeds ReconfigThreshold and
// disables the device once it exceeds DisableThreshold; a Disabled
// device returns ErrDeviceDisabled. Call it once per polling cycle, or
// whenever another operation returns an error.
func (d *Device) DoMaintenance() error {
	return d.doMaintenance()
}
