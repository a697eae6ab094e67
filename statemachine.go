package wii

import (
	"errors"

	"github.com/sergev/wiidrv/identity"
	"github.com/sergev/wiidrv/kind"
)

// identify queries DEVICE_TYPE, matches the returned blob against the
// known signature table, and records the observed kind. A bus or
// validation failure leaves observedKind as kind.Unknown.
func (d *Device) identify() error {
	rx, err := d.query(ParamDeviceType)
	if err != nil {
		d.observedKind = kind.Unknown
		return err
	}

	var blob identity.Blob
	copy(blob[:], rx[:6])
	observed := identity.Match(blob)
	d.observedKind = observed

	if d.expectedKind != kind.Unknown && observed != d.expectedKind {
		return &IdMismatchError{Expected: d.expectedKind, Observed: observed}
	}
	return nil
}

// connectOnce performs a single connection attempt: configure,
// identify, confirm delay, establish home.
func (d *Device) connectOnce() error {
	if err := d.configure(); err != nil {
		return err
	}
	if err := d.identify(); err != nil {
		return err
	}
	d.delay.DelayMs(AfterIdConfirmMs)

	if _, err := d.query(ParamStatus); err != nil {
		return err
	}
	d.tracker.SetHome(d.current)
	return nil
}

// doMaintenanceUninitialized retries connectOnce up to
// MaxConnectAttempts times, separated by ConnectRetryDelayMs. An
// IdMismatchError is terminal and is not retried.
func (d *Device) doMaintenanceUninitialized() error {
	for attempt := 0; attempt < MaxConnectAttempts; attempt++ {
		err := d.connectOnce()
		if err == nil {
			d.status = Active
			d.failureCount = 0
			d.logf("wii: connected as %v", d.observedKind)
			return nil
		}
		var mismatch *IdMismatchError
		if errors.As(err, &mismatch) {
			return err
		}
		d.delay.DelayMs(ConnectRetryDelayMs)
	}
	return ErrNotInitialized
}

// doMaintenanceActive applies the failure-counter-driven recovery
// policy: stay Active up to ReconfigThreshold, reconfigure (without
// leaving Active on success) up through DisableThreshold, and disable
// beyond it.
func (d *Device) doMaintenanceActive() error {
	switch {
	case d.failureCount <= ReconfigThreshold:
		return nil
	case d.failureCount <= DisableThreshold:
		d.status = Configuring
		d.logf("wii: reconfiguring after %d consecutive failures", d.failureCount)
		if err := d.configure(); err != nil {
			d.status = Active
			return err
		}
		d.status = Active
		return nil
	default:
		d.status = Disabled
		d.logf("wii: disabling after %d consecutive failures", d.failureCount)
		return ErrDeviceDisabled
	}
}

// doMaintenance drives the lifecycle transitions implemented by
// doMaintenanceUninitialized and doMaintenanceActive.
// It is called at the end of Initialize and should be called once per
// polling cycle or whenever an operation returns an error.
func (d *Device) doMaintenance() error {
	switch d.status {
	case Uninitialized:
		return d.doMaintenanceUninitialized()
	case Active, Configuring:
		return d.doMaintenanceActive()
	case Disabled:
		return ErrDeviceDisabled
	default:
		return ErrNotInitialized
	}
}
