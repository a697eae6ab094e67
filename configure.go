package wii

import (
	"fmt"

	"github.com/sergev/wiidrv/bus"
	"github.com/sergev/wiidrv/kind"
)

// configure runs the configuration write sequence for the device's
// current target peripheral address.
func (d *Device) configure() error {
	addr := d.targetAddress()
	if d.Scrambled {
		return d.writeConfigStep(addr, []byte{0x40, 0x00})
	}
	if err := d.writeConfigStep(addr, []byte{0xF0, 0x55}); err != nil {
		return err
	}
	return d.writeConfigStep(addr, []byte{0xFB, 0x00})
}

func (d *Device) writeConfigStep(addr kind.Address, step []byte) error {
	if err := d.port.Write(addr, step, true); err != nil {
		return fmt.Errorf("wii: configure write %#x: %w: %w", step, ErrBusError, err)
	}
	d.delay.DelayMs(bus.ConfigStepDelayMs)
	return nil
}

// targetAddress resolves the bus address to configure and query: the
// expected kind's address until identification has produced an
// observed kind, after which the observed kind's address (relevant
// only for Motion Plus, whose base address differs from the
// extension address every other peripheral shares).
func (d *Device) targetAddress() kind.Address {
	k := d.expectedKind
	if d.observedKind != kind.Unknown {
		k = d.observedKind
	}
	return k.BusAddress()
}
