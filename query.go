package wii

import (
	"fmt"

	"github.com/sergev/wiidrv/codec"
	"github.com/sergev/wiidrv/report"
)

// Parameter is a register the driver knows how to query.
type Parameter byte

const (
	ParamStatus     Parameter = 0x00
	ParamRawData    Parameter = 0x20
	ParamDeviceType Parameter = 0xFA
)

func (p Parameter) responseLen() (int, bool) {
	switch p {
	case ParamStatus:
		return 6, true
	case ParamRawData:
		return codec.MaxPayload, true
	case ParamDeviceType:
		return 6, true
	default:
		return 0, false
	}
}

// query performs one parameter read and runs it through the failure
// counter / validation / decode pipeline.
func (d *Device) query(param Parameter) ([]byte, error) {
	if d.status == Disabled {
		return nil, ErrDeviceDisabled
	}

	length, known := param.responseLen()
	if !known {
		// A logic bug: never absorbed by the failure counter.
		return nil, fmt.Errorf("wii: query register %#x: %w", byte(param), ErrUnknownParameter)
	}

	if param == ParamStatus && d.observedKind.IsClassic() {
		if err := d.configure(); err != nil {
			d.failureCount++
			d.LastError = err
			return nil, err
		}
	}

	addr := d.targetAddress()
	rx := make([]byte, length)
	if err := d.port.WriteThenRead(addr, []byte{byte(param)}, rx, true, false); err != nil {
		d.failureCount++
		err = fmt.Errorf("wii: query register %#x: %w: %w", byte(param), ErrBusError, err)
		d.LastError = err
		return nil, err
	}

	if !codec.Validate(rx) {
		for i := range d.raw {
			d.raw[i] = 0
		}
		d.failureCount++
		err := fmt.Errorf("wii: query register %#x: %w", byte(param), ErrInvalidData)
		d.LastError = err
		return nil, err
	}

	if d.Scrambled {
		codec.Descramble(rx[:min(6, len(rx))])
	}

	copy(d.raw[:], rx)
	d.failureCount = 0
	d.LastError = nil

	if param == ParamStatus {
		var payload [6]byte
		copy(payload[:], rx[:6])
		snap, err := report.Decode(d.observedKind, payload)
		if err != nil {
			d.LastError = err
			return rx, err
		}
		d.current = snap
		d.tracker.Update(snap)
	}

	return rx, nil
}
