// Package report translates the 6-byte STATUS payload of each
// supported peripheral into a uniform Snapshot.
//
// Digital buttons in the wire format are active-low; every decoder
// inverts them so Snapshot.<Button> == true means pressed. Bitfield
// reconstruction is written as explicit shift-and-mask rather than a
// pointer-cast overlay, so it stays portable across host byte order.
package report

import "github.com/sergev/wiidrv/kind"

// Snapshot is the peripheral-agnostic interface reading produced by a
// successful STATUS decode.
//
// Consumers must treat a Snapshot as read-only; Tracker is the only
// component that mutates one in place.
type Snapshot struct {
	// Digital buttons, active-high.
	A, B, C, X, Y, ZL, ZR        bool
	Minus, Home, Plus            bool
	DpadUp, DpadDown             bool
	DpadLeft, DpadRight          bool
	LeftTrigger, RightTrigger    bool

	// Analog axes.
	AnalogLeftX, AnalogLeftY   int16
	AnalogRightX, AnalogRightY int16
	TriggerLeft, TriggerRight  int8
	AccelX, AccelY, AccelZ     int16
	GyroX, GyroY, GyroZ        int16
}

// Sub returns a Snapshot whose analog fields are s's analog fields
// minus home's, and whose digital fields mirror home: consumers of a
// relative snapshot are expected to read only its analog fields.
func (s Snapshot) Sub(home Snapshot) Snapshot {
	rel := home
	rel.AnalogLeftX = s.AnalogLeftX - home.AnalogLeftX
	rel.AnalogLeftY = s.AnalogLeftY - home.AnalogLeftY
	rel.AnalogRightX = s.AnalogRightX - home.AnalogRightX
	rel.AnalogRightY = s.AnalogRightY - home.AnalogRightY
	rel.TriggerLeft = s.TriggerLeft - home.TriggerLeft
	rel.TriggerRight = s.TriggerRight - home.TriggerRight
	rel.AccelX = s.AccelX - home.AccelX
	rel.AccelY = s.AccelY - home.AccelY
	rel.AccelZ = s.AccelZ - home.AccelZ
	rel.GyroX = s.GyroX - home.GyroX
	rel.GyroY = s.GyroY - home.GyroY
	rel.GyroZ = s.GyroZ - home.GyroZ
	return rel
}

// Decode dispatches payload to the decoder matching k. The Motion
// Plus-only report (no pass-through extension attached) has no known
// public bit layout, so Decode returns ErrDecoderMissing for
// kind.MotionPlus rather than guess at one.
func Decode(k kind.Peripheral, payload [6]byte) (Snapshot, error) {
	switch k {
	case kind.Nunchuck:
		return DecodeNunchuckNormal(payload), nil
	case kind.MotionPlusPassNunchuck:
		return DecodeNunchuckPassThrough(payload), nil
	case kind.ClassicController:
		return DecodeClassicNormal(payload), nil
	case kind.MotionPlusPassClassic:
		return DecodeClassicPassThrough(payload), nil
	case kind.MotionPlus:
		return Snapshot{}, ErrDecoderMissing
	default:
		return Snapshot{}, ErrDecoderMissing
	}
}
