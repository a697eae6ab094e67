package report

// DecodeClassicNormal decodes the 6-byte STATUS payload of a Classic
// Controller attached directly to the host bus.
//
// The state machine re-issues the clear-text configuration sequence
// before each STATUS query for Classic variants; that workaround
// lives in the query path, not here — this decoder only interprets an
// already-fetched payload.
func DecodeClassicNormal(p [6]byte) Snapshot {
	var s Snapshot
	s.AnalogLeftX = int16(p[0] & 0x3F)
	s.AnalogLeftY = int16(p[1] & 0x3F)

	rxHigh := (p[0] >> 6) & 0x3
	rxMid := (p[1] >> 6) & 0x3
	rxLow := (p[2] >> 7) & 0x1
	s.AnalogRightX = int16(rxHigh)<<3 | int16(rxMid)<<1 | int16(rxLow)
	s.AnalogRightY = int16(p[2] & 0x1F)

	s.TriggerLeft = int8((p[2]>>5)&0x3<<3 | (p[3]>>5)&0x7)
	s.TriggerRight = int8(p[3] & 0x1F)

	decodeClassicButtons(&s, p[4], p[5], true)
	return s
}

// DecodeClassicPassThrough decodes the 6-byte STATUS payload of a
// Classic Controller relayed through a Wii Motion Plus. It differs
// from DecodeClassicNormal in a few fields: the d-pad up/left bits
// move into the low bit of byte0/byte1 to make room for Motion Plus
// signalling, the left stick loses its own low bit (leaving a 5-bit
// range packed into bits 1..5), and byte5's former d-pad bits are
// reserved.
func DecodeClassicPassThrough(p [6]byte) Snapshot {
	var s Snapshot
	s.AnalogLeftX = int16(p[0] & 0x3E)
	s.AnalogLeftY = int16(p[1] & 0x3E)

	rxHigh := (p[0] >> 6) & 0x3
	rxMid := (p[1] >> 6) & 0x3
	rxLow := (p[2] >> 7) & 0x1
	s.AnalogRightX = int16(rxHigh)<<3 | int16(rxMid)<<1 | int16(rxLow)
	s.AnalogRightY = int16(p[2] & 0x1F)

	s.TriggerLeft = int8((p[2]>>5)&0x3<<3 | (p[3]>>5)&0x7)
	s.TriggerRight = int8(p[3] & 0x1F)

	decodeClassicButtons(&s, p[4], p[5], false)
	s.DpadUp = p[0]&0x1 == 0
	s.DpadLeft = p[1]&0x1 == 0
	return s
}

// decodeClassicButtons fills in the 15 digital buttons shared by both
// Classic layouts. When withDpadFromByte5 is false (pass-through
// mode), byte5 bits 0-1 are reserved and DpadUp/DpadLeft are left for
// the caller to set from byte0/byte1 instead.
func decodeClassicButtons(s *Snapshot, b4, b5 byte, withDpadFromByte5 bool) {
	s.DpadRight = (b4>>7)&0x1 == 0
	s.DpadDown = (b4>>6)&0x1 == 0
	s.LeftTrigger = (b4>>5)&0x1 == 0
	s.Minus = (b4>>4)&0x1 == 0
	s.Home = (b4>>3)&0x1 == 0
	s.Plus = (b4>>2)&0x1 == 0
	s.RightTrigger = (b4>>1)&0x1 == 0

	s.ZL = (b5>>7)&0x1 == 0
	s.B = (b5>>6)&0x1 == 0
	s.Y = (b5>>5)&0x1 == 0
	s.A = (b5>>4)&0x1 == 0
	s.X = (b5>>3)&0x1 == 0
	s.ZR = (b5>>2)&0x1 == 0

	if withDpadFromByte5 {
		s.DpadLeft = (b5>>1)&0x1 == 0
		s.DpadUp = b5&0x1 == 0
	}
}
