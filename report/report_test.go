package report

import "testing"

// TestNunchuckIdlePoll decodes a roughly-centered idle poll. With
// payload byte5 = 0xFC, bits 2-7 are all set, so every accelerometer
// axis' 2-bit LSB field evaluates to 3 under the documented bit
// layout, not just Z's — this test asserts the value the bit layout
// actually produces rather than the value a quick read might expect.
func TestNunchuckIdlePoll(t *testing.T) {
	p := [6]byte{0x7F, 0x82, 0x80, 0x80, 0x80, 0xFC}
	s := DecodeNunchuckNormal(p)

	if s.AnalogLeftX != 0x7F {
		t.Errorf("AnalogLeftX = %d, want %d", s.AnalogLeftX, 0x7F)
	}
	if s.AnalogLeftY != 0x82 {
		t.Errorf("AnalogLeftY = %d, want %d", s.AnalogLeftY, 0x82)
	}
	if s.AccelX != 515 {
		t.Errorf("AccelX = %d, want 515", s.AccelX)
	}
	if s.AccelY != 515 {
		t.Errorf("AccelY = %d, want 515", s.AccelY)
	}
	if s.AccelZ != 515 {
		t.Errorf("AccelZ = %d, want 515", s.AccelZ)
	}
	if !s.C {
		t.Error("C button not decoded as pressed")
	}
	if !s.ZL {
		t.Error("ZL button not decoded as pressed")
	}
	if !s.ZR {
		t.Error("ZR should mirror ZL")
	}
	if s.AnalogRightX != s.AnalogLeftX || s.AnalogRightY != s.AnalogLeftY {
		t.Error("analog right stick should mirror left on a bare Nunchuck")
	}
}

func TestNunchuckButtonsReleasedAtRest(t *testing.T) {
	p := [6]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x0F}
	s := DecodeNunchuckNormal(p)
	if s.C || s.ZL || s.ZR {
		t.Error("no buttons should read pressed when bits 0-1 are set (active-low)")
	}
}

// TestClassicButtonMask checks that all 15 digital buttons decode as
// released when their bits are set (active-low).
func TestClassicButtonMask(t *testing.T) {
	p := [6]byte{0x20, 0x20, 0x00, 0x00, 0xFF, 0xFF}
	s := DecodeClassicNormal(p)

	buttons := []struct {
		name string
		val  bool
	}{
		{"A", s.A}, {"B", s.B}, {"X", s.X}, {"Y", s.Y},
		{"ZL", s.ZL}, {"ZR", s.ZR}, {"Minus", s.Minus}, {"Home", s.Home},
		{"Plus", s.Plus}, {"DpadUp", s.DpadUp}, {"DpadDown", s.DpadDown},
		{"DpadLeft", s.DpadLeft}, {"DpadRight", s.DpadRight},
		{"LeftTrigger", s.LeftTrigger}, {"RightTrigger", s.RightTrigger},
	}
	for _, b := range buttons {
		if b.val {
			t.Errorf("button %s decoded as pressed, want released", b.name)
		}
	}
	if s.AnalogRightX != 0 || s.AnalogRightY != 0 {
		t.Errorf("right stick = (%d,%d), want (0,0)", s.AnalogRightX, s.AnalogRightY)
	}
	if s.TriggerLeft != 0 || s.TriggerRight != 0 {
		t.Errorf("triggers = (%d,%d), want (0,0)", s.TriggerLeft, s.TriggerRight)
	}
	if s.AnalogLeftX != 0x20 || s.AnalogLeftY != 0x20 {
		t.Errorf("left stick = (%d,%d), want (0x20,0x20)", s.AnalogLeftX, s.AnalogLeftY)
	}
}

func TestClassicPassThroughDpadMovesToDataBytes(t *testing.T) {
	// bit0 of byte0 and byte1 clear => DpadUp/DpadLeft pressed (active-low).
	p := [6]byte{0x3E, 0x3E, 0x00, 0x00, 0xFF, 0xFF}
	s := DecodeClassicPassThrough(p)
	if !s.DpadUp {
		t.Error("DpadUp should be pressed from byte0 bit0")
	}
	if !s.DpadLeft {
		t.Error("DpadLeft should be pressed from byte1 bit0")
	}
	if s.AnalogLeftX != 0x3E || s.AnalogLeftY != 0x3E {
		t.Errorf("left stick = (%d,%d), want (0x3E,0x3E) with bit0 masked out", s.AnalogLeftX, s.AnalogLeftY)
	}
}

func TestSnapshotSubComputesRelativeAnalogOnly(t *testing.T) {
	home := Snapshot{AnalogLeftX: 100, AccelZ: 500, A: true}
	current := Snapshot{AnalogLeftX: 130, AccelZ: 503, A: false}
	rel := current.Sub(home)
	if rel.AnalogLeftX != 30 {
		t.Errorf("AnalogLeftX relative = %d, want 30", rel.AnalogLeftX)
	}
	if rel.AccelZ != 3 {
		t.Errorf("AccelZ relative = %d, want 3", rel.AccelZ)
	}
	if rel.A != home.A {
		t.Error("digital buttons in relative snapshot should mirror home, not current")
	}
}
