package wii

import (
	"errors"
	"testing"

	"github.com/sergev/wiidrv/identity"
	"github.com/sergev/wiidrv/kind"
	"github.com/sergev/wiidrv/wiitest"
)

func newTestDevice() (*Device, *wiitest.FakeBus, *wiitest.FakeDelay) {
	b := wiitest.NewFakeBus()
	dl := wiitest.NewFakeDelay()
	return New(b, dl), b, dl
}

// TestInitializeEachSupportedKind checks that for every decodable
// peripheral kind, configuration followed by a DEVICE_TYPE read yields
// that kind's identity blob, and set-home-then-poll produces an
// all-zero relative analog snapshot.
func TestInitializeEachSupportedKind(t *testing.T) {
	cases := []struct {
		name string
		k    kind.Peripheral
		blob identity.Blob
	}{
		{"nunchuck", kind.Nunchuck, identity.Blob{0x00, 0x00, 0xA4, 0x20, 0x00, 0x00}},
		{"classic", kind.ClassicController, identity.Blob{0x00, 0x00, 0xA4, 0x20, 0x01, 0x01}},
		{"motion plus + nunchuck", kind.MotionPlusPassNunchuck, identity.Blob{0x00, 0x00, 0xA4, 0x20, 0x05, 0x05}},
		{"motion plus + classic", kind.MotionPlusPassClassic, identity.Blob{0x00, 0x00, 0xA4, 0x20, 0x07, 0x05}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dev, bus, _ := newTestDevice()
			bus.Script(byte(ParamDeviceType), wiitest.Response{Data: c.blob[:]})
			bus.Script(byte(ParamStatus), wiitest.Response{Data: []byte{0x10, 0x10, 0x80, 0x80, 0x80, 0xFF}})

			if err := dev.Initialize(100_000, c.k, true); err != nil {
				t.Fatalf("Initialize: %v", err)
			}
			if dev.Status() != Active {
				t.Fatalf("Status() = %v, want Active", dev.Status())
			}
			if dev.ObservedKind() != c.k {
				t.Fatalf("ObservedKind() = %v, want %v", dev.ObservedKind(), c.k)
			}

			if err := dev.SetHome(); err != nil {
				t.Fatalf("SetHome: %v", err)
			}
			if err := dev.PollStatus(); err != nil {
				t.Fatalf("PollStatus: %v", err)
			}

			rel := dev.Relative()
			if rel.AnalogLeftX != 0 || rel.AnalogLeftY != 0 ||
				rel.AnalogRightX != 0 || rel.AnalogRightY != 0 ||
				rel.AccelX != 0 || rel.AccelY != 0 || rel.AccelZ != 0 ||
				rel.TriggerLeft != 0 || rel.TriggerRight != 0 {
				t.Errorf("relative analog fields not all zero after set-home: %+v", rel)
			}
		})
	}
}

// TestIdMismatchIsTerminal checks that an identity mismatch against
// the expected kind is terminal rather than retried.
func TestIdMismatchIsTerminal(t *testing.T) {
	dev, bus, _ := newTestDevice()
	bus.Script(byte(ParamDeviceType), wiitest.Response{
		Data: []byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x01}, // classic controller blob
	})

	err := dev.Initialize(100_000, kind.Nunchuck, true)
	if err == nil {
		t.Fatal("Initialize succeeded, want IdMismatchError")
	}
	var mismatch *IdMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Initialize error = %v, want *IdMismatchError", err)
	}
	if mismatch.Observed != kind.ClassicController {
		t.Errorf("Observed = %v, want ClassicController", mismatch.Observed)
	}
	if dev.Status() != Uninitialized {
		t.Errorf("Status() = %v, want Uninitialized after terminal mismatch", dev.Status())
	}
}

// TestUnknownExpectedKindSuppressesMismatch checks that passing
// kind.Unknown as the expected kind accepts whatever is attached.
func TestUnknownExpectedKindSuppressesMismatch(t *testing.T) {
	dev, bus, _ := newTestDevice()
	bus.Script(byte(ParamDeviceType), wiitest.Response{
		Data: []byte{0x00, 0x00, 0xA4, 0x20, 0x01, 0x01},
	})
	bus.Script(byte(ParamStatus), wiitest.Response{Data: make([]byte, 6)})

	if err := dev.Initialize(100_000, kind.Unknown, true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if dev.ObservedKind() != kind.ClassicController {
		t.Errorf("ObservedKind() = %v, want ClassicController", dev.ObservedKind())
	}
}
