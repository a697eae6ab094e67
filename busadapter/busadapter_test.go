package busadapter

import (
	"errors"
	"testing"

	"github.com/sergev/wiidrv/bus"
)

func TestAckError(t *testing.T) {
	cases := []struct {
		code byte
		want error
	}{
		{ackOkay, nil},
		{ackStartFail, bus.ErrStartFailed},
		{ackNoAck, bus.ErrNoAck},
		{ackBufferFull, bus.ErrBufferFull},
		{ackOverflow, bus.ErrOverflow},
	}
	for _, c := range cases {
		got := ackError(c.code)
		if c.want == nil {
			if got != nil {
				t.Errorf("ackError(%#x) = %v, want nil", c.code, got)
			}
			continue
		}
		if !errors.Is(got, c.want) {
			t.Errorf("ackError(%#x) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestAckErrorUnknownCode(t *testing.T) {
	if err := ackError(0xEE); err == nil {
		t.Fatal("ackError(0xEE) = nil, want a non-nil error")
	}
}

func TestBoolByte(t *testing.T) {
	if got := boolByte(true); got != 1 {
		t.Errorf("boolByte(true) = %d, want 1", got)
	}
	if got := boolByte(false); got != 0 {
		t.Errorf("boolByte(false) = %d, want 0", got)
	}
}

func TestClockSatisfiesDelayService(t *testing.T) {
	var c Clock
	if err := c.Init(100_000); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c.DelayUs(1)
	c.DelayMs(1)
}
