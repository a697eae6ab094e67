// Package bus defines the narrow interfaces the driver consumes from
// the external bus controller and delay service. Neither interface is
// implemented by this module for production hardware: the bus
// controller (start/stop generation, byte shift-in/out, ACK
// management) and the tick-based delay service are board-specific
// collaborators supplied by the caller. See package busadapter for an
// example implementation talking to a USB-serial I2C bridge.
package bus

import (
	"errors"

	"github.com/sergev/wiidrv/kind"
)

// Clock rates the driver may request from the bus controller.
const (
	StandardClockHz uint32 = 100_000
	FastClockHz     uint32 = 400_000
)

// Config holds the immutable-after-init bus parameters.
type Config struct {
	ClockHz    uint32
	AckActive  bool // polarity the adapter should drive/expect for ACK
	MaxRetries int  // per-byte retry budget inside the adapter
}

// DefaultConfig returns the driver's conventional bus parameters:
// standard-mode clock, active-low ACK, and a conservative per-byte
// retry budget.
func DefaultConfig() Config {
	return Config{
		ClockHz:    StandardClockHz,
		AckActive:  false,
		MaxRetries: 3,
	}
}

// Errors a Port implementation may return from Write, Read, or
// WriteThenRead. The driver surfaces any of these, wrapped, as
// ErrBusError.
var (
	ErrStartFailed = errors.New("bus: start condition failed")
	ErrNoAck       = errors.New("bus: no ack")
	ErrBufferFull  = errors.New("bus: buffer full")
	ErrOverflow    = errors.New("bus: read overflow")
)

// Port is the adapter to the external bus controller. Implementations
// busy-wait for hardware progress; no timeout is applied at this
// layer.
type Port interface {
	// Init configures the clock divisor and enables the bus master.
	Init(cfg Config, peripheralClockHz uint32) error

	// Write issues START, the 7-bit address with the write bit,
	// the payload, and STOP. requireAck controls whether a missing
	// ACK on any byte is treated as ErrNoAck.
	Write(addr kind.Address, data []byte, requireAck bool) error

	// Read issues START, the 7-bit address with the read bit, reads
	// len(out) bytes (acknowledging each but the last, per the
	// configured polarity, conventional master-read NACK on the
	// final byte), then STOP.
	Read(addr kind.Address, out []byte, ackEach bool) error

	// WriteThenRead performs a write phase followed by a read phase.
	// When repeatedStart is false the adapter issues STOP, waits the
	// board's inter-phase delay, then a fresh START for the read
	// phase; this driver always requests repeatedStart=false because
	// the peripheral holds SDA low for several milliseconds after the
	// last write byte on the hardware this was written against.
	WriteThenRead(addr kind.Address, tx []byte, rx []byte, ack bool, repeatedStart bool) error
}

// DelayService is the injected microsecond/millisecond busy-wait
// clock. Process-wide calibration state is initialised once per boot
// by Init and is otherwise read-only.
type DelayService interface {
	Init(clockHz uint32) error
	DelayUs(n uint32)
	DelayMs(n uint32)
}

// Timing constants carried from the most recent revision of the
// reference firmware's headers.
const (
	InterPhaseDelayMs = 1
	PostReadDelayMs   = 10
	ConfigStepDelayMs = 20
)
