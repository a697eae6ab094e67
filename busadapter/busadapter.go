// Package busadapter is a bus.Port and bus.DelayService implementation
// for running this driver against real hardware through a USB-serial
// two-wire bridge, rather than a board-native bus controller: a
// concrete client wrapping a serial.Port, speaking a small command/ACK
// protocol to a microcontroller that does the actual bus toggling.
package busadapter

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"

	"github.com/sergev/wiidrv/bus"
	"github.com/sergev/wiidrv/kind"
)

// VendorID and ProductID identify the reference bridge firmware this
// adapter was written against.
const (
	VendorID  = 0x1209 // Open source hardware projects
	ProductID = 0x57b0 // two-wire bus bridge
)

// Command codes understood by the bridge firmware.
const (
	cmdInit          = 0
	cmdWrite         = 1
	cmdRead          = 2
	cmdWriteThenRead = 3
)

// ACK status codes returned after every command.
const (
	ackOkay       = 0
	ackBadCommand = 1
	ackStartFail  = 2
	ackNoAck      = 3
	ackBufferFull = 4
	ackOverflow   = 5
)

func ackError(code byte) error {
	switch code {
	case ackOkay:
		return nil
	case ackBadCommand:
		return fmt.Errorf("busadapter: bad command")
	case ackStartFail:
		return bus.ErrStartFailed
	case ackNoAck:
		return bus.ErrNoAck
	case ackBufferFull:
		return bus.ErrBufferFull
	case ackOverflow:
		return bus.ErrOverflow
	default:
		return fmt.Errorf("busadapter: unknown status %#x", code)
	}
}

// Adapter wraps a serial connection to the bridge and implements
// bus.Port. Pair it with Clock for bus.DelayService.
type Adapter struct {
	port serial.Port
}

// Open opens the named serial port and returns an Adapter ready for
// bus.Port.Init. portDetails typically comes from Find.
func Open(portDetails *enumerator.PortDetails) (*Adapter, error) {
	mode := &serial.Mode{BaudRate: 115200}
	port, err := serial.Open(portDetails.Name, mode)
	if err != nil {
		return nil, fmt.Errorf("busadapter: open %s: %w", portDetails.Name, err)
	}
	return &Adapter{port: port}, nil
}

// Find enumerates attached serial ports and returns the details of
// the first one whose VID:PID matches the reference bridge firmware.
func Find() (*enumerator.PortDetails, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("busadapter: enumerate ports: %w", err)
	}
	for _, p := range ports {
		if !p.IsUSB {
			continue
		}
		if p.VID == fmt.Sprintf("%04x", VendorID) && p.PID == fmt.Sprintf("%04x", ProductID) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("busadapter: no bridge found")
}

// Close releases the underlying serial port.
func (a *Adapter) Close() error { return a.port.Close() }

// doCommand writes cmd, reads a 2-byte ACK (opcode echo, status), and
// returns ackError for anything but success.
func (a *Adapter) doCommand(cmd []byte) error {
	if _, err := a.port.Write(cmd); err != nil {
		return fmt.Errorf("busadapter: write command: %w", err)
	}
	ack := make([]byte, 2)
	if _, err := io.ReadFull(a.port, ack); err != nil {
		return fmt.Errorf("busadapter: read ack: %w", err)
	}
	if ack[0] != cmd[0] {
		return fmt.Errorf("busadapter: command echo mismatch (%#x != %#x)", ack[0], cmd[0])
	}
	return ackError(ack[1])
}

// Init configures the bridge's clock divisor and ACK polarity.
// peripheralClockHz is the bridge's own timer reference; the bus rate
// itself comes from cfg.ClockHz.
func (a *Adapter) Init(cfg bus.Config, peripheralClockHz uint32) error {
	payload := make([]byte, 11)
	payload[0] = cmdInit
	payload[1] = 10
	binary.LittleEndian.PutUint32(payload[2:6], cfg.ClockHz)
	binary.LittleEndian.PutUint32(payload[6:10], peripheralClockHz)
	if cfg.AckActive {
		payload[10] = 1
	}
	return a.doCommand(payload)
}

// Write issues a bridge write transaction: START, address+write bit,
// payload, STOP.
func (a *Adapter) Write(addr kind.Address, data []byte, requireAck bool) error {
	if len(data) > 255 {
		return fmt.Errorf("busadapter: write payload too large (%d bytes)", len(data))
	}
	cmd := make([]byte, 4+len(data))
	cmd[0] = cmdWrite
	cmd[1] = byte(3 + len(data))
	cmd[2] = byte(addr)
	cmd[3] = boolByte(requireAck)
	copy(cmd[4:], data)
	return a.doCommand(cmd)
}

// Read issues a bridge read transaction: START, address+read bit,
// len(out) bytes, STOP, then reads the payload following the ACK.
func (a *Adapter) Read(addr kind.Address, out []byte, ackEach bool) error {
	if len(out) > 255 {
		return fmt.Errorf("busadapter: read length too large (%d bytes)", len(out))
	}
	cmd := []byte{cmdRead, 4, byte(addr), byte(len(out)), boolByte(ackEach)}
	if err := a.doCommand(cmd); err != nil {
		return err
	}
	if _, err := io.ReadFull(a.port, out); err != nil {
		return fmt.Errorf("busadapter: read payload: %w", err)
	}
	return nil
}

// WriteThenRead issues a combined write+read transaction in one
// bridge command, matching the driver's always-false repeatedStart
// convention.
func (a *Adapter) WriteThenRead(addr kind.Address, tx, rx []byte, ack, repeatedStart bool) error {
	if len(tx) > 255 || len(rx) > 255 {
		return fmt.Errorf("busadapter: transaction too large (tx=%d rx=%d)", len(tx), len(rx))
	}
	cmd := make([]byte, 6+len(tx))
	cmd[0] = cmdWriteThenRead
	cmd[1] = byte(5 + len(tx))
	cmd[2] = byte(addr)
	cmd[3] = byte(len(tx))
	cmd[4] = byte(len(rx))
	cmd[5] = boolByte(ack)
	copy(cmd[6:], tx)
	if repeatedStart {
		cmd[5] |= 0x80
	}
	if err := a.doCommand(cmd); err != nil {
		return err
	}
	if _, err := io.ReadFull(a.port, rx); err != nil {
		return fmt.Errorf("busadapter: read payload: %w", err)
	}
	return nil
}

// Clock implements bus.DelayService by sleeping locally rather
// than round-tripping to the bridge: a USB round trip would itself
// take longer than most requested delays. It is a separate type from
// Adapter because bus.Port and bus.DelayService both name their setup
// method Init with different signatures, and one type cannot satisfy
// both.
type Clock struct{}

// Init is a no-op: the host's own scheduler is the only timer Clock
// depends on.
func (Clock) Init(clockHz uint32) error { return nil }

// DelayUs sleeps for n microseconds.
func (Clock) DelayUs(n uint32) {
	time.Sleep(time.Duration(n) * time.Microsecond)
}

// DelayMs sleeps for n milliseconds.
func (Clock) DelayMs(n uint32) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}

var (
	_ bus.Port         = (*Adapter)(nil)
	_ bus.DelayService = Clock{}
)

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
