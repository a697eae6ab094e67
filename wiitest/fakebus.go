// Package wiitest provides a scriptable fake bus.Port and
// bus.DelayService for driving driver tests without real hardware.
package wiitest

import (
	"github.com/sergev/wiidrv/bus"
	"github.com/sergev/wiidrv/kind"
)

// Response is one scripted outcome for a WriteThenRead call keyed by
// the register written in the transaction's first byte.
type Response struct {
	Data []byte
	Err  error
}

// FakeBus implements bus.Port entirely in memory. Script queues a
// sequence of responses per register; each queued response is used
// once, and a register whose queue is empty answers with a zero-filled
// success, so tests can express "N failures, then recovery" by
// scripting only the failures.
type FakeBus struct {
	InitErr  error
	WriteErr error

	queue map[byte][]Response
	// Writes records every Write call's payload, in order, so tests
	// can assert on the configuration sequence.
	Writes [][]byte
	// Transactions counts WriteThenRead calls, so tests can assert
	// the bus goes untouched once a device is Disabled.
	Transactions int
}

// NewFakeBus returns an empty FakeBus; every register defaults to a
// zero-filled successful response until scripted otherwise.
func NewFakeBus() *FakeBus {
	return &FakeBus{queue: make(map[byte][]Response)}
}

// Script appends one scripted response for register.
func (b *FakeBus) Script(register byte, resp Response) {
	b.queue[register] = append(b.queue[register], resp)
}

// ScriptN appends resp count times for register; a convenience for
// "N consecutive failures" style test scenarios.
func (b *FakeBus) ScriptN(register byte, resp Response, count int) {
	for i := 0; i < count; i++ {
		b.Script(register, resp)
	}
}

func (b *FakeBus) Init(cfg bus.Config, peripheralClockHz uint32) error {
	return b.InitErr
}

func (b *FakeBus) Write(addr kind.Address, data []byte, requireAck bool) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	b.Writes = append(b.Writes, cp)
	return b.WriteErr
}

func (b *FakeBus) Read(addr kind.Address, out []byte, ackEach bool) error {
	return nil
}

func (b *FakeBus) WriteThenRead(addr kind.Address, tx, rx []byte, ack, repeatedStart bool) error {
	b.Transactions++
	reg := tx[0]
	resp := b.next(reg, len(rx))
	if resp.Err != nil {
		return resp.Err
	}
	copy(rx, resp.Data)
	return nil
}

func (b *FakeBus) next(register byte, length int) Response {
	q := b.queue[register]
	if len(q) == 0 {
		return Response{Data: make([]byte, length)}
	}
	r := q[0]
	b.queue[register] = q[1:]
	return r
}

// FakeDelay implements bus.DelayService by recording requested delays
// without actually sleeping.
type FakeDelay struct {
	InitErr  error
	UsDelays []uint32
	MsDelays []uint32
}

func NewFakeDelay() *FakeDelay { return &FakeDelay{} }

func (d *FakeDelay) Init(clockHz uint32) error { return d.InitErr }

func (d *FakeDelay) DelayUs(n uint32) { d.UsDelays = append(d.UsDelays, n) }

func (d *FakeDelay) DelayMs(n uint32) { d.MsDelays = append(d.MsDelays, n) }
