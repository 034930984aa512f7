// internal/host/sender.go
package host

import (
	"errors"
	"time"
)

// Bus is the pin-level view of the parallel host bus: an 8-bit data port,
// the data-ready strobe output, and the ready-acknowledge input. The ready
// line idles high; the host pulls it low while a byte is waiting and
// returns it high once the byte has been read.
type Bus interface {
	WriteData(b byte)
	WriteStrobe(level bool)
	ReadReady() bool
}

// ackPoll is how often the sender re-samples the ready line while blocked.
const ackPoll = 50 * time.Microsecond

// Config fixes the sender's hardware polarity and hooks.
type Config struct {
	// StrobeActiveHigh selects the strobe's asserted level.
	StrobeActiveHigh bool
	// Activity, if set, is invoked with true when a byte is placed on the
	// bus and false once the host has taken it. The reference hardware
	// drives its status LED from this.
	Activity func(busy bool)
}

// Sender delivers output bytes to the host one at a time. Send blocks the
// calling task until the host acknowledges, which is what guarantees that
// emission order matches resolution order and that two multi-byte output
// sequences can never interleave.
type Sender struct {
	bus    Bus
	active bool
	onBusy func(bool)
}

// NewSender creates a sender and parks the strobe at its inactive level.
func NewSender(bus Bus, cfg Config) (*Sender, error) {
	if bus == nil {
		return nil, errors.New("host: bus required")
	}
	s := &Sender{
		bus:    bus,
		active: cfg.StrobeActiveHigh,
		onBusy: cfg.Activity,
	}
	s.bus.WriteStrobe(!s.active)
	return s, nil
}

// Send places b on the data port, asserts the strobe, and waits — forever
// if necessary — for the host to return the ready line to idle. Only then
// is the strobe deasserted.
func (s *Sender) Send(b byte) {
	s.bus.WriteData(b)
	if s.onBusy != nil {
		s.onBusy(true)
	}
	s.bus.WriteStrobe(s.active)

	for !s.bus.ReadReady() {
		time.Sleep(ackPoll)
	}

	s.bus.WriteStrobe(!s.active)
	if s.onBusy != nil {
		s.onBusy(false)
	}
}
