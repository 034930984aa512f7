// internal/ps2/receiver.go
package ps2

import (
	"errors"
	"sync"
	"time"

	"github.com/SpareTimeGizmos/PS2APU/internal/debug"
)

// pollInterval bounds how long WaitKey sleeps between empty-buffer checks,
// so sticky errors on a silent keyboard are still noticed promptly.
const pollInterval = time.Millisecond

// frameBits is the length of one PS/2 frame: start, 8 data, parity, stop.
const frameBits = 11

// Config is the minimal runtime config the receiver needs.
type Config struct {
	// BufferSize is the key buffer capacity; a power of two >= 4.
	BufferSize int
	// Timeout bounds total frame assembly time. Zero derives it from
	// ClockHz as twice the worst-case frame transmission time.
	Timeout time.Duration
	// ClockHz is the nominal keyboard clock lower bound, used to size the
	// timeout when Timeout is zero.
	ClockHz int
}

// Receiver assembles PS/2 serial frames into bytes, one falling clock edge
// at a time, and queues them for the decoder task. OnClockEdge and the
// timeout guard stand in for the two interrupt handlers of the hardware
// design; both run under irq, and the consumer side masks irq around its
// check-and-read so the cursors are never raced.
type Receiver struct {
	irq sync.Mutex // the interrupt mask

	state   State
	pending byte // accumulator, filled LSB first
	flags   Flags
	buf     *keyBuffer

	guard   guardTimer
	timeout time.Duration

	// kick is a wakeup hint for WaitKey; delivery is best-effort, the
	// consumer still polls.
	kick chan struct{}
}

// New creates a receiver in the Idle state with an empty buffer.
func New(cfg Config) (*Receiver, error) {
	buf, err := newKeyBuffer(cfg.BufferSize)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		if cfg.ClockHz <= 0 {
			return nil, errors.New("ps2: clock_hz required to derive timeout")
		}
		// Twice the worst-case full-frame time at the slowest clock,
		// rounded up to a millisecond floor.
		timeout = 2 * frameBits * time.Second / time.Duration(cfg.ClockHz)
		if timeout < time.Millisecond {
			timeout = time.Millisecond
		}
	}

	r := &Receiver{
		buf:     buf,
		timeout: timeout,
		kick:    make(chan struct{}, 1),
	}
	r.guard = newClockTimer(r.onTimeout)
	return r, nil
}

// OnClockEdge is the edge interrupt handler. It must be invoked once per
// falling edge of the keyboard clock with the level sampled from the data
// line at that instant — the only moment the bit is guaranteed stable.
// The body is loop-free and allocation-free.
func (r *Receiver) OnClockEdge(data bool) {
	r.irq.Lock()
	defer r.irq.Unlock()

	switch {
	case r.state == stateIdle:
		// Start bit must be low.
		if data {
			r.flags |= FlagFraming
			r.state = stateError
			return
		}
		r.flags |= FlagBusy
		r.pending = 0
		r.guard.Arm(r.timeout)
		r.state = stateBit0

	case r.state >= stateBit0 && r.state <= stateBit7:
		r.pending >>= 1
		if data {
			r.pending |= 0x80
		}
		r.state++

	case r.state == stateParity:
		if OddParity(r.pending) != data {
			r.flags |= FlagParity
			r.state = stateError
			return
		}
		r.state = stateStop

	case r.state == stateStop:
		// Stop bit must be high.
		if !data {
			r.flags |= FlagFraming
			r.state = stateError
			return
		}
		r.flags &^= FlagBusy
		r.guard.Disarm()
		if !r.buf.putByte(r.pending) {
			r.flags |= FlagOverflow
		}
		r.state = stateIdle
		select {
		case r.kick <- struct{}{}:
		default:
		}

	default:
		// stateError: sink. Only the guard or Reinitialize leaves it.
	}
}

// onTimeout is the guard interrupt handler. Whatever state the receiver is
// stuck in mid-frame, it is forced back to Idle so the next start bit can
// resynchronize it.
func (r *Receiver) onTimeout() {
	r.irq.Lock()
	defer r.irq.Unlock()

	if r.flags&FlagBusy == 0 {
		// Stop bit won the race; nothing to recover.
		return
	}
	r.flags |= FlagTimeout
	r.flags &^= FlagBusy
	r.state = stateIdle
}

// Get removes the oldest buffered byte. The interrupt mask is held for the
// duration of the check-and-read only.
func (r *Receiver) Get() (byte, bool) {
	r.irq.Lock()
	defer r.irq.Unlock()
	return r.buf.getByte()
}

// Flags returns the current status byte.
func (r *Receiver) Flags() Flags {
	r.irq.Lock()
	defer r.irq.Unlock()
	return r.flags
}

// Reinitialize clears the buffer cursors, the state machine, and every
// sticky flag. It is the sole recovery action for all four error kinds.
func (r *Receiver) Reinitialize() {
	r.irq.Lock()
	defer r.irq.Unlock()
	r.guard.Disarm()
	r.state = stateIdle
	r.pending = 0
	r.flags = 0
	r.buf.reset()
}

// WaitKey blocks until a byte is available, forever if necessary. Each time
// it observes an empty buffer it also checks the sticky error bits and, if
// any is set, reinitializes the whole receiver before polling again.
func (r *Receiver) WaitKey() byte {
	for {
		if b, ok := r.Get(); ok {
			debug.Tracef("KBD: key buffer returned 0x%02X", b)
			return b
		}
		if f := r.Flags(); f&ErrorBits != 0 {
			debug.Tracef("KBD: keyboard re-initialized (flags=0x%02X)", uint8(f))
			r.Reinitialize()
		}
		select {
		case <-r.kick:
		case <-time.After(pollInterval):
		}
	}
}
