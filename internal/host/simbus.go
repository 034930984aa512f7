// internal/host/simbus.go
package host

import (
	"context"
	"log"
	"sync"
)

// SimBus models the parallel bus and the ready flip-flop for hosts that
// exist in software. Asserting the strobe latches the ready line active
// (low), exactly like the hardware flip-flop; the host side returns it to
// idle when it has consumed the byte.
type SimBus struct {
	mu   sync.Mutex
	cond *sync.Cond

	activeHigh bool
	data       byte
	strobe     bool
	ready      bool // true = idle (high)
}

// NewSimBus creates a bus with the strobe inactive and ready idle.
func NewSimBus(strobeActiveHigh bool) *SimBus {
	b := &SimBus{
		activeHigh: strobeActiveHigh,
		strobe:     !strobeActiveHigh,
		ready:      true,
	}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// WriteData implements Bus.
func (b *SimBus) WriteData(v byte) {
	b.mu.Lock()
	b.data = v
	b.mu.Unlock()
}

// WriteStrobe implements Bus. Driving the strobe to its active level sets
// the ready flip-flop; returning it to the inactive level has no effect on
// ready, which belongs to the host side.
func (b *SimBus) WriteStrobe(level bool) {
	b.mu.Lock()
	wasActive := b.strobe == b.activeHigh
	b.strobe = level
	if !wasActive && level == b.activeHigh {
		b.ready = false
	}
	b.mu.Unlock()
	b.cond.Broadcast()
}

// ReadReady implements Bus.
func (b *SimBus) ReadReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

// Serve is the host side of the handshake: it waits for the ready
// flip-flop to drop, reads the data port, hands the byte to sink, and
// returns ready to idle. It runs until ctx is cancelled. Sink errors are
// logged; the handshake completes regardless, since a wedged host is the
// one fault this bus cannot recover from.
func (b *SimBus) Serve(ctx context.Context, sink Sink) {
	// Unblock the cond wait when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		b.cond.Broadcast()
	}()

	for {
		b.mu.Lock()
		for b.ready && ctx.Err() == nil {
			b.cond.Wait()
		}
		if ctx.Err() != nil {
			b.mu.Unlock()
			return
		}
		v := b.data
		b.mu.Unlock()

		// Consume before releasing ready: the byte belongs to the host
		// only once the sink has actually taken it.
		if err := sink.Consume(v); err != nil {
			log.Printf("host: sink error for 0x%02X: %v", v, err)
		}

		b.mu.Lock()
		b.ready = true
		b.mu.Unlock()
		b.cond.Broadcast()
	}
}
