// internal/host/sender_test.go
package host

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"
)

// ---- fake sink ----

type recordSink struct {
	mu  sync.Mutex
	got []byte
}

func newRecordSink() *recordSink {
	return &recordSink{}
}

func (s *recordSink) Consume(b byte) error {
	s.mu.Lock()
	s.got = append(s.got, b)
	s.mu.Unlock()
	return nil
}

func (s *recordSink) Got() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(s.got))
	copy(out, s.got)
	return out
}

// ---- tests ----

func TestSender_DeliversInOrder(t *testing.T) {
	for _, activeHigh := range []bool{true, false} {
		bus := NewSimBus(activeHigh)
		sink := newRecordSink()

		ctx, cancel := context.WithCancel(context.Background())
		go bus.Serve(ctx, sink)

		s, err := NewSender(bus, Config{StrobeActiveHigh: activeHigh})
		if err != nil {
			t.Fatalf("NewSender: %v", err)
		}

		in := []byte{0xC4, 'h', 'e', 'l', 'l', 'o', 0x90, 0x0D}
		for _, b := range in {
			s.Send(b)
		}

		cancel()
		if got := sink.Got(); !bytes.Equal(got, in) {
			t.Fatalf("activeHigh=%v: delivered % 02X, want % 02X", activeHigh, got, in)
		}
	}
}

func TestSender_ParksStrobeInactive(t *testing.T) {
	bus := NewSimBus(true)
	sink := newRecordSink()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Serve(ctx, sink)

	s, err := NewSender(bus, Config{StrobeActiveHigh: true})
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	s.Send(0x42)

	bus.mu.Lock()
	strobe, ready := bus.strobe, bus.ready
	bus.mu.Unlock()

	if strobe {
		t.Fatal("strobe still asserted after Send returned")
	}
	if !ready {
		t.Fatal("ready line not back at idle after Send returned")
	}
}

func TestSender_BlocksUntilHostAcknowledges(t *testing.T) {
	bus := NewSimBus(true)

	s, err := NewSender(bus, Config{StrobeActiveHigh: true})
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	done := make(chan struct{})
	go func() {
		s.Send(0x55)
		close(done)
	}()

	// No host running: Send must stay blocked.
	select {
	case <-done:
		t.Fatal("Send returned without a host acknowledge")
	case <-time.After(50 * time.Millisecond):
	}

	// Attach the host; the pending byte must now go through.
	sink := newRecordSink()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Serve(ctx, sink)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send never completed after the host appeared")
	}
	if got := sink.Got(); len(got) != 1 || got[0] != 0x55 {
		t.Fatalf("host consumed % 02X, want 55", got)
	}
}

func TestSender_ActivityHook(t *testing.T) {
	bus := NewSimBus(true)
	sink := newRecordSink()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Serve(ctx, sink)

	var mu sync.Mutex
	var calls []bool
	s, err := NewSender(bus, Config{
		StrobeActiveHigh: true,
		Activity: func(busy bool) {
			mu.Lock()
			calls = append(calls, busy)
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	s.Send('x')

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Fatalf("activity calls = %v, want [true false]", calls)
	}
}

func TestWriterSink_Rendering(t *testing.T) {
	var buf bytes.Buffer
	s := WriterSink{W: &buf}

	for _, b := range []byte{'h', 'i', 0x0D, 0x90, 0xC4, 0x1B} {
		if err := s.Consume(b); err != nil {
			t.Fatalf("Consume(0x%02X): %v", b, err)
		}
	}

	want := "hi\n<UP><VERSION 4><ESC>"
	if buf.String() != want {
		t.Fatalf("rendered %q, want %q", buf.String(), want)
	}
}
