// internal/decoder/decoder_test.go
package decoder

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/SpareTimeGizmos/PS2APU/internal/scancode"
)

// ---- fake source ----

// scriptSource replays a fixed byte sequence, then signals drained and
// blocks forever, like a keyboard that has gone quiet. The decoder runs in
// one goroutine, so i needs no lock.
type scriptSource struct {
	bytes   []byte
	i       int
	drained chan struct{}
	once    sync.Once
}

func (s *scriptSource) WaitKey() byte {
	if s.i < len(s.bytes) {
		b := s.bytes[s.i]
		s.i++
		return b
	}
	s.once.Do(func() { close(s.drained) })
	select {} // keyboard is silent
}

// ---- fake sender ----

type recordSender struct {
	mu   sync.Mutex
	sent []byte
}

func (r *recordSender) Send(b byte) {
	r.mu.Lock()
	r.sent = append(r.sent, b)
	r.mu.Unlock()
}

func (r *recordSender) Sent() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]byte, len(r.sent))
	copy(out, r.sent)
	return out
}

// decode runs one scripted byte sequence to exhaustion and returns every
// byte the decoder handed to the host, in order.
func decode(t *testing.T, swap Jumper, in ...byte) []byte {
	t.Helper()

	src := &scriptSource{bytes: in, drained: make(chan struct{})}
	snd := &recordSender{}

	d, err := New(src, snd, swap)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	go d.Run()

	select {
	case <-src.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("decoder never consumed the script")
	}
	// drained closes inside the WaitKey call that follows the last fully
	// processed byte, so every send has already happened.
	return snd.Sent()
}

func expect(t *testing.T, got []byte, want ...byte) {
	t.Helper()
	if !bytes.Equal(got, want) {
		t.Fatalf("output = % 02X, want % 02X", got, want)
	}
}

// ---- tests ----

func TestDecode_PlainASCII(t *testing.T) {
	out := decode(t, nil, 0x1C, 0xF0, 0x1C)
	expect(t, out, 'a')
}

func TestDecode_ShiftedASCII(t *testing.T) {
	// shift down, a, a up, shift up, a
	out := decode(t, nil, 0x12, 0x1C, 0xF0, 0x1C, 0xF0, 0x12, 0x1C)
	expect(t, out, 'A', 'a')
}

func TestDecode_RightShift(t *testing.T) {
	out := decode(t, nil, 0x59, 0x1C, 0xF0, 0x59)
	expect(t, out, 'A')
}

func TestDecode_ControlASCII(t *testing.T) {
	// ctrl down, a: the table column for control holds SOH, never a letter.
	out := decode(t, nil, 0x14, 0x1C, 0xF0, 0x14, 0x1C)
	expect(t, out, 0x01, 'a')
}

func TestDecode_CapsLockUpcasesLetters(t *testing.T) {
	out := decode(t, nil,
		0x58, 0xF0, 0x58, // caps on
		0x1C,       // 'a' -> 'A'
		0x16,       // '1' stays '1': caps lock is not shift lock
		0x58, 0xF0, 0x58, // caps off
		0x1C,
	)
	expect(t, out, 'A', '1', 'a')
}

func TestDecode_CapsLockTogglesOnPressOnly(t *testing.T) {
	// Two presses toggle on then off; a lone release changes nothing.
	out := decode(t, nil, 0x58, 0x58, 0xF0, 0x58, 0x1C)
	expect(t, out, 'a')
}

func TestDecode_LiteralPassthrough(t *testing.T) {
	out := decode(t, nil, 0x0D, 0x5A, 0x66, 0x76)
	expect(t, out, 0x09, 0x0D, 0x08, 0x1B)
}

func TestDecode_StatusBytesNeverForwarded(t *testing.T) {
	out := decode(t, nil, 0xFA, 0xAA, 0xEE, 0xFE, 0x00, 0xFF)
	expect(t, out)
}

func TestDecode_ArrowKeys(t *testing.T) {
	out := decode(t, nil, 0xE0, 0x75)
	expect(t, out, scancode.KeyUp)
}

func TestDecode_ArrowReleaseSendsNothing(t *testing.T) {
	out := decode(t, nil, 0xE0, 0xF0, 0x75)
	expect(t, out)
}

func TestDecode_EditingKeypad(t *testing.T) {
	out := decode(t, nil,
		0xE0, 0x70, 0xE0, 0x71, 0xE0, 0x6C, 0xE0, 0x69, 0xE0, 0x7D, 0xE0, 0x7A,
	)
	expect(t, out,
		scancode.KeyInsert, scancode.KeyDelete, scancode.KeyHome,
		scancode.KeyEnd, scancode.KeyPgUp, scancode.KeyPgDn,
	)
}

func TestDecode_ExtendedKeypad(t *testing.T) {
	out := decode(t, nil, 0xE0, 0x5A, 0xE0, 0x4A)
	expect(t, out, scancode.KeyKPEnter, scancode.KeyKPSlash)
}

func TestDecode_Menu(t *testing.T) {
	out := decode(t, nil, 0xE0, 0x2F)
	expect(t, out, scancode.KeyMenu)
}

func TestDecode_UnknownExtendedDropped(t *testing.T) {
	out := decode(t, nil, 0xE0, 0x41, 0x1C)
	expect(t, out, 'a')
}

func TestDecode_PrintScreenIgnored(t *testing.T) {
	// Press and release, both halves of each.
	out := decode(t, nil,
		0xE0, 0x12, 0xE0, 0x7C,
		0xE0, 0xF0, 0x12, 0xE0, 0xF0, 0x7C,
	)
	expect(t, out)
}

func TestDecode_WindowsKeysIgnored(t *testing.T) {
	out := decode(t, nil, 0xE0, 0x1F, 0xE0, 0xF0, 0x1F, 0xE0, 0x27)
	expect(t, out)
}

func TestDecode_PauseBreak(t *testing.T) {
	out := decode(t, nil, 0xE1, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77)
	expect(t, out, scancode.KeyBreak)
}

func TestDecode_PauseBreakAnyDeviationAborts(t *testing.T) {
	good := []byte{0xE1, 0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77}
	for pos := 1; pos < len(good); pos++ {
		seq := make([]byte, len(good))
		copy(seq, good)
		seq[pos] = 0x6B // plausible but wrong

		out := decode(t, nil, seq...)
		if len(out) != 0 {
			t.Fatalf("deviation at %d produced output % 02X", pos, out)
		}
	}
}

func TestDecode_NumAndScrollLock(t *testing.T) {
	out := decode(t, nil, 0x77, 0xF0, 0x77, 0x7E, 0xF0, 0x7E)
	expect(t, out, scancode.KeyNumLock, scancode.KeyScrollLock)
}

func TestDecode_FunctionKeys(t *testing.T) {
	out := decode(t, nil,
		0x05, 0x06, 0x04, 0x0C, 0x03, 0x0B,
		0x83, 0x0A, 0x01, 0x09, 0x78, 0x07,
		0xF0, 0x05, // F1 release: nothing
	)
	expect(t, out,
		scancode.KeyF1, scancode.KeyF2, scancode.KeyF3, scancode.KeyF4,
		scancode.KeyF5, scancode.KeyF6, scancode.KeyF7, scancode.KeyF8,
		scancode.KeyF9, scancode.KeyF10, scancode.KeyF11, scancode.KeyF12,
	)
}

func TestDecode_NumericKeypad(t *testing.T) {
	out := decode(t, nil,
		0x70, 0x69, 0x72, 0x7A, 0x6B, 0x73, 0x74, 0x6C, 0x75, 0x7D,
		0x71, 0x7C, 0x7B, 0x79,
		0xF0, 0x70, // KP0 release: nothing
	)
	expect(t, out,
		scancode.KeyKP0, scancode.KeyKP1, scancode.KeyKP2, scancode.KeyKP3,
		scancode.KeyKP4, scancode.KeyKP5, scancode.KeyKP6, scancode.KeyKP7,
		scancode.KeyKP8, scancode.KeyKP9,
		scancode.KeyKPDot, scancode.KeyKPStar, scancode.KeyKPMinus,
		scancode.KeyKPPlus,
	)
}

func TestDecode_ExtendedRightControlUnimplemented(t *testing.T) {
	// E0 14 must not set the control state.
	out := decode(t, nil, 0xE0, 0x14, 0x1C, 0xE0, 0xF0, 0x14)
	expect(t, out, 'a')
}

func TestDecode_AltIgnored(t *testing.T) {
	out := decode(t, nil, 0x11, 0x1C, 0xF0, 0x11)
	expect(t, out, 'a')
}

func TestDecode_SwapJumper(t *testing.T) {
	// With the jumper on, the CapsLock key acts as control...
	out := decode(t, StaticJumper(true), 0x58, 0x1C, 0xF0, 0x58, 0x1C)
	expect(t, out, 0x01, 'a')

	// ...and the left control key toggles CapsLock.
	out = decode(t, StaticJumper(true), 0x14, 0xF0, 0x14, 0x1C, 0x14, 0xF0, 0x14, 0x1C)
	expect(t, out, 'A', 'a')
}

func TestDecode_UnknownScanCodeDropped(t *testing.T) {
	out := decode(t, nil, 0x5F, 0x1C)
	expect(t, out, 'a')
}

func TestNew_Validation(t *testing.T) {
	src := &scriptSource{drained: make(chan struct{})}
	snd := &recordSender{}

	if _, err := New(nil, snd, nil); err == nil {
		t.Fatal("nil source accepted")
	}
	if _, err := New(src, nil, nil); err == nil {
		t.Fatal("nil sender accepted")
	}
	if _, err := New(src, snd, nil); err != nil {
		t.Fatalf("nil jumper rejected: %v", err)
	}
}
