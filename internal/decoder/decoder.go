// internal/decoder/decoder.go
package decoder

import (
	"errors"

	"github.com/SpareTimeGizmos/PS2APU/internal/debug"
	"github.com/SpareTimeGizmos/PS2APU/internal/scancode"
)

// Scan-code stream markers.
const (
	prefixExtended = 0xE0 // extended key follows
	prefixPause    = 0xE1 // start of the Pause/Break literal
	prefixRelease  = 0xF0 // key-up for the code that follows
)

// pauseTail is what the Pause/Break key sends after its 0xE1 prefix. Every
// byte must match, in order; the key sends nothing at all on release.
var pauseTail = [7]byte{0x14, 0x77, 0xE1, 0xF0, 0x14, 0xF0, 0x77}

// Decoder interprets the scan-code byte stream: it tracks the shift keys,
// resolves extended and multi-byte sequences, and hands every resolved
// output code to the host sender before consuming the next byte. It owns
// the only mutable modifier state in the system.
type Decoder struct {
	src  Source
	snd  Sender
	swap Jumper

	leftShiftDown  bool
	rightShiftDown bool
	controlDown    bool
	capsLockOn     bool
}

// New creates a decoder. A nil jumper means the swap option is off.
func New(src Source, snd Sender, swap Jumper) (*Decoder, error) {
	if src == nil {
		return nil, errors.New("decoder: source required")
	}
	if snd == nil {
		return nil, errors.New("decoder: sender required")
	}
	if swap == nil {
		swap = StaticJumper(false)
	}
	return &Decoder{src: src, snd: snd, swap: swap}, nil
}

// Run is the keyboard task: an endless loop reading bytes from the
// keyboard, converting them, and sending them to the host. It never
// returns. Dispatch is strictly ordered; the first stage that claims a
// byte wins.
func (d *Decoder) Run() {
	d.leftShiftDown = false
	d.rightShiftDown = false
	d.controlDown = false
	d.capsLockOn = false

	for {
		key := d.src.WaitKey()
		release := false

		if d.doStatus(key) {
			continue
		}
		if key == prefixExtended {
			d.doExtended()
			continue
		}
		if key == prefixPause {
			d.doPauseBreak()
			continue
		}
		if key == prefixRelease {
			release = true
			key = d.src.WaitKey()
		}
		if key == 0x77 {
			if !release {
				debug.Tracef("KBD: NUM LOCK pressed")
				d.send(scancode.KeyNumLock)
			}
			continue
		}
		if key == 0x7E {
			if !release {
				debug.Tracef("KBD: SCROLL LOCK pressed")
				d.send(scancode.KeyScrollLock)
			}
			continue
		}
		if d.doShift(key, release, false) {
			continue
		}
		if d.doFunction(key, release) {
			continue
		}
		if d.doKeypad(key, release) {
			continue
		}
		if d.doASCII(key, release) {
			continue
		}

		debug.Tracef("KBD: unknown scan code 0x%02X", key)
	}
}

// doStatus handles the keyboard's own status bytes — acknowledge, self
// test, echo, resend, and the error/overflow markers. They never carry a
// release or extended prefix and are never forwarded.
func (d *Decoder) doStatus(key byte) bool {
	switch key {
	case 0xFA:
		debug.Tracef("KBD: ACKNOWLEDGE")
	case 0xAA:
		debug.Tracef("KBD: SELF TEST PASSED")
	case 0xEE:
		debug.Tracef("KBD: ECHO")
	case 0xFE:
		debug.Tracef("KBD: RESEND")
	case 0x00, 0xFF:
		debug.Tracef("KBD: ERROR/OVERFLOW")
	default:
		return false
	}
	return true
}

// doShift handles the modifier family — shifts, control, CapsLock, Alt and
// the Windows keys. release reports whether a 0xF0 prefix preceded the
// code; extended reports an 0xE0 prefix. The right-hand Alt and Control
// keys conveniently share codes with their left-hand counterparts plus the
// extended prefix, so the extended path funnels through here too.
func (d *Decoder) doShift(key byte, release, extended bool) bool {
	// The CapsLock/Control swap jumper exchanges the two raw codes before
	// anything looks at them.
	if d.swap.Swapped() {
		switch key {
		case 0x58:
			key = 0x14
		case 0x14:
			key = 0x58
		}
	}

	switch key {
	case 0x12:
		d.leftShiftDown = !release
		return true
	case 0x59:
		d.rightShiftDown = !release
		return true

	case 0x14:
		// The extended (right-hand) control key is not implemented;
		// neither is a non-extended right control, which cannot be told
		// apart from the left one. Known limitation of the hardware.
		if extended {
			return false
		}
		d.controlDown = !release
		return true

	case 0x58:
		// CAPS LOCK, not SHIFT LOCK: toggles on press, affects letters
		// only. Release does nothing.
		if !release {
			d.capsLockOn = !d.capsLockOn
		}
		return true

	case 0x11:
		// Alt, both sides: tracked nowhere, sent nowhere.
		return true

	case 0x1F, 0x27:
		if extended && !release {
			debug.Tracef("KBD: Windows key pressed 0x%02X", key)
		}
		return false
	}

	return false
}

// doExtended handles one 0xE0 sequence: the PC/AT-era keys. Most of the
// numeric keypad is NOT extended — the exceptions are keypad "/" and
// keypad ENTER — but the arrow and editing keypads are extended entirely.
func (d *Decoder) doExtended() {
	key := d.src.WaitKey()
	release := false
	if key == prefixRelease {
		release = true
		key = d.src.WaitKey()
	}

	switch key {
	// Arrow keys.
	case 0x75:
		d.sendPress(scancode.KeyUp, release)
	case 0x72:
		d.sendPress(scancode.KeyDown, release)
	case 0x74:
		d.sendPress(scancode.KeyRight, release)
	case 0x6B:
		d.sendPress(scancode.KeyLeft, release)

	// Editing keypad.
	case 0x69:
		d.sendPress(scancode.KeyEnd, release)
	case 0x6C:
		d.sendPress(scancode.KeyHome, release)
	case 0x70:
		d.sendPress(scancode.KeyInsert, release)
	case 0x71:
		d.sendPress(scancode.KeyDelete, release)
	case 0x7A:
		d.sendPress(scancode.KeyPgDn, release)
	case 0x7D:
		d.sendPress(scancode.KeyPgUp, release)

	// The two keypad keys that do send extended codes.
	case 0x5A:
		d.sendPress(scancode.KeyKPEnter, release)
	case 0x4A:
		d.sendPress(scancode.KeyKPSlash, release)

	// Right Alt and right Control.
	case 0x11, 0x14:
		d.doShift(key, release, true)

	case 0x2F:
		d.sendPress(scancode.KeyMenu, release)

	// Windows keys.
	case 0x1F, 0x27:
		d.doShift(key, release, true)

	// PRINT SCREEN is a little bizarre: pressing it sends two extended
	// sequences, E0 12 then E0 7C (and E0 F0 12, E0 F0 7C on release).
	// Both halves are ignored.
	case 0x12, 0x7C:
		if !release {
			debug.Tracef("KBD: PRINT SCREEN pressed 0x%02X", key)
		}

	default:
		debug.Tracef("KBD: unknown extended key code E0 0x%02X", key)
	}
}

// doPauseBreak consumes the Pause/Break literal. The press sends the full
// eight-byte sequence E1 14 77 E1 F0 14 F0 77. The whole tail is read and
// thrown away whether it matches or not, so none of its bytes can be
// misread as ordinary key codes; only an exact match emits the one Break
// code. Release sends nothing at all.
func (d *Decoder) doPauseBreak() {
	match := true
	for _, want := range pauseTail {
		if d.src.WaitKey() != want {
			match = false
		}
	}
	if !match {
		debug.Tracef("KBD: malformed PAUSE/BREAK sequence dropped")
		return
	}
	debug.Tracef("KBD: PAUSE/BREAK pressed")
	d.send(scancode.KeyBreak)
}

// doFunction handles F1..F12, a contiguous output-code range, press only.
func (d *Decoder) doFunction(key byte, release bool) bool {
	switch key {
	case 0x05:
		d.sendPress(scancode.KeyF1, release)
	case 0x06:
		d.sendPress(scancode.KeyF2, release)
	case 0x04:
		d.sendPress(scancode.KeyF3, release)
	case 0x0C:
		d.sendPress(scancode.KeyF4, release)
	case 0x03:
		d.sendPress(scancode.KeyF5, release)
	case 0x0B:
		d.sendPress(scancode.KeyF6, release)
	case 0x83:
		d.sendPress(scancode.KeyF7, release)
	case 0x0A:
		d.sendPress(scancode.KeyF8, release)
	case 0x01:
		d.sendPress(scancode.KeyF9, release)
	case 0x09:
		d.sendPress(scancode.KeyF10, release)
	case 0x78:
		d.sendPress(scancode.KeyF11, release)
	case 0x07:
		d.sendPress(scancode.KeyF12, release)
	default:
		return false
	}
	return true
}

// doKeypad handles the numeric keypad keys that send plain single-byte
// codes — all of them except "/" and ENTER, which arrive extended.
func (d *Decoder) doKeypad(key byte, release bool) bool {
	switch key {
	case 0x70:
		d.sendPress(scancode.KeyKP0, release)
	case 0x69:
		d.sendPress(scancode.KeyKP1, release)
	case 0x72:
		d.sendPress(scancode.KeyKP2, release)
	case 0x7A:
		d.sendPress(scancode.KeyKP3, release)
	case 0x6B:
		d.sendPress(scancode.KeyKP4, release)
	case 0x73:
		d.sendPress(scancode.KeyKP5, release)
	case 0x74:
		d.sendPress(scancode.KeyKP6, release)
	case 0x6C:
		d.sendPress(scancode.KeyKP7, release)
	case 0x75:
		d.sendPress(scancode.KeyKP8, release)
	case 0x7D:
		d.sendPress(scancode.KeyKP9, release)
	case 0x71:
		d.sendPress(scancode.KeyKPDot, release)
	case 0x7C:
		d.sendPress(scancode.KeyKPStar, release)
	case 0x7B:
		d.sendPress(scancode.KeyKPMinus, release)
	case 0x79:
		d.sendPress(scancode.KeyKPPlus, release)
	default:
		return false
	}
	return true
}

// doASCII resolves a scan code through the translation table. The column
// depends on the shift and control keys; CapsLock upcases letters after
// the lookup. ASCII keys care only about the down event — a release is
// consumed but produces nothing.
func (d *Decoder) doASCII(key byte, release bool) bool {
	var shift uint8
	if d.leftShiftDown || d.rightShiftDown {
		shift = 1
	}
	if d.controlDown {
		shift |= 2
	}

	ch := scancode.Lookup(key, shift)
	if ch == 0 {
		return false
	}
	if release {
		return true
	}
	ch &= 0x7F
	if d.capsLockOn && ch >= 'a' && ch <= 'z' {
		ch &= 0xDF
	}
	d.send(ch)
	return true
}

func (d *Decoder) sendPress(code byte, release bool) {
	if !release {
		d.send(code)
	}
}

func (d *Decoder) send(b byte) {
	debug.Tracef("KBD: sending 0x%02X to host", b)
	d.snd.Send(b)
}
