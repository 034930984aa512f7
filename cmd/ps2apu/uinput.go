// cmd/ps2apu/uinput.go
package main

import (
	"fmt"

	"github.com/bendahl/uinput"

	"github.com/SpareTimeGizmos/PS2APU/internal/debug"
	"github.com/SpareTimeGizmos/PS2APU/internal/scancode"
)

// uinputSink replays the bridge's output stream into a virtual Linux
// keyboard. Lowercase, uppercase (via shift), control characters with a
// direct key, and the special-code block all map to key presses; anything
// without a sensible Linux key is traced and dropped.
type uinputSink struct {
	kbd uinput.Keyboard
}

func newUinputSink() (*uinputSink, error) {
	kbd, err := uinput.CreateKeyboard("/dev/uinput", []byte("ps2apu"))
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard: %w", err)
	}
	return &uinputSink{kbd: kbd}, nil
}

func (s *uinputSink) Close() error { return s.kbd.Close() }

func (s *uinputSink) Consume(b byte) error {
	if b&0xF0 == scancode.KeyVersion {
		debug.Tracef("HOST: firmware version %d", b&0x0F)
		return nil
	}

	if k, ok := plainKeys[b]; ok {
		return s.kbd.KeyPress(k)
	}
	if k, ok := shiftedKeys[b]; ok {
		if err := s.kbd.KeyDown(uinput.KeyLeftshift); err != nil {
			return err
		}
		if err := s.kbd.KeyPress(k); err != nil {
			s.kbd.KeyUp(uinput.KeyLeftshift)
			return err
		}
		return s.kbd.KeyUp(uinput.KeyLeftshift)
	}

	debug.Tracef("HOST: no uinput mapping for 0x%02X", b)
	return nil
}

// plainKeys maps output bytes that need no modifier.
var plainKeys = map[byte]int{
	'a': uinput.KeyA, 'b': uinput.KeyB, 'c': uinput.KeyC, 'd': uinput.KeyD,
	'e': uinput.KeyE, 'f': uinput.KeyF, 'g': uinput.KeyG, 'h': uinput.KeyH,
	'i': uinput.KeyI, 'j': uinput.KeyJ, 'k': uinput.KeyK, 'l': uinput.KeyL,
	'm': uinput.KeyM, 'n': uinput.KeyN, 'o': uinput.KeyO, 'p': uinput.KeyP,
	'q': uinput.KeyQ, 'r': uinput.KeyR, 's': uinput.KeyS, 't': uinput.KeyT,
	'u': uinput.KeyU, 'v': uinput.KeyV, 'w': uinput.KeyW, 'x': uinput.KeyX,
	'y': uinput.KeyY, 'z': uinput.KeyZ,

	'1': uinput.Key1, '2': uinput.Key2, '3': uinput.Key3, '4': uinput.Key4,
	'5': uinput.Key5, '6': uinput.Key6, '7': uinput.Key7, '8': uinput.Key8,
	'9': uinput.Key9, '0': uinput.Key0,

	' ':  uinput.KeySpace,
	'-':  uinput.KeyMinus,
	'=':  uinput.KeyEqual,
	'[':  uinput.KeyLeftbrace,
	']':  uinput.KeyRightbrace,
	';':  uinput.KeySemicolon,
	'\'': uinput.KeyApostrophe,
	'`':  uinput.KeyGrave,
	'\\': uinput.KeyBackslash,
	',':  uinput.KeyComma,
	'.':  uinput.KeyDot,
	'/':  uinput.KeySlash,

	0x08: uinput.KeyBackspace,
	0x09: uinput.KeyTab,
	0x0D: uinput.KeyEnter,
	0x1B: uinput.KeyEsc,

	scancode.KeyF1: uinput.KeyF1, scancode.KeyF2: uinput.KeyF2,
	scancode.KeyF3: uinput.KeyF3, scancode.KeyF4: uinput.KeyF4,
	scancode.KeyF5: uinput.KeyF5, scancode.KeyF6: uinput.KeyF6,
	scancode.KeyF7: uinput.KeyF7, scancode.KeyF8: uinput.KeyF8,
	scancode.KeyF9: uinput.KeyF9, scancode.KeyF10: uinput.KeyF10,
	scancode.KeyF11: uinput.KeyF11, scancode.KeyF12: uinput.KeyF12,

	scancode.KeyUp:    uinput.KeyUp,
	scancode.KeyDown:  uinput.KeyDown,
	scancode.KeyRight: uinput.KeyRight,
	scancode.KeyLeft:  uinput.KeyLeft,

	scancode.KeyEnd:    uinput.KeyEnd,
	scancode.KeyHome:   uinput.KeyHome,
	scancode.KeyInsert: uinput.KeyInsert,
	scancode.KeyPgDn:   uinput.KeyPagedown,
	scancode.KeyPgUp:   uinput.KeyPageup,
	scancode.KeyDelete: uinput.KeyDelete,

	scancode.KeyScrollLock: uinput.KeyScrolllock,
	scancode.KeyNumLock:    uinput.KeyNumlock,
	scancode.KeyMenu:       uinput.KeyCompose,
	scancode.KeyBreak:      uinput.KeyPause,

	scancode.KeyKP0: uinput.KeyKp0, scancode.KeyKP1: uinput.KeyKp1,
	scancode.KeyKP2: uinput.KeyKp2, scancode.KeyKP3: uinput.KeyKp3,
	scancode.KeyKP4: uinput.KeyKp4, scancode.KeyKP5: uinput.KeyKp5,
	scancode.KeyKP6: uinput.KeyKp6, scancode.KeyKP7: uinput.KeyKp7,
	scancode.KeyKP8: uinput.KeyKp8, scancode.KeyKP9: uinput.KeyKp9,
	scancode.KeyKPDot:   uinput.KeyKpdot,
	scancode.KeyKPPlus:  uinput.KeyKpplus,
	scancode.KeyKPSlash: uinput.KeyKpslash,
	scancode.KeyKPStar:  uinput.KeyKpasterisk,
	scancode.KeyKPMinus: uinput.KeyKpminus,
	scancode.KeyKPEnter: uinput.KeyKpenter,
}

// shiftedKeys maps output bytes that need the shift modifier held.
var shiftedKeys = map[byte]int{
	'A': uinput.KeyA, 'B': uinput.KeyB, 'C': uinput.KeyC, 'D': uinput.KeyD,
	'E': uinput.KeyE, 'F': uinput.KeyF, 'G': uinput.KeyG, 'H': uinput.KeyH,
	'I': uinput.KeyI, 'J': uinput.KeyJ, 'K': uinput.KeyK, 'L': uinput.KeyL,
	'M': uinput.KeyM, 'N': uinput.KeyN, 'O': uinput.KeyO, 'P': uinput.KeyP,
	'Q': uinput.KeyQ, 'R': uinput.KeyR, 'S': uinput.KeyS, 'T': uinput.KeyT,
	'U': uinput.KeyU, 'V': uinput.KeyV, 'W': uinput.KeyW, 'X': uinput.KeyX,
	'Y': uinput.KeyY, 'Z': uinput.KeyZ,

	'!': uinput.Key1, '@': uinput.Key2, '#': uinput.Key3, '$': uinput.Key4,
	'%': uinput.Key5, '^': uinput.Key6, '&': uinput.Key7, '*': uinput.Key8,
	'(': uinput.Key9, ')': uinput.Key0,

	'_': uinput.KeyMinus,
	'+': uinput.KeyEqual,
	'{': uinput.KeyLeftbrace,
	'}': uinput.KeyRightbrace,
	':': uinput.KeySemicolon,
	'"': uinput.KeyApostrophe,
	'~': uinput.KeyGrave,
	'|': uinput.KeyBackslash,
	'<': uinput.KeyComma,
	'>': uinput.KeyDot,
	'?': uinput.KeySlash,
}
