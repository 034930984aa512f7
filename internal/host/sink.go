// internal/host/sink.go
package host

import (
	"fmt"
	"io"

	"github.com/SpareTimeGizmos/PS2APU/internal/scancode"
)

// Sink consumes output bytes on the host side of the bus.
type Sink interface {
	Consume(b byte) error
}

// WriterSink renders the output stream onto an io.Writer: printable ASCII
// verbatim, control characters and the 0x80..0xFF special codes as
// bracketed names. Useful as the default host when the bridge runs on a
// plain terminal.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Consume(b byte) error {
	var err error
	switch {
	case b >= 0x20 && b < 0x7F:
		_, err = fmt.Fprintf(s.W, "%c", b)
	case b == 0x09 || b == 0x0A:
		_, err = fmt.Fprintf(s.W, "%c", b)
	case b == 0x0D:
		_, err = fmt.Fprintln(s.W)
	case b&0xF0 == scancode.KeyVersion:
		_, err = fmt.Fprintf(s.W, "<VERSION %d>", b&0x0F)
	default:
		_, err = fmt.Fprintf(s.W, "<%s>", codeName(b))
	}
	return err
}

func codeName(b byte) string {
	if n, ok := codeNames[b]; ok {
		return n
	}
	return fmt.Sprintf("0x%02X", b)
}

var codeNames = map[byte]string{
	0x08: "BS", 0x1B: "ESC", 0x7F: "DEL",
	scancode.KeyBreak: "BREAK",
	scancode.KeyF1:    "F1", scancode.KeyF2: "F2", scancode.KeyF3: "F3",
	scancode.KeyF4: "F4", scancode.KeyF5: "F5", scancode.KeyF6: "F6",
	scancode.KeyF7: "F7", scancode.KeyF8: "F8", scancode.KeyF9: "F9",
	scancode.KeyF10: "F10", scancode.KeyF11: "F11", scancode.KeyF12: "F12",
	scancode.KeyScrollLock: "SCRLCK",
	scancode.KeyNumLock:    "NUMLOCK",
	scancode.KeyUp:         "UP",
	scancode.KeyDown:       "DOWN",
	scancode.KeyRight:      "RIGHT",
	scancode.KeyLeft:       "LEFT",
	scancode.KeyMenu:       "MENU",
	scancode.KeyEnd:        "END",
	scancode.KeyHome:       "HOME",
	scancode.KeyInsert:     "INSERT",
	scancode.KeyPgDn:       "PGDN",
	scancode.KeyPgUp:       "PGUP",
	scancode.KeyDelete:     "DELETE",
	scancode.KeyKP0:        "KP0", scancode.KeyKP1: "KP1",
	scancode.KeyKP2: "KP2", scancode.KeyKP3: "KP3",
	scancode.KeyKP4: "KP4", scancode.KeyKP5: "KP5",
	scancode.KeyKP6: "KP6", scancode.KeyKP7: "KP7",
	scancode.KeyKP8: "KP8", scancode.KeyKP9: "KP9",
	scancode.KeyKPDot: "KP.", scancode.KeyKPPlus: "KP+",
	scancode.KeyKPSlash: "KP/", scancode.KeyKPStar: "KP*",
	scancode.KeyKPMinus: "KP-", scancode.KeyKPEnter: "KPENTER",
}
