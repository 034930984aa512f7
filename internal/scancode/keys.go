// internal/scancode/keys.go
package scancode

// Version is the firmware version reported to the host at startup.
const Version = 4

// Output codes for keys with no ASCII equivalent. Everything below 0x80 on
// the host bus is plain ASCII; these fill 0x80..0xFF. Translation of these
// into escape sequences (VT52 keypad application mode and the like) is the
// host's job, which is why even the numeric keypad sends special codes.
const (
	KeyBreak byte = 0x80 // PAUSE/BREAK

	KeyF1  byte = 0x81
	KeyF2  byte = 0x82
	KeyF3  byte = 0x83
	KeyF4  byte = 0x84
	KeyF5  byte = 0x85
	KeyF6  byte = 0x86
	KeyF7  byte = 0x87
	KeyF8  byte = 0x88
	KeyF9  byte = 0x89
	KeyF10 byte = 0x8A
	KeyF11 byte = 0x8B
	KeyF12 byte = 0x8C

	KeyScrollLock byte = 0x8D
	KeyNumLock    byte = 0x8E

	KeyUp    byte = 0x90
	KeyDown  byte = 0x91
	KeyRight byte = 0x92
	KeyLeft  byte = 0x93

	// The MENU key sits right of the spacebar; don't confuse it with the
	// Windows keys.
	KeyMenu byte = 0x95

	KeyEnd    byte = 0x96
	KeyHome   byte = 0x97
	KeyInsert byte = 0x98
	KeyPgDn   byte = 0x99
	KeyPgUp   byte = 0x9A
	KeyDelete byte = 0x9B

	KeyKP0     byte = 0xA0
	KeyKP1     byte = 0xA1
	KeyKP2     byte = 0xA2
	KeyKP3     byte = 0xA3
	KeyKP4     byte = 0xA4
	KeyKP5     byte = 0xA5
	KeyKP6     byte = 0xA6
	KeyKP7     byte = 0xA7
	KeyKP8     byte = 0xA8
	KeyKP9     byte = 0xA9
	KeyKPDot   byte = 0xAA
	KeyKPPlus  byte = 0xAB
	KeyKPSlash byte = 0xAC
	KeyKPStar  byte = 0xAD
	KeyKPMinus byte = 0xAE
	KeyKPEnter byte = 0xAF

	// KeyVersion is reserved: at startup the bridge sends exactly one
	// KeyVersion|Version byte so the host knows what it is talking to.
	KeyVersion byte = 0xC0
)
