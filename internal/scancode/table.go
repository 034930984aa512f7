// internal/scancode/table.go
package scancode

// Table maps PS/2 scan code set 2 to ASCII for the four modifier
// combinations the decoder distinguishes: plain, shift, control, and
// shift+control. A zero entry means the key has no ASCII meaning under
// that combination and nothing is forwarded. CapsLock is applied after
// lookup, to letters only, and never appears here.
//
// TAB, ENTER, BACKSPACE and ESC pass through as their literal ASCII codes.
// Keys that dispatch before the ASCII step (function keys, locks, the
// numeric keypad) keep all-zero rows.
var Table = [128][4]byte{
	0x0D: {0x09, 0x09, 0x09, 0x09}, // TAB
	0x0E: {'`', '~', 0, 0},
	0x15: {'q', 'Q', 0x11, 0x11},
	0x16: {'1', '!', 0, 0},
	0x1A: {'z', 'Z', 0x1A, 0x1A},
	0x1B: {'s', 'S', 0x13, 0x13},
	0x1C: {'a', 'A', 0x01, 0x01},
	0x1D: {'w', 'W', 0x17, 0x17},
	0x1E: {'2', '@', 0, 0},
	0x21: {'c', 'C', 0x03, 0x03},
	0x22: {'x', 'X', 0x18, 0x18},
	0x23: {'d', 'D', 0x04, 0x04},
	0x24: {'e', 'E', 0x05, 0x05},
	0x25: {'4', '$', 0, 0},
	0x26: {'3', '#', 0, 0},
	0x29: {' ', ' ', 0, 0}, // SPACE
	0x2A: {'v', 'V', 0x16, 0x16},
	0x2B: {'f', 'F', 0x06, 0x06},
	0x2C: {'t', 'T', 0x14, 0x14},
	0x2D: {'r', 'R', 0x12, 0x12},
	0x2E: {'5', '%', 0, 0},
	0x31: {'n', 'N', 0x0E, 0x0E},
	0x32: {'b', 'B', 0x02, 0x02},
	0x33: {'h', 'H', 0x08, 0x08},
	0x34: {'g', 'G', 0x07, 0x07},
	0x35: {'y', 'Y', 0x19, 0x19},
	0x36: {'6', '^', 0, 0x1E}, // ctrl-shift-6 is RS
	0x3A: {'m', 'M', 0x0D, 0x0D},
	0x3B: {'j', 'J', 0x0A, 0x0A},
	0x3C: {'u', 'U', 0x15, 0x15},
	0x3D: {'7', '&', 0, 0},
	0x3E: {'8', '*', 0, 0},
	0x41: {',', '<', 0, 0},
	0x42: {'k', 'K', 0x0B, 0x0B},
	0x43: {'i', 'I', 0x09, 0x09},
	0x44: {'o', 'O', 0x0F, 0x0F},
	0x45: {'0', ')', 0, 0},
	0x46: {'9', '(', 0, 0},
	0x49: {'.', '>', 0, 0},
	0x4A: {'/', '?', 0, 0},
	0x4B: {'l', 'L', 0x0C, 0x0C},
	0x4C: {';', ':', 0, 0},
	0x4D: {'p', 'P', 0x10, 0x10},
	0x4E: {'-', '_', 0, 0x1F}, // ctrl-shift-minus is US
	0x52: {'\'', '"', 0, 0},
	0x54: {'[', '{', 0x1B, 0x1B},
	0x55: {'=', '+', 0, 0},
	0x5A: {0x0D, 0x0D, 0x0D, 0x0D}, // ENTER
	0x5B: {']', '}', 0x1D, 0x1D},
	0x5D: {'\\', '|', 0x1C, 0x1C},
	0x66: {0x08, 0x08, 0x08, 0x08}, // BACKSPACE
	0x76: {0x1B, 0x1B, 0x1B, 0x1B}, // ESC
}

// Lookup resolves one scan code against the table. shift is the 2-bit
// column index: bit 0 set when either shift key is held, bit 1 when
// control is held. Codes at or above 0x80 have no table rows.
func Lookup(scan byte, shift uint8) byte {
	if scan >= 0x80 || shift > 3 {
		return 0
	}
	return Table[scan][shift]
}
