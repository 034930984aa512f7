// internal/ps2/flags.go
package ps2

// Flags is the receiver status byte. Busy tracks a frame in flight; the
// high-nibble error bits are sticky and survive until an explicit
// Reinitialize. They are never cleared piecemeal.
type Flags uint8

const (
	// FlagBusy is set between an accepted start bit and an accepted stop bit.
	FlagBusy Flags = 1 << 0

	// FlagOverflow — enqueue attempted against a full buffer.
	FlagOverflow Flags = 1 << 4
	// FlagParity — received parity bit disagrees with computed odd parity.
	FlagParity Flags = 1 << 5
	// FlagFraming — start or stop bit sampled at the wrong level.
	FlagFraming Flags = 1 << 6
	// FlagTimeout — frame not completed within the guard bound.
	FlagTimeout Flags = 1 << 7
)

// ErrorBits masks the four sticky error flags.
const ErrorBits Flags = FlagOverflow | FlagParity | FlagFraming | FlagTimeout
