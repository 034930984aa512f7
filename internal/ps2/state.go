// internal/ps2/state.go
package ps2

// State is the bit receiver's position within one PS/2 frame. The machine
// advances by exactly one state per falling clock edge; stateError is a
// sink that only the timeout guard or Reinitialize can leave.
type State uint8

const (
	stateIdle State = iota // waiting for a start bit
	stateBit0              // data bits, LSB first
	stateBit1
	stateBit2
	stateBit3
	stateBit4
	stateBit5
	stateBit6
	stateBit7
	stateParity
	stateStop
	stateError
)

func (s State) String() string {
	switch {
	case s == stateIdle:
		return "idle"
	case s >= stateBit0 && s <= stateBit7:
		return "bit" + string(rune('0'+s-stateBit0))
	case s == stateParity:
		return "parity"
	case s == stateStop:
		return "stop"
	case s == stateError:
		return "error"
	}
	return "invalid"
}
