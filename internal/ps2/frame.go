// internal/ps2/frame.go
package ps2

import "math/bits"

// OddParity returns the parity bit a keyboard would transmit for b: the bit
// that makes the total count of ones across data plus parity odd.
func OddParity(b byte) bool {
	return bits.OnesCount8(b)%2 == 0
}

// Frame expands one byte into the 11 data-line levels of a well-formed PS/2
// frame: start (low), eight data bits LSB first, odd parity, stop (high).
func Frame(b byte) [frameBits]bool {
	var f [frameBits]bool
	f[0] = false
	for i := 0; i < 8; i++ {
		f[1+i] = b&(1<<i) != 0
	}
	f[9] = OddParity(b)
	f[10] = true
	return f
}

// SendFrame clocks one well-formed frame into the receiver, edge by edge.
// Feeders that synthesize traffic (and tests) use this; real hardware would
// drive OnClockEdge from the clock line instead.
func SendFrame(r *Receiver, b byte) {
	for _, level := range Frame(b) {
		r.OnClockEdge(level)
	}
}
