// internal/ps2/buffer.go
package ps2

import "fmt"

// keyBuffer is the circular queue between the edge handler (producer) and
// the decoder task (consumer). Capacity is a power of two so cursor math is
// a mask; one slot is kept in reserve so the full and empty conditions are
// never ambiguous. The buffer itself is not synchronized — callers hold the
// receiver's interrupt mask around every access.
type keyBuffer struct {
	data []byte
	mask int
	get  int
	put  int
}

func newKeyBuffer(capacity int) (*keyBuffer, error) {
	if capacity < 4 || capacity&(capacity-1) != 0 {
		return nil, fmt.Errorf("ps2: buffer capacity %d must be a power of two >= 4", capacity)
	}
	return &keyBuffer{
		data: make([]byte, capacity),
		mask: capacity - 1,
	}, nil
}

// putByte stores one byte. It reports false, touching nothing, when the
// queue is full: held entries are never overwritten.
func (b *keyBuffer) putByte(v byte) bool {
	next := (b.put + 1) & b.mask
	if next == b.get {
		return false
	}
	b.data[b.put] = v
	b.put = next
	return true
}

// getByte removes the oldest byte; ok is false when the queue is empty.
func (b *keyBuffer) getByte() (v byte, ok bool) {
	if b.get == b.put {
		return 0, false
	}
	v = b.data[b.get]
	b.get = (b.get + 1) & b.mask
	return v, true
}

// reset discards all held bytes.
func (b *keyBuffer) reset() {
	b.get = 0
	b.put = 0
}
