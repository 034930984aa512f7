// internal/decoder/types.go
package decoder

// Source yields scan-code stream bytes. WaitKey blocks, forever if
// necessary, until the keyboard produces one.
type Source interface {
	WaitKey() byte
}

// Sender delivers one resolved output byte to the host and blocks until
// the host has consumed it. Strictly one byte in flight.
type Sender interface {
	Send(b byte)
}

// Jumper reports whether the CapsLock/Control swap option is on. It is
// read per key so a runtime jumper (config watcher) takes effect
// immediately.
type Jumper interface {
	Swapped() bool
}

// StaticJumper is a Jumper fixed at construction time.
type StaticJumper bool

func (j StaticJumper) Swapped() bool { return bool(j) }
