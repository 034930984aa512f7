// internal/debug/debug.go

// Package debug is the diagnostic trace console. It is off by default and
// costs one atomic load per call site when disabled. Enabled, it mirrors
// the firmware's serial debug port: every decoder decision and receiver
// recovery is narrated on stderr or an RS-232 device.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/goburrow/serial"
)

var (
	enabled atomic.Bool
	out     *log.Logger
)

// Enable routes trace output to w (typically os.Stderr).
func Enable(w io.Writer) {
	out = log.New(w, "", log.Ltime|log.Lmicroseconds)
	enabled.Store(true)
}

// EnableSerial routes trace output to an RS-232 port.
func EnableSerial(port string, baud int) error {
	p, err := serial.Open(&serial.Config{
		Address:  port,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
	})
	if err != nil {
		return fmt.Errorf("debug: open serial port %s: %w", port, err)
	}
	Enable(p)
	return nil
}

// Disable turns tracing off. In-flight Tracef calls may still emit.
func Disable() {
	enabled.Store(false)
}

// Tracef emits one trace line when tracing is enabled.
func Tracef(format string, args ...any) {
	if !enabled.Load() {
		return
	}
	out.Printf(format, args...)
}

func init() {
	out = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
}
