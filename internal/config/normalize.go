// internal/config/normalize.go
package config

// Reference defaults: a 16-entry buffer and a 12 kHz nominal clock, giving
// a derived frame timeout of about 2 ms.
const (
	defaultBufferSize = 16
	defaultClockHz    = 12000
	defaultBaud       = 9600
)

// Normalize applies post-validation defaulting.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	a := &cfg.PS2APU

	if a.BufferSize == 0 {
		a.BufferSize = defaultBufferSize
	}
	if a.ClockHz == 0 {
		a.ClockHz = defaultClockHz
	}
	if a.StrobeActiveHigh == nil {
		t := true
		a.StrobeActiveHigh = &t
	}
	if a.Input.Source == "" {
		a.Input.Source = "evdev"
	}
	if a.Output.Sink == "" {
		a.Output.Sink = "stdout"
	}
	if a.Debug.Baud == 0 {
		a.Debug.Baud = defaultBaud
	}

	// Timeout derivation happens in the receiver, which owns the frame
	// geometry. Nothing else is normalized here.
}
