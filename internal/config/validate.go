// internal/config/validate.go
package config

import "fmt"

// PS/2 device-side clock bounds in Hz. Keyboards are specified to clock
// between 10 and 16.7 kHz.
const (
	minClockHz = 10000
	maxClockHz = 16700
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	a := &cfg.PS2APU

	// ------------------------------------------------------------
	// KEY BUFFER GEOMETRY
	// ------------------------------------------------------------

	if a.BufferSize != 0 {
		if a.BufferSize < 4 || a.BufferSize&(a.BufferSize-1) != 0 {
			return fmt.Errorf(
				"buffer_size %d must be a power of two >= 4",
				a.BufferSize,
			)
		}
	}

	// ------------------------------------------------------------
	// TIMING
	// ------------------------------------------------------------

	if a.ClockHz != 0 && (a.ClockHz < minClockHz || a.ClockHz > maxClockHz) {
		return fmt.Errorf(
			"clock_hz %d outside the PS/2 range %d..%d",
			a.ClockHz, minClockHz, maxClockHz,
		)
	}

	if a.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms %d must not be negative", a.TimeoutMs)
	}

	// ------------------------------------------------------------
	// INPUT / OUTPUT SELECTION
	// ------------------------------------------------------------

	switch a.Input.Source {
	case "", "evdev", "none":
	default:
		return fmt.Errorf("input source %q not one of evdev, none", a.Input.Source)
	}

	if a.Input.Device != "" && a.Input.Source == "none" {
		return fmt.Errorf("input device %q set but source is none", a.Input.Device)
	}

	switch a.Output.Sink {
	case "", "stdout", "uinput":
	default:
		return fmt.Errorf("output sink %q not one of stdout, uinput", a.Output.Sink)
	}

	// ------------------------------------------------------------
	// DEBUG CONSOLE
	// ------------------------------------------------------------

	if a.Debug.Baud < 0 {
		return fmt.Errorf("debug baud %d must not be negative", a.Debug.Baud)
	}
	if a.Debug.Port != "" && !a.Debug.Enabled {
		return fmt.Errorf("debug port %q set but debug is not enabled", a.Debug.Port)
	}

	return nil
}
