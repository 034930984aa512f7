// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	PS2APU APUConfig `yaml:"ps2apu"`
}

// ---- BRIDGE ----

type APUConfig struct {
	// BufferSize is the key buffer capacity; must be a power of two.
	BufferSize int `yaml:"buffer_size"`

	// SwapCapsLockControl exchanges the CapsLock and left-Control scan
	// codes. The external jumper of the reference hardware; changes to
	// the file are picked up at runtime by the watcher.
	SwapCapsLockControl bool `yaml:"swap_capslock_control"`

	// StrobeActiveHigh selects the data-ready strobe polarity.
	// Defaults to true.
	StrobeActiveHigh *bool `yaml:"strobe_active_high"`

	// ClockHz is the nominal keyboard clock lower bound; it sizes the
	// frame timeout when TimeoutMs is zero.
	ClockHz int `yaml:"clock_hz"`

	// TimeoutMs overrides the derived frame timeout. 0 = derive.
	TimeoutMs int `yaml:"timeout_ms"`

	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Debug  DebugConfig  `yaml:"debug"`
}

// ---- INPUT ----

type InputConfig struct {
	// Source selects where scan codes come from: "evdev" captures real
	// keyboards, "none" expects frames to be fed programmatically.
	Source string `yaml:"source"`

	// Device optionally pins one /dev/input/eventN path; empty means
	// every detected keyboard.
	Device string `yaml:"device"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	// Sink selects the host side: "stdout" or "uinput".
	Sink string `yaml:"sink"`
}

// ---- DEBUG ----

type DebugConfig struct {
	Enabled bool `yaml:"enabled"`

	// Port is an optional RS-232 device for trace output; empty means
	// stderr.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// Load reads and parses one YAML config file. It does not validate.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
