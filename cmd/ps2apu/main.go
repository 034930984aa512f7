// cmd/ps2apu/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	evdev "github.com/holoplot/go-evdev"

	"github.com/SpareTimeGizmos/PS2APU/internal/config"
	"github.com/SpareTimeGizmos/PS2APU/internal/debug"
	"github.com/SpareTimeGizmos/PS2APU/internal/decoder"
	"github.com/SpareTimeGizmos/PS2APU/internal/host"
	"github.com/SpareTimeGizmos/PS2APU/internal/ps2"
	"github.com/SpareTimeGizmos/PS2APU/internal/scancode"
)

// runtimeJumper is the software stand-in for the hardware option jumper:
// the config watcher flips it while the bridge runs.
type runtimeJumper struct {
	swapped atomic.Bool
}

func (j *runtimeJumper) Swapped() bool { return j.swapped.Load() }

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: ps2apu <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)
	apu := cfg.PS2APU

	// --------------------
	// Debug console
	// --------------------

	if apu.Debug.Enabled {
		if apu.Debug.Port != "" {
			if err := debug.EnableSerial(apu.Debug.Port, apu.Debug.Baud); err != nil {
				log.Fatalf("debug console failed: %v", err)
			}
		} else {
			debug.Enable(os.Stderr)
		}
		debug.Tracef("PS2 Keyboard Interface V%d", scancode.Version)
		debug.Tracef("Swap=%v, Strobe=%v", apu.SwapCapsLockControl, *apu.StrobeActiveHigh)
	}

	// --------------------
	// Option jumper (runtime via config watcher)
	// --------------------

	jumper := &runtimeJumper{}
	jumper.swapped.Store(apu.SwapCapsLockControl)

	go func() {
		if err := config.Watch(cfgPath, func(a config.APUConfig) {
			if jumper.swapped.Swap(a.SwapCapsLockControl) != a.SwapCapsLockControl {
				log.Printf("swap_capslock_control now %v", a.SwapCapsLockControl)
			}
		}); err != nil {
			log.Printf("config watch unavailable: %v", err)
		}
	}()

	// --------------------
	// Receiver (interrupt side)
	// --------------------

	rcv, err := ps2.New(ps2.Config{
		BufferSize: apu.BufferSize,
		Timeout:    time.Duration(apu.TimeoutMs) * time.Millisecond,
		ClockHz:    apu.ClockHz,
	})
	if err != nil {
		log.Fatalf("receiver build failed: %v", err)
	}

	// --------------------
	// Host bus + sink
	// --------------------

	ctx := context.Background()

	var sink host.Sink
	switch apu.Output.Sink {
	case "uinput":
		us, err := newUinputSink()
		if err != nil {
			log.Fatalf("uinput sink failed: %v", err)
		}
		defer us.Close()
		sink = us
	default:
		sink = host.WriterSink{W: os.Stdout}
	}

	bus := host.NewSimBus(*apu.StrobeActiveHigh)
	go bus.Serve(ctx, sink)

	snd, err := host.NewSender(bus, host.Config{
		StrobeActiveHigh: *apu.StrobeActiveHigh,
		Activity: func(busy bool) {
			debug.Tracef("BUS: busy=%v", busy)
		},
	})
	if err != nil {
		log.Fatalf("sender build failed: %v", err)
	}

	// --------------------
	// Keyboard capture
	// --------------------

	var wg sync.WaitGroup

	if apu.Input.Source == "evdev" {
		var kbds []*evdev.InputDevice
		if apu.Input.Device != "" {
			dev, err := evdev.Open(apu.Input.Device)
			if err != nil {
				log.Fatalf("open %s: %v", apu.Input.Device, err)
			}
			kbds = []*evdev.InputDevice{dev}
		} else {
			kbds, err = findKeyboards()
			if err != nil {
				log.Fatalf("find keyboards: %v", err)
			}
			if len(kbds) == 0 {
				log.Fatal("no keyboard devices found (are you in the 'input' group?)")
			}
		}

		fmt.Printf("ps2apu: bridging %d keyboard(s)\n", len(kbds))
		for _, kb := range kbds {
			name, _ := kb.Name()
			fmt.Printf("  %s\n", name)
		}

		for _, kb := range kbds {
			wg.Add(1)
			go feedKeyboard(kb, rcv, &wg)
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			fmt.Println("\nps2apu: shutting down")
			for _, kb := range kbds {
				kb.Close()
			}
			os.Exit(0)
		}()
	}

	// --------------------
	// Keyboard task
	// --------------------

	// Whenever the bridge starts we always report our version first.
	snd.Send(scancode.KeyVersion | scancode.Version)

	dec, err := decoder.New(rcv, snd, jumper)
	if err != nil {
		log.Fatalf("decoder build failed: %v", err)
	}
	dec.Run()

	// Run never returns; getting here means the keyboard task died.
	log.Fatal("keyboard task exited")
}
