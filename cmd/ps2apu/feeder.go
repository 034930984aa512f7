// cmd/ps2apu/feeder.go
package main

import (
	"fmt"
	"log"
	"sync"

	evdev "github.com/holoplot/go-evdev"

	"github.com/SpareTimeGizmos/PS2APU/internal/ps2"
)

// findKeyboards enumerates /dev/input/ devices and returns those that have
// both KEY_A and KEY_ENTER capabilities (i.e., physical keyboards).
func findKeyboards() ([]*evdev.InputDevice, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	var kbds []*evdev.InputDevice
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			continue
		}

		hasA := false
		hasEnter := false
		for _, c := range dev.CapableEvents(evdev.EV_KEY) {
			if c == evdev.KEY_A {
				hasA = true
			}
			if c == evdev.KEY_ENTER {
				hasEnter = true
			}
		}

		if hasA && hasEnter {
			kbds = append(kbds, dev)
		} else {
			dev.Close()
		}
	}

	return kbds, nil
}

// feedKeyboard reads key events from one captured device and clocks the
// equivalent set 2 wire traffic into the receiver, frame by frame. Repeats
// (value 2) re-send the press sequence, which is exactly what a PS/2
// keyboard's typematic repeat does. Exits when the device closes.
func feedKeyboard(dev *evdev.InputDevice, rcv *ps2.Receiver, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			name, _ := dev.Name()
			log.Printf("feeder: %s: %v", name, err)
			return
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}

		if ev.Code == evdev.KEY_PAUSE {
			if ev.Value == 1 {
				for _, b := range pausePress {
					ps2.SendFrame(rcv, b)
				}
			}
			continue
		}

		sk, ok := scanKeyMap[ev.Code]
		if !ok {
			continue
		}

		switch ev.Value {
		case 1, 2: // press, repeat
			if sk.extended {
				ps2.SendFrame(rcv, 0xE0)
			}
			ps2.SendFrame(rcv, sk.code)
		case 0: // release
			if sk.extended {
				ps2.SendFrame(rcv, 0xE0)
			}
			ps2.SendFrame(rcv, 0xF0)
			ps2.SendFrame(rcv, sk.code)
		}
	}
}
