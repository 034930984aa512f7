// internal/config/watch.go
package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the config file whenever it changes and hands every valid
// result to onChange. This is how the hardware option jumper becomes a
// runtime control: flipping swap_capslock_control in the
// file takes effect on the next key. Invalid intermediate states are
// logged and skipped. Watch blocks; run it in its own goroutine.
func Watch(path string, onChange func(APUConfig)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory, not the file: editors replace config files by
	// rename, which drops a plain file watch.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return err
	}
	want := filepath.Base(path)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != want {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				log.Printf("config reload failed: %v", err)
				continue
			}
			if err := Validate(cfg); err != nil {
				log.Printf("config reload rejected: %v", err)
				continue
			}
			Normalize(cfg)
			onChange(cfg.PS2APU)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watch error: %v", err)
		}
	}
}
