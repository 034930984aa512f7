// internal/ps2/timer.go
package ps2

import "time"

// guardTimer abstracts the countdown timer behind the timeout guard so the
// receiver can be tested without waiting on wall-clock time.
type guardTimer interface {
	// Arm (re)starts the countdown. A second Arm before expiry restarts it.
	Arm(d time.Duration)
	// Disarm cancels a pending countdown. A countdown that already fired
	// may still deliver its callback; the callback re-checks FlagBusy.
	Disarm()
}

// clockTimer is the production guardTimer built on time.AfterFunc.
type clockTimer struct {
	fn func()
	t  *time.Timer
}

func newClockTimer(fn func()) *clockTimer {
	return &clockTimer{fn: fn}
}

func (c *clockTimer) Arm(d time.Duration) {
	if c.t != nil {
		c.t.Stop()
	}
	c.t = time.AfterFunc(d, c.fn)
}

func (c *clockTimer) Disarm() {
	if c.t != nil {
		c.t.Stop()
	}
}
