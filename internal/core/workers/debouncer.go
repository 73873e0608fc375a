package workers

import (
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
)

const DefaultEditQuietPeriod = 300 * time.Millisecond

// Debouncer is a trailing-edge debounce: only the last call within the quiet
// period runs.
type Debouncer struct {
	mu    sync.Mutex
	sched scheduler.Scheduler
	delay time.Duration
	timer scheduler.Timer
}

func NewDebouncer(sched scheduler.Scheduler, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultEditQuietPeriod
	}
	return &Debouncer{
		sched: sched,
		delay: delay,
	}
}

func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	var t scheduler.Timer
	t = d.sched.Schedule(d.delay, func() {
		d.mu.Lock()
		if d.timer != t {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
	d.timer = t
}

// Cancel drops the pending call without running it and reports whether one
// was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
