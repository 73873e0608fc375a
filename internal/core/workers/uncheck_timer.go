package workers

import (
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
)

const DefaultAutoUncheckDelay = 3 * time.Second

type UncheckFunc func(habitID string, generation uint64)

// UncheckTimer arms one single-shot timer per completion. Timers for the same
// habit are independent and are never cancelled.
type UncheckTimer struct {
	sched       scheduler.Scheduler
	delay       time.Duration
	fire        UncheckFunc
	mu          sync.Mutex
	outstanding map[string]int
}

func NewUncheckTimer(sched scheduler.Scheduler, delay time.Duration, fire UncheckFunc) *UncheckTimer {
	if delay <= 0 {
		delay = DefaultAutoUncheckDelay
	}
	return &UncheckTimer{
		sched:       sched,
		delay:       delay,
		fire:        fire,
		outstanding: make(map[string]int),
	}
}

func (u *UncheckTimer) Arm(habitID string, generation uint64) {
	u.mu.Lock()
	u.outstanding[habitID]++
	u.mu.Unlock()

	u.sched.Schedule(u.delay, func() {
		u.mu.Lock()
		u.outstanding[habitID]--
		if u.outstanding[habitID] <= 0 {
			delete(u.outstanding, habitID)
		}
		u.mu.Unlock()

		u.fire(habitID, generation)
	})
}

// Outstanding returns the number of armed timers for a habit.
func (u *UncheckTimer) Outstanding(habitID string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.outstanding[habitID]
}
