package workers

import (
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
)

const DefaultUndoWindow = 5 * time.Second

// UndoBuffer keeps the most recently deleted entry for a limited window.
// Offering a new entry discards the previous one for good.
type UndoBuffer struct {
	mu       sync.Mutex
	sched    scheduler.Scheduler
	window   time.Duration
	entry    *domain.HabitEntry
	gen      uint64
	onExpire func(entry *domain.HabitEntry)
}

func NewUndoBuffer(sched scheduler.Scheduler, window time.Duration) *UndoBuffer {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	return &UndoBuffer{
		sched:  sched,
		window: window,
	}
}

// OnExpire registers a hook run when a buffered entry is dropped by its timer.
func (b *UndoBuffer) OnExpire(fn func(entry *domain.HabitEntry)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onExpire = fn
}

func (b *UndoBuffer) Offer(entry *domain.HabitEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	gen := b.gen
	b.entry = entry

	// Expiry timers are never stopped; a stale one sees a newer generation
	// and does nothing.
	b.sched.Schedule(b.window, func() {
		b.mu.Lock()
		if b.gen != gen || b.entry == nil {
			b.mu.Unlock()
			return
		}
		dropped := b.entry
		b.entry = nil
		hook := b.onExpire
		b.mu.Unlock()

		if hook != nil {
			hook(dropped)
		}
	})
}

func (b *UndoBuffer) Take() (*domain.HabitEntry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.entry == nil {
		return nil, false
	}
	entry := b.entry
	b.entry = nil
	b.gen++
	return entry, true
}

func (b *UndoBuffer) Available() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.entry != nil
}
