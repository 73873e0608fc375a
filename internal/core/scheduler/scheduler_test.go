package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var epoch = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func TestManual_Advance(t *testing.T) {
	t.Run("Fires only due callbacks", func(t *testing.T) {
		clock := NewManual(epoch)
		var fired []string

		clock.Schedule(300*time.Millisecond, func() { fired = append(fired, "edit") })
		clock.Schedule(3*time.Second, func() { fired = append(fired, "uncheck") })

		clock.Advance(299 * time.Millisecond)
		assert.Empty(t, fired)

		clock.Advance(1 * time.Millisecond)
		assert.Equal(t, []string{"edit"}, fired)
		assert.Equal(t, 1, clock.Pending())

		clock.Advance(5 * time.Second)
		assert.Equal(t, []string{"edit", "uncheck"}, fired)
		assert.Equal(t, epoch.Add(5300*time.Millisecond), clock.Now())
	})

	t.Run("Same due time fires in FIFO order", func(t *testing.T) {
		clock := NewManual(epoch)
		var fired []int

		for i := 0; i < 5; i++ {
			i := i
			clock.Schedule(time.Second, func() { fired = append(fired, i) })
		}

		clock.Advance(time.Second)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
	})

	t.Run("Clock reads the due time inside a callback", func(t *testing.T) {
		clock := NewManual(epoch)
		var seen time.Time

		clock.Schedule(2*time.Second, func() { seen = clock.Now() })
		clock.Advance(10 * time.Second)

		assert.Equal(t, epoch.Add(2*time.Second), seen)
	})

	t.Run("Nested schedules inside the window fire", func(t *testing.T) {
		clock := NewManual(epoch)
		count := 0

		clock.Schedule(time.Second, func() {
			count++
			clock.Schedule(time.Second, func() { count++ })
		})

		clock.Advance(3 * time.Second)
		assert.Equal(t, 2, count)
	})
}

func TestManual_Stop(t *testing.T) {
	clock := NewManual(epoch)
	fired := false

	timer := clock.Schedule(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "Second stop reports false")

	clock.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, clock.Pending())

	done := clock.Schedule(time.Second, func() {})
	clock.Advance(time.Second)
	assert.False(t, done.Stop(), "Stopping a fired timer reports false")
}

func TestRealScheduler(t *testing.T) {
	s := NewRealScheduler()

	var wg sync.WaitGroup
	wg.Add(1)
	s.Schedule(10*time.Millisecond, wg.Done)
	wg.Wait()

	stopped := s.Schedule(time.Hour, func() { t.Error("stopped timer fired") })
	assert.True(t, stopped.Stop())

	assert.WithinDuration(t, time.Now(), s.Now(), time.Second)
}
