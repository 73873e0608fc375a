package workers

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(t *testing.T, label string) *domain.HabitEntry {
	e, err := domain.NewHabitEntry(label, epoch)
	require.NoError(t, err)
	return e
}

func TestUndoBuffer(t *testing.T) {
	t.Run("Take returns the offered entry once", func(t *testing.T) {
		clock := scheduler.NewManual(epoch)
		buf := NewUndoBuffer(clock, 5*time.Second)
		read := newEntry(t, "Read")

		buf.Offer(read)
		assert.True(t, buf.Available())

		got, ok := buf.Take()
		assert.True(t, ok)
		assert.Equal(t, read.ID, got.ID)

		_, ok = buf.Take()
		assert.False(t, ok)
		assert.False(t, buf.Available())
	})

	t.Run("Entry expires after the window", func(t *testing.T) {
		clock := scheduler.NewManual(epoch)
		buf := NewUndoBuffer(clock, 5*time.Second)
		var expired *domain.HabitEntry
		buf.OnExpire(func(e *domain.HabitEntry) { expired = e })

		read := newEntry(t, "Read")
		buf.Offer(read)

		clock.Advance(4999 * time.Millisecond)
		assert.True(t, buf.Available())

		clock.Advance(time.Millisecond)
		assert.False(t, buf.Available())
		_, ok := buf.Take()
		assert.False(t, ok)
		require.NotNil(t, expired)
		assert.Equal(t, read.ID, expired.ID)
	})

	t.Run("Second offer discards the first and owns a fresh window", func(t *testing.T) {
		clock := scheduler.NewManual(epoch)
		buf := NewUndoBuffer(clock, 5*time.Second)

		first := newEntry(t, "Read")
		second := newEntry(t, "Run")

		buf.Offer(first)
		clock.Advance(3 * time.Second)
		buf.Offer(second)

		clock.Advance(2 * time.Second)
		assert.True(t, buf.Available(), "The first offer's timer must not clear the second entry")

		got, ok := buf.Take()
		assert.True(t, ok)
		assert.Equal(t, second.ID, got.ID)
	})

	t.Run("Timer after take is a no-op", func(t *testing.T) {
		clock := scheduler.NewManual(epoch)
		buf := NewUndoBuffer(clock, 5*time.Second)
		hookCalled := false
		buf.OnExpire(func(*domain.HabitEntry) { hookCalled = true })

		buf.Offer(newEntry(t, "Read"))
		buf.Take()
		clock.Advance(10 * time.Second)

		assert.False(t, hookCalled)
	})
}
