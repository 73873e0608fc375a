package workers

import (
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
	"github.com/stretchr/testify/assert"
)

type firing struct {
	id  string
	gen uint64
}

func TestUncheckTimer(t *testing.T) {
	clock := scheduler.NewManual(epoch)
	var fired []firing

	u := NewUncheckTimer(clock, 3*time.Second, func(id string, gen uint64) {
		fired = append(fired, firing{id, gen})
	})

	u.Arm("a", 1)
	clock.Advance(time.Second)
	u.Arm("a", 2)
	u.Arm("b", 3)

	assert.Equal(t, 2, u.Outstanding("a"))
	assert.Equal(t, 1, u.Outstanding("b"))

	clock.Advance(2 * time.Second)
	assert.Equal(t, []firing{{"a", 1}}, fired, "Later completion must not cancel the earlier timer")

	clock.Advance(time.Second)
	assert.Equal(t, []firing{{"a", 1}, {"a", 2}, {"b", 3}}, fired)
	assert.Equal(t, 0, u.Outstanding("a"))
	assert.Equal(t, 0, clock.Pending())
}
