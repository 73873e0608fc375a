// Package scheduler provides the deferred-callback capability used by the
// tracker's timers, backed either by the wall clock or by virtual time.
package scheduler

import (
	"time"
)

type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

type Scheduler interface {
	Now() time.Time
	Schedule(delay time.Duration, fn func()) Timer
}

type RealScheduler struct{}

func NewRealScheduler() *RealScheduler {
	return &RealScheduler{}
}

func (s *RealScheduler) Now() time.Time {
	return time.Now()
}

func (s *RealScheduler) Schedule(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}
