package service

import (
	"time"
)

// Clock supplies "now". Every resolver call reads it afresh; nothing caches it.
type Clock interface {
	Now() time.Time
}

// Scheduler runs f once after d. It is the only place the portal defers work.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// SystemClock is the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// TimerScheduler schedules with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
