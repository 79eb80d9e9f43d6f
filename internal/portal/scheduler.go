package portal

import "time"

// Task is a pending delayed callback.
type Task interface {
	// Stop cancels the callback; it reports false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func()) Task

func (f SchedulerFunc) AfterFunc(d time.Duration, fn func()) Task {
	return f(d, fn)
}

// NewTimerScheduler schedules callbacks on runtime timers.
func NewTimerScheduler() Scheduler {
	return SchedulerFunc(func(d time.Duration, fn func()) Task {
		return time.AfterFunc(d, fn)
	})
}
