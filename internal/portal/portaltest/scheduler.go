// Package portaltest provides a hand-driven scheduler for tests.
package portaltest

import (
	"sync"
	"time"

	"github.com/iftekharanwar/RareCare/internal/portal"
)

// ManualScheduler only runs callbacks when Fire is called.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*ManualTask
}

var _ portal.Scheduler = (*ManualScheduler)(nil)

// ManualTask is a callback registered with a ManualScheduler.
type ManualTask struct {
	Delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *ManualTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) portal.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &ManualTask{Delay: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Pending counts callbacks that are neither stopped nor fired.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Tasks returns every task registered so far.
func (s *ManualScheduler) Tasks() []*ManualTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*ManualTask(nil), s.tasks...)
}

// Fire runs all pending callbacks, outside the scheduler lock.
func (s *ManualScheduler) Fire() int {
	s.mu.Lock()
	var due []*ManualTask
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// FireStopped runs a callback even if it was stopped, mimicking a timer that
// had already expired when Stop was called.
func (s *ManualScheduler) FireStopped(t *ManualTask) {
	s.mu.Lock()
	t.fired = true
	s.mu.Unlock()
	t.fn()
}
