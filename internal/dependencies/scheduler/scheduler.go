package scheduler

import "time"

// Scheduler runs callbacks after a delay. Hosts with a single-threaded game
// loop can provide one that re-enters that loop instead of a timer goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// Task is a pending deferred callback
type Task interface {
	// Stop cancels the task and reports whether it had not yet run
	Stop() bool
}

// TimerScheduler implements Scheduler with time.AfterFunc
type TimerScheduler struct{}

// New creates a new TimerScheduler
func New() *TimerScheduler {
	return &TimerScheduler{}
}

// AfterFunc runs f on its own goroutine once d has elapsed
func (s *TimerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
