package mocks

import (
	"sort"
	"time"

	"github.com/shockbase/levelborder/internal/dependencies/scheduler"
)

// MockScheduler is a mock implementation of Scheduler driven by a MockClock.
// Tasks only run from Advance or RunPending, on the caller's goroutine.
type MockScheduler struct {
	clock *MockClock
	tasks []*mockTask
	seq   int
}

// Ensure MockScheduler implements Scheduler
var _ scheduler.Scheduler = (*MockScheduler)(nil)

type mockTask struct {
	due     time.Time
	seq     int
	f       func()
	stopped bool
	ran     bool
}

func (t *mockTask) Stop() bool {
	if t.stopped || t.ran {
		return false
	}
	t.stopped = true
	return true
}

// NewMockScheduler creates a MockScheduler reading time from clock
func NewMockScheduler(clock *MockClock) *MockScheduler {
	return &MockScheduler{clock: clock}
}

// AfterFunc queues f to run once the clock has advanced by d
func (s *MockScheduler) AfterFunc(d time.Duration, f func()) scheduler.Task {
	s.seq++
	task := &mockTask{due: s.clock.Now().Add(d), seq: s.seq, f: f}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance moves the clock forward and runs every task that became due, in order
func (s *MockScheduler) Advance(d time.Duration) {
	s.clock.Advance(d)
	s.RunPending()
}

// RunPending runs every task due at the current clock time
func (s *MockScheduler) RunPending() {
	now := s.clock.Now()

	var due []*mockTask
	remaining := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.stopped:
		case !t.due.After(now):
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.tasks = remaining

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, t := range due {
		t.ran = true
		t.f()
	}
}

// Pending returns the number of queued tasks that have not run or been stopped
func (s *MockScheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}
