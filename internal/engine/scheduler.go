package engine

import (
	"sync"
	"time"
)

// Scheduler abstracts the external primitive that drives ticks. The
// engine requests at most one pending tick at a time; Cancel drops a
// pending request without preempting a tick already in progress.
type Scheduler interface {
	Schedule(fn func())
	Cancel()
}

// TimerScheduler fires each requested tick after a fixed wall-clock
// interval.
type TimerScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
}

func NewTimerScheduler(interval time.Duration) *TimerScheduler {
	return &TimerScheduler{interval: interval}
}

func (s *TimerScheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, fn)
}

func (s *TimerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// ManualScheduler executes ticks only when driven explicitly, for
// deterministic synchronous runs.
type ManualScheduler struct {
	mu      sync.Mutex
	pending func()
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = fn
}

func (s *ManualScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Tick runs the pending tick request, if any, and reports whether one
// ran.
func (s *ManualScheduler) Tick() bool {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}
