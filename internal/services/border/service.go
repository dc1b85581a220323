package border

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/dependencies/scheduler"
	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
)

const (
	// DefaultChangeDuration is how long a level change resize animates
	DefaultChangeDuration = 500 * time.Millisecond
	// DefaultPersistentDataDelay is one host tick
	DefaultPersistentDataDelay = 50 * time.Millisecond
)

// Size returns the border side length for a level. Inputs are not validated.
func Size(level, minRadius int) int {
	return (level + minRadius) * 2
}

// Config holds border timing settings
type Config struct {
	ChangeDuration      time.Duration
	PersistentDataDelay time.Duration
}

// DefaultConfig returns the default border timings
func DefaultConfig() Config {
	return Config{
		ChangeDuration:      DefaultChangeDuration,
		PersistentDataDelay: DefaultPersistentDataDelay,
	}
}

// Service applies per-player borders through the host border service
type Service struct {
	borders   host.BorderService
	scheduler scheduler.Scheduler
	cfg       Config
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[uuid.UUID][]scheduler.Task
}

// New creates a new border Service
func New(borders host.BorderService, sched scheduler.Scheduler, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		borders:   borders,
		scheduler: sched,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "border")),
		pending:   make(map[uuid.UUID][]scheduler.Task),
	}
}

// Apply sets the player's border around center. The stored center is shifted
// by half a block so the border lines up with block corners.
func (s *Service) Apply(p host.Player, center model.Location, size int) {
	center = center.Add(-0.5, 0, -0.5)

	if s.borders.SupportsPersistentMetadata() {
		s.schedulePersistentData(p)
	}

	s.borders.SetBorder(p, float64(size), center)
	s.logger.Debug("border applied",
		slog.String("player", p.Name()),
		slog.Int("size", size),
		slog.String("world", center.World),
	)
}

// Resize animates the player's border from oldSize to newSize
func (s *Service) Resize(p host.Player, oldSize, newSize int) {
	wb := s.borders.WorldBorder(p)
	wb.Lerp(float64(oldSize), float64(newSize), s.cfg.ChangeDuration)
	wb.Send(p, host.BorderActionLerpSize)
}

// Remove returns the player to the host's global border and drops any
// deferred re-apply still queued for them
func (s *Service) Remove(p host.Player) {
	s.Cancel(p.ID())
	s.borders.ResetToGlobal(p)
}

// Cancel stops the player's deferred tasks that have not run yet
func (s *Service) Cancel(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, task := range s.pending[id] {
		task.Stop()
	}
	delete(s.pending, id)
}

// Close stops deferred tasks that have not run yet
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tasks := range s.pending {
		for _, task := range tasks {
			task.Stop()
		}
	}
	s.pending = make(map[uuid.UUID][]scheduler.Task)
}

// schedulePersistentData re-applies the saved border shape once the host
// border service has finished its own setup for the player
func (s *Service) schedulePersistentData(p host.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := p.ID()
	var task scheduler.Task
	task = s.scheduler.AfterFunc(s.cfg.PersistentDataDelay, func() {
		if !s.forget(id, &task) {
			return
		}

		data, ok := s.borders.PersistedBorderData(p)
		if !ok {
			return
		}
		wb := s.borders.WorldBorder(p)
		data.ApplyAll(wb)
		wb.Send(p, host.BorderActionInitialize)
	})
	s.pending[id] = append(s.pending[id], task)
}

// forget removes a task that is about to run and reports whether it was
// still pending. A task cancelled after its timer fired is not pending.
// task is read under the lock because it is assigned while the lock is held.
func (s *Service) forget(id uuid.UUID, task *scheduler.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.pending[id]
	for i, t := range tasks {
		if t == *task {
			tasks = append(tasks[:i], tasks[i+1:]...)
			if len(tasks) == 0 {
				delete(s.pending, id)
			} else {
				s.pending[id] = tasks
			}
			return true
		}
	}
	return false
}

// PendingTasks returns the number of deferred tasks not yet run or stopped
func (s *Service) PendingTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, tasks := range s.pending {
		n += len(tasks)
	}
	return n
}
