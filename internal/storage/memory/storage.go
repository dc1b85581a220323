package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	states map[uuid.UUID]model.PlayerState
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		states: make(map[uuid.UUID]model.PlayerState),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Every stored state is complete, so loading replaces the caller's values outright.
func (s *Storage) LoadPlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.states[id]
	if !ok {
		return model.ErrPlayerStateNotFound
	}
	*state = stored.Clone()
	return nil
}

func (s *Storage) SavePlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = state.Clone()
	return nil
}

func (s *Storage) DeletePlayerState(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
	return nil
}

func (s *Storage) PlayerStateExists(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.states[id]
	return ok, nil
}

func (s *Storage) ListPlayerIDs(ctx context.Context) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uuid.UUID, 0, len(s.states))
	for id := range s.states {
		ids = append(ids, id)
	}
	return ids, nil
}
