package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/model"
)

// Storage defines the interface for player state persistence
type Storage interface {
	// LoadPlayerState decodes the stored document over state. Keys absent
	// from the stored document keep whatever value state already holds.
	// Returns model.ErrPlayerStateNotFound when no document exists.
	LoadPlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error
	SavePlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error
	// DeletePlayerState removes the document; a missing document is not an error
	DeletePlayerState(ctx context.Context, id uuid.UUID) error
	PlayerStateExists(ctx context.Context, id uuid.UUID) (bool, error)
	ListPlayerIDs(ctx context.Context) ([]uuid.UUID, error)
}
