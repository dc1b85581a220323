package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/shockbase/levelborder/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndLoadPlayerState() {
	id := uuid.New()
	state := &model.PlayerState{
		BorderCenter:    model.Location{World: "world", X: 10.5, Y: 70, Z: -3.5},
		MinBorderRadius: 5,
		Level:           3,
		OverWorldName:   "world",
	}

	err := s.storage.SavePlayerState(s.ctx, id, state)
	s.Require().NoError(err)

	var loaded model.PlayerState
	err = s.storage.LoadPlayerState(s.ctx, id, &loaded)
	s.Require().NoError(err)
	s.Equal(*state, loaded)
}

func (s *StorageSuite) TestLoadPlayerStateNotFound() {
	var loaded model.PlayerState
	err := s.storage.LoadPlayerState(s.ctx, uuid.New(), &loaded)
	s.ErrorIs(err, model.ErrPlayerStateNotFound)
}

func (s *StorageSuite) TestSavedStateIsIsolatedFromCaller() {
	id := uuid.New()
	nether := model.Location{World: "world_nether", X: 1}
	state := &model.PlayerState{NetherSpawnLocation: &nether}
	s.Require().NoError(s.storage.SavePlayerState(s.ctx, id, state))

	state.NetherSpawnLocation.X = 99

	var loaded model.PlayerState
	s.Require().NoError(s.storage.LoadPlayerState(s.ctx, id, &loaded))
	s.Equal(1.0, loaded.NetherSpawnLocation.X)
}

func (s *StorageSuite) TestDeletePlayerState() {
	id := uuid.New()
	_ = s.storage.SavePlayerState(s.ctx, id, &model.PlayerState{Level: 1})

	err := s.storage.DeletePlayerState(s.ctx, id)
	s.Require().NoError(err)

	exists, err := s.storage.PlayerStateExists(s.ctx, id)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestDeleteMissingPlayerState() {
	err := s.storage.DeletePlayerState(s.ctx, uuid.New())
	s.NoError(err)
}

func (s *StorageSuite) TestListPlayerIDs() {
	a, b := uuid.New(), uuid.New()
	_ = s.storage.SavePlayerState(s.ctx, a, &model.PlayerState{})
	_ = s.storage.SavePlayerState(s.ctx, b, &model.PlayerState{})

	ids, err := s.storage.ListPlayerIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]uuid.UUID{a, b}, ids)
}
