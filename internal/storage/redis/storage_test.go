package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/shockbase/levelborder/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestSaveAndLoadPlayerState() {
	id := uuid.New()
	end := model.Location{World: "world_the_end", X: 100, Y: 49, Z: 0}
	state := &model.PlayerState{
		BorderCenter:     model.Location{World: "world", X: 0.5, Y: 65, Z: 0.5},
		MinBorderRadius:  5,
		Level:            12,
		OverWorldName:    "world",
		EndWorldName:     "world_the_end",
		EndSpawnLocation: &end,
	}

	err := s.storage.SavePlayerState(s.ctx, id, state)
	s.Require().NoError(err)

	var loaded model.PlayerState
	err = s.storage.LoadPlayerState(s.ctx, id, &loaded)
	s.Require().NoError(err)
	s.Equal(*state, loaded)
}

func (s *StorageSuite) TestSaveHasNoTTL() {
	id := uuid.New()
	s.Require().NoError(s.storage.SavePlayerState(s.ctx, id, &model.PlayerState{}))

	s.Equal(int64(0), int64(s.mini.TTL(playerStateKey(id))))
}

func (s *StorageSuite) TestLoadKeepsValuesForAbsentKeys() {
	id := uuid.New()
	s.Require().NoError(s.mini.Set(playerStateKey(id), `{"dead":true}`))

	state := model.PlayerState{MinBorderRadius: 5, OverWorldName: "world"}
	s.Require().NoError(s.storage.LoadPlayerState(s.ctx, id, &state))
	s.True(state.Dead)
	s.Equal(5, state.MinBorderRadius)
	s.Equal("world", state.OverWorldName)
}

func (s *StorageSuite) TestLoadPlayerStateNotFound() {
	var state model.PlayerState
	err := s.storage.LoadPlayerState(s.ctx, uuid.New(), &state)
	s.ErrorIs(err, model.ErrPlayerStateNotFound)
}

func (s *StorageSuite) TestDeletePlayerState() {
	id := uuid.New()
	_ = s.storage.SavePlayerState(s.ctx, id, &model.PlayerState{})

	s.Require().NoError(s.storage.DeletePlayerState(s.ctx, id))

	exists, err := s.storage.PlayerStateExists(s.ctx, id)
	s.Require().NoError(err)
	s.False(exists)

	ids, err := s.storage.ListPlayerIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestDeleteMissingPlayerState() {
	s.NoError(s.storage.DeletePlayerState(s.ctx, uuid.New()))
}

func (s *StorageSuite) TestListPlayerIDs() {
	a, b := uuid.New(), uuid.New()
	_ = s.storage.SavePlayerState(s.ctx, a, &model.PlayerState{})
	_ = s.storage.SavePlayerState(s.ctx, b, &model.PlayerState{})

	ids, err := s.storage.ListPlayerIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]uuid.UUID{a, b}, ids)
}
