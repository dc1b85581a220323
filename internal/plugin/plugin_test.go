package plugin

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/shockbase/levelborder/internal/command"
	"github.com/shockbase/levelborder/internal/dependencies/mocks"
	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/host/hosttest"
	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/services/border"
	"github.com/shockbase/levelborder/internal/services/greeting"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
	"github.com/shockbase/levelborder/internal/services/spawntree"
	"github.com/shockbase/levelborder/internal/storage/yamlfile"
	"github.com/shockbase/levelborder/internal/testutil"
)

type PluginSuite struct {
	suite.Suite
	root      string
	server    *hosttest.Server
	world     *hosttest.World
	borders   *hosttest.BorderService
	storage   *yamlfile.Storage
	clock     *mocks.MockClock
	scheduler *mocks.MockScheduler
	publisher *mocks.MockPublisher
	configs   *playerconfig.Service
	plugin    *Plugin
	player    *hosttest.Player
	ctx       context.Context
}

func TestPluginSuite(t *testing.T) {
	suite.Run(t, new(PluginSuite))
}

func (s *PluginSuite) SetupTest() {
	s.root = s.T().TempDir()
	s.world = hosttest.NewWorld("world")
	s.server = hosttest.NewServer(s.world)
	s.borders = hosttest.NewBorderService()
	s.storage = yamlfile.New(filepath.Join(s.root, "plugins", "LevelBorder"))
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.scheduler = mocks.NewMockScheduler(s.clock)
	s.publisher = mocks.NewMockPublisher()
	s.ctx = context.Background()

	s.plugin = s.newPlugin(s.borders)
	s.Require().NoError(s.plugin.Enable(s.ctx))

	s.player = hosttest.NewPlayer("Steve", model.Location{World: "world", X: 10.5, Y: 65, Z: 10.5}, s.server)
	s.player.CurrentLevel = 3
	// The host fires the quit event while kicking
	s.player.OnKick = func(p *hosttest.Player) { s.server.Quit(s.ctx, p) }
}

func (s *PluginSuite) newPlugin(borders host.BorderService) *Plugin {
	logger := testutil.NopLogger()
	cfg := playerconfig.DefaultConfig()
	cfg.WorldContainer = s.root
	s.configs = playerconfig.New(s.storage, s.clock, cfg, logger)
	return New(
		s.server,
		borders,
		border.New(s.borders, s.scheduler, border.DefaultConfig(), logger),
		s.configs,
		spawntree.New(spawntree.DefaultHeightOffset, logger),
		s.publisher,
		s.clock,
		Config{MainWorld: "world"},
		logger,
	)
}

func (s *PluginSuite) storedState() model.PlayerState {
	var state model.PlayerState
	s.Require().NoError(s.storage.LoadPlayerState(s.ctx, s.player.ID(), &state))
	return state
}

func (s *PluginSuite) writeHostFile(path string) {
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, []byte("data"), 0o644))
}

// Enable and disable tests

func (s *PluginSuite) TestEnableRegistersCommandAndListener() {
	s.Contains(s.server.Commands, command.Name)
	s.Len(s.server.Listeners, 1)
	s.True(s.plugin.Enabled())
}

func (s *PluginSuite) TestEnableSetsMainWorldRules() {
	s.Contains(s.world.BoolRules, model.GameRuleSpectatorsGenerateChunks)
	s.False(s.world.BoolRules[model.GameRuleSpectatorsGenerateChunks])
	s.Equal(1000000, s.world.IntRules[model.GameRuleSpawnRadius])
}

func (s *PluginSuite) TestEnableTwiceRegistersOnce() {
	s.Require().NoError(s.plugin.Enable(s.ctx))
	s.Len(s.server.Listeners, 1)
}

func (s *PluginSuite) TestEnableWithoutMainWorld() {
	s.server = hosttest.NewServer()
	p := s.newPlugin(s.borders)

	s.Require().NoError(p.Enable(s.ctx))
	s.True(p.Enabled())
}

func (s *PluginSuite) TestEnableWithoutBorderServiceFails() {
	s.server = hosttest.NewServer(hosttest.NewWorld("world"))
	p := s.newPlugin(nil)

	err := p.Enable(s.ctx)

	s.ErrorIs(err, model.ErrBorderServiceMissing)
	s.False(p.Enabled())
	s.Empty(s.server.Commands)
	s.Empty(s.server.Listeners)
}

func (s *PluginSuite) TestHandlersIgnoredWhileDisabled() {
	s.Require().NoError(s.plugin.Disable(s.ctx))

	s.server.Join(s.ctx, s.player)

	s.Empty(s.borders.SetCalls)
	exists, err := s.storage.PlayerStateExists(s.ctx, s.player.ID())
	s.Require().NoError(err)
	s.False(exists)
}

func (s *PluginSuite) TestDisableClosesPublisherAndStopsTasks() {
	s.borders.Persistent = true
	s.server.Join(s.ctx, s.player)
	s.Equal(1, s.scheduler.Pending())

	s.Require().NoError(s.plugin.Disable(s.ctx))

	s.True(s.publisher.Closed())
	s.Equal(0, s.scheduler.Pending())
	s.Equal(0, s.configs.Sessions())
	s.False(s.plugin.Enabled())
}

// Join tests

func (s *PluginSuite) TestFirstJoinCreatesDocumentWithDefaults() {
	s.world.TreesGrow = false

	s.server.Join(s.ctx, s.player)

	state := s.storedState()
	s.Equal(s.player.Location(), state.BorderCenter)
	s.Equal(5, state.MinBorderRadius)
	s.Equal(int64(0), state.ElapsedTime)
	s.True(state.GrowSpawnTree)
	s.False(state.SpawnTreeGrown)
	s.Equal(s.clock.Now().Unix(), state.StartTime)
	s.False(state.Dead)
	s.Equal(3, state.Level)
	s.Equal("world", state.OverWorldName)
}

func (s *PluginSuite) TestJoinAppliesBorderAtOffsetCenter() {
	s.world.TreesGrow = false

	s.server.Join(s.ctx, s.player)

	call, ok := s.borders.LastSet()
	s.Require().True(ok)
	s.Equal(float64(16), call.Size)
	s.Equal(model.Location{World: "world", X: 10, Y: 65, Z: 10}, call.Center)
}

func (s *PluginSuite) TestJoinGrowsSpawnTreeAndMovesCenter() {
	s.server.Join(s.ctx, s.player)

	state := s.storedState()
	s.True(state.SpawnTreeGrown)
	s.Equal(s.player.Location(), state.BorderCenter)
	s.Equal(model.Location{World: "world", X: 10.5, Y: 71, Z: 10.5}, state.BorderCenter)
	s.True(s.player.RespawnForced)
}

func (s *PluginSuite) TestSpawnTreeGrowsOnlyOnce() {
	s.server.Join(s.ctx, s.player)
	s.server.Quit(s.ctx, s.player)
	s.server.Join(s.ctx, s.player)

	s.Len(s.world.Trees, 1)
}

func (s *PluginSuite) TestFailedSpawnTreeRetriesNextJoin() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)
	s.False(s.storedState().SpawnTreeGrown)

	s.world.TreesGrow = true
	s.server.Quit(s.ctx, s.player)
	s.server.Join(s.ctx, s.player)

	s.True(s.storedState().SpawnTreeGrown)
}

func (s *PluginSuite) TestJoinShowsWelcome() {
	s.server.Join(s.ctx, s.player)

	s.Require().Len(s.player.Titles, 1)
	s.Equal(greeting.Welcome("Steve", false), s.player.Titles[0])
}

func (s *PluginSuite) TestJoinKeepsExistingValues() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)
	s.server.LevelChange(s.ctx, s.player, 9)
	s.server.Quit(s.ctx, s.player)

	s.clock.Advance(time.Hour)
	s.player.MoveTo(model.Location{World: "world", X: 500, Y: 80, Z: 500})
	s.server.Join(s.ctx, s.player)

	state := s.storedState()
	s.Equal(9, state.Level)
	s.Equal(model.Location{World: "world", X: 10.5, Y: 65, Z: 10.5}, state.BorderCenter)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).Unix(), state.StartTime)
}

func (s *PluginSuite) TestJoinPublishesEvent() {
	s.server.Join(s.ctx, s.player)

	s.Equal([]model.EventType{model.EventPlayerJoined}, s.publisher.Types())
	s.Equal(s.player.ID(), s.publisher.Events()[0].Player.ID)
}

func (s *PluginSuite) TestPersistentBorderDataReapplied() {
	s.borders.Persistent = true
	s.borders.Saved[s.player.ID()] = host.BorderData{Size: 64, CenterX: 3, CenterZ: 4}

	s.server.Join(s.ctx, s.player)
	s.scheduler.Advance(border.DefaultPersistentDataDelay)

	wb := s.borders.Border(s.player.ID())
	s.Equal(float64(64), wb.Size)
	s.Require().NotEmpty(wb.Sends)
	s.Equal(host.BorderActionInitialize, wb.Sends[len(wb.Sends)-1].Action)
}

// Level change tests

func (s *PluginSuite) TestLevelChangeLerpsBorder() {
	s.player.CurrentLevel = 3
	s.server.Join(s.ctx, s.player)

	s.server.LevelChange(s.ctx, s.player, 5)

	wb := s.borders.Border(s.player.ID())
	s.Require().Len(wb.Lerps, 1)
	s.Equal(hosttest.LerpCall{OldSize: 16, NewSize: 20, Duration: 500 * time.Millisecond}, wb.Lerps[0])
	s.Equal(host.BorderActionLerpSize, wb.Sends[len(wb.Sends)-1].Action)
	s.Equal(5, s.storedState().Level)
}

func (s *PluginSuite) TestLevelChangeForUnknownPlayerIgnored() {
	s.server.LevelChange(s.ctx, s.player, 5)

	s.Empty(s.borders.Border(s.player.ID()).Lerps)
	s.Empty(s.publisher.Events())
}

// Death and respawn tests

func (s *PluginSuite) TestDeathStartsSpectating() {
	s.server.Join(s.ctx, s.player)

	s.server.Death(s.ctx, s.player)

	s.Equal(model.GameModeSpectator, s.player.GameMode())
	s.True(s.storedState().Dead)
	s.Equal([]uuid.UUID{s.player.ID()}, s.borders.ResetCalls)
	s.False(s.borders.Border(s.player.ID()).Active)
}

func (s *PluginSuite) TestDeathBeforeBorderReapplyLeavesNoBorder() {
	s.borders.Persistent = true
	s.borders.Saved[s.player.ID()] = host.BorderData{Size: 64}

	s.server.Join(s.ctx, s.player)
	s.server.Death(s.ctx, s.player)
	wb := s.borders.Border(s.player.ID())
	sends := len(wb.Sends)

	s.scheduler.Advance(border.DefaultPersistentDataDelay)

	s.True(s.storedState().Dead)
	s.False(wb.Active)
	s.Len(wb.Sends, sends)
	s.Equal(0, s.scheduler.Pending())
}

func (s *PluginSuite) TestRespawnWhileSpectatingShowsRestartInfo() {
	s.server.Join(s.ctx, s.player)
	s.server.Death(s.ctx, s.player)

	s.server.Respawn(s.ctx, s.player)

	s.Equal(greeting.Restart("Steve"), s.player.Titles[len(s.player.Titles)-1])
	s.Equal(greeting.ResetHint(), s.player.Messages[len(s.player.Messages)-1])
}

func (s *PluginSuite) TestSpectatorRejoinGetsNoBorder() {
	s.server.Join(s.ctx, s.player)
	s.server.Death(s.ctx, s.player)
	s.server.Quit(s.ctx, s.player)
	s.player.Mode = model.GameModeSurvival
	calls := len(s.borders.SetCalls)

	s.server.Join(s.ctx, s.player)

	s.Equal(model.GameModeSpectator, s.player.GameMode())
	s.Len(s.borders.SetCalls, calls)
	s.Equal(greeting.ResetHint(), s.player.Messages[len(s.player.Messages)-1])
}

// World change and portal tests

func (s *PluginSuite) TestNetherPortalLearnsAndCapturesSpawn() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)

	arrival := model.Location{World: "myworld_nether", X: 1.5, Y: 70, Z: 2.5}
	s.server.Portal(s.ctx, s.player, arrival)

	state := s.storedState()
	s.Equal("myworld_nether", state.NetherWorldName)
	s.Require().NotNil(state.NetherSpawnLocation)
	s.Equal(arrival, *state.NetherSpawnLocation)

	call, _ := s.borders.LastSet()
	s.Equal(model.Location{World: "myworld_nether", X: 1, Y: 70, Z: 2}, call.Center)
}

func (s *PluginSuite) TestSecondNetherVisitUsesStoredSpawn() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)
	first := model.Location{World: "myworld_nether", X: 1.5, Y: 70, Z: 2.5}
	s.server.Portal(s.ctx, s.player, first)
	s.server.Portal(s.ctx, s.player, model.Location{World: "world", X: 10.5, Y: 65, Z: 10.5})

	s.server.Portal(s.ctx, s.player, model.Location{World: "myworld_nether", X: 80.5, Y: 40, Z: 80.5})

	state := s.storedState()
	s.Equal("myworld_nether", state.NetherWorldName)
	s.Equal(first, *state.NetherSpawnLocation)
	call, _ := s.borders.LastSet()
	s.Equal(model.Location{World: "myworld_nether", X: 1, Y: 70, Z: 2}, call.Center)
}

func (s *PluginSuite) TestReturnToOverworldUsesBorderCenter() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)
	s.server.Portal(s.ctx, s.player, model.Location{World: "world_nether", X: 1, Y: 70, Z: 2})

	s.server.Portal(s.ctx, s.player, model.Location{World: "world", X: 300, Y: 70, Z: 300})

	call, _ := s.borders.LastSet()
	s.Equal(model.Location{World: "world", X: 10, Y: 65, Z: 10}, call.Center)
}

func (s *PluginSuite) TestPortalEventsPublished() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)

	s.server.Portal(s.ctx, s.player, model.Location{World: "world_the_end"})

	s.Equal([]model.EventType{
		model.EventPlayerJoined,
		model.EventPortalUsed,
		model.EventWorldChanged,
	}, s.publisher.Types())
}

// Reset tests

func (s *PluginSuite) TestResetCommandKicksAndDeletesFiles() {
	s.server.Join(s.ctx, s.player)
	dataPath := filepath.Join(s.root, "world", "playerdata", s.player.ID().String()+".dat")
	statsPath := filepath.Join(s.root, "world", "stats", s.player.ID().String()+".json")
	s.writeHostFile(dataPath)
	s.writeHostFile(statsPath)

	handled := s.server.Command(s.ctx, s.player, command.Name, "reset")

	s.True(handled)
	s.Require().NotNil(s.player.KickReason)
	s.Equal("Reset done. Please reconnect.", s.player.KickReason.PlainText())
	exists, err := s.storage.PlayerStateExists(s.ctx, s.player.ID())
	s.Require().NoError(err)
	s.False(exists)
	for _, path := range []string{dataPath, statsPath} {
		_, err := os.Stat(path)
		s.True(os.IsNotExist(err), path)
	}

	events := s.publisher.Events()
	last := events[len(events)-1]
	s.Equal(model.EventPlayerReset, last.Type)
	s.Len(last.Payload.(model.ResetPayload).Deleted, 3)
}

func (s *PluginSuite) TestResetBeforeBorderReapplyCancelsIt() {
	s.borders.Persistent = true
	s.borders.Saved[s.player.ID()] = host.BorderData{Size: 64}

	s.server.Join(s.ctx, s.player)
	s.server.Command(s.ctx, s.player, command.Name, "reset")
	wb := s.borders.Border(s.player.ID())
	sends := len(wb.Sends)

	s.scheduler.Advance(border.DefaultPersistentDataDelay)

	s.Len(wb.Sends, sends)
	s.Equal(0, s.scheduler.Pending())
}

func (s *PluginSuite) TestQuitBeforeBorderReapplyCancelsIt() {
	s.borders.Persistent = true
	s.borders.Saved[s.player.ID()] = host.BorderData{Size: 64}

	s.server.Join(s.ctx, s.player)
	s.server.Quit(s.ctx, s.player)
	s.scheduler.Advance(border.DefaultPersistentDataDelay)

	s.Empty(s.borders.Border(s.player.ID()).Sends)
	s.Equal(0, s.scheduler.Pending())
}

func (s *PluginSuite) TestResetInNetherUsesOverworldFiles() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)
	s.server.Portal(s.ctx, s.player, model.Location{World: "world_nether"})
	dataPath := filepath.Join(s.root, "world", "playerdata", s.player.ID().String()+".dat")
	s.writeHostFile(dataPath)

	s.plugin.ResetPlayer(s.ctx, s.player)

	_, err := os.Stat(dataPath)
	s.True(os.IsNotExist(err))
}

func (s *PluginSuite) TestRejoinAfterResetStartsFresh() {
	s.world.TreesGrow = false
	s.server.Join(s.ctx, s.player)
	s.server.Death(s.ctx, s.player)
	s.server.Command(s.ctx, s.player, command.Name, "reset")

	s.player.Mode = model.GameModeSurvival
	s.player.CurrentLevel = 0
	s.server.Join(s.ctx, s.player)

	state := s.storedState()
	s.False(state.Dead)
	s.Equal(0, state.Level)
	s.Equal(model.GameModeSurvival, s.player.GameMode())
	call, _ := s.borders.LastSet()
	s.Equal(float64(10), call.Size)
}
