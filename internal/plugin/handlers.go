package plugin

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/services/greeting"
	"github.com/shockbase/levelborder/internal/services/lifecycle"
)

// HandleJoin opens the player's session and applies their border
func (p *Plugin) HandleJoin(ctx context.Context, player host.Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	snapshot := host.Snapshot(player)
	state, created, err := p.configs.Open(ctx, snapshot.ID, p.configs.Defaults(snapshot))
	if err != nil {
		p.logger.Warn("continuing with unsaved player state",
			slog.String("player", snapshot.Name),
			slog.String("error", err.Error()),
		)
	}
	if created {
		p.logger.Info("new player", slog.String("player", snapshot.Name))
	}

	p.apply(ctx, player, p.event(model.EventPlayerJoined, snapshot, nil), state)
}

// HandleLevelChange resizes the border to the new level
func (p *Plugin) HandleLevelChange(ctx context.Context, player host.Player, oldLevel, newLevel int) {
	p.handle(ctx, player, model.EventLevelChanged, model.LevelChangePayload{OldLevel: oldLevel, NewLevel: newLevel})
}

// HandleDeath ends the run and removes the border
func (p *Plugin) HandleDeath(ctx context.Context, player host.Player) {
	p.handle(ctx, player, model.EventPlayerDied, nil)
}

// HandleRespawn reminds a dead player how to restart
func (p *Plugin) HandleRespawn(ctx context.Context, player host.Player) {
	p.handle(ctx, player, model.EventPlayerRespawned, nil)
}

// HandleChangedWorld moves the border to the world the player arrived in
func (p *Plugin) HandleChangedWorld(ctx context.Context, player host.Player) {
	p.handle(ctx, player, model.EventWorldChanged, nil)
}

// HandlePortal learns the nether and end world names
func (p *Plugin) HandlePortal(ctx context.Context, player host.Player, to model.Location) {
	p.handle(ctx, player, model.EventPortalUsed, model.PortalPayload{To: to})
}

// HandleQuit drops the session without writing; every transition was
// already saved when it happened
func (p *Plugin) HandleQuit(ctx context.Context, player host.Player) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	snapshot := host.Snapshot(player)
	p.border.Cancel(snapshot.ID)
	p.configs.Close(snapshot.ID)
	p.publish(ctx, p.event(model.EventPlayerQuit, snapshot, nil))
}

// ResetPlayer disconnects the player and deletes their document together with
// the host's player data and stats files
func (p *Plugin) ResetPlayer(ctx context.Context, player host.Player) {
	if !p.Enabled() {
		return
	}

	snapshot := host.Snapshot(player)
	world := player.World().Name()
	if state, err := p.configs.Get(ctx, snapshot.ID); err == nil && state.OverWorldName != "" {
		world = state.OverWorldName
	}

	// Kicking fires the host quit event, so the lock is taken afterwards
	player.Kick(greeting.ResetKick())

	p.mu.Lock()
	defer p.mu.Unlock()

	p.border.Cancel(snapshot.ID)
	report := p.configs.Reset(ctx, snapshot.ID, world)
	p.logger.Info("player reset",
		slog.String("player", snapshot.Name),
		slog.Any("deleted", report.Deleted),
	)
	p.publish(ctx, p.event(model.EventPlayerReset, snapshot, model.ResetPayload{Deleted: report.Deleted}))
}

// handle runs a lifecycle event against the player's stored state
func (p *Plugin) handle(ctx context.Context, player host.Player, eventType model.EventType, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	snapshot := host.Snapshot(player)
	state, err := p.configs.Get(ctx, snapshot.ID)
	if err != nil {
		if errors.Is(err, model.ErrPlayerStateNotFound) {
			p.logger.Debug("ignoring event for player without state",
				slog.String("player", snapshot.Name),
				slog.String("event", string(eventType)),
			)
			return
		}
		p.logger.Error("failed to load player state",
			slog.String("player", snapshot.Name),
			slog.String("error", err.Error()),
		)
		return
	}

	p.apply(ctx, player, p.event(eventType, snapshot, payload), state)
}

func (p *Plugin) apply(ctx context.Context, player host.Player, event model.Event, state model.PlayerState) {
	state, effects := p.rules.Handle(event, state)
	p.execute(ctx, player, state, effects)
	p.publish(ctx, event)
}

// execute runs effects in order against the host
func (p *Plugin) execute(ctx context.Context, player host.Player, state model.PlayerState, effects []lifecycle.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case lifecycle.SetGameMode:
			player.SetGameMode(e.Mode)
		case lifecycle.ApplyBorder:
			p.border.Apply(player, e.Center, e.Size)
		case lifecycle.ResizeBorder:
			p.border.Resize(player, e.From, e.To)
		case lifecycle.RemoveBorder:
			p.border.Remove(player)
		case lifecycle.GrowSpawnTree:
			if p.trees.Grow(player) {
				var more []lifecycle.Effect
				state, more = p.rules.TreeGrown(player.Location(), state)
				p.execute(ctx, player, state, more)
			}
		case lifecycle.ShowTitle:
			player.ShowTitle(e.Title)
		case lifecycle.SendMessage:
			player.SendMessage(e.Message)
		case lifecycle.SaveState:
			// Failures are logged by the service; play continues
			_ = p.configs.Save(ctx, player.ID(), state)
		}
	}
}

func (p *Plugin) event(eventType model.EventType, snapshot model.PlayerSnapshot, payload any) model.Event {
	return model.Event{
		Type:      eventType,
		Timestamp: p.clock.Now(),
		Player:    snapshot,
		Payload:   payload,
	}
}

func (p *Plugin) publish(ctx context.Context, event model.Event) {
	if err := p.publisher.Publish(ctx, event); err != nil {
		p.logger.Warn("failed to publish event",
			slog.String("event", string(event.Type)),
			slog.String("error", err.Error()),
		)
	}
}
