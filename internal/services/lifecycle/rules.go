// Package lifecycle decides how a player's border state reacts to host events.
// Rules are pure: they never touch the host and return the effects to run.
package lifecycle

import (
	"strings"

	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/services/border"
	"github.com/shockbase/levelborder/internal/services/greeting"
)

// Rules maps lifecycle events onto state transitions and effects.
// A state is ACTIVE while Dead is false and SPECTATING once it is true;
// only a reset leaves SPECTATING.
type Rules struct{}

// New creates the lifecycle rules
func New() Rules {
	return Rules{}
}

// Handle applies an event to the player's state
func (r Rules) Handle(event model.Event, state model.PlayerState) (model.PlayerState, []Effect) {
	state = state.Clone()

	switch event.Type {
	case model.EventPlayerJoined:
		return r.join(event.Player, state)
	case model.EventLevelChanged:
		payload, ok := event.Payload.(model.LevelChangePayload)
		if !ok {
			return state, nil
		}
		return r.levelChange(payload, state)
	case model.EventPlayerDied:
		return r.death(state)
	case model.EventPlayerRespawned:
		return r.respawn(event.Player, state)
	case model.EventWorldChanged:
		return r.worldChange(event.Player, state)
	case model.EventPortalUsed:
		payload, ok := event.Payload.(model.PortalPayload)
		if !ok {
			return state, nil
		}
		return r.portal(payload, state)
	default:
		return state, nil
	}
}

// TreeGrown records a grown spawn tree with the player's new location as the
// border center
func (r Rules) TreeGrown(location model.Location, state model.PlayerState) (model.PlayerState, []Effect) {
	state = state.Clone()
	state.SpawnTreeGrown = true
	state.BorderCenter = location
	return state, []Effect{SaveState{}}
}

func (r Rules) join(player model.PlayerSnapshot, state model.PlayerState) (model.PlayerState, []Effect) {
	if state.Spectating() {
		effects := []Effect{SetGameMode{Mode: model.GameModeSpectator}}
		return state, append(effects, restartInfo(player.Name)...)
	}

	effects := []Effect{
		ApplyBorder{Center: state.BorderCenter, Size: border.Size(player.Level, state.MinBorderRadius)},
	}
	if state.GrowSpawnTree && !state.SpawnTreeGrown {
		effects = append(effects, GrowSpawnTree{})
	}

	// Players put into spectator mode by other means see the restart info too
	if player.GameMode == model.GameModeSpectator {
		return state, append(effects, restartInfo(player.Name)...)
	}
	return state, append(effects, ShowTitle{Title: greeting.Welcome(player.Name, player.HasPlayedBefore)})
}

func (r Rules) levelChange(change model.LevelChangePayload, state model.PlayerState) (model.PlayerState, []Effect) {
	if state.Spectating() {
		return state, nil
	}

	oldSize := border.Size(change.OldLevel, state.MinBorderRadius)
	newSize := border.Size(change.NewLevel, state.MinBorderRadius)
	state.Level = change.NewLevel

	return state, []Effect{
		ResizeBorder{From: oldSize, To: newSize},
		SaveState{},
	}
}

func (r Rules) death(state model.PlayerState) (model.PlayerState, []Effect) {
	if state.Spectating() {
		return state, nil
	}

	state.Dead = true
	return state, []Effect{
		SetGameMode{Mode: model.GameModeSpectator},
		SaveState{},
		RemoveBorder{},
	}
}

func (r Rules) respawn(player model.PlayerSnapshot, state model.PlayerState) (model.PlayerState, []Effect) {
	if !state.Spectating() {
		return state, nil
	}
	return state, restartInfo(player.Name)
}

func (r Rules) worldChange(player model.PlayerSnapshot, state model.PlayerState) (model.PlayerState, []Effect) {
	if state.Spectating() {
		return state, nil
	}

	world := player.Location.World
	size := border.Size(player.Level, state.MinBorderRadius)

	switch {
	case strings.EqualFold(world, state.OverWorldName):
		return state, []Effect{ApplyBorder{Center: state.BorderCenter, Size: size}}

	case state.NetherWorldName != "" && world == state.NetherWorldName:
		var effects []Effect
		if state.NetherSpawnLocation == nil {
			loc := player.Location
			state.NetherSpawnLocation = &loc
			effects = append(effects, SaveState{})
		}
		return state, append(effects, ApplyBorder{Center: *state.NetherSpawnLocation, Size: size})

	case state.EndWorldName != "" && world == state.EndWorldName:
		var effects []Effect
		if state.EndSpawnLocation == nil {
			loc := player.Location
			state.EndSpawnLocation = &loc
			effects = append(effects, SaveState{})
		}
		return state, append(effects, ApplyBorder{Center: *state.EndSpawnLocation, Size: size})

	default:
		return state, nil
	}
}

func (r Rules) portal(portal model.PortalPayload, state model.PlayerState) (model.PlayerState, []Effect) {
	world := portal.To.World

	switch {
	case model.IsNetherWorld(world):
		if state.NetherWorldName != "" {
			return state, nil
		}
		state.NetherWorldName = world
	case model.IsEndWorld(world):
		if state.EndWorldName != "" {
			return state, nil
		}
		state.EndWorldName = world
	default:
		return state, nil
	}
	return state, []Effect{SaveState{}}
}

func restartInfo(name string) []Effect {
	return []Effect{
		ShowTitle{Title: greeting.Restart(name)},
		SendMessage{Message: greeting.ResetHint()},
	}
}
