// Package host describes the parts of the hosting game server the plugin talks to.
// The host's own dispatch loop, scheduler and world simulation stay external.
package host

import (
	"context"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/model"
)

// CommandSender is anything that can issue a command
type CommandSender interface {
	SendMessage(msg model.Component)
}

// Player is an online player
type Player interface {
	CommandSender

	ID() uuid.UUID
	Name() string
	Location() model.Location
	World() World
	Level() int
	GameMode() model.GameMode
	SetGameMode(mode model.GameMode)
	// Teleport moves the player and reports whether the host accepted the move
	Teleport(loc model.Location) bool
	SetRespawnLocation(loc model.Location, force bool)
	ShowTitle(title model.Title)
	Kick(reason model.Component)
	HasPlayedBefore() bool
}

// World is a loaded host world
type World interface {
	Name() string
	SetBlock(pos model.BlockPos, material model.Material)
	// GenerateTree grows a tree rooted at pos and reports success
	GenerateTree(pos model.BlockPos, tree model.TreeType) bool
	// HighestBlockYAt returns the Y of the highest non-air block in a column
	HighestBlockYAt(x, z int) int
	SetBoolGameRule(rule model.GameRule, value bool)
	SetIntGameRule(rule model.GameRule, value int)
}

// Server is the hosting game server
type Server interface {
	World(name string) (World, bool)
	RegisterCommand(name string, executor CommandExecutor)
	RegisterListener(listener Listener)
}

// CommandExecutor handles a registered chat command
type CommandExecutor interface {
	// Execute runs the command and reports whether it was handled
	Execute(ctx context.Context, sender CommandSender, args []string) bool
	// Complete returns tab-completion candidates for the current arguments
	Complete(sender CommandSender, args []string) []string
}

// Listener receives host lifecycle events. Events for a single player are
// delivered sequentially.
type Listener interface {
	HandleJoin(ctx context.Context, p Player)
	HandleLevelChange(ctx context.Context, p Player, oldLevel, newLevel int)
	HandleDeath(ctx context.Context, p Player)
	HandleRespawn(ctx context.Context, p Player)
	HandleQuit(ctx context.Context, p Player)
	HandleChangedWorld(ctx context.Context, p Player)
	HandlePortal(ctx context.Context, p Player, to model.Location)
}

// Snapshot captures the event-relevant view of a player
func Snapshot(p Player) model.PlayerSnapshot {
	return model.PlayerSnapshot{
		ID:              p.ID(),
		Name:            p.Name(),
		Location:        p.Location(),
		Level:           p.Level(),
		GameMode:        p.GameMode(),
		HasPlayedBefore: p.HasPlayedBefore(),
	}
}
