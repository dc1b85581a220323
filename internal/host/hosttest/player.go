// Package hosttest provides in-memory host fakes that record every call.
package hosttest

import (
	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
)

// Player is a fake online player
type Player struct {
	PlayerID     uuid.UUID
	PlayerName   string
	Loc          model.Location
	CurrentLevel int
	Mode         model.GameMode
	PlayedBefore bool
	Worlds       *Server

	Teleports       []model.Location
	RespawnLocation *model.Location
	RespawnForced   bool
	Titles          []model.Title
	Messages        []model.Component
	KickReason      *model.Component

	// OnKick runs after Kick is recorded, like a host firing its quit event
	OnKick func(p *Player)
}

// Ensure Player implements host.Player
var _ host.Player = (*Player)(nil)

// NewPlayer creates a survival-mode player standing at loc
func NewPlayer(name string, loc model.Location, server *Server) *Player {
	return &Player{
		PlayerID:   uuid.New(),
		PlayerName: name,
		Loc:        loc,
		Mode:       model.GameModeSurvival,
		Worlds:     server,
	}
}

func (p *Player) ID() uuid.UUID            { return p.PlayerID }
func (p *Player) Name() string             { return p.PlayerName }
func (p *Player) Location() model.Location { return p.Loc }
func (p *Player) Level() int               { return p.CurrentLevel }
func (p *Player) GameMode() model.GameMode { return p.Mode }
func (p *Player) HasPlayedBefore() bool    { return p.PlayedBefore }

// World returns the fake world the player is in, creating it on demand
func (p *Player) World() host.World {
	if p.Worlds == nil {
		p.Worlds = NewServer()
	}
	return p.Worlds.EnsureWorld(p.Loc.World)
}

func (p *Player) SetGameMode(mode model.GameMode) {
	p.Mode = mode
}

func (p *Player) Teleport(loc model.Location) bool {
	p.Teleports = append(p.Teleports, loc)
	p.Loc = loc
	return true
}

func (p *Player) SetRespawnLocation(loc model.Location, force bool) {
	p.RespawnLocation = &loc
	p.RespawnForced = force
}

func (p *Player) ShowTitle(title model.Title) {
	p.Titles = append(p.Titles, title)
}

func (p *Player) SendMessage(msg model.Component) {
	p.Messages = append(p.Messages, msg)
}

func (p *Player) Kick(reason model.Component) {
	p.KickReason = &reason
	if p.OnKick != nil {
		p.OnKick(p)
	}
}

// MoveTo places the player in another world without recording a teleport
func (p *Player) MoveTo(loc model.Location) {
	p.Loc = loc
}

// ConsoleSender is a non-player command sender
type ConsoleSender struct {
	Messages []model.Component
}

func (c *ConsoleSender) SendMessage(msg model.Component) {
	c.Messages = append(c.Messages, msg)
}
