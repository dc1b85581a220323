package hosttest

import (
	"context"

	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
)

// Server is a fake host server
type Server struct {
	Worlds    map[string]*World
	Commands  map[string]host.CommandExecutor
	Listeners []host.Listener
}

// Ensure Server implements host.Server
var _ host.Server = (*Server)(nil)

// NewServer creates a server with no loaded worlds
func NewServer(worlds ...*World) *Server {
	s := &Server{
		Worlds:   make(map[string]*World),
		Commands: make(map[string]host.CommandExecutor),
	}
	for _, w := range worlds {
		s.Worlds[w.WorldName] = w
	}
	return s
}

func (s *Server) World(name string) (host.World, bool) {
	w, ok := s.Worlds[name]
	if !ok {
		return nil, false
	}
	return w, true
}

// EnsureWorld returns the named world, loading an empty one if needed
func (s *Server) EnsureWorld(name string) *World {
	w, ok := s.Worlds[name]
	if !ok {
		w = NewWorld(name)
		s.Worlds[name] = w
	}
	return w
}

func (s *Server) RegisterCommand(name string, executor host.CommandExecutor) {
	s.Commands[name] = executor
}

func (s *Server) RegisterListener(listener host.Listener) {
	s.Listeners = append(s.Listeners, listener)
}

// Dispatch helpers mimic the host event loop delivering to every listener

func (s *Server) Join(ctx context.Context, p host.Player) {
	for _, l := range s.Listeners {
		l.HandleJoin(ctx, p)
	}
}

func (s *Server) LevelChange(ctx context.Context, p *Player, newLevel int) {
	oldLevel := p.CurrentLevel
	p.CurrentLevel = newLevel
	for _, l := range s.Listeners {
		l.HandleLevelChange(ctx, p, oldLevel, newLevel)
	}
}

func (s *Server) Death(ctx context.Context, p host.Player) {
	for _, l := range s.Listeners {
		l.HandleDeath(ctx, p)
	}
}

func (s *Server) Respawn(ctx context.Context, p host.Player) {
	for _, l := range s.Listeners {
		l.HandleRespawn(ctx, p)
	}
}

func (s *Server) Quit(ctx context.Context, p host.Player) {
	for _, l := range s.Listeners {
		l.HandleQuit(ctx, p)
	}
}

// Portal fires the portal event, moves the player and fires the world change
func (s *Server) Portal(ctx context.Context, p *Player, to model.Location) {
	for _, l := range s.Listeners {
		l.HandlePortal(ctx, p, to)
	}
	s.EnsureWorld(to.World)
	p.MoveTo(to)
	for _, l := range s.Listeners {
		l.HandleChangedWorld(ctx, p)
	}
}

// Command runs a registered command as the given sender
func (s *Server) Command(ctx context.Context, sender host.CommandSender, name string, args ...string) bool {
	executor, ok := s.Commands[name]
	if !ok {
		return false
	}
	return executor.Execute(ctx, sender, args)
}
