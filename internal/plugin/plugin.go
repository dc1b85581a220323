// Package plugin is the top-level LevelBorder context. It owns the player
// sessions between Enable and Disable and implements the host listener.
package plugin

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shockbase/levelborder/internal/command"
	"github.com/shockbase/levelborder/internal/dependencies/clock"
	"github.com/shockbase/levelborder/internal/eventbus"
	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/services/border"
	"github.com/shockbase/levelborder/internal/services/lifecycle"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
	"github.com/shockbase/levelborder/internal/services/spawntree"
)

// DefaultSpawnRadius keeps the host from scattering respawns around world spawn
const DefaultSpawnRadius = 1000000

// Config holds plugin-wide settings
type Config struct {
	MainWorld string
}

// Plugin reacts to host lifecycle events for every online player
type Plugin struct {
	server    host.Server
	borders   host.BorderService
	border    *border.Service
	configs   *playerconfig.Service
	trees     *spawntree.Service
	rules     lifecycle.Rules
	publisher eventbus.Publisher
	clock     clock.Clock
	cfg       Config
	logger    *slog.Logger

	// mu serializes handlers so each transition is applied in full before
	// the next handler reads the player's state
	mu      sync.Mutex
	enabled bool
}

// Ensure Plugin implements host.Listener and command.Resetter
var (
	_ host.Listener    = (*Plugin)(nil)
	_ command.Resetter = (*Plugin)(nil)
)

// New creates a new Plugin. borders may be nil when the host has no world
// border service; Enable then fails.
func New(
	server host.Server,
	borders host.BorderService,
	borderService *border.Service,
	configs *playerconfig.Service,
	trees *spawntree.Service,
	publisher eventbus.Publisher,
	clock clock.Clock,
	cfg Config,
	logger *slog.Logger,
) *Plugin {
	return &Plugin{
		server:    server,
		borders:   borders,
		border:    borderService,
		configs:   configs,
		trees:     trees,
		rules:     lifecycle.New(),
		publisher: publisher,
		clock:     clock,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "plugin")),
	}
}

// Enable registers the command and listener and prepares the main world.
// Without a world border service nothing is registered.
func (p *Plugin) Enable(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}

	if p.borders == nil {
		p.logger.Error("world border service not found, disabling")
		return model.ErrBorderServiceMissing
	}

	p.server.RegisterCommand(command.Name, command.New(p, p.logger))
	p.server.RegisterListener(p)

	if world, ok := p.server.World(p.cfg.MainWorld); ok {
		world.SetBoolGameRule(model.GameRuleSpectatorsGenerateChunks, false)
		world.SetIntGameRule(model.GameRuleSpawnRadius, DefaultSpawnRadius)
	}

	p.enabled = true
	p.logger.Info("plugin enabled", slog.String("main_world", p.cfg.MainWorld))
	return nil
}

// Disable stops deferred border work, saves every open session and closes
// the event publisher
func (p *Plugin) Disable(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return nil
	}
	p.enabled = false

	p.border.Close()
	err := errors.Join(
		p.configs.CloseAll(ctx),
		p.publisher.Close(),
	)
	if err != nil {
		p.logger.Error("plugin disabled with errors", slog.String("error", err.Error()))
		return err
	}

	p.logger.Info("plugin disabled")
	return nil
}

// Enabled reports whether the plugin is handling events
func (p *Plugin) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}
