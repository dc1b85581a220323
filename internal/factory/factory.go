package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shockbase/levelborder/internal/config"
	"github.com/shockbase/levelborder/internal/dependencies/clock"
	"github.com/shockbase/levelborder/internal/dependencies/scheduler"
	"github.com/shockbase/levelborder/internal/eventbus"
	"github.com/shockbase/levelborder/internal/host"
	"github.com/shockbase/levelborder/internal/plugin"
	"github.com/shockbase/levelborder/internal/services/border"
	"github.com/shockbase/levelborder/internal/services/playerconfig"
	"github.com/shockbase/levelborder/internal/services/spawntree"
	"github.com/shockbase/levelborder/internal/storage"
	"github.com/shockbase/levelborder/internal/storage/memory"
	redisstorage "github.com/shockbase/levelborder/internal/storage/redis"
	"github.com/shockbase/levelborder/internal/storage/yamlfile"
)

// App contains all wired application components
type App struct {
	Config config.Config

	// Storage
	Storage storage.Storage

	// External dependencies
	Clock     clock.Clock
	Scheduler scheduler.Scheduler
	Publisher eventbus.Publisher

	// Services
	BorderService       *border.Service
	PlayerConfigService *playerconfig.Service
	SpawnTreeService    *spawntree.Service
	Plugin              *plugin.Plugin
}

// Host holds the game server collaborators. Both are nil for the standalone
// admin server, which never enables the plugin.
type Host struct {
	Server  host.Server
	Borders host.BorderService
}

// New creates a new application with all dependencies wired
func New(cfg config.Config, h Host, logger *slog.Logger) (*App, error) {
	// Use no-op logger if not provided
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	var publisher eventbus.Publisher = eventbus.NopPublisher{}
	if len(cfg.Events.KafkaBrokers) > 0 {
		publisher = eventbus.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.Topic, logger)
	}

	return newWithDependencies(cfg, h, store, clock.New(), scheduler.New(), publisher, logger), nil
}

func newStorage(cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage.Type {
	case config.StorageFile, "":
		return yamlfile.New(cfg.DataFolder), nil
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		if cfg.Storage.Redis.URL != "" {
			redisCfg.URL = cfg.Storage.Redis.URL
		}
		if cfg.Storage.Redis.PoolSize > 0 {
			redisCfg.PoolSize = cfg.Storage.Redis.PoolSize
		}
		if cfg.Storage.Redis.MinIdleConns > 0 {
			redisCfg.MinIdleConns = cfg.Storage.Redis.MinIdleConns
		}
		store, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be 'file', 'memory' or 'redis'", cfg.Storage.Type)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	cfg config.Config,
	h Host,
	store storage.Storage,
	clk clock.Clock,
	sched scheduler.Scheduler,
	publisher eventbus.Publisher,
	logger *slog.Logger,
) *App {
	borderService := border.New(h.Borders, sched, border.Config{
		ChangeDuration:      cfg.Border.ChangeDuration,
		PersistentDataDelay: cfg.Border.PersistentDataDelay,
	}, logger)
	playerConfigService := playerconfig.New(store, clk, playerconfig.Config{
		WorldContainer:  cfg.WorldContainer,
		MainWorld:       cfg.MainWorld,
		MinBorderRadius: cfg.Border.MinRadius,
		GrowSpawnTree:   cfg.SpawnTree.Enabled,
	}, logger)
	spawnTreeService := spawntree.New(cfg.SpawnTree.HeightOffset, logger)
	p := plugin.New(
		h.Server,
		h.Borders,
		borderService,
		playerConfigService,
		spawnTreeService,
		publisher,
		clk,
		plugin.Config{MainWorld: cfg.MainWorld},
		logger,
	)

	return &App{
		Config:              cfg,
		Storage:             store,
		Clock:               clk,
		Scheduler:           sched,
		Publisher:           publisher,
		BorderService:       borderService,
		PlayerConfigService: playerConfigService,
		SpawnTreeService:    spawnTreeService,
		Plugin:              p,
	}
}

// Close disables the plugin if it is running and releases storage and the
// event publisher
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.Plugin.Enabled() {
		// Disable closes the publisher
		errs = append(errs, a.Plugin.Disable(ctx))
	} else {
		errs = append(errs, a.Publisher.Close())
	}
	if closer, ok := a.Storage.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}
