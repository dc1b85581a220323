package playerconfig

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shockbase/levelborder/internal/dependencies/clock"
	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/storage"
)

const (
	// DefaultMinBorderRadius is the border radius at level 0
	DefaultMinBorderRadius = 5

	playerDataDir = "playerdata"
	statsDir      = "stats"
)

// Config holds the defaults written into new player documents and the host
// paths touched by a reset
type Config struct {
	WorldContainer  string
	MainWorld       string
	MinBorderRadius int
	GrowSpawnTree   bool
}

// DefaultConfig returns the default player config settings
func DefaultConfig() Config {
	return Config{
		WorldContainer:  ".",
		MainWorld:       "world",
		MinBorderRadius: DefaultMinBorderRadius,
		GrowSpawnTree:   true,
	}
}

// Defaults builds the default state for a player joining at now
func Defaults(player model.PlayerSnapshot, now time.Time, cfg Config) model.PlayerState {
	return model.PlayerState{
		BorderCenter:    player.Location,
		MinBorderRadius: cfg.MinBorderRadius,
		ElapsedTime:     0,
		GrowSpawnTree:   cfg.GrowSpawnTree,
		SpawnTreeGrown:  false,
		StartTime:       now.Unix(),
		Dead:            false,
		Level:           player.Level,
		OverWorldName:   player.Location.World,
	}
}

// ResetReport lists what a reset removed
type ResetReport struct {
	PlayerID uuid.UUID `json:"player_id"`
	World    string    `json:"world"`
	Deleted  []string  `json:"deleted"`
	Failed   []string  `json:"failed,omitempty"`
}

// Service owns the per-player state sessions of online players.
// Sessions live from Open until Close, Reset or CloseAll.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]model.PlayerState
}

// New creates a new player config Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		clock:    clock,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "playerconfig")),
		sessions: make(map[uuid.UUID]model.PlayerState),
	}
}

// Defaults builds the default state for a player joining now
func (s *Service) Defaults(player model.PlayerSnapshot) model.PlayerState {
	return Defaults(player, s.clock.Now(), s.cfg)
}

// Open loads the player's document, creating it from defaults when missing.
// Keys missing from an existing document take their default values and the
// merged document is written back. A failed write still opens the session.
func (s *Service) Open(ctx context.Context, id uuid.UUID, defaults model.PlayerState) (model.PlayerState, bool, error) {
	state := defaults.Clone()
	created := false

	err := s.storage.LoadPlayerState(ctx, id, &state)
	switch {
	case errors.Is(err, model.ErrPlayerStateNotFound):
		created = true
	case err != nil:
		s.logger.Error("failed to load player state",
			slog.String("player_id", id.String()),
			slog.String("error", err.Error()),
		)
		return defaults, false, fmt.Errorf("load player state: %w", err)
	}

	s.mu.Lock()
	s.sessions[id] = state.Clone()
	s.mu.Unlock()

	if err := s.write(ctx, id, state); err != nil {
		return state, created, err
	}
	if created {
		s.logger.Info("player state created", slog.String("player_id", id.String()))
	}
	return state, created, nil
}

// Get returns the session state, falling back to storage for offline players
func (s *Service) Get(ctx context.Context, id uuid.UUID) (model.PlayerState, error) {
	s.mu.Lock()
	state, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		return state.Clone(), nil
	}

	var stored model.PlayerState
	if err := s.storage.LoadPlayerState(ctx, id, &stored); err != nil {
		return model.PlayerState{}, err
	}
	return stored, nil
}

// PlayerIDs lists every player with a stored document
func (s *Service) PlayerIDs(ctx context.Context) ([]uuid.UUID, error) {
	return s.storage.ListPlayerIDs(ctx)
}

// Save updates the session and writes the document
func (s *Service) Save(ctx context.Context, id uuid.UUID, state model.PlayerState) error {
	s.mu.Lock()
	s.sessions[id] = state.Clone()
	s.mu.Unlock()

	return s.write(ctx, id, state)
}

// Close drops the player's session without writing it
func (s *Service) Close(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// CloseAll writes and drops every open session
func (s *Service) CloseAll(ctx context.Context) error {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]model.PlayerState)
	s.mu.Unlock()

	var errs []error
	for id, state := range sessions {
		if err := s.write(ctx, id, state); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sessions returns the number of open sessions
func (s *Service) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Reset drops the session and deletes the player's document together with the
// host player data and stats files of worldName. An empty worldName falls back
// to the stored over world, then the main world. Every deletion is attempted
// once; failures are logged and reported.
func (s *Service) Reset(ctx context.Context, id uuid.UUID, worldName string) ResetReport {
	if worldName == "" {
		worldName = s.storedWorld(ctx, id)
	}

	s.Close(id)

	report := ResetReport{
		PlayerID: id,
		World:    worldName,
		Deleted:  []string{},
	}

	s.deleteState(ctx, id, &report)
	s.deleteFile(s.PlayerDataPath(worldName, id), &report)
	s.deleteFile(s.StatsPath(worldName, id), &report)

	return report
}

// PlayerDataPath returns the host player data file of a player in a world
func (s *Service) PlayerDataPath(worldName string, id uuid.UUID) string {
	return filepath.Join(s.cfg.WorldContainer, worldName, playerDataDir, id.String()+".dat")
}

// StatsPath returns the host stats file of a player in a world
func (s *Service) StatsPath(worldName string, id uuid.UUID) string {
	return filepath.Join(s.cfg.WorldContainer, worldName, statsDir, id.String()+".json")
}

func (s *Service) storedWorld(ctx context.Context, id uuid.UUID) string {
	state, err := s.Get(ctx, id)
	if err == nil && state.OverWorldName != "" {
		return state.OverWorldName
	}
	return s.cfg.MainWorld
}

func (s *Service) write(ctx context.Context, id uuid.UUID, state model.PlayerState) error {
	if err := s.storage.SavePlayerState(ctx, id, &state); err != nil {
		s.logger.Error("failed to save player state",
			slog.String("player_id", id.String()),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save player state: %w", err)
	}
	return nil
}

// documentName names the player document for reports, using the file path
// when the backend stores files
func (s *Service) documentName(id uuid.UUID) string {
	if p, ok := s.storage.(interface{ Path(uuid.UUID) string }); ok {
		return p.Path(id)
	}
	return "player state " + id.String()
}

func (s *Service) deleteState(ctx context.Context, id uuid.UUID, report *ResetReport) {
	name := s.documentName(id)

	exists, err := s.storage.PlayerStateExists(ctx, id)
	if err == nil && !exists {
		return
	}
	if err == nil {
		err = s.storage.DeletePlayerState(ctx, id)
	}
	if err != nil {
		s.logger.Error("failed to delete player state",
			slog.String("player_id", id.String()),
			slog.String("error", err.Error()),
		)
		report.Failed = append(report.Failed, name)
		return
	}

	s.logger.Info("player configuration deleted", slog.String("player_id", id.String()))
	report.Deleted = append(report.Deleted, name)
}

func (s *Service) deleteFile(path string, report *ResetReport) {
	err := os.Remove(path)
	switch {
	case err == nil:
		s.logger.Info("player file deleted", slog.String("path", path))
		report.Deleted = append(report.Deleted, path)
	case errors.Is(err, fs.ErrNotExist):
	default:
		s.logger.Error("failed to delete player file",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		report.Failed = append(report.Failed, path)
	}
}
