package yamlfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/storage"
)

// FileExtension is appended to the player UUID to name each document
const FileExtension = ".yml"

// Storage keeps one YAML document per player in a directory
type Storage struct {
	mu  sync.Mutex
	dir string
}

// New creates a YAML file store rooted at dir. The directory is created on
// first save.
func New(dir string) *Storage {
	return &Storage{dir: dir}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dir returns the directory holding the player documents
func (s *Storage) Dir() string {
	return s.dir
}

// Path returns the document path for a player
func (s *Storage) Path(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+FileExtension)
}

func (s *Storage) LoadPlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.ErrPlayerStateNotFound
		}
		return err
	}

	// An empty document decodes to nothing and leaves state untouched
	if err := yaml.Unmarshal(data, state); err != nil {
		return fmt.Errorf("decode %s: %w", s.Path(id), err)
	}
	return nil
}

func (s *Storage) SavePlayerState(ctx context.Context, id uuid.UUID, state *model.PlayerState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	// Write then rename so a crash never leaves a truncated document
	tmp := s.Path(id) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path(id))
}

func (s *Storage) DeletePlayerState(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.Path(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Storage) PlayerStateExists(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(s.Path(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ListPlayerIDs skips files whose name is not a UUID document
func (s *Storage) ListPlayerIDs(ctx context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var ids []uuid.UUID
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, FileExtension) {
			continue
		}
		id, err := uuid.Parse(strings.TrimSuffix(name, FileExtension))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
