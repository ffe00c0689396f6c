// Package favorites persists the user's saved currency pairs in a local
// JSON file, the process-side equivalent of browser storage.
package favorites

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

// FileStore keeps favorites in insertion order, capped at
// model.MaxFavorites, and rewrites the backing file on every mutation.
// Capacity and duplicate checks happen under the same lock as the insert.
type FileStore struct {
	mu    sync.Mutex
	path  string
	pairs []model.FavoritePair
	log   *logger.Logger
}

func NewFileStore(path string, log *logger.Logger) (*FileStore, error) {
	s := &FileStore{
		path: path,
		log:  log,
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read favorites file: %w", err)
	}

	var pairs []model.FavoritePair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		// A corrupt file should not brick the service; start empty.
		s.log.Warn("Favorites file is corrupt, starting empty", "path", s.path, "error", err)
		return nil
	}

	if len(pairs) > model.MaxFavorites {
		pairs = pairs[:model.MaxFavorites]
	}
	s.pairs = pairs
	return nil
}

// persist writes to a temp file and renames it over the target, so a crash
// mid-write cannot corrupt the stored set.
func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create favorites directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".favorites-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace favorites file: %w", err)
	}
	return nil
}

func (s *FileStore) Add(ctx context.Context, from, to model.Currency) (*model.FavoritePair, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pair := range s.pairs {
		if pair.From == from && pair.To == to {
			return nil, false, nil
		}
	}
	if len(s.pairs) >= model.MaxFavorites {
		return nil, false, nil
	}

	pair := model.FavoritePair{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		CreatedAt: time.Now().UTC(),
	}
	s.pairs = append(s.pairs, pair)

	if err := s.persist(); err != nil {
		s.pairs = s.pairs[:len(s.pairs)-1]
		return nil, false, err
	}

	s.log.Info("Favorite added", "from", from, "to", to, "id", pair.ID)
	return &pair, true, nil
}

func (s *FileStore) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, pair := range s.pairs {
		if pair.ID == id {
			s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
			if err := s.persist(); err != nil {
				return false, err
			}
			s.log.Info("Favorite removed", "id", id)
			return true, nil
		}
	}
	return false, nil
}

func (s *FileStore) Has(ctx context.Context, from, to model.Currency) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pair := range s.pairs {
		if pair.From == from && pair.To == to {
			return true, nil
		}
	}
	return false, nil
}

func (s *FileStore) List(ctx context.Context) ([]model.FavoritePair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.FavoritePair, len(s.pairs))
	copy(out, s.pairs)
	return out, nil
}
