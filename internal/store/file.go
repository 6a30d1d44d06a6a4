package store

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/spf13/afero"

	domain "github.com/donaldgifford/steam-price-tracker/pkg/types"
)

// FileStore implements Store on a single JSON document mapping app ID to
// TrackedGame. The whole document is rewritten on every mutation through a
// temp file and rename, so a crash never leaves a half-written state file.
type FileStore struct {
	fs      afero.Fs
	path    string
	nowFunc func() time.Time

	mu    sync.RWMutex
	games map[string]*domain.TrackedGame
}

// FileOption configures the FileStore.
type FileOption func(*FileStore)

// WithFileNowFunc overrides the clock used for AddedAt/UpdatedAt stamps.
func WithFileNowFunc(f func() time.Time) FileOption {
	return func(s *FileStore) {
		s.nowFunc = f
	}
}

// NewFileStore opens the state file at path, loading any existing games.
// A missing file is not an error; it is created on the first write.
func NewFileStore(fsys afero.Fs, path string, opts ...FileOption) (*FileStore, error) {
	s := &FileStore{
		fs:      fsys,
		path:    path,
		nowFunc: time.Now,
		games:   make(map[string]*domain.TrackedGame),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading state file %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}

	games := make(map[string]*domain.TrackedGame)
	if err := json.Unmarshal(data, &games); err != nil {
		return fmt.Errorf("parsing state file %s: %w", s.path, err)
	}
	for id, g := range games {
		if g == nil {
			delete(games, id)
			continue
		}
		g.AppID = id
	}
	s.games = games
	return nil
}

// persist writes the current state. Caller must hold the write lock.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.games, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating state directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}

// AddGame inserts a game if its app ID is not tracked yet.
func (s *FileStore) AddGame(_ context.Context, g *domain.TrackedGame) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.games[g.AppID]; ok {
		*g = *cloneGame(existing)
		return false, nil
	}

	now := s.nowFunc()
	g.AddedAt = now
	g.UpdatedAt = now
	s.games[g.AppID] = cloneGame(g)

	if err := s.persist(); err != nil {
		delete(s.games, g.AppID)
		return false, err
	}
	return true, nil
}

// GetGame returns a copy of the tracked game.
func (s *FileStore) GetGame(_ context.Context, appID string) (*domain.TrackedGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[appID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneGame(g), nil
}

// ListGames returns games ordered by the time they were added.
func (s *FileStore) ListGames(_ context.Context, enabledOnly bool) ([]domain.TrackedGame, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]domain.TrackedGame, 0, len(s.games))
	for _, g := range s.games {
		if enabledOnly && !g.Enabled {
			continue
		}
		games = append(games, *cloneGame(g))
	}

	slices.SortFunc(games, func(a, b domain.TrackedGame) int {
		if c := a.AddedAt.Compare(b.AddedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.AppID, b.AppID)
	})
	return games, nil
}

// DeleteGame removes a game.
func (s *FileStore) DeleteGame(_ context.Context, appID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[appID]
	if !ok {
		return ErrNotFound
	}
	delete(s.games, appID)

	if err := s.persist(); err != nil {
		s.games[appID] = g
		return err
	}
	return nil
}

// SetGameEnabled enables or disables a game.
func (s *FileStore) SetGameEnabled(_ context.Context, appID string, enabled bool) error {
	return s.mutate(appID, func(g *domain.TrackedGame) error {
		g.Enabled = enabled
		return nil
	})
}

// AddNotifyURL subscribes an extra notification URL to a game. Adding a URL
// that is already present is a no-op.
func (s *FileStore) AddNotifyURL(_ context.Context, appID, notifyURL string) error {
	return s.mutate(appID, func(g *domain.TrackedGame) error {
		if !g.HasNotifyURL(notifyURL) {
			g.NotifyURLs = append(g.NotifyURLs, notifyURL)
		}
		return nil
	})
}

// RemoveNotifyURL unsubscribes a notification URL from a game.
func (s *FileStore) RemoveNotifyURL(_ context.Context, appID, notifyURL string) error {
	return s.mutate(appID, func(g *domain.TrackedGame) error {
		i := slices.Index(g.NotifyURLs, notifyURL)
		if i < 0 {
			return ErrNotifyURLNotFound
		}
		g.NotifyURLs = slices.Delete(g.NotifyURLs, i, i+1)
		return nil
	})
}

// ClearNotifyURLs drops every notification URL of a game and returns how
// many were removed.
func (s *FileStore) ClearNotifyURLs(_ context.Context, appID string) (int, error) {
	var removed int
	err := s.mutate(appID, func(g *domain.TrackedGame) error {
		removed = len(g.NotifyURLs)
		g.NotifyURLs = nil
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// RecordPrice stores the latest observed price for a game.
func (s *FileStore) RecordPrice(
	_ context.Context,
	appID string,
	name string,
	price domain.Price,
	checkedAt time.Time,
) error {
	return s.mutate(appID, func(g *domain.TrackedGame) error {
		if name != "" {
			g.Name = name
		}
		p := price
		g.LastPrice = &p
		t := checkedAt
		g.LastCheckedAt = &t
		return nil
	})
}

// CountGames returns total and enabled game counts.
func (s *FileStore) CountGames(_ context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var enabled int
	for _, g := range s.games {
		if g.Enabled {
			enabled++
		}
	}
	return len(s.games), enabled, nil
}

// Migrate makes sure the state file exists so later writes fail early on a
// read-only volume rather than mid-cycle.
func (s *FileStore) Migrate(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.fs.Stat(s.path); err == nil {
		return nil
	}
	return s.persist()
}

// Ping verifies the state file's directory is reachable.
func (s *FileStore) Ping(_ context.Context) error {
	if _, err := s.fs.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("state directory: %w", err)
	}
	return nil
}

// Close is a no-op; every mutation is already on disk.
func (*FileStore) Close() error {
	return nil
}

// mutate applies fn to a stored game and persists, rolling back on failure.
func (s *FileStore) mutate(appID string, fn func(g *domain.TrackedGame) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[appID]
	if !ok {
		return ErrNotFound
	}

	prev := cloneGame(g)
	if err := fn(g); err != nil {
		s.games[appID] = prev
		return err
	}
	g.UpdatedAt = s.nowFunc()

	if err := s.persist(); err != nil {
		s.games[appID] = prev
		return err
	}
	return nil
}

func cloneGame(g *domain.TrackedGame) *domain.TrackedGame {
	c := *g
	if g.LastPrice != nil {
		p := *g.LastPrice
		c.LastPrice = &p
	}
	if g.LastCheckedAt != nil {
		t := *g.LastCheckedAt
		c.LastCheckedAt = &t
	}
	c.NotifyURLs = slices.Clone(g.NotifyURLs)
	return &c
}
