package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"boothplan/internal/storage"
)

const flagsKey = "flags.json"

type flags struct {
	TourDismissed bool `json:"tour_dismissed"`
}

// FlagStore keeps durable per-installation flags in flags.json of the state
// directory.
type FlagStore struct {
	mu    sync.Mutex
	files *storage.FileStore
}

func NewFlagStore(files *storage.FileStore) *FlagStore {
	return &FlagStore{files: files}
}

// TourDismissed reports whether the onboarding tour was dismissed. A missing or
// unreadable file counts as not dismissed.
func (s *FlagStore) TourDismissed(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load(ctx)
	if err != nil {
		return false
	}
	return f.TourDismissed
}

// DismissTour persists the dismissal.
func (s *FlagStore) DismissTour(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := s.load(ctx)
	if err != nil {
		f = flags{}
	}
	f.TourDismissed = true
	return s.save(ctx, f)
}

func (s *FlagStore) load(ctx context.Context) (flags, error) {
	var f flags
	data, err := s.files.Read(ctx, flagsKey)
	if errors.Is(err, storage.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return flags{}, fmt.Errorf("decode %s: %w", flagsKey, err)
	}
	return f, nil
}

func (s *FlagStore) save(ctx context.Context, f flags) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	_, err = s.files.Write(ctx, flagsKey, data)
	return err
}
