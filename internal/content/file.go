package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"boothplan/internal/domain"
	"boothplan/internal/storage"
)

// PlanKey is where the CLI keeps the content plan inside the state directory.
const PlanKey = "content.json"

type snapshot struct {
	Items []domain.ContentItem `json:"items"`
}

// Load restores a store from the JSON snapshot under key. A missing snapshot
// yields an empty store.
func Load(ctx context.Context, files *storage.FileStore, key string) (*Store, error) {
	data, err := files.Read(ctx, key)
	if errors.Is(err, storage.ErrNotExist) {
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content plan: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode content plan: %w", err)
	}
	for _, item := range snap.Items {
		if !item.Status.Valid() {
			return nil, fmt.Errorf("content item %s: %w: %q", item.ID, domain.ErrInvalidStatus, item.Status)
		}
	}
	return NewStore(snap.Items...), nil
}

// Save writes the ordered collection under key.
func (s *Store) Save(ctx context.Context, files *storage.FileStore, key string) error {
	data, err := json.MarshalIndent(snapshot{Items: s.Items()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content plan: %w", err)
	}
	if _, err := files.Write(ctx, key, data); err != nil {
		return fmt.Errorf("write content plan: %w", err)
	}
	return nil
}
