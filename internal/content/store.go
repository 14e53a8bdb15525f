// Package content keeps the in-memory content plan: items ordered most recent
// first, moved through the editorial pipeline.
package content

import (
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"

	"boothplan/internal/domain"
)

// Store owns the ordered content collection.
type Store struct {
	mu    sync.RWMutex
	items []domain.ContentItem
	now   func() time.Time
	newID func() string
}

// NewStore returns a store seeded with items in the given order. Items with a
// duplicate or empty id are given a fresh id; an unknown status or type falls
// back to ideia or reels.
func NewStore(items ...domain.ContentItem) *Store {
	s := &Store{now: time.Now, newID: uuid.NewString}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = item.Clone()
		if _, dup := seen[item.ID]; dup || item.ID == "" {
			item.ID = s.freshID(seen)
		}
		normalize(&item)
		seen[item.ID] = struct{}{}
		s.items = append(s.items, item)
	}
	return s
}

// Add materialises draft with a fresh id and the current time and places it
// at the front of the collection.
func (s *Store) Add(draft domain.ContentDraft) domain.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.ContentItem{
		ID:            s.freshID(s.idSet()),
		Title:         draft.Title,
		Type:          draft.Type,
		Status:        draft.Status,
		Objective:     draft.Objective,
		ScheduledDate: draft.ScheduledDate,
		EventType:     draft.EventType,
		Script:        draft.Script,
		Caption:       draft.Caption,
		CTA:           draft.CTA,
		Hashtags:      draft.Hashtags,
		CreatedAt:     s.now(),
	}
	normalize(&item)
	item = item.Clone()
	s.items = append([]domain.ContentItem{item}, s.items...)
	return item.Clone()
}

// Update merges patch into the item with id. Unknown ids are ignored. A patch
// carrying an invalid status or type is rejected as a whole.
func (s *Store) Update(id string, patch domain.ContentPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		patch.Apply(&s.items[i])
	}
	return nil
}

// UpdateStatus moves the item with id to status.
func (s *Store) UpdateStatus(id string, status domain.ContentStatus) error {
	return s.Update(id, domain.ContentPatch{Status: &status})
}

// Advance moves the item with id to the next pipeline stage and returns it.
func (s *Store) Advance(id string) (domain.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.ContentItem{}, false
	}
	s.items[i].Status = s.items[i].Status.Next()
	return s.items[i].Clone(), true
}

// Delete removes the item with id. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
}

// Get returns a copy of the item with id.
func (s *Store) Get(id string) (domain.ContentItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return domain.ContentItem{}, false
}

// Items returns a copy of the ordered collection.
func (s *Store) Items() []domain.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ContentItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item.Clone())
	}
	return out
}

// Len is the collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ByDate yields items scheduled on the calendar day of date. The filter runs
// against the live collection each time the sequence is ranged over.
func (s *Store) ByDate(date time.Time) iter.Seq[domain.ContentItem] {
	return s.filter(func(item domain.ContentItem) bool { return item.ScheduledOn(date) })
}

// ByStatus yields items currently in status.
func (s *Store) ByStatus(status domain.ContentStatus) iter.Seq[domain.ContentItem] {
	return s.filter(func(item domain.ContentItem) bool { return item.Status == status })
}

// ByType yields items of format t.
func (s *Store) ByType(t domain.ContentType) iter.Seq[domain.ContentItem] {
	return s.filter(func(item domain.ContentItem) bool { return item.Type == t })
}

// Stats counts items per status from the current collection.
func (s *Store) Stats() domain.ContentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := domain.ContentStats{ByStatus: make(map[domain.ContentStatus]int, len(domain.ContentStatuses))}
	for _, status := range domain.ContentStatuses {
		stats.ByStatus[status] = 0
	}
	for _, item := range s.items {
		stats.ByStatus[item.Status]++
		stats.Total++
	}
	return stats
}

func (s *Store) filter(keep func(domain.ContentItem) bool) iter.Seq[domain.ContentItem] {
	return func(yield func(domain.ContentItem) bool) {
		// Snapshot under the lock so yield may call back into the store.
		s.mu.RLock()
		matched := make([]domain.ContentItem, 0, len(s.items))
		for _, item := range s.items {
			if keep(item) {
				matched = append(matched, item.Clone())
			}
		}
		s.mu.RUnlock()

		for _, item := range matched {
			if !yield(item) {
				return
			}
		}
	}
}

// normalize keeps status and type inside their enumerations.
func normalize(item *domain.ContentItem) {
	if !item.Status.Valid() {
		item.Status = domain.ContentStatusIdeia
	}
	if !item.Type.Valid() {
		item.Type = domain.ContentTypeReels
	}
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) idSet() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.items))
	for _, item := range s.items {
		ids[item.ID] = struct{}{}
	}
	return ids
}

func (s *Store) freshID(taken map[string]struct{}) string {
	for {
		id := s.newID()
		if _, exists := taken[id]; !exists && id != "" {
			return id
		}
	}
}
