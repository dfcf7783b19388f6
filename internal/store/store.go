package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"content-ops-platform/models"
)

// Snapshot is one complete ingestion cycle. Items are never mutated in
// place; a refresh replaces the whole snapshot.
type Snapshot struct {
	ID         string               `json:"id"`
	Generation uint64               `json:"generation"`
	FetchedAt  time.Time            `json:"fetchedAt"`
	Items      []models.ContentItem `json:"items"`
}

// ContentStore holds the current snapshot behind a read-write lock.
type ContentStore struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		snapshot: Snapshot{
			ID:    uuid.NewString(),
			Items: []models.ContentItem{},
		},
	}
}

// Replace installs a fresh snapshot and returns it. The generation counter
// keys cache entries, so replacing invalidates results from older cycles.
func (s *ContentStore) Replace(items []models.ContentItem) Snapshot {
	if items == nil {
		items = []models.ContentItem{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		ID:         uuid.NewString(),
		Generation: s.snapshot.Generation + 1,
		FetchedAt:  time.Now().UTC(),
		Items:      items,
	}
	return s.snapshot
}

// Current returns the current snapshot.
func (s *ContentStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Items returns the items of the current snapshot.
func (s *ContentStore) Items() []models.ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Items
}

// Item looks up one item of the current snapshot by id.
func (s *ContentStore) Item(id string) (models.ContentItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.snapshot.Items {
		if item.ID == id {
			return item, true
		}
	}
	return models.ContentItem{}, false
}

// Generation returns the current snapshot generation.
func (s *ContentStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Generation
}
