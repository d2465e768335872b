// Package storage persists rendered pack documents.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

// Compile-time interface check.
var _ domain.DocumentStore = (*MemoryStore)(nil)

// MemoryStore keeps documents in memory. Safe for concurrent access.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
	log  *logger.Logger
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
		log:  log,
	}
}

// Save stores a copy of data under packKey. Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, packKey string, data []byte) (string, error) {
	if err := checkKey(packKey); err != nil {
		return "", err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving document %s (%d bytes)", packKey, len(data))
	s.docs[packKey] = buf
	return "memory://" + packKey, nil
}

// Load returns the document saved under packKey.
func (s *MemoryStore) Load(ctx context.Context, packKey string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[packKey]
	if !ok {
		s.log.Debug("document not found: %s", packKey)
		return nil, domain.ErrNotFound
	}
	return data, nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, packKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[packKey]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, packKey)
	s.log.Debug("deleted document %s", packKey)
	return nil
}

// Keys returns the stored pack keys, sorted.
func (s *MemoryStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.docs))
	for k := range s.docs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
