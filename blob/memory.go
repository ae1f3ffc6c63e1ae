package blob

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps blobs in memory, addressed by mem:// URLs. Intended for
// tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// FailWith, when set, makes every Put return this error. Lets tests
	// exercise upload-failure paths.
	FailWith error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put implements the Store interface.
func (s *MemoryStore) Put(ctx context.Context, bucket string, data []byte, mimeType string) (Object, error) {
	if s.FailWith != nil {
		return Object{}, s.FailWith
	}
	if len(data) == 0 {
		return Object{}, ErrEmptyBlob
	}

	url := fmt.Sprintf("mem://%s/%s", bucket, uuid.NewString())

	s.mu.Lock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[url] = cp
	s.mu.Unlock()

	return Object{URL: url, MimeType: mimeType}, nil
}

// Get returns a stored blob by URL.
func (s *MemoryStore) Get(url string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[url]
	return data, ok
}

// Len returns the number of stored blobs.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
